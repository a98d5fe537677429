package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"
	"gitlab.com/tedspinks/get-maintainers/config"
	"gitlab.com/tedspinks/get-maintainers/diff"
	"gitlab.com/tedspinks/get-maintainers/owners"
	"gitlab.com/tedspinks/get-maintainers/report"
)

type options struct {
	configFile  string
	to          string
	from        string
	patchFile   string
	repoDir     string
	output      string
	maintainers bool
	debug       bool
	gitBinary   string
	gitTimeout  time.Duration
}

func newRootCommand(envVars envVarArgs, stdout io.Writer, stderr io.Writer) *cobra.Command {
	opts := options{
		configFile:  envVars.ConfigFile,
		to:          envVars.To,
		from:        envVars.From,
		patchFile:   envVars.PatchFile,
		repoDir:     envVars.RepoDir,
		output:      envVars.Output,
		maintainers: true,
		debug:       envVars.Debug,
		gitBinary:   envVars.GitBinary,
		gitTimeout:  time.Second * time.Duration(envVars.GitTimeoutSecs),
	}
	cmd := &cobra.Command{
		Use:           "get-maintainers",
		Short:         "Find maintainers and teams based on changed files",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			setLogLevel(stderr, opts.debug)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), opts, cmd.InOrStdin(), stdout, stderr)
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	flags := cmd.Flags()
	flags.StringVarP(&opts.configFile, "file-name", "f", opts.configFile, "Path to triagebot.toml-style configuration")
	flags.StringVar(&opts.to, "to", opts.to, "Compare to this destination rev")
	flags.StringVar(&opts.from, "from", opts.from, "Compare from this source rev")
	flags.BoolVarP(&opts.maintainers, "maintainers", "m", opts.maintainers, "List maintainers for given changes")
	flags.StringVar(&opts.patchFile, "patch", opts.patchFile, `Read changes from a unified diff file instead of git ("-" for stdin)`)
	flags.StringVarP(&opts.repoDir, "repo-dir", "C", opts.repoDir, "Run git in this directory")
	flags.StringVarP(&opts.output, "output", "o", opts.output, "Output format: text, json, yaml")
	flags.BoolVar(&opts.debug, "debug", opts.debug, "Enable debug logging")
	return cmd
}

func run(ctx context.Context, opts options, stdin io.Reader, stdout io.Writer, stderr io.Writer) error {
	if !opts.maintainers {
		slog.Debug("Maintainer listing is disabled, nothing to do")
		return nil
	}
	format, err := report.ParseFormat(opts.output)
	if err != nil {
		return err
	}
	git := diff.Git{
		Binary:  opts.gitBinary,
		Dir:     opts.repoDir,
		To:      opts.to,
		From:    opts.from,
		Timeout: opts.gitTimeout,
	}

	configPath, err := locateConfig(ctx, opts.configFile, git)
	if err != nil {
		return err
	}
	groupMap, ownerMap, err := config.Load(configPath)
	if err != nil {
		return err
	}

	var lister changeLister = git
	if opts.patchFile != "" {
		patch, closeFn, err := openPatch(opts.patchFile, stdin)
		if err != nil {
			return err
		}
		defer closeFn()
		lister = patch
	}
	changedFiles, err := lister.ChangedFiles(ctx)
	if err != nil {
		return err
	}
	if len(changedFiles) == 0 {
		fmt.Fprintln(stderr, "No changes found")
	}
	slog.Debug("Changed files:", slog.Any("files", changedFiles))

	ownerSet := owners.Resolve(changedFiles, ownerMap)
	r, err := report.Build(ownerSet, groupMap)
	if err != nil {
		return err
	}
	return r.Write(stdout, format)
}

// Find the configuration file, either as given or relative to the root of the Git repo.
func locateConfig(ctx context.Context, configPath string, repo repoLocator) (string, error) {
	if path, err := config.Locate(configPath); err == nil {
		return path, nil
	}
	rootDir, err := repo.TopLevel(ctx)
	if err != nil {
		slog.Debug("Unable to find the root of the Git repo:", slog.Any("error", err))
		rootDir = ""
	}
	return config.Locate(config.Candidates(configPath, rootDir)...)
}

func openPatch(patchFile string, stdin io.Reader) (diff.Patch, func() error, error) {
	if patchFile == "-" {
		return diff.Patch{Reader: stdin}, func() error { return nil }, nil
	}
	f, err := os.Open(patchFile)
	if err != nil {
		return diff.Patch{}, nil, fmt.Errorf("unable to open patch file '%v': %w", patchFile, err)
	}
	return diff.Patch{Reader: f}, f.Close, nil
}
