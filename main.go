package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/caarlos0/env/v11"
	"gitlab.com/tedspinks/get-maintainers/diff"
)

const envPrefix = "GET_MAINTAINERS_"

// Defaults for the command line flags, read from env vars with the GET_MAINTAINERS_ prefix.
type envVarArgs struct {
	ConfigFile     string `env:"CONFIG_FILE" envDefault:"triagebot.toml"`
	To             string `env:"TO" envDefault:"master"`
	From           string `env:"FROM" envDefault:""`
	PatchFile      string `env:"PATCH_FILE" envDefault:""`
	RepoDir        string `env:"REPO_DIR" envDefault:""`
	Output         string `env:"OUTPUT" envDefault:"text"`
	GitBinary      string `env:"GIT" envDefault:"git"`
	GitTimeoutSecs int    `env:"GIT_TIMEOUT_SECS" envDefault:"0"`
	Debug          bool   `env:"DEBUG" envDefault:"false"`
}

func main() {
	envVars, err := parseEnv()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
	cmd := newRootCommand(envVars, os.Stdout, os.Stderr)
	err = cmd.Execute()
	os.Exit(exitCode(err, os.Stderr))
}

func parseEnv() (envVars envVarArgs, err error) {
	opts := env.Options{Prefix: envPrefix, RequiredIfNoDef: true}
	err = env.ParseWithOptions(&envVars, opts)
	return
}

// Print a diagnostic for err and return the process exit status.
func exitCode(err error, stderr io.Writer) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, diff.ErrRevision):
		fmt.Fprintln(stderr, "Failed to process revisions")
		slog.Debug(err.Error())
	default:
		fmt.Fprintln(stderr, "Error:", err)
	}
	return 1
}

// Logs go to stderr, stdout is reserved for the report.
func setLogLevel(w io.Writer, setToDebug bool) {
	logLevel := slog.LevelInfo
	if setToDebug {
		logLevel = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{
		Level: logLevel,
	}
	logger := slog.New(slog.NewTextHandler(w, opts))
	slog.SetDefault(logger)
}
