// This package produces the list of changed files that ownership is resolved for. Paths are returned in
// absolute form ("/" + path relative to the repo root), which is what OwnerMap patterns are matched against.
package diff

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"
)

// Return the files that differ between g.To and g.From (or the working tree, if g.From is empty). Both
// revisions are resolved to commit IDs first. Any git failure is returned wrapped in ErrRevision.
func (g Git) ChangedFiles(ctx context.Context) (changedFiles []string, err error) {
	toRev, err := g.revParse(ctx, g.To)
	if err != nil {
		return nil, err
	}
	diffParam := toRev
	if g.From != "" {
		fromRev, err := g.revParse(ctx, g.From)
		if err != nil {
			return nil, err
		}
		diffParam = toRev + ".." + fromRev
	}
	out, err := g.output(ctx, "-c", "core.quotePath=false", "diff", "--name-only", diffParam)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRevision, err)
	}
	return absolutePaths(strings.Split(out, "\n")), nil
}

// Return the root directory of the Git repo that contains g.Dir.
func (g Git) TopLevel(ctx context.Context) (string, error) {
	return g.run(ctx, "rev-parse", "--show-toplevel")
}

func (g Git) revParse(ctx context.Context, rev string) (string, error) {
	if rev == "" {
		return "", fmt.Errorf("%w: empty revision", ErrRevision)
	}
	id, err := g.run(ctx, "rev-parse", "--verify", "--quiet", rev)
	if err != nil {
		return "", fmt.Errorf("%w: cannot resolve revision '%v': %w", ErrRevision, rev, err)
	}
	slog.Debug("Resolved revision:", slog.String("rev", rev), slog.String("id", id))
	return id, nil
}

// Run a git command and return its trimmed stdout.
func (g Git) run(ctx context.Context, args ...string) (string, error) {
	out, err := g.output(ctx, args...)
	return strings.TrimSpace(out), err
}

// Run a git command and return its stdout untouched.
func (g Git) output(ctx context.Context, args ...string) (string, error) {
	if g.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.Timeout)
		defer cancel()
	}
	binary := g.Binary
	if binary == "" {
		binary = "git"
	}
	cmd := exec.CommandContext(ctx, binary, args...)
	cmd.Dir = g.Dir
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	slog.Debug("Running command:", slog.String("cmd", cmd.String()))
	err := cmd.Run()
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return "", fmt.Errorf("git %v: timeout after %v", strings.Join(args, " "), g.Timeout)
		}
		return "", fmt.Errorf("git %v: %w: %v", strings.Join(args, " "), err, strings.TrimSpace(stderr.String()))
	}
	return stdout.String(), nil
}

// Prepend "/" to each non-empty path. Names are otherwise kept as-is, since a file name may begin or
// end with spaces.
func absolutePaths(names []string) []string {
	ret := []string{}
	for _, n := range names {
		n = strings.TrimSuffix(n, "\r")
		if n == "" {
			continue
		}
		ret = append(ret, "/"+strings.TrimPrefix(n, "/"))
	}
	return ret
}
