package diff

import (
	"errors"
	"io"
	"time"
)

var (
	// Returned when a revision can't be resolved, or when "git diff" fails.
	ErrRevision = errors.New("failed to process revisions")
	// Returned when a unified diff can't be parsed.
	ErrPatch = errors.New("failed to parse patch")
)

// Git lists the files changed between two revisions of a local Git repo.
type Git struct {
	Binary  string        // Path to the git executable, "git" if empty
	Dir     string        // Working directory for git commands, the current directory if empty
	To      string        // Destination revision (ex: master)
	From    string        // Optional source revision. If empty, To is compared against the working tree.
	Timeout time.Duration // Timeout for each git command, no timeout if zero
}

// Patch lists the files touched by a unified diff, such as the output of "git diff" or "git format-patch".
type Patch struct {
	Reader io.Reader
}
