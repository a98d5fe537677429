package diff

import (
	"context"
	"fmt"
	"strings"

	godiff "github.com/sourcegraph/go-diff/diff"
)

const devNull = "/dev/null"

// Return the files touched by the patch, in the order they appear. Renamed and added files are listed by
// their new name, deleted files by their original name.
func (p Patch) ChangedFiles(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	fileDiffs, err := godiff.NewMultiFileDiffReader(p.Reader).ReadAllFiles()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	names := make([]string, 0, len(fileDiffs))
	for _, fd := range fileDiffs {
		name := fd.NewName
		if name == "" || name == devNull {
			name = fd.OrigName
		}
		if name == "" || name == devNull {
			continue
		}
		// Strip the a/ or b/ prefix from git diffs
		if strings.HasPrefix(name, "a/") || strings.HasPrefix(name, "b/") {
			name = name[2:]
		}
		names = append(names, name)
	}
	return absolutePaths(names), nil
}
