// This package resolves which owners are responsible for a list of changed files. Ownership rules come
// from an OwnerMap, where each glob pattern lists the @users and teams that own the matching paths.
package owners

import (
	"log/slog"
	"regexp"
	"sort"
	"strings"

	"gitlab.com/tedspinks/get-maintainers/config"
)

// Owner identifiers with this prefix are users, everything else is a team name.
const UserPrefix = "@"

// Set (map of bool) of unique owner identifiers.
type OwnerSet map[string]bool

// Return the identifiers in the set in lexicographic order.
func (s OwnerSet) Sorted() []string {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Return the owners of all the patterns that match at least one of the changed files. Each changed file
// should be an absolute path such as "/library/std/src/lib.rs". A pattern matches a file if the file
// matches the pattern itself, or the pattern with "/*" appended, so that a directory pattern like
// "library/std" owns the files below it.
//
// A pattern without a leading "/" (ex: "library/std") is relative to the repo root, and is also tried
// against the file path with its leading "/" removed.
//
// Note: "*" is a flat string wildcard that also matches "/", so "a/*" matches "a/b/c". Patterns are
// not anchored to path segments.
func Resolve(changedFiles []string, ownerMap config.OwnerMap) OwnerSet {
	ret := OwnerSet{}
	if len(changedFiles) == 0 {
		return ret
	}
	for pattern, owners := range ownerMap {
		m := newMatcher(pattern)
		for _, fname := range changedFiles {
			if m.match(fname) {
				for _, o := range owners {
					ret[o] = true
				}
				break
			}
		}
	}
	return ret
}

// Return whether the owner identifier is a @user tag.
func IsUser(id string) bool {
	return strings.HasPrefix(id, UserPrefix)
}

// Split owner identifiers into @users and teams, keeping their relative order.
func SplitOwners(ids []string) (users []string, teams []string) {
	for _, id := range ids {
		if IsUser(id) {
			users = append(users, id)
		} else {
			teams = append(teams, id)
		}
	}
	return
}

// Compiled form of one OwnerMap pattern: the pattern itself, and the pattern with "/*" appended.
type matcher struct {
	direct   *regexp.Regexp
	children *regexp.Regexp
	relative bool
}

func newMatcher(pattern string) matcher {
	return matcher{
		direct:   compile(pattern),
		children: compile(pattern + "/*"),
		relative: !strings.HasPrefix(pattern, "/"),
	}
}

func (m matcher) match(fname string) bool {
	if m.direct.MatchString(fname) || m.children.MatchString(fname) {
		return true
	}
	if !m.relative {
		return false
	}
	rel := strings.TrimPrefix(fname, "/")
	return rel != fname && (m.direct.MatchString(rel) || m.children.MatchString(rel))
}

// Compile a shell-style pattern into a regexp matched against the whole path string, so that wildcards
// are free to cross "/".
func compile(pattern string) *regexp.Regexp {
	re, err := regexp.Compile(fnmatchToRegexp(pattern))
	if err != nil {
		slog.Debug("Pattern could not be compiled, matching it literally:", slog.String("pattern", pattern), slog.Any("error", err))
		return regexp.MustCompile(`^` + regexp.QuoteMeta(pattern) + `\z`)
	}
	return re
}
