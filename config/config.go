// This package loads the ownership rules from a triagebot.toml-style configuration file. Only the
// [assign] table is read: its adhoc_groups become a GroupMap and its owners become an OwnerMap.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

var (
	ErrNotFound   = errors.New("configuration file not found")
	ErrMissingKey = errors.New("configuration is missing a required key")
)

// Read and decode the configuration file at the specified path.
func Load(configPath string) (groups GroupMap, owners OwnerMap, err error) {
	f, err := os.Open(configPath)
	if err != nil {
		err = fmt.Errorf("unable to open configuration file '%v': %w", configPath, err)
		return
	}
	defer f.Close()
	groups, owners, err = Decode(f)
	if err != nil {
		err = fmt.Errorf("unable to load configuration file '%v': %w", configPath, err)
	}
	return
}

// Decode a triagebot.toml document. The [assign] table and both of its adhoc_groups and owners keys
// must be present, a missing one is returned as an ErrMissingKey error.
func Decode(r io.Reader) (groups GroupMap, owners OwnerMap, err error) {
	var tb Triagebot
	err = toml.NewDecoder(r).Decode(&tb)
	if err != nil {
		return nil, nil, fmt.Errorf("could not decode TOML: %w", err)
	}
	if tb.Assign == nil {
		return nil, nil, fmt.Errorf("%w: 'assign'", ErrMissingKey)
	}
	groups = tb.Assign.AdhocGroups
	if groups == nil {
		return nil, nil, fmt.Errorf("%w: 'assign.adhoc_groups'", ErrMissingKey)
	}
	owners = tb.Assign.Owners
	if owners == nil {
		return nil, nil, fmt.Errorf("%w: 'assign.owners'", ErrMissingKey)
	}
	slog.Debug("Loaded configuration:", slog.Int("groups", len(groups)), slog.Int("owners", len(owners)))
	return groups, owners, nil
}

// Return the first of the candidate paths that exists as a regular file. Candidates are tried in order,
// which lets the caller fall back from the working directory to the root of the Git repo.
func Locate(candidates ...string) (string, error) {
	for _, location := range candidates {
		if location == "" {
			continue
		}
		exists, err := fileExists(location)
		if err != nil {
			slog.Debug(err.Error())
		}
		if exists {
			return location, nil
		}
	}
	return "", fmt.Errorf("%w at any of: %v", ErrNotFound, candidates)
}

// Return the candidate locations for a configuration path. A relative path is looked up in the
// current directory first and then below rootDir, if one is known.
func Candidates(configPath string, rootDir string) []string {
	candidates := []string{configPath}
	if rootDir != "" && !filepath.IsAbs(configPath) {
		candidates = append(candidates, filepath.Join(rootDir, configPath))
	}
	return candidates
}

// Return whether or not the specified file can be found within the file system.
func fileExists(filePath string) (bool, error) {
	stat, err := os.Stat(filePath)
	if err != nil {
		return false, err
	}
	if stat.IsDir() {
		return false, fmt.Errorf("'%v' is a directory, not a file", filePath)
	}
	return true, nil
}
