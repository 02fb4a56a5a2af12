// Package config manages projswitch configuration and filesystem paths.
//
// Configuration comes from two files under the projswitch root (default
// ~/.projswitch/): config.yaml with recognized options, and projects.jsonc
// with the user's workspace definitions. The root can be overridden with
// the PROJSWITCH_ROOT environment variable. The package also captures the
// process environment once per run into an Env value, so the rest of the
// core never reads environment variables ad hoc.
package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Paths contains all the filesystem paths used by projswitch.
type Paths struct {
	// Root is the base directory for all projswitch data (default: ~/.projswitch)
	Root string

	// Icons is the directory holding rendered glyph icons
	Icons string

	// Cache is the directory holding the fingerprint and cached entry list
	Cache string

	// Config is the path to the options file
	Config string

	// Projects is the path to the workspace definitions file
	Projects string
}

// DefaultPaths returns the default paths for projswitch.
// Paths can be overridden with environment variables:
// - PROJSWITCH_ROOT: Override the root directory
func DefaultPaths() (*Paths, error) {
	root := os.Getenv("PROJSWITCH_ROOT")
	if root == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get user home directory: %w", err)
		}
		root = filepath.Join(home, ".projswitch")
	}

	return &Paths{
		Root:     root,
		Icons:    filepath.Join(root, "icons"),
		Cache:    filepath.Join(root, "cache"),
		Config:   filepath.Join(root, "config.yaml"),
		Projects: filepath.Join(root, "projects.jsonc"),
	}, nil
}

// EnsureDirectories creates all necessary directories if they don't exist.
func (p *Paths) EnsureDirectories() error {
	dirs := []string{
		p.Root,
		p.Icons,
		p.Cache,
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	return nil
}
