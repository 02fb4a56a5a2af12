package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/danieljhkim/projswitch/internal/fsops"
)

// Options holds the recognized config.yaml settings.
type Options struct {
	// IncludeDiscoveredRepositories merges auto-discovered git directories
	// into the catalog when true.
	IncludeDiscoveredRepositories bool `yaml:"includeDiscoveredRepositories"`

	// DiscoveryRoot is the directory scanned for version-controlled
	// subdirectories. Defaults to ~/Projects.
	DiscoveryRoot string `yaml:"discoveryRoot"`

	// PrettifyDiscoveredTitles converts discovered directory names to
	// title-case words. Defaults to true.
	PrettifyDiscoveredTitles bool `yaml:"prettifyDiscoveredTitles"`

	// EditorCommand is the editor CLI used for the default and modifier
	// open actions. Defaults to "code".
	EditorCommand string `yaml:"editorCommand"`

	// TerminalApp is the terminal application for the alt modifier action.
	// Defaults to "Terminal".
	TerminalApp string `yaml:"terminalApp"`

	// FileBrowserApp is the file browser for the shift modifier action.
	// Defaults to "Finder".
	FileBrowserApp string `yaml:"fileBrowserApp"`

	// IconRenderCommand is the external command invoked to rasterize a
	// glyph name into an icon file. Empty means no renderer is installed.
	IconRenderCommand string `yaml:"iconRenderCommand"`

	// ThemeFile is the launcher theme file watched for changes. Empty
	// disables watching.
	ThemeFile string `yaml:"themeFile"`
}

// DefaultOptions returns the options used when config.yaml is absent.
func DefaultOptions() Options {
	home, err := os.UserHomeDir()
	if err != nil {
		home = ""
	}
	return Options{
		IncludeDiscoveredRepositories: false,
		DiscoveryRoot:                 filepath.Join(home, "Projects"),
		PrettifyDiscoveredTitles:      true,
		EditorCommand:                 "code",
		TerminalApp:                   "Terminal",
		FileBrowserApp:                "Finder",
	}
}

// LoadOptions reads and parses the options file at path.
//
// A missing file yields the defaults with a nil error. A malformed file
// also yields the defaults, plus an error the caller should log as a
// warning: a broken config must never abort a run.
func LoadOptions(fs fsops.FS, path string) (Options, error) {
	opts := DefaultOptions()

	data, err := fs.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return opts, nil
		}
		return opts, fmt.Errorf("failed to read options file: %w", err)
	}

	// Unmarshal over the prefilled defaults so absent keys keep them.
	if err := yaml.Unmarshal(data, &opts); err != nil {
		return DefaultOptions(), fmt.Errorf("failed to parse options file: %w", err)
	}

	return opts, nil
}
