package config

import (
	"fmt"
	"os"
)

// Env is the process environment captured once at the start of a run.
//
// Everything the action builders and the fingerprint tracker need from the
// environment lives here, injected explicitly, so the core stays free of
// hidden global state and tests can construct arbitrary environments.
type Env struct {
	// Home is the current user's home directory.
	Home string

	// TerminalApp identifies the terminal application embedded in the alt
	// modifier action of every entry.
	TerminalApp string

	// WorkflowVersion is the projswitch version string.
	WorkflowVersion string

	// ThemeID identifies the launcher theme the icons were rendered for.
	ThemeID string

	// EditorCommand is the editor CLI for the default and modifier actions.
	EditorCommand string

	// FileBrowserApp is the file browser for the shift modifier action.
	FileBrowserApp string
}

// CaptureEnv snapshots the process environment and the given options into
// an Env. Environment variables take precedence over config.yaml values:
// - PROJSWITCH_TERMINAL_APP overrides terminalApp
// - PROJSWITCH_THEME supplies the active theme identity
func CaptureEnv(version string, opts Options) (Env, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return Env{}, fmt.Errorf("failed to get user home directory: %w", err)
	}

	terminal := opts.TerminalApp
	if v := os.Getenv("PROJSWITCH_TERMINAL_APP"); v != "" {
		terminal = v
	}

	return Env{
		Home:            home,
		TerminalApp:     terminal,
		WorkflowVersion: version,
		ThemeID:         os.Getenv("PROJSWITCH_THEME"),
		EditorCommand:   opts.EditorCommand,
		FileBrowserApp:  opts.FileBrowserApp,
	}, nil
}
