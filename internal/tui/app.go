// Package tui implements the interactive profile browser using Bubble Tea.
package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/srcheesedev/devcard/profile"
)

// AppConfig bundles everything the TUI needs from main.go.
type AppConfig struct {
	Profile profile.Profile
	Version string
}

// App is the top-level TUI application. main.go creates it and calls Run.
type App struct {
	cfg AppConfig
}

// New creates a new TUI application.
func New(cfg AppConfig) *App {
	return &App{cfg: cfg}
}

// Run starts the Bubble Tea program and blocks until it exits.
func (a *App) Run(ctx context.Context) error {
	// Detect terminal width for initial layout.
	width := 80
	if w, _, err := term.GetSize(0); err == nil && w > 0 {
		width = w
	}

	m := newModel(a.cfg.Profile, a.cfg.Version, width)

	p := tea.NewProgram(m, tea.WithContext(ctx))
	_, err := p.Run()
	return err
}
