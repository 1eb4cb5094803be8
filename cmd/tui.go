package main

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/ewhitmore/glossa/internal/shared"
	"github.com/ewhitmore/glossa/internal/ui"
	"github.com/urfave/cli/v3"
)

// TUI launches the interactive dictionary browser. Every tab needs the
// bearer token, so a missing session fails fast instead of opening a UI
// full of 401s.
func (r *Runner) TUI(ctx context.Context, cmd *cli.Command) error {
	if err := r.requireDB(); err != nil {
		return err
	}

	if _, err := r.sessions.Current(); err != nil {
		return fmt.Errorf("%w: run 'glossa auth signin' first", shared.ErrNotAuthenticated)
	}

	// Redirect logs to file to avoid interfering with TUI rendering
	fileLogger, err := shared.NewFileLogger("./tmp/glossa-tui.log")
	if err != nil {
		return fmt.Errorf("failed to create file logger: %w", err)
	}
	r.SetLogger(fileLogger)

	model := ui.NewModel(ctx, r.api)
	p := tea.NewProgram(model)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}

	return nil
}
