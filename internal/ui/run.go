package ui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/strandedsim/stranded-tui/internal/knowledge"
	"github.com/strandedsim/stranded-tui/internal/text"
	"github.com/strandedsim/stranded-tui/internal/util"
)

// Run boots the TUI program and blocks until it exits.
func Run(ctx context.Context, tracker *knowledge.Tracker, narrator text.Narrator, archive RunArchiver, cfg util.Config) error {
	m := initialModel(ctx, tracker, narrator, archive, cfg)
	program := tea.NewProgram(m, tea.WithContext(ctx), tea.WithAltScreen())
	_, err := program.Run()
	return err
}
