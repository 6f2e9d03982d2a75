package tui

import (
	"context"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"studyquest/internal/engine"
)

func RunBoard(ctx context.Context, repo *engine.Repository, out io.Writer) error {
	m := newBoardModel(ctx, repo)
	p := tea.NewProgram(m, tea.WithOutput(out))
	_, err := p.Run()
	return err
}
