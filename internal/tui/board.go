package tui

import (
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"twelveweeks/internal/engine"
)

// RunDayBoard opens the interactive day view for the given date.
func RunDayBoard(svc *engine.Service, date string, out io.Writer) error {
	m := newDayModel(svc, date)
	p := tea.NewProgram(m, tea.WithOutput(out))
	_, err := p.Run()
	return err
}
