package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"twelveweeks/internal/engine"
	"twelveweeks/internal/storage"
	"twelveweeks/internal/ui"
)

type dayModel struct {
	svc  *engine.Service
	date string

	width  int
	height int

	entry storage.DailyEntry

	selected      int
	pendingDelete bool

	lastLog string
	loading bool
	err     error
}

type dayLoadedMsg struct {
	entry storage.DailyEntry
	err   error
}

func newDayModel(svc *engine.Service, date string) dayModel {
	return dayModel{
		svc:     svc,
		date:    date,
		loading: true,
		lastLog: "Loaded.",
	}
}

func (m dayModel) Init() tea.Cmd {
	return m.loadCmd(m.date)
}

func (m dayModel) loadCmd(date string) tea.Cmd {
	return func() tea.Msg {
		entry, err := m.svc.EntryForDate(date)
		return dayLoadedMsg{entry: entry, err: err}
	}
}

func (m dayModel) setTierCmd(index int, tier engine.Tier) tea.Cmd {
	return func() tea.Msg {
		entry, err := m.svc.SetTaskTier(m.date, index, tier)
		return dayLoadedMsg{entry: entry, err: err}
	}
}

func (m dayModel) deleteCmd(index int) tea.Cmd {
	return func() tea.Msg {
		entry, err := m.svc.DeleteTask(m.date, index)
		return dayLoadedMsg{entry: entry, err: err}
	}
}

func (m dayModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case dayLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.lastLog = "Error: " + msg.err.Error()
			return m, nil
		}
		m.entry = msg.entry
		if m.selected >= len(m.entry.Tasks) {
			m.selected = len(m.entry.Tasks) - 1
		}
		if m.selected < 0 {
			m.selected = 0
		}
		m.lastLog = fmt.Sprintf("Refreshed at %s.", time.Now().Format("15:04:05"))
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m dayModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// A pending delete only accepts confirm/decline.
	if m.pendingDelete {
		switch msg.String() {
		case "y", "Y":
			m.pendingDelete = false
			m.lastLog = "Deleting…"
			return m, m.deleteCmd(m.selected)
		default:
			m.pendingDelete = false
			m.lastLog = "Delete cancelled."
			return m, nil
		}
	}

	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "r":
		m.loading = true
		m.lastLog = "Refreshing…"
		return m, m.loadCmd(m.date)
	case "up", "k":
		if m.selected > 0 {
			m.selected--
		}
		return m, nil
	case "down", "j":
		if m.selected < len(m.entry.Tasks)-1 {
			m.selected++
		}
		return m, nil
	case "left", "h":
		prev, err := engine.ShiftDate(m.date, -1)
		if err != nil {
			m.lastLog = "Error: " + err.Error()
			return m, nil
		}
		m.date = prev
		m.loading = true
		return m, m.loadCmd(prev)
	case "right", "l":
		next, err := engine.ShiftDate(m.date, 1)
		if err != nil {
			m.lastLog = "Error: " + err.Error()
			return m, nil
		}
		m.date = next
		m.loading = true
		return m, m.loadCmd(next)
	case "s", "a", "b", "c":
		if len(m.entry.Tasks) == 0 {
			m.lastLog = "No tasks to rate."
			return m, nil
		}
		tier := engine.ParseTier(msg.String())
		m.lastLog = fmt.Sprintf("Setting tier %s…", tier)
		return m, m.setTierCmd(m.selected, tier)
	case "x", "d":
		if len(m.entry.Tasks) == 0 {
			m.lastLog = "No tasks to delete."
			return m, nil
		}
		m.pendingDelete = true
		m.lastLog = fmt.Sprintf("Delete %q? (y/n)", m.entry.Tasks[m.selected].TaskID)
		return m, nil
	}
	return m, nil
}

func (m dayModel) View() string {
	if m.err != nil {
		return "Error: " + m.err.Error() + "\n\nPress q to quit.\n"
	}

	var body strings.Builder
	body.WriteString(m.renderHeader())
	body.WriteString("\n\n")
	body.WriteString(m.renderTasks())
	body.WriteString("\n")
	body.WriteString(m.renderKeys())
	body.WriteString("\n")
	body.WriteString(m.lastLog)
	body.WriteString("\n")
	return body.String()
}

func (m dayModel) renderHeader() string {
	score, ok := engine.AggregateScore(m.entry.Tasks)
	return fmt.Sprintf("%s  %s  %s %s",
		ui.Heading(ui.IconCalendar, "Daily Tasks"),
		ui.Key.Render(m.date),
		ui.Muted.Render("day score:"),
		ui.ScoreText(score, ok),
	)
}

func (m dayModel) renderTasks() string {
	if m.loading {
		return "Loading…"
	}
	if len(m.entry.Tasks) == 0 {
		return ui.Muted.Render("(no tasks — add some with: twy today add <name>)")
	}

	var out []string
	for i, task := range m.entry.Tasks {
		cursor := "  "
		name := task.TaskID
		if i == m.selected {
			cursor = "> "
			name = ui.SelectedRow.Render(name)
		}
		notes := ""
		if task.Notes != "" {
			notes = "  " + ui.Muted.Render(task.Notes)
		}
		out = append(out, fmt.Sprintf("%s[%s] %s%s", cursor, ui.TierBadge(task.Tier), name, notes))
	}
	return strings.Join(out, "\n")
}

func (m dayModel) renderKeys() string {
	keys := []string{
		"- ↑/↓ or j/k: move",
		"- ←/→ or h/l: previous/next day",
		"- s/a/b/c: set tier",
		"- x: delete task (asks first)",
		"- r: refresh",
		"- q: quit",
	}
	return ui.Muted.Render(strings.Join(keys, "\n"))
}
