package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// Twelveweeks theme (CLI + TUI).
// Kept intentionally small: reusable styles and a few emojis.

const (
	IconCalendar = "📅"
	IconSparkle  = "✨"
	IconPlus     = "➕"
	IconDone     = "✅"
	IconTarget   = "🎯"
	IconPencil   = "📝"
	IconInfo     = "ℹ️"
	IconWarn     = "⚠️"
	IconError    = "🧨"
	IconTrash    = "🗑️"
	IconScroll   = "📜"
	IconClock    = "🕐"
)

var (
	cPrimary = lipgloss.Color("63")  // blue
	cAccent  = lipgloss.Color("205") // magenta
	cGood    = lipgloss.Color("42")  // green
	cWarn    = lipgloss.Color("214") // orange
	cBad     = lipgloss.Color("196") // red
	cMuted   = lipgloss.Color("244") // gray
	cGold    = lipgloss.Color("220") // gold
)

var (
	Title = lipgloss.NewStyle().Bold(true).Foreground(cAccent)
	H2    = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Muted = lipgloss.NewStyle().Foreground(cMuted)
	Key   = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Good  = lipgloss.NewStyle().Bold(true).Foreground(cGood)
	Warn  = lipgloss.NewStyle().Bold(true).Foreground(cWarn)
	Bad   = lipgloss.NewStyle().Bold(true).Foreground(cBad)
	Gold  = lipgloss.NewStyle().Bold(true).Foreground(cGold)
	Dim   = lipgloss.NewStyle().Foreground(cMuted)

	Panel       = lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder()).BorderForeground(cMuted).Padding(0, 1)
	SelectedRow = lipgloss.NewStyle().Bold(true).Foreground(cGold)
)

// Tier palette matches the original scoreboard: S green, A blue, B orange,
// C red.
var tierStyles = map[string]lipgloss.Style{
	"S": Good,
	"A": H2,
	"B": Warn,
	"C": Bad,
}

func TierBadge(tier string) string {
	tier = strings.ToUpper(strings.TrimSpace(tier))
	if style, ok := tierStyles[tier]; ok {
		return style.Render(tier)
	}
	return Muted.Render(tier)
}

func Heading(icon string, title string) string {
	icon = strings.TrimSpace(icon)
	if icon != "" {
		icon += " "
	}
	return Title.Render(icon + title)
}

func LabelValue(label string, value any) string {
	return fmt.Sprintf("%s %v", Key.Render(label+":"), value)
}

// ScoreText renders a percentage, or "N/A" when there is no score at all.
func ScoreText(score int, ok bool) string {
	if !ok {
		return Muted.Render("N/A")
	}
	switch {
	case score >= 75:
		return Good.Render(fmt.Sprintf("%d%%", score))
	case score >= 50:
		return Warn.Render(fmt.Sprintf("%d%%", score))
	default:
		return Bad.Render(fmt.Sprintf("%d%%", score))
	}
}

// FormatClock renders a timestamp as "12:50:09 A.M. | March 7, 2025",
// the live-clock format of the original scoreboard.
func FormatClock(t time.Time) string {
	hours := t.Hour()
	ampm := "A.M."
	if hours >= 12 {
		ampm = "P.M."
	}
	hours = hours % 12
	if hours == 0 {
		hours = 12
	}
	timePart := fmt.Sprintf("%d:%02d:%02d %s", hours, t.Minute(), t.Second(), ampm)
	datePart := t.Format("January 2, 2006")
	return timePart + " | " + datePart
}
