package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/learnlens/internal/risk"
)

// Brand palette, tuned for a dark terminal background.
var (
	Primary   = lipgloss.Color("#4F9BD9") // Brand blue, lifted for contrast
	Secondary = lipgloss.Color("#00A99D") // Accent teal
	Accent    = lipgloss.Color("#E97451") // Warm orange
	Alert     = lipgloss.Color("#C14444") // Soft red
	LowMark   = lipgloss.Color("#E63946") // Sparkline marks below 50
	Text      = lipgloss.Color("#F8F9FA") // Near white
	TextDim   = lipgloss.Color("#94A3B8") // Slate
	Grid      = lipgloss.Color("#3A4452") // Faint grid lines
	Axis      = lipgloss.Color("#CED4DA") // Axis lines and ticks
	BgDark    = lipgloss.Color("#0B1622") // Deep navy
	BgCard    = lipgloss.Color("#14263A") // Card navy
	Border    = lipgloss.Color("#2E4A66") // Border navy
)

// ConcernColor maps a primary concern to its terminal color.
func ConcernColor(c risk.Concern) color.Color {
	switch c {
	case risk.ConcernAcademic:
		return Alert
	case risk.ConcernAttendance:
		return Accent
	case risk.ConcernLearningSupport:
		return Secondary
	default:
		return Primary
	}
}

// BarrierColor is the scatter plot point color for a learner.
func BarrierColor(hasBarrier bool) color.Color {
	if hasBarrier {
		return Secondary
	}
	return Primary
}

// MarkColor highlights failing marks.
func MarkColor(mark float64) color.Color {
	if mark < 50 {
		return LowMark
	}
	return Primary
}

// Typography
var (
	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)
)

// Layout
var (
	Tooltip = lipgloss.NewStyle().
		Foreground(Text).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Axis).
		Padding(0, 1)
)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)
)
