package components

import (
	"fmt"
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/learnlens/internal/ui/theme"
)

// ShareBar is a labelled horizontal bar showing Count out of Total.
type ShareBar struct {
	Label string
	Count int
	Total int
	Color color.Color
	Width int
	// LabelWidth pads the label so stacked bars line up.
	LabelWidth int
}

// Fraction returns Count/Total, or 0 when Total is zero.
func (b ShareBar) Fraction() float64 {
	if b.Total <= 0 {
		return 0
	}
	f := float64(b.Count) / float64(b.Total)
	return min(max(f, 0), 1)
}

// View renders the label, the bar and the count.
func (b ShareBar) View() string {
	label := lipgloss.NewStyle().Foreground(theme.Text).Render(b.Label)
	if pad := b.LabelWidth - lipgloss.Width(b.Label); pad > 0 {
		label += strings.Repeat(" ", pad)
	}
	count := fmt.Sprintf(" %3d", b.Count)

	barWidth := b.Width - lipgloss.Width(label) - 2 - len(count)
	if barWidth < 4 {
		barWidth = 4
	}
	filled := int(float64(barWidth)*b.Fraction() + 0.5)
	if b.Count > 0 && filled == 0 {
		filled = 1
	}

	fg := b.Color
	if fg == nil {
		fg = theme.Secondary
	}

	return label + "  " +
		lipgloss.NewStyle().Foreground(fg).Render(strings.Repeat("█", filled)) +
		lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("░", barWidth-filled)) +
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(count)
}
