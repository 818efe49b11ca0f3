package home

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/learnlens/internal/risk"
	"github.com/abhisek/learnlens/internal/ui/components"
	"github.com/abhisek/learnlens/internal/ui/theme"
)

const homeTitle = "L · E · A · R · N · L · E · N · S"

// contentWidth returns the inner width shared by every home panel.
func contentWidth(frameWidth int) int {
	w := frameWidth - 6
	if w > 64 {
		w = 64
	}
	if w < 20 {
		w = 20
	}
	return w
}

func renderTitle(cw int, source string) string {
	title := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render(homeTitle)
	sub := theme.Hint.Render(source)
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(title + "\n" + sub)
}

// renderConcernBar shows how learners split across concerns.
func renderConcernBar(counts map[risk.Concern]int, unassessed, cw int) string {
	total := unassessed
	labelWidth := 0
	for _, c := range risk.AllConcerns() {
		total += counts[c]
		labelWidth = max(labelWidth, len(c.Legend()))
	}

	lines := make([]string, 0, len(risk.AllConcerns())+1)
	for _, c := range risk.AllConcerns() {
		lines = append(lines, components.ShareBar{
			Label:      c.Legend(),
			Count:      counts[c],
			Total:      total,
			Color:      theme.ConcernColor(c),
			Width:      cw - 4,
			LabelWidth: labelWidth,
		}.View())
	}
	if unassessed > 0 {
		lines = append(lines, theme.Hint.Render(fmt.Sprintf("%d without both averages", unassessed)))
	}

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Border).
		Padding(0, 1).
		Render(strings.Join(lines, "\n"))
}

const buttonWidth = 26

// renderButtons draws each menu item as a fixed-width button.
func renderButtons(labels []string, selected int, disabled map[int]bool, cw int) string {
	base := lipgloss.NewStyle().
		Width(buttonWidth).
		Align(lipgloss.Center).
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1)

	selectedBtn := base.
		Bold(true).
		Foreground(theme.BgDark).
		Background(theme.Primary).
		BorderForeground(theme.Primary)
	normalBtn := base.
		Foreground(theme.Text).
		BorderForeground(theme.Border)
	disabledBtn := base.
		Foreground(theme.TextDim).
		BorderForeground(theme.Border)

	buttons := make([]string, 0, len(labels))
	for i, label := range labels {
		switch {
		case disabled[i]:
			buttons = append(buttons, disabledBtn.Render(label))
		case i == selected:
			buttons = append(buttons, selectedBtn.Render("▸ "+label))
		default:
			buttons = append(buttons, normalBtn.Render(label))
		}
	}

	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(strings.Join(buttons, "\n"))
}

// renderCompactMenu lists items as plain lines for short terminals.
func renderCompactMenu(labels []string, selected int, disabled map[int]bool, cw int) string {
	lines := make([]string, 0, len(labels))
	for i, label := range labels {
		switch {
		case disabled[i]:
			lines = append(lines, lipgloss.NewStyle().Foreground(theme.TextDim).Render("   "+label))
		case i == selected:
			lines = append(lines, theme.Selected.Render(" ▸ "+label))
		default:
			lines = append(lines, theme.Unselected.Render("   "+label))
		}
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(strings.Join(lines, "\n"))
}
