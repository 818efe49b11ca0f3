package chart

import (
	"strings"

	"github.com/abhisek/learnlens/internal/ui/theme"
)

// Tooltip renders lines in a bordered card. The first line is bold.
func Tooltip(lines []string) string {
	if len(lines) == 0 {
		return ""
	}
	body := make([]string, len(lines))
	copy(body, lines)
	body[0] = theme.Selected.Render(body[0])
	return theme.Tooltip.Render(strings.Join(body, "\n"))
}
