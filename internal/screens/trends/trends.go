package trends

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/learnlens/internal/aggregate"
	"github.com/abhisek/learnlens/internal/chart"
	"github.com/abhisek/learnlens/internal/router"
	"github.com/abhisek/learnlens/internal/screen"
	"github.com/abhisek/learnlens/internal/ui/components"
	"github.com/abhisek/learnlens/internal/ui/layout"
	"github.com/abhisek/learnlens/internal/ui/theme"
)

const (
	tooltipWidth = 34
	filterRows   = 2
)

// TrendsScreen lists per-subject sparklines for each learner, narrowed by
// a learner ID filter.
type TrendsScreen struct {
	learners     []aggregate.Summary
	grid         *chart.Trends
	filter       components.Filter
	cursor       int
	scrollOffset int
	lastWidth    int
}

var (
	_ screen.Screen          = (*TrendsScreen)(nil)
	_ screen.InputCapturer   = (*TrendsScreen)(nil)
	_ screen.KeyHintProvider = (*TrendsScreen)(nil)
)

// New creates a trends screen.
func New(learners []aggregate.Summary) *TrendsScreen {
	t := &TrendsScreen{
		learners: learners,
		filter:   components.NewFilter("filter by learner ID", 32),
	}
	t.rebuild(layout.MinWidth)
	return t
}

func (t *TrendsScreen) rebuild(width int) {
	t.lastWidth = width
	var matched []aggregate.Summary
	for _, l := range t.learners {
		if t.filter.Match(l.ID) {
			matched = append(matched, l)
		}
	}
	w := width - tooltipWidth - 2
	if w < 30 {
		w = 30
	}
	t.grid = chart.NewTrends(matched, w)
	if t.cursor >= len(t.grid.Learners) {
		t.cursor = len(t.grid.Learners) - 1
	}
	if t.cursor < 0 && len(t.grid.Learners) > 0 {
		t.cursor = 0
	}
}

func (t *TrendsScreen) Init() tea.Cmd {
	return nil
}

// CapturingInput is true while the filter is being edited.
func (t *TrendsScreen) CapturingInput() bool {
	return t.filter.Focused()
}

func (t *TrendsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return t, nil
	}

	if t.filter.Focused() {
		switch kmsg.String() {
		case "enter", "tab":
			t.filter.Blur()
			return t, nil
		case "esc":
			t.filter.Clear()
			t.filter.Blur()
			t.rebuild(t.lastWidth)
			return t, nil
		}
		var cmd tea.Cmd
		t.filter, cmd = t.filter.Update(msg)
		t.rebuild(t.lastWidth)
		return t, cmd
	}

	switch kmsg.String() {
	case "/":
		return t, t.filter.Focus()
	case "q":
		return t, router.Back
	case "up", "k":
		t.move(-1)
	case "down", "j":
		t.move(1)
	case "pgup":
		t.move(-10)
	case "pgdown":
		t.move(10)
	}
	return t, nil
}

func (t *TrendsScreen) move(delta int) {
	n := len(t.grid.Learners)
	if n == 0 {
		return
	}
	t.cursor = max(0, min(n-1, t.cursor+delta))
}

// Selected returns the learner under the cursor.
func (t *TrendsScreen) Selected() (aggregate.Summary, bool) {
	if t.cursor < 0 || t.cursor >= len(t.grid.Learners) {
		return aggregate.Summary{}, false
	}
	return t.grid.Learners[t.cursor], true
}

func (t *TrendsScreen) adjustScroll(visible int) {
	if t.cursor < t.scrollOffset {
		t.scrollOffset = t.cursor
	}
	if t.cursor >= t.scrollOffset+visible {
		t.scrollOffset = t.cursor - visible + 1
	}
	if t.scrollOffset < 0 {
		t.scrollOffset = 0
	}
}

func (t *TrendsScreen) View(width, height int) string {
	if width != t.lastWidth {
		t.rebuild(width)
	}

	filterLine := t.filter.View()
	if !t.filter.Focused() && t.filter.Value() == "" {
		filterLine = theme.Hint.Render("press / to filter learners")
	}

	if len(t.grid.Learners) == 0 {
		msg := "No learners have subject marks by term."
		if t.filter.Value() != "" {
			msg = fmt.Sprintf("No learners match %q.", t.filter.Value())
		}
		return filterLine + "\n\n" + theme.Hint.Render(msg)
	}

	visible := (height - filterRows) / t.grid.BlockHeight()
	if visible < 1 {
		visible = 1
	}
	t.adjustScroll(visible)

	var side []string
	if l, ok := t.Selected(); ok {
		side = append(side, chart.Tooltip(chart.TrendTooltip(l)))
	}
	side = append(side, "", theme.Hint.Render(fmt.Sprintf("%d of %d learners", t.cursor+1, len(t.grid.Learners))))
	side = append(side, lipgloss.NewStyle().Foreground(theme.LowMark).Render("▇")+theme.Hint.Render(" mark below 50"))

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		t.grid.Render(t.cursor, t.scrollOffset, visible),
		"  ",
		lipgloss.JoinVertical(lipgloss.Left, side...),
	)
	return filterLine + "\n\n" + body
}

func (t *TrendsScreen) Title() string {
	return "Subject trends"
}

func (t *TrendsScreen) KeyHints() []layout.KeyHint {
	if t.filter.Focused() {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Apply"},
			{Key: "Esc", Description: "Clear"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Move"},
		{Key: "/", Description: "Filter"},
		{Key: "Esc", Description: "Back"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}
