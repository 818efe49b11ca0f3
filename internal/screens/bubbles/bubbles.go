package bubbles

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/learnlens/internal/aggregate"
	"github.com/abhisek/learnlens/internal/chart"
	"github.com/abhisek/learnlens/internal/router"
	"github.com/abhisek/learnlens/internal/screen"
	"github.com/abhisek/learnlens/internal/ui/layout"
	"github.com/abhisek/learnlens/internal/ui/theme"
)

const tooltipWidth = 46

// BubblesScreen shows one bubble per assessed learner, sized by risk and
// colored by primary concern.
type BubblesScreen struct {
	learners  []aggregate.Summary
	chart     *chart.Bubbles
	cursor    int
	firstRow  int
	lastWidth int
}

var _ screen.Screen = (*BubblesScreen)(nil)

// New creates a bubble chart screen.
func New(learners []aggregate.Summary) *BubblesScreen {
	b := &BubblesScreen{learners: learners}
	b.resize(layout.MinWidth)
	return b
}

func (b *BubblesScreen) resize(width int) {
	if b.chart != nil && width == b.lastWidth {
		return
	}
	b.lastWidth = width
	w := width - tooltipWidth - 2
	if w < 16 {
		w = 16
	}
	b.chart = chart.NewBubbles(b.learners, w)
	if b.cursor >= len(b.chart.Learners) {
		b.cursor = len(b.chart.Learners) - 1
	}
}

func (b *BubblesScreen) Init() tea.Cmd {
	return nil
}

func (b *BubblesScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return b, nil
	}
	switch kmsg.String() {
	case "q":
		return b, router.Back
	case "left", "h":
		b.cursor = b.chart.Move(b.cursor, -1, 0)
	case "right", "l":
		b.cursor = b.chart.Move(b.cursor, 1, 0)
	case "up", "k":
		b.cursor = b.chart.Move(b.cursor, 0, -1)
	case "down", "j":
		b.cursor = b.chart.Move(b.cursor, 0, 1)
	case "home", "g":
		if len(b.chart.Learners) > 0 {
			b.cursor = 0
		}
	case "end", "G":
		b.cursor = len(b.chart.Learners) - 1
	}
	return b, nil
}

// Selected returns the learner under the cursor.
func (b *BubblesScreen) Selected() (aggregate.Summary, bool) {
	if b.cursor < 0 || b.cursor >= len(b.chart.Learners) {
		return aggregate.Summary{}, false
	}
	return b.chart.Learners[b.cursor], true
}

// adjustScroll keeps the selected row inside the visible window.
func (b *BubblesScreen) adjustScroll(visible int) {
	if b.cursor < 0 {
		b.firstRow = 0
		return
	}
	row := b.chart.RowOf(b.cursor)
	if row < b.firstRow {
		b.firstRow = row
	}
	if row >= b.firstRow+visible {
		b.firstRow = row - visible + 1
	}
}

func (b *BubblesScreen) View(width, height int) string {
	b.resize(width)
	if len(b.chart.Learners) == 0 {
		return lipgloss.NewStyle().
			Width(width).
			Height(height).
			Align(lipgloss.Center, lipgloss.Center).
			Foreground(theme.TextDim).
			Render("No learners could be assessed for risk.")
	}

	visible := b.chart.RowsFor(height)
	b.adjustScroll(visible)

	var side []string
	if l, ok := b.Selected(); ok {
		side = append(side, chart.Tooltip(chart.BubbleTooltip(l)))
	}
	side = append(side, "", theme.Hint.Render(fmt.Sprintf("%d of %d learners", b.cursor+1, len(b.chart.Learners))))
	if b.chart.Rows() > visible {
		side = append(side, theme.Hint.Render(fmt.Sprintf("rows %d-%d of %d", b.firstRow+1, min(b.firstRow+visible, b.chart.Rows()), b.chart.Rows())))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top,
		b.chart.Render(b.cursor, b.firstRow, visible),
		"  ",
		lipgloss.JoinVertical(lipgloss.Left, side...),
	)
}

func (b *BubblesScreen) Title() string {
	return "Risk bubbles"
}

func (b *BubblesScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "←↑↓→", Description: "Move"},
		{Key: "g/G", Description: "First/Last"},
		{Key: "Esc", Description: "Back"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}
