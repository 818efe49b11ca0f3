package scatter

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

const tooltipWidth = 30

// ScatterScreen plots average attendance against average mark.
type ScatterScreen struct {
	learners []aggregate.Summary
	plot     *chart.Scatter
	cursor   int
	width    int
	height   int
}

var _ screen.Screen = (*ScatterScreen)(nil)

// New creates a scatter screen over the given learners.
func New(learners []aggregate.Summary) *ScatterScreen {
	s := &ScatterScreen{learners: learners}
	s.resize(layout.MinWidth, layout.MinHeight-6)
	return s
}

func (s *ScatterScreen) resize(width, height int) {
	if s.plot != nil && width == s.width && height == s.height {
		return
	}
	s.width, s.height = width, height
	w := width - tooltipWidth - 2
	if w < 20 {
		w = 20
	}
	s.plot = chart.NewScatter(s.learners, w, height)
	if s.cursor >= len(s.plot.Learners) {
		s.cursor = len(s.plot.Learners) - 1
	}
}

func (s *ScatterScreen) Init() tea.Cmd {
	return nil
}

func (s *ScatterScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}
	if kmsg.String() == "q" {
		return s, router.Back
	}
	if len(s.plot.Learners) == 0 {
		return s, nil
	}
	switch kmsg.String() {
	case "left", "h":
		s.cursor = s.plot.Neighbor(s.cursor, -1, 0)
	case "right", "l":
		s.cursor = s.plot.Neighbor(s.cursor, 1, 0)
	case "up", "k":
		s.cursor = s.plot.Neighbor(s.cursor, 0, -1)
	case "down", "j":
		s.cursor = s.plot.Neighbor(s.cursor, 0, 1)
	case "tab":
		s.cursor = (s.cursor + 1) % len(s.plot.Learners)
	case "shift+tab":
		s.cursor = (s.cursor - 1 + len(s.plot.Learners)) % len(s.plot.Learners)
	}
	return s, nil
}

// Selected returns the learner under the cursor.
func (s *ScatterScreen) Selected() (aggregate.Summary, bool) {
	if s.cursor < 0 || s.cursor >= len(s.plot.Learners) {
		return aggregate.Summary{}, false
	}
	return s.plot.Learners[s.cursor], true
}

func (s *ScatterScreen) View(width, height int) string {
	s.resize(width, height)
	if len(s.plot.Learners) == 0 {
		return lipgloss.NewStyle().
			Width(width).
			Height(height).
			Align(lipgloss.Center, lipgloss.Center).
			Foreground(theme.TextDim).
			Render("No learners have both a mark and an attendance average.")
	}

	side := []string{legendLine(false), legendLine(true), ""}
	if l, ok := s.Selected(); ok {
		side = append(side, chart.Tooltip(chart.ScatterTooltip(l)))
	}
	side = append(side, "", theme.Hint.Render(fmt.Sprintf("%d of %d learners", s.cursor+1, len(s.plot.Learners))))

	return lipgloss.JoinHorizontal(lipgloss.Top,
		s.plot.Render(s.cursor),
		"  ",
		lipgloss.NewStyle().Width(tooltipWidth).Render(lipgloss.JoinVertical(lipgloss.Left, side...)),
	)
}

func legendLine(barrier bool) string {
	label := "No Barrier Flag"
	if barrier {
		label = "Learning Barrier Flag"
	}
	return lipgloss.NewStyle().Foreground(theme.BarrierColor(barrier)).Render("●") + " " + theme.Body.Render(label)
}

func (s *ScatterScreen) Title() string {
	return "Scatter plot"
}

func (s *ScatterScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "←↑↓→", Description: "Move"},
		{Key: "Tab", Description: "Next"},
		{Key: "Esc", Description: "Back"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}
