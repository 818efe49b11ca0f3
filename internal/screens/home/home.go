package home

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/learnlens/internal/aggregate"
	"github.com/abhisek/learnlens/internal/risk"
	"github.com/abhisek/learnlens/internal/router"
	"github.com/abhisek/learnlens/internal/screen"
	"github.com/abhisek/learnlens/internal/screens/bubbles"
	"github.com/abhisek/learnlens/internal/screens/scatter"
	"github.com/abhisek/learnlens/internal/screens/trends"
	"github.com/abhisek/learnlens/internal/ui/components"
)

// HomeScreen is the landing menu.
type HomeScreen struct {
	menu       components.Menu
	labels     []string
	disabled   map[int]bool
	source     string
	counts     map[risk.Concern]int
	unassessed int
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates the home screen for a loaded dataset.
func New(learners []aggregate.Summary, source string) *HomeScreen {
	plotted, _ := aggregate.WithAverages(learners)
	withTrends, _ := aggregate.WithTrends(learners)

	counts := make(map[risk.Concern]int)
	assessed := 0
	for _, l := range learners {
		if l.Risk != nil {
			counts[l.Risk.Concern]++
			assessed++
		}
	}

	items := []components.MenuItem{
		{Label: "Scatter plot", Action: func() tea.Cmd { return router.Push(scatter.New(learners)) }, Disabled: len(plotted) == 0},
		{Label: "Risk bubbles", Action: func() tea.Cmd { return router.Push(bubbles.New(learners)) }, Disabled: assessed == 0},
		{Label: "Subject trends", Action: func() tea.Cmd { return router.Push(trends.New(learners)) }, Disabled: len(withTrends) == 0},
		{Label: "Exit", Action: func() tea.Cmd { return tea.Quit }},
	}

	labels := make([]string, len(items))
	disabled := make(map[int]bool)
	for i, item := range items {
		labels[i] = item.Label
		if item.Disabled {
			disabled[i] = true
		}
	}

	return &HomeScreen{
		menu:       components.NewMenu(items),
		labels:     labels,
		disabled:   disabled,
		source:     source,
		counts:     counts,
		unassessed: len(learners) - assessed,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	cw := contentWidth(width)
	compact := height < 24

	source := h.source
	if source == "" {
		source = "no dataset"
	}

	sections := []string{
		renderTitle(cw, source),
		renderConcernBar(h.counts, h.unassessed, cw),
	}
	if compact {
		sections = append(sections, renderCompactMenu(h.labels, h.menu.Selected, h.disabled, cw))
	} else {
		sections = append(sections, renderButtons(h.labels, h.menu.Selected, h.disabled, cw))
	}

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(strings.Join(sections, "\n\n"))
}

func (h *HomeScreen) Title() string {
	return "Home"
}

// Selected returns the label of the highlighted menu item.
func (h *HomeScreen) Selected() string {
	return h.labels[h.menu.Selected]
}
