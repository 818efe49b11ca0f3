package bubbles

import (
	"fmt"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/learnlens/internal/aggregate"
	"github.com/abhisek/learnlens/internal/risk"
)

func assessed(id string, mark, att float64, barrier bool) aggregate.Summary {
	s := aggregate.Summary{ID: id, Grade: "7", HasBarrier: barrier}
	s.Marks.Add(mark)
	s.Attendance.Add(att)
	a := risk.Assess(mark, att, barrier, risk.DefaultThresholds())
	s.Risk = &a
	return s
}

func manyLearners(n int) []aggregate.Summary {
	out := make([]aggregate.Summary, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, assessed(fmt.Sprintf("L-%02d", i), 40+float64(i), 80+float64(i%20), i%3 == 0))
	}
	return out
}

func TestBubblesCursor(t *testing.T) {
	b := New(manyLearners(30))
	b.View(120, 20)
	perRow := b.chart.PerRow()
	require.Greater(t, perRow, 1)

	b.Update(tea.KeyPressMsg{Code: tea.KeyRight})
	l, _ := b.Selected()
	assert.Equal(t, "L-01", l.ID)

	b.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	l, _ = b.Selected()
	assert.Equal(t, fmt.Sprintf("L-%02d", 1+perRow), l.ID)

	b.Update(tea.KeyPressMsg{Code: 'G'})
	l, _ = b.Selected()
	assert.Equal(t, "L-29", l.ID)

	b.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	l, _ = b.Selected()
	assert.Equal(t, "L-29", l.ID, "down past the last row stays put")
}

func TestBubblesScrollFollowsCursor(t *testing.T) {
	b := New(manyLearners(60))
	b.View(120, 10)

	b.Update(tea.KeyPressMsg{Code: 'G'})
	out := ansi.Strip(b.View(120, 10))

	assert.Positive(t, b.firstRow)
	assert.Contains(t, out, "ID: L-59")
	assert.Contains(t, out, "60 of 60 learners")
}

func TestBubblesTooltip(t *testing.T) {
	b := New([]aggregate.Summary{assessed("L-07", 45, 95, false), {ID: "L-unassessed"}})
	out := ansi.Strip(b.View(120, 20))

	assert.Contains(t, out, "ID: L-07")
	assert.Contains(t, out, "Grade: 7")
	assert.Contains(t, out, "Concern: Academic")
	assert.Contains(t, out, "1 of 1 learners")
	assert.NotContains(t, out, "L-unassessed")
}

func TestBubblesEmpty(t *testing.T) {
	b := New(nil)
	out := ansi.Strip(b.View(100, 20))
	assert.Contains(t, out, "No learners could be assessed")

	b.Update(tea.KeyPressMsg{Code: tea.KeyRight})
	_, ok := b.Selected()
	assert.False(t, ok)
}
