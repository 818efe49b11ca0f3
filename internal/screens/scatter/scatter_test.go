package scatter

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/learnlens/internal/aggregate"
	"github.com/abhisek/learnlens/internal/router"
)

func learner(id string, mark, att float64) aggregate.Summary {
	s := aggregate.Summary{ID: id}
	s.Marks.Add(mark)
	s.Attendance.Add(att)
	return s
}

func testLearners() []aggregate.Summary {
	return []aggregate.Summary{
		learner("L-low", 40, 75),
		learner("L-high", 90, 98),
		{ID: "L-none"},
	}
}

func TestScatterSkipsLearnersWithoutAverages(t *testing.T) {
	s := New(testLearners())
	assert.Len(t, s.plot.Learners, 2)

	l, ok := s.Selected()
	require.True(t, ok)
	assert.Equal(t, "L-low", l.ID)
}

func TestScatterCursorMovesToNeighbor(t *testing.T) {
	s := New(testLearners())
	s.View(100, 20)

	s.Update(tea.KeyPressMsg{Code: tea.KeyRight})
	l, _ := s.Selected()
	assert.Equal(t, "L-high", l.ID)

	s.Update(tea.KeyPressMsg{Code: tea.KeyRight})
	l, _ = s.Selected()
	assert.Equal(t, "L-high", l.ID, "no learner further right")

	s.Update(tea.KeyPressMsg{Code: 'j'})
	l, _ = s.Selected()
	assert.Equal(t, "L-low", l.ID)

	s.Update(tea.KeyPressMsg{Code: tea.KeyTab})
	l, _ = s.Selected()
	assert.Equal(t, "L-high", l.ID)
}

func TestScatterViewShowsTooltip(t *testing.T) {
	s := New(testLearners())
	out := ansi.Strip(s.View(100, 20))

	assert.Contains(t, out, "ID: L-low")
	assert.Contains(t, out, "Avg. Mark: 40.0%")
	assert.Contains(t, out, "Avg. Attendance: 75.0%")
	assert.Contains(t, out, "Learning Barrier Flag")
	assert.Contains(t, out, "1 of 2 learners")
}

func TestScatterEmpty(t *testing.T) {
	s := New([]aggregate.Summary{{ID: "L-none"}})
	out := ansi.Strip(s.View(100, 20))
	assert.Contains(t, out, "No learners")

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyRight})
	assert.Nil(t, cmd)
}

func TestScatterQuitKeyPops(t *testing.T) {
	s := New(testLearners())
	_, cmd := s.Update(tea.KeyPressMsg{Code: 'q'})
	require.NotNil(t, cmd)
	assert.Equal(t, router.PopScreenMsg{}, cmd())
}
