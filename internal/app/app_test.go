package app

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/learnlens/internal/aggregate"
	"github.com/abhisek/learnlens/internal/risk"
	"github.com/abhisek/learnlens/internal/router"
)

func testOptions() Options {
	l := aggregate.Summary{ID: "CH-L1"}
	l.Marks.Add(55)
	l.Attendance.Add(92)
	a := risk.Assess(55, 92, false, risk.DefaultThresholds())
	l.Risk = &a
	var s aggregate.Series
	s.Set(1, 55)
	l.Subjects = []aggregate.SubjectSeries{{Subject: "Maths", Marks: s}}
	return Options{Learners: []aggregate.Summary{l}, Source: "mock.json", Issues: 1}
}

// drain runs a command and feeds the resulting message back into the model.
func drain(t *testing.T, m AppModel, cmd tea.Cmd) AppModel {
	t.Helper()
	if cmd == nil {
		return m
	}
	next, _ := m.Update(cmd())
	return next.(AppModel)
}

func press(t *testing.T, m AppModel, msg tea.KeyPressMsg) AppModel {
	t.Helper()
	next, cmd := m.Update(msg)
	return drain(t, next.(AppModel), cmd)
}

func TestNavigateAndBack(t *testing.T) {
	m := NewAppModel(testOptions())
	assert.Equal(t, "Home", m.router.Active().Title())

	m = press(t, m, tea.KeyPressMsg{Code: tea.KeyEnter})
	assert.Equal(t, "Scatter plot", m.router.Active().Title())

	m = press(t, m, tea.KeyPressMsg{Code: tea.KeyEscape})
	assert.Equal(t, "Home", m.router.Active().Title())

	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	assert.Nil(t, cmd, "esc on home does nothing")
}

func TestEscWhileFilteringStaysOnScreen(t *testing.T) {
	m := NewAppModel(testOptions())
	for range 2 {
		m = press(t, m, tea.KeyPressMsg{Code: tea.KeyDown})
	}
	m = press(t, m, tea.KeyPressMsg{Code: tea.KeyEnter})
	require.Equal(t, "Subject trends", m.router.Active().Title())

	next, _ := m.Update(tea.KeyPressMsg{Code: '/', Text: "/"})
	m = next.(AppModel)
	next, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	m = next.(AppModel)
	assert.Equal(t, "Subject trends", m.router.Active().Title())

	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	require.NotNil(t, cmd)
	assert.Equal(t, router.PopScreenMsg{}, cmd())
}

func TestCtrlCQuits(t *testing.T) {
	m := NewAppModel(testOptions())
	_, cmd := m.Update(tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestRender(t *testing.T) {
	m := NewAppModel(testOptions())

	next, _ := m.Update(tea.WindowSizeMsg{Width: 60, Height: 20})
	assert.Contains(t, next.(AppModel).render(), "Terminal too small")

	next, _ = m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	out := ansi.Strip(next.(AppModel).render())
	assert.Contains(t, out, "learnlens")
	assert.Contains(t, out, "1 learner · 1 issue")
	assert.Contains(t, out, "Enter Select")
}
