package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/learnlens/internal/screen"
)

// stubScreen is a minimal screen for testing.
type stubScreen struct {
	title   string
	initRan bool
	updates int
}

func (s *stubScreen) Init() tea.Cmd {
	s.initRan = true
	return nil
}

func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) {
	s.updates++
	return s, nil
}
func (s *stubScreen) View(int, int) string { return s.title }
func (s *stubScreen) Title() string        { return s.title }

func TestPush(t *testing.T) {
	r := New(&stubScreen{title: "home"})

	scatter := &stubScreen{title: "scatter"}
	r.Push(scatter)

	if r.Depth() != 2 {
		t.Errorf("expected depth 2, got %d", r.Depth())
	}
	if r.Active().Title() != "scatter" {
		t.Errorf("expected active 'scatter', got %q", r.Active().Title())
	}
	if !scatter.initRan {
		t.Error("expected Init() to run on pushed screen")
	}
}

func TestPop(t *testing.T) {
	r := New(&stubScreen{title: "home"})
	r.Push(&stubScreen{title: "trends"})
	r.Pop()

	if r.Depth() != 1 {
		t.Errorf("expected depth 1, got %d", r.Depth())
	}
	if r.Active().Title() != "home" {
		t.Errorf("expected active 'home', got %q", r.Active().Title())
	}
}

func TestPopNoopAtBottom(t *testing.T) {
	r := New(&stubScreen{title: "home"})
	r.Pop()

	if r.Depth() != 1 {
		t.Errorf("expected depth 1 after pop at bottom, got %d", r.Depth())
	}
}

func TestNavigationMessages(t *testing.T) {
	home := &stubScreen{title: "home"}
	r := New(home)

	r.Update(Push(&stubScreen{title: "scatter"})())
	if r.Active().Title() != "scatter" {
		t.Fatalf("expected active 'scatter', got %q", r.Active().Title())
	}

	r.Update(Back())
	if r.Active() != home {
		t.Fatalf("expected home after back, got %q", r.Active().Title())
	}
	if home.updates != 0 {
		t.Errorf("navigation messages should not reach screens, got %d updates", home.updates)
	}
}

func TestUpdateForwardsToActive(t *testing.T) {
	home := &stubScreen{title: "home"}
	r := New(home)

	r.Update(tea.KeyPressMsg{Code: tea.KeyDown})

	if home.updates != 1 {
		t.Errorf("expected 1 update, got %d", home.updates)
	}
	if got := r.View(80, 24); got != "home" {
		t.Errorf("expected view 'home', got %q", got)
	}
}
