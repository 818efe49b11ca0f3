package aggregate

import "testing"

func TestSeries_SetExtends(t *testing.T) {
	var s Series
	s.Set(4, 80)
	if len(s) != 4 {
		t.Fatalf("len = %d, want 4", len(s))
	}
	if s.Count() != 1 {
		t.Errorf("Count = %d, want 1", s.Count())
	}
	for term := 1; term <= 3; term++ {
		if _, ok := s.At(term); ok {
			t.Errorf("term %d should be empty", term)
		}
	}
}

func TestSeries_SetIgnoresInvalidTerm(t *testing.T) {
	var s Series
	s.Set(0, 50)
	s.Set(-2, 50)
	if len(s) != 0 {
		t.Errorf("len = %d, want 0", len(s))
	}
}

func TestSeries_AtOutOfRange(t *testing.T) {
	s := Series{{Value: 10, Present: true}}
	if _, ok := s.At(2); ok {
		t.Error("At(2) should be absent")
	}
	if _, ok := s.At(0); ok {
		t.Error("At(0) should be absent")
	}
}

func TestSeries_Segments(t *testing.T) {
	var s Series
	s.Set(1, 40)
	s.Set(2, 45)
	s.Set(4, 60)
	s.Set(6, 70)
	s.Set(7, 75)

	got := s.Segments()
	want := [][]int{{0, 1}, {3}, {5, 6}}
	if len(got) != len(want) {
		t.Fatalf("Segments = %v, want %v", got, want)
	}
	for i := range want {
		if len(got[i]) != len(want[i]) {
			t.Fatalf("Segments = %v, want %v", got, want)
		}
		for j := range want[i] {
			if got[i][j] != want[i][j] {
				t.Errorf("Segments = %v, want %v", got, want)
			}
		}
	}
}

func TestSeries_Pointers(t *testing.T) {
	var s Series
	s.Set(1, 40)
	s.Set(3, 60)

	p := s.Pointers()
	if len(p) != 3 {
		t.Fatalf("len = %d, want 3", len(p))
	}
	if p[0] == nil || *p[0] != 40 {
		t.Errorf("p[0] = %v, want 40", p[0])
	}
	if p[1] != nil {
		t.Errorf("p[1] = %v, want nil", *p[1])
	}
}

func TestStat_MeanEmpty(t *testing.T) {
	var s Stat
	if _, ok := s.Mean(); ok {
		t.Error("empty stat should have no mean")
	}
	s.Add(40)
	s.Add(60)
	if m, ok := s.Mean(); !ok || m != 50 {
		t.Errorf("Mean = %v, %v; want 50, true", m, ok)
	}
}
