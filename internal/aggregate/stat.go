package aggregate

// Stat accumulates a running sum for an arithmetic mean.
type Stat struct {
	Sum   float64 `json:"sum"`
	Count int     `json:"count"`
}

// Add folds one observation into the stat.
func (s *Stat) Add(v float64) {
	s.Sum += v
	s.Count++
}

// Mean returns the arithmetic mean, or false when nothing was observed.
func (s Stat) Mean() (float64, bool) {
	if s.Count == 0 {
		return 0, false
	}
	return s.Sum / float64(s.Count), true
}
