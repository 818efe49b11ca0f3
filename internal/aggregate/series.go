package aggregate

// Point is one slot of a term series. A slot without an observation has
// Present == false and must never be read as a zero mark.
type Point struct {
	Value   float64 `json:"value"`
	Present bool    `json:"present"`
}

// Series is a per-subject sequence of marks indexed by term - 1.
type Series []Point

// Set stores v for a 1-based term, extending the series with empty slots
// as needed. Terms below 1 are ignored.
func (s *Series) Set(term int, v float64) {
	if term < 1 {
		return
	}
	for len(*s) < term {
		*s = append(*s, Point{})
	}
	(*s)[term-1] = Point{Value: v, Present: true}
}

// At returns the mark for a 1-based term.
func (s Series) At(term int) (float64, bool) {
	if term < 1 || term > len(s) {
		return 0, false
	}
	p := s[term-1]
	return p.Value, p.Present
}

// Count returns the number of present slots.
func (s Series) Count() int {
	n := 0
	for _, p := range s {
		if p.Present {
			n++
		}
	}
	return n
}

// Segments splits the series into runs of consecutive present slots, each
// run given as slice indices. Renderers draw one connected line per run so
// a gap is never bridged through zero.
func (s Series) Segments() [][]int {
	var (
		out [][]int
		run []int
	)
	for i, p := range s {
		if !p.Present {
			if len(run) > 0 {
				out = append(out, run)
				run = nil
			}
			continue
		}
		run = append(run, i)
	}
	if len(run) > 0 {
		out = append(out, run)
	}
	return out
}

// Pointers returns the series as optional values, nil for gaps.
func (s Series) Pointers() []*float64 {
	out := make([]*float64, len(s))
	for i := range s {
		if s[i].Present {
			v := s[i].Value
			out[i] = &v
		}
	}
	return out
}

// SubjectSeries is the term series for one subject.
type SubjectSeries struct {
	Subject string `json:"subject"`
	Marks   Series `json:"marks"`
}
