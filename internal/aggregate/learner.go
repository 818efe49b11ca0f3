package aggregate

import (
	"github.com/abhisek/learnlens/internal/dataset"
	"github.com/abhisek/learnlens/internal/risk"
)

// Summary is the derived, read-only view of one learner.
type Summary struct {
	ID         string          `json:"id"`
	Grade      string          `json:"grade,omitempty"`
	HasBarrier bool            `json:"has_barrier"`
	Notes      []string        `json:"notes,omitempty"`
	Marks      Stat            `json:"marks"`
	Attendance Stat            `json:"attendance"`
	Subjects   []SubjectSeries `json:"subjects,omitempty"`

	// Risk is nil unless both averages are available.
	Risk *risk.Assessment `json:"risk,omitempty"`
}

// AvgMark returns the mean mark over every record of the learner.
func (s Summary) AvgMark() (float64, bool) {
	return s.Marks.Mean()
}

// AvgAttendance returns the mean attendance over every record of the learner.
func (s Summary) AvgAttendance() (float64, bool) {
	return s.Attendance.Mean()
}

// Subject returns the term series for a subject.
func (s Summary) Subject(name string) (Series, bool) {
	for _, ss := range s.Subjects {
		if ss.Subject == name {
			return ss.Marks, true
		}
	}
	return nil, false
}

// TermCount returns the longest series length across subjects.
func (s Summary) TermCount() int {
	n := 0
	for _, ss := range s.Subjects {
		if len(ss.Marks) > n {
			n = len(ss.Marks)
		}
	}
	return n
}

// Options tunes the reduction pass.
type Options struct {
	Thresholds risk.Thresholds
}

// DefaultOptions returns Options with the default risk thresholds.
func DefaultOptions() Options {
	return Options{Thresholds: risk.DefaultThresholds()}
}

type accumulator struct {
	summary  Summary
	subjects map[string]int
	notes    map[string]bool
}

// Learners groups records by learner and reduces each group to a Summary.
// Summaries come back in order of each learner's first record. The grade and
// barrier flag are taken from that first record.
func Learners(records []dataset.Record, opts Options) []Summary {
	index := make(map[string]int)
	var accs []*accumulator

	for _, rec := range records {
		id := rec.LearnerID.String()
		i, ok := index[id]
		if !ok {
			i = len(accs)
			index[id] = i
			accs = append(accs, &accumulator{
				summary: Summary{
					ID:         id,
					Grade:      rec.Grade.String(),
					HasBarrier: rec.LearningBarrier,
				},
				subjects: make(map[string]int),
				notes:    make(map[string]bool),
			})
		}
		accs[i].add(rec)
	}

	out := make([]Summary, 0, len(accs))
	for _, acc := range accs {
		s := acc.summary
		mark, okMark := s.AvgMark()
		att, okAtt := s.AvgAttendance()
		if okMark && okAtt {
			a := risk.Assess(mark, att, s.HasBarrier, opts.Thresholds)
			s.Risk = &a
		}
		out = append(out, s)
	}
	return out
}

func (a *accumulator) add(rec dataset.Record) {
	s := &a.summary

	if rec.Mark != nil {
		s.Marks.Add(*rec.Mark)
		if rec.HasTerm() {
			j, ok := a.subjects[rec.Subject]
			if !ok {
				j = len(s.Subjects)
				a.subjects[rec.Subject] = j
				s.Subjects = append(s.Subjects, SubjectSeries{Subject: rec.Subject})
			}
			s.Subjects[j].Marks.Set(rec.Term, *rec.Mark)
		}
	}
	if rec.Attendance != nil {
		s.Attendance.Add(*rec.Attendance)
	}
	if rec.TeacherNotes != "" && !a.notes[rec.TeacherNotes] {
		a.notes[rec.TeacherNotes] = true
		s.Notes = append(s.Notes, rec.TeacherNotes)
	}
}

// WithAverages returns the learners that have both a mark and an attendance
// average, and the IDs of those that do not.
func WithAverages(all []Summary) (ok []Summary, skipped []string) {
	for _, s := range all {
		_, m := s.AvgMark()
		_, a := s.AvgAttendance()
		if m && a {
			ok = append(ok, s)
			continue
		}
		skipped = append(skipped, s.ID)
	}
	return ok, skipped
}

// WithTrends returns the learners that have at least one subject series.
func WithTrends(all []Summary) (ok []Summary, skipped []string) {
	for _, s := range all {
		if len(s.Subjects) > 0 {
			ok = append(ok, s)
			continue
		}
		skipped = append(skipped, s.ID)
	}
	return ok, skipped
}
