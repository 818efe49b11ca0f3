package export

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/learnlens/internal/aggregate"
	"github.com/abhisek/learnlens/internal/dataset"
)

// Report is the JSON document written by the json export.
type Report struct {
	ID          string          `json:"id"`
	GeneratedAt time.Time       `json:"generated_at"`
	Source      string          `json:"source"`
	Shape       string          `json:"shape"`
	Records     int             `json:"records"`
	Learners    []LearnerReport `json:"learners"`
	Issues      []dataset.Issue `json:"issues,omitempty"`
}

// LearnerReport flattens a summary for consumers that do not want to
// recompute means.
type LearnerReport struct {
	aggregate.Summary
	AvgMark       *float64 `json:"avg_mark"`
	AvgAttendance *float64 `json:"avg_attendance"`
}

// NewReport assembles a report with a fresh ID.
func NewReport(ds *dataset.Dataset, learners []aggregate.Summary, now time.Time) Report {
	r := Report{
		ID:          uuid.NewString(),
		GeneratedAt: now.UTC(),
		Source:      ds.Source,
		Shape:       ds.Shape.String(),
		Records:     ds.Total,
		Learners:    make([]LearnerReport, 0, len(learners)),
		Issues:      ds.Issues,
	}
	for _, l := range learners {
		lr := LearnerReport{Summary: l}
		if v, ok := l.AvgMark(); ok {
			lr.AvgMark = &v
		}
		if v, ok := l.AvgAttendance(); ok {
			lr.AvgAttendance = &v
		}
		r.Learners = append(r.Learners, lr)
	}
	return r
}

// WriteJSON writes the report as indented JSON.
func WriteJSON(w io.Writer, r Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	return nil
}
