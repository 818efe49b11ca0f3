package dataset

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// MaxTerm is the highest term a record may carry: one per week of a school
// year. The record schema enforces the same bound.
const MaxTerm = 52

// Record is one raw observation: a mark and/or attendance value for a
// learner in a subject and term. Records are never mutated after Parse.
type Record struct {
	LearnerID       Label    `json:"LearnerID"`
	Grade           Label    `json:"Grade,omitempty"`
	LearningBarrier bool     `json:"LearningBarrier"`
	Subject         string   `json:"Subject,omitempty"`
	Term            int      `json:"Term,omitempty"`
	Mark            *float64 `json:"Mark,omitempty"`
	Attendance      *float64 `json:"Attendance,omitempty"`

	SocioEconomicIndicator string `json:"SocioEconomicIndicator,omitempty"`
	TeacherNotes           string `json:"TeacherNotes,omitempty"`
}

// HasTerm reports whether the record can be placed in a subject series.
func (r Record) HasTerm() bool {
	return r.Subject != "" && r.Term >= 1
}

// Label is an opaque display value that may arrive as a JSON string or a
// JSON number ("CH-L2021001", 5).
type Label string

func (l Label) String() string {
	return string(l)
}

func (l *Label) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case len(b) == 0 || bytes.Equal(b, []byte("null")):
		*l = ""
		return nil
	case b[0] == '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*l = Label(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("label must be a string or number: %w", err)
	}
	*l = numberLabel(n)
	return nil
}

// numberLabel renders integral numbers without a fraction or exponent so
// 7, 7.0 and 7e0 name the same learner.
func numberLabel(n json.Number) Label {
	if i, err := n.Int64(); err == nil {
		return Label(strconv.FormatInt(i, 10))
	}
	f, err := n.Float64()
	if err != nil || math.IsInf(f, 0) {
		return Label(n.String())
	}
	if f == math.Trunc(f) && math.Abs(f) < 1<<53 {
		return Label(strconv.FormatInt(int64(f), 10))
	}
	return Label(strconv.FormatFloat(f, 'f', -1, 64))
}

// wireRecord mirrors Record but tolerates integral floats for Term
// (dataframe exports write 1.0 as often as 1).
type wireRecord struct {
	LearnerID              Label       `json:"LearnerID"`
	Grade                  Label       `json:"Grade"`
	LearningBarrier        bool        `json:"LearningBarrier"`
	Subject                string      `json:"Subject"`
	Term                   json.Number `json:"Term"`
	Mark                   *float64    `json:"Mark"`
	Attendance             *float64    `json:"Attendance"`
	SocioEconomicIndicator string      `json:"SocioEconomicIndicator"`
	TeacherNotes           string      `json:"TeacherNotes"`
}

func decodeRecord(raw []byte) (Record, error) {
	var w wireRecord
	if err := json.Unmarshal(raw, &w); err != nil {
		return Record{}, err
	}

	var term int
	if w.Term != "" {
		f, err := w.Term.Float64()
		if err != nil {
			return Record{}, fmt.Errorf("term: %w", err)
		}
		if f < 1 || f > MaxTerm || f != math.Trunc(f) {
			return Record{}, fmt.Errorf("term %s out of range 1..%d", w.Term, MaxTerm)
		}
		term = int(f)
	}

	return Record{
		LearnerID:              w.LearnerID,
		Grade:                  w.Grade,
		LearningBarrier:        w.LearningBarrier,
		Subject:                w.Subject,
		Term:                   term,
		Mark:                   w.Mark,
		Attendance:             w.Attendance,
		SocioEconomicIndicator: w.SocioEconomicIndicator,
		TeacherNotes:           w.TeacherNotes,
	}, nil
}
