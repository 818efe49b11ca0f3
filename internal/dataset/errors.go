package dataset

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidShape is returned when the input is neither a list of records
// nor an object whose values are records.
var ErrInvalidShape = errors.New("invalid input shape")

// Issue describes one record rejected at the boundary.
type Issue struct {
	// Index is the record's position after shape normalization.
	Index int `json:"index"`
	// Key is the wrapping object key for indexed input; empty for lists.
	Key       string `json:"key,omitempty"`
	LearnerID string `json:"learner_id,omitempty"`
	Message   string `json:"message"`
}

func (i Issue) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "record %d", i.Index)
	if i.Key != "" {
		fmt.Fprintf(&b, " (key %q)", i.Key)
	}
	if i.LearnerID != "" {
		fmt.Fprintf(&b, " learner %s", i.LearnerID)
	}
	b.WriteString(": ")
	b.WriteString(i.Message)
	return b.String()
}

// IssuesError is returned by strict loads when any record was rejected.
type IssuesError struct {
	Issues []Issue
}

func (e *IssuesError) Error() string {
	switch len(e.Issues) {
	case 0:
		return "no invalid records"
	case 1:
		return "1 invalid record: " + e.Issues[0].String()
	default:
		return fmt.Sprintf("%d invalid records, first: %s", len(e.Issues), e.Issues[0].String())
	}
}
