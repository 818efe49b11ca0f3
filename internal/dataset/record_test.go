package dataset

import (
	"encoding/json"
	"testing"
)

func TestLabel_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		in      string
		want    Label
		wantErr bool
	}{
		{`"CH-L2021001"`, "CH-L2021001", false},
		{`5`, "5", false},
		{`12.5`, "12.5", false},
		{`7.0`, "7", false},
		{`7e0`, "7", false},
		{`-3`, "-3", false},
		{`null`, "", false},
		{`true`, "", true},
		{`{}`, "", true},
	}

	for _, tt := range tests {
		var got Label
		err := json.Unmarshal([]byte(tt.in), &got)
		if tt.wantErr {
			if err == nil {
				t.Errorf("Unmarshal(%s): expected error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("Unmarshal(%s): unexpected error %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Unmarshal(%s) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestIssuesError_Message(t *testing.T) {
	err := &IssuesError{Issues: []Issue{
		{Index: 3, LearnerID: "CH-L1", Message: "bad mark"},
		{Index: 4, Key: "4", Message: "missing id"},
	}}
	want := `2 invalid records, first: record 3 learner CH-L1: bad mark`
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}

	single := &IssuesError{Issues: err.Issues[1:]}
	want = `1 invalid record: record 4 (key "4"): missing id`
	if single.Error() != want {
		t.Errorf("Error() = %q, want %q", single.Error(), want)
	}
}

func TestDecodeRecord_TermRange(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{`{"LearnerID": "a", "Term": 3}`, 3, false},
		{`{"LearnerID": "a", "Term": 2.0}`, 2, false},
		{`{"LearnerID": "a"}`, 0, false},
		{`{"LearnerID": "a", "Term": 53}`, 0, true},
		{`{"LearnerID": "a", "Term": 1e300}`, 0, true},
		{`{"LearnerID": "a", "Term": 1.5}`, 0, true},
	}

	for _, tt := range tests {
		rec, err := decodeRecord([]byte(tt.in))
		if tt.wantErr {
			if err == nil {
				t.Errorf("decodeRecord(%s): expected error, got term %d", tt.in, rec.Term)
			}
			continue
		}
		if err != nil {
			t.Errorf("decodeRecord(%s): unexpected error %v", tt.in, err)
			continue
		}
		if rec.Term != tt.want {
			t.Errorf("decodeRecord(%s).Term = %d, want %d", tt.in, rec.Term, tt.want)
		}
	}
}
