package export

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/abhisek/learnlens/internal/aggregate"
	"github.com/abhisek/learnlens/internal/dataset"
)

const input = `[
  {"LearnerID": "CH-L1", "Grade": 5, "Subject": "Maths", "Term": 1, "Mark": 40, "Attendance": 90},
  {"LearnerID": "CH-L1", "Grade": 5, "Subject": "Maths", "Term": 3, "Mark": 60, "Attendance": 80},
  {"LearnerID": "CH-L2", "Subject": "English", "Term": 2, "Mark": 75},
  {"LearnerID": "CH-L3", "Mark": 500}
]`

func load(t *testing.T) (*dataset.Dataset, []aggregate.Summary) {
	t.Helper()
	ds, err := dataset.Parse([]byte(input))
	require.NoError(t, err)
	ds.Source = "mock.json"
	return ds, aggregate.Learners(ds.Records, aggregate.DefaultOptions())
}

func TestNewReport(t *testing.T) {
	ds, learners := load(t)
	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.FixedZone("SAST", 2*3600))

	r := NewReport(ds, learners, now)

	_, err := uuid.Parse(r.ID)
	require.NoError(t, err)
	assert.Equal(t, now.UTC(), r.GeneratedAt)
	assert.Equal(t, "mock.json", r.Source)
	assert.Equal(t, "list", r.Shape)
	assert.Equal(t, 4, r.Records)
	require.Len(t, r.Learners, 2)
	require.Len(t, r.Issues, 1)

	require.NotNil(t, r.Learners[0].AvgMark)
	assert.Equal(t, 50.0, *r.Learners[0].AvgMark)
	assert.Nil(t, r.Learners[1].AvgAttendance)
}

func TestWriteJSON(t *testing.T) {
	ds, learners := load(t)

	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, NewReport(ds, learners, time.Now())))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))

	ls := decoded["learners"].([]any)
	first := ls[0].(map[string]any)
	assert.Equal(t, "CH-L1", first["id"])
	assert.Equal(t, "Academic", first["risk"].(map[string]any)["primary_concern"])

	second := ls[1].(map[string]any)
	assert.Nil(t, second["avg_attendance"])
	assert.NotContains(t, second, "risk")

	series := first["subjects"].([]any)[0].(map[string]any)["marks"].([]any)
	require.Len(t, series, 3)
	assert.Equal(t, false, series[1].(map[string]any)["present"])
}

func TestWorkbook(t *testing.T) {
	_, learners := load(t)

	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, learners))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	v, err := f.GetCellValue(learnersSheet, "A2")
	require.NoError(t, err)
	assert.Equal(t, "CH-L1", v)

	v, err = f.GetCellValue(learnersSheet, "F2")
	require.NoError(t, err)
	assert.Equal(t, "Academic", v)

	v, err = f.GetCellValue(learnersSheet, "E3")
	require.NoError(t, err)
	assert.Empty(t, v, "no attendance average")

	v, err = f.GetCellValue(trendsSheet, "C1")
	require.NoError(t, err)
	assert.Equal(t, "Term 1", v)

	v, err = f.GetCellValue(trendsSheet, "D2")
	require.NoError(t, err)
	assert.Empty(t, v, "term 2 gap stays blank")

	v, err = f.GetCellValue(trendsSheet, "E2")
	require.NoError(t, err)
	assert.Equal(t, "60", v)
}
