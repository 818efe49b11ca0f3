package cmd

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/abhisek/learnlens/internal/dataset"
)

const cleanData = `[
  {"LearnerID": "CH-L1", "Grade": 5, "LearningBarrier": false, "Subject": "Maths", "Term": 1, "Mark": 45, "Attendance": 95},
  {"LearnerID": "CH-L1", "Grade": 5, "LearningBarrier": false, "Subject": "Maths", "Term": 2, "Mark": 55, "Attendance": 93},
  {"LearnerID": "CH-L2", "Grade": 6, "LearningBarrier": true, "Subject": "English", "Term": 1, "Mark": 80, "Attendance": 97}
]`

const dirtyData = `{
  "0": {"LearnerID": "CH-L1", "Subject": "Maths", "Term": 1, "Mark": 45, "Attendance": 95},
  "1": {"LearnerID": "CH-L2", "Subject": "Maths", "Term": 1, "Mark": 140, "Attendance": 95},
  "2": {"Subject": "Maths", "Term": 1, "Mark": 60}
}`

// workdir moves the test into a fresh directory holding data.json.
func workdir(t *testing.T, data string) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "data.json"), []byte(data), 0o644))
	return dir
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})
	err := rootCmd.Execute()
	return out.String(), err
}

func TestValidateClean(t *testing.T) {
	workdir(t, cleanData)

	out, err := execute(t, "validate", "--data", "data.json", "--strict=false")
	require.NoError(t, err)
	assert.Contains(t, out, "3 records OK (list)")
}

func TestValidateReportsIssues(t *testing.T) {
	workdir(t, dirtyData)

	out, err := execute(t, "validate", "--data", "data.json", "--strict=true")
	require.Error(t, err)

	var issues *dataset.IssuesError
	require.True(t, errors.As(err, &issues))
	assert.Len(t, issues.Issues, 2)
	assert.Contains(t, out, "2 of 3 records rejected")
	assert.Contains(t, out, `key "1"`)
}

func TestSummary(t *testing.T) {
	workdir(t, cleanData)

	out, err := execute(t, "summary", "--data", "data.json", "--strict=false")
	require.NoError(t, err)
	assert.Contains(t, out, "CH-L1")
	assert.Contains(t, out, "Academic")
	assert.Contains(t, out, "Learning Support")
}

func TestStrictLoadFails(t *testing.T) {
	workdir(t, dirtyData)

	_, err := execute(t, "summary", "--data", "data.json", "--strict=true")
	var issues *dataset.IssuesError
	assert.True(t, errors.As(err, &issues))
}

func TestMissingDataset(t *testing.T) {
	workdir(t, cleanData)

	_, err := execute(t, "summary", "--data", "missing.json", "--strict=false")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestExportJSON(t *testing.T) {
	workdir(t, dirtyData)

	out, err := execute(t, "export", "--data", "data.json", "--strict=false", "--format", "json", "--out", "-")
	require.NoError(t, err)

	var report struct {
		ID       string `json:"id"`
		Shape    string `json:"shape"`
		Learners []struct {
			ID string `json:"id"`
		} `json:"learners"`
		Issues []dataset.Issue `json:"issues"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.NotEmpty(t, report.ID)
	assert.Equal(t, "indexed", report.Shape)
	require.Len(t, report.Learners, 1)
	assert.Equal(t, "CH-L1", report.Learners[0].ID)
	assert.Len(t, report.Issues, 2)
}

func TestExportXLSX(t *testing.T) {
	dir := workdir(t, cleanData)
	path := filepath.Join(dir, "learners.xlsx")

	_, err := execute(t, "export", "--data", "data.json", "--strict=false", "--format", "xlsx", "--out", path)
	require.NoError(t, err)

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()
	v, err := f.GetCellValue("Learners", "A3")
	require.NoError(t, err)
	assert.Equal(t, "CH-L2", v)
}

func TestExportPNG(t *testing.T) {
	dir := workdir(t, cleanData)

	for _, chart := range []string{"scatter", "bubbles"} {
		path := filepath.Join(dir, chart+".png")
		_, err := execute(t, "export", "--data", "data.json", "--strict=false", "--format", "png", "--chart", chart, "--out", path)
		require.NoError(t, err, chart)
		assert.FileExists(t, path)
	}

	trends := filepath.Join(dir, "trends")
	_, err := execute(t, "export", "--data", "data.json", "--strict=false", "--format", "png", "--chart", "trends", "--out", trends)
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(trends, "CH-L1.png"))
	assert.FileExists(t, filepath.Join(trends, "CH-L2.png"))
}

func TestExportTrendsKeepsClashingNames(t *testing.T) {
	dir := workdir(t, `[
  {"LearnerID": "a/b", "Subject": "Maths", "Term": 1, "Mark": 60, "Attendance": 90},
  {"LearnerID": "a b", "Subject": "Maths", "Term": 1, "Mark": 70, "Attendance": 92}
]`)

	trends := filepath.Join(dir, "trends")
	_, err := execute(t, "export", "--data", "data.json", "--strict=false", "--format", "png", "--chart", "trends", "--out", trends)
	require.NoError(t, err)

	entries, err := os.ReadDir(trends)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
	assert.FileExists(t, filepath.Join(trends, "a_b.png"))
	assert.FileExists(t, filepath.Join(trends, "a_b-2.png"))
}

func TestExportRejectsUnknownFormat(t *testing.T) {
	workdir(t, cleanData)

	_, err := execute(t, "export", "--data", "data.json", "--strict=false", "--format", "csv", "--out", "-")
	assert.ErrorContains(t, err, `unknown format "csv"`)
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "learnlens")
}
