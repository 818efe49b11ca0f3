package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/abhisek/learnlens/internal/aggregate"
)

const (
	learnersSheet = "Learners"
	trendsSheet   = "Trends"
)

// Workbook builds a spreadsheet with one row per learner on the Learners
// sheet and one row per learner and subject on the Trends sheet. Missing
// averages and gap terms are left as empty cells.
func Workbook(learners []aggregate.Summary) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", learnersSheet); err != nil {
		return nil, err
	}
	if _, err := f.NewSheet(trendsSheet); err != nil {
		return nil, err
	}

	header := []interface{}{"LearnerID", "Grade", "LearningBarrier", "AvgMark", "AvgAttendance", "PrimaryConcern", "AcademicRisk", "AttendanceRisk", "BarrierRisk", "Radius"}
	if err := f.SetSheetRow(learnersSheet, "A1", &header); err != nil {
		return nil, err
	}

	terms := 0
	for _, l := range learners {
		if n := l.TermCount(); n > terms {
			terms = n
		}
	}
	trendHeader := []interface{}{"LearnerID", "Subject"}
	for t := 1; t <= terms; t++ {
		trendHeader = append(trendHeader, fmt.Sprintf("Term %d", t))
	}
	if err := f.SetSheetRow(trendsSheet, "A1", &trendHeader); err != nil {
		return nil, err
	}

	trendRow := 2
	for i, l := range learners {
		row := []interface{}{l.ID, l.Grade, l.HasBarrier, optional(l.AvgMark()), optional(l.AvgAttendance())}
		if l.Risk != nil {
			s := l.Risk.Scores
			row = append(row, string(l.Risk.Concern), s.Academic, s.Attendance, s.Barrier, l.Risk.Radius)
		}
		if err := setRow(f, learnersSheet, i+2, row); err != nil {
			return nil, err
		}

		for _, ss := range l.Subjects {
			cells := []interface{}{l.ID, ss.Subject}
			for _, p := range ss.Marks {
				if p.Present {
					cells = append(cells, p.Value)
				} else {
					cells = append(cells, nil)
				}
			}
			if err := setRow(f, trendsSheet, trendRow, cells); err != nil {
				return nil, err
			}
			trendRow++
		}
	}
	return f, nil
}

// WriteXLSX writes the workbook to w.
func WriteXLSX(w io.Writer, learners []aggregate.Summary) error {
	f, err := Workbook(learners)
	if err != nil {
		return fmt.Errorf("build workbook: %w", err)
	}
	defer f.Close()
	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func setRow(f *excelize.File, sheet string, row int, cells []interface{}) error {
	for col, v := range cells {
		if v == nil {
			continue
		}
		name, err := excelize.CoordinatesToCellName(col+1, row)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, name, v); err != nil {
			return err
		}
	}
	return nil
}

func optional(v float64, ok bool) interface{} {
	if !ok {
		return nil
	}
	return v
}
