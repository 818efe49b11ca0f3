package plot

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/abhisek/learnlens/internal/aggregate"
	"github.com/abhisek/learnlens/internal/chart"
)

// Scatter plots average attendance against average mark, one point per
// learner, colored by the learning barrier flag. Learners lacking either
// average are left out.
func Scatter(learners []aggregate.Summary) (*plot.Plot, error) {
	plotted, _ := aggregate.WithAverages(learners)

	p := plot.New()
	p.Title.Text = "Average Mark vs Average Attendance"
	p.Title.TextStyle.Font.Size = vg.Points(14)
	p.X.Label.Text = "Average Attendance (%)"
	p.Y.Label.Text = "Average Mark (%)"
	p.X.Min, p.X.Max = chart.AttendanceMin, chart.AttendanceMax
	p.Y.Min, p.Y.Max = chart.MarkMin, chart.MarkMax
	p.Add(plotter.NewGrid())

	var plain, flagged plotter.XYs
	for _, l := range plotted {
		att, _ := l.AvgAttendance()
		mark, _ := l.AvgMark()
		pt := plotter.XY{X: att, Y: mark}
		if l.HasBarrier {
			flagged = append(flagged, pt)
		} else {
			plain = append(plain, pt)
		}
	}

	if err := addPoints(p, "No Barrier Flag", plain, brandBlue); err != nil {
		return nil, err
	}
	if err := addPoints(p, "Learning Barrier Flag", flagged, brandTeal); err != nil {
		return nil, err
	}
	p.Legend.Top = true
	return p, nil
}

func addPoints(p *plot.Plot, label string, xys plotter.XYs, col color.Color) error {
	sc, err := plotter.NewScatter(xys)
	if err != nil {
		return fmt.Errorf("scatter %s: %w", label, err)
	}
	sc.GlyphStyle.Shape = draw.CircleGlyph{}
	sc.GlyphStyle.Radius = vg.Points(4)
	sc.GlyphStyle.Color = col
	if len(xys) > 0 {
		p.Add(sc)
	}
	p.Legend.Add(label, sc)
	return nil
}
