package plot

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/abhisek/learnlens/internal/aggregate"
)

// Trend draws one learner's marks by term, one line per subject. A missing
// term breaks the line; it is never drawn as a zero mark. Marks below 50
// are marked in red.
func Trend(l aggregate.Summary) (*plot.Plot, error) {
	if l.TermCount() == 0 {
		return nil, fmt.Errorf("learner %s has no subject series", l.ID)
	}

	p := plot.New()
	p.Title.Text = "Subject trends: " + l.ID
	p.X.Label.Text = "Term"
	p.Y.Label.Text = "Mark (%)"
	p.Y.Min, p.Y.Max = 0, 100
	p.X.Min, p.X.Max = 0.5, float64(l.TermCount())+0.5
	p.X.Tick.Marker = termTicks(l.TermCount())
	p.Add(plotter.NewGrid())

	for i, ss := range l.Subjects {
		lines, points, err := subjectLines(ss, plotutil.Color(i))
		if err != nil {
			return nil, fmt.Errorf("trend %s/%s: %w", l.ID, ss.Subject, err)
		}
		for k := range lines {
			p.Add(lines[k], points[k])
		}
		if len(lines) > 0 {
			p.Legend.Add(ss.Subject, lines[0])
		}
	}
	return p, nil
}

// subjectLines builds one line and point set per run of consecutive terms.
func subjectLines(ss aggregate.SubjectSeries, col color.Color) ([]*plotter.Line, []*plotter.Scatter, error) {
	var (
		lines  []*plotter.Line
		points []*plotter.Scatter
	)
	for _, seg := range ss.Marks.Segments() {
		xys := make(plotter.XYs, len(seg))
		for j, idx := range seg {
			xys[j] = plotter.XY{X: float64(idx + 1), Y: ss.Marks[idx].Value}
		}

		line, pts, err := plotter.NewLinePoints(xys)
		if err != nil {
			return nil, nil, err
		}
		line.Color = col
		line.Width = vg.Points(2)
		pts.GlyphStyle.Shape = draw.CircleGlyph{}
		pts.GlyphStyle.Radius = vg.Points(3)
		pts.GlyphStyle.Color = col
		pts.GlyphStyleFunc = func(j int) draw.GlyphStyle {
			st := pts.GlyphStyle
			if xys[j].Y < 50 {
				st.Color = lowMark
			}
			return st
		}
		lines = append(lines, line)
		points = append(points, pts)
	}
	return lines, points, nil
}

type termTicks int

func (n termTicks) Ticks(min, max float64) []plot.Tick {
	ticks := make([]plot.Tick, 0, int(n))
	for t := 1; t <= int(n); t++ {
		ticks = append(ticks, plot.Tick{Value: float64(t), Label: fmt.Sprintf("T%d", t)})
	}
	return ticks
}
