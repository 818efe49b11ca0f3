package plot

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/abhisek/learnlens/internal/aggregate"
	"github.com/abhisek/learnlens/internal/risk"
)

// bubbleScale converts a display radius into glyph points.
const bubbleScale = 0.6

// Bubbles lays learners out left to right in rows of perRow, one bubble
// per assessed learner, sized by risk radius and colored by concern.
func Bubbles(learners []aggregate.Summary, perRow int) (*plot.Plot, error) {
	if perRow < 1 {
		return nil, fmt.Errorf("bubbles per row must be positive, got %d", perRow)
	}

	var (
		xys    plotter.XYs
		styles []draw.GlyphStyle
	)
	for _, l := range learners {
		if l.Risk == nil {
			continue
		}
		i := len(xys)
		xys = append(xys, plotter.XY{X: float64(i % perRow), Y: -float64(i / perRow)})
		styles = append(styles, draw.GlyphStyle{
			Shape:  draw.CircleGlyph{},
			Color:  hexColor(l.Risk.Concern.Color()),
			Radius: vg.Points(l.Risk.Radius * bubbleScale),
		})
	}

	p := plot.New()
	p.Title.Text = "Learner Risk Overview"
	p.HideAxes()

	if len(xys) > 0 {
		sc, err := plotter.NewScatter(xys)
		if err != nil {
			return nil, fmt.Errorf("bubbles: %w", err)
		}
		sc.GlyphStyleFunc = func(i int) draw.GlyphStyle { return styles[i] }
		p.Add(sc)

		rows := (len(xys) + perRow - 1) / perRow
		p.X.Min, p.X.Max = -0.5, float64(perRow)-0.5
		p.Y.Min, p.Y.Max = -float64(rows)+0.5, 0.5
	}

	for _, c := range risk.AllConcerns() {
		swatch, err := plotter.NewScatter(plotter.XYs{})
		if err != nil {
			return nil, err
		}
		swatch.GlyphStyle = draw.GlyphStyle{
			Shape:  draw.CircleGlyph{},
			Color:  hexColor(c.Color()),
			Radius: vg.Points(5),
		}
		p.Legend.Add(c.Legend(), swatch)
	}
	p.Legend.Top = true
	return p, nil
}
