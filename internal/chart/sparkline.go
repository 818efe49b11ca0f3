package chart

import (
	"fmt"
	"strings"

	"github.com/abhisek/learnlens/internal/aggregate"
	"github.com/abhisek/learnlens/internal/ui/theme"
)

var sparkLevels = []rune("▁▂▃▄▅▆▇█")

const (
	trendIDWidth   = 14
	trendTermWidth = 2
	trendBlockH    = 3
)

// SparkGlyph returns the block glyph for a 0-100 mark.
func SparkGlyph(mark float64) rune {
	return sparkLevels[ScaleCell(mark, 0, 100, 0, len(sparkLevels)-1)]
}

// SparkString renders a series as text, one glyph per term followed by a
// space. Gaps stay blank.
func SparkString(s aggregate.Series) string {
	var b strings.Builder
	for _, p := range s {
		if p.Present {
			b.WriteRune(SparkGlyph(p.Value))
		} else {
			b.WriteRune(' ')
		}
		b.WriteRune(' ')
	}
	return strings.TrimRight(b.String(), " ")
}

// Trends draws a grid of per-subject sparklines, one block per learner.
type Trends struct {
	Learners []aggregate.Summary
	width    int
}

// NewTrends keeps only learners that have at least one subject series.
func NewTrends(learners []aggregate.Summary, width int) *Trends {
	withSeries, _ := aggregate.WithTrends(learners)
	return &Trends{Learners: withSeries, width: width}
}

// BlockHeight is the number of rows each learner occupies.
func (t *Trends) BlockHeight() int { return trendBlockH }

// Render draws count learners starting at first. count <= 0 draws all.
func (t *Trends) Render(selected, first, count int) string {
	return t.Canvas(selected, first, count).Render()
}

// Canvas draws the grid onto a fresh canvas.
func (t *Trends) Canvas(selected, first, count int) *Canvas {
	if first < 0 {
		first = 0
	}
	if count <= 0 || first+count > len(t.Learners) {
		count = len(t.Learners) - first
	}
	if count < 0 {
		count = 0
	}

	c := NewCanvas(t.width, count*trendBlockH)
	for k := 0; k < count; k++ {
		i := first + k
		t.drawLearner(c, t.Learners[i], k*trendBlockH, i == selected)
	}
	return c
}

func (t *Trends) drawLearner(c *Canvas, l aggregate.Summary, y int, selected bool) {
	id := l.ID
	if len([]rune(id)) > trendIDWidth-3 {
		id = string([]rune(id)[:trendIDWidth-4]) + "…"
	}
	if selected {
		c.SetBold(0, y+1, '▸', theme.Text)
		for i, r := range []rune(id) {
			c.SetBold(2+i, y+1, r, theme.Primary)
		}
	} else {
		c.Text(2, y+1, id, theme.Text)
	}

	terms := l.TermCount()
	x := trendIDWidth
	for _, ss := range l.Subjects {
		colW := len([]rune(ss.Subject))
		if w := terms * trendTermWidth; w > colW {
			colW = w
		}
		colW += 3
		if x+colW > t.width {
			c.Text(x, y+1, "…", theme.TextDim)
			return
		}
		c.Text(x, y, ss.Subject, theme.TextDim)
		for i, p := range ss.Marks {
			if !p.Present {
				continue
			}
			c.Set(x+i*trendTermWidth, y+1, SparkGlyph(p.Value), theme.MarkColor(p.Value))
		}
		x += colW
	}
}

// TrendTooltip lists every subject's marks by term, with gaps shown as "–".
func TrendTooltip(l aggregate.Summary) []string {
	lines := []string{"ID: " + l.ID}
	for _, ss := range l.Subjects {
		var vals []string
		for _, p := range ss.Marks {
			if p.Present {
				vals = append(vals, fmt.Sprintf("%.0f", p.Value))
			} else {
				vals = append(vals, "–")
			}
		}
		lines = append(lines, fmt.Sprintf("%s: %s", ss.Subject, strings.Join(vals, " → ")))
	}
	return lines
}
