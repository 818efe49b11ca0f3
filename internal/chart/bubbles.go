package chart

import (
	"fmt"

	"github.com/abhisek/learnlens/internal/aggregate"
	"github.com/abhisek/learnlens/internal/risk"
	"github.com/abhisek/learnlens/internal/ui/theme"
)

const (
	bubbleSlotW = 8
	bubbleSlotH = 4
	legendGap   = 3
)

// bubbleMasks are 5x3 fill patterns of increasing size.
var bubbleMasks = [][3]string{
	{"     ", "  o  ", "     "},
	{"     ", " ### ", "     "},
	{"  #  ", " ### ", "  #  "},
	{" ### ", "#####", " ### "},
	{"#####", "#####", "#####"},
}

// BubbleSize buckets a display radius into a mask index.
func BubbleSize(radius float64) int {
	switch {
	case radius <= risk.BaseRadius:
		return 0
	case radius <= 16:
		return 1
	case radius <= 22:
		return 2
	case radius <= 28:
		return 3
	default:
		return 4
	}
}

// Bubbles lays learners out row by row, one bubble per learner, sized by
// total risk and colored by primary concern.
type Bubbles struct {
	Learners []aggregate.Summary
	width    int
	perRow   int
	legend   [][2]int
	legendH  int
}

// NewBubbles keeps only learners that have a risk assessment.
func NewBubbles(learners []aggregate.Summary, width int) *Bubbles {
	var assessed []aggregate.Summary
	for _, l := range learners {
		if l.Risk != nil {
			assessed = append(assessed, l)
		}
	}
	perRow := width / bubbleSlotW
	if perRow < 1 {
		perRow = 1
	}
	b := &Bubbles{Learners: assessed, width: width, perRow: perRow}
	b.layoutLegend()
	return b
}

// PerRow is the number of bubbles in each row.
func (b *Bubbles) PerRow() int { return b.perRow }

// Rows is the number of bubble rows.
func (b *Bubbles) Rows() int {
	return (len(b.Learners) + b.perRow - 1) / b.perRow
}

// Height is the canvas height needed to draw every row.
func (b *Bubbles) Height() int {
	return b.legendH + b.Rows()*bubbleSlotH
}

// RowOf returns the bubble row learner i sits in.
func (b *Bubbles) RowOf(i int) int { return i / b.perRow }

// RowsFor returns how many bubble rows fit in height lines, legend included.
func (b *Bubbles) RowsFor(height int) int {
	n := (height - b.legendH) / bubbleSlotH
	if n < 1 {
		return 1
	}
	return n
}

// Slot returns the top-left cell of learner i's slot.
func (b *Bubbles) Slot(i int) (x, y int) {
	return (i % b.perRow) * bubbleSlotW, b.legendH + (i/b.perRow)*bubbleSlotH
}

// Move returns the index reached from i by dx columns and dy rows, clamped
// to the learner list.
func (b *Bubbles) Move(i, dx, dy int) int {
	if len(b.Learners) == 0 {
		return -1
	}
	next := i + dx + dy*b.perRow
	if next < 0 || next >= len(b.Learners) {
		return i
	}
	return next
}

// Render draws rows [firstRow, firstRow+rows) below the legend. rows <= 0
// draws everything.
func (b *Bubbles) Render(selected, firstRow, rows int) string {
	return b.Canvas(selected, firstRow, rows).Render()
}

// Canvas draws the chart onto a fresh canvas.
func (b *Bubbles) Canvas(selected, firstRow, rows int) *Canvas {
	total := b.Rows()
	if rows <= 0 || firstRow+rows > total {
		rows = total - firstRow
	}
	if rows < 0 {
		rows = 0
	}
	c := NewCanvas(b.width, b.legendH+rows*bubbleSlotH)
	b.drawLegend(c)

	for i, l := range b.Learners {
		row := i / b.perRow
		if row < firstRow || row >= firstRow+rows {
			continue
		}
		x, y := b.Slot(i)
		y -= firstRow * bubbleSlotH
		col := theme.ConcernColor(l.Risk.Concern)
		mask := bubbleMasks[BubbleSize(l.Risk.Radius)]
		for my, line := range mask {
			for mx, ch := range line {
				switch ch {
				case '#':
					c.Set(x+1+mx, y+my, '█', col)
				case 'o':
					c.Set(x+1+mx, y+my, '●', col)
				}
			}
		}
		if i == selected {
			c.SetBold(x, y+1, '▸', theme.Text)
			c.SetBold(x+6, y+1, '◂', theme.Text)
		}
	}
	return c
}

// layoutLegend places one legend entry per concern, wrapping to a new
// line when an entry would overflow the width. A blank line follows.
func (b *Bubbles) layoutLegend() {
	x, y := 0, 0
	b.legend = b.legend[:0]
	for _, concern := range risk.AllConcerns() {
		w := 2 + len(concern.Legend())
		if x > 0 && x+w > b.width {
			x, y = 0, y+1
		}
		b.legend = append(b.legend, [2]int{x, y})
		x += w + legendGap
	}
	b.legendH = y + 2
}

func (b *Bubbles) drawLegend(c *Canvas) {
	for i, concern := range risk.AllConcerns() {
		x, y := b.legend[i][0], b.legend[i][1]
		c.Set(x, y, '●', theme.ConcernColor(concern))
		c.Text(x+2, y, concern.Legend(), theme.Text)
	}
}

// BubbleTooltip returns the tooltip lines for the selected bubble.
func BubbleTooltip(l aggregate.Summary) []string {
	lines := []string{
		"ID: " + l.ID,
		"Grade: " + orNA(l.Grade),
	}
	concern := "n/a"
	if l.Risk != nil {
		concern = string(l.Risk.Concern)
	}
	lines = append(lines, fmt.Sprintf("Avg Mark: %s | Concern: %s", percent(l.AvgMark()), concern))
	if l.Risk != nil {
		s := l.Risk.Scores
		lines = append(lines, fmt.Sprintf("Risk: academic %d, attendance %d, barrier %d", s.Academic, s.Attendance, s.Barrier))
	}
	return lines
}

func orNA(s string) string {
	if s == "" {
		return "n/a"
	}
	return s
}
