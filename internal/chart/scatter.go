package chart

import (
	"fmt"
	"math"

	"github.com/abhisek/learnlens/internal/aggregate"
	"github.com/abhisek/learnlens/internal/ui/theme"
)

// Axis ranges of the attendance/mark scatter plot.
const (
	AttendanceMin = 70.0
	AttendanceMax = 100.0
	MarkMin       = 30.0
	MarkMax       = 100.0

	gridDivisions = 10
)

const (
	scatterLeft   = 5 // y tick labels and axis
	scatterBottom = 3 // axis, x tick labels, axis title
	scatterTop    = 1 // y axis title
)

// Scatter plots each learner's average attendance (x) against average mark
// (y). Learners without both averages are not plotted.
type Scatter struct {
	Learners []aggregate.Summary
	width    int
	height   int
	points   [][2]int
}

// NewScatter lays learners out on a width x height character plot.
func NewScatter(learners []aggregate.Summary, width, height int) *Scatter {
	plotted, _ := aggregate.WithAverages(learners)
	s := &Scatter{Learners: plotted, width: width, height: height}
	s.points = make([][2]int, len(plotted))
	for i, l := range plotted {
		s.points[i] = s.project(l)
	}
	return s
}

func (s *Scatter) plotArea() (x0, y0, x1, y1 int) {
	return scatterLeft, scatterTop, s.width - 2, s.height - scatterBottom - 1
}

func (s *Scatter) project(l aggregate.Summary) [2]int {
	att, _ := l.AvgAttendance()
	mark, _ := l.AvgMark()
	x0, y0, x1, y1 := s.plotArea()
	return [2]int{
		ScaleCell(att, AttendanceMin, AttendanceMax, x0+1, x1),
		ScaleCell(mark, MarkMin, MarkMax, y1-1, y0),
	}
}

// Position returns the cell a learner is drawn at.
func (s *Scatter) Position(i int) (x, y int) {
	p := s.points[i]
	return p[0], p[1]
}

// Neighbor returns the index of the nearest learner from i in direction
// (dx, dy), or i when there is none. Screen y grows downward. Learners
// sharing a cell are reached by index order instead.
func (s *Scatter) Neighbor(i, dx, dy int) int {
	if i < 0 || i >= len(s.points) {
		return i
	}
	ox, oy := s.points[i][0], s.points[i][1]
	best, bestD := i, math.MaxInt
	for j, p := range s.points {
		if j == i {
			continue
		}
		ddx, ddy := p[0]-ox, p[1]-oy
		along := ddx*dx + ddy*dy
		if along <= 0 {
			continue
		}
		across := ddx*dy - ddy*dx
		if across < 0 {
			across = -across
		}
		if d := along + 2*across; d < bestD {
			best, bestD = j, d
		}
	}
	return best
}

// Render draws the plot with the learner at index selected highlighted.
// Pass -1 for no selection.
func (s *Scatter) Render(selected int) string {
	return s.Canvas(selected).Render()
}

// Canvas draws the plot onto a fresh canvas.
func (s *Scatter) Canvas(selected int) *Canvas {
	c := NewCanvas(s.width, s.height)
	x0, y0, x1, y1 := s.plotArea()
	if x1 <= x0+1 || y1 <= y0+1 {
		c.Text(0, 0, "too small", theme.TextDim)
		return c
	}

	c.Text(0, 0, "Average Mark (%)", theme.Axis)

	for i := 0; i <= gridDivisions; i++ {
		gx := ScaleCell(float64(i), 0, gridDivisions, x0, x1)
		gy := ScaleCell(float64(i), 0, gridDivisions, y1, y0)
		for y := y0; y < y1; y++ {
			c.Set(gx, y, '·', theme.Grid)
		}
		for x := x0; x <= x1; x++ {
			c.Set(x, gy, '·', theme.Grid)
		}
		if i%2 == 0 {
			mark := int(Scale(float64(i), 0, gridDivisions, MarkMin, MarkMax))
			c.TextRight(x0-1, gy, fmt.Sprint(mark), theme.Axis)
			att := int(Scale(float64(i), 0, gridDivisions, AttendanceMin, AttendanceMax))
			c.TextCenter(gx, y1+1, fmt.Sprint(att), theme.Axis)
		}
	}

	for y := y0; y < y1; y++ {
		c.Set(x0, y, '│', theme.Axis)
	}
	for x := x0; x <= x1; x++ {
		c.Set(x, y1, '─', theme.Axis)
	}
	c.Set(x0, y1, '└', theme.Axis)
	c.TextCenter((x0+x1)/2, y1+2, "Average Attendance (%)", theme.Axis)

	for i, l := range s.Learners {
		if i == selected {
			continue
		}
		p := s.points[i]
		c.Set(p[0], p[1], '●', theme.BarrierColor(l.HasBarrier))
	}
	if selected >= 0 && selected < len(s.Learners) {
		p := s.points[selected]
		c.SetBold(p[0], p[1], '◉', theme.Text)
	}
	return c
}

// ScatterTooltip returns the tooltip lines for the selected scatter point.
func ScatterTooltip(l aggregate.Summary) []string {
	return []string{
		"ID: " + l.ID,
		"Avg. Mark: " + percent(l.AvgMark()),
		"Avg. Attendance: " + percent(l.AvgAttendance()),
	}
}

func percent(v float64, ok bool) string {
	if !ok {
		return "n/a"
	}
	return fmt.Sprintf("%.1f%%", v)
}
