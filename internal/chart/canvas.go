package chart

import (
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"
)

type cell struct {
	r    rune
	fg   color.Color
	bold bool
}

// Canvas is a fixed-size grid of styled runes that charts draw into.
// Coordinates outside the grid are ignored.
type Canvas struct {
	w, h  int
	cells []cell
}

// NewCanvas returns a blank canvas.
func NewCanvas(w, h int) *Canvas {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	c := &Canvas{w: w, h: h, cells: make([]cell, w*h)}
	for i := range c.cells {
		c.cells[i].r = ' '
	}
	return c
}

func (c *Canvas) Width() int  { return c.w }
func (c *Canvas) Height() int { return c.h }

func (c *Canvas) in(x, y int) bool {
	return x >= 0 && y >= 0 && x < c.w && y < c.h
}

// Set draws one rune.
func (c *Canvas) Set(x, y int, r rune, fg color.Color) {
	if !c.in(x, y) {
		return
	}
	c.cells[y*c.w+x] = cell{r: r, fg: fg}
}

// SetBold draws one emphasized rune.
func (c *Canvas) SetBold(x, y int, r rune, fg color.Color) {
	if !c.in(x, y) {
		return
	}
	c.cells[y*c.w+x] = cell{r: r, fg: fg, bold: true}
}

// Rune returns the rune at a position, or 0 outside the canvas.
func (c *Canvas) Rune(x, y int) rune {
	if !c.in(x, y) {
		return 0
	}
	return c.cells[y*c.w+x].r
}

// Text writes s starting at x, one rune per cell.
func (c *Canvas) Text(x, y int, s string, fg color.Color) {
	for _, r := range s {
		c.Set(x, y, r, fg)
		x++
	}
}

// TextRight writes s so that its last rune lands on x.
func (c *Canvas) TextRight(x, y int, s string, fg color.Color) {
	c.Text(x-len([]rune(s))+1, y, s, fg)
}

// TextCenter writes s centred on x.
func (c *Canvas) TextCenter(x, y int, s string, fg color.Color) {
	c.Text(x-len([]rune(s))/2, y, s, fg)
}

// Plain returns the canvas without styling, one line per row.
func (c *Canvas) Plain() string {
	lines := make([]string, c.h)
	for y := 0; y < c.h; y++ {
		var b strings.Builder
		for x := 0; x < c.w; x++ {
			b.WriteRune(c.cells[y*c.w+x].r)
		}
		lines[y] = b.String()
	}
	return strings.Join(lines, "\n")
}

// Render returns the styled canvas. Adjacent cells sharing a style are
// rendered as one run.
func (c *Canvas) Render() string {
	lines := make([]string, c.h)
	for y := 0; y < c.h; y++ {
		var (
			b   strings.Builder
			run []rune
			cur cell
		)
		flush := func() {
			if len(run) == 0 {
				return
			}
			st := lipgloss.NewStyle()
			if cur.fg != nil {
				st = st.Foreground(cur.fg)
			}
			if cur.bold {
				st = st.Bold(true)
			}
			b.WriteString(st.Render(string(run)))
			run = run[:0]
		}
		for x := 0; x < c.w; x++ {
			cl := c.cells[y*c.w+x]
			if len(run) > 0 && (cl.fg != cur.fg || cl.bold != cur.bold) {
				flush()
			}
			cur = cl
			run = append(run, cl.r)
		}
		flush()
		lines[y] = b.String()
	}
	return strings.Join(lines, "\n")
}
