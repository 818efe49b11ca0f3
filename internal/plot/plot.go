// Package plot draws the learner charts as image files with gonum/plot.
package plot

import (
	"fmt"
	"image/color"
	"io"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
)

// Options sizes the output image.
type Options struct {
	WidthIn  float64
	HeightIn float64
}

// DefaultOptions matches the 800x600 canvas of the scatter plot.
func DefaultOptions() Options {
	return Options{WidthIn: 8, HeightIn: 6}
}

// Save writes p to path. The format follows the file extension (png, svg,
// pdf, ...).
func Save(p *plot.Plot, path string, opts Options) error {
	if err := p.Save(vg.Length(opts.WidthIn)*vg.Inch, vg.Length(opts.HeightIn)*vg.Inch, path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

// WritePNG encodes p as PNG.
func WritePNG(p *plot.Plot, w io.Writer, opts Options) error {
	wt, err := p.WriterTo(vg.Length(opts.WidthIn)*vg.Inch, vg.Length(opts.HeightIn)*vg.Inch, "png")
	if err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	_, err = wt.WriteTo(w)
	return err
}

// hexColor parses "#RRGGBB".
func hexColor(s string) color.Color {
	s = strings.TrimPrefix(s, "#")
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil || len(s) != 6 {
		return color.Black
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}
}

var (
	brandBlue = hexColor("#003865")
	brandTeal = hexColor("#00A99D")
	lowMark   = hexColor("#E63946")
)

var unsafeName = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// FileName turns a learner ID into a safe file name with the given
// extension.
func FileName(dir, id, ext string) string {
	name := unsafeName.ReplaceAllString(id, "_")
	if name == "" {
		name = "learner"
	}
	return filepath.Join(dir, name+"."+strings.TrimPrefix(ext, "."))
}

// FileNamer hands out FileName paths that are unique within one export.
// When two IDs sanitise to the same name, the later one gets a numeric
// suffix ("a_b-2.png"). Names are compared case-insensitively.
type FileNamer struct {
	dir  string
	ext  string
	used map[string]bool
}

// NewFileNamer creates a namer for files with extension ext in dir.
func NewFileNamer(dir, ext string) *FileNamer {
	return &FileNamer{dir: dir, ext: ext, used: make(map[string]bool)}
}

// Next returns the path for id.
func (n *FileNamer) Next(id string) string {
	path := FileName(n.dir, id, n.ext)
	if n.claim(path) {
		return path
	}
	stem := strings.TrimSuffix(path, filepath.Ext(path))
	for i := 2; ; i++ {
		path = stem + "-" + strconv.Itoa(i) + filepath.Ext(path)
		if n.claim(path) {
			return path
		}
	}
}

func (n *FileNamer) claim(path string) bool {
	key := strings.ToLower(path)
	if n.used[key] {
		return false
	}
	n.used[key] = true
	return true
}
