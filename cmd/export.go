package cmd

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/learnlens/internal/aggregate"
	"github.com/abhisek/learnlens/internal/export"
	"github.com/abhisek/learnlens/internal/plot"
)

// bubblesPerRow is the grid width of the exported bubble chart.
const bubblesPerRow = 10

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the learner summaries as JSON, XLSX or PNG charts",
	Example: `  learnlens export --format json --out report.json
  learnlens export --format xlsx --out learners.xlsx
  learnlens export --format png --chart bubbles --out risk.png
  learnlens export --format png --chart trends --out trends/`,
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")
		out, _ := cmd.Flags().GetString("out")
		chart, _ := cmd.Flags().GetString("chart")

		s, err := load(cmd, loadOptions{console: cmd.ErrOrStderr()})
		if err != nil {
			return err
		}
		defer s.close()

		switch format {
		case "json":
			err = writeTo(cmd, out, func(w io.Writer) error {
				return export.WriteJSON(w, export.NewReport(s.data, s.learners, time.Now()))
			})
		case "xlsx":
			if out == "" || out == "-" {
				return fmt.Errorf("xlsx export needs --out")
			}
			err = writeTo(cmd, out, func(w io.Writer) error {
				return export.WriteXLSX(w, s.learners)
			})
		case "png":
			err = exportPNG(s, chart, out)
		default:
			return fmt.Errorf("unknown format %q, want json, xlsx or png", format)
		}
		if err != nil {
			return err
		}
		s.log.Info("export written", zap.String("format", format), zap.String("out", out))
		return nil
	},
}

func init() {
	exportCmd.Flags().String("format", "json", "Output format: json, xlsx or png")
	exportCmd.Flags().StringP("out", "o", "-", "Output file, or - for stdout (json only). A directory for --chart trends")
	exportCmd.Flags().String("chart", "scatter", "Chart for png export: scatter, bubbles or trends")
}

// writeTo opens path (or stdout for "-") and hands it to write.
func writeTo(cmd *cobra.Command, path string, write func(io.Writer) error) error {
	if path == "" || path == "-" {
		return write(cmd.OutOrStdout())
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func exportPNG(s *session, chart, out string) error {
	if out == "" || out == "-" {
		return fmt.Errorf("png export needs --out")
	}
	opts := plot.Options{WidthIn: s.cfg.Chart.WidthIn, HeightIn: s.cfg.Chart.HeightIn}

	switch chart {
	case "scatter":
		p, err := plot.Scatter(s.learners)
		if err != nil {
			return err
		}
		return plot.Save(p, out, opts)
	case "bubbles":
		p, err := plot.Bubbles(s.learners, bubblesPerRow)
		if err != nil {
			return err
		}
		return plot.Save(p, out, opts)
	case "trends":
		return exportTrends(s, out, opts)
	default:
		return fmt.Errorf("unknown chart %q, want scatter, bubbles or trends", chart)
	}
}

// exportTrends writes one trend chart per learner into dir.
func exportTrends(s *session, dir string, opts plot.Options) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create %s: %w", dir, err)
	}
	learners, skipped := aggregate.WithTrends(s.learners)
	if len(skipped) > 0 {
		s.log.Warn("learners without subject marks by term have no trend chart", zap.Strings("learners", skipped))
	}
	names := plot.NewFileNamer(dir, "png")
	for _, l := range learners {
		p, err := plot.Trend(l)
		if err != nil {
			return fmt.Errorf("trend for %s: %w", l.ID, err)
		}
		path := names.Next(l.ID)
		if path != plot.FileName(dir, l.ID, "png") {
			s.log.Warn("trend chart renamed to avoid a clash", zap.String("learner", l.ID), zap.String("file", path))
		}
		if err := plot.Save(p, path, opts); err != nil {
			return err
		}
	}
	s.log.Info("trend charts written", zap.Int("learners", len(learners)), zap.String("dir", dir))
	return nil
}
