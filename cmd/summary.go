package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/abhisek/learnlens/internal/report"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Print a table of learner summaries sorted by concern",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := load(cmd, loadOptions{console: cmd.ErrOrStderr()})
		if err != nil {
			return err
		}
		defer s.close()

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, color.YellowString("\nLearners in %s", s.data.Source))
		report.Write(out, s.learners)
		return nil
	},
}
