package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/abhisek/learnlens/internal/dataset"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check every record against the dataset schema",
	Long:  "Validate lists each rejected record with the reason and exits non-zero when any record is rejected.",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := load(cmd, loadOptions{console: cmd.ErrOrStderr(), lenient: true})
		if err != nil {
			return err
		}
		defer s.close()

		out := cmd.OutOrStdout()
		ds := s.data
		if len(ds.Issues) == 0 {
			fmt.Fprintln(out, color.GreenString("%s: %d records OK (%s)", ds.Source, ds.Total, ds.Shape))
			return nil
		}

		fmt.Fprintln(out, color.RedString("%s: %d of %d records rejected", ds.Source, len(ds.Issues), ds.Total))
		for _, is := range ds.Issues {
			fmt.Fprintln(out, "  "+is.String())
		}
		return &dataset.IssuesError{Issues: ds.Issues}
	},
}
