package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/learnlens/internal/app"
)

// runApp loads the dataset and launches the TUI. Logs only go to the log
// file while the UI owns the terminal.
func runApp(cmd *cobra.Command) error {
	s, err := load(cmd, loadOptions{})
	if err != nil {
		return err
	}
	defer s.close()

	return app.Run(app.Options{
		Learners: s.learners,
		Source:   s.data.Source,
		Issues:   len(s.data.Issues),
	})
}
