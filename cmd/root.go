package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/learnlens/internal/aggregate"
	"github.com/abhisek/learnlens/internal/config"
	"github.com/abhisek/learnlens/internal/dataset"
	"github.com/abhisek/learnlens/internal/logger"
)

var rootCmd = &cobra.Command{
	Use:   "learnlens",
	Short: "Explore learner academic records in the terminal",
	Long: "learnlens loads a learner records dataset, summarises each learner's marks and attendance, " +
		"and shows a scatter plot, a risk bubble chart and subject trend sparklines.",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "Path to a config file (default ./learnlens.yaml if present)")
	flags.String("data", config.DefaultDataPath, "Path to the learner records JSON file")
	flags.Bool("strict", false, "Fail when any record is rejected")
	flags.String("log-level", "info", "Log level: debug, info, warn, error")
	flags.String("log-file", "", "Also write JSON logs to this file, rotated")

	rootCmd.AddCommand(summaryCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(versionCmd)
}

// session is everything a command needs once the dataset is loaded.
type session struct {
	cfg      *config.Config
	log      *zap.Logger
	data     *dataset.Dataset
	learners []aggregate.Summary
}

// loadOptions tweaks how a command loads the dataset.
type loadOptions struct {
	// console receives human-readable logs. nil keeps logs off the terminal.
	console io.Writer
	// lenient reports rejected records instead of failing, even in strict
	// mode.
	lenient bool
}

// load resolves config, builds the logger, reads the dataset and
// aggregates it.
func load(cmd *cobra.Command, opts loadOptions) (*session, error) {
	configPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(configPath, cmd.Flags())
	if err != nil {
		return nil, err
	}

	log, err := logger.New(cfg.Log, opts.console)
	if err != nil {
		return nil, err
	}

	ds, err := dataset.Load(cmd.Context(), cfg.Data.Path, dataset.LoadOptions{
		Strict: cfg.Data.Strict && !opts.lenient,
	})
	var issuesErr *dataset.IssuesError
	if errors.As(err, &issuesErr) {
		logIssues(log, issuesErr.Issues)
	}
	if err != nil {
		_ = log.Sync()
		return nil, fmt.Errorf("load %s: %w", cfg.Data.Path, err)
	}

	learners := aggregate.Learners(ds.Records, aggregate.Options{Thresholds: cfg.Risk.Thresholds()})
	log.Info("dataset loaded",
		zap.String("source", ds.Source),
		zap.Stringer("shape", ds.Shape),
		zap.Int("records", ds.Total),
		zap.Int("rejected", len(ds.Issues)),
		zap.Int("learners", len(learners)),
	)
	if !opts.lenient {
		logIssues(log, ds.Issues)
	}
	if _, skipped := aggregate.WithAverages(learners); len(skipped) > 0 {
		log.Warn("learners missing a mark or attendance average are left out of the scatter and bubble views",
			zap.Strings("learners", skipped))
	}

	return &session{cfg: cfg, log: log, data: ds, learners: learners}, nil
}

func logIssues(log *zap.Logger, issues []dataset.Issue) {
	for _, is := range issues {
		log.Warn("record rejected",
			zap.Int("index", is.Index),
			zap.String("key", is.Key),
			zap.String("learner_id", is.LearnerID),
			zap.String("reason", is.Message),
		)
	}
}

func (s *session) close() {
	_ = s.log.Sync()
}
