package main

import (
	"medtrack/internal/platform/config"
	"medtrack/internal/platform/logger"

	"github.com/spf13/cobra"
)

var (
	verbose bool

	cfg *config.Config
	log logger.Logger
)

var rootCmd = &cobra.Command{
	Use:           "medtrack",
	Short:         "Medication reminders and adherence analytics",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load()
		if err != nil {
			return err
		}
		cfg = loaded

		level := logger.ParseLevel(cfg.Log.Level)
		if verbose {
			level = logger.Debug
		}
		log = logger.New(logger.Options{
			Level:  level,
			Format: logger.ParseFormat(cfg.Log.Format),
			App:    cfg.Log.AppName,
		})
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	rootCmd.AddCommand(serveCmd, reportCmd, recordsCmd)
}
