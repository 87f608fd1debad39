// Package cmd wires the command-line surface: flag parsing, logger
// construction, confirmation prompts, and result display. The cleanup
// engine itself lives in internal/cleaner.
package cmd

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/lakshaymaurya-felt/cclean/internal/logging"
)

var (
	// Global flags
	debug   bool
	quiet   bool
	logFile string

	// log is built once per invocation and injected everywhere.
	log zerolog.Logger

	// Version info populated from main
	appVersion = "dev"
	appCommit  = "none"
	appDate    = "unknown"
)

// SetVersionInfo sets build-time version information.
func SetVersionInfo(version, commit, date string) {
	appVersion = version
	appCommit = commit
	appDate = date
}

var rootCmd = &cobra.Command{
	Use:   "cclean",
	Short: "Reclaim disk space on Windows",
	Long: `CClean - Windows C drive cleaner.

Scans temporary directories, browser caches, system logs, and the
Recycle Bin for deletable content, reports the space that can be
reclaimed, and deletes it under a safety policy.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if logFile == "" {
			logFile = logging.DefaultLogFile()
		}
		log = logging.New(logging.Options{
			File:  logFile,
			Debug: debug,
			Quiet: quiet,
		})
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Show detailed operation logs")
	rootCmd.PersistentFlags().BoolVar(&quiet, "quiet", false, "Suppress console log output")
	rootCmd.PersistentFlags().StringVar(&logFile, "log", "", "Log file path (default: cclean.log next to the executable)")

	// Register all subcommands
	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(cleanCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(completionCmd)
	rootCmd.AddCommand(versionCmd)
}
