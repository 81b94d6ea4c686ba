package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/pngtext/internal/logger"
)

var (
	// Global flags
	verbose bool
	quiet   bool
	jsonOut bool
	logFile string

	closeLog = func() error { return nil }
)

var rootCmd = &cobra.Command{
	Use:   "pngtext",
	Short: "Read, write, and strip text metadata in PNG files",
	Long: `pngtext inspects and edits the tEXt chunks of PNG files. Pixel data
and every other chunk are copied through unchanged.

Writing a value replaces all existing text metadata; use list first if you
need to keep other keywords.`,
	Version:           version,
	SilenceUsage:      true,
	PersistentPreRunE: setupLogging,
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return closeLog()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Append JSON debug logs to this file")
}

func setupLogging(cmd *cobra.Command, args []string) error {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	closer, err := logger.Init(logger.Options{
		Enabled: verbose || logFile != "",
		File:    logFile,
		Level:   level,
	})
	if err != nil {
		return fmt.Errorf("init logging: %w", err)
	}
	closeLog = closer
	logger.Debug("command start", "cmd", cmd.Name(), "args", args)
	return nil
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		reportError(os.Stderr, err)
		os.Exit(1)
	}
}

// reportError logs and prints a failed command. PersistentPostRunE does not
// run after a failure, so the log file is closed here.
func reportError(w io.Writer, err error) {
	logger.Error("command failed", "error", err)
	fmt.Fprintln(w, err)
	_ = closeLog()
}

// warnBackupIgnored flags --backup combined with --output, where the input
// is never overwritten and no backup is made.
func warnBackupIgnored(backup bool, output string) {
	if !backup || output == "" {
		return
	}
	logger.Warn("backup skipped, input is not modified", "output", output)
	printVerbose("Not creating a backup: writing to %s\n", output)
}

// Helper functions for output

// printInfo prints an info message if not in quiet mode
func printInfo(format string, args ...interface{}) {
	if !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printVerbose prints a verbose message if verbose mode is enabled
func printVerbose(format string, args ...interface{}) {
	if verbose && !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printJSON outputs data as JSON
func printJSON(v interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
