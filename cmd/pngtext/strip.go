package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/pngtext/internal/logger"
	"github.com/joshuapare/pngtext/pkg/pngtext"
)

var (
	stripOutput string
	stripBackup bool
)

func init() {
	cmd := newStripCmd()
	cmd.Flags().StringVarP(&stripOutput, "output", "o", "", "Write the result here instead of replacing the input")
	cmd.Flags().BoolVar(&stripBackup, "backup", false, "Keep a copy of the input as <png>.bak")
	rootCmd.AddCommand(cmd)
}

func newStripCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "strip <png>",
		Short: "Remove all text metadata",
		Long: `The strip command removes every tEXt chunk and keeps everything else.

Example:
  pngtext strip cover.png
  pngtext strip cover.png -o clean.png`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStrip(args)
		},
	}
}

func runStrip(args []string) error {
	path := args[0]
	opts := pngtext.DefaultFileOptions()
	opts.OutputPath = stripOutput
	opts.CreateBackup = stripBackup
	warnBackupIgnored(stripBackup, stripOutput)

	if err := pngtext.StripFile(path, opts); err != nil {
		return fmt.Errorf("failed to strip %s: %w", path, err)
	}

	target := path
	if stripOutput != "" {
		target = stripOutput
	}
	logger.Info("stripped", "file", target)
	if jsonOut {
		return printJSON(map[string]interface{}{"file": target, "success": true})
	}
	printInfo("Stripped text metadata from %s\n", target)
	return nil
}
