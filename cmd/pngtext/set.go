package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/pngtext/internal/logger"
	"github.com/joshuapare/pngtext/pkg/pngtext"
)

var (
	setValueFile string
	setOutput    string
	setBackup    bool
	setLatin1    bool
	setNoSync    bool
)

func init() {
	cmd := newSetCmd()
	cmd.Flags().StringVar(&setValueFile, "value-file", "", "Stream the value from this file instead of the argument")
	cmd.Flags().StringVarP(&setOutput, "output", "o", "", "Write the result here instead of replacing the input")
	cmd.Flags().BoolVar(&setBackup, "backup", false, "Keep a copy of the input as <png>.bak")
	cmd.Flags().BoolVar(&setLatin1, "latin1", false, "Store keyword and value as ISO-8859-1")
	cmd.Flags().BoolVar(&setNoSync, "no-sync", false, "Skip flushing the output to disk")
	rootCmd.AddCommand(cmd)
}

func newSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <png> <keyword> [value]",
		Short: "Store a keyword/value pair, replacing all text metadata",
		Long: `The set command removes every tEXt chunk and writes a single new one
directly before IEND.

Example:
  pngtext set cover.png Title "Sunset over the bay"
  pngtext set cover.png Comment --value-file notes.txt
  pngtext set cover.png Title "Café" --latin1 -o out.png`,
		Args: cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSet(args)
		},
	}
}

func runSet(args []string) error {
	path := args[0]
	keyword := args[1]

	opts := &pngtext.FileOptions{
		OutputPath:   setOutput,
		CreateBackup: setBackup,
		Sync:         !setNoSync,
	}

	warnBackupIgnored(setBackup, setOutput)

	var err error
	switch {
	case setValueFile != "":
		if len(args) == 3 {
			return fmt.Errorf("give the value either as an argument or with --value-file, not both")
		}
		err = setFromFile(path, keyword, opts)
	case len(args) == 3:
		err = setValue(path, keyword, args[2], opts)
	default:
		return fmt.Errorf("missing value: pass it as the third argument or use --value-file")
	}
	if err != nil {
		return fmt.Errorf("failed to set %q: %w", keyword, err)
	}

	target := path
	if setOutput != "" {
		target = setOutput
	}
	logger.Info("encoded", "file", target, "keyword", keyword)
	if jsonOut {
		return printJSON(map[string]interface{}{
			"file":    target,
			"keyword": keyword,
			"success": true,
		})
	}
	printInfo("Set %q in %s\n", keyword, target)
	return nil
}

func setValue(path, keyword, value string, opts *pngtext.FileOptions) error {
	if !setLatin1 {
		return pngtext.SetFile(path, keyword, value, opts)
	}
	key, err := pngtext.EncodeLatin1(keyword)
	if err != nil {
		return err
	}
	val, err := pngtext.EncodeLatin1(value)
	if err != nil {
		return err
	}
	return pngtext.SetFileRaw(path, key, val, opts)
}

func setFromFile(path, keyword string, opts *pngtext.FileOptions) error {
	if setLatin1 {
		return fmt.Errorf("--latin1 cannot be combined with --value-file")
	}
	f, err := os.Open(setValueFile)
	if err != nil {
		return err
	}
	defer f.Close()
	info, err := f.Stat()
	if err != nil {
		return err
	}
	printVerbose("Streaming %d bytes from %s\n", info.Size(), setValueFile)
	logger.Debug("streaming value", "source", setValueFile, "bytes", info.Size())
	return pngtext.SetFileFrom(path, keyword, f, int(info.Size()), opts)
}
