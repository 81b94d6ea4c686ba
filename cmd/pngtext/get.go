package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/pngtext/internal/logger"
	"github.com/joshuapare/pngtext/pkg/pngtext"
	"github.com/joshuapare/pngtext/pkg/types"
)

var getLatin1 bool

func init() {
	cmd := newGetCmd()
	cmd.Flags().BoolVar(&getLatin1, "latin1", false, "Treat stored text as ISO-8859-1 instead of UTF-8")
	rootCmd.AddCommand(cmd)
}

func newGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <png> <keyword>",
		Short: "Print the value stored under a keyword",
		Long: `The get command prints the value of the first tEXt chunk with the given keyword.

Example:
  pngtext get cover.png Title
  pngtext get scan.png Comment --latin1
  pngtext get cover.png Title --json`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGet(args)
		},
	}
}

func runGet(args []string) error {
	path := args[0]
	keyword := args[1]

	printVerbose("Reading: %s\n", path)
	value, err := getValue(path, keyword)
	if err != nil {
		return fmt.Errorf("failed to get %q: %w", keyword, err)
	}
	logger.Debug("decoded", "file", path, "keyword", keyword, "bytes", len(value))

	if jsonOut {
		return printJSON(pngtext.TextEntry{Keyword: keyword, Value: value})
	}
	printInfo("%s\n", value)
	return nil
}

func getValue(path, keyword string) (string, error) {
	if !getLatin1 {
		return pngtext.GetFile(path, keyword)
	}
	key, err := pngtext.EncodeLatin1(keyword)
	if err != nil {
		return "", err
	}
	entries, err := pngtext.ListFile(path)
	if err != nil {
		return "", err
	}
	for _, e := range entries {
		if string(e.Keyword) == string(key) {
			return pngtext.DecodeLatin1(e.Value)
		}
	}
	return "", fmt.Errorf("keyword %q: %w", keyword, types.ErrKeywordNotFound)
}
