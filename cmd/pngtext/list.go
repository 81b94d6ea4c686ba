package main

import (
	"fmt"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/joshuapare/pngtext/pkg/pngtext"
	"github.com/joshuapare/pngtext/pkg/types"
)

var listLatin1 bool

func init() {
	cmd := newListCmd()
	cmd.Flags().BoolVar(&listLatin1, "latin1", false, "Decode stored text as ISO-8859-1 instead of UTF-8")
	rootCmd.AddCommand(cmd)
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list <png>",
		Short: "List all text metadata",
		Long: `The list command prints every tEXt chunk in file order.

Example:
  pngtext list cover.png
  pngtext list scan.png --latin1 --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(args)
		},
	}
}

func runList(args []string) error {
	path := args[0]
	printVerbose("Reading: %s\n", path)

	raw, err := pngtext.ListFile(path)
	if err != nil {
		return fmt.Errorf("failed to list %s: %w", path, err)
	}
	entries := make([]pngtext.TextEntry, 0, len(raw))
	for _, e := range raw {
		entry, err := decodeEntry(e)
		if err != nil {
			return fmt.Errorf("failed to decode chunk at offset %d: %w", e.Offset, err)
		}
		entries = append(entries, entry)
	}

	if jsonOut {
		return printJSON(entries)
	}
	if len(entries) == 0 {
		printInfo("No text metadata\n")
		return nil
	}
	for _, e := range entries {
		printInfo("%s: %s\n", e.Keyword, e.Value)
	}
	return nil
}

func decodeEntry(e pngtext.RawTextEntry) (pngtext.TextEntry, error) {
	decode := pngtext.DecodeLatin1
	if !listLatin1 {
		decode = decodeUTF8
	}
	k, err := decode(e.Keyword)
	if err != nil {
		return pngtext.TextEntry{}, err
	}
	v, err := decode(e.Value)
	if err != nil {
		return pngtext.TextEntry{}, err
	}
	return pngtext.TextEntry{Keyword: k, Value: v}, nil
}

func decodeUTF8(b []byte) (string, error) {
	if !utf8.Valid(b) {
		return "", fmt.Errorf("%w (try --latin1)", types.ErrInvalidEncoding)
	}
	return string(b), nil
}
