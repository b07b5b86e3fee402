package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/milden6/lexdawg"
)

func init() {
	rootCmd.AddCommand(newInfoCmd())
}

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info <lexicon>",
		Short: "Show lexicon statistics",
		Long: `The info command prints the record count and the root node of a lexicon.

Example:
  lexdawg info words.b64
  lexdawg info words.dawg --codec raw --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfo(args)
		},
	}
}

type lexiconInfo struct {
	Records     int    `json:"records"`
	Bytes       int    `json:"bytes"`
	RootLetters string `json:"root_letters"`
	EmptyWord   bool   `json:"empty_word"`
}

func runInfo(args []string) error {
	d, err := openLexicon(args[0])
	if err != nil {
		return fmt.Errorf("failed to open lexicon: %w", err)
	}

	info := lexiconInfo{
		Records:   d.NumRecords(),
		Bytes:     len(d.Bytes()),
		EmptyWord: d.Contains(""),
	}
	for i := 0; ; i++ {
		rec := d.Record(i)
		if !rec.IsSentinel() {
			info.RootLetters += string(rune(rec.Letter))
		}
		if !rec.More {
			break
		}
	}

	if jsonOut {
		return printJSON(info)
	}

	printInfo("Records:      %d\n", info.Records)
	printInfo("Bytes:        %d\n", info.Bytes)
	printInfo("Root letters: %s\n", info.RootLetters)
	printInfo("Empty word:   %t\n", info.EmptyWord)
	printInfo("Record size:  %d\n", lexdawg.RecordSize)
	return nil
}
