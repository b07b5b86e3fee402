package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var (
	checkNormalize bool
	checkStdin     bool
)

func init() {
	cmd := newCheckCmd()
	cmd.Flags().BoolVar(&checkNormalize, "normalize", false, "Lower-case words and strip diacritics before lookup")
	cmd.Flags().BoolVar(&checkStdin, "stdin", false, "Read words from standard input, one per line")
	rootCmd.AddCommand(cmd)
}

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check <lexicon> [word...]",
		Short: "Check whether words are in a lexicon",
		Long: `The check command looks up each word and prints whether the lexicon
contains it. Words are matched exactly unless --normalize is given.

Example:
  lexdawg check words.b64 hello qi pointierst
  lexdawg check words.b64 --normalize Café
  cat list.txt | lexdawg check words.b64 --stdin --json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(args, os.Stdin)
		},
	}
	return cmd
}

type checkResult struct {
	Word  string `json:"word"`
	Found bool   `json:"found"`
}

func runCheck(args []string, stdin io.Reader) error {
	d, err := openLexicon(args[0])
	if err != nil {
		return fmt.Errorf("failed to open lexicon: %w", err)
	}

	words := args[1:]
	if checkStdin {
		scanner := bufio.NewScanner(stdin)
		for scanner.Scan() {
			if w := strings.TrimSpace(scanner.Text()); w != "" {
				words = append(words, w)
			}
		}
		if err := scanner.Err(); err != nil {
			return fmt.Errorf("failed to read words: %w", err)
		}
	}
	if len(words) == 0 {
		return fmt.Errorf("no words to check")
	}

	results := make([]checkResult, 0, len(words))
	for _, w := range words {
		if checkNormalize {
			w = normalizeWord(w)
		}
		results = append(results, checkResult{Word: w, Found: d.Contains(w)})
	}

	if jsonOut {
		return printJSON(results)
	}
	for _, r := range results {
		printInfo("%s\t%t\n", r.Word, r.Found)
	}
	return nil
}
