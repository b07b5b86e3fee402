package main

import (
	"bufio"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/milden6/lexdawg"
	"github.com/milden6/lexdawg/blob"
	"github.com/milden6/lexdawg/internal/builder"
)

var compileNormalize bool

func init() {
	cmd := newCompileCmd()
	cmd.Flags().BoolVar(&compileNormalize, "normalize", false, "Lower-case words and strip diacritics before compiling")
	rootCmd.AddCommand(cmd)
}

func newCompileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compile <wordlist> <output>",
		Short: "Compile a word list into a lexicon",
		Long: `The compile command builds a minimal DAWG from a word list with one
word per line. Blank lines and lines starting with '#' are ignored. Words may
appear in any order and more than once; only the letters a-z are accepted.

Example:
  lexdawg compile words.txt words.b64
  lexdawg compile words.txt words.dawg --codec raw`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompile(args)
		},
	}
	return cmd
}

func runCompile(args []string) error {
	words, err := readWordList(args[0])
	if err != nil {
		return fmt.Errorf("failed to read word list: %w", err)
	}
	printVerbose("Read %d words from %s\n", len(words), args[0])

	records, err := builder.Compile(words)
	if err != nil {
		return fmt.Errorf("failed to compile: %w", err)
	}

	codec, err := blob.ParseCodec(codecName)
	if err != nil {
		return err
	}

	f, err := os.Create(args[1])
	if err != nil {
		return fmt.Errorf("failed to create output: %w", err)
	}
	if err := blob.Encode(f, records, &blob.Options{Codec: codec, Logger: logger}); err != nil {
		f.Close()
		return fmt.Errorf("failed to write lexicon: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write lexicon: %w", err)
	}

	printInfo("Compiled %d words into %d records (%v)\n", len(words), len(records)/lexdawg.RecordSize, codec)
	return nil
}

func readWordList(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var words []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if compileNormalize {
			line = normalizeWord(line)
		}
		words = append(words, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	slices.Sort(words)
	return slices.Compact(words), nil
}
