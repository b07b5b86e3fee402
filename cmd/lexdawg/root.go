package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/milden6/lexdawg"
	"github.com/milden6/lexdawg/blob"
)

var (
	// Global flags
	verbose   bool
	quiet     bool
	jsonOut   bool
	codecName string

	logger = slog.New(slog.NewTextHandler(io.Discard, nil))
)

var rootCmd = &cobra.Command{
	Use:   "lexdawg",
	Short: "Query and inspect DAWG word lexicons",
	Long: `lexdawg answers word membership queries against a precompiled
DAWG lexicon, dumps its records, and compiles word lists into new lexicons.

Lexicon files are base64 text of a compressed record image unless
--codec raw is given, in which case the file holds the bare records.`,
	Version:       "0.1.0",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if verbose && !quiet {
			logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
		}
		_, err := blob.ParseCodec(codecName)
		return err
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().
		StringVar(&codecName, "codec", blob.Deflate.String(), "Lexicon file codec: deflate, zlib, snappy or raw")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// openLexicon opens the lexicon at path using the --codec flag.
func openLexicon(path string) (*lexdawg.Dawg, error) {
	codec, err := blob.ParseCodec(codecName)
	if err != nil {
		return nil, err
	}

	printVerbose("Opening lexicon: %s (%v)\n", path, codec)
	if codec == blob.Raw {
		return lexdawg.Load(path)
	}
	return blob.Open(path, &blob.Options{Codec: codec, Logger: logger})
}

// printInfo prints an info message if not in quiet mode
func printInfo(format string, args ...interface{}) {
	if !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printVerbose prints a verbose message if verbose mode is enabled
func printVerbose(format string, args ...interface{}) {
	if verbose && !quiet {
		fmt.Fprintf(os.Stderr, format, args...)
	}
}

// printJSON outputs data as JSON
func printJSON(v interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
