package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	dumpFrom  int
	dumpCount int
)

func init() {
	cmd := newDumpCmd()
	cmd.Flags().IntVar(&dumpFrom, "from", 0, "First record to print")
	cmd.Flags().IntVar(&dumpCount, "count", -1, "Number of records to print (-1 for all)")
	rootCmd.AddCommand(cmd)
}

func newDumpCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dump <lexicon>",
		Short: "Print the raw edge records of a lexicon",
		Long: `The dump command prints edge records as: index, more flag, letter, link.

Example:
  lexdawg dump words.b64 --count 26
  lexdawg dump words.dawg --codec raw --from 26 --count 10 --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDump(args)
		},
	}
	return cmd
}

type recordJSON struct {
	Index  int    `json:"index"`
	More   bool   `json:"more"`
	Letter string `json:"letter"`
	Link   uint32 `json:"link"`
}

func runDump(args []string) error {
	d, err := openLexicon(args[0])
	if err != nil {
		return fmt.Errorf("failed to open lexicon: %w", err)
	}

	if !jsonOut {
		if quiet {
			return nil
		}
		return d.Dump(os.Stdout, dumpFrom, dumpCount)
	}

	from, end, err := d.Span(dumpFrom, dumpCount)
	if err != nil {
		return err
	}

	records := make([]recordJSON, 0, end-from)
	for i := from; i < end; i++ {
		rec := d.Record(i)
		records = append(records, recordJSON{
			Index:  i,
			More:   rec.More,
			Letter: string(rune(rec.Letter)),
			Link:   rec.Link,
		})
	}
	return printJSON(records)
}
