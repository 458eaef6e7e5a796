package main

import (
	"os"

	"github.com/joshuapare/bendkit/buffer/printer"
	"github.com/joshuapare/bendkit/buffer/search"
	"github.com/joshuapare/bendkit/internal/bytetext"
	"github.com/joshuapare/bendkit/pkg/bend"
	"github.com/spf13/cobra"
)

var (
	searchASCII         bool
	searchCaseSensitive bool
	searchMaxResults    int
	searchContext       int
)

func init() {
	cmd := newSearchCmd()
	cmd.Flags().BoolVar(&searchASCII, "ascii", false, "Treat the pattern as ASCII text instead of hex")
	cmd.Flags().BoolVar(&searchCaseSensitive, "case-sensitive", false, "Case-sensitive ASCII search")
	cmd.Flags().IntVar(&searchMaxResults, "max-results", 0, "Limit results (0 = unlimited)")
	cmd.Flags().IntVar(&searchContext, "context", 0, "Dump N bytes of context around each match")
	rootCmd.AddCommand(cmd)
}

func newSearchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search <file> <pattern>",
		Short: "Find a hex or ASCII pattern in a file",
		Long: `The search command scans a file for a byte pattern. Hex patterns are
digit pairs with optional whitespace; ?? matches any byte.

Example:
  bendctl search photo.jpg "FF D8 FF"
  bendctl search photo.jpg "FF ?? FF" --context 16
  bendctl search notes.bin "hello" --ascii --case-sensitive
  bendctl search photo.jpg "FFD8" --json`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(args)
		},
	}
	return cmd
}

// searchReport is the search command's JSON output.
type searchReport struct {
	File       string `json:"file"`
	Pattern    string `json:"pattern"`
	Mode       string `json:"mode"`
	PatternLen int    `json:"pattern_length"`
	Count      int    `json:"count"`
	Truncated  bool   `json:"truncated,omitempty"`
	Offsets    []int  `json:"offsets"`
}

func runSearch(args []string) error {
	path, pattern := args[0], args[1]

	printVerbose("Reading file: %s\n", path)
	data, err := bend.ReadFile(path)
	if err != nil {
		return err
	}

	s := &search.Session{Query: pattern, CaseSensitive: searchCaseSensitive}
	if searchASCII {
		s.Mode = search.ModeASCII
	}
	if err := s.Execute(data, 0); err != nil {
		return err
	}

	offsets := s.Matches()
	truncated := false
	if searchMaxResults > 0 && len(offsets) > searchMaxResults {
		offsets = offsets[:searchMaxResults]
		truncated = true
	}

	if jsonOut {
		return printJSON(searchReport{
			File:       path,
			Pattern:    pattern,
			Mode:       s.Mode.String(),
			PatternLen: s.PatternLength(),
			Count:      s.MatchCount(),
			Truncated:  truncated,
			Offsets:    offsets,
		})
	}

	printInfo("%d match(es) for %q in %s\n", s.MatchCount(), pattern, path)
	for _, off := range offsets {
		text := bytetext.DisplayString(data[off : off+s.PatternLength()])
		printInfo("  0x%08X  (%d)  %s\n", off, off, text)
		if searchContext > 0 {
			dumpContext(data, off, s.PatternLength(), searchContext)
		}
	}
	if truncated {
		printInfo("  ... (limited to %d results)\n", searchMaxResults)
	}
	return nil
}

// dumpContext prints the match and its surroundings as hexdump rows.
func dumpContext(data []byte, off, matchLen, context int) {
	start := off - context
	if start < 0 {
		start = 0
	}
	end := off + matchLen + context
	if end > len(data) {
		end = len(data)
	}
	p := printer.New(os.Stdout, printer.Options{
		Format:      printer.FormatText,
		BytesPerRow: printer.DefaultBytesPerRow,
		ShowASCII:   true,
		ShowOffsets: true,
	})
	_ = p.PrintRange(data, start, end-start)
	printInfo("\n")
}
