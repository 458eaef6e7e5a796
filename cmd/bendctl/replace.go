package main

import (
	"fmt"

	"github.com/joshuapare/bendkit/buffer/search"
	"github.com/joshuapare/bendkit/pkg/bend"
	"github.com/spf13/cobra"
)

var (
	replaceASCII         bool
	replaceCaseSensitive bool
	replaceAll           bool
	replaceNth           int
	replaceDryRun        bool
	replaceOutput        string
	replaceInPlace       bool
	replaceShowDiff      bool
)

func init() {
	cmd := newReplaceCmd()
	cmd.Flags().BoolVar(&replaceASCII, "ascii", false, "Treat pattern and replacement as ASCII text")
	cmd.Flags().BoolVar(&replaceCaseSensitive, "case-sensitive", false, "Case-sensitive ASCII matching")
	cmd.Flags().BoolVar(&replaceAll, "all", false, "Replace every match")
	cmd.Flags().IntVar(&replaceNth, "nth", 1, "Replace only the Nth match (1-based)")
	cmd.Flags().BoolVar(&replaceDryRun, "dry-run", false, "Report what would change without writing")
	cmd.Flags().StringVarP(&replaceOutput, "output", "o", "", "Write result to this path")
	cmd.Flags().BoolVar(&replaceInPlace, "in-place", false, "Overwrite the input file")
	cmd.Flags().BoolVar(&replaceShowDiff, "diff", false, "Print a unified hex diff of the change")
	rootCmd.AddCommand(cmd)
}

func newReplaceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "replace <file> <pattern> <replacement>",
		Short: "Replace a byte pattern with same-width bytes",
		Long: `The replace command overwrites pattern matches with a replacement of
the same byte width. Width equality is enforced: replacement never
shifts the rest of the file, so match offsets stay valid.

Example:
  bendctl replace photo.jpg "FF D8" "00 00" --dry-run
  bendctl replace photo.jpg "FF ?? FF" "00 11 00" --all -o bent.jpg
  bendctl replace notes.bin "cat" "dog" --ascii --nth 2 --in-place`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReplace(args)
		},
	}
	return cmd
}

func runReplace(args []string) error {
	path, pattern, replacement := args[0], args[1], args[2]

	if !replaceDryRun && replaceOutput == "" && !replaceInPlace {
		return fmt.Errorf("pick a destination: --output <path>, --in-place, or --dry-run")
	}
	if replaceOutput != "" && replaceInPlace {
		return fmt.Errorf("--output and --in-place are mutually exclusive")
	}

	b, err := bend.OpenFile(path)
	if err != nil {
		return err
	}

	s := &search.Session{Query: pattern, CaseSensitive: replaceCaseSensitive}
	if replaceASCII {
		s.Mode = search.ModeASCII
	}
	if err := b.ExecuteSearch(s); err != nil {
		return err
	}
	if !s.HasMatches() {
		printInfo("no matches for %q in %s\n", pattern, path)
		return nil
	}
	printVerbose("%d match(es), pattern width %d\n", s.MatchCount(), s.PatternLength())

	var replaced int
	if replaceAll {
		n, err := b.ReplaceAll(s, replacement)
		if err != nil {
			return err
		}
		replaced = n
	} else {
		if replaceNth < 1 || replaceNth > s.MatchCount() {
			return fmt.Errorf("--nth %d out of range: %d match(es)", replaceNth, s.MatchCount())
		}
		// Session navigation starts on match 1.
		for i := 1; i < replaceNth; i++ {
			s.NextMatch()
		}
		if err := b.ReplaceCurrent(s, replacement); err != nil {
			return err
		}
		replaced = 1
	}

	printInfo("replaced %d site(s)\n", replaced)

	if replaceShowDiff {
		patch, err := bend.UnifiedDiff(path+" (original)", path+" (bent)", b.Original(), b.Working(), bend.DiffOptions{})
		if err != nil {
			return err
		}
		printInfo("%s", patch)
	}

	if replaceDryRun {
		printInfo("dry run: nothing written\n")
		return nil
	}
	dest := replaceOutput
	if replaceInPlace {
		dest = path
	}
	if err := bend.Export(dest, b.Working(), bend.ExportOptions{}); err != nil {
		return err
	}
	printInfo("wrote %s\n", dest)
	return nil
}
