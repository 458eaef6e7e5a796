package main

import (
	"fmt"
	"os"

	"github.com/joshuapare/bendkit/pkg/bend"
	"github.com/spf13/cobra"
)

var (
	diffContext   int
	diffRows      int
	diffUppercase bool
	diffOutput    string
)

func init() {
	cmd := newDiffCmd()
	cmd.Flags().IntVar(&diffContext, "context", 3, "Rows of context around each change")
	cmd.Flags().IntVar(&diffRows, "rows", 16, "Bytes per row")
	cmd.Flags().BoolVar(&diffUppercase, "uppercase", false, "Uppercase hex digits")
	cmd.Flags().StringVarP(&diffOutput, "output", "o", "", "Save diff to file")
	rootCmd.AddCommand(cmd)
}

func newDiffCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "diff <a> <b>",
		Short: "Compare two files as hex-dump rows",
		Long: `The diff command renders both files as hex-dump rows and prints a
unified diff of the rows, so changed bytes show up with their offsets
and ASCII context.

Example:
  bendctl diff photo.jpg bent.jpg
  bendctl diff before.bin after.bin --context 1 --rows 8
  bendctl diff before.bin after.bin -o damage.patch`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFileDiff(args)
		},
	}
	return cmd
}

// diffReport is the JSON form of a file comparison.
type diffReport struct {
	A         string `json:"a"`
	B         string `json:"b"`
	Identical bool   `json:"identical"`
	Patch     string `json:"patch,omitempty"`
}

func runFileDiff(args []string) error {
	aPath, bPath := args[0], args[1]

	printVerbose("Comparing %s and %s...\n", aPath, bPath)

	aData, err := bend.ReadFile(aPath)
	if err != nil {
		return err
	}
	bData, err := bend.ReadFile(bPath)
	if err != nil {
		return err
	}

	patch, err := bend.UnifiedDiff(aPath, bPath, aData, bData, bend.DiffOptions{
		BytesPerRow: diffRows,
		Context:     diffContext,
		Uppercase:   diffUppercase,
	})
	if err != nil {
		return err
	}

	if jsonOut {
		return printJSON(diffReport{
			A:         aPath,
			B:         bPath,
			Identical: patch == "",
			Patch:     patch,
		})
	}

	if patch == "" {
		printInfo("files are identical (%d bytes)\n", len(aData))
		return nil
	}

	if diffOutput != "" {
		if err := os.WriteFile(diffOutput, []byte(patch), 0o644); err != nil {
			return fmt.Errorf("write diff: %w", err)
		}
		printInfo("wrote %s\n", diffOutput)
		return nil
	}

	printInfo("%s", patch)
	return nil
}
