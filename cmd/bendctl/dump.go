package main

import (
	"fmt"
	"os"

	"github.com/joshuapare/bendkit/buffer/printer"
	"github.com/joshuapare/bendkit/pkg/bend"
	"github.com/spf13/cobra"
)

var (
	dumpOffset    string
	dumpLength    int
	dumpRowWidth  int
	dumpUppercase bool
	dumpNoASCII   bool
)

func init() {
	cmd := newDumpCmd()
	cmd.Flags().StringVar(&dumpOffset, "offset", "0", "Start offset (decimal or 0x-prefixed hex)")
	cmd.Flags().IntVar(&dumpLength, "length", 0, "Bytes to dump (0 = through end of file)")
	cmd.Flags().IntVar(&dumpRowWidth, "rows", printer.DefaultBytesPerRow, "Bytes per row")
	cmd.Flags().BoolVar(&dumpUppercase, "uppercase", false, "Render hex digits as A-F")
	cmd.Flags().BoolVar(&dumpNoASCII, "no-ascii", false, "Drop the ASCII column")
	rootCmd.AddCommand(cmd)
}

func newDumpCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dump <file>",
		Short: "Hex dump of a file or a window of it",
		Long: `The dump command prints a classic hexdump: offset column, hex bytes,
and an ASCII column.

Example:
  bendctl dump photo.jpg
  bendctl dump photo.jpg --offset 0x200 --length 64
  bendctl dump photo.jpg --rows 8 --uppercase
  bendctl dump photo.jpg --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDump(args)
		},
	}
	return cmd
}

func runDump(args []string) error {
	path := args[0]

	off, err := bend.ParseOffset(dumpOffset)
	if err != nil {
		return fmt.Errorf("invalid --offset: %w", err)
	}

	printVerbose("Reading file: %s\n", path)
	data, err := bend.ReadFile(path)
	if err != nil {
		return err
	}
	if off > len(data) {
		return fmt.Errorf("offset %d beyond end of file (%d bytes)", off, len(data))
	}

	format := printer.FormatText
	if jsonOut {
		format = printer.FormatJSON
	}
	p := printer.New(os.Stdout, printer.Options{
		Format:      format,
		BytesPerRow: dumpRowWidth,
		Uppercase:   dumpUppercase,
		ShowASCII:   !dumpNoASCII,
		ShowOffsets: true,
	})
	return p.PrintRange(data, off, dumpLength)
}
