package main

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/joshuapare/bendkit/pkg/bend"
	"github.com/spf13/cobra"
)

var (
	glitchSeed     int64
	glitchCount    int
	glitchMode     string
	glitchProtect  string
	glitchOutput   string
	glitchInPlace  bool
	glitchDryRun   bool
	glitchShowDiff bool
)

func init() {
	cmd := newGlitchCmd()
	cmd.Flags().Int64Var(&glitchSeed, "seed", 0, "Random seed (0 picks one and prints it)")
	cmd.Flags().IntVar(&glitchCount, "count", 16, "Number of bytes to corrupt")
	cmd.Flags().StringVar(&glitchMode, "mode", "flip", "Corruption mode (flip, zero, random, add)")
	cmd.Flags().StringVar(&glitchProtect, "protect", "0", "Leave the first N bytes untouched (header guard)")
	cmd.Flags().StringVarP(&glitchOutput, "output", "o", "", "Write result to this path")
	cmd.Flags().BoolVar(&glitchInPlace, "in-place", false, "Overwrite the input file")
	cmd.Flags().BoolVar(&glitchDryRun, "dry-run", false, "Corrupt in memory without writing")
	cmd.Flags().BoolVar(&glitchShowDiff, "diff", false, "Print a unified hex diff of the damage")
	rootCmd.AddCommand(cmd)
}

func newGlitchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "glitch <file>",
		Short: "Corrupt random bytes for databending",
		Long: `The glitch command sprays seeded random corruptions across a file.
Pass --seed to reproduce a run exactly; without it a seed is chosen
and printed so a happy accident can be replayed.

Corruption modes:
  flip    XOR one random bit of the byte
  zero    set the byte to 00
  random  replace the byte with a random value
  add     add a random non-zero delta (wraps)

Use --protect to keep file headers intact, e.g. --protect 0x200 leaves
the first 512 bytes alone so image viewers still open the result.

Example:
  bendctl glitch photo.jpg --protect 0x200 --count 40 -o bent.jpg
  bendctl glitch track.wav --mode add --seed 1337 --diff --dry-run`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGlitch(args)
		},
	}
	return cmd
}

// glitchReport summarizes one corruption run.
type glitchReport struct {
	File    string `json:"file"`
	Seed    int64  `json:"seed"`
	Mode    string `json:"mode"`
	Count   int    `json:"count"`
	Protect int    `json:"protected_bytes"`
	Wrote   string `json:"wrote,omitempty"`
}

func runGlitch(args []string) error {
	path := args[0]

	if !glitchDryRun && glitchOutput == "" && !glitchInPlace {
		return fmt.Errorf("pick a destination: --output <path>, --in-place, or --dry-run")
	}
	if glitchOutput != "" && glitchInPlace {
		return fmt.Errorf("--output and --in-place are mutually exclusive")
	}
	if glitchCount <= 0 {
		return fmt.Errorf("--count must be positive")
	}
	switch glitchMode {
	case "flip", "zero", "random", "add":
	default:
		return fmt.Errorf("unknown mode %q (want flip, zero, random, or add)", glitchMode)
	}

	protect, err := bend.ParseOffset(glitchProtect)
	if err != nil {
		return fmt.Errorf("--protect: %w", err)
	}

	b, err := bend.OpenFile(path)
	if err != nil {
		return err
	}
	if protect >= b.Len() {
		return fmt.Errorf("--protect %d covers the whole file (%d bytes)", protect, b.Len())
	}

	seed := glitchSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	working := b.Working()
	span := b.Len() - protect
	for i := 0; i < glitchCount; i++ {
		off := protect + rng.Intn(span)
		old := working[off]
		var val byte
		switch glitchMode {
		case "flip":
			val = old ^ (1 << uint(rng.Intn(8)))
		case "zero":
			val = 0x00
		case "random":
			val = byte(rng.Intn(256))
		case "add":
			val = old + byte(1+rng.Intn(255))
		}
		b.EditBytes(off, []byte{val})
		printVerbose("%s %08X: %02X -> %02X\n", glitchMode, off, old, val)
	}

	report := glitchReport{
		File:    path,
		Seed:    seed,
		Mode:    glitchMode,
		Count:   glitchCount,
		Protect: protect,
	}

	if glitchShowDiff {
		patch, err := bend.UnifiedDiff(path+" (original)", path+" (bent)", b.Original(), b.Working(), bend.DiffOptions{})
		if err != nil {
			return err
		}
		printInfo("%s", patch)
	}

	if !glitchDryRun {
		dest := glitchOutput
		if glitchInPlace {
			dest = path
		}
		if err := bend.Export(dest, b.Working(), bend.ExportOptions{}); err != nil {
			return err
		}
		report.Wrote = dest
	}

	if jsonOut {
		return printJSON(report)
	}
	printInfo("glitched %d byte(s), mode %s, seed %d\n", report.Count, report.Mode, report.Seed)
	if report.Wrote != "" {
		printInfo("wrote %s\n", report.Wrote)
	} else {
		printInfo("dry run: nothing written\n")
	}
	return nil
}
