package main

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/joshuapare/bendkit/buffer"
	"github.com/joshuapare/bendkit/buffer/search"
	"github.com/joshuapare/bendkit/pkg/bend"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	patchOutput   string
	patchInPlace  bool
	patchDryRun   bool
	patchShowDiff bool
)

func init() {
	cmd := newPatchCmd()
	cmd.Flags().StringVarP(&patchOutput, "output", "o", "", "Write result to this path")
	cmd.Flags().BoolVar(&patchInPlace, "in-place", false, "Overwrite the input file")
	cmd.Flags().BoolVar(&patchDryRun, "dry-run", false, "Run the script without writing")
	cmd.Flags().BoolVar(&patchShowDiff, "diff", false, "Print a unified hex diff of the result")
	rootCmd.AddCommand(cmd)
}

func newPatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "patch <file> <script.yaml>",
		Short: "Apply a YAML edit script to a file",
		Long: `The patch command replays a scripted sequence of edits through the
engine, so the whole run is recorded in history and checkpoint steps
land as save points.

Script steps (YAML list under "steps"):
  - op: set       at: "0x10"  bytes: "FF 00"       # overwrite bytes
  - op: fill      at: "0x100" count: 16 value: 65  # repeat one byte
  - op: insert    at: "64"    bytes: "DE AD"       # splice bytes in
  - op: delete    at: "0x40"  count: 4             # remove bytes
  - op: replace   find: "FF ?? FF" with: "00 11 00" all: true
  - op: checkpoint name: "after header"            # create a save point

Example:
  bendctl patch photo.jpg corrupt.yaml --diff --dry-run
  bendctl patch photo.jpg corrupt.yaml -o bent.jpg`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPatch(args)
		},
	}
	return cmd
}

// patchScript is the YAML document the patch command consumes.
type patchScript struct {
	Description string      `yaml:"description"`
	Steps       []patchStep `yaml:"steps"`
}

// patchStep is one scripted edit. Op selects which fields apply.
type patchStep struct {
	Op    string `yaml:"op"`
	At    string `yaml:"at"`    // set, fill, insert, delete
	Bytes string `yaml:"bytes"` // set, insert: hex byte text
	Count int    `yaml:"count"` // fill, delete
	Value int    `yaml:"value"` // fill: the byte repeated
	Find  string `yaml:"find"`  // replace
	With  string `yaml:"with"`  // replace
	All   bool   `yaml:"all"`   // replace
	ASCII bool   `yaml:"ascii"` // replace: ASCII instead of hex
	Name  string `yaml:"name"`  // checkpoint
}

// patchReport summarizes one script run.
type patchReport struct {
	RunID       string `json:"run_id"`
	File        string `json:"file"`
	Script      string `json:"script"`
	Description string `json:"description,omitempty"`
	Steps       int    `json:"steps"`
	Edits       int    `json:"undo_entries"`
	SavePoints  int    `json:"save_points"`
	Modified    bool   `json:"modified"`
	Wrote       string `json:"wrote,omitempty"`
}

func runPatch(args []string) error {
	path, scriptPath := args[0], args[1]

	if !patchDryRun && patchOutput == "" && !patchInPlace {
		return fmt.Errorf("pick a destination: --output <path>, --in-place, or --dry-run")
	}
	if patchOutput != "" && patchInPlace {
		return fmt.Errorf("--output and --in-place are mutually exclusive")
	}

	raw, err := os.ReadFile(scriptPath)
	if err != nil {
		return fmt.Errorf("read script: %w", err)
	}
	var script patchScript
	if err := yaml.Unmarshal(raw, &script); err != nil {
		return fmt.Errorf("parse script: %w", err)
	}
	if len(script.Steps) == 0 {
		return fmt.Errorf("script has no steps")
	}

	runID := uuid.NewString()
	printVerbose("patch run %s: %d step(s)\n", runID, len(script.Steps))

	b, err := bend.OpenFile(path)
	if err != nil {
		return err
	}

	for i, step := range script.Steps {
		if err := applyStep(b, step); err != nil {
			return fmt.Errorf("step %d (%s): %w", i+1, step.Op, err)
		}
		printVerbose("step %d (%s) ok\n", i+1, step.Op)
	}

	report := patchReport{
		RunID:       runID,
		File:        path,
		Script:      scriptPath,
		Description: script.Description,
		Steps:       len(script.Steps),
		Edits:       b.UndoCount(),
		SavePoints:  len(b.SavePoints()),
		Modified:    b.IsModified(),
	}

	if patchShowDiff {
		patch, err := bend.UnifiedDiff(path+" (original)", path+" (bent)", b.Original(), b.Working(), bend.DiffOptions{})
		if err != nil {
			return err
		}
		printInfo("%s", patch)
	}

	if !patchDryRun {
		dest := patchOutput
		if patchInPlace {
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
	printInfo("run %s: %d step(s), %d undo entries, %d save point(s)\n",
		report.RunID, report.Steps, report.Edits, report.SavePoints)
	if report.Wrote != "" {
		printInfo("wrote %s\n", report.Wrote)
	} else {
		printInfo("dry run: nothing written\n")
	}
	return nil
}

// applyStep dispatches one script step against the buffer.
func applyStep(b *buffer.Buffer, step patchStep) error {
	switch step.Op {
	case "set":
		off, err := bend.ParseOffset(step.At)
		if err != nil {
			return err
		}
		vals, err := search.ParseHexReplacement(step.Bytes)
		if err != nil {
			return err
		}
		b.EditBytes(off, vals)
		return nil

	case "fill":
		off, err := bend.ParseOffset(step.At)
		if err != nil {
			return err
		}
		if step.Count <= 0 {
			return fmt.Errorf("fill needs count > 0")
		}
		if step.Value < 0 || step.Value > 0xFF {
			return fmt.Errorf("fill value %d out of byte range", step.Value)
		}
		vals := make([]byte, step.Count)
		for i := range vals {
			vals[i] = byte(step.Value)
		}
		b.EditBytes(off, vals)
		return nil

	case "insert":
		off, err := bend.ParseOffset(step.At)
		if err != nil {
			return err
		}
		vals, err := search.ParseHexReplacement(step.Bytes)
		if err != nil {
			return err
		}
		b.InsertBytes(off, vals)
		return nil

	case "delete":
		off, err := bend.ParseOffset(step.At)
		if err != nil {
			return err
		}
		if step.Count <= 0 {
			return fmt.Errorf("delete needs count > 0")
		}
		b.DeleteBytes(off, step.Count)
		return nil

	case "replace":
		s := &search.Session{Query: step.Find}
		if step.ASCII {
			s.Mode = search.ModeASCII
		}
		if err := b.ExecuteSearch(s); err != nil {
			return err
		}
		if !s.HasMatches() {
			return nil // nothing to do is not an error in a script
		}
		if step.All {
			_, err := b.ReplaceAll(s, step.With)
			return err
		}
		return b.ReplaceCurrent(s, step.With)

	case "checkpoint":
		if step.Name == "" {
			return fmt.Errorf("checkpoint needs a name")
		}
		b.CreateSavePoint(step.Name)
		return nil

	default:
		return fmt.Errorf("unknown op %q", step.Op)
	}
}
