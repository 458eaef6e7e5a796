package main

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"math"
	"os"

	"github.com/joshuapare/bendkit/internal/buf"
	"github.com/joshuapare/bendkit/internal/bytetext"
	"github.com/joshuapare/bendkit/pkg/bend"
	"github.com/spf13/cobra"
)

var (
	infoAt        string
	infoBigEndian bool
)

func init() {
	cmd := newInfoCmd()
	cmd.Flags().StringVar(&infoAt, "at", "", "Decode integer/float values at this offset (decimal or 0x-prefixed hex)")
	cmd.Flags().BoolVar(&infoBigEndian, "big-endian", false, "Decode --at values big-endian instead of little-endian")
	rootCmd.AddCommand(cmd)
}

func newInfoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info <file>",
		Short: "Size, hash, entropy, and byte statistics for a file",
		Long: `The info command reports the numbers that matter before bending a file:
its size, SHA-256, Shannon entropy (how compressed/encrypted it already
looks), and how much of it is printable text. With --at it also decodes
the bytes at one offset as the common fixed-width types, like a hex
editor's data inspector.

Example:
  bendctl info photo.jpg
  bendctl info photo.jpg --at 0x12 --big-endian
  bendctl info photo.jpg --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfo(args)
		},
	}
	return cmd
}

// fileInfo is the info command's report.
type fileInfo struct {
	File           string           `json:"file"`
	Size           int64            `json:"size"`
	SHA256         string           `json:"sha256"`
	Entropy        float64          `json:"entropy_bits_per_byte"`
	PrintableRatio float64          `json:"printable_ratio"`
	ZeroRatio      float64          `json:"zero_ratio"`
	Inspect        *valueInspection `json:"inspect,omitempty"`
}

// valueInspection decodes the bytes at one offset as the common
// fixed-width types. Widths that run past the end of the file are nil.
type valueInspection struct {
	Offset    int      `json:"offset"`
	BigEndian bool     `json:"big_endian"`
	U8        uint8    `json:"u8"`
	I8        int8     `json:"i8"`
	U16       *uint16  `json:"u16,omitempty"`
	I16       *int16   `json:"i16,omitempty"`
	U32       *uint32  `json:"u32,omitempty"`
	I32       *int32   `json:"i32,omitempty"`
	F32       *float32 `json:"f32,omitempty"`
	U64       *uint64  `json:"u64,omitempty"`
	I64       *int64   `json:"i64,omitempty"`
	F64       *float64 `json:"f64,omitempty"`
}

func runInfo(args []string) error {
	path := args[0]

	printVerbose("Reading file: %s\n", path)
	data, err := bend.ReadFile(path)
	if err != nil {
		return err
	}
	stat, err := os.Stat(path)
	if err != nil {
		return err
	}

	sum := sha256.Sum256(data)
	info := fileInfo{
		File:           path,
		Size:           stat.Size(),
		SHA256:         hex.EncodeToString(sum[:]),
		Entropy:        shannonEntropy(data),
		PrintableRatio: printableRatio(data),
		ZeroRatio:      byteRatio(data, 0x00),
	}

	if infoAt != "" {
		off, err := bend.ParseOffset(infoAt)
		if err != nil {
			return fmt.Errorf("invalid --at: %w", err)
		}
		if off >= len(data) {
			return fmt.Errorf("offset %d beyond end of file (%d bytes)", off, len(data))
		}
		v := inspectAt(data, off, infoBigEndian)
		info.Inspect = &v
	}

	if jsonOut {
		return printJSON(info)
	}

	printInfo("\nFile Information:\n")
	printInfo("  File: %s\n", info.File)
	if info.Size < 1024 {
		printInfo("  Size: %d bytes\n", info.Size)
	} else if info.Size < 1024*1024 {
		printInfo("  Size: %.1f KB (%d bytes)\n", float64(info.Size)/1024, info.Size)
	} else {
		printInfo("  Size: %.1f MB (%d bytes)\n", float64(info.Size)/(1024*1024), info.Size)
	}
	printInfo("  SHA-256: %s\n", info.SHA256)
	printInfo("  Entropy: %.3f bits/byte\n", info.Entropy)
	printInfo("  Printable: %.1f%%\n", info.PrintableRatio*100)
	printInfo("  Zero bytes: %.1f%%\n", info.ZeroRatio*100)

	if v := info.Inspect; v != nil {
		order := "little-endian"
		if v.BigEndian {
			order = "big-endian"
		}
		printInfo("\nValues at 0x%X (%s):\n", v.Offset, order)
		printInfo("  u8:  %-22d i8:  %d\n", v.U8, v.I8)
		if v.U16 != nil {
			printInfo("  u16: %-22d i16: %d\n", *v.U16, *v.I16)
		}
		if v.U32 != nil {
			printInfo("  u32: %-22d i32: %-22d f32: %g\n", *v.U32, *v.I32, *v.F32)
		}
		if v.U64 != nil {
			printInfo("  u64: %-22d i64: %-22d f64: %g\n", *v.U64, *v.I64, *v.F64)
		}
	}

	return nil
}

// inspectAt decodes the window starting at off in every width that
// still fits inside data.
func inspectAt(data []byte, off int, bigEndian bool) valueInspection {
	v := valueInspection{Offset: off, BigEndian: bigEndian}
	w := data[off:]

	v.U8 = w[0]
	v.I8 = int8(w[0])
	if len(w) >= 2 {
		u, i := buf.U16(w, bigEndian), buf.I16(w, bigEndian)
		v.U16, v.I16 = &u, &i
	}
	if len(w) >= 4 {
		u, i, f := buf.U32(w, bigEndian), buf.I32(w, bigEndian), buf.F32(w, bigEndian)
		v.U32, v.I32, v.F32 = &u, &i, &f
	}
	if len(w) >= 8 {
		u, i, f := buf.U64(w, bigEndian), buf.I64(w, bigEndian), buf.F64(w, bigEndian)
		v.U64, v.I64, v.F64 = &u, &i, &f
	}
	return v
}

// shannonEntropy returns the byte-level Shannon entropy of data in bits
// per byte: 0 for a constant file, 8 for uniformly random bytes.
func shannonEntropy(data []byte) float64 {
	if len(data) == 0 {
		return 0
	}
	var counts [256]int
	for _, b := range data {
		counts[b]++
	}
	n := float64(len(data))
	var h float64
	for _, c := range counts {
		if c == 0 {
			continue
		}
		p := float64(c) / n
		h -= p * math.Log2(p)
	}
	return h
}

func printableRatio(data []byte) float64 {
	if len(data) == 0 {
		return 0
	}
	var n int
	for _, b := range data {
		if bytetext.IsPrintASCII(b) {
			n++
		}
	}
	return float64(n) / float64(len(data))
}

func byteRatio(data []byte, value byte) float64 {
	if len(data) == 0 {
		return 0
	}
	var n int
	for _, b := range data {
		if b == value {
			n++
		}
	}
	return float64(n) / float64(len(data))
}
