/*
Package bend is the high-level entry point for the bendkit byte-buffer
engine: open bytes or a file into an editable buffer, bend them, and
export the result.

# Quick Start

Open a file, corrupt a byte, write the result somewhere safe:

	b, err := bend.OpenFile("photo.jpg")
	if err != nil {
	    log.Fatal(err)
	}
	b.EditByte(0x200, 0xFF)
	err = bend.Export("glitched.jpg", b.Working(), bend.ExportOptions{})

# The Core Rule

The engine never touches the filesystem. bend.Open hands an independent
copy of your bytes to a buffer.Buffer; everything after that is in
memory, reversible, and snapshot-able. Export is the single seam back
out, and it writes through a temp file with a durable sync and an
atomic rename so a crash mid-save never half-overwrites the target.

# Search and Replace

	s := &search.Session{Query: "FF D8 ?? E0", Mode: search.ModeHex}
	if err := b.ExecuteSearch(s); err != nil { ... }
	n, err := b.ReplaceAll(s, "FF D8 00 E0")

# Offsets

User-facing offset input goes through ParseOffset, which accepts plain
decimal and 0x-prefixed hex:

	off, err := bend.ParseOffset("0x1F4")

# Diffs

UnifiedDiff renders two byte states as hexdump rows and diffs those, so
"what did my edits actually change" reads like a normal code review:

	patch := bend.UnifiedDiff("original", "working", b.Original(), b.Working(), bend.DiffOptions{})
*/
package bend
