package printer

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
)

// jsonRow represents one dump row in JSON format.
type jsonRow struct {
	Offset int    `json:"offset"`
	Hex    string `json:"hex"`
	ASCII  string `json:"ascii,omitempty"`
}

// jsonDump represents the whole dump document.
type jsonDump struct {
	Offset int       `json:"offset"`
	Length int       `json:"length"`
	Rows   []jsonRow `json:"rows"`
}

// printJSON writes [start, end) as one indented JSON document.
func (p *Printer) printJSON(data []byte, start, end int) error {
	spans := splitRows(data, start, end, p.opts.BytesPerRow)
	dump := jsonDump{
		Offset: start + p.opts.BaseOffset,
		Length: end - start,
		Rows:   make([]jsonRow, 0, len(spans)),
	}
	for _, row := range spans {
		r := jsonRow{
			Offset: row.offset + p.opts.BaseOffset,
			Hex:    p.encodeHex(row.data),
		}
		if p.opts.ShowASCII {
			r.ASCII = asciiColumn(row.data)
		}
		dump.Rows = append(dump.Rows, r)
	}

	out, err := json.MarshalIndent(dump, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(p.writer, "%s\n", out)
	return err
}

func (p *Printer) encodeHex(b []byte) string {
	s := hex.EncodeToString(b)
	if p.opts.Uppercase {
		s = strings.ToUpper(s)
	}
	return s
}
