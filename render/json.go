package render

import (
	"encoding/json"
	"io"

	"opgen/opcode"
)

type jsonEntry struct {
	Name string `json:"name"`
	Hex  string `json:"hex"`
}

// renderJSON emits the table as a JSON array of name/hex objects.
func renderJSON(w io.Writer, table opcode.Table) (err error) {
	entries := make([]jsonEntry, 0, len(table))
	for _, entry := range table {
		entries = append(entries, jsonEntry{Name: entry.Ident(), Hex: entry.Hex})
	}

	text, err := json.MarshalIndent(entries, "", "    ")
	if err != nil {
		return
	}

	_, err = w.Write(append(text, '\n'))
	return
}
