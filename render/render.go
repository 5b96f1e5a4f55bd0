// Package render generates constant-table source files from an opcode
// table. Every format emits entries in table order and performs no
// uniqueness validation; a duplicated name is the downstream compiler's
// problem.
package render

import (
	"io"
	"os"

	"opgen/opcode"
)

// Format selects the output language of the generated table.
type Format int

//go:generate go tool stringer -linecomment -type=Format
const (
	FormatZig  = Format(0) // zig
	FormatGo   = Format(1) // go
	FormatJSON = Format(2) // json
)

var formatMap = map[string]Format{
	FormatZig.String():  FormatZig,
	FormatGo.String():   FormatGo,
	FormatJSON.String(): FormatJSON,
}

// ParseFormat resolves a format name as given on the command line.
func ParseFormat(name string) (format Format, err error) {
	format, ok := formatMap[name]
	if !ok {
		err = ErrFormatInvalid(name)
	}
	return
}

// Render writes the table to w in the format.
func (format Format) Render(w io.Writer, table opcode.Table) (err error) {
	switch format {
	case FormatZig:
		err = renderZig(w, table)
	case FormatGo:
		err = renderGo(w, table)
	case FormatJSON:
		err = renderJSON(w, table)
	default:
		err = ErrFormatInvalid(format.String())
	}
	return
}

// File renders the table into the file at path, replacing any previous
// content. Nothing is written when the path cannot be created.
func (format Format) File(path string, table opcode.Table) (err error) {
	defer func() {
		if err != nil {
			err = &ErrFileWrite{Path: path, Err: err}
		}
	}()

	ouf, err := os.Create(path)
	if err != nil {
		return
	}

	err = format.Render(ouf, table)

	cerr := ouf.Close()
	if err == nil {
		err = cerr
	}
	return
}
