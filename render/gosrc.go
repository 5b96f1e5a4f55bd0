package render

import (
	"fmt"
	"go/format"
	"io"
	"strings"

	"opgen/opcode"
)

// renderGo emits the table as a generated Go source file, one uint8
// constant per entry.
func renderGo(w io.Writer, table opcode.Table) (err error) {
	var b strings.Builder

	b.WriteString("// Code generated by opgen. DO NOT EDIT.\n\n")
	b.WriteString("package op\n\n")
	b.WriteString("const (\n")
	for _, entry := range table {
		fmt.Fprintf(&b, "\t%v uint8 = %v\n", entry.Ident(), entry.Hex)
	}
	b.WriteString(")\n")

	src := []byte(b.String())
	formatted, _err := format.Source(src)
	if _err != nil {
		// Emit the unformatted source when gofmt rejects it, so the
		// offending declaration is visible in the output.
		formatted = src
	}

	_, err = w.Write(formatted)
	return
}
