package render

import (
	"fmt"
	"io"
	"strings"

	"opgen/opcode"
)

const (
	zigHeader = "pub const Op = struct {"
	zigFooter = "};"
)

// renderZig emits the table as a Zig struct of u8 constants, one
// declaration per entry. The hex literal is emitted verbatim as captured.
func renderZig(w io.Writer, table opcode.Table) (err error) {
	lines := make([]string, 0, len(table))
	for _, entry := range table {
		lines = append(lines, fmt.Sprintf("    pub const %v: u8 = %v;", entry.Ident(), entry.Hex))
	}

	_, err = io.WriteString(w, zigHeader+"\n"+strings.Join(lines, "\n")+"\n"+zigFooter)
	return
}
