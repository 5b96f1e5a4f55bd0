package opcode

import (
	"iter"
	"regexp"
	"strconv"
	"strings"

	"opgen/internal"
)

// Entry is a single opcode definition: the identifier as captured, and its
// decimal and hexadecimal value literals. The hexadecimal literal is kept
// verbatim, prefix and digit casing included; the decimal literal is unused
// by renderers.
type Entry struct {
	Name string
	Dec  string
	Hex  string
}

// Ident returns the constant identifier the entry generates: the captured
// name folded to uppercase.
func (entry Entry) Ident() string {
	return strings.ToUpper(entry.Name)
}

// Mismatched reports whether the entry's decimal and hexadecimal literals
// disagree. A mismatch usually means a typo in the reference document; the
// hexadecimal literal is authoritative either way.
func (entry Entry) Mismatched() (mismatch bool) {
	dec, err := strconv.ParseUint(entry.Dec, 10, 64)
	if err != nil {
		return
	}
	hex, err := strconv.ParseUint(entry.Hex, 0, 64)
	if err != nil {
		return
	}

	return dec != hex
}

// Table is an ordered opcode table, insertion order = extraction order.
type Table []Entry

// One opcode definition in reference document text: NAME = DECIMAL (0xHEX).
var defRe = regexp.MustCompile(`(?P<Op>\w+)\s*=\s*(?P<Dec>[0-9]+)\s*\((?P<Hex>0x[0-9A-Fa-f]+)\)`)

var (
	defOp  = defRe.SubexpIndex("Op")
	defDec = defRe.SubexpIndex("Dec")
	defHex = defRe.SubexpIndex("Hex")
)

// Scan yields each opcode definition in text, in order of appearance. Text
// without definitions yields nothing.
func Scan(text string) iter.Seq[Entry] {
	return func(yield func(Entry) bool) {
		for _, match := range defRe.FindAllStringSubmatch(text, -1) {
			entry := Entry{
				Name: match[defOp],
				Dec:  match[defDec],
				Hex:  match[defHex],
			}
			if !yield(entry) {
				return
			}
		}
	}
}

// ScanPages yields every opcode definition across pages in document order,
// paired with the page number it was found on.
func ScanPages(pages iter.Seq2[int, string]) iter.Seq2[int, Entry] {
	return internal.IterSeq2Flatten(func(yield func(iter.Seq2[int, Entry]) bool) {
		for pageno, text := range pages {
			if !yield(entriesOn(pageno, Scan(text))) {
				return
			}
		}
	})
}

// entriesOn pairs every entry of a page scan with its page number.
func entriesOn(pageno int, entries iter.Seq[Entry]) iter.Seq2[int, Entry] {
	return func(yield func(int, Entry) bool) {
		for entry := range entries {
			if !yield(pageno, entry) {
				return
			}
		}
	}
}
