package opcode

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

type amendKind int

const (
	amendAdd    = amendKind(0)
	amendDrop   = amendKind(1)
	amendRename = amendKind(2)
)

// amendment is one table correction: add an entry, drop entries by name, or
// rename entries. For amendAdd, to holds the hex literal; for amendRename,
// the new name.
type amendment struct {
	kind amendKind
	name string
	to   string
}

// Amendments is an ordered set of corrections applied to a scanned Table
// before rendering, read from a fix file. Names are matched case folded,
// since generated identifiers are uppercase.
type Amendments struct {
	Equate map[string]string

	amends []amendment
}

// valueOf returns the opcode value of a simple word.
func (amd *Amendments) valueOf(word string) (value uint64, err error) {
	value, err = strconv.ParseUint(word, 0, 64)
	if err != nil {
		err = ErrParseNumber(word)
		return
	}

	if value > 0xff {
		err = ErrValueRange(word)
		return
	}

	return
}

// parenEval does parse-time $(...) evaluations.
func (amd *Amendments) parenEval(expr string) (value uint64, err error) {
	thread := starlark.Thread{}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for key, str := range amd.Equate {
		value64, _err := strconv.ParseUint(str, 0, 64)
		if _err != nil {
			// Ignore non-integer equates.
			continue
		}
		pred[key] = starlark.MakeUint64(value64)
	}
	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		return
	}
	st_rc, ok := dict["rc"]
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int, ok := st_rc.(starlark.Int)
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_uint64, ok := st_int.Uint64()
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	value = st_uint64
	return
}

var parenRe = regexp.MustCompile(`\$\([^\$]*\)`)

// parseLine parses a single amendment directive, already stripped of
// comments and surrounding whitespace.
func (amd *Amendments) parseLine(line string) (err error) {
	// Do $() evaluations
	line = parenRe.ReplaceAllStringFunc(line, func(str string) string {
		value, _err := amd.parenEval(str[2 : len(str)-1])
		if _err != nil {
			err = _err
		}
		return fmt.Sprintf("%#v", value)
	})
	if err != nil {
		return
	}

	words := strings.Fields(line)
	if len(words) == 0 {
		return
	}

	switch words[0] {
	case ".equ":
		if len(words) != 3 {
			err = ErrEquateSyntax
			return
		}
		_, ok := amd.Equate[words[1]]
		if ok {
			err = ErrEquateDuplicate
			return
		}
		amd.Equate[words[1]] = words[2]
	case "add":
		if len(words) != 3 {
			err = ErrAmendSyntax
			return
		}
		var value uint64
		value, err = amd.valueOf(words[2])
		if err != nil {
			return
		}
		amd.amends = append(amd.amends, amendment{
			kind: amendAdd,
			name: words[1],
			to:   fmt.Sprintf("0x%02x", value),
		})
	case "drop":
		if len(words) != 2 {
			err = ErrAmendSyntax
			return
		}
		amd.amends = append(amd.amends, amendment{kind: amendDrop, name: words[1]})
	case "rename":
		if len(words) != 3 {
			err = ErrAmendSyntax
			return
		}
		amd.amends = append(amd.amends, amendment{kind: amendRename, name: words[1], to: words[2]})
	default:
		err = ErrDirectiveInvalid(words[0])
	}

	return
}

// Parse reads an amendments stream, one directive per line. ';' starts a
// comment.
func (amd *Amendments) Parse(input io.Reader) (err error) {
	scanner := bufio.NewScanner(input)

	var line string
	var lineno int

	defer func() {
		if err != nil {
			err = ErrSyntax{LineNo: lineno, Line: line, Err: err}
		}
	}()

	if amd.Equate == nil {
		amd.Equate = make(map[string]string, 8)
	}
	clear(amd.Equate)
	amd.amends = amd.amends[:0]

	for scanner.Scan() {
		text := scanner.Text()
		lineno += 1

		text_comment := strings.Split(text, ";")
		line = strings.TrimSpace(text_comment[0])
		if len(line) == 0 {
			continue
		}

		err = amd.parseLine(line)
		if err != nil {
			return
		}
	}

	return scanner.Err()
}

// Apply rewrites table according to the amendments, in file order. The
// input slice is modified in place where possible.
func (amd *Amendments) Apply(table Table) Table {
	for _, am := range amd.amends {
		switch am.kind {
		case amendAdd:
			table = append(table, Entry{Name: am.name, Hex: am.to})
		case amendDrop:
			table = slices.DeleteFunc(table, func(entry Entry) bool {
				return strings.EqualFold(entry.Name, am.name)
			})
		case amendRename:
			for n := range table {
				if strings.EqualFold(table[n].Name, am.name) {
					table[n].Name = am.to
				}
			}
		}
	}

	return table
}
