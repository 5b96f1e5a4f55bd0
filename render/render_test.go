package render

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"opgen/opcode"
)

func TestRenderZig(t *testing.T) {
	assert := assert.New(t)

	table := opcode.Table{
		{Name: "STOP", Dec: "0", Hex: "0x00"},
		{Name: "ADD", Dec: "1", Hex: "0x01"},
	}

	var b strings.Builder
	err := FormatZig.Render(&b, table)
	assert.NoError(err)

	expected := strings.Join([]string{
		"pub const Op = struct {",
		"    pub const STOP: u8 = 0x00;",
		"    pub const ADD: u8 = 0x01;",
		"};",
	}, "\n")

	assert.Equal(expected, b.String())
}

func TestRenderZigEmpty(t *testing.T) {
	assert := assert.New(t)

	var b strings.Builder
	err := FormatZig.Render(&b, opcode.Table{})
	assert.NoError(err)

	assert.Equal("pub const Op = struct {\n\n};", b.String())
}

func TestRenderZigFold(t *testing.T) {
	assert := assert.New(t)

	// Names fold to uppercase; hex literals are verbatim as captured.
	table := opcode.Table{
		{Name: "push1", Dec: "96", Hex: "0x60"},
		{Name: "sar", Dec: "12", Hex: "0x0C"},
	}

	var b strings.Builder
	err := FormatZig.Render(&b, table)
	assert.NoError(err)

	assert.Contains(b.String(), "    pub const PUSH1: u8 = 0x60;")
	assert.Contains(b.String(), "    pub const SAR: u8 = 0x0C;")
}

func TestRenderZigDuplicates(t *testing.T) {
	assert := assert.New(t)

	// Colliding names are emitted twice; downstream compilers reject them,
	// not this tool.
	table := opcode.Table{
		{Name: "ADD", Dec: "1", Hex: "0x01"},
		{Name: "ADD", Dec: "1", Hex: "0x01"},
	}

	var b strings.Builder
	err := FormatZig.Render(&b, table)
	assert.NoError(err)

	assert.Equal(2, strings.Count(b.String(), "pub const ADD: u8 = 0x01;"))
}

func TestRenderGo(t *testing.T) {
	assert := assert.New(t)

	table := opcode.Table{
		{Name: "ADD", Dec: "1", Hex: "0x01"},
		{Name: "MUL", Dec: "2", Hex: "0x02"},
	}

	var b strings.Builder
	err := FormatGo.Render(&b, table)
	assert.NoError(err)

	expected := strings.Join([]string{
		"// Code generated by opgen. DO NOT EDIT.",
		"",
		"package op",
		"",
		"const (",
		"\tADD uint8 = 0x01",
		"\tMUL uint8 = 0x02",
		")",
		"",
	}, "\n")

	assert.Equal(expected, b.String())
}

func TestRenderGoAligned(t *testing.T) {
	assert := assert.New(t)

	table := opcode.Table{
		{Name: "STOP", Dec: "0", Hex: "0x00"},
		{Name: "add", Dec: "1", Hex: "0x01"},
	}

	var b strings.Builder
	err := FormatGo.Render(&b, table)
	assert.NoError(err)

	assert.Regexp(`STOP\s+uint8 = 0x00`, b.String())
	assert.Regexp(`ADD\s+uint8 = 0x01`, b.String())
}

func TestRenderGoUnformattable(t *testing.T) {
	assert := assert.New(t)

	// A name no Go compiler accepts still lands in the output, unformatted.
	table := opcode.Table{
		{Name: "2BAD", Dec: "255", Hex: "0xff"},
	}

	var b strings.Builder
	err := FormatGo.Render(&b, table)
	assert.NoError(err)

	assert.Contains(b.String(), "\t2BAD uint8 = 0xff\n")
}

func TestRenderJSON(t *testing.T) {
	assert := assert.New(t)

	table := opcode.Table{
		{Name: "STOP", Dec: "0", Hex: "0x00"},
		{Name: "add", Dec: "1", Hex: "0x01"},
	}

	var b strings.Builder
	err := FormatJSON.Render(&b, table)
	assert.NoError(err)

	expected := strings.Join([]string{
		"[",
		"    {",
		`        "name": "STOP",`,
		`        "hex": "0x00"`,
		"    },",
		"    {",
		`        "name": "ADD",`,
		`        "hex": "0x01"`,
		"    }",
		"]",
		"",
	}, "\n")

	assert.Equal(expected, b.String())
}

func TestRenderJSONEmpty(t *testing.T) {
	assert := assert.New(t)

	var b strings.Builder
	err := FormatJSON.Render(&b, opcode.Table{})
	assert.NoError(err)

	assert.Equal("[]\n", b.String())
}

func TestParseFormat(t *testing.T) {
	testcases := []struct {
		name     string
		expected Format
	}{
		{"zig", FormatZig},
		{"go", FormatGo},
		{"json", FormatJSON},
	}

	for _, tc := range testcases {
		assert := assert.New(t)

		format, err := ParseFormat(tc.name)
		assert.NoError(err)
		assert.Equal(tc.expected, format)
		assert.Equal(tc.name, format.String())
	}
}

func TestParseFormatUnknown(t *testing.T) {
	assert := assert.New(t)

	_, err := ParseFormat("rust")
	assert.ErrorIs(err, ErrFormatInvalid("rust"))
}

func TestFile(t *testing.T) {
	assert := assert.New(t)

	table := opcode.Table{
		{Name: "STOP", Dec: "0", Hex: "0x00"},
	}

	path := filepath.Join(t.TempDir(), "op.zig")

	err := FormatZig.File(path, table)
	assert.NoError(err)

	text, err := os.ReadFile(path)
	assert.NoError(err)
	assert.Equal("pub const Op = struct {\n    pub const STOP: u8 = 0x00;\n};", string(text))
}

func TestFileOverwrite(t *testing.T) {
	assert := assert.New(t)

	path := filepath.Join(t.TempDir(), "op.zig")

	// Prior content longer than the artifact is fully replaced.
	err := os.WriteFile(path, []byte(strings.Repeat("x", 4096)), 0o644)
	assert.NoError(err)

	err = FormatZig.File(path, opcode.Table{{Name: "ADD", Dec: "1", Hex: "0x01"}})
	assert.NoError(err)

	first, err := os.ReadFile(path)
	assert.NoError(err)
	assert.Equal("pub const Op = struct {\n    pub const ADD: u8 = 0x01;\n};", string(first))

	// A second run is byte-identical.
	err = FormatZig.File(path, opcode.Table{{Name: "ADD", Dec: "1", Hex: "0x01"}})
	assert.NoError(err)

	again, err := os.ReadFile(path)
	assert.NoError(err)
	assert.Equal(first, again)
}

func TestFileNoDir(t *testing.T) {
	assert := assert.New(t)

	path := filepath.Join(t.TempDir(), "missing", "op.zig")

	err := FormatZig.File(path, opcode.Table{})
	assert.Error(err)

	var ew *ErrFileWrite
	if assert.ErrorAs(err, &ew) {
		assert.Equal(path, ew.Path)
	}

	_, serr := os.Stat(path)
	assert.True(os.IsNotExist(serr))
}
