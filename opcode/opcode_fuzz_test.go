package opcode

import (
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func FuzzScan(f *testing.F) {
	f.Add("PUSH1 = 96 (0x60)")
	f.Add("STOP = 0")
	f.Add("ADD=1(0x01) MUL = 2 (0x02)")
	f.Add("push1 = 96 (0x60)\nSTOP = 0 (0x00)")
	f.Add("= 0 (0x00)")
	f.Add("X = 00000000000000000000000000000000001 (0x01)")
	f.Add("")

	f.Fuzz(func(t *testing.T, text string) {
		assert := assert.New(t)

		entries := slices.Collect(Scan(text))

		for _, entry := range entries {
			assert.NotEmpty(entry.Name)
			assert.Regexp(`^[0-9]+$`, entry.Dec)
			assert.Regexp(`^0x[0-9A-Fa-f]+$`, entry.Hex)
			assert.Equal(strings.ToUpper(entry.Name), entry.Ident())
		}

		// Scanning is deterministic.
		again := slices.Collect(Scan(text))
		assert.Equal(entries, again)
	})
}
