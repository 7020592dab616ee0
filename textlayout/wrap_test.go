package textlayout

import (
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zeptools/medoc/pdfs"
)

var (
	font10 = pdfs.Font{Family: pdfs.Helvetica, Size: 10}
	mono   = MonoMetrics{Advance: 0.5} // 5pt per rune at 10pt
)

func TestWrapEmpty(t *testing.T) {
	assert.Empty(t, Wrap("", 100, font10, mono))
	assert.Empty(t, Wrap("   \n\t ", 100, font10, mono))
	assert.Equal(t, 0, LineCount("", 100, font10, mono))
}

func TestWrapGreedy(t *testing.T) {
	// 20 runes per line
	lines := Wrap("uno dos tres cuatro cinco seis siete ocho", 100, font10, mono)
	assert.Equal(t, []string{"uno dos tres cuatro", "cinco seis siete", "ocho"}, lines)
}

func TestWrapOversizedWordStandsAlone(t *testing.T) {
	long := strings.Repeat("x", 30)
	lines := Wrap("a "+long+" b", 100, font10, mono)
	assert.Equal(t, []string{"a", long, "b"}, lines)
}

func TestWrapHardBreaks(t *testing.T) {
	lines := Wrap("Reposo absoluto.\n\nDieta blanda.", 500, font10, mono)
	assert.Equal(t, []string{"Reposo absoluto.", "Dieta blanda."}, lines)
}

func TestBlockHeight(t *testing.T) {
	assert.Equal(t, 0.0, BlockHeight(0, 14))
	assert.Equal(t, 42.0, BlockHeight(3, 14))
}

// randomText builds text of words no longer than maxRunes
func randomText(r *rand.Rand, words, maxRunes int) string {
	const letters = "abcdefghijklmnñopqrstuvwxyzáéíóú"
	runes := []rune(letters)
	var sb strings.Builder
	for i := range words {
		if i > 0 {
			sb.WriteString([]string{" ", "  ", "\t"}[r.IntN(3)])
		}
		n := 1 + r.IntN(maxRunes)
		for range n {
			sb.WriteRune(runes[r.IntN(len(runes))])
		}
	}
	return sb.String()
}

func TestWrapProperties(t *testing.T) {
	r := rand.New(rand.NewPCG(7, 11))
	const width = 120.0 // 24 runes
	for range 200 {
		text := randomText(r, 1+r.IntN(60), 20)
		lines := Wrap(text, width, font10, mono)
		require.NotEmpty(t, lines)

		// every line fits since no word exceeds the width
		for _, l := range lines {
			assert.LessOrEqual(t, mono.StringWidth(l, font10), width, l)
		}
		// collapsed concatenation reconstructs the input
		assert.Equal(t, strings.Join(strings.Fields(text), " "), strings.Join(lines, " "))
		// deterministic
		assert.Equal(t, lines, Wrap(text, width, font10, mono))
	}
}
