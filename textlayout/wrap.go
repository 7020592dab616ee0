// Package textlayout breaks text into lines that fit a given width.
package textlayout

import (
	"strings"
	"unicode/utf8"

	"github.com/zeptools/medoc/pdfs"
)

// Metrics measures rendered text width in pt
type Metrics interface {
	StringWidth(text string, font pdfs.Font) float64
}

// MonoMetrics gives every rune the same advance: Advance * font size.
// Useful for previews and layout tests.
type MonoMetrics struct {
	Advance float64
}

func (m MonoMetrics) StringWidth(text string, font pdfs.Font) float64 {
	return float64(utf8.RuneCountInString(text)) * m.Advance * font.Size
}

// Wrap breaks text greedily at whitespace so that each line fits maxWidth.
// Runs of whitespace collapse to one space. A newline forces a break.
// A word wider than maxWidth is kept whole on a line of its own.
// Blank text gives no lines.
func Wrap(text string, maxWidth float64, font pdfs.Font, m Metrics) []string {
	var lines []string
	for paragraph := range strings.SplitSeq(text, "\n") {
		words := strings.Fields(paragraph)
		if len(words) == 0 {
			continue
		}
		lines = appendWrapped(lines, words, maxWidth, font, m)
	}
	return lines
}

func appendWrapped(lines []string, words []string, maxWidth float64, font pdfs.Font, m Metrics) []string {
	space := m.StringWidth(" ", font)
	line := words[0]
	width := m.StringWidth(line, font)
	for _, w := range words[1:] {
		ww := m.StringWidth(w, font)
		if width+space+ww <= maxWidth {
			line += " " + w
			width += space + ww
			continue
		}
		lines = append(lines, line)
		line, width = w, ww
	}
	return append(lines, line)
}

// LineCount is len(Wrap(...))
func LineCount(text string, maxWidth float64, font pdfs.Font, m Metrics) int {
	return len(Wrap(text, maxWidth, font, m))
}

// BlockHeight is the vertical extent of n lines at the given leading
func BlockHeight(n int, leading float64) float64 {
	if n <= 0 {
		return 0
	}
	return float64(n) * leading
}
