package fpdf

import (
	lowimpl "github.com/go-pdf/fpdf"
	"golang.org/x/text/encoding"

	"github.com/zeptools/medoc/pdfs"
)

// Metrics measures text with the core-font width tables.
// Not safe for concurrent use; create one per layout pass.
type Metrics struct {
	internal *lowimpl.Fpdf
	enc      *encoding.Encoder
	font     pdfs.Font
}

func NewMetrics() *Metrics {
	return &Metrics{
		internal: newInternal(pdfs.A4Size),
		enc:      newEncoder(),
	}
}

func (m *Metrics) StringWidth(text string, font pdfs.Font) float64 {
	if font != m.font {
		m.internal.SetFont(font.Family, string(font.Style), font.Size)
		m.font = font
	}
	return m.internal.GetStringWidth(encode(m.enc, text))
}
