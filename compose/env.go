package compose

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/zeptools/medoc/pdfs"
	"github.com/zeptools/medoc/textlayout"
)

// Placeholder is printed for any textual field that is absent
const Placeholder = "No especificado"

type Style struct {
	Body     pdfs.Font
	Label    pdfs.Font
	Small    pdfs.Font
	Heading  pdfs.Font // banner titles
	Title    pdfs.Font // document title
	Masthead pdfs.Font // establishment name

	Primary pdfs.Color
	Muted   pdfs.Color
	Shade   pdfs.Color
	Alert   pdfs.Color

	Leading      float64 // line height as a multiple of font size
	BannerHeight float64
	RowHeight    float64
	LabelWidth   float64
	Gap          float64
	SealRadius   float64
}

func DefaultStyle() Style {
	body := pdfs.Font{Family: pdfs.Helvetica, Style: pdfs.Regular, Size: 10}
	return Style{
		Body:     body,
		Label:    body.WithStyle(pdfs.Bold).WithSize(9),
		Small:    body.WithSize(8),
		Heading:  body.WithStyle(pdfs.Bold),
		Title:    body.WithStyle(pdfs.Bold).WithSize(16),
		Masthead: body.WithStyle(pdfs.Bold).WithSize(15),

		Primary: pdfs.Color{R: 31, G: 78, B: 121},
		Muted:   pdfs.Gray,
		Shade:   pdfs.Color{R: 232, G: 238, B: 244},
		Alert:   pdfs.Color{R: 192, G: 0, B: 0},

		Leading:      1.4,
		BannerHeight: 18,
		RowHeight:    16,
		LabelWidth:   150,
		Gap:          10,
		SealRadius:   42,
	}
}

// Env is what every renderer reads besides the canvas.
// One Env serves one layout pass.
type Env struct {
	Metrics textlayout.Metrics
	Style   Style
	upper   cases.Caser
}

func NewEnv(m textlayout.Metrics, s Style) *Env {
	return &Env{Metrics: m, Style: s, upper: cases.Upper(language.Spanish)}
}

func (e *Env) width(text string, font pdfs.Font) float64 {
	return e.Metrics.StringWidth(text, font)
}

func (e *Env) leading(font pdfs.Font) float64 {
	return font.Size * e.Style.Leading
}

func (e *Env) wrap(text string, maxWidth float64, font pdfs.Font) []string {
	return textlayout.Wrap(text, maxWidth, font, e.Metrics)
}

func (e *Env) toUpper(s string) string {
	return e.upper.String(s)
}
