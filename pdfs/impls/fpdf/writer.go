// Package fpdf implements pdfs.Writer on top of github.com/go-pdf/fpdf
// using the standard core fonts.
package fpdf

import (
	"bytes"
	"fmt"
	"io"
	"time"

	lowimpl "github.com/go-pdf/fpdf"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"

	"github.com/zeptools/medoc/pdfs"
	"github.com/zeptools/medoc/rw"
)

// fallbackDate keeps output reproducible when a record carries no issue date
var fallbackDate = time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)

// Writer is single-use: the document is finalized by the first
// WriteTo, WriteToFile or ProduceBytes call.
type Writer struct {
	paper    pdfs.PaperSize
	internal *lowimpl.Fpdf
	enc      *encoding.Encoder

	font      pdfs.Font
	text      pdfs.Color
	draw      pdfs.Color
	fill      pdfs.Color
	lineWidth float64
	dirty     uint8 // state not yet pushed to internal
}

const (
	dirtyFont uint8 = 1 << iota
	dirtyText
	dirtyDraw
	dirtyFill
	dirtyLineWidth
	dirtyAll = dirtyFont | dirtyText | dirtyDraw | dirtyFill | dirtyLineWidth
)

var _ pdfs.Writer = (*Writer)(nil)

func NewWriter(paper pdfs.PaperSize, meta pdfs.Meta) *Writer {
	internal := newInternal(paper)
	internal.SetCompression(true)
	internal.SetCatalogSort(true)
	date := meta.Date
	if date.IsZero() {
		date = fallbackDate
	}
	internal.SetCreationDate(date)
	internal.SetModificationDate(date)
	internal.SetTitle(meta.Title, true)
	internal.SetSubject(meta.Subject, true)
	internal.SetAuthor(meta.Author, true)
	internal.SetCreator(meta.Creator, true)
	if meta.Keywords != "" {
		internal.SetKeywords(meta.Keywords, true)
	}
	return &Writer{
		paper:    paper,
		internal: internal,
		enc:      newEncoder(),
		dirty:    dirtyAll,
	}
}

func newInternal(paper pdfs.PaperSize) *lowimpl.Fpdf {
	internal := lowimpl.NewCustom(&lowimpl.InitType{
		OrientationStr: paper.Orientation(),
		UnitStr:        "pt",
		Size:           lowimpl.SizeType{Wd: paper.Width, Ht: paper.Height},
	})
	internal.SetMargins(0, 0, 0)
	internal.SetAutoPageBreak(false, 0)
	return internal
}

// core fonts carry cp1252 width tables; runes outside it become '?'
func newEncoder() *encoding.Encoder {
	return encoding.ReplaceUnsupported(charmap.Windows1252.NewEncoder())
}

func encode(enc *encoding.Encoder, s string) string {
	out, err := enc.String(s)
	if err != nil {
		return s
	}
	return out
}

func (w *Writer) PaperSize() pdfs.PaperSize {
	return w.paper
}

func (w *Writer) Orientation() string {
	return w.paper.Orientation()
}

func (w *Writer) AddBlankPage() {
	w.internal.AddPage()
	// fpdf re-emits font and colors on a new page, line width is reset
	w.dirty = dirtyAll
}

func (w *Writer) PageCount() int {
	return w.internal.PageCount()
}

func (w *Writer) SetFont(font pdfs.Font) {
	if w.dirty&dirtyFont == 0 && font == w.font {
		return
	}
	w.font = font
	w.internal.SetFont(font.Family, string(font.Style), font.Size)
	w.dirty &^= dirtyFont
}

func (w *Writer) SetTextColor(c pdfs.Color) {
	if w.dirty&dirtyText == 0 && c == w.text {
		return
	}
	w.text = c
	w.internal.SetTextColor(int(c.R), int(c.G), int(c.B))
	w.dirty &^= dirtyText
}

func (w *Writer) SetDrawColor(c pdfs.Color) {
	if w.dirty&dirtyDraw == 0 && c == w.draw {
		return
	}
	w.draw = c
	w.internal.SetDrawColor(int(c.R), int(c.G), int(c.B))
	w.dirty &^= dirtyDraw
}

func (w *Writer) SetFillColor(c pdfs.Color) {
	if w.dirty&dirtyFill == 0 && c == w.fill {
		return
	}
	w.fill = c
	w.internal.SetFillColor(int(c.R), int(c.G), int(c.B))
	w.dirty &^= dirtyFill
}

func (w *Writer) SetLineWidth(width float64) {
	if w.dirty&dirtyLineWidth == 0 && width == w.lineWidth {
		return
	}
	w.lineWidth = width
	w.internal.SetLineWidth(width)
	w.dirty &^= dirtyLineWidth
}

func (w *Writer) Text(x float64, y float64, text string) {
	w.internal.Text(x, y, encode(w.enc, text))
}

func (w *Writer) Line(x1, y1, x2, y2 float64) {
	w.internal.Line(x1, y1, x2, y2)
}

func (w *Writer) Rect(x, y, width, height float64, paint pdfs.Paint) {
	w.internal.Rect(x, y, width, height, string(paint))
}

func (w *Writer) Circle(x, y, r float64, paint pdfs.Paint) {
	w.internal.Circle(x, y, r, string(paint))
}

func (w *Writer) Err() error {
	if w.internal.Err() {
		return fmt.Errorf("fpdf: %w", w.internal.Error())
	}
	return nil
}

// WriteTo implements io.WriterTo
func (w *Writer) WriteTo(dst io.Writer) (int64, error) {
	return rw.Count(dst, w.internal.Output)
}

func (w *Writer) WriteToFile(filepath string) error {
	return w.internal.OutputFileAndClose(filepath)
}

func (w *Writer) ProduceBytes() ([]byte, error) {
	var buf bytes.Buffer
	if _, err := w.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
