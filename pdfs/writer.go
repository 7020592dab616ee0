package pdfs

import (
	"io"
	"time"
)

// Writer — minimal, stream-style, append-only PDF writer. No page navigation
type Writer interface {
	PaperSize() PaperSize
	Orientation() string

	AddBlankPage()
	PageCount() int

	SetFont(font Font)
	SetTextColor(c Color)
	SetDrawColor(c Color)
	SetFillColor(c Color)
	SetLineWidth(width float64)

	Text(x float64, y float64, text string)
	Line(x1, y1, x2, y2 float64)
	Rect(x, y, w, h float64, paint Paint)
	Circle(x, y, r float64, paint Paint)

	WriteTo(w io.Writer) (int64, error)
	WriteToFile(filepath string) error
	ProduceBytes() ([]byte, error)
	Err() error
}

// Meta is the document information dictionary.
// Date is stamped as both creation and modification date so the output
// depends only on the input record.
type Meta struct {
	Title    string
	Subject  string
	Author   string
	Creator  string
	Keywords string
	Date     time.Time
}
