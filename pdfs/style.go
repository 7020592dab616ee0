package pdfs

// Core font families every PDF viewer provides without embedding
const (
	Helvetica = "Helvetica"
	Times     = "Times"
	Courier   = "Courier"
)

type FontStyle string

const (
	Regular    FontStyle = ""
	Bold       FontStyle = "B"
	Italic     FontStyle = "I"
	BoldItalic FontStyle = "BI"
)

type Font struct {
	Family string
	Style  FontStyle
	Size   float64 // in `pt`
}

func (f Font) WithSize(size float64) Font {
	f.Size = size
	return f
}

func (f Font) WithStyle(style FontStyle) Font {
	f.Style = style
	return f
}

type Color struct {
	R, G, B uint8
}

var (
	Black = Color{0, 0, 0}
	White = Color{255, 255, 255}
	Gray  = Color{110, 110, 110}
)

// Paint selects how a closed shape is painted
type Paint string

const (
	Stroke     Paint = "D"
	Fill       Paint = "F"
	FillStroke Paint = "FD"
)
