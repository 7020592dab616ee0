package pdfs

type PaperSize struct {
	Name   string
	Width  float64 // in `pt` (1" = 72pts)
	Height float64 // in `pt`
}

var (
	LetterSize = PaperSize{Name: "Letter", Width: 612, Height: 792}         // 8.5" x 11"
	A4Size     = PaperSize{Name: "A4", Width: 595.27559, Height: 841.88976} // 210mm x 297mm
	A5Size     = PaperSize{Name: "A5", Width: 419.52756, Height: 595.27559} // 148mm x 210mm
)

// PaperSizeByName resolves config values such as "A4" or "letter"
func PaperSizeByName(name string) (PaperSize, bool) {
	switch name {
	case "A4", "a4", "":
		return A4Size, true
	case "A5", "a5":
		return A5Size, true
	case "Letter", "letter", "LETTER":
		return LetterSize, true
	}
	return PaperSize{}, false
}

func (p PaperSize) Orientation() string {
	if p.Width > p.Height {
		return "L"
	}
	return "P"
}
