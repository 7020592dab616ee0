package pdfs

type Op uint8

const (
	OpNewPage Op = iota + 1
	OpText
	OpLine
	OpRect
	OpCircle
)

func (o Op) String() string {
	switch o {
	case OpNewPage:
		return "newpage"
	case OpText:
		return "text"
	case OpLine:
		return "line"
	case OpRect:
		return "rect"
	case OpCircle:
		return "circle"
	}
	return "unknown"
}

// Command is one recorded drawing instruction in absolute page coordinates
// (pt, origin top-left). Page is 1-based.
type Command struct {
	Op      Op
	Page    int
	Section string

	X, Y   float64
	X2, Y2 float64 // line end
	W, H   float64 // rect size
	R      float64 // circle radius

	Text string
	Font Font

	Color     Color // text or stroke color
	FillColor Color
	Paint     Paint
	LineWidth float64
}

// Recorder collects commands for one section on the current page.
// Nothing is drawn until the commands are replayed onto a Writer.
type Recorder struct {
	Page    int
	Section string
	cmds    []Command
}

func NewRecorder(section string, page int) *Recorder {
	return &Recorder{Page: page, Section: section}
}

func (r *Recorder) add(c Command) {
	c.Page = r.Page
	c.Section = r.Section
	r.cmds = append(r.cmds, c)
}

// NewPage marks the start of page r.Page+1 and continues recording there
func (r *Recorder) NewPage() {
	r.Page++
	r.add(Command{Op: OpNewPage})
}

// Text records text with its baseline at y
func (r *Recorder) Text(x, y float64, text string, font Font, color Color) {
	if text == "" {
		return
	}
	r.add(Command{Op: OpText, X: x, Y: y, Text: text, Font: font, Color: color})
}

func (r *Recorder) Line(x1, y1, x2, y2, width float64, color Color) {
	r.add(Command{Op: OpLine, X: x1, Y: y1, X2: x2, Y2: y2, LineWidth: width, Color: color})
}

func (r *Recorder) Rect(x, y, w, h float64, paint Paint, stroke, fill Color) {
	r.add(Command{Op: OpRect, X: x, Y: y, W: w, H: h, Paint: paint, Color: stroke, FillColor: fill, LineWidth: 0.5})
}

func (r *Recorder) Circle(x, y, radius, width float64, paint Paint, stroke, fill Color) {
	r.add(Command{Op: OpCircle, X: x, Y: y, R: radius, Paint: paint, Color: stroke, FillColor: fill, LineWidth: width})
}

func (r *Recorder) Commands() []Command {
	return r.cmds
}
