package compose

import (
	"github.com/zeptools/medoc/canvas"
	"github.com/zeptools/medoc/pdfs"
)

type Row struct {
	Label string
	Value string
}

// TableSection draws label/value rows with a shaded label column.
// Rows have constant height; a long value continues on extra rows.
type TableSection struct {
	Label string
	Title string
	Rows  []Row
}

func (s TableSection) Name() string { return s.Label }

func (s TableSection) Render(c canvas.Canvas, env *Env) (canvas.Canvas, []pdfs.Command) {
	st := env.Style
	p := newPen(s.Name(), c, env)
	if s.Title != "" {
		p.banner(s.Title)
	}
	const pad = 5
	valueX := p.c.Left() + st.LabelWidth
	valueW := p.c.ContentWidth() - st.LabelWidth
	for _, row := range s.Rows {
		lines := env.wrap(row.Value, valueW-2*pad, st.Body)
		if len(lines) == 0 {
			lines = []string{Placeholder}
		}
		for i, l := range lines {
			p.ensure(st.RowHeight)
			p.rec.Rect(p.c.Left(), p.c.Y, st.LabelWidth, st.RowHeight, pdfs.FillStroke, st.Muted, st.Shade)
			p.rec.Rect(valueX, p.c.Y, valueW, st.RowHeight, pdfs.Stroke, st.Muted, pdfs.White)
			if i == 0 {
				p.rec.Text(p.c.Left()+pad, baseline(p.c.Y, st.RowHeight, st.Label), row.Label, st.Label, pdfs.Black)
			}
			p.rec.Text(valueX+pad, baseline(p.c.Y, st.RowHeight, st.Body), l, st.Body, pdfs.Black)
			p.advance(st.RowHeight)
		}
	}
	p.gap(st.Gap)
	return p.done()
}
