package compose

import (
	"github.com/zeptools/medoc/canvas"
	"github.com/zeptools/medoc/pdfs"
)

// HeaderSection is the masthead: establishment banner, place and date,
// document title.
type HeaderSection struct {
	Establishment string
	Services      string // optional line under the banner
	Location      string // "Quito, 5 de marzo del 2024"
	Title         string
	Voided        bool
}

func (s HeaderSection) Name() string { return "Header" }

func (s HeaderSection) Render(c canvas.Canvas, env *Env) (canvas.Canvas, []pdfs.Command) {
	st := env.Style
	p := newPen(s.Name(), c, env)

	name := env.toUpper(s.Establishment)
	lines := env.wrap(name, p.c.ContentWidth()-20, st.Masthead)
	lead := env.leading(st.Masthead)
	// the banner is never split, so it is cut to what an empty page holds
	if most := max(1, int((p.c.ContentHeight()-12)/lead)); len(lines) > most {
		lines = lines[:most]
	}
	h := float64(len(lines))*lead + 12
	p.ensure(h)
	p.rec.Rect(p.c.Left(), p.c.Y, p.c.ContentWidth(), h, pdfs.Fill, st.Primary, st.Primary)
	y := p.c.Y + 6
	for _, l := range lines {
		p.rec.Text(p.xFor(l, st.Masthead, alignCenter, 0), baseline(y, lead, st.Masthead), l, st.Masthead, pdfs.White)
		y += lead
	}
	p.advance(h + 4)

	if s.Services != "" {
		p.wrapped(s.Services, st.Small.WithStyle(pdfs.Italic), st.Muted, alignCenter, 0)
	}
	p.gap(st.Gap / 2)
	p.textLine(s.Location, st.Body, pdfs.Black, alignRight, 0)
	p.gap(st.Gap)
	p.wrapped(s.Title, st.Title, st.Primary, alignCenter, 0)
	if s.Voided {
		p.textLine("DOCUMENTO ANULADO", st.Title.WithSize(13), st.Alert, alignCenter, 0)
	}
	p.gap(st.Gap)
	return p.done()
}
