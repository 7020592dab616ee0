package compose

import (
	"github.com/zeptools/medoc/canvas"
	"github.com/zeptools/medoc/pdfs"
)

const minSealRadius = 12

// SealSection leaves room for a handwritten signature and a rubber stamp:
// a signature line on the left, a circular seal outline on the right.
type SealSection struct {
	Label                string
	Establishment        string
	ProfessionalCaption  string
	EstablishmentCaption string
}

func (s SealSection) Name() string { return s.Label }

func (s SealSection) Render(c canvas.Canvas, env *Env) (canvas.Canvas, []pdfs.Command) {
	st := env.Style
	p := newPen(s.Name(), c, env)

	capLead := env.leading(st.Small)
	// shrink the seal on pages too short for it
	r := max(minSealRadius, min(st.SealRadius, (p.c.ContentHeight()-8-capLead)/2))
	p.ensure(2*r + 8 + capLead + st.Gap)

	colW := p.c.ContentWidth() / 2
	top := p.c.Y
	ruleY := top + 2*r + 4

	// professional signature, left column
	lx1, lx2 := p.c.Left()+20, p.c.Left()+colW-20
	p.rec.Line(lx1, ruleY, lx2, ruleY, 0.6, pdfs.Black)
	p.rec.Text((lx1+lx2)/2-env.width(s.ProfessionalCaption, st.Small)/2, baseline(ruleY+2, capLead, st.Small),
		s.ProfessionalCaption, st.Small, st.Muted)

	// establishment seal, right column
	cx, cy := p.c.Left()+colW+colW/2, top+r
	p.rec.Circle(cx, cy, r, 1, pdfs.Stroke, st.Muted, pdfs.White)
	p.rec.Circle(cx, cy, r-4, 0.4, pdfs.Stroke, st.Muted, pdfs.White)
	font := st.Small.WithStyle(pdfs.Bold).WithSize(7)
	lines := env.wrap(env.toUpper(s.Establishment), 1.5*r, font)
	lead := env.leading(font)
	if most := max(1, int(2*(r-4)/lead)); len(lines) > most {
		lines = lines[:most]
	}
	y := cy - float64(len(lines))*lead/2
	for _, l := range lines {
		p.rec.Text(cx-env.width(l, font)/2, baseline(y, lead, font), l, font, st.Muted)
		y += lead
	}
	rx1, rx2 := cx-r-10, cx+r+10
	p.rec.Line(rx1, ruleY, rx2, ruleY, 0.6, pdfs.Black)
	p.rec.Text(cx-env.width(s.EstablishmentCaption, st.Small)/2, baseline(ruleY+2, capLead, st.Small),
		s.EstablishmentCaption, st.Small, st.Muted)

	p.advance(ruleY + 2 + capLead - top)
	p.gap(st.Gap)
	return p.done()
}
