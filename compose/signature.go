package compose

import (
	"github.com/zeptools/medoc/canvas"
	"github.com/zeptools/medoc/pdfs"
)

// SignatureSection is the centered identity block of the issuing doctor
// under a signature rule.
type SignatureSection struct {
	Label     string
	Title     string
	Statement string
	Lines     []string // first line is printed bold
	Caption   string
}

func (s SignatureSection) Name() string { return s.Label }

const signSpace = 36

func (s SignatureSection) blockHeight(env *Env) float64 {
	st := env.Style
	h := signSpace + float64(len(s.Lines))*env.leading(st.Body)
	if s.Caption != "" {
		h += env.leading(st.Small)
	}
	return h
}

func (s SignatureSection) Render(c canvas.Canvas, env *Env) (canvas.Canvas, []pdfs.Command) {
	st := env.Style
	p := newPen(s.Name(), c, env)
	if s.Title != "" {
		p.banner(s.Title)
	}
	if s.Statement != "" {
		p.wrapped(s.Statement, st.Body, pdfs.Black, alignLeft, 4)
	}

	p.ensure(s.blockHeight(env))
	p.advance(signSpace - 4)
	const ruleHalf = 100
	p.rec.Line(p.c.CenterX()-ruleHalf, p.c.Y, p.c.CenterX()+ruleHalf, p.c.Y, 0.6, pdfs.Black)
	p.advance(4)
	for i, l := range s.Lines {
		font := st.Body
		if i == 0 {
			font = font.WithStyle(pdfs.Bold)
		}
		p.textLine(l, font, pdfs.Black, alignCenter, 0)
	}
	if s.Caption != "" {
		p.textLine(s.Caption, st.Small.WithStyle(pdfs.Italic), st.Muted, alignCenter, 0)
	}
	p.gap(st.Gap)
	return p.done()
}
