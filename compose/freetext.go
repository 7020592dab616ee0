package compose

import (
	"github.com/zeptools/medoc/canvas"
	"github.com/zeptools/medoc/pdfs"
)

// FreeTextSection is a titled block of wrapped paragraphs
type FreeTextSection struct {
	Label      string
	Title      string
	Paragraphs []string
}

func (s FreeTextSection) Name() string { return s.Label }

func (s FreeTextSection) Render(c canvas.Canvas, env *Env) (canvas.Canvas, []pdfs.Command) {
	st := env.Style
	p := newPen(s.Name(), c, env)
	if s.Title != "" {
		p.banner(s.Title)
	}
	for i, para := range s.Paragraphs {
		if i > 0 {
			p.gap(st.Body.Size * 0.4)
		}
		p.wrapped(para, st.Body, pdfs.Black, alignLeft, 4)
	}
	p.gap(st.Gap)
	return p.done()
}
