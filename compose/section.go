package compose

import (
	"github.com/zeptools/medoc/canvas"
	"github.com/zeptools/medoc/pdfs"
)

// Section is a descriptor of one document block.
// Render is pure: it reads the canvas and returns the advanced canvas along
// with the commands that draw the block.
type Section interface {
	Name() string
	Render(c canvas.Canvas, env *Env) (canvas.Canvas, []pdfs.Command)
}

// Reserver is implemented by sections that occupy a fixed band at the
// bottom of every page.
type Reserver interface {
	Reserve(env *Env) float64
}

// Reduce folds the renderers over sections in order, threading the canvas
func Reduce(c canvas.Canvas, env *Env, sections []Section) (canvas.Canvas, []pdfs.Command) {
	var cmds []pdfs.Command
	for _, s := range sections {
		var out []pdfs.Command
		c, out = s.Render(c, env)
		cmds = append(cmds, out...)
	}
	return c, cmds
}

// FooterReserve sums the bottom bands requested by sections
func FooterReserve(env *Env, sections []Section) float64 {
	var h float64
	for _, s := range sections {
		if r, ok := s.(Reserver); ok {
			h += r.Reserve(env)
		}
	}
	return h
}

type align uint8

const (
	alignLeft align = iota
	alignCenter
	alignRight
)

// pen couples a canvas with a recorder for the duration of one Render
type pen struct {
	c   canvas.Canvas
	rec *pdfs.Recorder
	env *Env
}

func newPen(name string, c canvas.Canvas, env *Env) *pen {
	return &pen{c: c, rec: pdfs.NewRecorder(name, c.Page), env: env}
}

func (p *pen) done() (canvas.Canvas, []pdfs.Command) {
	return p.c, p.rec.Commands()
}

// ensure continues on a new page when h does not fit.
// At the top of a page the block is placed regardless.
func (p *pen) ensure(h float64) {
	if p.c.Fits(h) || p.c.AtTop() {
		return
	}
	p.rec.NewPage()
	p.c = p.c.NextPage()
}

func (p *pen) advance(dy float64) {
	p.c = p.c.Advance(dy)
}

// gap advances unless it would cross the floor
func (p *pen) gap(dy float64) {
	if p.c.Fits(dy) {
		p.advance(dy)
	}
}

func baseline(top, lead float64, font pdfs.Font) float64 {
	return top + (lead+font.Size*0.7)/2
}

func (p *pen) xFor(text string, font pdfs.Font, al align, indent float64) float64 {
	switch al {
	case alignCenter:
		return p.c.CenterX() - p.env.width(text, font)/2
	case alignRight:
		return p.c.Right() - p.env.width(text, font)
	}
	return p.c.Left() + indent
}

// textLine draws one line box at the cursor and moves below it
func (p *pen) textLine(text string, font pdfs.Font, color pdfs.Color, al align, indent float64) {
	lead := p.env.leading(font)
	p.ensure(lead)
	p.rec.Text(p.xFor(text, font, al, indent), baseline(p.c.Y, lead, font), text, font, color)
	p.advance(lead)
}

// wrapped breaks text to the content width minus indent, one line box per line
func (p *pen) wrapped(text string, font pdfs.Font, color pdfs.Color, al align, indent float64) int {
	lines := p.env.wrap(text, p.c.ContentWidth()-indent, font)
	for _, l := range lines {
		p.textLine(l, font, color, al, indent)
	}
	return len(lines)
}

// banner draws a full-width colored bar with a white title.
// It is kept on the same page as the first line that follows it.
func (p *pen) banner(title string) {
	st := p.env.Style
	p.ensure(st.BannerHeight + p.env.leading(st.Body))
	p.rec.Rect(p.c.Left(), p.c.Y, p.c.ContentWidth(), st.BannerHeight, pdfs.Fill, st.Primary, st.Primary)
	text := p.env.toUpper(title)
	p.rec.Text(p.c.Left()+6, baseline(p.c.Y, st.BannerHeight, st.Heading), text, st.Heading, pdfs.White)
	p.advance(st.BannerHeight + 4)
}
