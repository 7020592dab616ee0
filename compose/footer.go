package compose

import (
	"fmt"

	"github.com/zeptools/medoc/canvas"
	"github.com/zeptools/medoc/pdfs"
)

// FooterSection is drawn in the reserved band of every page once layout
// of the body is complete. It does not move the cursor.
type FooterSection struct {
	Lines     []string
	Reference string // "Receta N° 77"
	Banner    bool   // filled bar with white text
}

func (s FooterSection) Name() string { return "Footer" }

func (s FooterSection) Reserve(env *Env) float64 {
	// contact lines plus the reference/page line, and padding
	return float64(len(s.Lines)+1)*env.leading(env.Style.Small) + 14
}

func (s FooterSection) Render(c canvas.Canvas, env *Env) (canvas.Canvas, []pdfs.Command) {
	st := env.Style
	rec := pdfs.NewRecorder(s.Name(), 1)
	lead := env.leading(st.Small)
	band := s.Reserve(env)
	top := c.Bottom() - band + 6
	color := st.Muted
	if s.Banner {
		color = pdfs.White
	}
	refFont := st.Small.WithStyle(pdfs.Bold)
	pages := c.Page
	for page := 1; page <= pages; page++ {
		rec.Page = page
		if s.Banner {
			rec.Rect(c.Left(), top, c.ContentWidth(), band-6, pdfs.Fill, st.Primary, st.Primary)
		} else {
			rec.Line(c.Left(), top, c.Right(), top, 0.5, st.Muted)
		}
		y := top + 4
		for _, l := range s.Lines {
			rec.Text(c.CenterX()-env.width(l, st.Small)/2, baseline(y, lead, st.Small), l, st.Small, color)
			y += lead
		}
		ref := s.Reference
		if pages > 1 {
			ref = fmt.Sprintf("%s · Página %d de %d", ref, page, pages)
		}
		rec.Text(c.CenterX()-env.width(ref, refFont)/2, baseline(y, lead, refFont), ref, refFont, color)
	}
	return c, rec.Commands()
}
