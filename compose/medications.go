package compose

import (
	"strconv"

	"github.com/zeptools/medoc/canvas"
	"github.com/zeptools/medoc/pdfs"
)

type MedicationItem struct {
	Name         string
	Quantity     string // "21 (veinte y uno)"
	Instructions string // optional
}

// MedicationListSection lists the prescribed items in order, then the
// indications for taking them.
type MedicationListSection struct {
	Label            string
	Title            string
	Items            []MedicationItem
	IndicationsTitle string
	Indications      []Row
}

func (s MedicationListSection) Name() string { return s.Label }

// itemHeight is the height Render uses for one numbered item, wrapped to the
// same widths.
func (s MedicationListSection) itemHeight(env *Env, width float64, n int, it MedicationItem) float64 {
	st := env.Style
	nameFont := st.Label.WithSize(st.Body.Size)
	names := len(env.wrap(itemTitle(n, it), width-4, nameFont))
	h := float64(names)*env.leading(nameFont) + env.leading(st.Body)
	if it.Instructions != "" {
		lines := len(env.wrap(it.Instructions, width-14, st.Body.WithStyle(pdfs.Italic)))
		h += float64(lines) * env.leading(st.Body)
	}
	return h
}

func itemTitle(n int, it MedicationItem) string {
	return strconv.Itoa(n) + ". " + it.Name
}

func (s MedicationListSection) Render(c canvas.Canvas, env *Env) (canvas.Canvas, []pdfs.Command) {
	st := env.Style
	p := newPen(s.Name(), c, env)
	if s.Title != "" {
		p.banner(s.Title)
	}
	nameFont := st.Label.WithSize(st.Body.Size)
	for i, it := range s.Items {
		// keep an item together when it fits on a page at all
		p.ensure(s.itemHeight(env, p.c.ContentWidth(), i+1, it))
		p.wrapped(itemTitle(i+1, it), nameFont, pdfs.Black, alignLeft, 4)
		p.textLine("Cantidad: "+it.Quantity, st.Body, pdfs.Black, alignLeft, 14)
		if it.Instructions != "" {
			p.wrapped(it.Instructions, st.Body.WithStyle(pdfs.Italic), st.Muted, alignLeft, 14)
		}
		p.gap(st.Body.Size * 0.4)
	}
	if len(s.Indications) > 0 {
		p.gap(st.Gap / 2)
		p.banner(s.IndicationsTitle)
		for _, ind := range s.Indications {
			p.wrapped(ind.Label+": "+ind.Value, st.Body, pdfs.Black, alignLeft, 4)
		}
	}
	p.gap(st.Gap)
	return p.done()
}
