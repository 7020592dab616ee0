package pdfs

import (
	"fmt"
	"slices"
)

// Replay draws cmds onto w, page by page.
// Commands are grouped by page keeping their recorded order within a page,
// so sections that annotate earlier pages (footers) can be recorded last.
func Replay(w Writer, cmds []Command) error {
	pages := 1
	for _, c := range cmds {
		if c.Page < 1 {
			return fmt.Errorf("pdfs: %s command of %q has page %d", c.Op, c.Section, c.Page)
		}
		pages = max(pages, c.Page)
	}

	sorted := slices.Clone(cmds)
	slices.SortStableFunc(sorted, func(a, b Command) int { return a.Page - b.Page })

	i := 0
	for page := 1; page <= pages; page++ {
		w.AddBlankPage()
		for ; i < len(sorted) && sorted[i].Page == page; i++ {
			apply(w, sorted[i])
		}
	}
	return w.Err()
}

func apply(w Writer, c Command) {
	switch c.Op {
	case OpText:
		w.SetFont(c.Font)
		w.SetTextColor(c.Color)
		w.Text(c.X, c.Y, c.Text)
	case OpLine:
		w.SetLineWidth(c.LineWidth)
		w.SetDrawColor(c.Color)
		w.Line(c.X, c.Y, c.X2, c.Y2)
	case OpRect:
		w.SetLineWidth(c.LineWidth)
		w.SetDrawColor(c.Color)
		w.SetFillColor(c.FillColor)
		w.Rect(c.X, c.Y, c.W, c.H, c.Paint)
	case OpCircle:
		w.SetLineWidth(c.LineWidth)
		w.SetDrawColor(c.Color)
		w.SetFillColor(c.FillColor)
		w.Circle(c.X, c.Y, c.R, c.Paint)
	}
}
