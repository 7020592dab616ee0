// Package canvas tracks the drawing position while a document is laid out.
//
// A Canvas is a value. Every operation returns a new Canvas and leaves the
// receiver untouched, so a layout pass is a fold of pure steps over it.
package canvas

import (
	"fmt"

	"github.com/zeptools/medoc/pdfs"
)

type Canvas struct {
	Paper         pdfs.PaperSize
	Margin        float64
	FooterReserve float64 // band above the bottom margin kept free for the footer
	Page          int     // 1-based
	Y             float64 // top of the next block, from the top edge
}

// New places the cursor at the top margin of page 1
func New(paper pdfs.PaperSize, margin float64) Canvas {
	return Canvas{Paper: paper, Margin: margin, Page: 1, Y: margin}
}

func (c Canvas) WithFooterReserve(h float64) Canvas {
	c.FooterReserve = max(h, 0)
	return c
}

// Advance moves the cursor down. Negative dy is a programming error.
func (c Canvas) Advance(dy float64) Canvas {
	if dy < 0 {
		panic(fmt.Sprintf("canvas: negative advance %v", dy))
	}
	c.Y += dy
	return c
}

// NextPage continues at the top margin of the following page
func (c Canvas) NextPage() Canvas {
	c.Page++
	c.Y = c.Margin
	return c
}

// Floor is the lowest y content may reach on any page
func (c Canvas) Floor() float64 {
	return c.Paper.Height - c.Margin - c.FooterReserve
}

// Bottom is the bottom margin line, where the footer band ends
func (c Canvas) Bottom() float64 {
	return c.Paper.Height - c.Margin
}

func (c Canvas) RemainingHeight() float64 {
	return c.Floor() - c.Y
}

// slack absorbs rounding when a block is placed as a sum of line heights
const slack = 1e-6

func (c Canvas) Fits(h float64) bool {
	return h <= c.RemainingHeight()+slack
}

// ContentHeight is the usable height of an empty page
func (c Canvas) ContentHeight() float64 {
	return c.Floor() - c.Margin
}

// AtTop reports whether nothing has been placed on the current page
func (c Canvas) AtTop() bool {
	return c.Y == c.Margin
}

func (c Canvas) Left() float64 {
	return c.Margin
}

func (c Canvas) Right() float64 {
	return c.Paper.Width - c.Margin
}

func (c Canvas) ContentWidth() float64 {
	return c.Paper.Width - 2*c.Margin
}

func (c Canvas) CenterX() float64 {
	return c.Paper.Width / 2
}

// Before reports whether c's cursor precedes o's in reading order
func (c Canvas) Before(o Canvas) bool {
	if c.Page != o.Page {
		return c.Page < o.Page
	}
	return c.Y < o.Y
}
