package canvas

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zeptools/medoc/pdfs"
)

func TestNew(t *testing.T) {
	c := New(pdfs.A4Size, 40)
	assert.Equal(t, 1, c.Page)
	assert.Equal(t, 40.0, c.Y)
	assert.True(t, c.AtTop())
	assert.InDelta(t, 595.27559-80, c.ContentWidth(), 1e-9)
	assert.InDelta(t, 841.88976-80, c.RemainingHeight(), 1e-9)
}

func TestAdvanceIsPure(t *testing.T) {
	c := New(pdfs.A4Size, 40)
	d := c.Advance(25)
	assert.Equal(t, 40.0, c.Y)
	assert.Equal(t, 65.0, d.Y)
	assert.True(t, c.Before(d))
	assert.Equal(t, c.RemainingHeight()-25, d.RemainingHeight())
}

func TestAdvanceNegativePanics(t *testing.T) {
	c := New(pdfs.A4Size, 40)
	assert.Panics(t, func() { c.Advance(-1) })
	assert.NotPanics(t, func() { c.Advance(0) })
}

func TestFitsAndNextPage(t *testing.T) {
	c := New(pdfs.LetterSize, 36).WithFooterReserve(40)
	assert.Equal(t, 792-36-40.0, c.Floor())
	c = c.Advance(c.RemainingHeight() - 10)
	assert.True(t, c.Fits(10))
	assert.False(t, c.Fits(10.5))

	n := c.NextPage()
	assert.Equal(t, 2, n.Page)
	assert.True(t, n.AtTop())
	assert.True(t, c.Before(n))
	assert.False(t, n.Before(c))
}

func TestMonotonicSequence(t *testing.T) {
	c := New(pdfs.A4Size, 40).WithFooterReserve(30)
	prev := c
	for i := range 200 {
		h := float64(5 + i%17)
		if !c.Fits(h) {
			c = c.NextPage()
		}
		c = c.Advance(h)
		assert.True(t, prev.Before(c))
		assert.LessOrEqual(t, c.Y, c.Floor())
		prev = c
	}
	assert.Greater(t, c.Page, 1)
}

func TestFitsToleratesSummedLines(t *testing.T) {
	c := New(pdfs.A4Size, 40).WithFooterReserve(40)
	c = c.Advance(c.RemainingHeight() - 3*11.3)
	for range 3 {
		assert.True(t, c.Fits(11.3))
		c = c.Advance(11.3)
	}
	assert.False(t, c.Fits(0.01))
}

func TestContentHeight(t *testing.T) {
	c := New(pdfs.LetterSize, 36).WithFooterReserve(40)
	assert.Equal(t, 792-72-40.0, c.ContentHeight())
	assert.Equal(t, c.ContentHeight(), c.RemainingHeight())
	assert.Equal(t, c.ContentHeight(), c.Advance(100).NextPage().RemainingHeight())
}
