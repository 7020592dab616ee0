package pdfs

import (
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// callLog is a Writer that records the calls it receives
type callLog struct {
	pages int
	calls []string
}

var _ Writer = (*callLog)(nil)

func (l *callLog) PaperSize() PaperSize        { return A4Size }
func (l *callLog) Orientation() string         { return "P" }
func (l *callLog) AddBlankPage()               { l.pages++; l.calls = append(l.calls, fmt.Sprintf("page %d", l.pages)) }
func (l *callLog) PageCount() int              { return l.pages }
func (l *callLog) SetFont(Font)                {}
func (l *callLog) SetTextColor(Color)          {}
func (l *callLog) SetDrawColor(Color)          {}
func (l *callLog) SetFillColor(Color)          {}
func (l *callLog) SetLineWidth(float64)        {}
func (l *callLog) Text(x, y float64, s string) { l.calls = append(l.calls, "text "+s) }
func (l *callLog) Line(_, _, _, _ float64)     { l.calls = append(l.calls, "line") }
func (l *callLog) Rect(_, _, _, _ float64, _ Paint) {
	l.calls = append(l.calls, "rect")
}
func (l *callLog) Circle(_, _, _ float64, _ Paint)  { l.calls = append(l.calls, "circle") }
func (l *callLog) WriteTo(io.Writer) (int64, error) { return 0, nil }
func (l *callLog) WriteToFile(string) error         { return nil }
func (l *callLog) ProduceBytes() ([]byte, error)    { return nil, nil }
func (l *callLog) Err() error                       { return nil }

func TestA4IsPortrait(t *testing.T) {
	assert.Greater(t, A4Size.Height, A4Size.Width)
	assert.Equal(t, "P", A4Size.Orientation())
	assert.Equal(t, "L", PaperSize{Width: 842, Height: 595}.Orientation())
}

func TestPaperSizeByName(t *testing.T) {
	p, ok := PaperSizeByName("letter")
	require.True(t, ok)
	assert.Equal(t, LetterSize, p)
	_, ok = PaperSizeByName("B5")
	assert.False(t, ok)
}

func TestRecorderStampsPageAndSection(t *testing.T) {
	r := NewRecorder("header", 1)
	r.Text(10, 20, "uno", Font{Family: Helvetica, Size: 10}, Black)
	r.Text(10, 30, "", Font{}, Black) // empty text is dropped
	r.NewPage()
	r.Line(0, 0, 10, 0, 1, Black)

	cmds := r.Commands()
	require.Len(t, cmds, 3)
	assert.Equal(t, 1, cmds[0].Page)
	assert.Equal(t, OpNewPage, cmds[1].Op)
	assert.Equal(t, 2, cmds[1].Page)
	assert.Equal(t, 2, cmds[2].Page)
	for _, c := range cmds {
		assert.Equal(t, "header", c.Section)
	}
}

func TestReplayGroupsByPage(t *testing.T) {
	body := NewRecorder("body", 1)
	body.Text(0, 0, "a", Font{}, Black)
	body.NewPage()
	body.Text(0, 0, "b", Font{}, Black)

	footer := NewRecorder("footer", 1)
	footer.Text(0, 0, "f1", Font{}, Black)
	footer.Page = 2
	footer.Text(0, 0, "f2", Font{}, Black)

	var cmds []Command
	cmds = append(cmds, body.Commands()...)
	cmds = append(cmds, footer.Commands()...)

	w := &callLog{}
	require.NoError(t, Replay(w, cmds))
	assert.Equal(t, []string{"page 1", "text a", "text f1", "page 2", "text b", "text f2"}, w.calls)
}

func TestReplayRejectsUnpagedCommand(t *testing.T) {
	err := Replay(&callLog{}, []Command{{Op: OpText, Text: "x"}})
	assert.Error(t, err)
}

func TestTemplateStoreKeys(t *testing.T) {
	s := NewTemplateStore[int]()
	s.Store("b", 2)
	s.Store("a", 1)
	v, ok := s.Get("a")
	assert.True(t, ok)
	assert.Equal(t, 1, v)
	assert.Equal(t, []string{"a", "b"}, s.Keys())
	s.Remove("a")
	assert.Equal(t, []string{"b"}, s.Keys())
}
