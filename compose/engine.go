package compose

import (
	"fmt"

	"github.com/zeptools/medoc/canvas"
	"github.com/zeptools/medoc/pdfs"
	fpdfimpl "github.com/zeptools/medoc/pdfs/impls/fpdf"
	"github.com/zeptools/medoc/records"
	"github.com/zeptools/medoc/textlayout"
)

// Template describes one document type: paper, margins, file naming and
// the canonical section list built from a record.
type Template struct {
	Type     records.DocType
	Title    string
	Paper    pdfs.PaperSize
	Margin   float64
	Filename func(number string) string
	Build    func(rec records.Record) ([]Section, error)
}

// Engine turns records into PDF documents.
// It is immutable after NewEngine and safe for concurrent use.
type Engine struct {
	templates  *pdfs.TemplateStore[Template]
	style      Style
	creator    string
	newMetrics func() textlayout.Metrics
	newWriter  func(paper pdfs.PaperSize, meta pdfs.Meta) pdfs.Writer
}

type Option func(*Engine)

func WithStyle(s Style) Option {
	return func(e *Engine) { e.style = s }
}

func WithCreator(creator string) Option {
	return func(e *Engine) { e.creator = creator }
}

// WithMetrics replaces the text measurement used during layout
func WithMetrics(newMetrics func() textlayout.Metrics) Option {
	return func(e *Engine) { e.newMetrics = newMetrics }
}

func WithWriter(newWriter func(paper pdfs.PaperSize, meta pdfs.Meta) pdfs.Writer) Option {
	return func(e *Engine) { e.newWriter = newWriter }
}

// WithTemplate registers t, replacing any template of the same type
func WithTemplate(t Template) Option {
	return func(e *Engine) { e.templates.Store(string(t.Type), t) }
}

// WithPaper sets the paper size of every registered template
func WithPaper(paper pdfs.PaperSize) Option {
	return func(e *Engine) {
		for _, key := range e.templates.Keys() {
			t, _ := e.templates.Get(key)
			t.Paper = paper
			e.templates.Store(key, t)
		}
	}
}

func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		templates:  pdfs.NewTemplateStore[Template](),
		style:      DefaultStyle(),
		creator:    "medoc",
		newMetrics: func() textlayout.Metrics { return fpdfimpl.NewMetrics() },
		newWriter: func(paper pdfs.PaperSize, meta pdfs.Meta) pdfs.Writer {
			return fpdfimpl.NewWriter(paper, meta)
		},
	}
	for _, t := range []Template{CertificateTemplate(), PrescriptionTemplate()} {
		e.templates.Store(string(t.Type), t)
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Types lists the document types the engine can render
func (e *Engine) Types() []records.DocType {
	keys := e.templates.Keys()
	types := make([]records.DocType, len(keys))
	for i, k := range keys {
		types[i] = records.DocType(k)
	}
	return types
}

func (e *Engine) template(rec records.Record) (Template, error) {
	if rec == nil {
		return Template{}, fmt.Errorf("%w: no record", ErrPrecondition)
	}
	t, ok := e.templates.Get(string(rec.Type()))
	if !ok {
		return Template{}, fmt.Errorf("%w: no template for %q", ErrPrecondition, rec.Type())
	}
	return t, nil
}

// Filename is the download name Generate would give rec's document
func (e *Engine) Filename(rec records.Record) (string, error) {
	t, err := e.template(rec)
	if err != nil {
		return "", err
	}
	return t.Filename(filenameSafe(rec.Document().Number)), nil
}

// Layout is the result of laying a record out, before any PDF is written
type Layout struct {
	Template Template
	Sections []string // names in render order
	Commands []pdfs.Command
	Pages    int
}

// Layout runs the section renderers for rec without producing a PDF
func (e *Engine) Layout(rec records.Record) (*Layout, error) {
	t, err := e.template(rec)
	if err != nil {
		return nil, err
	}
	sections, err := t.Build(rec)
	if err != nil {
		return nil, err
	}
	env := NewEnv(e.newMetrics(), e.style)
	c := canvas.New(t.Paper, t.Margin).WithFooterReserve(FooterReserve(env, sections))
	final, cmds := Reduce(c, env, sections)

	names := make([]string, len(sections))
	for i, s := range sections {
		names[i] = s.Name()
	}
	return &Layout{Template: t, Sections: names, Commands: cmds, Pages: final.Page}, nil
}

// Generate lays rec out and writes the PDF.
// The output depends only on rec; the same record yields the same bytes.
func (e *Engine) Generate(rec records.Record) (*Document, error) {
	l, err := e.Layout(rec)
	if err != nil {
		return nil, err
	}
	doc := rec.Document()
	w := e.newWriter(l.Template.Paper, e.meta(l.Template, doc))
	if err := pdfs.Replay(w, l.Commands); err != nil {
		return nil, fmt.Errorf("compose: replay %s: %w", l.Template.Type, err)
	}
	data, err := w.ProduceBytes()
	if err != nil {
		return nil, fmt.Errorf("compose: write %s: %w", l.Template.Type, err)
	}
	return &Document{
		Type:     l.Template.Type,
		Number:   doc.Number,
		Filename: l.Template.Filename(filenameSafe(doc.Number)),
		Pages:    l.Pages,
		Sections: l.Sections,
		data:     data,
	}, nil
}

func (e *Engine) meta(t Template, doc records.DocumentRecord) pdfs.Meta {
	return pdfs.Meta{
		Title:    t.Title + " N° " + orPlaceholder(doc.Number),
		Subject:  t.Title,
		Author:   doc.DoctorName,
		Creator:  e.creator,
		Keywords: string(t.Type),
		Date:     doc.IssueDate.ForceValue(),
	}
}
