// Package rw holds small io helpers.
package rw

import "io"

// CountWriter counts the bytes passed through to w
type CountWriter struct {
	w io.Writer
	n int64
}

func NewCountWriter(w io.Writer) *CountWriter {
	return &CountWriter{w: w}
}

// Write implements io.Writer
func (cw *CountWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	cw.n += int64(n) // producers may call Write many times per document
	return n, err
}

func (cw *CountWriter) BytesWritten() int64 {
	return cw.n
}

// Count runs produce against dst and reports how many bytes reached dst,
// which lets an output func satisfy io.WriterTo.
func Count(dst io.Writer, produce func(io.Writer) error) (int64, error) {
	cw := NewCountWriter(dst)
	err := produce(cw)
	return cw.BytesWritten(), err
}
