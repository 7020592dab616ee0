package compose

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/zeptools/medoc/records"
)

// Document is a generated PDF. It is never modified after Generate.
type Document struct {
	Type     records.DocType
	Number   string
	Filename string
	Pages    int
	Sections []string
	data     []byte
}

// File is a buffer with its suggested download name
type File struct {
	Name string
	Data []byte
}

// NewDocument wraps bytes produced elsewhere, e.g. read back from a cache
func NewDocument(t records.DocType, number, filename string, data []byte) *Document {
	return &Document{Type: t, Number: number, Filename: filename, data: data}
}

// Blob returns a copy of the PDF bytes
func (d *Document) Blob() []byte {
	return slices.Clone(d.data)
}

func (d *Document) File() File {
	return File{Name: d.Filename, Data: d.Blob()}
}

func (d *Document) Size() int {
	return len(d.data)
}

// Checksum is the hex SHA-256 of the PDF bytes
func (d *Document) Checksum() string {
	sum := sha256.Sum256(d.data)
	return hex.EncodeToString(sum[:])
}

// WriteTo implements io.WriterTo
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	return bytes.NewReader(d.data).WriteTo(w)
}

// SaveTo writes the document into dir under its filename and returns the path
func (d *Document) SaveTo(dir string) (string, error) {
	path := filepath.Join(dir, d.Filename)
	if err := os.WriteFile(path, d.data, 0o644); err != nil {
		return "", fmt.Errorf("compose: save %s: %w", d.Filename, err)
	}
	return path, nil
}

var filenameReplacer = strings.NewReplacer("/", "-", "\\", "-", " ", "-", ":", "-", "\"", "", "..", "-")

func filenameSafe(number string) string {
	n := filenameReplacer.Replace(strings.TrimSpace(number))
	if n == "" {
		return "sin-numero"
	}
	return n
}
