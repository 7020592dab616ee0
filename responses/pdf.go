package responses

import (
	"fmt"
	"mime"
	"net/http"
	"strconv"

	"go.uber.org/zap"
)

type Disposition string

const (
	Inline     Disposition = "inline"
	Attachment Disposition = "attachment"
)

func WritePDFBytesWithFilename(w http.ResponseWriter, filename string, PDFBytes []byte) {
	WritePDFBytes(w, Inline, filename, PDFBytes)
}

func WritePDFBytes(w http.ResponseWriter, disposition Disposition, filename string, PDFBytes []byte) {
	w.Header().Set("Content-Length", strconv.Itoa(len(PDFBytes)))
	WritePDFResponseHeaders(w, disposition, filename)
	if _, err := w.Write(PDFBytes); err != nil {
		zap.L().Named("responses").Error("writing PDF to response", zap.Error(err))
	}
}

// WritePDFResponseHeaders write HTTP response headers for PDF response. i.e. headers are frozen
func WritePDFResponseHeaders(w http.ResponseWriter, disposition Disposition, filename string) {
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", ContentDisposition(disposition, filename))
	w.WriteHeader(http.StatusOK) // Response Header Sent & Frozen
}

// ContentDisposition formats the header value, falling back to a quoted
// filename when mime cannot encode it.
func ContentDisposition(disposition Disposition, filename string) string {
	if v := mime.FormatMediaType(string(disposition), map[string]string{"filename": filename}); v != "" {
		return v
	}
	return fmt.Sprintf("%s; filename=%q", disposition, filename)
}

// WriteBlob writes raw bytes as application/octet-stream with a strong ETag.
// A matching If-None-Match answers 304 without a body.
func WriteBlob(w http.ResponseWriter, r *http.Request, etag string, blob []byte) {
	quoted := strconv.Quote(etag)
	w.Header().Set("ETag", quoted)
	if match := r.Header.Get("If-None-Match"); match != "" && (match == quoted || match == "*") {
		w.WriteHeader(http.StatusNotModified)
		return
	}
	w.Header().Set("Content-Type", "application/octet-stream")
	w.Header().Set("Content-Length", strconv.Itoa(len(blob)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(blob); err != nil {
		zap.L().Named("responses").Error("writing blob to response", zap.Error(err))
	}
}
