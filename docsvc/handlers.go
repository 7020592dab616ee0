package docsvc

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/zeptools/medoc/compose"
	"github.com/zeptools/medoc/recordstore"
	"github.com/zeptools/medoc/records"
	"github.com/zeptools/medoc/requests"
	"github.com/zeptools/medoc/responses"
	"github.com/zeptools/medoc/routing"
	"go.uber.org/zap"
)

const (
	msgGenerationFailed = "document generation failed"
	msgNotFound         = "document not found"
	msgBadBody          = "invalid request body"
	msgInternal         = "internal server error"
	msgUnavailable      = "service unavailable"
	msgMediaType        = "request body must be application/json"
)

var errEmptyBody = errors.New("docsvc: empty request body")

// Routes registers the document endpoints on g, e.g. a group at /api/v1/.
func (s *Service) Routes(g *routing.RouteGroup) {
	g.HandleFunc("POST certificates/pdf", s.handleRecord(func() records.Record { return &records.CertificateRecord{} }))
	g.HandleFunc("POST prescriptions/pdf", s.handleRecord(func() records.Record { return &records.PrescriptionRecord{} }))
	g.HandleFunc("GET documents/{number}/pdf", s.handleStoredPDF)
	g.HandleFunc("GET documents/{number}/blob", s.handleStoredBlob)
}

func (s *Service) handleRecord(newRecord func() records.Record) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !requests.IsJSON(r) {
			responses.WriteSimpleErrorJSON(w, http.StatusUnsupportedMediaType, msgMediaType)
			return
		}
		rec := newRecord()
		if err := s.decode(w, r, rec); err != nil {
			s.log.Info("bad request body", zap.String("requestID", routing.RequestIDFrom(r.Context())), zap.Error(err))
			responses.WriteSimpleErrorJSON(w, http.StatusBadRequest, msgBadBody)
			return
		}
		doc, err := s.Render(r.Context(), rec)
		if err != nil {
			s.writeError(w, r, err)
			return
		}
		writePDF(w, r, doc)
	}
}

func (s *Service) handleStoredPDF(w http.ResponseWriter, r *http.Request) {
	doc, err := s.RenderStored(r.Context(), r.PathValue("number"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writePDF(w, r, doc)
}

func (s *Service) handleStoredBlob(w http.ResponseWriter, r *http.Request) {
	doc, err := s.RenderStored(r.Context(), r.PathValue("number"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	responses.WriteBlob(w, r, doc.Checksum(), doc.Blob())
}

func (s *Service) decode(w http.ResponseWriter, r *http.Request, dst records.Record) error {
	if !requests.HasBody(r) {
		return errEmptyBody
	}
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, s.maxBodyBytes))
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("decode %s: %w", dst.Type(), err)
	}
	if dec.More() {
		return fmt.Errorf("decode %s: trailing data", dst.Type())
	}
	return nil
}

func writePDF(w http.ResponseWriter, r *http.Request, doc *compose.Document) {
	disposition := responses.Inline
	if r.URL.Query().Get("download") == "1" {
		disposition = responses.Attachment
	}
	w.Header().Set("ETag", `"`+doc.Checksum()+`"`)
	responses.WritePDFBytes(w, disposition, doc.Filename, doc.Blob())
}

// writeError maps service errors onto status codes. Internal details stay in
// the log.
func (s *Service) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, msg := http.StatusInternalServerError, msgInternal
	switch {
	case errors.Is(err, compose.ErrPrecondition):
		status, msg = http.StatusUnprocessableEntity, msgGenerationFailed
	case errors.Is(err, recordstore.ErrNotFound), errors.Is(err, recordstore.ErrEmptyNumber):
		status, msg = http.StatusNotFound, msgNotFound
	case errors.Is(err, ErrNoSource), errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		status, msg = http.StatusServiceUnavailable, msgUnavailable
	}
	fields := []zap.Field{
		zap.String("requestID", routing.RequestIDFrom(r.Context())),
		zap.Int("status", status),
		zap.Error(err),
	}
	if status >= http.StatusInternalServerError {
		s.log.Error("request failed", fields...)
	} else {
		s.log.Info("request rejected", fields...)
	}
	responses.WriteSimpleErrorJSON(w, status, msg)
}
