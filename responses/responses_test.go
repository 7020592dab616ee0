package responses

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteSimpleErrorJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteSimpleErrorJSON(rec, http.StatusUnprocessableEntity, "document generation failed")

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	var msg Message
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &msg))
	assert.Equal(t, Message{Type: "error", Message: "document generation failed"}, msg)
}

func TestWritePDFBytes(t *testing.T) {
	rec := httptest.NewRecorder()
	WritePDFBytes(rec, Attachment, "Receta_77.pdf", []byte("%PDF-1.3"))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.Equal(t, "attachment; filename=Receta_77.pdf", rec.Header().Get("Content-Disposition"))
	assert.Equal(t, "8", rec.Header().Get("Content-Length"))
	assert.Equal(t, "%PDF-1.3", rec.Body.String())

	rec = httptest.NewRecorder()
	WritePDFBytesWithFilename(rec, "certificado médico.pdf", nil)
	assert.Equal(t, "inline; filename*=utf-8''certificado%20m%C3%A9dico.pdf", rec.Header().Get("Content-Disposition"))
}

func TestWriteBlob(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/blob", nil)
	rec := httptest.NewRecorder()
	WriteBlob(rec, req, "abc", []byte{1, 2, 3})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, `"abc"`, rec.Header().Get("ETag"))
	assert.Equal(t, "application/octet-stream", rec.Header().Get("Content-Type"))
	assert.Equal(t, []byte{1, 2, 3}, rec.Body.Bytes())

	req.Header.Set("If-None-Match", `"abc"`)
	rec = httptest.NewRecorder()
	WriteBlob(rec, req, "abc", []byte{1, 2, 3})
	assert.Equal(t, http.StatusNotModified, rec.Code)
	assert.Empty(t, rec.Body.Bytes())
}
