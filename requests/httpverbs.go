package requests

import (
	"mime"
	"net/http"
)

// HasBody reports whether the method carries a request body at all
func HasBody(r *http.Request) bool {
	switch r.Method {
	case http.MethodGet, http.MethodHead, http.MethodOptions, http.MethodDelete:
		return false
	}
	return r.Body != nil && r.Body != http.NoBody
}

// IsJSON reports whether the Content-Type is application/json or absent.
// Parameters such as charset are ignored.
func IsJSON(r *http.Request) bool {
	ct := r.Header.Get("Content-Type")
	if ct == "" {
		return true
	}
	mediaType, _, err := mime.ParseMediaType(ct)
	return err == nil && mediaType == "application/json"
}
