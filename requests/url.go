package requests

import (
	"net/http"
	"net/url"
)

// FullURL rebuilds the URL the client asked for, honouring
// X-Forwarded-Proto and X-Forwarded-Host set by the reverse proxy.
func FullURL(req *http.Request) string {
	u := url.URL{
		Scheme:   "http",
		Host:     req.Host,
		Path:     req.URL.Path,
		RawPath:  req.URL.RawPath,
		RawQuery: req.URL.RawQuery,
	}
	switch {
	case req.TLS != nil:
		u.Scheme = "https"
	case req.Header.Get("X-Forwarded-Proto") != "":
		u.Scheme = req.Header.Get("X-Forwarded-Proto")
	}
	if host := req.Header.Get("X-Forwarded-Host"); host != "" {
		u.Host = host
	}
	return u.String()
}
