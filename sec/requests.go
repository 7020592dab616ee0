package sec

import "strings"

// ExtractBearerToken returns the token of an `Authorization: Bearer <token>`
// header value, or "" when the header has another scheme. The scheme is
// matched case-insensitively.
func ExtractBearerToken(header string) string {
	const prefix = "bearer "
	if len(header) > len(prefix) && strings.EqualFold(header[:len(prefix)], prefix) {
		return strings.TrimSpace(header[len(prefix):])
	}
	return ""
}
