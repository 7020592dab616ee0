package nullable

import (
	"database/sql"
	"encoding/json"
	"strings"
)

// String in `nullable` package
// implements: sql.Scanner by embedding sql.NullString
// implements: json.Marshaler and json.Unmarshaler
// A blank string counts as absent for Or().
type String struct {
	sql.NullString
}

func StringOf(s string) String {
	return String{sql.NullString{String: s, Valid: true}}
}

func (n String) MarshalJSON() ([]byte, error) {
	if n.Valid {
		return json.Marshal(n.String)
	}
	return []byte("null"), nil
}

func (n *String) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		n.Valid = false
		n.String = ""
		return nil
	}
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	n.String = str
	n.Valid = true
	return nil
}

func (n String) ForceValue() string {
	if !n.Valid {
		return ""
	}
	return n.String
}

func (n String) IsNil() bool {
	return !n.Valid
}

// IsBlank reports a null or whitespace-only value
func (n String) IsBlank() bool {
	return !n.Valid || strings.TrimSpace(n.String) == ""
}

// Or returns the trimmed value, or fallback when blank
func (n String) Or(fallback string) string {
	if n.IsBlank() {
		return fallback
	}
	return strings.TrimSpace(n.String)
}
