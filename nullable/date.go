package nullable

import (
	"database/sql"
	"encoding/json"
	"time"
)

const DateLayout = "2006-01-02"

// Date is a calendar date without time of day.
// JSON form is "YYYY-MM-DD"; RFC3339 input is accepted and truncated to its date.
type Date struct {
	sql.NullTime
}

func DateOf(year int, month time.Month, day int) Date {
	return Date{sql.NullTime{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC), Valid: true}}
}

func (n Date) MarshalJSON() ([]byte, error) {
	if n.Valid {
		return json.Marshal(n.Time.Format(DateLayout))
	}
	return []byte("null"), nil
}

func (n *Date) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		n.Valid = false
		n.Time = time.Time{}
		return nil
	}
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	if str == "" {
		n.Valid = false
		n.Time = time.Time{}
		return nil
	}
	t, err := time.Parse(DateLayout, str)
	if err != nil {
		rt, rerr := time.Parse(time.RFC3339, str)
		if rerr != nil {
			return err
		}
		t = time.Date(rt.Year(), rt.Month(), rt.Day(), 0, 0, 0, 0, time.UTC)
	}
	n.Time = t
	n.Valid = true
	return nil
}

func (n Date) ForceValue() time.Time {
	if !n.Valid {
		return time.Time{}
	}
	return n.Time
}

func (n Date) IsNil() bool {
	return !n.Valid
}
