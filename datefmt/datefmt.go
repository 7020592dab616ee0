// Package datefmt formats calendar dates for Spanish clinical documents.
// Only the calendar fields of the given value are read; no zone conversion happens.
package datefmt

import (
	"fmt"
	"time"
)

var months = [12]string{
	"enero", "febrero", "marzo", "abril", "mayo", "junio",
	"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
}

// MonthName returns the lower-case Spanish month name.
func MonthName(m time.Month) string {
	if m < time.January || m > time.December {
		return ""
	}
	return months[m-1]
}

// FormatLong gives "5 de marzo del 2024".
func FormatLong(t time.Time) string {
	return fmt.Sprintf("%d de %s del %d", t.Day(), MonthName(t.Month()), t.Year())
}

// FormatShort gives "05/03/2024".
func FormatShort(t time.Time) string {
	return fmt.Sprintf("%02d/%02d/%04d", t.Day(), int(t.Month()), t.Year())
}

// FormatClock gives "08:05".
func FormatClock(t time.Time) string {
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}
