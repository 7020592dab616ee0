package datefmt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatLong(t *testing.T) {
	assert.Equal(t, "5 de marzo del 2024", FormatLong(time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "31 de diciembre del 1999", FormatLong(time.Date(1999, 12, 31, 23, 59, 0, 0, time.UTC)))
	assert.Equal(t, "1 de enero del 2025", FormatLong(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)))
}

func TestFormatShort(t *testing.T) {
	assert.Equal(t, "05/03/2024", FormatShort(time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "31/12/1999", FormatShort(time.Date(1999, 12, 31, 0, 0, 0, 0, time.UTC)))
}

func TestFormatIsZoneNaive(t *testing.T) {
	// late evening in Guayaquil must stay on the same calendar day
	gye := time.FixedZone("ECT", -5*3600)
	d := time.Date(2024, 3, 5, 22, 30, 0, 0, gye)
	assert.Equal(t, "5 de marzo del 2024", FormatLong(d))
	assert.Equal(t, "22:30", FormatClock(d))
}

func TestMonthNames(t *testing.T) {
	seen := map[string]bool{}
	for m := time.January; m <= time.December; m++ {
		name := MonthName(m)
		assert.NotEmpty(t, name)
		seen[name] = true
	}
	assert.Len(t, seen, 12)
	assert.Equal(t, "", MonthName(0))
}
