// Package numwords spells small cardinal numbers in Spanish, in the form used
// on clinical documents ("24 (veinte y cuatro) horas").
package numwords

import "strconv"

var units = [...]string{
	"", "uno", "dos", "tres", "cuatro", "cinco", "seis", "siete", "ocho", "nueve",
	"diez", "once", "doce", "trece", "catorce", "quince",
	"dieciséis", "diecisiete", "dieciocho", "diecinueve", "veinte",
}

// indexed by n/10
var tens = [...]string{
	"", "", "veinte", "treinta", "cuarenta", "cincuenta",
	"sesenta", "setenta", "ochenta", "noventa",
}

// Words returns the Spanish word form of n.
// 0 yields "". 21..99 are composed as tens + " y " + ones.
// Values outside 0..99 fall back to the decimal numeral.
func Words(n int) string {
	switch {
	case n < 0 || n > 99:
		return strconv.Itoa(n)
	case n <= 20:
		return units[n]
	}
	t, u := n/10, n%10
	if u == 0 {
		return tens[t]
	}
	return tens[t] + " y " + units[u]
}

// WithNumeral renders "n (words)", or the bare numeral when there are no words.
func WithNumeral(n int) string {
	w := Words(n)
	num := strconv.Itoa(n)
	if w == "" || w == num {
		return num
	}
	return num + " (" + w + ")"
}
