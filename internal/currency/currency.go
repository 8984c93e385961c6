// Package currency renders product prices the way the store displays them:
// Brazilian Real with a pt-BR decimal comma, e.g. "R$ 109,95".
package currency

import (
	"fmt"
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.BrazilianPortuguese)

// Format renders value as a BRL price string. Non-finite values fall back to
// a plain fixed-decimal rendering ("R$ NaN") instead of panicking, so a bad
// price coming from the remote never takes the screen down.
func Format(value float64) string {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return fmt.Sprintf("R$ %.2f", value)
	}
	return printer.Sprintf("R$ %.2f", value)
}
