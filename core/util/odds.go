package util

import (
	"strconv"
)

// OddsDecimalPlaces is the precision the program uses when odds are
// serialized into seed bytes. Any other rounding breaks address agreement
// with the program.
const OddsDecimalPlaces = 3

// FormatOdds renders odds as fixed 3-decimal-place text, the canonical form
// used in matching-pool seeds (e.g. 1.5 -> "1.500").
func FormatOdds(odds float64) string {
	return strconv.FormatFloat(odds, 'f', OddsDecimalPlaces, 64)
}
