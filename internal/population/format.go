package population

import (
	"fmt"
	"strconv"
)

// Format renders a population count in compact form: billions with one
// decimal and a "B" suffix, millions with one decimal and an "M" suffix,
// anything smaller as the plain integer.
func Format(v int64) string {
	switch {
	case v >= 1_000_000_000:
		return fmt.Sprintf("%.1fB", float64(v)/1_000_000_000)
	case v >= 1_000_000:
		return fmt.Sprintf("%.1fM", float64(v)/1_000_000)
	default:
		return strconv.FormatInt(v, 10)
	}
}
