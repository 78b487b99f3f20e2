package pricing

import (
	"math"

	"github.com/dustin/go-humanize"
)

// FormatUSD renders v as dollars with thousands separators and cents,
// e.g. 585000 -> "$585,000.00".
func FormatUSD(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "$0.00"
	}
	if v < 0 {
		return "-$" + humanize.FormatFloat("#,###.##", -v)
	}
	return "$" + humanize.FormatFloat("#,###.##", v)
}
