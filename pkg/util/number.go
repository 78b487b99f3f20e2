package util

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ParseFinite parses s as a float64 after trimming whitespace. NaN and
// infinities are rejected.
func ParseFinite(s string) (float64, error) {
	t := strings.TrimSpace(s)
	v, err := strconv.ParseFloat(t, 64)
	if err != nil {
		return 0, fmt.Errorf("could not convert %q to a number", t)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("could not convert %q to a finite number", t)
	}
	return v, nil
}
