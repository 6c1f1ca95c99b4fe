package calculator

import (
	"errors"
	"math"
	"strconv"
)

// 2^63, the first magnitude an int64 cannot hold
const int64Limit = 1 << 63

// FormatNumber renders a result for the display. Integral values print without a
// fractional part; everything else uses the shortest decimal that round-trips.
func FormatNumber(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	}
	if math.Trunc(v) == v && math.Abs(v) < int64Limit {
		return strconv.FormatInt(int64(v), 10)
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// parseDisplay parses display text. Literals too large for float64 parse to ±Inf
// instead of failing, leaving the overflow decision to the caller.
func parseDisplay(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return v, nil
		}
		return 0, err
	}
	return v, nil
}
