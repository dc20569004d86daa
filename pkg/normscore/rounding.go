package normscore

import (
	"math"
	"strconv"
	"strings"

	"github.com/dkt-index-engine/internal/domain"
)

// RoundHalfUp rounds x to the nearest integer with ties toward +Inf, so
// RoundHalfUp(-2.5) is -2. Non-finite values are returned unchanged.
func RoundHalfUp(x float64) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return x
	}
	r := math.Floor(x)
	if x-r >= 0.5 {
		r++
	}
	return r
}

// RoundTo scales x by 10^digits, rounds half up and scales back.
func RoundTo(x float64, digits int) float64 {
	scale := math.Pow(10, float64(digits))
	return noNegativeZero(RoundHalfUp(x*scale) / scale)
}

// ToFixed formats x with digits decimals, rounding the exact binary value
// to nearest and breaking exact ties away from zero.
func ToFixed(x float64, digits int) string {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return strconv.FormatFloat(x, 'f', -1, 64)
	}

	abs := math.Abs(x)
	if isExactTie(abs, digits) {
		abs = math.Nextafter(abs, math.Inf(1))
	}
	s := strconv.FormatFloat(abs, 'f', digits, 64)
	if x < 0 {
		s = "-" + s
	}
	return s
}

// Fixed rounds x as ToFixed does and parses the result back.
func Fixed(x float64, digits int) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return x
	}
	v, err := strconv.ParseFloat(ToFixed(x, digits), 64)
	if err != nil {
		return math.NaN()
	}
	return noNegativeZero(v)
}

// Round applies the rounding mode of an index definition.
func Round(x float64, digits int, mode domain.RoundingMode) float64 {
	if mode == domain.FIXED_POINT {
		return Fixed(x, digits)
	}
	return RoundTo(x, digits)
}

// isExactTie reports whether the exact decimal expansion of abs ends in a
// single 5 right after the requested number of decimals.
func isExactTie(abs float64, digits int) bool {
	// 1100 fractional digits cover every float64 expansion exactly
	exact := strconv.FormatFloat(abs, 'f', 1100, 64)
	dot := strings.IndexByte(exact, '.')
	if dot < 0 || dot+1+digits >= len(exact) {
		return false
	}
	rest := strings.TrimRight(exact[dot+1+digits:], "0")
	return rest == "5"
}

func noNegativeZero(v float64) float64 {
	if v == 0 {
		return 0
	}
	return v
}
