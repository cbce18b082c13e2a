package calendar

import (
	"math"
	"strconv"
	"strings"
)

// ValidateNumeric rejects NaN, infinities and values with a fractional part.
// funcName and param identify the caller in the returned error.
func ValidateNumeric(funcName, param string, v float64) (int, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) || v != math.Trunc(v) {
		return 0, &InvalidInputTypeError{Func: funcName, Param: param, Expected: "integer", Value: v}
	}
	if v > math.MaxInt32 || v < math.MinInt32 {
		return 0, &InvalidInputTypeError{Func: funcName, Param: param, Expected: "integer in int32 range", Value: v}
	}
	return int(v), nil
}

// ParseNumeric converts untyped input (a query parameter, a CLI argument)
// into an integer argument for funcName. "2016" and "2016.0" are accepted;
// "", "abc", "NaN" and "2016.5" are not.
func ParseNumeric(funcName, param, raw string) (int, error) {
	s := strings.TrimSpace(raw)
	if n, err := strconv.Atoi(s); err == nil {
		return ValidateNumeric(funcName, param, float64(n))
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, &InvalidInputTypeError{Func: funcName, Param: param, Expected: "number", Value: raw}
	}
	return ValidateNumeric(funcName, param, f)
}
