// Package decimal validates decimal strings and reduces their fractional
// part to an exact fixed-point pair for the packed value encoder.
package decimal

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/arloliu/fracbits/errs"
)

// MaxFractionDigits is the maximum number of fractional digits accepted by
// ParseFraction. It keeps the numerator, and the doubled numerator inside the
// encoder loop, within uint32 range.
const MaxFractionDigits = 9

// FixedPoint is the exact rational Numerator / 10^Digits representing the
// fractional part of a decimal string.
//
// Leading zeros of the fraction are preserved positionally: "0.0150" yields
// {Digits: 4, Numerator: 150}.
type FixedPoint struct {
	Digits    uint32
	Numerator uint32
}

// Validate reports whether s is composed only of ASCII decimal digits and at
// most one '.' separator.
//
// This is a structural check only. It does not enforce magnitude: "3300"
// passes even though values >= 1 are unsupported downstream, and the
// fractional part is not required to be present.
func Validate(s string) bool {
	dots := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '.' {
			dots++
			continue
		}
		if c < '0' || c > '9' {
			return false
		}
	}

	return dots <= 1
}

// ParseFraction extracts the fractional part of s as an exact fixed-point
// pair. The string must pass Validate and contain exactly one '.' followed by
// 1 to MaxFractionDigits digits; any digits before the '.' are ignored.
//
// Failures wrap errs.ErrInvalidInput.
func ParseFraction(s string) (FixedPoint, error) {
	if !Validate(s) {
		return FixedPoint{}, fmt.Errorf("%w: %q is not a decimal string", errs.ErrInvalidInput, s)
	}

	dot := strings.IndexByte(s, '.')
	if dot < 0 {
		return FixedPoint{}, fmt.Errorf("%w: %q has no fractional part", errs.ErrInvalidInput, s)
	}

	frac := s[dot+1:]
	if len(frac) == 0 {
		return FixedPoint{}, fmt.Errorf("%w: %q has no digits after the point", errs.ErrInvalidInput, s)
	}
	if len(frac) > MaxFractionDigits {
		return FixedPoint{}, fmt.Errorf("%w: %q has more than %d fractional digits",
			errs.ErrInvalidInput, s, MaxFractionDigits)
	}

	num, err := strconv.ParseUint(frac, 10, 32)
	if err != nil {
		return FixedPoint{}, fmt.Errorf("%w: %q: %v", errs.ErrInvalidInput, s, err)
	}

	return FixedPoint{
		Digits:    uint32(len(frac)),
		Numerator: uint32(num),
	}, nil
}
