package packed

import (
	"fmt"

	"github.com/arloliu/fracbits/decimal"
	"github.com/arloliu/fracbits/errs"
	"github.com/arloliu/fracbits/internal/bitops"
)

// Encode parses the decimal input string and packs its fractional part into
// a Value.
//
// Fractions that do not terminate within SignificandWidth binary digits are
// silently truncated; callers that need to detect inexact encodings should
// use EncodeExact or pre-check with a round-trip through Decode.
//
// Returns a wrapped errs.ErrInvalidInput when the input fails structural
// validation or has no fractional part.
func Encode(input string) (Value, error) {
	fp, err := decimal.ParseFraction(input)
	if err != nil {
		return 0, err
	}

	v, _ := FromFixedPoint(fp)

	return v, nil
}

// EncodeExact behaves like Encode but additionally returns a wrapped
// errs.ErrPrecisionTruncated when the fraction does not terminate within
// SignificandWidth binary digits. The returned Value is still the truncated
// encoding in that case.
func EncodeExact(input string) (Value, error) {
	fp, err := decimal.ParseFraction(input)
	if err != nil {
		return 0, err
	}

	v, exact := FromFixedPoint(fp)
	if !exact {
		return v, fmt.Errorf("%w: %q needs more than %d fraction bits",
			errs.ErrPrecisionTruncated, input, SignificandWidth)
	}

	return v, nil
}

// FromFixedPoint packs an exact fixed-point fraction, as produced by
// decimal.ParseFraction, into a Value by repeated binary doubling.
//
// The numerator is treated as a fraction with implicit denominator
// 10^fp.Digits. Each iteration doubles the numerator; when the doubled
// numerator reaches the denominator the current binary digit is 1 and the
// denominator is subtracted, otherwise the digit is 0. The loop stops when
// the remainder hits zero (terminating binary fraction) or after
// SignificandWidth digit positions (truncation).
//
// Digits are produced nearest to the decimal point first and reversed into
// the significand field so the leading digit occupies the highest-value
// position. The exponent field records the 1-indexed position of the last
// digit considered. A zero numerator packs as exponent 1 with significand 0.
//
// The second return value reports exactness: false means the fraction was
// truncated.
func FromFixedPoint(fp decimal.FixedPoint) (Value, bool) {
	edge := pow10(fp.Digits)

	var sig uint32
	var curDig uint32
	curNum := fp.Numerator

	for {
		curNum *= 2
		if curNum >= edge {
			sig = bitops.Set(sig, curDig, true)
			curNum -= edge
		}
		if curNum == 0 {
			break
		}
		if curDig == SignificandWidth-1 {
			// Truncate: the fraction needs more digit positions than the
			// significand field can hold.
			break
		}
		curDig++
	}

	sig = bitops.ReverseLow(sig, curDig+1)

	word := sig
	word |= (curDig + 1) << SignificandWidth
	// Sign bit stays 0: only positive fractions are representable.

	return Value(word), curNum == 0
}

// pow10 returns 10^n for n <= decimal.MaxFractionDigits.
func pow10(n uint32) uint32 {
	edge := uint32(1)
	for range n {
		edge *= 10
	}

	return edge
}
