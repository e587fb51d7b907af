// Package packed implements the 32-bit packed representation of decimal
// fractions in the open interval (0, 1), together with the encode and decode
// operations between it and exact decimal strings.
//
// The layout follows the IEEE-754 single precision field split:
//
//	| sign (bit 31) | exponent (bits 30..23) | significand (bits 22..0) |
//
// but the semantics deliberately diverge from IEEE-754:
//
//   - The sign bit is always 0; negative values are unsupported.
//   - The exponent is the unbiased, 1-indexed position of the fraction bit
//     nearest to the decimal point that the encoder last considered, always
//     in [1, SignificandWidth] for encoder-produced values.
//   - The significand field is interpreted by the decoder as a plain integer
//     coefficient of 2^-exponent, not as a hidden-bit 1.xxx mantissa. The
//     encoder produces bit patterns consistent with that convention.
//
// NaN, infinities, subnormals, and rounding modes do not exist in this
// format. Decoding is decimal-exact because every negative power of two has
// a finite decimal expansion (2^-n = 5^n / 10^n).
package packed

import "fmt"

// Field widths and masks of the packed 32-bit word.
const (
	// SignificandWidth is the number of explicit significand bits. It also
	// bounds the number of fraction bits the encoder emits, so the exponent
	// of an encoder-produced value never exceeds it.
	SignificandWidth = 23

	// ExponentWidth is the number of exponent bits.
	ExponentWidth = 8

	significandMask = uint32(1)<<SignificandWidth - 1
	signMask        = uint32(1) << 31
)

// Value is a packed 32-bit decimal fraction. The zero Value has exponent 0,
// which is outside the decodable range.
type Value uint32

// Exponent returns the 8-bit exponent field.
func (v Value) Exponent() uint32 {
	return (uint32(v) &^ signMask) >> SignificandWidth
}

// Significand returns the 23-bit significand field as an integer.
func (v Value) Significand() uint32 {
	return uint32(v) & significandMask
}

// String returns the decoded decimal string, or a field dump when the value
// does not decode.
func (v Value) String() string {
	s, err := v.Decode()
	if err != nil {
		return fmt.Sprintf("packed.Value(exp=%d, sig=%d)", v.Exponent(), v.Significand())
	}

	return s
}
