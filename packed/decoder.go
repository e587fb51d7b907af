package packed

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/arloliu/fracbits/errs"
)

// Decode reconstructs the exact decimal string of the value.
//
// The significand field is taken as a plain integer coefficient of
// 2^-exponent: the result is the exact decimal expansion of
// significand × 5^exponent / 10^exponent. Because the encoder rounds by
// truncation, decoding a truncated value yields the exact decimal of the
// truncated fraction, not of the original input.
//
// Returns a wrapped errs.ErrUnsupportedExponent when the exponent field
// falls outside [1, SignificandWidth]. Every other bit pattern decodes.
func (v Value) Decode() (string, error) {
	exp := v.Exponent()

	entry, ok := lookupPow2(exp)
	if !ok {
		return "", fmt.Errorf("%w: exponent %d not in [1, %d]",
			errs.ErrUnsupportedExponent, exp, SignificandWidth)
	}

	// The product can reach 5^23 × (2^23 - 1) ≈ 10^23, beyond uint64 range,
	// so the multiplication runs through math/big.
	product := new(big.Int).Mul(
		new(big.Int).SetUint64(entry.numerator),
		new(big.Int).SetUint64(uint64(v.Significand())),
	)

	digits := product.String()
	if pad := entry.digits - len(digits); pad > 0 {
		// Re-grow the leading zeros lost when the product is small, e.g.
		// 2^-5 packs as exponent 5, significand 1 and must render "0.03125".
		digits = strings.Repeat("0", pad) + digits
	}

	return "0." + digits, nil
}
