package packed

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/fracbits/errs"
)

func TestRoundTripExactFractions(t *testing.T) {
	inputs := []string{
		"0.5",
		"0.25",
		"0.75",
		"0.625",
		"0.875",
		"0.0625",
		"0.03125",
		"0.015625",
		"0.0",
	}

	for _, input := range inputs {
		v, err := Encode(input)
		require.NoError(t, err, "input %q", input)

		decoded, err := v.Decode()
		require.NoError(t, err, "input %q", input)
		require.Equal(t, input, decoded, "input %q", input)
	}
}

func TestRoundTripNormalizesTrailingZeros(t *testing.T) {
	v, err := Encode("0.50")
	require.NoError(t, err)

	decoded, err := v.Decode()
	require.NoError(t, err)
	require.Equal(t, "0.5", decoded)
}

func TestDecodeTruncatedFraction(t *testing.T) {
	v, err := Encode("0.1")
	require.NoError(t, err)

	// The exponent stays decodable even though precision was lost.
	require.GreaterOrEqual(t, v.Exponent(), uint32(1))
	require.LessOrEqual(t, v.Exponent(), uint32(SignificandWidth))

	decoded, err := v.Decode()
	require.NoError(t, err)
	require.NotEqual(t, "0.1", decoded)
	require.True(t, strings.HasPrefix(decoded, "0.0999999"), "decoded %q", decoded)
}

func TestDecodeUnsupportedExponent(t *testing.T) {
	values := []Value{
		0,                                // exponent 0, reserved
		Value(24 << SignificandWidth),    // one past the table
		Value(255<<SignificandWidth | 1), // maximum exponent field
	}

	for _, v := range values {
		_, err := v.Decode()
		require.Error(t, err, "value %#x", uint32(v))
		require.ErrorIs(t, err, errs.ErrUnsupportedExponent, "value %#x", uint32(v))
	}
}

func TestDecodeIgnoresSignBit(t *testing.T) {
	// The sign bit is cleared before the exponent is extracted, so a stray
	// sign bit does not shift the exponent out of range.
	v := Value(1<<31 | 1<<SignificandWidth | 1)

	decoded, err := v.Decode()
	require.NoError(t, err)
	require.Equal(t, "0.5", decoded)
}

func TestDecodeZero(t *testing.T) {
	v, err := Encode("0.0")
	require.NoError(t, err)

	decoded, err := v.Decode()
	require.NoError(t, err)
	require.Equal(t, "0.0", decoded)
}

func TestValueString(t *testing.T) {
	v, err := Encode("0.625")
	require.NoError(t, err)
	require.Equal(t, "0.625", v.String())

	require.Equal(t, "packed.Value(exp=0, sig=7)", Value(7).String())
}
