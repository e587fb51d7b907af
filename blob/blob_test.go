package blob

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/fracbits/errs"
	"github.com/arloliu/fracbits/format"
	"github.com/arloliu/fracbits/packed"
	"github.com/arloliu/fracbits/section"
)

var exactInputs = []string{"0.5", "0.25", "0.75", "0.625", "0.03125", "0.875"}

func encodeBlob(t *testing.T, inputs []string, opts ...EncoderOption) []byte {
	t.Helper()

	encoder, err := NewEncoder(opts...)
	require.NoError(t, err)

	for _, input := range inputs {
		require.NoError(t, encoder.Add(input), "input %q", input)
	}
	require.Equal(t, len(inputs), encoder.Len())

	data, err := encoder.Finish()
	require.NoError(t, err)

	return data
}

func TestBlobRoundTripAllCompressions(t *testing.T) {
	types := []format.CompressionType{
		format.CompressionNone,
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	}

	// A payload large enough to compress keeps every codec on its own path
	// instead of the raw-storage fallback for incompressible data.
	inputs := make([]string, 0, 8*len(exactInputs))
	for range 8 {
		inputs = append(inputs, exactInputs...)
	}

	for _, ct := range types {
		data := encodeBlob(t, inputs, WithCompression(ct))

		decoder, err := NewDecoder(data)
		require.NoError(t, err, "compression %s", ct)
		require.Equal(t, len(inputs), decoder.Len(), "compression %s", ct)
		require.Equal(t, ct, decoder.CompressionType(), "compression %s", ct)
		require.False(t, decoder.Truncated(), "compression %s", ct)

		for i, input := range inputs {
			decoded, err := decoder.DecimalAt(i)
			require.NoError(t, err, "compression %s index %d", ct, i)
			require.Equal(t, input, decoded, "compression %s index %d", ct, i)
		}
	}
}

func TestBlobLZ4SmallPayload(t *testing.T) {
	// Tiny payloads may not shrink under LZ4 block compression; whether the
	// codec or the raw-storage fallback kicks in, the round trip must hold.
	data := encodeBlob(t, exactInputs, WithCompression(format.CompressionLZ4))

	decoder, err := NewDecoder(data)
	require.NoError(t, err)
	require.Equal(t, len(exactInputs), decoder.Len())

	for i, input := range exactInputs {
		decoded, err := decoder.DecimalAt(i)
		require.NoError(t, err)
		require.Equal(t, input, decoded, "index %d", i)
	}
}

func TestBlobRoundTripBigEndian(t *testing.T) {
	data := encodeBlob(t, exactInputs, WithBigEndian())

	decoder, err := NewDecoder(data)
	require.NoError(t, err)

	for i, input := range exactInputs {
		decoded, err := decoder.DecimalAt(i)
		require.NoError(t, err)
		require.Equal(t, input, decoded, "index %d", i)
	}
}

func TestBlobAll(t *testing.T) {
	data := encodeBlob(t, exactInputs)

	decoder, err := NewDecoder(data)
	require.NoError(t, err)

	var got []packed.Value
	for v := range decoder.All() {
		got = append(got, v)
	}
	require.Len(t, got, len(exactInputs))

	for i, v := range got {
		at, ok := decoder.At(i)
		require.True(t, ok)
		require.Equal(t, at, v)
	}

	// Early termination must not panic or overrun.
	for range decoder.All() {
		break
	}
}

func TestBlobTruncationFlag(t *testing.T) {
	data := encodeBlob(t, []string{"0.5", "0.1"})

	decoder, err := NewDecoder(data)
	require.NoError(t, err)
	require.True(t, decoder.Truncated())

	// The truncated value still decodes, to its truncated decimal.
	decoded, err := decoder.DecimalAt(1)
	require.NoError(t, err)
	require.NotEqual(t, "0.1", decoded)
}

func TestBlobEmpty(t *testing.T) {
	data := encodeBlob(t, nil)
	require.Len(t, data, section.HeaderSize)

	decoder, err := NewDecoder(data)
	require.NoError(t, err)
	require.Zero(t, decoder.Len())

	_, ok := decoder.At(0)
	require.False(t, ok)
}

func TestEncoderAddValue(t *testing.T) {
	v, err := packed.Encode("0.625")
	require.NoError(t, err)

	encoder, err := NewEncoder()
	require.NoError(t, err)
	require.NoError(t, encoder.AddValue(v))

	data, err := encoder.Finish()
	require.NoError(t, err)

	decoder, err := NewDecoder(data)
	require.NoError(t, err)

	got, ok := decoder.At(0)
	require.True(t, ok)
	require.Equal(t, v, got)
}

func TestEncoderInvalidInput(t *testing.T) {
	encoder, err := NewEncoder()
	require.NoError(t, err)

	require.ErrorIs(t, encoder.Add("0.034.0"), errs.ErrInvalidInput)
	require.ErrorIs(t, encoder.Add("3300"), errs.ErrInvalidInput)
	require.Zero(t, encoder.Len())
}

func TestEncoderFinishedGuards(t *testing.T) {
	encoder, err := NewEncoder()
	require.NoError(t, err)
	require.NoError(t, encoder.Add("0.5"))

	_, err = encoder.Finish()
	require.NoError(t, err)

	require.ErrorIs(t, encoder.Add("0.5"), errs.ErrEncoderFinished)
	require.ErrorIs(t, encoder.AddValue(0), errs.ErrEncoderFinished)

	_, err = encoder.Finish()
	require.ErrorIs(t, err, errs.ErrEncoderFinished)
}

func TestNewEncoderInvalidCompression(t *testing.T) {
	_, err := NewEncoder(WithCompression(format.CompressionType(0xFF)))
	require.Error(t, err)
}

func TestDecoderDetectsCorruption(t *testing.T) {
	data := encodeBlob(t, exactInputs)

	// Flip a payload byte: the checksum no longer matches.
	corrupt := append([]byte(nil), data...)
	corrupt[section.HeaderSize] ^= 0xFF
	_, err := NewDecoder(corrupt)
	require.ErrorIs(t, err, errs.ErrChecksumMismatch)

	// Drop payload bytes: the recorded payload size no longer matches.
	_, err = NewDecoder(data[:len(data)-1])
	require.ErrorIs(t, err, errs.ErrInvalidPayloadSize)

	// Tamper with the value count: raw size and count disagree.
	tampered := append([]byte(nil), data...)
	tampered[4]++
	_, err = NewDecoder(tampered)
	require.ErrorIs(t, err, errs.ErrInvalidValueCount)
}

func TestDecoderRejectsShortData(t *testing.T) {
	_, err := NewDecoder(nil)
	require.ErrorIs(t, err, errs.ErrInvalidHeaderSize)

	_, err = NewDecoder(make([]byte, section.HeaderSize-1))
	require.ErrorIs(t, err, errs.ErrInvalidHeaderSize)
}

func TestDecimalAtOutOfRange(t *testing.T) {
	data := encodeBlob(t, []string{"0.5"})

	decoder, err := NewDecoder(data)
	require.NoError(t, err)

	_, err = decoder.DecimalAt(1)
	require.Error(t, err)
	_, err = decoder.DecimalAt(-1)
	require.Error(t, err)
}
