package section

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/fracbits/errs"
	"github.com/arloliu/fracbits/format"
)

func TestHeaderRoundTrip(t *testing.T) {
	h := NewHeader()
	h.Flag.SetCompression(format.CompressionLZ4)
	h.Flag.SetTruncated(true)
	h.ValueCount = 42
	h.PayloadSize = 100
	h.RawSize = 42 * WordSize
	h.Checksum = 0xDEADBEEFCAFEF00D

	data := h.Bytes()
	require.Len(t, data, HeaderSize)

	parsed, err := ParseHeader(data)
	require.NoError(t, err)
	require.Equal(t, *h, parsed)
}

func TestHeaderRoundTripBigEndian(t *testing.T) {
	h := NewHeader()
	h.Flag.WithBigEndian()
	h.ValueCount = 7
	h.PayloadSize = 28
	h.RawSize = 28
	h.Checksum = 12345

	parsed, err := ParseHeader(h.Bytes())
	require.NoError(t, err)
	require.Equal(t, *h, parsed)
	require.False(t, parsed.Flag.IsLittleEndian())
}

func TestParseHeaderTooShort(t *testing.T) {
	_, err := ParseHeader(make([]byte, HeaderSize-1))
	require.ErrorIs(t, err, errs.ErrInvalidHeaderSize)

	h := Header{}
	require.ErrorIs(t, h.Parse(make([]byte, HeaderSize+1)), errs.ErrInvalidHeaderSize)
}

func TestParseHeaderBadMagic(t *testing.T) {
	h := NewHeader()
	data := h.Bytes()
	data[1] = 0x00 // clobber the magic number

	_, err := ParseHeader(data)
	require.ErrorIs(t, err, errs.ErrInvalidMagicNumber)
}
