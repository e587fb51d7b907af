// Package fracbits encodes decimal strings of fractional values in the open
// interval (0, 1) into a fixed 32-bit packed representation modeled on IEEE-754
// single precision, and decodes them back to exact decimal strings.
//
// The packed word splits into sign (1 bit, always 0), exponent (8 bits), and
// significand (23 bits). Encoding scans the fraction through repeated binary
// doubling; decoding reconstructs the exact decimal using a precomputed table
// of negative powers of two as decimal fractions (2^-n = 5^n / 10^n), so no
// floating-point arithmetic is involved in either direction.
//
// # Basic Usage
//
// Encoding and decoding a single value:
//
//	v, err := fracbits.Encode("0.625")
//	if err != nil {
//	    return err
//	}
//	s, err := fracbits.Decode(v) // "0.625"
//
// Fractions that do not terminate within 23 binary digits are truncated.
// Encode does this silently; EncodeExact reports it:
//
//	_, err := fracbits.EncodeExact("0.1")
//	// errors.Is(err, errs.ErrPrecisionTruncated) == true
//
// # Blob Storage
//
// Batches of values can be serialized into a checksummed, optionally
// compressed blob:
//
//	encoder, _ := fracbits.NewBlobEncoder()
//	encoder.Add("0.5")
//	encoder.Add("0.625")
//	data, _ := encoder.Finish()
//
//	decoder, _ := fracbits.NewBlobDecoder(data)
//	for v := range decoder.All() {
//	    s, _ := v.Decode()
//	    fmt.Println(s)
//	}
//
// # Package Structure
//
// This package provides convenient top-level wrappers. For fine-grained
// control use the packed, decimal, and blob packages directly.
package fracbits

import (
	"github.com/arloliu/fracbits/blob"
	"github.com/arloliu/fracbits/format"
	"github.com/arloliu/fracbits/packed"
)

var defaultBlobOptions = []blob.EncoderOption{
	blob.WithLittleEndian(),
	blob.WithCompression(format.CompressionNone),
}

// Encode packs the decimal input string into a 32-bit value, silently
// truncating fractions that do not terminate within the significand width.
func Encode(input string) (packed.Value, error) {
	return packed.Encode(input)
}

// EncodeExact packs the decimal input string, reporting truncation as an
// error instead of swallowing it.
func EncodeExact(input string) (packed.Value, error) {
	return packed.EncodeExact(input)
}

// Decode reconstructs the exact decimal string of a packed value.
func Decode(v packed.Value) (string, error) {
	return v.Decode()
}

// NewBlobEncoder creates a blob encoder with default settings: little-endian
// payload, no compression. Options may override the defaults.
func NewBlobEncoder(opts ...blob.EncoderOption) (*blob.Encoder, error) {
	return blob.NewEncoder(append(defaultBlobOptions, opts...)...)
}

// NewBlobDecoder parses and validates a serialized blob.
func NewBlobDecoder(data []byte) (*blob.Decoder, error) {
	return blob.NewDecoder(data)
}
