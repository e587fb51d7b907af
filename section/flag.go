// Package section defines the fixed-size header section of the packed
// fraction word blob format.
package section

import (
	"github.com/arloliu/fracbits/endian"
	"github.com/arloliu/fracbits/errs"
	"github.com/arloliu/fracbits/format"
)

// Flag is the packed field for options, magic number, and compression in
// the blob header.
type Flag struct {
	// Options is a packed field for various options.
	// Bit 0 is the truncation flag: set when at least one value in the blob
	// lost precision during encoding.
	// Bit 1 is the endianness flag: 0 means little-endian, 1 means big-endian.
	// Bits 2-3 are reserved for future use, must be set to 0.
	// Bits 4-15 are the magic number identifying the blob format:
	//   - 0xFB10 (0b1111_1011_0001_0000): packed fraction word blob format v1
	Options uint16

	// Compression is an enum recording the compression applied to the payload.
	Compression uint8

	// Reserved must be zero.
	Reserved uint8
}

var validCompressions = map[uint8]struct{}{
	uint8(format.CompressionNone): {},
	uint8(format.CompressionZstd): {},
	uint8(format.CompressionS2):   {},
	uint8(format.CompressionLZ4):  {},
}

// NewFlag creates a Flag with default settings: magic number set,
// little-endian, no compression, truncation flag clear.
func NewFlag() Flag {
	return Flag{
		Options:     MagicPackedV1Opt,
		Compression: uint8(format.CompressionNone),
	}
}

// HasTruncated returns whether any value in the blob was truncated.
func (f Flag) HasTruncated() bool {
	return (f.Options & TruncatedMask) != 0
}

// SetTruncated sets or clears the truncation flag.
func (f *Flag) SetTruncated(truncated bool) {
	if truncated {
		f.Options |= TruncatedMask
	} else {
		f.Options &^= TruncatedMask
	}
}

// IsLittleEndian returns whether the payload is little-endian.
func (f Flag) IsLittleEndian() bool {
	return (f.Options & EndiannessMask) == 0
}

// WithLittleEndian marks the payload as little-endian.
func (f *Flag) WithLittleEndian() {
	f.Options &^= EndiannessMask
}

// WithBigEndian marks the payload as big-endian.
func (f *Flag) WithBigEndian() {
	f.Options |= EndiannessMask
}

// CompressionType returns the payload compression type.
func (f Flag) CompressionType() format.CompressionType {
	return format.CompressionType(f.Compression)
}

// SetCompression records the payload compression type.
func (f *Flag) SetCompression(compression format.CompressionType) {
	f.Compression = uint8(compression)
}

// GetEndianEngine returns the endian engine matching the endianness flag.
func (f Flag) GetEndianEngine() endian.EndianEngine {
	if f.IsLittleEndian() {
		return endian.GetLittleEndianEngine()
	}

	return endian.GetBigEndianEngine()
}

// Validate checks the magic number, reserved bits, and compression type.
func (f Flag) Validate() error {
	if f.Options&MagicNumberMask != MagicPackedV1Opt {
		return errs.ErrInvalidMagicNumber
	}

	if f.Options&ReservedBitsMask != 0 || f.Reserved != 0 {
		return errs.ErrInvalidHeaderFlags
	}

	if _, ok := validCompressions[f.Compression]; !ok {
		return errs.ErrInvalidHeaderFlags
	}

	return nil
}
