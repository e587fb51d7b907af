// Package errs defines the sentinel errors shared across fracbits packages.
//
// Callers should test errors with errors.Is; most call sites wrap these
// sentinels with additional context via fmt.Errorf("%w: ...").
package errs

import "errors"

// Codec errors returned by the packed value encoder and decoder.
var (
	// ErrInvalidInput indicates the decimal input string failed structural
	// validation or has no fractional part.
	ErrInvalidInput = errors.New("invalid decimal input")

	// ErrPrecisionTruncated indicates the fractional part does not terminate
	// within the significand width and was truncated.
	ErrPrecisionTruncated = errors.New("fraction truncated to significand width")

	// ErrUnsupportedExponent indicates the exponent field of a packed value
	// falls outside the decodable range.
	ErrUnsupportedExponent = errors.New("exponent outside decodable range")
)

// Blob errors returned by the blob encoder and decoder.
var (
	ErrInvalidHeaderSize  = errors.New("invalid blob header size")
	ErrInvalidMagicNumber = errors.New("invalid magic number in blob header")
	ErrInvalidHeaderFlags = errors.New("invalid flags in blob header")
	ErrInvalidPayloadSize = errors.New("payload size mismatch in blob")
	ErrInvalidValueCount  = errors.New("value count mismatch in blob")
	ErrChecksumMismatch   = errors.New("blob payload checksum mismatch")
	ErrEncoderFinished    = errors.New("encoder already finished")
)
