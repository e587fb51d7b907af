package section

import "github.com/arloliu/fracbits/errs"

// Header is the fixed-size header section at the start of a blob of packed
// fraction words.
type Header struct {
	// Flag is the packed field for options, magic number, and compression.
	Flag Flag // byte offset 0-3

	// ValueCount is the number of packed words stored in the blob.
	ValueCount uint32 // byte offset 4-7

	// PayloadSize is the on-wire payload size in bytes, after compression.
	PayloadSize uint32 // byte offset 8-11

	// RawSize is the payload size in bytes before compression. It always
	// equals ValueCount * WordSize.
	RawSize uint32 // byte offset 12-15

	// Checksum is the xxHash64 of the on-wire payload.
	Checksum uint64 // byte offset 16-23
}

// NewHeader creates a Header with default flags. The counts, sizes, and
// checksum are filled in when the encoder finishes.
func NewHeader() *Header {
	return &Header{
		Flag: NewFlag(),
	}
}

// Parse parses the header from a byte slice of exactly HeaderSize bytes.
//
// Returns errs.ErrInvalidHeaderSize on a size mismatch, or the flag
// validation error.
func (h *Header) Parse(data []byte) error {
	if len(data) != HeaderSize {
		return errs.ErrInvalidHeaderSize
	}

	// The Options field itself is always little-endian so the endianness
	// flag can be read before an engine is chosen.
	h.Flag.Options = uint16(data[0]) | (uint16(data[1]) << 8)
	h.Flag.Compression = data[2]
	h.Flag.Reserved = data[3]

	engine := h.Flag.GetEndianEngine()

	h.ValueCount = engine.Uint32(data[4:8])
	h.PayloadSize = engine.Uint32(data[8:12])
	h.RawSize = engine.Uint32(data[12:16])
	h.Checksum = engine.Uint64(data[16:24])

	return h.Flag.Validate()
}

// Bytes serializes the header into a HeaderSize byte slice.
func (h *Header) Bytes() []byte {
	b := make([]byte, HeaderSize)

	b[0] = byte(h.Flag.Options)
	b[1] = byte(h.Flag.Options >> 8)
	b[2] = h.Flag.Compression
	b[3] = h.Flag.Reserved

	engine := h.Flag.GetEndianEngine()

	engine.PutUint32(b[4:8], h.ValueCount)
	engine.PutUint32(b[8:12], h.PayloadSize)
	engine.PutUint32(b[12:16], h.RawSize)
	engine.PutUint64(b[16:24], h.Checksum)

	return b
}

// ParseHeader parses a Header from the start of data.
//
// Returns errs.ErrInvalidHeaderSize when data is shorter than HeaderSize, or
// the flag validation error.
func ParseHeader(data []byte) (Header, error) {
	if len(data) < HeaderSize {
		return Header{}, errs.ErrInvalidHeaderSize
	}

	h := Header{}
	if err := h.Parse(data[:HeaderSize]); err != nil {
		return Header{}, err
	}

	return h, nil
}
