package blob

import (
	"fmt"
	"iter"

	"github.com/cespare/xxhash/v2"

	"github.com/arloliu/fracbits/compress"
	"github.com/arloliu/fracbits/endian"
	"github.com/arloliu/fracbits/errs"
	"github.com/arloliu/fracbits/format"
	"github.com/arloliu/fracbits/packed"
	"github.com/arloliu/fracbits/section"
)

// Decoder provides read access to a serialized blob.
//
// NewDecoder validates the header, verifies the payload checksum, and
// decompresses the payload once; all accessors afterwards are cheap reads
// and safe for concurrent use.
type Decoder struct {
	header  section.Header
	engine  endian.EndianEngine
	payload []byte // decompressed payload, RawSize bytes
}

// NewDecoder parses and validates the given blob.
//
// Failures: errs.ErrInvalidHeaderSize, errs.ErrInvalidMagicNumber, and
// errs.ErrInvalidHeaderFlags from header parsing; errs.ErrInvalidPayloadSize
// when recorded sizes disagree with the data; errs.ErrChecksumMismatch when
// the payload fails checksum verification; errs.ErrInvalidValueCount when
// the payload length does not match the value count.
func NewDecoder(data []byte) (*Decoder, error) {
	header, err := section.ParseHeader(data)
	if err != nil {
		return nil, err
	}

	wire := data[section.PayloadOffset:]
	if len(wire) != int(header.PayloadSize) {
		return nil, fmt.Errorf("%w: header records %d payload bytes, blob carries %d",
			errs.ErrInvalidPayloadSize, header.PayloadSize, len(wire))
	}

	if sum := xxhash.Sum64(wire); sum != header.Checksum {
		return nil, fmt.Errorf("%w: computed %#x, header records %#x",
			errs.ErrChecksumMismatch, sum, header.Checksum)
	}

	codec, err := compress.CreateCodec(header.Flag.CompressionType(), "value")
	if err != nil {
		return nil, err
	}

	payload, err := codec.Decompress(wire)
	if err != nil {
		return nil, fmt.Errorf("failed to decompress value payload: %w", err)
	}

	if len(payload) != int(header.RawSize) {
		return nil, fmt.Errorf("%w: header records %d raw bytes, payload decompressed to %d",
			errs.ErrInvalidPayloadSize, header.RawSize, len(payload))
	}

	if uint64(header.RawSize) != uint64(header.ValueCount)*section.WordSize {
		return nil, fmt.Errorf("%w: %d values need %d bytes, payload has %d",
			errs.ErrInvalidValueCount, header.ValueCount,
			uint64(header.ValueCount)*section.WordSize, header.RawSize)
	}

	return &Decoder{
		header:  header,
		engine:  header.Flag.GetEndianEngine(),
		payload: payload,
	}, nil
}

// Len returns the number of packed words in the blob.
func (d *Decoder) Len() int {
	return int(d.header.ValueCount)
}

// Truncated reports whether any value in the blob lost precision when it was
// encoded.
func (d *Decoder) Truncated() bool {
	return d.header.Flag.HasTruncated()
}

// CompressionType returns the compression the payload was stored with.
func (d *Decoder) CompressionType() format.CompressionType {
	return d.header.Flag.CompressionType()
}

// At returns the i-th packed word. The second return value is false when i
// is out of range.
func (d *Decoder) At(i int) (packed.Value, bool) {
	if i < 0 || i >= d.Len() {
		return 0, false
	}

	off := i * section.WordSize

	return packed.Value(d.engine.Uint32(d.payload[off : off+section.WordSize])), true
}

// All returns an iterator over all packed words in the blob, in insertion
// order.
func (d *Decoder) All() iter.Seq[packed.Value] {
	return func(yield func(packed.Value) bool) {
		for off := 0; off+section.WordSize <= len(d.payload); off += section.WordSize {
			if !yield(packed.Value(d.engine.Uint32(d.payload[off : off+section.WordSize]))) {
				return
			}
		}
	}
}

// DecimalAt decodes the i-th packed word back to its exact decimal string.
func (d *Decoder) DecimalAt(i int) (string, error) {
	v, ok := d.At(i)
	if !ok {
		return "", fmt.Errorf("value index %d out of range [0, %d)", i, d.Len())
	}

	return v.Decode()
}
