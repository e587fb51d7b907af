// Package blob packs sequences of packed fraction words into a checksummed,
// optionally compressed binary blob, and reads them back.
//
// A blob is a fixed 24-byte header (see the section package) followed by the
// payload: one 32-bit word per value in the configured byte order, compressed
// as a whole with the configured codec. The header carries an xxHash64
// checksum of the on-wire payload so corruption is detected before decoding.
package blob

import (
	"fmt"

	"github.com/cespare/xxhash/v2"

	"github.com/arloliu/fracbits/compress"
	"github.com/arloliu/fracbits/decimal"
	"github.com/arloliu/fracbits/endian"
	"github.com/arloliu/fracbits/errs"
	"github.com/arloliu/fracbits/format"
	"github.com/arloliu/fracbits/internal/options"
	"github.com/arloliu/fracbits/internal/pool"
	"github.com/arloliu/fracbits/packed"
	"github.com/arloliu/fracbits/section"
)

// EncoderOption configures an Encoder.
type EncoderOption = options.Option[*Encoder]

// WithCompression selects the payload compression codec.
func WithCompression(compressionType format.CompressionType) EncoderOption {
	return options.New(func(e *Encoder) error {
		if _, err := compress.CreateCodec(compressionType, "value"); err != nil {
			return err
		}
		e.header.Flag.SetCompression(compressionType)

		return nil
	})
}

// WithLittleEndian encodes the payload in little-endian byte order, the
// default.
func WithLittleEndian() EncoderOption {
	return options.NoError(func(e *Encoder) {
		e.header.Flag.WithLittleEndian()
	})
}

// WithBigEndian encodes the payload in big-endian byte order.
func WithBigEndian() EncoderOption {
	return options.NoError(func(e *Encoder) {
		e.header.Flag.WithBigEndian()
	})
}

// Encoder accumulates packed fraction words and serializes them as a blob.
//
// The Encoder is not thread-safe and not reusable: after Finish, a new
// Encoder must be created.
type Encoder struct {
	header *section.Header
	engine endian.EndianEngine
	buf    *pool.ByteBuffer

	count    int
	finished bool
}

// NewEncoder creates an Encoder configured by the given options.
func NewEncoder(opts ...EncoderOption) (*Encoder, error) {
	e := &Encoder{
		header: section.NewHeader(),
		buf:    pool.GetBlobBuffer(),
	}

	if err := options.Apply(e, opts...); err != nil {
		pool.PutBlobBuffer(e.buf)
		return nil, err
	}

	e.engine = e.header.Flag.GetEndianEngine()

	return e, nil
}

// Add parses the decimal input string, packs it, and appends the packed word
// to the blob. When the value loses precision to truncation, the blob's
// truncation flag is set; encoding still succeeds.
//
// Returns a wrapped errs.ErrInvalidInput for malformed input, or
// errs.ErrEncoderFinished after Finish.
func (e *Encoder) Add(input string) error {
	if e.finished {
		return errs.ErrEncoderFinished
	}

	fp, err := decimal.ParseFraction(input)
	if err != nil {
		return err
	}

	v, exact := packed.FromFixedPoint(fp)
	if !exact {
		e.header.Flag.SetTruncated(true)
	}

	e.appendWord(v)

	return nil
}

// AddValue appends an already-packed word to the blob. The truncation flag
// is left untouched: exactness of caller-built values is unknown here.
func (e *Encoder) AddValue(v packed.Value) error {
	if e.finished {
		return errs.ErrEncoderFinished
	}

	e.appendWord(v)

	return nil
}

// Len returns the number of words added so far.
func (e *Encoder) Len() int {
	return e.count
}

// Finish compresses the payload, fills in the header, and returns the
// serialized blob. The Encoder cannot be used afterwards.
func (e *Encoder) Finish() ([]byte, error) {
	if e.finished {
		return nil, errs.ErrEncoderFinished
	}
	e.finished = true

	defer func() {
		pool.PutBlobBuffer(e.buf)
		e.buf = nil
	}()

	codec, err := compress.CreateCodec(e.header.Flag.CompressionType(), "value")
	if err != nil {
		return nil, err
	}

	raw := e.buf.Bytes()
	payload, err := codec.Compress(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to compress value payload: %w", err)
	}

	if len(payload) == 0 && len(raw) > 0 {
		// The LZ4 block codec signals an incompressible payload with empty
		// output. Store such payloads raw and record that in the flag so the
		// decoder picks the matching codec.
		payload = raw
		e.header.Flag.SetCompression(format.CompressionNone)
	}

	e.header.ValueCount = uint32(e.count)       //nolint: gosec
	e.header.RawSize = uint32(len(raw))         //nolint: gosec
	e.header.PayloadSize = uint32(len(payload)) //nolint: gosec
	e.header.Checksum = xxhash.Sum64(payload)

	out := make([]byte, 0, section.HeaderSize+len(payload))
	out = append(out, e.header.Bytes()...)
	out = append(out, payload...)

	return out, nil
}

func (e *Encoder) appendWord(v packed.Value) {
	e.buf.B = e.engine.AppendUint32(e.buf.B, uint32(v))
	e.count++
}
