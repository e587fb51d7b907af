package section

// Bit masks of the packed Options field in the blob flag.
const (
	TruncatedMask    = 0x0001 // bit 0: set when any packed value in the blob was truncated
	EndiannessMask   = 0x0002 // bit 1: 0 = little-endian payload, 1 = big-endian
	ReservedBitsMask = 0x000C // bits 2-3: reserved, must be zero
	MagicNumberMask  = 0xFFF0 // bits 4-15: magic number

	// MagicPackedV1Opt is the version 1 magic number for the packed fraction
	// word blob format.
	MagicPackedV1Opt = 0xFB10
)

// Sizes and offsets of the blob layout.
const (
	HeaderSize    = 24         // fixed header size in bytes
	WordSize      = 4          // size of one packed fraction word in bytes
	PayloadOffset = HeaderSize // byte offset where the payload starts
)
