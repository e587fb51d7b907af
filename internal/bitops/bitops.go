// Package bitops provides the single-bit and bit-reversal primitives used by
// the packed value encoder.
package bitops

import "math/bits"

// Set returns word with bit n (0-indexed from the least significant bit) set
// when on is true, or cleared when on is false. All other bits are unchanged.
// The caller guarantees n < 32.
func Set(word uint32, n uint32, on bool) uint32 {
	if on {
		return word | (1 << n)
	}

	return word &^ (1 << n)
}

// Get reports whether bit n (0-indexed from the least significant bit) of
// word is set. The caller guarantees n < 32.
func Get(word uint32, n uint32) bool {
	return word&(1<<n) != 0
}

// ReverseLow reverses the order of the count lowest bits of word: bit 0 swaps
// with bit count-1, bit 1 with bit count-2, and so on. Bits at or above
// position count are discarded; the result contains only the reversed low
// bits, starting at bit 0.
//
// The encoder produces fraction bits nearest to the decimal point first, but
// the packed format stores the bit closest to the decimal point in the
// highest-value position of the significand field. A single reversal reorders
// the emitted run without recomputation.
func ReverseLow(word uint32, count uint32) uint32 {
	if count == 0 {
		return 0
	}

	// Shifting the low bits to the top first makes the full-word reversal
	// land them back at bit 0 in reversed order, dropping everything else.
	return bits.Reverse32(word << (32 - count))
}
