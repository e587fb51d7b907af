package packed

// pow2Entry is the exact decimal expansion of a negative power of two:
// 2^-exp == numerator / 10^digits, with numerator = 5^exp and digits = exp.
type pow2Entry struct {
	numerator uint64
	digits    int
}

// pow2Decimals maps an exponent in [1, SignificandWidth] to the exact decimal
// expansion of 2^-exponent. Index 0 is unused; a lookup outside the table is
// a decode error, never a panic. The table is immutable package state and
// safe for concurrent reads.
var pow2Decimals = [SignificandWidth + 1]pow2Entry{
	1:  {5, 1},     // 2^-1  = 0.5
	2:  {25, 2},    // 2^-2  = 0.25
	3:  {125, 3},   // 2^-3  = 0.125
	4:  {625, 4},   // 2^-4  = 0.0625
	5:  {3125, 5},  // 2^-5  = 0.03125
	6:  {15625, 6}, // 2^-6  = 0.015625
	7:  {78125, 7}, // 2^-7  = 0.0078125
	8:  {390625, 8},
	9:  {1953125, 9},
	10: {9765625, 10},
	11: {48828125, 11},
	12: {244140625, 12},
	13: {1220703125, 13},
	14: {6103515625, 14},
	15: {30517578125, 15},
	16: {152587890625, 16},
	17: {762939453125, 17},
	18: {3814697265625, 18},
	19: {19073486328125, 19},
	20: {95367431640625, 20},
	21: {476837158203125, 21},
	22: {2384185791015625, 22},
	23: {11920928955078125, 23},
}

// lookupPow2 returns the table entry for the given exponent, or false when
// the exponent falls outside [1, SignificandWidth].
func lookupPow2(exp uint32) (pow2Entry, bool) {
	if exp < 1 || exp > SignificandWidth {
		return pow2Entry{}, false
	}

	return pow2Decimals[exp], true
}
