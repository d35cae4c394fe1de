package compat

const (
	maxUint64 = 1<<64 - 1

	// topBit64 is the most significant bit of a 64-bit word. The divisor is
	// left-justified until this bit is set.
	topBit64 = 1 << 63

	wordBits = 64
)
