package compat

// udivmod64 is restoring binary long division using shifts, compares and
// subtracts only. den must not be zero; callers route that case to
// trapZeroDenominator first.
//
// The divisor is left-justified so its top bit is set, then walked back down
// one bit at a time. There are no fast paths for small divisors; the descent
// runs once per bit from the justified position down to bit 0.
func udivmod64(num, den uint64) (quot, rem uint64) {
	var qbit uint64 = 1

	// Left-justify den, counting the shift in qbit:
	for den&topBit64 == 0 {
		den <<= 1
		qbit <<= 1
	}

	for qbit != 0 {
		if den <= num {
			num -= den
			quot += qbit
		}
		den >>= 1
		qbit >>= 1
	}

	return quot, num
}
