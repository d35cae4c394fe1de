package compat

// UDivMod64 returns num / den. If rem is not nil, num % den is written to it.
//
// If den == 0, UDivMod64 panics with a DivideError and rem is not written.
// There is no error return; a zero divisor is treated like the hardware
// trap this routine replaces.
func UDivMod64(num, den uint64, rem *uint64) uint64 {
	if den == 0 {
		trapZeroDenominator()
	}

	quot, r := udivmod64(num, den)
	if rem != nil {
		*rem = r
	}
	return quot
}

// UQuoRem64 returns the quotient q and remainder r of num / den. It panics
// with a DivideError if den == 0.
//
//	q = num/den
//	r = num - den*q
//
func UQuoRem64(num, den uint64) (q, r uint64) {
	q = UDivMod64(num, den, &r)
	return q, r
}

// UMod64 returns num % den, discarding the quotient. It does not check den
// itself; a zero divisor panics in UDivMod64.
func UMod64(num, den uint64) uint64 {
	var v uint64
	_ = UDivMod64(num, den, &v)
	return v
}
