/*
Package compat provides freestanding replacements for the 64-bit unsigned
divide and modulo routines a compiler emits calls to on targets with no
native 64-bit divide instruction.

The routines use only shifts, compares, subtracts and bitwise operations.
They never allocate, never perform I/O and hold no state between calls, so
they are safe to call concurrently and from allocation-forbidden contexts.

Simple example:

	var rem uint64
	q := compat.UDivMod64(100, 7, &rem)
	fmt.Println(q, rem)
	// Output: 14 2

The available operations:

	UDivMod64(num, den uint64, rem *uint64) uint64
	UQuoRem64(num, den uint64) (q, r uint64)
	UMod64(num, den uint64) uint64

Dividing by zero does not return an error. Like the hardware instruction
these routines stand in for, it faults: all three panic with a DivideError,
which satisfies runtime.Error and carries the same message as Go's own
integer division by zero.

*/
package compat
