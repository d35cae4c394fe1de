package compat

// DivideError is the panic value raised when any routine in this package is
// asked to divide by zero. It satisfies runtime.Error, and its message
// matches the runtime's, so code that recovers from integer division faults
// handles it the same way as a builtin x / 0.
type DivideError struct{}

func (DivideError) Error() string { return "runtime error: integer divide by zero" }

// RuntimeError marks DivideError as a runtime.Error.
func (DivideError) RuntimeError() {}

// trapZeroDenominator is the only fault path in the package. It never
// returns.
//
// Nothing is logged before the panic: these routines may be called from
// contexts where I/O is not allowed.
//
//go:noinline
func trapZeroDenominator() {
	panic(DivideError{})
}
