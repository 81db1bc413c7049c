package result

import "fmt"

// Unit is the outcome of an operation that returns no value: either a bare
// success or a failure carrying an error. It is its own type rather than a
// Result[struct{}] so value-less call sites read naturally.
type Unit struct {
	err   error
	state state
}

// UnitSuccess returns a successful Unit.
func UnitSuccess() Unit {
	return Unit{state: stateSuccess}
}

// UnitFailure returns a failed Unit carrying err. As with Failure, a nil err
// still yields a failure.
func UnitFailure(err error) Unit {
	return Unit{err: err, state: stateFailure}
}

// IsSuccess reports whether u was built by UnitSuccess.
func (u Unit) IsSuccess() bool {
	return u.state == stateSuccess
}

// IsFailure reports whether u was built by UnitFailure.
func (u Unit) IsFailure() bool {
	return !u.IsSuccess()
}

// Err returns the failure error, nil on a success.
func (u Unit) Err() error {
	return u.err
}

func (u Unit) String() string {
	if u.IsSuccess() {
		return u.state.String() + "()"
	}
	return fmt.Sprintf("%v(%v)", u.state, u.err)
}
