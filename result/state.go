package result

// state tags an outcome. It is fixed at construction and both IsSuccess and
// IsFailure derive from it, so the two can never disagree. The zero value is
// stateFailure: an uninitialized Result or Unit reads as an empty failure.
type state uint8

//go:generate go run golang.org/x/tools/cmd/stringer -type=state -output=state_string.go -trimprefix=state
const (
	stateFailure state = iota
	stateSuccess
)
