package result

// ternary is a grammar sugar function for the ternary operator in other
// languages. Both branches are already evaluated by the time it runs.
func ternary[T any](condition bool, forTrue, forFalse T) T {
	if condition {
		return forTrue
	} else {
		return forFalse
	}
}
