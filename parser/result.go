package parser

// Result is the outcome of running a parser at a position: either a match
// carrying a value and the position after the consumed prefix, or no match.
// Failed results carry no payload; backtracking is silent.
type Result[T any] struct {
	Value T
	End   int
	OK    bool
}

// Accept returns a successful result. end is the position immediately after
// the consumed input and must not be smaller than the position the parser
// was invoked at.
func Accept[T any](value T, end int) Result[T] {
	return Result[T]{Value: value, End: end, OK: true}
}

// Reject returns a failed result.
func Reject[T any]() Result[T] {
	return Result[T]{}
}

// Maybe is the value produced by Opt: either the wrapped parser's value, or
// nothing when the wrapped parser did not match.
type Maybe[T any] struct {
	Value T
	OK    bool
}
