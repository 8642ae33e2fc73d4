package domain

import "errors"

var (
	// ErrMalformedPuzzle reports input that does not decode to exactly 256
	// valid symbols. It is the only hard failure at construction time.
	ErrMalformedPuzzle = errors.New("malformed puzzle")

	// ErrContradiction reports that a cell lost its last candidate while
	// propagating the givens, i.e. the input puzzle is already unsolvable.
	ErrContradiction = errors.New("contradiction")

	// ErrNoSolution reports that the search exhausted every branch.
	ErrNoSolution = errors.New("no solution")
)
