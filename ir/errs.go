package ir

import "errors"

var (
	// ErrUnhashable reports a value that has no identity hash. It is
	// distinct from other failures so callers can fall back to
	// non-hashed handling.
	ErrUnhashable = errors.New("unhashable value")

	// ErrFrozen reports a mutation attempt on a frozen set.
	ErrFrozen = errors.New("set is frozen")
)
