package engine

import "errors"

// Sentinel errors returned by the engine.
var (
	// ErrEmptyClass is returned when a mask token resolves to zero members.
	// Enumeration over an empty class is impossible, so this is surfaced
	// instead of silently yielding nothing.
	ErrEmptyClass = errors.New("class has no members")

	// ErrInvalidDomain is returned by the entropy math for a possibility
	// count that isn't positive.
	ErrInvalidDomain = errors.New("possibility count must be positive")
)
