package tree

import "errors"

var (
	// ErrUnknownTag marks an element tag the grammar does not admit at
	// the position it was found.
	ErrUnknownTag = errors.New("unknown element tag")
)
