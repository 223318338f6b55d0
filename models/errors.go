package models

import "errors"

var (
	// ErrInvalidArgument reports a required builder argument that is empty
	// or nil. The wrapping error names the offending argument.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrInvalidState reports a builder call that violates a construction
	// invariant, such as setting a second actor on a permission builder.
	ErrInvalidState = errors.New("invalid builder state")
)
