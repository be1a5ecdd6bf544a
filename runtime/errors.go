package runtime

import "errors"

var (
	// ErrNotFound is reported when a lookup, update, or delete matches no
	// row.
	ErrNotFound = errors.New("georm: row not found")

	// ErrNotUnique is reported when a one-to-one relation resolves to more
	// than one row.
	ErrNotUnique = errors.New("georm: more than one row matched")
)
