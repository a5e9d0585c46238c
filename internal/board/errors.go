package board

import "errors"

// Board-level errors. The service layer wraps these into AppError codes
// at the API boundary.
var (
	// ErrNotFound indicates the referenced item is absent from every
	// column. A caller seeing this holds a desynchronized view and
	// should reload the board rather than retry.
	ErrNotFound = errors.New("item not found on board")

	// ErrInvalidColumn indicates a target status outside the closed set
	ErrInvalidColumn = errors.New("invalid board column")

	// ErrValidation indicates rejected input, e.g. a whitespace-only comment
	ErrValidation = errors.New("validation failed")

	// ErrMalformedInput indicates the load input cannot form a
	// consistent board (duplicate ids, unknown status). The whole load
	// is rejected; no partial board is constructed.
	ErrMalformedInput = errors.New("malformed board input")
)
