package assessment

import "errors"

var (
	// ErrOutOfRange is returned when a score falls outside [0, 1].
	ErrOutOfRange = errors.New("score out of range")

	// ErrInvalidEnum is returned when a categorical value is not part of its set.
	ErrInvalidEnum = errors.New("invalid enum value")

	// ErrMissingField is returned when a required key is absent from model output.
	ErrMissingField = errors.New("missing required field")

	// ErrInvalidRecord wraps struct-level validation failures.
	ErrInvalidRecord = errors.New("invalid assessment record")
)
