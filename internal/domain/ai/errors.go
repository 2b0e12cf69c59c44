package ai

import "errors"

var (
	// ErrQuotaExceeded indicates the AI provider returned a quota/limit error (HTTP 429 or similar).
	ErrQuotaExceeded = errors.New("ai quota exceeded")

	// ErrNoClient is returned by providers that have no model backend configured.
	ErrNoClient = errors.New("no ai client configured")

	// ErrOutputValidation means the model kept producing output that does not fit the schema.
	ErrOutputValidation = errors.New("ai output failed schema validation")

	// ErrEmptyResponse means the provider answered without any content.
	ErrEmptyResponse = errors.New("ai returned an empty response")
)
