package gemini

import (
	"errors"
	"fmt"
	"strings"

	"google.golang.org/api/googleapi"
)

// Gateway failures collapse into a small set of user-facing
// categories. Everything unrecognized passes through as a
// TransportError with the provider's message intact.
var (
	ErrMissingCredential = errors.New("API key is missing: set GEMINI_API_KEY")
	ErrPermissionDenied  = errors.New("the API key lacks permission for this model")
	ErrRateLimited       = errors.New("rate limit exceeded, wait a moment and try again")
	ErrEmptyResponse     = errors.New("the model did not return any text output")
)

// TransportError wraps an unclassified provider failure.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("request failed: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// classify maps a provider error onto the gateway taxonomy. Structured
// googleapi status codes are authoritative; substring matching on the
// message is kept only as a fallback for opaque transport errors.
func classify(err error) error {
	if err == nil {
		return nil
	}

	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case 403:
			return ErrPermissionDenied
		case 429:
			return ErrRateLimited
		}
		return &TransportError{Err: err}
	}

	msg := err.Error()
	switch {
	case strings.Contains(msg, "403"):
		return ErrPermissionDenied
	case strings.Contains(msg, "429"):
		return ErrRateLimited
	}
	return &TransportError{Err: err}
}
