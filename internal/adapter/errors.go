package adapter

import "errors"

// Sentinel transport errors. mapHTTPError wraps every non-2xx response in an
// [*APIError] whose Unwrap yields one of these, so callers can branch with
// errors.Is without caring about the exact status code.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrValidation          = errors.New("validation failed")
	ErrInternalServerError = errors.New("internal server error")

	// ErrServerUnreachable marks transport-level failures: DNS errors,
	// refused connections, timeouts. No HTTP response was received.
	ErrServerUnreachable = errors.New("failed to connect to server")

	// ErrInvalidResponse marks a backend contract violation: a 2xx
	// response whose body fails the expected shape check (for example a
	// generation response without a cards array).
	ErrInvalidResponse = errors.New("invalid response format from server")
)

// APIError is a backend rejection: a non-2xx response whose body has been
// normalized into a single user-displayable message.
type APIError struct {
	// StatusCode is the HTTP status of the rejected request.
	StatusCode int

	// Message is the normalized human-readable error text.
	Message string
}

// Error returns the normalized message. It deliberately omits the status
// code: the message is shown to users as-is.
func (e *APIError) Error() string {
	return e.Message
}

// Unwrap maps the status code to the matching sentinel error so that
// errors.Is(err, adapter.ErrUnauthorized) and friends work on wrapped
// API errors. Statuses without a sentinel unwrap to nil.
func (e *APIError) Unwrap() error {
	switch {
	case e.StatusCode == 400:
		return ErrBadRequest
	case e.StatusCode == 401:
		return ErrUnauthorized
	case e.StatusCode == 403:
		return ErrForbidden
	case e.StatusCode == 404:
		return ErrNotFound
	case e.StatusCode == 409:
		return ErrConflict
	case e.StatusCode == 422:
		return ErrValidation
	case e.StatusCode >= 500:
		return ErrInternalServerError
	default:
		return nil
	}
}
