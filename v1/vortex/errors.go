package vortex

import (
	"errors"
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// APIError is returned for errors reported by the Vortex API: classified
// remote failures, both immediately fatal and retry-exhausted.
type APIError struct {
	// Message describes the failed operation, e.g.
	// "Failed to create collection 'docs'" or
	// "Failed to search points in 'docs' after 3 retries".
	Message string

	// StatusCode is the gRPC status code name, e.g. "UNAVAILABLE".
	StatusCode string

	// Details is the human-readable detail text from the server.
	Details string

	cause error
}

func (e *APIError) Error() string {
	s := e.Message
	if e.StatusCode != "" {
		s += fmt.Sprintf(" (Status Code: %s)", e.StatusCode)
	}
	if e.Details != "" {
		s += fmt.Sprintf(" Details: %s", e.Details)
	}
	return s
}

func (e *APIError) Unwrap() error { return e.cause }

// UnexpectedError is returned for any failure that does not carry a
// recognized remote status: programming errors, serialization bugs, or
// unrelated runtime faults. These are never retried.
type UnexpectedError struct {
	Message string
}

func (e *UnexpectedError) Error() string { return e.Message }

// ConnectionError is returned when the client cannot be set up to reach
// the Vortex server.
type ConnectionError struct {
	Message string
	cause   error
}

func (e *ConnectionError) Error() string { return e.Message }

func (e *ConnectionError) Unwrap() error { return e.cause }

// ConfigurationError is returned for invalid client configuration.
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string { return e.Message }

// AsAPIError returns the APIError in err's chain, if any.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	ok := errors.As(err, &apiErr)
	return apiErr, ok
}

// IsUnexpectedError reports whether err's chain contains an UnexpectedError.
func IsUnexpectedError(err error) bool {
	var ue *UnexpectedError
	return errors.As(err, &ue)
}

// newAPIError wraps a gRPC status into an APIError.
func newAPIError(message string, st *status.Status, cause error) *APIError {
	return &APIError{
		Message:    message,
		StatusCode: statusCodeName(st.Code()),
		Details:    st.Message(),
		cause:      cause,
	}
}

// newUnexpectedError wraps a non-status failure.
func newUnexpectedError(operation string, err error) *UnexpectedError {
	return &UnexpectedError{
		Message: fmt.Sprintf("An unexpected error occurred during %s: %v", operation, err),
	}
}

// statusCodeName renders a gRPC code as its canonical UPPER_SNAKE name,
// matching the rendering used across Vortex tooling.
func statusCodeName(c codes.Code) string {
	switch c {
	case codes.OK:
		return "OK"
	case codes.Canceled:
		return "CANCELLED"
	case codes.Unknown:
		return "UNKNOWN"
	case codes.InvalidArgument:
		return "INVALID_ARGUMENT"
	case codes.DeadlineExceeded:
		return "DEADLINE_EXCEEDED"
	case codes.NotFound:
		return "NOT_FOUND"
	case codes.AlreadyExists:
		return "ALREADY_EXISTS"
	case codes.PermissionDenied:
		return "PERMISSION_DENIED"
	case codes.ResourceExhausted:
		return "RESOURCE_EXHAUSTED"
	case codes.FailedPrecondition:
		return "FAILED_PRECONDITION"
	case codes.Aborted:
		return "ABORTED"
	case codes.OutOfRange:
		return "OUT_OF_RANGE"
	case codes.Unimplemented:
		return "UNIMPLEMENTED"
	case codes.Internal:
		return "INTERNAL"
	case codes.Unavailable:
		return "UNAVAILABLE"
	case codes.DataLoss:
		return "DATA_LOSS"
	case codes.Unauthenticated:
		return "UNAUTHENTICATED"
	default:
		return fmt.Sprintf("CODE(%d)", uint32(c))
	}
}
