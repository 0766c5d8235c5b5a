package tmdb

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a failed catalog request.
type ErrorKind int

const (
	// NetworkFailure: the request never completed (DNS, refused, timeout, cancel).
	NetworkFailure ErrorKind = iota
	// ProviderError: the API answered with a non-success status.
	ProviderError
	// NotFound: 404 for a lookup by id.
	NotFound
	// MalformedPayload: the body could not be decoded.
	MalformedPayload
)

func (k ErrorKind) String() string {
	switch k {
	case NetworkFailure:
		return "network failure"
	case ProviderError:
		return "provider error"
	case NotFound:
		return "not found"
	case MalformedPayload:
		return "malformed payload"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// Sentinels matched by RequestError.Is.
var (
	ErrNetwork          = errors.New("tmdb: network failure")
	ErrProvider         = errors.New("tmdb: provider error")
	ErrNotFound         = errors.New("tmdb: not found")
	ErrMalformedPayload = errors.New("tmdb: malformed payload")

	// ErrEmptyQuery is returned by SearchMovies for a blank query. No request is sent.
	ErrEmptyQuery = errors.New("tmdb: empty search query")
)

// RequestError describes a failed catalog operation.
type RequestError struct {
	Op            string
	Kind          ErrorKind
	StatusCode    int
	StatusMessage string
	Err           error
}

func (e *RequestError) Error() string {
	if e == nil {
		return "tmdb request error"
	}
	msg := fmt.Sprintf("%s: %s", e.Op, e.Kind)
	if e.StatusCode != 0 {
		msg += fmt.Sprintf(" (HTTP %d)", e.StatusCode)
	}
	if e.StatusMessage != "" {
		msg += ": " + e.StatusMessage
	} else if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *RequestError) Unwrap() error {
	return e.Err
}

// Is lets errors.Is match a RequestError against the kind sentinels.
func (e *RequestError) Is(target error) bool {
	switch target {
	case ErrNetwork:
		return e.Kind == NetworkFailure
	case ErrProvider:
		return e.Kind == ProviderError
	case ErrNotFound:
		return e.Kind == NotFound
	case ErrMalformedPayload:
		return e.Kind == MalformedPayload
	}
	return false
}

// KindOf reports the kind of err, and false if err is not a RequestError.
func KindOf(err error) (ErrorKind, bool) {
	var reqErr *RequestError
	if errors.As(err, &reqErr) {
		return reqErr.Kind, true
	}
	return 0, false
}
