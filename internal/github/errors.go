package github

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies why a lookup failed.
type Kind int

const (
	KindUnexpected Kind = iota
	KindNotFound
	KindForbidden
	KindHTTPStatus
	KindNetwork
)

// String returns the string representation of a kind
func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not found"
	case KindForbidden:
		return "forbidden"
	case KindHTTPStatus:
		return "http status"
	case KindNetwork:
		return "network"
	default:
		return "unexpected"
	}
}

var (
	ErrNotFound  = errors.New("user not found")
	ErrForbidden = errors.New("rate limited or forbidden")
)

// LookupError describes a failed GetUser call.
type LookupError struct {
	Kind       Kind
	Username   string
	StatusCode int    // set for HTTP status kinds
	Reason     string // status text or transport cause
	Err        error

	// Populated from the response headers on 403.
	RateLimitRemaining string
	RateLimitReset     string
}

func (e *LookupError) Error() string {
	switch e.Kind {
	case KindNotFound:
		return fmt.Sprintf("user %q not found", e.Username)
	case KindForbidden:
		return "rate limit exceeded or access forbidden"
	case KindHTTPStatus:
		return fmt.Sprintf("API returned status %d: %s", e.StatusCode, e.Reason)
	case KindNetwork:
		return fmt.Sprintf("request failed: %s", e.Reason)
	default:
		if e.Err != nil {
			return e.Err.Error()
		}
		return "unexpected error"
	}
}

func (e *LookupError) Unwrap() error {
	return e.Err
}

// Is reports whether target is the sentinel for this error's kind.
func (e *LookupError) Is(target error) bool {
	switch target {
	case ErrNotFound:
		return e.Kind == KindNotFound
	case ErrForbidden:
		return e.Kind == KindForbidden
	}
	return false
}

// KindOf returns the Kind of err, or KindUnexpected when err is not a *LookupError.
func KindOf(err error) Kind {
	var lerr *LookupError
	if errors.As(err, &lerr) {
		return lerr.Kind
	}
	return KindUnexpected
}

func statusError(username string, resp *http.Response) *LookupError {
	lerr := &LookupError{
		Kind:       KindHTTPStatus,
		Username:   username,
		StatusCode: resp.StatusCode,
		Reason:     http.StatusText(resp.StatusCode),
	}
	switch resp.StatusCode {
	case http.StatusNotFound:
		lerr.Kind = KindNotFound
	case http.StatusForbidden:
		lerr.Kind = KindForbidden
		lerr.RateLimitRemaining = resp.Header.Get("X-RateLimit-Remaining")
		lerr.RateLimitReset = resp.Header.Get("X-RateLimit-Reset")
	}
	return lerr
}
