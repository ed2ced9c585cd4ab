package api

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Kind classifies a failure.
type Kind int

const (
	KindInvalidArgument    Kind = iota + 1 // local validation failed, nothing was sent
	KindInvalidCredential                  // token missing or malformed at construction
	KindTimeout                            // call did not resolve within its bound
	KindTransportError                     // no response was obtained
	KindRequestRejected                    // remote 4xx
	KindServiceUnavailable                 // remote 5xx
	KindDecodeError                        // 2xx body did not match the operation's shape
	KindUnknownOperation                   // operation name is not in the catalog
)

func (k Kind) String() string {
	switch k {
	case KindInvalidArgument:
		return "invalid argument"
	case KindInvalidCredential:
		return "invalid credential"
	case KindTimeout:
		return "timeout"
	case KindTransportError:
		return "transport error"
	case KindRequestRejected:
		return "request rejected"
	case KindServiceUnavailable:
		return "service unavailable"
	case KindDecodeError:
		return "decode error"
	case KindUnknownOperation:
		return "unknown operation"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Error is the single error type returned by the client.
type Error struct {
	Kind        Kind
	Operation   string // catalog operation, empty for construction errors
	Status      int    // HTTP status, 0 if no response
	Code        string // remote error code, verbatim
	Message     string // remote or local message, verbatim
	Description string // remote error description, verbatim
	TrackingID  string // x-tracking-id response header
	Body        []byte // raw response body for rejected/unavailable/undecodable responses
	Cause       error
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString("tinvest")
	if e.Operation != "" {
		b.WriteString(": ")
		b.WriteString(e.Operation)
	}
	b.WriteString(": ")
	b.WriteString(e.Kind.String())
	if e.Status != 0 {
		fmt.Fprintf(&b, " (http %d", e.Status)
		if e.Code != "" {
			fmt.Fprintf(&b, ", code %s", e.Code)
		}
		b.WriteString(")")
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	if e.Description != "" {
		fmt.Fprintf(&b, " [%s]", e.Description)
	}
	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}
	return b.String()
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Is matches the kind sentinels below, so errors.Is(err, api.ErrTimeout)
// holds for any timeout regardless of operation or cause.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.isSentinel() && t.Kind == e.Kind
}

func (e *Error) isSentinel() bool {
	return e.Operation == "" && e.Status == 0 && e.Code == "" && e.Message == "" &&
		e.Description == "" && e.TrackingID == "" && e.Body == nil && e.Cause == nil
}

// Kind sentinels for errors.Is.
var (
	ErrInvalidArgument    = &Error{Kind: KindInvalidArgument}
	ErrInvalidCredential  = &Error{Kind: KindInvalidCredential}
	ErrTimeout            = &Error{Kind: KindTimeout}
	ErrTransport          = &Error{Kind: KindTransportError}
	ErrRequestRejected    = &Error{Kind: KindRequestRejected}
	ErrServiceUnavailable = &Error{Kind: KindServiceUnavailable}
	ErrDecode             = &Error{Kind: KindDecodeError}
	ErrUnknownOperation   = &Error{Kind: KindUnknownOperation}
)

// Session lifecycle causes, wrapped in KindTransportError.
var (
	ErrSessionClosed    = errors.New("session closed")
	ErrSessionAbandoned = errors.New("request abandoned by session close")
)

// KindOf returns the kind of the first *Error in err's chain, or 0.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}

// StatusOf returns the HTTP status carried by err, or 0.
func StatusOf(err error) int {
	var e *Error
	if errors.As(err, &e) {
		return e.Status
	}
	return 0
}

// IsRetryable reports whether a higher layer may reasonably retry the call.
// The client itself never retries.
func (e *Error) IsRetryable() bool {
	switch e.Kind {
	case KindTimeout, KindServiceUnavailable:
		return true
	case KindTransportError:
		return !errors.Is(e.Cause, ErrSessionClosed) &&
			!errors.Is(e.Cause, ErrSessionAbandoned) &&
			!errors.Is(e.Cause, context.Canceled)
	case KindRequestRejected:
		return e.Status == 429
	default:
		return false
	}
}
