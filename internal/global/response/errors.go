package response

import (
	"errors"
	"fmt"

	pkgerrors "github.com/pkg/errors"
)

// Error is the only error type handlers surface. Status picks the HTTP
// status, Message is the public text; the original cause and its stack are
// kept for logging and Sentry but never sent to release-mode clients.
type Error struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
	Origin  string `json:"origin,omitempty"`
	cause   error
	stack   pkgerrors.StackTrace
}

func newError(status int, msg string) *Error {
	return &Error{
		Status:  status,
		Message: msg,
	}
}

// Predefined errors, one per failure kind the API can answer with.
// Auth and lookup failures deliberately share generic wording so responses
// never reveal which part of a credential was wrong.
var (
	ErrInvalidRequest     = newError(400, "Invalid request")
	ErrAlreadyExists      = newError(400, "Already exists")
	ErrInvalidCredentials = newError(401, "Invalid registration number or ID")
	ErrUnauthorized       = newError(401, "Unauthorized")
	ErrTokenInvalid       = newError(401, "Invalid or missing token")
	ErrAdminNotFound      = newError(404, "Invalid credentials")
	ErrNotFound           = newError(404, "Not found")
	ErrMethodNotAllowed   = newError(405, "Method not allowed")
	ErrTooManyRequests    = newError(429, "Too many requests")
	ErrDatabase           = newError(500, "Internal server error")
	ErrUnavailable        = newError(503, "Live feed unavailable")
)

func (e *Error) Error() string {
	return fmt.Sprintf("status:%d, msg:%s", e.Status, e.Message)
}

// GetCode reports the HTTP status, implementing the sentry CodedError
// interface so only 5xx errors are captured as events.
func (e *Error) GetCode() int32 {
	return int32(e.Status)
}

func (e *Error) Unwrap() error {
	return e.cause
}

// StackTrace implements the pkg/errors stackTracer interface for Sentry
// stack extraction.
func (e *Error) StackTrace() pkgerrors.StackTrace {
	if e.stack != nil {
		return e.stack
	}
	if e.cause != nil {
		type stackTracer interface {
			StackTrace() pkgerrors.StackTrace
		}
		if st, ok := e.cause.(stackTracer); ok {
			return st.StackTrace()
		}
	}
	return nil
}

func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return e.Status == t.Status && e.Message == t.Message
}

// WithOrigin attaches the underlying cause. The origin text is only shown
// to clients in debug mode; the chain stays intact for Sentry either way.
func (e *Error) WithOrigin(err error) *Error {
	if err == nil {
		return e
	}

	wrappedErr := ensureStack(err)

	newErr := &Error{
		Status:  e.Status,
		Message: e.Message,
		Origin:  fmt.Sprintf("%+v", wrappedErr),
		cause:   wrappedErr,
	}

	type stackTracer interface {
		StackTrace() pkgerrors.StackTrace
	}
	if st, ok := wrappedErr.(stackTracer); ok {
		newErr.stack = st.StackTrace()
	}

	return newErr
}

// WithTips appends user-facing detail to the public message.
func (e *Error) WithTips(details ...string) *Error {
	msg := e.Message
	for _, d := range details {
		msg += " " + d
	}
	return &Error{
		Status:  e.Status,
		Message: msg,
		cause:   e.cause,
		stack:   e.stack,
	}
}

func ensureStack(err error) error {
	if err == nil {
		return nil
	}
	type stackTracer interface {
		StackTrace() pkgerrors.StackTrace
	}
	if _, ok := err.(stackTracer); ok {
		return err
	}
	return pkgerrors.WithStack(err)
}
