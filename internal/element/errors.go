// internal/element/errors.go
package element

import (
	"errors"
	"fmt"
)

// Status is a wire-level status code. The numbering follows the WebDriver
// JSON wire protocol so codes can be handed to a command dispatcher unchanged.
type Status int

const (
	Success             Status = 0
	NoSuchElement       Status = 7
	ObsoleteElement     Status = 10
	ElementNotDisplayed Status = 11
	UnhandledError      Status = 13
	NoSuchDocument      Status = 16
	UnexpectedJSError   Status = 17
)

// String returns the conventional name of the status.
func (s Status) String() string {
	switch s {
	case Success:
		return "success"
	case NoSuchElement:
		return "no such element"
	case ObsoleteElement:
		return "stale element reference"
	case ElementNotDisplayed:
		return "element not displayed"
	case UnhandledError:
		return "unhandled error"
	case NoSuchDocument:
		return "no such document"
	case UnexpectedJSError:
		return "unexpected javascript error"
	default:
		return fmt.Sprintf("status %d", int(s))
	}
}

// Error is the typed failure returned by every locator operation. Consumers
// classify it with errors.Is against the exported sentinels, or read Status
// directly after errors.As.
type Error struct {
	Status Status
	// Op names the operation that failed, e.g. "GetLocation".
	Op string
	// Err is the underlying native or script failure, if any.
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := e.Status.String()
	if e.Op != "" {
		msg = e.Op + ": " + msg
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap provides the underlying error for use with errors.Is/As.
func (e *Error) Unwrap() error { return e.Err }

// Is matches any *Error carrying the same status as a bare sentinel, so
// errors.Is(err, ErrObsoleteElement) works regardless of Op or cause.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || t.Op != "" || t.Err != nil {
		return false
	}
	return t.Status == e.Status
}

// Sentinels for errors.Is comparisons.
var (
	ErrNoSuchElement       = &Error{Status: NoSuchElement}
	ErrObsoleteElement     = &Error{Status: ObsoleteElement}
	ErrElementNotDisplayed = &Error{Status: ElementNotDisplayed}
	ErrUnhandled           = &Error{Status: UnhandledError}
	ErrNoSuchDocument      = &Error{Status: NoSuchDocument}
	ErrUnexpectedJS        = &Error{Status: UnexpectedJSError}
)

// ErrAccessDenied is returned by a Window's Document accessor when the
// document belongs to another origin. It is the only failure that triggers the
// BrowserService fallback.
var ErrAccessDenied = errors.New("access denied")

func newError(status Status, op string, err error) *Error {
	return &Error{Status: status, Op: op, Err: err}
}

// StatusOf maps an error to its wire status. Nil is Success and errors that
// did not originate here are UnhandledError.
func StatusOf(err error) Status {
	if err == nil {
		return Success
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Status
	}
	return UnhandledError
}
