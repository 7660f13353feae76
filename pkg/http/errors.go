package http

import (
	"errors"
	"fmt"
)

// The parse error set is closed: Parse fails with exactly one of the
// sentinels below (wrapped with the underlying cause) or with an
// *InvalidUTF8Error. Errors identify the failing phase, not a byte
// position; the first failing phase aborts the whole parse.
var (
	// ErrRequestLine reports a malformed request line.
	ErrRequestLine = errors.New("http: unable to parse request line")

	// ErrHeaders reports a hard failure of the header-collection phase.
	ErrHeaders = errors.New("http: unable to parse headers")

	// ErrBody reports a missing body separator or fewer body bytes than
	// Content-Length declared.
	ErrBody = errors.New("http: unable to parse body")

	// ErrContentLength reports a Content-Length value that is not an
	// unsigned decimal integer.
	ErrContentLength = errors.New("http: unable to parse Content-Length header")

	// ErrUnknown is the residual catch-all of the error set.
	ErrUnknown = errors.New("http: unknown parse error")
)

// InvalidUTF8Error reports a Content-Length header value that is not
// valid UTF-8 and therefore cannot be interpreted as a number.
type InvalidUTF8Error struct {
	// Value is the offending header value, borrowed from the input.
	Value []byte
}

// Error implements the error interface.
func (e *InvalidUTF8Error) Error() string {
	return fmt.Sprintf("http: header value is not valid UTF-8: %q", e.Value)
}
