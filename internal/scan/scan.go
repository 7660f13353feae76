// Package scan implements the byte-level grammar of HTTP/1.1 request
// messages per RFC 7230, scanning an in-memory buffer into borrowed
// sub-slices without copying.
//
// Every function takes the unconsumed input and returns the remaining
// input first, followed by the parsed views. The parsed slices alias
// the input buffer; they stay valid for exactly as long as the buffer
// does.
//
// All grammars here are complete: the whole construct must already be
// present in the buffer. A message split across reads has to be
// reassembled by the caller before scanning.
package scan

import (
	"bytes"
	"errors"
)

const (
	minMethodLen = 3
	maxMethodLen = 7
)

var (
	// ErrMethod reports a request method that is not 3 to 7 ASCII letters.
	ErrMethod = errors.New("scan: malformed request method")

	// ErrTarget reports a missing or empty SP-delimited request target.
	ErrTarget = errors.New("scan: malformed request target")

	// ErrVersion reports a missing "HTTP/" literal or version bytes.
	ErrVersion = errors.New("scan: malformed HTTP version")

	// ErrCRLF reports a missing \r\n terminator.
	ErrCRLF = errors.New("scan: expected CRLF")

	// ErrHeaderField reports a line that is not a "Name: Value\r\n" unit.
	ErrHeaderField = errors.New("scan: malformed header field")

	// ErrBodyShort reports fewer body bytes than the declared length.
	ErrBodyShort = errors.New("scan: body shorter than declared length")
)

var crlf = []byte("\r\n")

// Method consumes the request method: an optional leading CRLF, then any
// run of leading ASCII digits (stray bytes ahead of the method are
// tolerated), then 3 to 7 consecutive ASCII letters.
func Method(input []byte) (rest, method []byte, err error) {
	if bytes.HasPrefix(input, crlf) {
		input = input[2:]
	}
	for len(input) > 0 && isDigit(input[0]) {
		input = input[1:]
	}

	n := 0
	for n < len(input) && isAlpha(input[n]) {
		n++
	}
	if n < minMethodLen || n > maxMethodLen {
		return input, nil, ErrMethod
	}
	return input[n:], input[:n], nil
}

// Target consumes the request target: exactly one leading SP, one or
// more non-SP bytes, and exactly one trailing SP.
func Target(input []byte) (rest, target []byte, err error) {
	if len(input) == 0 || input[0] != ' ' {
		return input, nil, ErrTarget
	}
	input = input[1:]

	n := 0
	for n < len(input) && input[n] != ' ' {
		n++
	}
	if n == 0 || n == len(input) {
		return input, nil, ErrTarget
	}
	return input[n+1:], input[:n], nil
}

// Version consumes the literal "HTTP/" followed by one or more bytes
// from {0-9, '.'}. The returned view excludes the literal, so
// "HTTP/1.1" yields "1.1". The version is not validated numerically.
func Version(input []byte) (rest, version []byte, err error) {
	const literal = "HTTP/"
	if !bytes.HasPrefix(input, []byte(literal)) {
		return input, nil, ErrVersion
	}
	input = input[len(literal):]

	n := 0
	for n < len(input) && isVersionByte(input[n]) {
		n++
	}
	if n == 0 {
		return input, nil, ErrVersion
	}
	return input[n:], input[:n], nil
}

// CRLF consumes exactly "\r\n". A bare LF does not match.
func CRLF(input []byte) (rest []byte, err error) {
	if !bytes.HasPrefix(input, crlf) {
		return input, ErrCRLF
	}
	return input[2:], nil
}

// RequestLine consumes "Method SP request-target SP HTTP-Version CRLF"
// and returns the three component views plus the input remaining after
// the terminating CRLF.
func RequestLine(input []byte) (rest, method, target, version []byte, err error) {
	rest, method, err = Method(input)
	if err != nil {
		return input, nil, nil, nil, err
	}
	rest, target, err = Target(rest)
	if err != nil {
		return input, nil, nil, nil, err
	}
	rest, version, err = Version(rest)
	if err != nil {
		return input, nil, nil, nil, err
	}
	rest, err = CRLF(rest)
	if err != nil {
		return input, nil, nil, nil, err
	}
	return rest, method, target, version, nil
}

// HeaderField consumes one "Name: Value CRLF" unit. The name is the
// longest run of token bytes (possibly empty); the separator is a
// colon followed by exactly one SP, narrower than RFC 7230 OWS; the
// value is one or more bytes containing neither CR nor LF.
func HeaderField(input []byte) (rest, name, value []byte, err error) {
	n := 0
	for n < len(input) && IsTokenByte(input[n]) {
		n++
	}
	name = input[:n]

	after := input[n:]
	if len(after) < 2 || after[0] != ':' || after[1] != ' ' {
		return input, nil, nil, ErrHeaderField
	}
	after = after[2:]

	v := 0
	for v < len(after) && after[v] != '\r' && after[v] != '\n' {
		v++
	}
	if v == 0 {
		return input, nil, nil, ErrHeaderField
	}
	value = after[:v]

	rest, err = CRLF(after[v:])
	if err != nil {
		return input, nil, nil, ErrHeaderField
	}
	return rest, name, value, nil
}

// Body consumes exactly one CRLF followed by exactly length bytes.
// Fewer than length remaining bytes is a hard error; there is no
// partial-body outcome.
func Body(input []byte, length int) (rest, body []byte, err error) {
	rest, err = CRLF(input)
	if err != nil {
		return input, nil, err
	}
	if len(rest) < length {
		return input, nil, ErrBodyShort
	}
	return rest[length:], rest[:length], nil
}
