package http

import (
	"bytes"
	"fmt"
	"strconv"
	"unicode/utf8"

	"github.com/shapestone/shape-wire/internal/scan"
)

var (
	contentLengthName    = []byte("Content-Length")
	transferEncodingName = []byte("Transfer-Encoding")
	zeroValue            = []byte("0")
)

// Parse runs the three parsing phases over a complete request message:
// request line, header collection, then body extraction when the
// collected headers announce one. Phases gate each other; the first
// failure aborts the parse and is returned as one of the package's
// closed error set.
//
// All stored fields are views into input. The caller must keep input
// alive and unmodified while reading them.
func (r *Request) Parse(input []byte) error {
	rest, method, path, version, err := scan.RequestLine(input)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrRequestLine, err)
	}
	r.method = method
	r.path = path
	r.version = version

	rest, r.populated = collectHeaders(rest, r.headers)

	h := r.bodyHeader()
	if h == nil {
		return nil
	}

	if bytes.Equal(h.Name, contentLengthName) {
		if !utf8.Valid(h.Value) {
			return &InvalidUTF8Error{Value: h.Value}
		}
		length, err := strconv.ParseUint(string(h.Value), 10, 64)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrContentLength, err)
		}
		if length > uint64(len(rest)) {
			return fmt.Errorf("%w: %v", ErrBody, scan.ErrBodyShort)
		}
		_, body, err := scan.Body(rest, int(length))
		if err != nil {
			return fmt.Errorf("%w: %v", ErrBody, err)
		}
		r.body = body
	}

	// Transfer-Encoding without Content-Length: chunked decoding is not
	// implemented, so the body stays empty.
	return nil
}

// collectHeaders fills the slot slice in order, one header line per
// slot. The first line that is not a header field (normally the empty
// line closing the header block) ends the loop; so does running out of
// slots, silently dropping any remaining header lines. Both outcomes
// are success.
func collectHeaders(input []byte, slots []Header) (rest []byte, n int) {
	for i := range slots {
		next, name, value, err := scan.HeaderField(input)
		if err != nil {
			break
		}
		slots[i] = Header{Name: name, Value: value}
		input = next
		n++
	}
	return input, n
}

// bodyHeader returns the first populated header announcing a body: a
// Content-Length whose value compares greater than "0", or any
// Transfer-Encoding. Name matching is byte-exact and case-sensitive.
//
// The Content-Length comparison is bytewise, not numeric: "00" passes
// it even though it names an empty body. The numeric parse afterwards
// settles the actual length.
func (r *Request) bodyHeader() *Header {
	for i := range r.Headers() {
		h := &r.headers[i]
		if bytes.Equal(h.Name, contentLengthName) && bytes.Compare(h.Value, zeroValue) > 0 {
			return h
		}
		if bytes.Equal(h.Name, transferEncodingName) {
			return h
		}
	}
	return nil
}
