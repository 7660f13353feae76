// Package http parses HTTP/1.1 request messages out of fully buffered
// byte slices, producing borrowed views into the input rather than
// copies.
//
// The central type is Request: the caller allocates a fixed-capacity
// header-slot slice, binds a Request to it with NewRequest, and runs a
// single Parse over the complete message bytes. Every parsed field
// (method, path, version, header names and values, body) aliases the
// input buffer, so results stay valid only as long as the buffer does
// and the caller must not mutate the buffer or the slot slice while
// reading them.
//
// # Thread Safety
//
// A Request exclusively owns its header-slot slice for the duration of
// Parse and any subsequent accessor calls. There is no shared mutable
// state between distinct Requests; parsing different buffers with
// different Requests from multiple goroutines is safe.
//
// # Completeness
//
// All grammars assume the entire message is already in memory. There is
// no "need more data" outcome: a message split across multiple network
// reads must be reassembled before calling Parse.
package http

// Header is one parsed header field. Name and Value are views into the
// buffer the message was parsed from and share its lifetime.
//
// The zero value (empty name and value) marks an unused slot in a
// caller-allocated header slice.
type Header struct {
	Name  []byte
	Value []byte
}

// Request holds a single parsed HTTP/1.1 request.
//
// A Request is bound to a caller-owned header-slot slice at
// construction and is meant to be parsed once; it has no reset logic.
// After a failed Parse, fields written by earlier phases remain set.
type Request struct {
	method  []byte
	path    []byte
	version []byte
	body    []byte

	// headers is the caller's fixed-capacity slot slice; populated is
	// the number of leading slots filled by the last Parse.
	headers   []Header
	populated int
}

// NewRequest returns a Request bound to the given header-slot slice.
// The slice's length fixes the header capacity: a message carrying more
// header lines than slots parses successfully and the excess lines are
// dropped.
func NewRequest(headers []Header) *Request {
	return &Request{headers: headers}
}

// Method returns the request method, such as "GET".
func (r *Request) Method() []byte { return r.method }

// Path returns the request target, such as "/events".
func (r *Request) Path() []byte { return r.path }

// Version returns the version digits after "HTTP/", such as "1.1".
func (r *Request) Version() []byte { return r.version }

// Body returns the request body, or an empty slice if the message
// carried none.
func (r *Request) Body() []byte { return r.body }

// Headers returns the populated prefix of the header-slot slice.
func (r *Request) Headers() []Header { return r.headers[:r.populated] }

// Response represents an HTTP/1.1 response message. It is a plain
// value assembled by the caller; this package serializes it (see
// Marshal) but never parses one.
type Response struct {
	// Version holds the digits after "HTTP/", such as "1.1".
	Version []byte

	// Status is the status code, such as 200.
	Status int

	// Reason is the reason phrase, such as "OK".
	Reason []byte

	// Headers lists the response headers in write order.
	Headers []Header

	// Body is the raw response body.
	Body []byte
}

// Marshaler is the interface implemented by types that can serialize
// themselves into HTTP/1.1 wire format.
type Marshaler interface {
	MarshalHTTP() ([]byte, error)
}
