package http

import "io"

// Validate checks that input is a parseable HTTP/1.1 request message.
// It runs a full parse, including body extraction when the headers
// announce one, against an internal header buffer. Returns nil if the
// message parses, or the typed parse error otherwise.
//
// Response messages are outside this package's grammar and do not
// validate.
func Validate(input []byte) error {
	headers := make([]Header, defaultHeaderCapacity)
	return NewRequest(headers).Parse(input)
}

// ValidateReader reads all data from r and validates it as an HTTP/1.1
// request message. See Validate for the semantics.
func ValidateReader(r io.Reader) error {
	data, err := readAll(r)
	if err != nil {
		return err
	}
	return Validate(data)
}
