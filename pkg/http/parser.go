package http

import (
	"bytes"
	"io"

	"github.com/shapestone/shape-core/pkg/ast"
)

// defaultHeaderCapacity is the slot count used when this package
// allocates the header storage itself (Parse, Validate). Callers who
// need a different bound use NewRequest with their own slice.
const defaultHeaderCapacity = 32

// Parse parses an HTTP/1.1 request message into an AST.
//
// The result is an ast.ObjectNode of the shape
//
//	{ "type": "request", "method": "GET", "path": "/api",
//	  "version": "1.1",
//	  "headers": [{"key": "Host", "value": "example.com"}, ...],
//	  "body": "..." }
//
// Unlike Request.Parse, the AST owns its values; nothing in the result
// borrows from input.
func Parse(input string) (ast.SchemaNode, error) {
	headers := make([]Header, defaultHeaderCapacity)
	req := NewRequest(headers)
	if err := req.Parse([]byte(input)); err != nil {
		return nil, err
	}
	return RequestToNode(req), nil
}

// ParseReader reads all data from r and parses it as an HTTP request
// into an AST. The reader is drained before any parsing starts.
func ParseReader(r io.Reader) (ast.SchemaNode, error) {
	data, err := readAll(r)
	if err != nil {
		return nil, err
	}
	return Parse(string(data))
}

func readAll(r io.Reader) ([]byte, error) {
	var buf bytes.Buffer
	if _, err := buf.ReadFrom(r); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
