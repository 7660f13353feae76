package http

import (
	"errors"

	jsoniter "github.com/json-iterator/go"
)

// JSON decodes the parsed request body into model. The body bytes are
// handed to json-iterator as-is; no Content-Type checking happens here.
func (r *Request) JSON(model any) error {
	if len(r.body) == 0 {
		return errors.New("http: request has no body")
	}

	iter := jsoniter.ConfigDefault.BorrowIterator(r.body)
	defer jsoniter.ConfigDefault.ReturnIterator(iter)

	iter.ReadVal(model)
	return iter.Error
}
