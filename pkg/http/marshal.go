package http

import (
	"fmt"
	"sync"
)

// bufPool pools []byte slices for the serialization fast path.
var bufPool = sync.Pool{
	New: func() interface{} {
		b := make([]byte, 0, 2048)
		return &b
	},
}

// Marshal returns the HTTP/1.1 wire-format encoding of v.
//
// v must be a *Request or *Response. Requests serialize as
// "METHOD SP PATH SP HTTP/VERSION CRLF headers CRLF body", which feeds
// back through Request.Parse unchanged. Responses serialize as
// "HTTP/VERSION SP STATUS SP REASON CRLF headers CRLF CRLF body"; with
// no headers the empty line is omitted.
//
// Marshal uses a sync.Pool buffer internally, so the returned slice is
// a fresh copy.
func Marshal(v interface{}) ([]byte, error) {
	if v == nil {
		return nil, fmt.Errorf("http: Marshal(nil)")
	}

	if m, ok := v.(Marshaler); ok {
		return m.MarshalHTTP()
	}

	bp := bufPool.Get().(*[]byte)
	buf := (*bp)[:0]

	switch msg := v.(type) {
	case *Request:
		buf = appendRequest(buf, msg)
	case *Response:
		buf = appendResponse(buf, msg)
	default:
		*bp = buf
		bufPool.Put(bp)
		return nil, fmt.Errorf("http: Marshal unsupported type %T (expected *Request or *Response)", v)
	}

	result := make([]byte, len(buf))
	copy(result, buf)
	*bp = buf
	bufPool.Put(bp)
	return result, nil
}
