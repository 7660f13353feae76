package http

import (
	"strconv"
	"strings"
)

// String renders the request for logging and debugging in the form
//
//	Request { method: GET, path: /, version: HTTP/1.1, headers: { Host: x, ... } }
//
// It reads whatever fields are currently set and works regardless of
// whether the last Parse succeeded.
func (r *Request) String() string {
	var b strings.Builder
	b.WriteString("Request { method: ")
	b.Write(r.method)
	b.WriteString(", path: ")
	b.Write(r.path)
	b.WriteString(", version: HTTP/")
	b.Write(r.version)
	b.WriteString(", headers: { ")
	writeHeaderList(&b, r.Headers())
	b.WriteString(" } }")
	return b.String()
}

// String renders the response for logging and debugging in the form
//
//	Response { version: HTTP/1.1, status: 200, reason: OK, headers: { ... }, body: { ... } }
func (r *Response) String() string {
	var b strings.Builder
	b.WriteString("Response { version: HTTP/")
	b.Write(r.Version)
	b.WriteString(", status: ")
	b.WriteString(strconv.Itoa(r.Status))
	b.WriteString(", reason: ")
	b.Write(r.Reason)
	b.WriteString(", headers: { ")
	writeHeaderList(&b, r.Headers)
	b.WriteString(" }, body: { ")
	b.Write(r.Body)
	b.WriteString(" } }")
	return b.String()
}

func writeHeaderList(b *strings.Builder, headers []Header) {
	for i, h := range headers {
		if i > 0 {
			b.WriteString(", ")
		}
		b.Write(h.Name)
		b.WriteString(": ")
		b.Write(h.Value)
	}
}
