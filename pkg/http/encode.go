package http

import "strconv"

// appendRequest serializes a Request so that the result parses back to
// the same message: every header line keeps its own CRLF and the empty
// line before the body is always present.
func appendRequest(buf []byte, req *Request) []byte {
	buf = append(buf, req.method...)
	buf = append(buf, ' ')
	buf = append(buf, req.path...)
	buf = append(buf, " HTTP/"...)
	buf = append(buf, req.version...)
	buf = appendCRLF(buf)

	for _, h := range req.Headers() {
		buf = appendHeader(buf, h)
		buf = appendCRLF(buf)
	}

	buf = appendCRLF(buf)
	return append(buf, req.body...)
}

// appendResponse serializes a Response. The empty line separating
// headers from body appears only when at least one header is present;
// a header-less response is the status line directly followed by the
// body.
func appendResponse(buf []byte, resp *Response) []byte {
	buf = append(buf, "HTTP/"...)
	buf = append(buf, resp.Version...)
	buf = append(buf, ' ')
	buf = strconv.AppendInt(buf, int64(resp.Status), 10)
	buf = append(buf, ' ')
	buf = append(buf, resp.Reason...)
	buf = appendCRLF(buf)

	for i, h := range resp.Headers {
		if i > 0 {
			buf = appendCRLF(buf)
		}
		buf = appendHeader(buf, h)
	}
	if len(resp.Headers) > 0 {
		buf = appendCRLF(buf)
		buf = appendCRLF(buf)
	}

	return append(buf, resp.Body...)
}

// appendHeader appends "Name: Value" without a terminator.
func appendHeader(buf []byte, h Header) []byte {
	buf = append(buf, h.Name...)
	buf = append(buf, ':', ' ')
	return append(buf, h.Value...)
}

// appendCRLF appends \r\n.
func appendCRLF(buf []byte) []byte {
	return append(buf, '\r', '\n')
}
