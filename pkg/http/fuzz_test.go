package http

import (
	"testing"
)

// FuzzRequestParse checks that Parse never panics and that accepted
// messages keep the structural invariants of the grammar.
func FuzzRequestParse(f *testing.F) {
	f.Add([]byte("GET / HTTP/1.1\r\nHost: example.com\r\n\r\n"))
	f.Add(requestWithBody())
	f.Add(requestWithoutBody())
	f.Add([]byte("POST /api HTTP/1.1\r\nContent-Length: 3\r\n\r\nabc"))
	f.Add([]byte("\r\n123GET / HTTP/2\r\n"))
	f.Add([]byte(""))
	f.Add([]byte("GET / HTTP/1.1\nHost: bare-lf\n\n"))

	f.Fuzz(func(t *testing.T, data []byte) {
		req := NewRequest(make([]Header, 16))
		if err := req.Parse(data); err != nil {
			return
		}

		m := req.Method()
		if len(m) < 3 || len(m) > 7 {
			t.Errorf("accepted method of length %d: %q", len(m), m)
		}
		if len(req.Path()) == 0 {
			t.Error("accepted empty path")
		}
		if len(req.Version()) == 0 {
			t.Error("accepted empty version")
		}
		if len(req.Headers()) > 16 {
			t.Errorf("more headers than slots: %d", len(req.Headers()))
		}
		for _, h := range req.Headers() {
			if len(h.Value) == 0 {
				t.Errorf("accepted empty value for header %q", h.Name)
			}
		}
	})
}
