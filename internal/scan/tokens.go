package scan

// headerNameTable marks the bytes that may appear in a header field-name,
// per the RFC 7230 token alphabet: ASCII letters, digits, and
// !#$%&'*+-.^_`|~. Control bytes, SP, ':' and bytes >= 0x80 are excluded.
//
// Built once at program start; never mutated afterwards.
var headerNameTable = func() (t [256]bool) {
	for b := byte('0'); b <= '9'; b++ {
		t[b] = true
	}
	for b := byte('A'); b <= 'Z'; b++ {
		t[b] = true
	}
	for b := byte('a'); b <= 'z'; b++ {
		t[b] = true
	}
	for _, b := range []byte("!#$%&'*+-.^_`|~") {
		t[b] = true
	}
	return t
}()

// IsTokenByte reports whether b is legal inside a header field-name.
// It is a bare table lookup, safe on any byte value.
func IsTokenByte(b byte) bool {
	return headerNameTable[b]
}

// isVersionByte reports whether b may appear after the "HTTP/" literal.
func isVersionByte(b byte) bool {
	return b >= '0' && b <= '9' || b == '.'
}

// isAlpha reports whether b is an ASCII letter.
func isAlpha(b byte) bool {
	return b >= 'A' && b <= 'Z' || b >= 'a' && b <= 'z'
}

// isDigit reports whether b is an ASCII digit.
func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
