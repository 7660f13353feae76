// Package tokenizer lexes HTTP/1.1 request messages with Shape's
// tokenizer framework. It is line-oriented: CRLF and SP are structural
// tokens, and header names are matched against the same token alphabet
// the scanner uses.
package tokenizer

// Token kind constants for HTTP request messages.
const (
	// Request-line tokens
	TokenText    = "Text"    // method, target, or any run of non-structural bytes
	TokenVersion = "Version" // HTTP/1.1, HTTP/2, ...

	// Header tokens
	TokenHeaderName  = "HeaderName"  // field-name before the colon
	TokenHeaderColon = "HeaderColon" // :
	TokenHeaderValue = "HeaderValue" // field-value after the colon

	// Structural tokens
	TokenSP   = "SP"   // single space separator
	TokenCRLF = "CRLF" // line ending \r\n (or bare \n, tolerated when lexing)
)
