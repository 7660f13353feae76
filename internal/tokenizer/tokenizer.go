package tokenizer

import (
	"github.com/shapestone/shape-core/pkg/tokenizer"

	"github.com/shapestone/shape-wire/internal/scan"
)

// NewTokenizer creates a tokenizer for HTTP/1.1 request messages.
// Spaces and line endings carry meaning in HTTP, so the tokenizer runs
// without the default whitespace skipper. Matcher order is priority
// order:
//  1. CRLF (line endings are structural)
//  2. SP
//  3. Colon (header separator)
//  4. HTTP version (before generic text, or "HTTP" would lex as a name)
//  5. Header name (token-alphabet runs)
//  6. Generic text (anything else up to SP, CRLF, or colon)
func NewTokenizer() tokenizer.Tokenizer {
	return tokenizer.NewTokenizerWithoutWhitespace(
		CRLFMatcher(),
		SPMatcher(),
		tokenizer.StringMatcherFunc(TokenHeaderColon, ":"),
		VersionMatcher(),
		HeaderNameMatcher(),
		TextMatcher(),
	)
}

// NewTokenizerWithStream creates an HTTP tokenizer reading from a
// pre-configured stream.
func NewTokenizerWithStream(stream tokenizer.Stream) tokenizer.Tokenizer {
	tok := NewTokenizer()
	tok.InitializeFromStream(stream)
	return tok
}

// CRLFMatcher matches \r\n. A bare \n is also lexed as a line ending;
// rejecting it is the parser's job, not the lexer's.
func CRLFMatcher() tokenizer.Matcher {
	return func(stream tokenizer.Stream) *tokenizer.Token {
		r, ok := stream.PeekChar()
		if !ok {
			return nil
		}

		if r == '\r' {
			value := []rune{'\r'}
			stream.NextChar()
			r2, ok := stream.PeekChar()
			if ok && r2 == '\n' {
				stream.NextChar()
				value = append(value, '\n')
			}
			return tokenizer.NewToken(TokenCRLF, value)
		}
		if r == '\n' {
			stream.NextChar()
			return tokenizer.NewToken(TokenCRLF, []rune{'\n'})
		}
		return nil
	}
}

// SPMatcher matches a single space character.
func SPMatcher() tokenizer.Matcher {
	return func(stream tokenizer.Stream) *tokenizer.Token {
		r, ok := stream.PeekChar()
		if !ok {
			return nil
		}
		if r == ' ' {
			stream.NextChar()
			return tokenizer.NewToken(TokenSP, []rune{' '})
		}
		return nil
	}
}

// VersionMatcher matches "HTTP/" followed by digits and dots.
func VersionMatcher() tokenizer.Matcher {
	return func(stream tokenizer.Stream) *tokenizer.Token {
		prefix := []rune("HTTP/")
		var value []rune

		for _, expected := range prefix {
			r, ok := stream.PeekChar()
			if !ok || r != expected {
				return nil
			}
			stream.NextChar()
			value = append(value, r)
		}

		for {
			r, ok := stream.PeekChar()
			if !ok {
				break
			}
			if (r >= '0' && r <= '9') || r == '.' {
				stream.NextChar()
				value = append(value, r)
			} else {
				break
			}
		}

		return tokenizer.NewToken(TokenVersion, value)
	}
}

// HeaderNameMatcher matches a run of bytes from the header-name token
// alphabet (letters, digits, RFC 7230 token punctuation).
func HeaderNameMatcher() tokenizer.Matcher {
	return func(stream tokenizer.Stream) *tokenizer.Token {
		var value []rune

		for {
			r, ok := stream.PeekChar()
			if !ok || r > 0x7F || !scan.IsTokenByte(byte(r)) {
				break
			}
			stream.NextChar()
			value = append(value, r)
		}

		if len(value) == 0 {
			return nil
		}
		return tokenizer.NewToken(TokenHeaderName, value)
	}
}

// TextMatcher matches any run of characters until SP, CRLF, colon, or
// end of stream. Targets and header values fall through to this after
// the more specific matchers decline.
func TextMatcher() tokenizer.Matcher {
	return func(stream tokenizer.Stream) *tokenizer.Token {
		var value []rune

		for {
			r, ok := stream.PeekChar()
			if !ok {
				break
			}
			if r == ' ' || r == '\r' || r == '\n' || r == ':' {
				break
			}
			stream.NextChar()
			value = append(value, r)
		}

		if len(value) == 0 {
			return nil
		}
		return tokenizer.NewToken(TokenText, value)
	}
}

// HeaderValueMatcher matches everything after the separator up to CRLF,
// including spaces and colons inside the value.
func HeaderValueMatcher() tokenizer.Matcher {
	return func(stream tokenizer.Stream) *tokenizer.Token {
		var value []rune

		for {
			r, ok := stream.PeekChar()
			if !ok {
				break
			}
			if r == '\r' || r == '\n' {
				break
			}
			stream.NextChar()
			value = append(value, r)
		}

		if len(value) == 0 {
			return nil
		}
		return tokenizer.NewToken(TokenHeaderValue, value)
	}
}
