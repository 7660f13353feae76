package tokenizer

import (
	"testing"

	coretok "github.com/shapestone/shape-core/pkg/tokenizer"
)

func TestTokenize_RequestLine(t *testing.T) {
	tok := NewTokenizer()
	tok.Initialize("GET /api HTTP/1.1\r\n")

	tokens, eos := tok.Tokenize()
	if !eos {
		t.Error("expected EOS")
	}

	// The method lexes as a header-name run (methods are token-alphabet
	// words); the target falls through to generic text.
	expected := []struct {
		kind  string
		value string
	}{
		{TokenHeaderName, "GET"},
		{TokenSP, " "},
		{TokenText, "/api"},
		{TokenSP, " "},
		{TokenVersion, "HTTP/1.1"},
		{TokenCRLF, "\r\n"},
	}

	if len(tokens) != len(expected) {
		t.Fatalf("token count = %d, want %d. tokens = %v", len(tokens), len(expected), formatTokens(tokens))
	}

	for i, exp := range expected {
		if tokens[i].Kind() != exp.kind {
			t.Errorf("token[%d].Kind() = %q, want %q", i, tokens[i].Kind(), exp.kind)
		}
		if tokens[i].ValueString() != exp.value {
			t.Errorf("token[%d].Value() = %q, want %q", i, tokens[i].ValueString(), exp.value)
		}
	}
}

func TestTokenize_HeaderLine(t *testing.T) {
	tok := NewTokenizer()
	tok.Initialize("Host: example.com\r\n")

	tokens, eos := tok.Tokenize()
	if !eos {
		t.Error("expected EOS")
	}

	if len(tokens) < 4 {
		t.Fatalf("token count = %d, want >= 4. tokens = %v", len(tokens), formatTokens(tokens))
	}

	if tokens[0].Kind() != TokenHeaderName || tokens[0].ValueString() != "Host" {
		t.Errorf("token[0] = %v, want HeaderName('Host')", tokens[0])
	}
	if tokens[1].Kind() != TokenHeaderColon {
		t.Errorf("token[1] = %v, want Colon", tokens[1])
	}
}

func TestNewTokenizerWithStream(t *testing.T) {
	stream := coretok.NewStream("GET /api HTTP/1.1\r\n")
	tok := NewTokenizerWithStream(stream)

	tokens, eos := tok.Tokenize()
	if !eos {
		t.Error("expected EOS")
	}
	if len(tokens) == 0 {
		t.Fatal("expected tokens, got none")
	}
	if tokens[0].ValueString() != "GET" {
		t.Errorf("tokens[0] = %v, want 'GET'", tokens[0])
	}
}

func TestHeaderNameMatcher(t *testing.T) {
	matcher := HeaderNameMatcher()

	stream := coretok.NewStream("Sec-WebSocket-Key: x\r\n")
	tok := matcher(stream)
	if tok == nil {
		t.Fatal("expected token, got nil")
	}
	if tok.Kind() != TokenHeaderName {
		t.Errorf("Kind = %q, want %q", tok.Kind(), TokenHeaderName)
	}
	if tok.ValueString() != "Sec-WebSocket-Key" {
		t.Errorf("Value = %q, want Sec-WebSocket-Key", tok.ValueString())
	}
}

func TestHeaderNameMatcher_StopsAtIllegalByte(t *testing.T) {
	matcher := HeaderNameMatcher()

	// '(' is outside the token alphabet.
	stream := coretok.NewStream("(comment)")
	if tok := matcher(stream); tok != nil {
		t.Errorf("expected nil for non-token start, got %v", tok)
	}
}

func TestHeaderValueMatcher(t *testing.T) {
	matcher := HeaderValueMatcher()

	stream := coretok.NewStream("127.0.0.1:9000\r\n")
	tok := matcher(stream)
	if tok == nil {
		t.Fatal("expected token, got nil")
	}
	if tok.Kind() != TokenHeaderValue {
		t.Errorf("Kind = %q, want %q", tok.Kind(), TokenHeaderValue)
	}
	if tok.ValueString() != "127.0.0.1:9000" {
		t.Errorf("Value = %q, want 127.0.0.1:9000", tok.ValueString())
	}
}

func TestHeaderValueMatcher_Empty(t *testing.T) {
	matcher := HeaderValueMatcher()
	stream := coretok.NewStream("\r\n")
	if tok := matcher(stream); tok != nil {
		t.Errorf("expected nil token for empty value, got %v", tok)
	}
}

func TestVersionMatcher_NonHTTP(t *testing.T) {
	matcher := VersionMatcher()
	stream := coretok.NewStream("GET /")
	if tok := matcher(stream); tok != nil {
		t.Errorf("expected nil for non-HTTP/ prefix, got %v", tok)
	}
}

func TestCRLFMatcher_BareLF(t *testing.T) {
	matcher := CRLFMatcher()
	stream := coretok.NewStream("\nnext")
	tok := matcher(stream)
	if tok == nil {
		t.Fatal("expected token for bare LF, got nil")
	}
	if tok.Kind() != TokenCRLF {
		t.Errorf("Kind = %q, want %q", tok.Kind(), TokenCRLF)
	}
}

func formatTokens(tokens []coretok.Token) string {
	s := "["
	for i, t := range tokens {
		if i > 0 {
			s += ", "
		}
		s += t.String()
	}
	s += "]"
	return s
}
