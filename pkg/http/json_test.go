package http

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequest_JSON(t *testing.T) {
	req := NewRequest(make([]Header, 32))
	require.NoError(t, req.Parse(requestWithBody()))

	var payload struct {
		Test string `json:"test"`
	}
	require.NoError(t, req.JSON(&payload))
	assert.Equal(t, "data", payload.Test)
}

func TestRequest_JSON_NoBody(t *testing.T) {
	req := NewRequest(make([]Header, 32))
	require.NoError(t, req.Parse([]byte("GET / HTTP/1.1\r\nHost: x\r\n\r\n")))

	var payload map[string]any
	require.Error(t, req.JSON(&payload))
}

func TestRequest_JSON_MalformedBody(t *testing.T) {
	data := []byte("POST / HTTP/1.1\r\nContent-Length: 9\r\n\r\n{\"broken\"")

	req := NewRequest(make([]Header, 8))
	require.NoError(t, req.Parse(data))

	var payload map[string]any
	require.Error(t, req.JSON(&payload))
}
