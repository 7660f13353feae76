package http

import (
	"fmt"

	"github.com/shapestone/shape-core/pkg/ast"
)

// Render converts an AST node (as produced by Parse, RequestToNode or
// ResponseToNode) back to HTTP wire-format bytes.
//
// The node must be an ObjectNode with a "type" property of "request"
// or "response".
func Render(node ast.SchemaNode) ([]byte, error) {
	obj, ok := node.(*ast.ObjectNode)
	if !ok {
		return nil, fmt.Errorf("http: Render: expected ObjectNode, got %T", node)
	}

	typeProp, ok := obj.Properties()["type"]
	if !ok {
		return nil, fmt.Errorf("http: Render: missing 'type' property")
	}

	switch msgType := literalString(typeProp); msgType {
	case "request":
		req, err := NodeToRequest(node)
		if err != nil {
			return nil, fmt.Errorf("http: Render: %w", err)
		}
		return Marshal(req)

	case "response":
		resp, err := NodeToResponse(node)
		if err != nil {
			return nil, fmt.Errorf("http: Render: %w", err)
		}
		return Marshal(resp)

	default:
		return nil, fmt.Errorf("http: Render: unknown message type %q", msgType)
	}
}
