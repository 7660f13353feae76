package http

import (
	"fmt"
	"strconv"

	"github.com/shapestone/shape-core/pkg/ast"
)

var zeroPos = ast.Position{}

// RequestToNode converts a parsed Request to an AST ObjectNode. All
// values are copied out of the request's backing buffer.
func RequestToNode(req *Request) ast.SchemaNode {
	props := map[string]ast.SchemaNode{
		"type":    ast.NewLiteralNode("request", zeroPos),
		"method":  ast.NewLiteralNode(string(req.method), zeroPos),
		"path":    ast.NewLiteralNode(string(req.path), zeroPos),
		"version": ast.NewLiteralNode(string(req.version), zeroPos),
		"headers": headersToNode(req.Headers()),
	}
	if len(req.body) > 0 {
		props["body"] = ast.NewLiteralNode(string(req.body), zeroPos)
	}
	return ast.NewObjectNode(props, zeroPos)
}

// ResponseToNode converts a Response to an AST ObjectNode.
func ResponseToNode(resp *Response) ast.SchemaNode {
	props := map[string]ast.SchemaNode{
		"type":       ast.NewLiteralNode("response", zeroPos),
		"version":    ast.NewLiteralNode(string(resp.Version), zeroPos),
		"statusCode": ast.NewLiteralNode(int64(resp.Status), zeroPos),
		"reason":     ast.NewLiteralNode(string(resp.Reason), zeroPos),
		"headers":    headersToNode(resp.Headers),
	}
	if len(resp.Body) > 0 {
		props["body"] = ast.NewLiteralNode(string(resp.Body), zeroPos)
	}
	return ast.NewObjectNode(props, zeroPos)
}

func headersToNode(headers []Header) ast.SchemaNode {
	elements := make([]ast.SchemaNode, len(headers))
	for i, h := range headers {
		elements[i] = ast.NewObjectNode(map[string]ast.SchemaNode{
			"key":   ast.NewLiteralNode(string(h.Name), zeroPos),
			"value": ast.NewLiteralNode(string(h.Value), zeroPos),
		}, zeroPos)
	}
	return ast.NewArrayDataNode(elements, zeroPos)
}

// NodeToRequest converts an AST ObjectNode back to a Request. The
// result owns its bytes; it is not bound to any caller buffer.
func NodeToRequest(node ast.SchemaNode) (*Request, error) {
	obj, ok := node.(*ast.ObjectNode)
	if !ok {
		return nil, fmt.Errorf("http: expected ObjectNode, got %T", node)
	}

	props := obj.Properties()
	req := &Request{}

	req.method = []byte(literalString(props["method"]))
	req.path = []byte(literalString(props["path"]))
	req.version = []byte(literalString(props["version"]))
	if v, ok := props["headers"]; ok {
		hdrs, err := nodeToHeaders(v)
		if err != nil {
			return nil, err
		}
		req.headers = hdrs
		req.populated = len(hdrs)
	}
	if s := literalString(props["body"]); s != "" {
		req.body = []byte(s)
	}

	return req, nil
}

// NodeToResponse converts an AST ObjectNode back to a Response.
func NodeToResponse(node ast.SchemaNode) (*Response, error) {
	obj, ok := node.(*ast.ObjectNode)
	if !ok {
		return nil, fmt.Errorf("http: expected ObjectNode, got %T", node)
	}

	props := obj.Properties()
	resp := &Response{}

	resp.Version = []byte(literalString(props["version"]))
	resp.Reason = []byte(literalString(props["reason"]))
	if v, ok := props["statusCode"]; ok {
		if lit, ok := v.(*ast.LiteralNode); ok {
			switch code := lit.Value().(type) {
			case int64:
				resp.Status = int(code)
			case float64:
				resp.Status = int(code)
			case string:
				resp.Status, _ = strconv.Atoi(code)
			}
		}
	}
	if v, ok := props["headers"]; ok {
		hdrs, err := nodeToHeaders(v)
		if err != nil {
			return nil, err
		}
		resp.Headers = hdrs
	}
	if s := literalString(props["body"]); s != "" {
		resp.Body = []byte(s)
	}

	return resp, nil
}

func nodeToHeaders(node ast.SchemaNode) ([]Header, error) {
	arr, ok := node.(*ast.ArrayDataNode)
	if !ok {
		return nil, fmt.Errorf("http: expected ArrayDataNode for headers, got %T", node)
	}

	elements := arr.Elements()
	headers := make([]Header, 0, len(elements))
	for _, elem := range elements {
		obj, ok := elem.(*ast.ObjectNode)
		if !ok {
			continue
		}
		props := obj.Properties()
		headers = append(headers, Header{
			Name:  []byte(literalString(props["key"])),
			Value: []byte(literalString(props["value"])),
		})
	}

	return headers, nil
}

// literalString extracts a string literal from a node, tolerating nil
// and non-literal nodes.
func literalString(node ast.SchemaNode) string {
	lit, ok := node.(*ast.LiteralNode)
	if !ok {
		return ""
	}
	s, _ := lit.Value().(string)
	return s
}
