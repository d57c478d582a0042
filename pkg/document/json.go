package document

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/segmentio/encoding/json"
)

// jsonNode wraps one decoded JSON value.
type jsonNode struct {
	v any
}

// ParseJSON decodes a JSON document and returns its root node.
func ParseJSON(data []byte) (Node, error) {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("error decoding JSON: %w", err)
	}
	return NewJSON(v), nil
}

// NewJSON wraps an already decoded JSON value.
func NewJSON(v any) Node {
	return &jsonNode{v: v}
}

// Elements returns the members of a JSON array node, or nil when n is not
// an array.
func Elements(n Node) []Node {
	jn, ok := n.(*jsonNode)
	if !ok {
		return nil
	}
	arr, ok := jn.v.([]any)
	if !ok {
		return nil
	}
	out := make([]Node, 0, len(arr))
	for _, v := range arr {
		out = append(out, &jsonNode{v: v})
	}
	return out
}

// IsObject reports whether n is a JSON object.
func IsObject(n Node) bool {
	jn, ok := n.(*jsonNode)
	if !ok {
		return false
	}
	_, ok = jn.v.(map[string]any)
	return ok
}

func (n *jsonNode) Get(path string) []Node {
	if path == "" {
		return []Node{n}
	}
	current := []any{n.v}
	for _, key := range strings.Split(path, "/") {
		var next []any
		for _, c := range current {
			obj, ok := c.(map[string]any)
			if !ok {
				continue
			}
			switch val := obj[key].(type) {
			case nil:
			case []any:
				for _, item := range val {
					if item != nil {
						next = append(next, item)
					}
				}
			default:
				next = append(next, val)
			}
		}
		if len(next) == 0 {
			return nil
		}
		current = next
	}
	out := make([]Node, 0, len(current))
	for _, c := range current {
		out = append(out, &jsonNode{v: c})
	}
	return out
}

func (n *jsonNode) Value() string {
	switch v := n.v.(type) {
	case string:
		return strings.TrimSpace(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	case json.Number:
		return v.String()
	case map[string]any:
		// JSON-LD value object
		if val, ok := v["@value"]; ok {
			return (&jsonNode{v: val}).Value()
		}
	}
	return ""
}

func (n *jsonNode) Attr(name string) string {
	return Value(First(n, name))
}

// Lang reads a JSON-LD "@language" member.
func (n *jsonNode) Lang() string {
	obj, ok := n.v.(map[string]any)
	if !ok {
		return ""
	}
	s, _ := obj["@language"].(string)
	return strings.TrimSpace(s)
}
