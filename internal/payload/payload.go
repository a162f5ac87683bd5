// Package payload gives read-only, type-tolerant access to an untyped webhook body.
package payload

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrNotObject is returned when a body decodes to something other than a JSON object.
var ErrNotObject = errors.New("payload is not a JSON object")

// Object is a decoded JSON object. Numbers are kept as json.Number.
type Object map[string]any

// Decode parses a webhook body. An empty body decodes to an empty object.
func Decode(body []byte) (Object, error) {
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return Object{}, nil
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("decode payload: %w", err)
	}

	switch t := v.(type) {
	case map[string]any:
		return Object(t), nil
	case nil:
		return Object{}, nil
	default:
		return nil, ErrNotObject
	}
}

// Lookup walks path through nested objects and lists. Numeric segments index
// into lists. It returns nil when any step is missing or has the wrong type.
func (o Object) Lookup(path ...string) any {
	var cur any = map[string]any(o)
	for _, seg := range path {
		switch node := cur.(type) {
		case map[string]any:
			cur = node[seg]
		case Object:
			cur = node[seg]
		case []any:
			i, err := strconv.Atoi(seg)
			if err != nil || i < 0 || i >= len(node) {
				return nil
			}
			cur = node[i]
		default:
			return nil
		}
	}
	return cur
}

// Object returns the nested object at path, or nil.
func (o Object) Object(path ...string) Object {
	switch t := o.Lookup(path...).(type) {
	case map[string]any:
		return Object(t)
	default:
		return nil
	}
}

// List returns the list at path, or nil.
func (o Object) List(path ...string) []any {
	l, _ := o.Lookup(path...).([]any)
	return l
}

// Text returns the value at path rendered as text, or "".
func (o Object) Text(path ...string) string {
	return Text(o.Lookup(path...))
}

// HasObject reports whether path holds an object with at least one key.
func (o Object) HasObject(path ...string) bool {
	return len(o.Object(path...)) > 0
}

// HasList reports whether path holds a list with at least one element.
func (o Object) HasList(path ...string) bool {
	return len(o.List(path...)) > 0
}

// Text renders scalar JSON values as text. Objects, lists, null and false render as "".
func Text(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case json.Number:
		return t.String()
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		return strconv.Itoa(t)
	case bool:
		if t {
			return "true"
		}
		return ""
	default:
		return ""
	}
}

// Present reports whether v carries a usable scalar value: a non-blank
// string, any number, or true.
func Present(v any) bool {
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t) != ""
	case json.Number, float64, int:
		return true
	case bool:
		return t
	default:
		return false
	}
}

// Int reads v as a whole number. Fractions are truncated.
func Int(v any) (int, bool) {
	var s string
	switch t := v.(type) {
	case json.Number:
		s = t.String()
	case string:
		s = strings.TrimSpace(t)
	case float64:
		return int(t), true
	case int:
		return t, true
	default:
		return 0, false
	}

	if n, err := strconv.Atoi(s); err == nil {
		return n, true
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return int(f), true
}
