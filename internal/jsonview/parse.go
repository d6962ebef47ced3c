package jsonview

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
)

// ErrInvalidJSON is returned when a body cannot be parsed as JSON
var ErrInvalidJSON = errors.New("invalid JSON")

// Parse parses raw JSON text into a value tree. Objects come back as *Object
// with their document key order, arrays as *Array and numbers as Number.
func Parse(raw string) (any, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, fmt.Errorf("%w: empty document", ErrInvalidJSON)
	}
	if !gjson.Valid(raw) {
		return nil, fmt.Errorf("%w: malformed document", ErrInvalidJSON)
	}
	return fromResult(gjson.Parse(raw)), nil
}

// Pretty parses raw and serializes it with the given indent
func Pretty(raw string, indent int) (string, error) {
	value, err := Parse(raw)
	if err != nil {
		return "", err
	}
	return Serialize(value, indent), nil
}

func fromResult(r gjson.Result) any {
	switch r.Type {
	case gjson.False:
		return false
	case gjson.True:
		return true
	case gjson.Number:
		return Number(strings.TrimSpace(r.Raw))
	case gjson.String:
		return r.Str
	case gjson.JSON:
		if r.IsArray() {
			arr := NewArray()
			r.ForEach(func(_, item gjson.Result) bool {
				arr.Append(fromResult(item))
				return true
			})
			return arr
		}
		obj := NewObject()
		r.ForEach(func(key, item gjson.Result) bool {
			obj.Set(key.Str, fromResult(item))
			return true
		})
		return obj
	}
	return nil
}
