package jsonview

import (
	"bytes"
	"encoding/json"
	"math"
	"reflect"
	"sort"
	"strconv"
	"strings"
)

const (
	// DefaultIndent is used when a negative indent is requested
	DefaultIndent = 2
	// MaxIndent caps the number of spaces per nesting level
	MaxIndent = 10
	// CircularMarker replaces a container that is already being written
	CircularMarker = "[Circular]"
)

// identity names a container on the current write path
type identity struct {
	ptr uintptr
	n   int
}

type serializer struct {
	buf    strings.Builder
	indent string
	path   map[identity]struct{}
}

// Serialize renders v as JSON text with indent spaces per nesting level.
// indent 0 renders compact JSON and a negative indent selects DefaultIndent.
//
// A container that appears again inside itself is written as the string
// "[Circular]". Only ancestors count, so a container shared by two siblings is
// written in full both times.
func Serialize(v any, indent int) string {
	if indent < 0 {
		indent = DefaultIndent
	}
	if indent > MaxIndent {
		indent = MaxIndent
	}
	s := &serializer{
		indent: strings.Repeat(" ", indent),
		path:   make(map[identity]struct{}),
	}
	s.write(v, 0)
	return s.buf.String()
}

func (s *serializer) write(v any, depth int) {
	switch val := v.(type) {
	case nil:
		s.buf.WriteString("null")
	case bool:
		s.buf.WriteString(strconv.FormatBool(val))
	case string:
		s.writeString(val)
	case Number:
		s.writeNumber(string(val))
	case json.Number:
		s.writeNumber(string(val))
	case float64:
		s.writeFloat(val, 64)
	case float32:
		s.writeFloat(float64(val), 32)
	case int:
		s.buf.WriteString(strconv.FormatInt(int64(val), 10))
	case int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		b, _ := json.Marshal(val)
		s.buf.Write(b)
	case *Object:
		if val == nil {
			s.buf.WriteString("null")
			return
		}
		s.enter(identity{ptr: uintptr(reflect.ValueOf(val).UnsafePointer()), n: -1}, func() {
			s.writeObject(val.keys, func(key string) any { return val.values[key] }, depth)
		})
	case *Array:
		if val == nil {
			s.buf.WriteString("null")
			return
		}
		s.enter(identity{ptr: uintptr(reflect.ValueOf(val).UnsafePointer()), n: -1}, func() {
			s.writeArray(val.Items, depth)
		})
	case []any:
		if val == nil {
			s.buf.WriteString("null")
			return
		}
		s.enter(identity{ptr: reflect.ValueOf(val).Pointer(), n: len(val)}, func() {
			s.writeArray(val, depth)
		})
	case map[string]any:
		if val == nil {
			s.buf.WriteString("null")
			return
		}
		keys := make([]string, 0, len(val))
		for k := range val {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		s.enter(identity{ptr: reflect.ValueOf(val).Pointer(), n: -2}, func() {
			s.writeObject(keys, func(key string) any { return val[key] }, depth)
		})
	default:
		s.writeForeign(val, depth)
	}
}

// enter runs fn with id on the path, or writes the marker if id is already there
func (s *serializer) enter(id identity, fn func()) {
	if _, onPath := s.path[id]; onPath {
		s.writeString(CircularMarker)
		return
	}
	s.path[id] = struct{}{}
	fn()
	delete(s.path, id)
}

func (s *serializer) writeObject(keys []string, get func(string) any, depth int) {
	if len(keys) == 0 {
		s.buf.WriteString("{}")
		return
	}
	s.buf.WriteByte('{')
	for i, key := range keys {
		if i > 0 {
			s.buf.WriteByte(',')
		}
		s.newline(depth + 1)
		s.writeString(key)
		s.buf.WriteByte(':')
		if s.indent != "" {
			s.buf.WriteByte(' ')
		}
		s.write(get(key), depth+1)
	}
	s.newline(depth)
	s.buf.WriteByte('}')
}

func (s *serializer) writeArray(items []any, depth int) {
	if len(items) == 0 {
		s.buf.WriteString("[]")
		return
	}
	s.buf.WriteByte('[')
	for i, item := range items {
		if i > 0 {
			s.buf.WriteByte(',')
		}
		s.newline(depth + 1)
		s.write(item, depth+1)
	}
	s.newline(depth)
	s.buf.WriteByte(']')
}

func (s *serializer) newline(depth int) {
	if s.indent == "" {
		return
	}
	s.buf.WriteByte('\n')
	for i := 0; i < depth; i++ {
		s.buf.WriteString(s.indent)
	}
}

func (s *serializer) writeString(str string) {
	var b bytes.Buffer
	enc := json.NewEncoder(&b)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(str); err != nil {
		s.buf.WriteString(strconv.Quote(str))
		return
	}
	s.buf.Write(bytes.TrimRight(b.Bytes(), "\n"))
}

func (s *serializer) writeNumber(literal string) {
	if literal == "" {
		s.buf.WriteString("null")
		return
	}
	s.buf.WriteString(literal)
}

// writeFloat writes NaN and infinities as null
func (s *serializer) writeFloat(f float64, bits int) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		s.buf.WriteString("null")
		return
	}
	var b []byte
	if bits == 32 {
		b, _ = json.Marshal(float32(f))
	} else {
		b, _ = json.Marshal(f)
	}
	s.buf.Write(b)
}

// writeForeign handles values outside the JsonValue model. Typed slices, maps
// with string keys and pointers are walked so their containers stay on the
// cycle path; structs and other scalars round-trip through encoding/json.
func (s *serializer) writeForeign(v any, depth int) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice:
		if rv.IsNil() {
			s.buf.WriteString("null")
			return
		}
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			s.writeMarshaled(v, depth)
			return
		}
		s.enter(identity{ptr: rv.Pointer(), n: rv.Len()}, func() {
			s.writeArray(reflectItems(rv), depth)
		})
	case reflect.Array:
		s.writeArray(reflectItems(rv), depth)
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			s.writeMarshaled(v, depth)
			return
		}
		if rv.IsNil() {
			s.buf.WriteString("null")
			return
		}
		keys := make([]string, 0, rv.Len())
		values := make(map[string]any, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			key := iter.Key().String()
			keys = append(keys, key)
			values[key] = iter.Value().Interface()
		}
		sort.Strings(keys)
		s.enter(identity{ptr: rv.Pointer(), n: -2}, func() {
			s.writeObject(keys, func(key string) any { return values[key] }, depth)
		})
	case reflect.Pointer:
		if rv.IsNil() {
			s.buf.WriteString("null")
			return
		}
		if rv.Elem().Kind() == reflect.Struct {
			s.writeMarshaled(v, depth)
			return
		}
		s.enter(identity{ptr: rv.Pointer(), n: -3}, func() {
			s.write(rv.Elem().Interface(), depth)
		})
	default:
		s.writeMarshaled(v, depth)
	}
}

func reflectItems(rv reflect.Value) []any {
	items := make([]any, rv.Len())
	for i := range items {
		items[i] = rv.Index(i).Interface()
	}
	return items
}

// writeMarshaled round-trips v through encoding/json. Values it cannot encode
// are written as null.
func (s *serializer) writeMarshaled(v any, depth int) {
	b, err := json.Marshal(v)
	if err != nil {
		s.buf.WriteString("null")
		return
	}
	parsed, err := Parse(string(b))
	if err != nil {
		s.buf.WriteString("null")
		return
	}
	s.write(parsed, depth)
}
