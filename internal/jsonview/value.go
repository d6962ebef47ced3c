package jsonview

// Number is a JSON number kept as its original literal text
type Number string

// Object is a JSON object that remembers the order its keys were inserted in
type Object struct {
	keys   []string
	values map[string]any
}

// NewObject creates an empty ordered object
func NewObject() *Object {
	return &Object{values: make(map[string]any)}
}

// Set stores a value. Re-setting an existing key keeps its original position.
func (o *Object) Set(key string, value any) {
	if _, exists := o.values[key]; !exists {
		o.keys = append(o.keys, key)
	}
	o.values[key] = value
}

// Get returns the value stored under key
func (o *Object) Get(key string) (any, bool) {
	v, ok := o.values[key]
	return v, ok
}

// Keys returns the keys in insertion order
func (o *Object) Keys() []string {
	keys := make([]string, len(o.keys))
	copy(keys, o.keys)
	return keys
}

// Len returns the number of keys
func (o *Object) Len() int {
	return len(o.keys)
}

// Array is a JSON array
type Array struct {
	Items []any
}

// NewArray creates an array holding items
func NewArray(items ...any) *Array {
	return &Array{Items: items}
}

// Append adds an item to the end of the array
func (a *Array) Append(item any) {
	a.Items = append(a.Items, item)
}

// Len returns the number of items
func (a *Array) Len() int {
	return len(a.Items)
}
