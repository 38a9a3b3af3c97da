package dom

import "sort"

// Object is a mapping from string keys to owned values. Keys are unique and
// ordered lexicographically by byte value; Keys, Range and serialization all
// follow that order, so the textual form of a given object is deterministic.
type Object struct {
	values map[string]Value
}

// NewObject creates an empty object.
func NewObject() *Object {
	return &Object{values: make(map[string]Value)}
}

// Kind reports KindObject.
func (o *Object) Kind() Kind {
	return KindObject
}

// Len returns the number of key/value pairs.
func (o *Object) Len() int {
	return len(o.values)
}

// Set inserts or replaces the value stored under key, taking ownership.
// Replacing discards the prior value and leaves the pair count unchanged.
func (o *Object) Set(key string, v Value) {
	if o.values == nil {
		o.values = make(map[string]Value)
	}
	o.values[key] = v
}

// Get returns the value stored under key, reporting whether the key exists.
func (o *Object) Get(key string) (Value, bool) {
	v, ok := o.values[key]
	return v, ok
}

// Contains reports whether a pair with exactly this key exists.
func (o *Object) Contains(key string) bool {
	_, ok := o.values[key]
	return ok
}

// Remove deletes the pair stored under key and returns the removed value,
// reporting whether the key existed.
func (o *Object) Remove(key string) (Value, bool) {
	v, ok := o.values[key]
	if ok {
		delete(o.values, key)
	}
	return v, ok
}

// Clear removes all pairs.
func (o *Object) Clear() {
	o.values = make(map[string]Value)
}

// Keys returns all keys in lexicographic order.
func (o *Object) Keys() []string {
	keys := make([]string, 0, len(o.values))
	for key := range o.values {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Range calls fn for each pair in key order until fn returns false.
func (o *Object) Range(fn func(key string, v Value) bool) {
	for _, key := range o.Keys() {
		if !fn(key, o.values[key]) {
			return
		}
	}
}

// Create returns a fresh empty object.
func (o *Object) Create() Value {
	return NewObject()
}

// Clone returns a deep copy: keys are copied and every value is cloned
// through CloneValue, so mutating the copy never touches the original.
func (o *Object) Clone() Value {
	values := make(map[string]Value, len(o.values))
	for key, v := range o.values {
		values[key] = CloneValue(v)
	}
	return &Object{values: values}
}

// MarshalJSON renders the object as JSON.
func (o *Object) MarshalJSON() ([]byte, error) {
	return o.appendJSON(nil, 0, DefaultMaxDepth)
}

// appendJSON emits "key":value pairs joined by commas, keys escaped the same
// way String payloads are. An empty object renders as {}.
func (o *Object) appendJSON(dst []byte, depth, maxDepth int) ([]byte, error) {
	if err := checkDepth(depth, maxDepth); err != nil {
		return nil, err
	}

	dst = append(dst, '{')
	for i, key := range o.Keys() {
		if i > 0 {
			dst = append(dst, ',')
		}
		dst = appendEscaped(dst, key)
		dst = append(dst, ':')
		var err error
		dst, err = o.values[key].appendJSON(dst, depth+1, maxDepth)
		if err != nil {
			return nil, err
		}
	}
	return append(dst, '}'), nil
}
