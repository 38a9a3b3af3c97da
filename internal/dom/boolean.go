package dom

// Boolean is a JSON true/false value. The zero value renders as false.
type Boolean struct {
	value bool
}

// NewBoolean creates a boolean value.
func NewBoolean(value bool) *Boolean {
	return &Boolean{value: value}
}

// Kind reports KindBoolean.
func (b *Boolean) Kind() Kind {
	return KindBoolean
}

// Bool returns the payload.
func (b *Boolean) Bool() bool {
	return b.value
}

// SetBool replaces the payload.
func (b *Boolean) SetBool(value bool) {
	b.value = value
}

// Create returns a fresh boolean with the default value false.
func (b *Boolean) Create() Value {
	return NewBoolean(false)
}

// Clone returns an independent copy.
func (b *Boolean) Clone() Value {
	return NewBoolean(b.value)
}

// MarshalJSON renders the value as JSON.
func (b *Boolean) MarshalJSON() ([]byte, error) {
	return b.appendJSON(nil, 0, DefaultMaxDepth)
}

func (b *Boolean) appendJSON(dst []byte, depth, maxDepth int) ([]byte, error) {
	if b.value {
		return append(dst, "true"...), nil
	}
	return append(dst, "false"...), nil
}
