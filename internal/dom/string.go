package dom

// String is a JSON string value. The payload is held in raw (unescaped) form
// and escaped only at serialization time.
type String struct {
	value string
}

// NewString creates a string value from a raw (unescaped) payload.
func NewString(value string) *String {
	return &String{value: value}
}

// Kind reports KindString.
func (s *String) Kind() Kind {
	return KindString
}

// Value returns the raw payload.
func (s *String) Value() string {
	return s.value
}

// SetValue replaces the raw payload.
func (s *String) SetValue(value string) {
	s.value = value
}

// Create returns a fresh empty string value.
func (s *String) Create() Value {
	return NewString("")
}

// Clone returns an independent copy.
func (s *String) Clone() Value {
	return NewString(s.value)
}

// MarshalJSON renders the value as JSON.
func (s *String) MarshalJSON() ([]byte, error) {
	return s.appendJSON(nil, 0, DefaultMaxDepth)
}

func (s *String) appendJSON(dst []byte, depth, maxDepth int) ([]byte, error) {
	return appendEscaped(dst, s.value), nil
}
