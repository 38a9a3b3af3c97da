package dom

// Null is the JSON null value. It carries no payload.
type Null struct{}

// NewNull creates a null value.
func NewNull() *Null {
	return &Null{}
}

// Kind reports KindNull.
func (n *Null) Kind() Kind {
	return KindNull
}

// Create returns a fresh null value.
func (n *Null) Create() Value {
	return NewNull()
}

// Clone returns an independent null value.
func (n *Null) Clone() Value {
	return NewNull()
}

// MarshalJSON renders the value as JSON.
func (n *Null) MarshalJSON() ([]byte, error) {
	return n.appendJSON(nil, 0, DefaultMaxDepth)
}

func (n *Null) appendJSON(dst []byte, depth, maxDepth int) ([]byte, error) {
	return append(dst, "null"...), nil
}
