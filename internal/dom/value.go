// Package dom implements an in-memory JSON document model: a closed set of
// value variants (Null, Boolean, String, Number, Array, Object) that can be
// deep-cloned and serialized to canonical JSON text.
//
// Containers own their children. Inserting a value into an Array or Object
// hands it over; a value that must live in two places is inserted as a Clone.
package dom

import (
	"github.com/mcncl/jsoncanon/internal/errors"
)

// Kind identifies the concrete variant of a Value.
type Kind int

const (
	KindNull Kind = iota
	KindBoolean
	KindString
	KindNumber
	KindArray
	KindObject
)

// String returns the variant name, for diagnostics.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBoolean:
		return "boolean"
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "unknown"
	}
}

// DefaultMaxDepth is the nesting limit applied by Marshal and MarshalString.
// It matches the limit encoding/json applies when decoding.
const DefaultMaxDepth = 10000

// Value is a node in a JSON document. The variant set is closed: only the six
// types in this package implement it.
//
// Every variant supports the same three capabilities:
//
//   - MarshalJSON: canonical JSON text for the subtree rooted at the node.
//   - Create: a new, empty instance of the same concrete variant.
//   - Clone: a deep copy sharing no mutable state with the original.
type Value interface {
	// Kind reports which concrete variant this value is.
	Kind() Kind

	// Create returns a fresh default instance of the same concrete variant,
	// not a copy of this instance's data.
	Create() Value

	// Clone returns a deep, fully independent copy of this value.
	Clone() Value

	// MarshalJSON renders the subtree as canonical JSON. It fails with
	// errors.ErrNesting when the subtree is deeper than DefaultMaxDepth and
	// with errors.ErrNonFiniteNumber for NaN or infinite floats.
	MarshalJSON() ([]byte, error)

	// appendJSON appends the canonical JSON text to dst. depth is the number
	// of containers already open above this node; implementations for
	// containers bump it and check it against the encoder limit. The method
	// is unexported to keep the variant set closed.
	appendJSON(dst []byte, depth, maxDepth int) ([]byte, error)
}

// CloneValue deep-copies a value through the abstract interface. It exists so
// containers can clone heterogeneous children without switching on variants.
func CloneValue(v Value) Value {
	return v.Clone()
}

// Marshal renders a value as canonical JSON text using DefaultMaxDepth.
func Marshal(v Value) ([]byte, error) {
	return MarshalWithLimit(v, DefaultMaxDepth)
}

// MarshalWithLimit renders a value as canonical JSON text, failing with
// errors.ErrNesting once container nesting exceeds maxDepth.
func MarshalWithLimit(v Value, maxDepth int) ([]byte, error) {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	return v.appendJSON(nil, 0, maxDepth)
}

// MarshalString is Marshal returning a string.
func MarshalString(v Value) (string, error) {
	b, err := Marshal(v)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// checkDepth guards container recursion during serialization so pathological
// nesting surfaces as a defined failure rather than stack exhaustion.
func checkDepth(depth, maxDepth int) error {
	if depth >= maxDepth {
		return errors.NewDocumentError("document too deep to serialize", errors.ErrNesting)
	}
	return nil
}
