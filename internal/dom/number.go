package dom

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/mcncl/jsoncanon/internal/errors"
)

// NumberKind discriminates the two payloads a Number can hold.
type NumberKind int

const (
	Integer NumberKind = iota
	Float
)

// String returns the payload kind name, for diagnostics.
func (k NumberKind) String() string {
	switch k {
	case Integer:
		return "integer"
	case Float:
		return "float"
	default:
		return "unknown"
	}
}

// Number is a JSON number holding either a 64-bit integer or a double,
// never both. Exactly one payload is meaningful at a time, selected by the
// kind discriminator; the typed accessors fail when asked for the inactive
// one. Integers serialize without a decimal point, floats always with one
// (or an exponent), in the shortest form that round-trips.
type Number struct {
	kind    NumberKind
	integer int64
	float   float64
}

// NewInt creates an integer-kinded number.
func NewInt(value int64) *Number {
	return &Number{kind: Integer, integer: value}
}

// NewFloat creates a float-kinded number.
func NewFloat(value float64) *Number {
	return &Number{kind: Float, float: value}
}

// Kind reports KindNumber.
func (n *Number) Kind() Kind {
	return KindNumber
}

// NumberKind reports which payload is active.
func (n *Number) NumberKind() NumberKind {
	return n.kind
}

// Int returns the integer payload. It fails with errors.ErrWrongNumberKind
// when the number holds a float.
func (n *Number) Int() (int64, error) {
	if n.kind != Integer {
		return 0, errors.NewDocumentError(
			fmt.Sprintf("number holds a %s, not an integer", n.kind),
			errors.ErrWrongNumberKind,
		)
	}
	return n.integer, nil
}

// Float returns the float payload. It fails with errors.ErrWrongNumberKind
// when the number holds an integer.
func (n *Number) Float() (float64, error) {
	if n.kind != Float {
		return 0, errors.NewDocumentError(
			fmt.Sprintf("number holds an %s, not a float", n.kind),
			errors.ErrWrongNumberKind,
		)
	}
	return n.float, nil
}

// SetInt replaces the payload with an integer, retagging the number.
func (n *Number) SetInt(value int64) {
	n.kind = Integer
	n.integer = value
	n.float = 0
}

// SetFloat replaces the payload with a float, retagging the number.
func (n *Number) SetFloat(value float64) {
	n.kind = Float
	n.float = value
	n.integer = 0
}

// Create returns a fresh integer zero.
func (n *Number) Create() Value {
	return NewInt(0)
}

// Clone returns an independent copy of the tag and active payload.
func (n *Number) Clone() Value {
	clone := *n
	return &clone
}

// MarshalJSON renders the value as JSON.
func (n *Number) MarshalJSON() ([]byte, error) {
	return n.appendJSON(nil, 0, DefaultMaxDepth)
}

func (n *Number) appendJSON(dst []byte, depth, maxDepth int) ([]byte, error) {
	if n.kind == Integer {
		return strconv.AppendInt(dst, n.integer, 10), nil
	}

	if math.IsNaN(n.float) || math.IsInf(n.float, 0) {
		return nil, errors.NewDocumentError(
			fmt.Sprintf("cannot serialize %v", n.float),
			errors.ErrNonFiniteNumber,
		)
	}

	// Shortest form that parses back to the same float. FormatFloat drops the
	// decimal point for whole values, so restore it to keep floats textually
	// distinct from integers.
	text := strconv.FormatFloat(n.float, 'g', -1, 64)
	if !strings.ContainsAny(text, ".eE") {
		text += ".0"
	}
	return append(dst, text...), nil
}
