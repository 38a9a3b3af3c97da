package dom

import (
	"fmt"

	"github.com/mcncl/jsoncanon/internal/errors"
)

// Array is an ordered sequence of owned values. Indices run 0..Len()-1 and
// iteration follows insertion order.
type Array struct {
	values []Value
}

// NewArray creates an array owning the given values.
func NewArray(values ...Value) *Array {
	return &Array{values: values}
}

// Kind reports KindArray.
func (a *Array) Kind() Kind {
	return KindArray
}

// Len returns the number of elements.
func (a *Array) Len() int {
	return len(a.values)
}

// At returns the element at index i. It fails with errors.ErrIndexOutOfRange
// for any index outside 0..Len()-1.
func (a *Array) At(i int) (Value, error) {
	if i < 0 || i >= len(a.values) {
		return nil, a.rangeError(i)
	}
	return a.values[i], nil
}

// Set replaces the element at index i, discarding the prior value.
func (a *Array) Set(i int, v Value) error {
	if i < 0 || i >= len(a.values) {
		return a.rangeError(i)
	}
	a.values[i] = v
	return nil
}

// Append adds values to the end of the array, taking ownership.
func (a *Array) Append(values ...Value) {
	a.values = append(a.values, values...)
}

// Insert places v at index i, shifting later elements right. i may equal
// Len(), which appends.
func (a *Array) Insert(i int, v Value) error {
	if i < 0 || i > len(a.values) {
		return a.rangeError(i)
	}
	a.values = append(a.values, nil)
	copy(a.values[i+1:], a.values[i:])
	a.values[i] = v
	return nil
}

// Remove deletes the element at index i, shifting later elements left, and
// returns the removed value.
func (a *Array) Remove(i int) (Value, error) {
	if i < 0 || i >= len(a.values) {
		return nil, a.rangeError(i)
	}
	removed := a.values[i]
	copy(a.values[i:], a.values[i+1:])
	a.values[len(a.values)-1] = nil
	a.values = a.values[:len(a.values)-1]
	return removed, nil
}

// Clear removes all elements.
func (a *Array) Clear() {
	a.values = nil
}

// Range calls fn for each element in index order until fn returns false.
func (a *Array) Range(fn func(i int, v Value) bool) {
	for i, v := range a.values {
		if !fn(i, v) {
			return
		}
	}
}

// Create returns a fresh empty array.
func (a *Array) Create() Value {
	return NewArray()
}

// Clone returns a deep copy: every element is cloned through CloneValue, so
// mutating the copy never touches the original.
func (a *Array) Clone() Value {
	if len(a.values) == 0 {
		return NewArray()
	}
	values := make([]Value, len(a.values))
	for i, v := range a.values {
		values[i] = CloneValue(v)
	}
	return &Array{values: values}
}

// MarshalJSON renders the array as JSON.
func (a *Array) MarshalJSON() ([]byte, error) {
	return a.appendJSON(nil, 0, DefaultMaxDepth)
}

// appendJSON joins elements with ", ". An empty array renders as [] and a
// single element carries no separator.
func (a *Array) appendJSON(dst []byte, depth, maxDepth int) ([]byte, error) {
	if err := checkDepth(depth, maxDepth); err != nil {
		return nil, err
	}

	dst = append(dst, '[')
	for i, v := range a.values {
		if i > 0 {
			dst = append(dst, ", "...)
		}
		var err error
		dst, err = v.appendJSON(dst, depth+1, maxDepth)
		if err != nil {
			return nil, err
		}
	}
	return append(dst, ']'), nil
}

func (a *Array) rangeError(i int) error {
	return errors.NewDocumentError(
		fmt.Sprintf("index %d out of range for array of length %d", i, len(a.values)),
		errors.ErrIndexOutOfRange,
	)
}
