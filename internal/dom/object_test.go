package dom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObject_Serialization(t *testing.T) {
	t.Run("empty object renders as bare braces", func(t *testing.T) {
		assert.Equal(t, "{}", mustMarshal(t, NewObject()))
	})

	t.Run("single pair carries no separator", func(t *testing.T) {
		obj := NewObject()
		obj.Set("x", NewInt(3))
		assert.Equal(t, `{"x":3}`, mustMarshal(t, obj))
	})

	t.Run("pairs joined by comma in key order", func(t *testing.T) {
		obj := NewObject()
		obj.Set("zebra", NewInt(1))
		obj.Set("apple", NewInt(2))
		obj.Set("mango", NewInt(3))
		assert.Equal(t, `{"apple":2,"mango":3,"zebra":1}`, mustMarshal(t, obj))
	})

	t.Run("keys are escaped", func(t *testing.T) {
		obj := NewObject()
		obj.Set("a/b", NewNull())
		assert.Equal(t, `{"a\/b":null}`, mustMarshal(t, obj))
	})

	t.Run("nested containers", func(t *testing.T) {
		inner := NewObject()
		inner.Set("ok", NewBoolean(true))
		obj := NewObject()
		obj.Set("inner", inner)
		obj.Set("list", NewArray(NewInt(1)))
		assert.Equal(t, `{"inner":{"ok":true},"list":[1]}`, mustMarshal(t, obj))
	})
}

func TestObject_LookupAndContains(t *testing.T) {
	obj := NewObject()
	obj.Set("name", NewString("gopher"))

	assert.True(t, obj.Contains("name"))
	assert.False(t, obj.Contains("Name"), "keys match exactly")
	assert.False(t, obj.Contains("missing"))

	v, ok := obj.Get("name")
	require.True(t, ok)
	assert.Equal(t, `"gopher"`, mustMarshal(t, v))

	_, ok = obj.Get("missing")
	assert.False(t, ok)
}

func TestObject_ReplaceOnInsert(t *testing.T) {
	obj := NewObject()
	obj.Set("k", NewInt(1))
	require.Equal(t, 1, obj.Len())

	obj.Set("k", NewInt(2))
	assert.Equal(t, 1, obj.Len(), "re-inserting a key must not duplicate the pair")

	v, ok := obj.Get("k")
	require.True(t, ok)
	assert.Equal(t, "2", mustMarshal(t, v))
}

func TestObject_Remove(t *testing.T) {
	obj := NewObject()
	obj.Set("a", NewInt(1))
	obj.Set("b", NewInt(2))

	removed, ok := obj.Remove("a")
	require.True(t, ok)
	assert.Equal(t, "1", mustMarshal(t, removed))
	assert.Equal(t, 1, obj.Len())
	assert.False(t, obj.Contains("a"))

	_, ok = obj.Remove("a")
	assert.False(t, ok)
}

func TestObject_KeysSorted(t *testing.T) {
	obj := NewObject()
	for _, k := range []string{"delta", "alpha", "charlie", "bravo"} {
		obj.Set(k, NewNull())
	}
	assert.Equal(t, []string{"alpha", "bravo", "charlie", "delta"}, obj.Keys())
}

func TestObject_RangeFollowsKeyOrder(t *testing.T) {
	obj := NewObject()
	obj.Set("b", NewInt(2))
	obj.Set("a", NewInt(1))
	obj.Set("c", NewInt(3))

	var keys []string
	obj.Range(func(key string, v Value) bool {
		keys = append(keys, key)
		return true
	})
	assert.Equal(t, []string{"a", "b", "c"}, keys)

	var visited int
	obj.Range(func(key string, v Value) bool {
		visited++
		return false
	})
	assert.Equal(t, 1, visited)
}

func TestObject_CloneIsDeep(t *testing.T) {
	obj := NewObject()
	obj.Set("list", NewArray(NewInt(1)))

	clone := obj.Clone().(*Object)
	v, ok := clone.Get("list")
	require.True(t, ok)
	v.(*Array).Append(NewInt(2))
	clone.Set("extra", NewNull())

	assert.Equal(t, `{"list":[1]}`, mustMarshal(t, obj))
	assert.Equal(t, `{"extra":null,"list":[1, 2]}`, mustMarshal(t, clone))
}

func TestObject_ClearAndZeroValue(t *testing.T) {
	obj := NewObject()
	obj.Set("k", NewNull())
	obj.Clear()
	assert.Equal(t, 0, obj.Len())
	assert.Equal(t, "{}", mustMarshal(t, obj))

	// A zero-valued Object must accept Set without prior initialization.
	var zero Object
	zero.Set("k", NewInt(1))
	assert.Equal(t, `{"k":1}`, mustMarshal(t, &zero))
}
