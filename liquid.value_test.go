package liquid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValue_Text(t *testing.T) {
	tests := []struct {
		name     string
		value    Value
		expected string
	}{
		{"nil", Nil(), ""},
		{"integer number", NewNumber(5), "5"},
		{"fractional number", NewNumber(2.5), "2.5"},
		{"negative number", NewNumber(-3), "-3"},
		{"string", NewString("hello"), "hello"},
		{"true", NewBool(true), "true"},
		{"false", NewBool(false), "false"},
		{"array concatenates", NewArray(NewNumber(1), NewString("a"), NewBool(true)), "1atrue"},
		{"empty array", NewArray(), ""},
		{"object sorted by key", NewObject(map[string]Value{
			"b": NewNumber(1),
			"a": NewString("x"),
		}), "{a=x, b=1}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.value.Text())
			assert.Equal(t, tt.expected, tt.value.String())
		})
	}
}

func TestValue_Truthy(t *testing.T) {
	tests := []struct {
		name     string
		value    Value
		expected bool
	}{
		{"nil", Nil(), false},
		{"zero value", Value{}, false},
		{"true", NewBool(true), true},
		{"false", NewBool(false), false},
		{"nonzero number", NewNumber(0.1), true},
		{"zero", NewNumber(0), false},
		{"string", NewString("a"), true},
		{"empty string", NewString(""), false},
		{"array", NewArray(Nil()), true},
		{"empty array", NewArray(), false},
		{"object", NewObject(map[string]Value{"k": Nil()}), true},
		{"empty object", NewObject(nil), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.value.Truthy())
		})
	}
}

func TestValue_Equal(t *testing.T) {
	nested := func() Value {
		return NewArray(NewNumber(1), NewObject(map[string]Value{"k": NewString("v")}))
	}

	assert.True(t, NewNumber(1).Equal(NewNumber(1)))
	assert.False(t, NewNumber(1).Equal(NewString("1")))
	assert.True(t, Nil().Equal(Nil()))
	assert.False(t, Nil().Equal(NewBool(false)))
	assert.True(t, nested().Equal(nested()))
	assert.False(t, nested().Equal(NewArray(NewNumber(1))))
	assert.False(t, NewObject(map[string]Value{"a": NewNumber(1)}).Equal(NewObject(map[string]Value{"b": NewNumber(1)})))
}

func TestValue_Field(t *testing.T) {
	arr := NewArray(NewNumber(22), NewNumber(23), NewNumber(24))
	obj := NewObject(map[string]Value{"name": NewString("ann")})

	tests := []struct {
		name     string
		value    Value
		field    string
		expected Value
		found    bool
	}{
		{"array index", arr, "1", NewNumber(23), true},
		{"negative array index", arr, "-1", NewNumber(24), true},
		{"array index out of range", arr, "5", Value{}, false},
		{"array first", arr, "first", NewNumber(22), true},
		{"array last", arr, "last", NewNumber(24), true},
		{"array size", arr, "size", NewNumber(3), true},
		{"first of empty array", NewArray(), "first", Value{}, false},
		{"object key", obj, "name", NewString("ann"), true},
		{"object size", obj, "size", NewNumber(1), true},
		{"object missing key", obj, "age", Value{}, false},
		{"object key named size wins", NewObject(map[string]Value{"size": NewString("XL")}), "size", NewString("XL"), true},
		{"string size counts runes", NewString("héllo"), "size", NewNumber(5), true},
		{"number has no fields", NewNumber(1), "size", Value{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.value.Field(tt.field)
			assert.Equal(t, tt.found, ok)
			if tt.found {
				assert.True(t, tt.expected.Equal(got), "got %s", got)
			}
		})
	}
}

func TestValue_Immutability(t *testing.T) {
	t.Run("array constructor copies input", func(t *testing.T) {
		items := []Value{NewNumber(1), NewNumber(2)}
		arr := NewArray(items...)
		items[0] = NewString("changed")

		got, ok := arr.AsArray()
		require.True(t, ok)
		assert.True(t, NewNumber(1).Equal(got[0]))
	})

	t.Run("accessors return copies", func(t *testing.T) {
		arr := NewArray(NewNumber(1))
		got, _ := arr.AsArray()
		got[0] = NewString("changed")

		again, _ := arr.AsArray()
		assert.True(t, NewNumber(1).Equal(again[0]))

		obj := NewObject(map[string]Value{"k": NewNumber(1)})
		fields, _ := obj.AsObject()
		fields["k"] = NewString("changed")
		delete(fields, "k")

		v, ok := obj.Field("k")
		require.True(t, ok)
		assert.True(t, NewNumber(1).Equal(v))
	})

	t.Run("accessors report the wrong variant", func(t *testing.T) {
		_, ok := NewString("a").AsNumber()
		assert.False(t, ok)
		_, ok = NewNumber(1).AsString()
		assert.False(t, ok)
		_, ok = NewNumber(1).AsBool()
		assert.False(t, ok)
		_, ok = NewNumber(1).AsArray()
		assert.False(t, ok)
		_, ok = NewArray().AsObject()
		assert.False(t, ok)
	})
}

func TestFromAny(t *testing.T) {
	n := 7
	var nilPtr *int

	tests := []struct {
		name     string
		input    any
		expected Value
	}{
		{"nil", nil, Nil()},
		{"bool", true, NewBool(true)},
		{"string", "x", NewString("x")},
		{"int", 5, NewNumber(5)},
		{"int64", int64(-2), NewNumber(-2)},
		{"uint8", uint8(9), NewNumber(9)},
		{"float32", float32(1.5), NewNumber(1.5)},
		{"value", NewString("v"), NewString("v")},
		{"any slice", []any{22, "wat"}, NewArray(NewNumber(22), NewString("wat"))},
		{"typed slice", []string{"a", "b"}, NewArray(NewString("a"), NewString("b"))},
		{"any map", map[string]any{"k": 1}, NewObject(map[string]Value{"k": NewNumber(1)})},
		{"typed map", map[string]int{"k": 1}, NewObject(map[string]Value{"k": NewNumber(1)})},
		{"pointer", &n, NewNumber(7)},
		{"nil pointer", nilPtr, Nil()},
		{"nested", map[string]any{"items": []any{map[string]any{"id": 1}}},
			NewObject(map[string]Value{"items": NewArray(NewObject(map[string]Value{"id": NewNumber(1)}))})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FromAny(tt.input)
			require.NoError(t, err)
			assert.True(t, tt.expected.Equal(got), "got %s", got)
			assert.Equal(t, tt.expected.Kind(), got.Kind())
		})
	}

	t.Run("unsupported type", func(t *testing.T) {
		_, err := FromAny(struct{ A int }{A: 1})
		require.Error(t, err)
		assert.Equal(t, ReasonTypeMismatch, ReasonOf(err))
		expected, _ := MetadataOf(err, MetaKeyExpected)
		assert.Equal(t, KindNameValue, expected)
	})

	t.Run("unsupported map key", func(t *testing.T) {
		_, err := FromAny(map[int]string{1: "a"})
		require.Error(t, err)
		assert.True(t, IsRenderError(err))
	})

	t.Run("MustFromAny panics on unsupported input", func(t *testing.T) {
		assert.Panics(t, func() { MustFromAny(make(chan int)) })
		assert.NotPanics(t, func() { MustFromAny([]int{1}) })
	})
}

func TestValueKind_String(t *testing.T) {
	assert.Equal(t, "nil", KindNil.String())
	assert.Equal(t, "number", KindNumber.String())
	assert.Equal(t, "string", KindString.String())
	assert.Equal(t, "boolean", KindBoolean.String())
	assert.Equal(t, "array", KindArray.String())
	assert.Equal(t, "object", KindObject.String())
}
