package liquid

import (
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"
)

// ValueKind identifies the variant held by a Value
type ValueKind int

// Value kind constants. The zero Value is Nil.
const (
	KindNil ValueKind = iota
	KindNumber
	KindString
	KindBoolean
	KindArray
	KindObject
)

// Value kind names, used in type mismatch errors
const (
	KindNameNil     = "nil"
	KindNameNumber  = "number"
	KindNameString  = "string"
	KindNameBoolean = "boolean"
	KindNameArray   = "array"
	KindNameObject  = "object"
	KindNameValue   = "convertible value"
)

// String returns the lowercase name of the kind
func (k ValueKind) String() string {
	switch k {
	case KindNumber:
		return KindNameNumber
	case KindString:
		return KindNameString
	case KindBoolean:
		return KindNameBoolean
	case KindArray:
		return KindNameArray
	case KindObject:
		return KindNameObject
	default:
		return KindNameNil
	}
}

// Value is the runtime datatype flowing through variables, conditions and filters.
// Values are immutable: constructors copy their input and accessors return copies.
type Value struct {
	kind ValueKind
	num  float64
	str  string
	b    bool
	arr  []Value
	obj  map[string]Value
}

// NewNumber creates a Number value
func NewNumber(n float64) Value {
	return Value{kind: KindNumber, num: n}
}

// NewString creates a String value
func NewString(s string) Value {
	return Value{kind: KindString, str: s}
}

// NewBool creates a Boolean value
func NewBool(b bool) Value {
	return Value{kind: KindBoolean, b: b}
}

// NewArray creates an Array value holding copies of items
func NewArray(items ...Value) Value {
	arr := make([]Value, len(items))
	for i, item := range items {
		arr[i] = item.Clone()
	}
	return Value{kind: KindArray, arr: arr}
}

// NewObject creates an Object value holding copies of fields
func NewObject(fields map[string]Value) Value {
	obj := make(map[string]Value, len(fields))
	for k, v := range fields {
		obj[k] = v.Clone()
	}
	return Value{kind: KindObject, obj: obj}
}

// Nil returns the nil value
func Nil() Value {
	return Value{}
}

// Kind returns the variant held by the value
func (v Value) Kind() ValueKind { return v.kind }

// IsNil reports whether the value is nil
func (v Value) IsNil() bool { return v.kind == KindNil }

// AsNumber returns the number and true if the value is a Number
func (v Value) AsNumber() (float64, bool) {
	return v.num, v.kind == KindNumber
}

// AsString returns the string and true if the value is a String
func (v Value) AsString() (string, bool) {
	return v.str, v.kind == KindString
}

// AsBool returns the boolean and true if the value is a Boolean
func (v Value) AsBool() (bool, bool) {
	return v.b, v.kind == KindBoolean
}

// AsArray returns a copy of the elements and true if the value is an Array
func (v Value) AsArray() ([]Value, bool) {
	if v.kind != KindArray {
		return nil, false
	}
	out := make([]Value, len(v.arr))
	copy(out, v.arr)
	return out, true
}

// AsObject returns a copy of the fields and true if the value is an Object
func (v Value) AsObject() (map[string]Value, bool) {
	if v.kind != KindObject {
		return nil, false
	}
	out := make(map[string]Value, len(v.obj))
	for k, f := range v.obj {
		out[k] = f
	}
	return out, true
}

// Len returns the element count of an Array or Object, the rune count of a String,
// and false for other variants.
func (v Value) Len() (int, bool) {
	switch v.kind {
	case KindArray:
		return len(v.arr), true
	case KindObject:
		return len(v.obj), true
	case KindString:
		return utf8.RuneCountInString(v.str), true
	default:
		return 0, false
	}
}

// Field returns a member of the value: an object key, an array index,
// or one of the size/first/last properties.
func (v Value) Field(name string) (Value, bool) {
	switch v.kind {
	case KindObject:
		if f, ok := v.obj[name]; ok {
			return f, true
		}
	case KindArray:
		if i, err := strconv.Atoi(name); err == nil {
			if i < 0 {
				i += len(v.arr)
			}
			if i >= 0 && i < len(v.arr) {
				return v.arr[i], true
			}
			return Value{}, false
		}
		switch name {
		case propFirst:
			if len(v.arr) > 0 {
				return v.arr[0], true
			}
			return Value{}, false
		case propLast:
			if len(v.arr) > 0 {
				return v.arr[len(v.arr)-1], true
			}
			return Value{}, false
		}
	}

	if name == propSize {
		if n, ok := v.Len(); ok {
			return NewNumber(float64(n)), true
		}
	}
	return Value{}, false
}

// Properties available through Field
const (
	propSize  = "size"
	propFirst = "first"
	propLast  = "last"
)

// Text renders the value as output text. Numbers use the shortest decimal form,
// arrays concatenate their elements, objects render as {k=v, ...} sorted by key.
func (v Value) Text() string {
	switch v.kind {
	case KindNumber:
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	case KindString:
		return v.str
	case KindBoolean:
		if v.b {
			return TextTrue
		}
		return TextFalse
	case KindArray:
		var sb strings.Builder
		for _, item := range v.arr {
			sb.WriteString(item.Text())
		}
		return sb.String()
	case KindObject:
		keys := make([]string, 0, len(v.obj))
		for k := range v.obj {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		var sb strings.Builder
		sb.WriteString(TextObjectOpen)
		for i, k := range keys {
			if i > 0 {
				sb.WriteString(TextObjectSep)
			}
			sb.WriteString(k)
			sb.WriteString(TextKeyValueSep)
			sb.WriteString(v.obj[k].Text())
		}
		sb.WriteString(TextObjectClose)
		return sb.String()
	default:
		return ""
	}
}

// String implements fmt.Stringer
func (v Value) String() string {
	return v.Text()
}

// Truthy applies the truthiness policy: Boolean as-is, Number nonzero,
// String/Array/Object non-empty, nil false.
func (v Value) Truthy() bool {
	switch v.kind {
	case KindBoolean:
		return v.b
	case KindNumber:
		return v.num != 0
	case KindString:
		return v.str != ""
	case KindArray:
		return len(v.arr) > 0
	case KindObject:
		return len(v.obj) > 0
	default:
		return false
	}
}

// Equal reports deep equality. Values of different kinds are never equal.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case KindNumber:
		return v.num == other.num
	case KindString:
		return v.str == other.str
	case KindBoolean:
		return v.b == other.b
	case KindArray:
		if len(v.arr) != len(other.arr) {
			return false
		}
		for i := range v.arr {
			if !v.arr[i].Equal(other.arr[i]) {
				return false
			}
		}
		return true
	case KindObject:
		if len(v.obj) != len(other.obj) {
			return false
		}
		for k, f := range v.obj {
			o, ok := other.obj[k]
			if !ok || !f.Equal(o) {
				return false
			}
		}
		return true
	default:
		return true
	}
}

// Clone returns a deep copy of the value
func (v Value) Clone() Value {
	switch v.kind {
	case KindArray:
		return NewArray(v.arr...)
	case KindObject:
		return NewObject(v.obj)
	default:
		return v
	}
}

// FromAny converts plain Go data into a Value. Supported: Value, nil, bool,
// string, all integer and float types, and slices and string-keyed maps of those.
func FromAny(data any) (Value, error) {
	switch d := data.(type) {
	case nil:
		return Nil(), nil
	case Value:
		return d.Clone(), nil
	case bool:
		return NewBool(d), nil
	case string:
		return NewString(d), nil
	case int:
		return NewNumber(float64(d)), nil
	case int8:
		return NewNumber(float64(d)), nil
	case int16:
		return NewNumber(float64(d)), nil
	case int32:
		return NewNumber(float64(d)), nil
	case int64:
		return NewNumber(float64(d)), nil
	case uint:
		return NewNumber(float64(d)), nil
	case uint8:
		return NewNumber(float64(d)), nil
	case uint16:
		return NewNumber(float64(d)), nil
	case uint32:
		return NewNumber(float64(d)), nil
	case uint64:
		return NewNumber(float64(d)), nil
	case float32:
		return NewNumber(float64(d)), nil
	case float64:
		return NewNumber(d), nil
	case []Value:
		return NewArray(d...), nil
	case map[string]Value:
		return NewObject(d), nil
	case []any:
		arr := make([]Value, len(d))
		for i, item := range d {
			v, err := FromAny(item)
			if err != nil {
				return Value{}, err
			}
			arr[i] = v
		}
		return Value{kind: KindArray, arr: arr}, nil
	case map[string]any:
		obj := make(map[string]Value, len(d))
		for k, item := range d {
			v, err := FromAny(item)
			if err != nil {
				return Value{}, err
			}
			obj[k] = v
		}
		return Value{kind: KindObject, obj: obj}, nil
	}

	return fromReflect(reflect.ValueOf(data))
}

// fromReflect handles typed slices and maps such as []string or map[string]int
func fromReflect(rv reflect.Value) (Value, error) {
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		arr := make([]Value, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			v, err := FromAny(rv.Index(i).Interface())
			if err != nil {
				return Value{}, err
			}
			arr[i] = v
		}
		return Value{kind: KindArray, arr: arr}, nil

	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			break
		}
		obj := make(map[string]Value, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			v, err := FromAny(iter.Value().Interface())
			if err != nil {
				return Value{}, err
			}
			obj[iter.Key().String()] = v
		}
		return Value{kind: KindObject, obj: obj}, nil

	case reflect.Pointer:
		if rv.IsNil() {
			return Nil(), nil
		}
		return FromAny(rv.Elem().Interface())
	}

	return Value{}, NewTypeMismatchError("", KindNameValue, fmt.Sprintf("%T", rv.Interface()))
}

// MustFromAny is like FromAny but panics on unsupported input. Intended for tests and literals.
func MustFromAny(data any) Value {
	v, err := FromAny(data)
	if err != nil {
		panic(err)
	}
	return v
}
