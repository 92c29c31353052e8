package toon

import "math"

// Kind identifies which variant a Value holds.
type Kind int8

// The six TOON value variants (spec §3).
const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
	numKinds
)

var kindNames = [numKinds]string{
	"null", "bool", "number", "string", "array", "object",
}

// String returns a human-readable name for k, or "<unknown>" if k is out of
// range.
func (k Kind) String() string {
	if k < 0 || k >= numKinds {
		return "<unknown>"
	}
	return kindNames[k]
}

// Field is a single key/value entry of an Object. Order of Fields within an
// Object is significant: it controls encode output order and, for tabular
// arrays, column order.
type Field struct {
	Key   string
	Value Value
}

// Object is an ordered sequence of key/value Fields. It is a sequence, not a
// set: iteration is always in insertion order, and the data model permits
// (without producing) duplicate keys.
type Object struct {
	Fields []Field
}

// NewObjectValue builds an Object-kind Value from the given fields, in order.
func NewObjectValue(fields ...Field) Value {
	return Value{kind: KindObject, object: Object{Fields: fields}}
}

// Len returns the number of fields in o.
func (o Object) Len() int { return len(o.Fields) }

// Get returns the value of the first field named key and true, or the zero
// Value and false if no such field exists.
func (o Object) Get(key string) (Value, bool) {
	for _, f := range o.Fields {
		if f.Key == key {
			return f.Value, true
		}
	}
	return Value{}, false
}

// Append returns a copy of o with (key, v) appended as a new field.
func (o Object) Append(key string, v Value) Object {
	fields := make([]Field, len(o.Fields), len(o.Fields)+1)
	copy(fields, o.Fields)
	return Object{Fields: append(fields, Field{Key: key, Value: v})}
}

// Keys returns the field names of o, in order.
func (o Object) Keys() []string {
	keys := make([]string, len(o.Fields))
	for i, f := range o.Fields {
		keys[i] = f.Key
	}
	return keys
}

// Value is the tagged in-memory tree at the center of the codec: every
// document decodes to one Value, and every Value can be encoded. Each Value
// owns its children outright — copying a Value copies the header only, since
// Go slices/strings are themselves reference types, but no Value aliases
// another tree's identity in a way that matters to the codec.
type Value struct {
	kind   Kind
	bval   bool
	nval   float64
	sval   string
	arr    []Value
	object Object
}

// Null returns the Null value.
func Null() Value { return Value{kind: KindNull} }

// Bool returns a Bool value wrapping b.
func Bool(b bool) Value { return Value{kind: KindBool, bval: b} }

// Number returns a Number value wrapping n. NaN and ±Inf are normalized to
// Null at construction time, matching the encoder's non-finite rule (spec
// §3, §4.4) so callers never need to special-case them later.
func Number(n float64) Value {
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return Null()
	}
	return Value{kind: KindNumber, nval: n}
}

// String returns a String value wrapping s.
func String(s string) Value { return Value{kind: KindString, sval: s} }

// Array returns an Array value containing items, in order.
func Array(items ...Value) Value {
	return Value{kind: KindArray, arr: items}
}

// NewObject returns an Object value built from fields, in order.
func NewObject(fields ...Field) Value {
	return NewObjectValue(fields...)
}

// Kind reports which variant v holds.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether v is Null.
func (v Value) IsNull() bool { return v.kind == KindNull }

// IsPrimitive reports whether v is null, bool, number, or string — the
// leaf kinds a tabular array's rows and a primitive array's items must be
// made of (spec §3).
func (v Value) IsPrimitive() bool {
	switch v.kind {
	case KindNull, KindBool, KindNumber, KindString:
		return true
	default:
		return false
	}
}

// AsBool returns v's bool payload and true if v is a Bool, else false, false.
func (v Value) AsBool() (bool, bool) {
	if v.kind != KindBool {
		return false, false
	}
	return v.bval, true
}

// AsNumber returns v's float64 payload and true if v is a Number, else
// 0, false.
func (v Value) AsNumber() (float64, bool) {
	if v.kind != KindNumber {
		return 0, false
	}
	return v.nval, true
}

// AsString returns v's string payload and true if v is a String, else
// "", false.
func (v Value) AsString() (string, bool) {
	if v.kind != KindString {
		return "", false
	}
	return v.sval, true
}

// AsArray returns v's items and true if v is an Array, else nil, false.
func (v Value) AsArray() ([]Value, bool) {
	if v.kind != KindArray {
		return nil, false
	}
	return v.arr, true
}

// AsObject returns v's Object and true if v is an Object, else
// Object{}, false.
func (v Value) AsObject() (Object, bool) {
	if v.kind != KindObject {
		return Object{}, false
	}
	return v.object, true
}

// Equal reports whether v and other are structurally identical: same kind,
// same payload, same Object field order, same Array item order. It is the
// equality used by the round-trip invariants in spec §8.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case KindNull:
		return true
	case KindBool:
		return v.bval == other.bval
	case KindNumber:
		return v.nval == other.nval
	case KindString:
		return v.sval == other.sval
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
		if len(v.object.Fields) != len(other.object.Fields) {
			return false
		}
		for i := range v.object.Fields {
			a, b := v.object.Fields[i], other.object.Fields[i]
			if a.Key != b.Key || !a.Value.Equal(b.Value) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
