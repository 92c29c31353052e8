package toon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeScalarRoot(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		v    Value
		want string
	}{
		{Null(), "null"},
		{Bool(true), "true"},
		{Number(0), "0"},
		{Number(42), "42"},
		{Number(-3), "-3"},
		{Number(1.5), "1.5"},
		{String("hello"), "hello"},
		{String("needs quoting"), `"needs quoting"`},
	} {
		got, err := EncodeString(tc.v, DefaultEncodeOptions())
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "encode(%v)", tc.v)
	}
}

func TestEncodeObjectFields(t *testing.T) {
	t.Parallel()

	v := NewObject(
		Field{Key: "name", Value: String("Ada")},
		Field{Key: "age", Value: Number(36)},
	)
	got, err := EncodeString(v, DefaultEncodeOptions())
	require.NoError(t, err)
	assert.Equal(t, "name: Ada\nage: 36", got)
}

func TestEncodeNestedObject(t *testing.T) {
	t.Parallel()

	v := NewObject(Field{Key: "outer", Value: NewObject(
		Field{Key: "inner", Value: Number(1)},
	)})
	got, err := EncodeString(v, DefaultEncodeOptions())
	require.NoError(t, err)
	assert.Equal(t, "outer:\n  inner: 1", got)
}

func TestEncodeEmptyNestedObject(t *testing.T) {
	t.Parallel()

	v := NewObject(Field{Key: "outer", Value: NewObject()})
	got, err := EncodeString(v, DefaultEncodeOptions())
	require.NoError(t, err)
	assert.Equal(t, "outer:", got)
}

func TestEncodePrimitiveArray(t *testing.T) {
	t.Parallel()

	v := NewObject(Field{Key: "nums", Value: Array(Number(1), Number(2), Number(3))})
	got, err := EncodeString(v, DefaultEncodeOptions())
	require.NoError(t, err)
	assert.Equal(t, "nums[3]: 1,2,3", got)
}

func TestEncodeEmptyArray(t *testing.T) {
	t.Parallel()

	v := NewObject(Field{Key: "nums", Value: Array()})
	got, err := EncodeString(v, DefaultEncodeOptions())
	require.NoError(t, err)
	assert.Equal(t, "nums[0]:", got)
}

func TestEncodeTabularArray(t *testing.T) {
	t.Parallel()

	row := func(id float64, name string) Value {
		return NewObject(Field{Key: "id", Value: Number(id)}, Field{Key: "name", Value: String(name)})
	}
	v := NewObject(Field{Key: "users", Value: Array(row(1, "a"), row(2, "b"))})
	got, err := EncodeString(v, DefaultEncodeOptions())
	require.NoError(t, err)
	assert.Equal(t, "users[2]{id,name}:\n  1,a\n  2,b", got)
}

func TestEncodeListArrayFallback(t *testing.T) {
	t.Parallel()

	row1 := NewObject(Field{Key: "id", Value: Number(1)}, Field{Key: "tags", Value: Array(String("x"), String("y"))})
	row2 := NewObject(Field{Key: "id", Value: Number(2)})
	v := NewObject(Field{Key: "items", Value: Array(row1, row2)})

	got, err := EncodeString(v, DefaultEncodeOptions())
	require.NoError(t, err)
	assert.Equal(t, "items[2]:\n  - id: 1\n    tags[2]: x,y\n  - id: 2", got)
}

func TestEncodeEmptyObjectListItem(t *testing.T) {
	t.Parallel()

	v := Array(NewObject(), NewObject(Field{Key: "a", Value: Number(1)}))
	got, err := EncodeString(v, DefaultEncodeOptions())
	require.NoError(t, err)
	assert.Equal(t, "[2]:\n  -\n  - a: 1", got)
}

func TestEncodeLengthMarkers(t *testing.T) {
	t.Parallel()

	v := NewObject(Field{Key: "nums", Value: Array(Number(1), Number(2))})
	got, err := EncodeString(v, EncodeOptions{Indent: 2, Delimiter: DelimiterComma, LengthMarkers: true})
	require.NoError(t, err)
	assert.Equal(t, "nums[#2]: 1,2", got)

	back, err := Decode(got, DefaultDecodeOptions())
	require.NoError(t, err, "decode(%q)", got)
	assert.True(t, v.Equal(back), "decode(%q) = %v, want %v", got, back, v)
}

func TestFormatNumber(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		n    float64
		want string
	}{
		{0, "0"},
		{-0.0, "0"},
		{42, "42"},
		{-42, "-42"},
		{1.5, "1.5"},
		{100000000000000, "100000000000000"},
		{1e20, "1e+20"},
	} {
		assert.Equal(t, tc.want, formatNumber(tc.n), "formatNumber(%v)", tc.n)
	}
}

func TestDetectTabularRejectsHeterogeneousFields(t *testing.T) {
	t.Parallel()

	a := NewObject(Field{Key: "a", Value: Number(1)})
	b := NewObject(Field{Key: "b", Value: Number(2)})
	_, ok := detectTabular([]Value{a, b})
	assert.False(t, ok)
}

func TestDetectTabularRejectsNestedFields(t *testing.T) {
	t.Parallel()

	a := NewObject(Field{Key: "a", Value: NewObject()})
	_, ok := detectTabular([]Value{a})
	assert.False(t, ok)
}
