package toon

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func roundTrip(t *testing.T, v Value) Value {
	t.Helper()
	src, err := EncodeString(v, DefaultEncodeOptions())
	require.NoError(t, err)
	got, err := Decode(src, DefaultDecodeOptions())
	require.NoError(t, err, "decoding own encoder output: %q", src)
	return got
}

func TestRoundTripScalars(t *testing.T) {
	t.Parallel()

	for _, v := range []Value{
		Null(), Bool(true), Bool(false),
		Number(0), Number(42), Number(-17), Number(3.25), Number(1e20),
		String("plain"), String("needs quoting, comma"), String("with\nnewline"),
	} {
		got := roundTrip(t, v)
		assert.True(t, v.Equal(got), "round trip of %v produced %v", v, got)
	}
}

func TestRoundTripNestedObject(t *testing.T) {
	t.Parallel()

	v := NewObject(
		Field{Key: "name", Value: String("Ada Lovelace")},
		Field{Key: "meta", Value: NewObject(
			Field{Key: "active", Value: Bool(true)},
			Field{Key: "score", Value: Number(98.5)},
		)},
	)
	got := roundTrip(t, v)
	if diff := cmp.Diff(v, got); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestRoundTripPrimitiveArray(t *testing.T) {
	t.Parallel()

	v := NewObject(Field{Key: "tags", Value: Array(String("a"), String("b"), String("c"))})
	got := roundTrip(t, v)
	assert.True(t, v.Equal(got))
}

func TestRoundTripTabularArray(t *testing.T) {
	t.Parallel()

	row := func(id float64, name string) Value {
		return NewObject(Field{Key: "id", Value: Number(id)}, Field{Key: "name", Value: String(name)})
	}
	v := NewObject(Field{Key: "users", Value: Array(row(1, "alice"), row(2, "bob"))})
	got := roundTrip(t, v)
	assert.True(t, v.Equal(got))
}

func TestRoundTripListArrayWithMixedShapes(t *testing.T) {
	t.Parallel()

	v := Array(
		NewObject(Field{Key: "kind", Value: String("circle")}, Field{Key: "radius", Value: Number(2)}),
		NewObject(Field{Key: "kind", Value: String("square")}, Field{Key: "sides", Value: Array(Number(1), Number(2), Number(3), Number(4))}),
		NewObject(),
	)
	got := roundTrip(t, v)
	assert.True(t, v.Equal(got))
}

func TestRoundTripEmptyObjectAtRoot(t *testing.T) {
	t.Parallel()

	v := NewObjectValue()
	got := roundTrip(t, v)
	assert.True(t, v.Equal(got), "round trip of empty root object produced %v", got)
}

func TestRoundTripEmptyArrayAndObject(t *testing.T) {
	t.Parallel()

	v := NewObject(
		Field{Key: "emptyArr", Value: Array()},
		Field{Key: "emptyObj", Value: NewObject()},
	)
	got := roundTrip(t, v)
	assert.True(t, v.Equal(got))
}

func TestRoundTripKeysNeedingQuotes(t *testing.T) {
	t.Parallel()

	v := NewObject(Field{Key: "has space", Value: Number(1)}, Field{Key: "normal", Value: Number(2)})
	got := roundTrip(t, v)
	assert.True(t, v.Equal(got))
}

func TestRoundTripDeeplyNested(t *testing.T) {
	t.Parallel()

	v := NewObject(Field{Key: "a", Value: NewObject(Field{Key: "b", Value: NewObject(
		Field{Key: "c", Value: Array(Number(1), Number(2))},
	)})})
	got := roundTrip(t, v)
	assert.True(t, v.Equal(got))
}
