// Package toon implements TOON v2.0 (Token-Oriented Object Notation), a
// compact, indentation-structured text format for transferring structured
// data to large language models. TOON borrows indentation from YAML and
// delimited rows from CSV, and adds an explicit length-and-shape header to
// every array so a reader (human or decoder) knows what to expect before it
// arrives.
//
// # Basic usage
//
//	v := toon.NewObject(
//	    toon.Field{Key: "name", Value: toon.String("Alice")},
//	    toon.Field{Key: "age", Value: toon.Number(30)},
//	)
//	data, err := toon.Encode(v, toon.DefaultEncodeOptions())
//
//	back, err := toon.Decode(string(data), toon.DefaultDecodeOptions())
//
// ValueFromJSON/ValueToJSON (the JSON bridge) convert between JSON text and
// Value trees, and the reflective DecodeInto adapter binds a Value onto a Go
// struct, slice, or scalar.
package toon
