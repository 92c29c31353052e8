package toon

import "encoding/json"

// ValueFromJSON converts decoded JSON data (as produced by encoding/json's
// default `any` unmarshal target) into a Value. It is the bridge spec §B
// describes for round-tripping TOON against JSON test fixtures: map[string]any
// becomes an Object with keys in the order encoding/json happens to hand
// them back (Go maps have no stable order, so callers that care about field
// order should build the fixture as []Field via NewObjectValue directly
// rather than through this bridge).
func ValueFromJSON(data []byte) (Value, error) {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return Value{}, err
	}
	return valueFromAny(v), nil
}

func valueFromAny(v any) Value {
	switch x := v.(type) {
	case nil:
		return Null()
	case bool:
		return Bool(x)
	case float64:
		return Number(x)
	case string:
		return String(x)
	case []any:
		items := make([]Value, len(x))
		for i, elem := range x {
			items[i] = valueFromAny(elem)
		}
		return Array(items...)
	case map[string]any:
		fields := make([]Field, 0, len(x))
		for k, elem := range x {
			fields = append(fields, Field{Key: k, Value: valueFromAny(elem)})
		}
		return NewObjectValue(fields...)
	default:
		return Null()
	}
}

// ValueToJSON renders v as canonical JSON bytes, going through the same
// any-shaped intermediate ValueFromJSON consumes.
func ValueToJSON(v Value) ([]byte, error) {
	return json.Marshal(valueToAny(v))
}

func valueToAny(v Value) any {
	switch v.Kind() {
	case KindNull:
		return nil
	case KindBool:
		b, _ := v.AsBool()
		return b
	case KindNumber:
		n, _ := v.AsNumber()
		return n
	case KindString:
		s, _ := v.AsString()
		return s
	case KindArray:
		items, _ := v.AsArray()
		out := make([]any, len(items))
		for i, item := range items {
			out[i] = valueToAny(item)
		}
		return out
	case KindObject:
		obj, _ := v.AsObject()
		out := make(map[string]any, obj.Len())
		for _, f := range obj.Fields {
			out[f.Key] = valueToAny(f.Value)
		}
		return out
	default:
		return nil
	}
}
