package toon

import (
	"strconv"
	"strings"
)

// Encode renders v as a TOON document (spec §4.4). Out-of-range Indent and
// Delimiter settings are normalized to their defaults rather than rejected;
// the only error Encode returns is ErrUnsupportedType, for a Value whose
// kind is none of the six variants, which the exported constructors never
// produce.
func Encode(v Value, opts EncodeOptions) ([]byte, error) {
	s := &encodeState{cfg: opts}
	if err := s.encodeRoot(v); err != nil {
		return nil, err
	}
	return []byte(strings.Join(s.lines, "\n")), nil
}

// EncodeString is Encode returning a string.
func EncodeString(v Value, opts EncodeOptions) (string, error) {
	data, err := Encode(v, opts)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

type encodeState struct {
	cfg   EncodeOptions
	lines []string
}

func (s *encodeState) emit(line string) { s.lines = append(s.lines, line) }

func (s *encodeState) indent(depth int) string {
	if depth <= 0 {
		return ""
	}
	return strings.Repeat(" ", depth*s.cfg.indentWidth())
}

func (s *encodeState) encodeRoot(v Value) error {
	switch v.Kind() {
	case KindNull, KindBool, KindNumber, KindString:
		token, err := s.formatPrimitive(v, s.cfg.delimiterByte())
		if err != nil {
			return err
		}
		s.emit(token)
	case KindObject:
		obj, _ := v.AsObject()
		if obj.Len() == 0 {
			return nil
		}
		return s.encodeObject(obj, 0)
	case KindArray:
		items, _ := v.AsArray()
		return s.encodeArray("", "", items, 0)
	default:
		return ErrUnsupportedType
	}
	return nil
}

func (s *encodeState) encodeObject(obj Object, depth int) error {
	indent := s.indent(depth)
	for _, field := range obj.Fields {
		keyLiteral := quoteKey(field.Key)
		switch field.Value.Kind() {
		case KindNull, KindBool, KindNumber, KindString:
			token, err := s.formatPrimitive(field.Value, s.cfg.delimiterByte())
			if err != nil {
				return err
			}
			s.emit(indent + keyLiteral + ": " + token)
		case KindObject:
			nested, _ := field.Value.AsObject()
			s.emit(indent + keyLiteral + ":")
			if nested.Len() > 0 {
				if err := s.encodeObject(nested, depth+1); err != nil {
					return err
				}
			}
		case KindArray:
			items, _ := field.Value.AsArray()
			if err := s.encodeArray("", keyLiteral, items, depth); err != nil {
				return err
			}
		default:
			return ErrUnsupportedType
		}
	}
	return nil
}

// encodeArray emits one array, in whichever of the three layouts (primitive
// inline, tabular, list) its shape selects. prefix is "" for a root array or
// an object field's array, "- " for an array that is itself a list item.
func (s *encodeState) encodeArray(prefix, keyLiteral string, items []Value, depth int) error {
	delim := s.cfg.delimiterByte()
	line := s.indent(depth) + prefix

	if isPrimitiveArray(items) {
		header := renderHeader(keyLiteral, len(items), delim, nil, s.cfg.LengthMarkers)
		out := line + header
		if len(items) > 0 {
			tokens := make([]string, len(items))
			for i, v := range items {
				token, err := s.formatPrimitive(v, delim)
				if err != nil {
					return err
				}
				tokens[i] = token
			}
			out += " " + strings.Join(tokens, string(rune(delim)))
		}
		s.emit(out)
		return nil
	}

	if fields, ok := detectTabular(items); ok {
		header := renderHeader(keyLiteral, len(items), delim, fields, s.cfg.LengthMarkers)
		s.emit(line + header)
		rowIndent := s.indent(depth + 1)
		for _, item := range items {
			obj, _ := item.AsObject()
			row := make([]string, len(fields))
			for i, f := range fields {
				v, _ := obj.Get(f)
				token, err := s.formatPrimitive(v, delim)
				if err != nil {
					return err
				}
				row[i] = token
			}
			s.emit(rowIndent + strings.Join(row, string(rune(delim))))
		}
		return nil
	}

	header := renderHeader(keyLiteral, len(items), delim, nil, s.cfg.LengthMarkers)
	s.emit(line + header)
	for _, item := range items {
		if err := s.encodeListItem(item, depth+1); err != nil {
			return err
		}
	}
	return nil
}

func (s *encodeState) encodeListItem(item Value, depth int) error {
	switch item.Kind() {
	case KindObject:
		obj, _ := item.AsObject()
		return s.encodeObjectListItem(obj, depth)
	case KindArray:
		items, _ := item.AsArray()
		return s.encodeArray("- ", "", items, depth)
	default:
		token, err := s.formatPrimitive(item, s.cfg.delimiterByte())
		if err != nil {
			return err
		}
		s.emit(s.indent(depth) + "- " + token)
		return nil
	}
}

func (s *encodeState) encodeObjectListItem(obj Object, depth int) error {
	if obj.Len() == 0 {
		s.emit(s.indent(depth) + "-")
		return nil
	}
	first := obj.Fields[0]
	switch first.Value.Kind() {
	case KindObject:
		nested, _ := first.Value.AsObject()
		s.emit(s.indent(depth) + "- " + quoteKey(first.Key) + ":")
		if nested.Len() > 0 {
			if err := s.encodeObject(nested, depth+1); err != nil {
				return err
			}
		}
	case KindArray:
		items, _ := first.Value.AsArray()
		if err := s.encodeArray("- "+quoteKey(first.Key), "", items, depth); err != nil {
			return err
		}
	default:
		token, err := s.formatPrimitive(first.Value, s.cfg.delimiterByte())
		if err != nil {
			return err
		}
		s.emit(s.indent(depth) + "- " + quoteKey(first.Key) + ": " + token)
	}
	if len(obj.Fields) > 1 {
		return s.encodeObject(Object{Fields: obj.Fields[1:]}, depth+1)
	}
	return nil
}

// formatPrimitive renders a null/bool/number/string Value per spec §4.4's
// primitive serialization rules.
func (s *encodeState) formatPrimitive(v Value, delim byte) (string, error) {
	switch v.Kind() {
	case KindNull:
		return "null", nil
	case KindBool:
		b, _ := v.AsBool()
		if b {
			return "true", nil
		}
		return "false", nil
	case KindNumber:
		n, _ := v.AsNumber()
		return formatNumber(n), nil
	case KindString:
		str, _ := v.AsString()
		return quoteValue(str, delim), nil
	default:
		return "", ErrUnsupportedType
	}
}

// formatNumber implements spec §4.4's number serialization: zero renders as
// "0"; integer-valued numbers under 10^15 in magnitude render as plain
// decimal integers; everything else finite renders as the shortest
// round-tripping decimal in strconv's 'g' format, which switches to
// scientific notation when the decimal exponent is below -4 or at least 6
// (1234567.5 renders as "1.2345675e+06", 1e15 as "1e+15"). Non-finite
// numbers never reach this function —
// Number() normalizes NaN/±Inf to Null at construction time.
func formatNumber(n float64) string {
	if n == 0 {
		return "0"
	}
	const intMagnitudeLimit = 1e15
	if n > -intMagnitudeLimit && n < intMagnitudeLimit && n == float64(int64(n)) {
		return strconv.FormatInt(int64(n), 10)
	}
	return strconv.FormatFloat(n, 'g', -1, 64)
}

func isPrimitiveArray(items []Value) bool {
	for _, v := range items {
		if !v.IsPrimitive() {
			return false
		}
	}
	return true
}

func detectTabular(items []Value) ([]string, bool) {
	if len(items) == 0 {
		return nil, false
	}
	first, ok := items[0].AsObject()
	if !ok || first.Len() == 0 {
		return nil, false
	}
	fields := first.Keys()
	fieldSet := make(map[string]bool, len(fields))
	for _, f := range first.Fields {
		if !f.Value.IsPrimitive() {
			return nil, false
		}
		fieldSet[f.Key] = true
	}
	for _, item := range items[1:] {
		obj, ok := item.AsObject()
		if !ok || obj.Len() != len(fields) {
			return nil, false
		}
		seen := make(map[string]bool, len(fields))
		for _, f := range obj.Fields {
			if !fieldSet[f.Key] || !f.Value.IsPrimitive() {
				return nil, false
			}
			seen[f.Key] = true
		}
		if len(seen) != len(fields) {
			return nil, false
		}
	}
	return fields, true
}

func renderHeader(keyLiteral string, length int, delim byte, fields []string, markers bool) string {
	var b strings.Builder
	if keyLiteral != "" {
		b.WriteString(keyLiteral)
	}
	b.WriteByte('[')
	if markers {
		b.WriteByte('#')
	}
	b.WriteString(strconv.Itoa(length))
	if delim != ',' {
		b.WriteByte(delim)
	}
	b.WriteByte(']')
	if fields != nil {
		b.WriteByte('{')
		for i, f := range fields {
			if i > 0 {
				b.WriteByte(delim)
			}
			b.WriteString(quoteKey(f))
		}
		b.WriteByte('}')
	}
	b.WriteByte(':')
	return b.String()
}
