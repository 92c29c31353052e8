package toon

import "strconv"

// Decode parses src as a TOON document (spec §4.5) and returns its Value
// tree. An empty or all-blank document decodes to the empty Object, per
// spec §8's decode("") = {} scenario.
func Decode(src string, opts DecodeOptions) (Value, error) {
	lines, err := tokenizeLines(src, opts.indentWidth(), opts.Strict)
	if err != nil {
		return Value{}, err
	}
	p := &parser{lines: lines, strict: opts.Strict}
	p.skipBlank()
	if p.atEnd() {
		return NewObjectValue(), nil
	}

	root := p.current()
	if root.Depth != 0 {
		return Value{}, newSyntaxError(root.Number, ErrInvalidIndent, "root line is indented")
	}

	v, err := p.parseRoot()
	if err != nil {
		return Value{}, err
	}
	p.skipBlank()
	if !p.atEnd() {
		return Value{}, newSyntaxError(p.current().Number, ErrInvalidSyntax, "unexpected trailing content")
	}
	return v, nil
}

// parser walks a tokenized document with a single cursor, the way ccl.go's
// lexer walks a byte cursor — except the unit of advancement here is a
// whole Line rather than a rune.
type parser struct {
	lines  []Line
	pos    int
	strict bool
}

func (p *parser) atEnd() bool   { return p.pos >= len(p.lines) }
func (p *parser) current() Line { return p.lines[p.pos] }

func (p *parser) skipBlank() {
	for !p.atEnd() && p.current().Blank {
		p.pos++
	}
}

func (p *parser) parseRoot() (Value, error) {
	content := p.current().Content

	if key, header, ok := splitHeaderKey(content); ok && key == "" && looksLikeHeader(content) {
		p.pos++
		hdr, err := parseArrayHeader(header)
		if err != nil {
			return Value{}, newSyntaxError(p.lines[p.pos-1].Number, err, "root array header")
		}
		return p.parseArrayBody(hdr, 0)
	}

	if findUnquoted(content, ':') != -1 {
		obj, err := p.parseObject(0)
		if err != nil {
			return Value{}, err
		}
		return NewObjectValue(obj.Fields...), nil
	}

	p.pos++
	v, err := decodePrimitiveToken(content)
	if err != nil {
		return Value{}, newSyntaxError(p.lines[p.pos-1].Number, err, "root scalar")
	}
	return v, nil
}

// parseObject consumes sibling "key: value" lines at exactly depth, until a
// dedent, a blank line, or end of input.
func (p *parser) parseObject(depth int) (Object, error) {
	var fields []Field
	for !p.atEnd() {
		line := p.current()
		if line.Blank || line.Depth < depth {
			break
		}
		if line.Depth > depth {
			return Object{}, newSyntaxError(line.Number, ErrInvalidIndent, "unexpected indent")
		}
		content := line.Content

		if key, header, ok := splitHeaderKey(content); ok && key != "" && looksLikeHeader(content) {
			keyName, err := decodeKeyToken(key)
			if err != nil {
				return Object{}, newSyntaxError(line.Number, err, "field key")
			}
			p.pos++
			hdr, err := parseArrayHeader(header)
			if err != nil {
				return Object{}, newSyntaxError(line.Number, err, "array header")
			}
			arr, err := p.parseArrayBody(hdr, depth)
			if err != nil {
				return Object{}, err
			}
			fields = append(fields, Field{Key: keyName, Value: arr})
			continue
		}

		colon := findUnquoted(content, ':')
		if colon == -1 {
			return Object{}, newSyntaxError(line.Number, ErrMissingColon, "expected key: value")
		}
		keyName, err := decodeKeyToken(trimSpacesOnly(content[:colon]))
		if err != nil {
			return Object{}, newSyntaxError(line.Number, err, "field key")
		}
		valuePart := trimSpacesOnly(content[colon+1:])
		p.pos++

		var val Value
		if valuePart == "" {
			val, err = p.parseNestedObjectOrEmpty(depth + 1)
			if err != nil {
				return Object{}, err
			}
		} else {
			val, err = decodePrimitiveToken(valuePart)
			if err != nil {
				return Object{}, newSyntaxError(line.Number, err, "field value")
			}
		}
		fields = append(fields, Field{Key: keyName, Value: val})
	}
	return Object{Fields: fields}, nil
}

// parseNestedObjectOrEmpty handles a "key:" line with nothing after the
// colon: either a child object follows at depth, or the key's value is the
// empty object.
func (p *parser) parseNestedObjectOrEmpty(depth int) (Value, error) {
	if !p.atEnd() && !p.current().Blank && p.current().Depth >= depth {
		child, err := p.parseObject(depth)
		if err != nil {
			return Value{}, err
		}
		return NewObjectValue(child.Fields...), nil
	}
	return NewObjectValue(), nil
}

// parseArrayBody parses the body of an array whose header appeared on a
// line at headerDepth, dispatching to whichever of the three layouts the
// header's shape selects.
func (p *parser) parseArrayBody(hdr ArrayHeader, headerDepth int) (Value, error) {
	switch {
	case hdr.Fields == nil && (hdr.Inline != "" || hdr.Length == 0):
		return p.parsePrimitiveInlineArray(hdr)
	case hdr.Fields != nil:
		return p.parseTabularArray(hdr, headerDepth+1)
	default:
		return p.parseListArray(hdr, headerDepth+1)
	}
}

func (p *parser) parsePrimitiveInlineArray(hdr ArrayHeader) (Value, error) {
	var tokens []string
	if hdr.Inline != "" {
		tokens = splitDelimited(hdr.Inline, hdr.Delimiter)
	}
	if p.strict && len(tokens) != hdr.Length {
		return Value{}, ErrCountMismatch
	}
	items := make([]Value, len(tokens))
	for i, tok := range tokens {
		v, err := decodePrimitiveToken(tok)
		if err != nil {
			return Value{}, err
		}
		items[i] = v
	}
	return Array(items...), nil
}

func (p *parser) parseTabularArray(hdr ArrayHeader, rowDepth int) (Value, error) {
	var items []Value
	for {
		if p.atEnd() {
			break
		}
		line := p.current()
		if line.Blank {
			if p.strict && len(items) < hdr.Length {
				return Value{}, ErrBlankLineInArray
			}
			break
		}
		if line.Depth != rowDepth {
			break
		}
		tokens := splitDelimited(line.Content, hdr.Delimiter)
		if p.strict && len(tokens) != len(hdr.Fields) {
			return Value{}, newSyntaxError(line.Number, ErrWidthMismatch, "row has %d values, want %d", len(tokens), len(hdr.Fields))
		}
		var rowFields []Field
		for i, name := range hdr.Fields {
			var tok string
			if i < len(tokens) {
				tok = tokens[i]
			}
			v, err := decodePrimitiveToken(tok)
			if err != nil {
				return Value{}, newSyntaxError(line.Number, err, "row value")
			}
			rowFields = append(rowFields, Field{Key: name, Value: v})
		}
		items = append(items, NewObjectValue(rowFields...))
		p.pos++
	}
	if p.strict && len(items) != hdr.Length {
		return Value{}, ErrCountMismatch
	}
	return Array(items...), nil
}

func (p *parser) parseListArray(hdr ArrayHeader, itemDepth int) (Value, error) {
	var items []Value
	for {
		if p.atEnd() {
			break
		}
		line := p.current()
		if line.Blank {
			if p.strict && len(items) < hdr.Length {
				return Value{}, ErrBlankLineInArray
			}
			break
		}
		if line.Depth != itemDepth || !isListItem(line.Content) {
			break
		}
		v, err := p.parseListItem(itemDepth)
		if err != nil {
			return Value{}, err
		}
		items = append(items, v)
	}
	if p.strict && len(items) != hdr.Length {
		return Value{}, ErrCountMismatch
	}
	return Array(items...), nil
}

// parseListItem consumes one "- ..." line at itemDepth and whatever
// continuation lines (at itemDepth+1) belong to it.
func (p *parser) parseListItem(itemDepth int) (Value, error) {
	line := p.current()
	content := stripListMarker(line.Content)
	p.pos++

	if content == "" {
		return NewObjectValue(), nil
	}

	if key, header, ok := splitHeaderKey(content); ok && looksLikeHeader(content) {
		hdr, err := parseArrayHeader(header)
		if err != nil {
			return Value{}, newSyntaxError(line.Number, err, "array header")
		}
		if key == "" {
			return p.parseArrayBody(hdr, itemDepth)
		}
		keyName, err := decodeKeyToken(key)
		if err != nil {
			return Value{}, newSyntaxError(line.Number, err, "field key")
		}
		first, err := p.parseArrayBody(hdr, itemDepth)
		if err != nil {
			return Value{}, err
		}
		rest, err := p.parseObjectContinuation(itemDepth + 1)
		if err != nil {
			return Value{}, err
		}
		return NewObjectValue(append([]Field{{Key: keyName, Value: first}}, rest...)...), nil
	}

	colon := findUnquoted(content, ':')
	if colon == -1 {
		return decodePrimitiveToken(content)
	}

	keyName, err := decodeKeyToken(trimSpacesOnly(content[:colon]))
	if err != nil {
		return Value{}, newSyntaxError(line.Number, err, "field key")
	}
	valuePart := trimSpacesOnly(content[colon+1:])

	var first Value
	if valuePart == "" {
		first, err = p.parseNestedObjectOrEmpty(itemDepth + 1)
	} else {
		first, err = decodePrimitiveToken(valuePart)
	}
	if err != nil {
		return Value{}, err
	}

	rest, err := p.parseObjectContinuation(itemDepth + 1)
	if err != nil {
		return Value{}, err
	}
	return NewObjectValue(append([]Field{{Key: keyName, Value: first}}, rest...)...), nil
}

// parseObjectContinuation returns the remaining sibling fields of a list
// item's object, if any follow at depth.
func (p *parser) parseObjectContinuation(depth int) ([]Field, error) {
	if p.atEnd() || p.current().Blank || p.current().Depth < depth {
		return nil, nil
	}
	obj, err := p.parseObject(depth)
	if err != nil {
		return nil, err
	}
	return obj.Fields, nil
}

func decodeKeyToken(key string) (string, error) {
	key = trimSpacesOnly(key)
	if key == "" {
		return "", ErrInvalidSyntax
	}
	if key[0] == '"' {
		return unescape(key)
	}
	return key, nil
}

// decodePrimitiveToken parses a single unquoted-or-quoted token into a
// Value, per spec §4.5: quoted strings unescape, the three reserved
// literals map to Null/Bool, a number parses as a Number unless it carries
// a forbidden leading zero (in which case it decodes as a String instead),
// and anything else falls back to a bare String.
func decodePrimitiveToken(tok string) (Value, error) {
	tok = trimSpacesOnly(tok)
	if tok == "" {
		return String(""), nil
	}
	if tok[0] == '"' {
		s, err := unescape(tok)
		if err != nil {
			return Value{}, err
		}
		return String(s), nil
	}
	switch tok {
	case "null":
		return Null(), nil
	case "true":
		return Bool(true), nil
	case "false":
		return Bool(false), nil
	}
	if !hasForbiddenLeadingZero(tok) {
		if n, err := strconv.ParseFloat(tok, 64); err == nil {
			return Number(n), nil
		}
	}
	return String(tok), nil
}

// hasForbiddenLeadingZero reports whether tok looks like "0123" — a digit
// string with a leading zero followed by another digit, which spec §4.1's
// number grammar excludes from being a real number even though it is
// numeric-like.
func hasForbiddenLeadingZero(tok string) bool {
	s := tok
	if len(s) > 0 && s[0] == '-' {
		s = s[1:]
	}
	return len(s) >= 2 && s[0] == '0' && isASCIIDigit(s[1])
}
