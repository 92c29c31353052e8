package toon

import "strings"

// isASCIISpace reports whether b is one of the ASCII whitespace bytes the
// codec treats uniformly: space, tab, newline, carriage return.
func isASCIISpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}

func isASCIIDigit(b byte) bool { return b >= '0' && b <= '9' }

func isASCIILetter(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z'
}

// isNumericLike implements spec §4.1's numeric-like grammar: an optional
// leading '-', then either a leading zero immediately followed by another
// digit (05, 0123 — disallowed as real numbers but still numeric-looking),
// or a JSON-style number token (digits, optional single fractional part,
// optional exponent). The grammar is permissive by design: anything it
// accepts is numeric-like even if it would overflow a concrete numeric type.
func isNumericLike(s string) bool {
	i := 0
	if i < len(s) && s[i] == '-' {
		i++
	}
	if i >= len(s) || !isASCIIDigit(s[i]) {
		return false
	}
	if s[i] == '0' && i+1 < len(s) && isASCIIDigit(s[i+1]) {
		return true
	}
	j := i
	for j < len(s) && isASCIIDigit(s[j]) {
		j++
	}
	if j < len(s) && s[j] == '.' {
		j++
		for j < len(s) && isASCIIDigit(s[j]) {
			j++
		}
	}
	if j < len(s) && (s[j] == 'e' || s[j] == 'E') {
		j++
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		for j < len(s) && isASCIIDigit(s[j]) {
			j++
		}
	}
	return j == len(s)
}

// needsQuoting implements the quoting predicate of spec §4.1: empty strings,
// strings with leading/trailing whitespace, the reserved literals, anything
// that starts with '-' or looks numeric, and anything containing a
// structural byte (the active delimiter included) all require quotes.
func needsQuoting(s string, delim byte) bool {
	if s == "" {
		return true
	}
	if isASCIISpace(s[0]) || isASCIISpace(s[len(s)-1]) {
		return true
	}
	switch s {
	case "true", "false", "null":
		return true
	}
	if s[0] == '-' {
		return true
	}
	if isNumericLike(s) {
		return true
	}
	for i := 0; i < len(s); i++ {
		switch b := s[i]; {
		case b == ':' || b == '"' || b == '\\' || b == '[' || b == ']' || b == '{' || b == '}':
			return true
		case b == delim:
			return true
		case b == '\n' || b == '\r' || b == '\t':
			return true
		}
	}
	return false
}

// isValidBareKey reports whether s can appear as an object key without
// quoting (spec §4.1): ASCII letter or '_' first, then alphanumeric, '_',
// or '.'.
func isValidBareKey(s string) bool {
	if s == "" {
		return false
	}
	if !(isASCIILetter(s[0]) || s[0] == '_') {
		return false
	}
	for i := 1; i < len(s); i++ {
		b := s[i]
		if !(isASCIILetter(b) || isASCIIDigit(b) || b == '_' || b == '.') {
			return false
		}
	}
	return true
}

// escape doubles backslash and double-quote and maps newline, carriage
// return, and tab to their two-character escapes. Every other byte passes
// through unchanged. escape is idempotent only on strings containing none of
// these five bytes.
func escape(s string) string {
	var needsWork bool
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\\', '"', '\n', '\r', '\t':
			needsWork = true
		}
	}
	if !needsWork {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + 4)
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

// unescape reverses escape. quoted must include the surrounding double
// quotes; their absence is reported as ErrUnterminatedQuote. Any backslash
// sequence other than the five recognized escapes is ErrInvalidEscape, as is
// a trailing backslash with nothing to escape.
func unescape(quoted string) (string, error) {
	if len(quoted) < 2 || quoted[0] != '"' || quoted[len(quoted)-1] != '"' {
		return "", ErrUnterminatedQuote
	}
	inner := quoted[1 : len(quoted)-1]
	var b strings.Builder
	b.Grow(len(inner))
	for i := 0; i < len(inner); i++ {
		c := inner[i]
		if c != '\\' {
			b.WriteByte(c)
			continue
		}
		i++
		if i >= len(inner) {
			return "", ErrInvalidEscape
		}
		switch inner[i] {
		case '\\':
			b.WriteByte('\\')
		case '"':
			b.WriteByte('"')
		case 'n':
			b.WriteByte('\n')
		case 'r':
			b.WriteByte('\r')
		case 't':
			b.WriteByte('\t')
		default:
			return "", ErrInvalidEscape
		}
	}
	return b.String(), nil
}

// quoteValue returns s verbatim if it needs no quoting under delim, or its
// escaped form wrapped in double quotes otherwise.
func quoteValue(s string, delim byte) string {
	if !needsQuoting(s, delim) {
		return s
	}
	return `"` + escape(s) + `"`
}

// quoteKey returns s verbatim if it is a valid bare key, or its escaped form
// wrapped in double quotes otherwise.
func quoteKey(s string) string {
	if isValidBareKey(s) {
		return s
	}
	return `"` + escape(s) + `"`
}
