package toon

import "strconv"

// ArrayHeader is the parsed form of an array's `[N<delim?>]{fields}?:` prefix
// (spec §4.3). Fields is nil when the header carries no `{…}` segment.
// Inline is the raw text after the header's colon and single optional
// space — empty when the header declares no inline values (tabular or list
// mode), non-empty for an inline primitive array.
type ArrayHeader struct {
	Length    int
	Delimiter byte
	Fields    []string
	Inline    string
}

// looksLikeHeader reports whether content contains, in order and all
// outside quotes, a '[', a ']', and a ':' — the positional test spec §4.5
// uses for root dispatch and for telling an array-valued field apart from a
// plain key/value line. It tolerates (and skips over) a leading quoted key,
// since findUnquoted already treats quoted runs as opaque.
func looksLikeHeader(content string) bool {
	open := findUnquoted(content, '[')
	if open == -1 {
		return false
	}
	closeRel := findUnquoted(content[open:], ']')
	if closeRel == -1 {
		return false
	}
	closeAbs := open + closeRel
	colon := findUnquoted(content, ':')
	return colon != -1 && closeAbs < colon
}

// splitHeaderKey locates the unquoted '[' that opens an array header within
// content and returns the (possibly empty, possibly still-quoted) key text
// before it, trimmed, plus the header substring starting at '['. It is used
// by the decoder to separate `tags[3]: …` and `"my.key"[3]: …` into a key
// and a header before handing the header off to parseArrayHeader.
func splitHeaderKey(content string) (key string, header string, ok bool) {
	open := findUnquoted(content, '[')
	if open == -1 {
		return "", "", false
	}
	return trimSpacesOnly(content[:open]), content[open:], true
}

// parseArrayHeader parses s, which must begin at '[', as an array header.
// Everything after the colon (less one optional space) is returned in the
// header's Inline field, so the whole of s is consumed.
func parseArrayHeader(s string) (ArrayHeader, error) {
	if len(s) == 0 || s[0] != '[' {
		return ArrayHeader{}, ErrInvalidHeader
	}
	closeRel := findUnquoted(s[1:], ']')
	if closeRel == -1 {
		return ArrayHeader{}, ErrInvalidHeader
	}
	bracketContent := s[1 : 1+closeRel]
	rest := s[2+closeRel:]

	length, delim, err := parseBracketContent(bracketContent)
	if err != nil {
		return ArrayHeader{}, err
	}

	hdr := ArrayHeader{Length: length, Delimiter: delim}

	rest = trimLeadingSpacesOnly(rest)
	if len(rest) > 0 && rest[0] == '{' {
		closeBrace := findUnquoted(rest[1:], '}')
		if closeBrace == -1 {
			return ArrayHeader{}, ErrInvalidHeader
		}
		inner := rest[1 : 1+closeBrace]
		rest = rest[1+closeBrace+1:]
		if trimSpacesOnly(inner) != "" {
			fields, err := parseFieldList(inner, delim)
			if err != nil {
				return ArrayHeader{}, err
			}
			hdr.Fields = fields
		} else {
			hdr.Fields = []string{}
		}
	}

	colon := findUnquoted(rest, ':')
	if colon == -1 {
		return ArrayHeader{}, ErrMissingColon
	}
	if trimSpacesOnly(rest[:colon]) != "" {
		return ArrayHeader{}, ErrInvalidHeader
	}

	tail := rest[colon+1:]
	if len(tail) > 0 && tail[0] == ' ' {
		tail = tail[1:]
	}
	hdr.Inline = tail
	return hdr, nil
}

func trimLeadingSpacesOnly(s string) string {
	i := 0
	for i < len(s) && s[i] == ' ' {
		i++
	}
	return s[i:]
}

// parseBracketContent parses the text between '[' and ']': a decimal
// length, with an optional single trailing delimiter byte ('\t' for tab,
// '|' for pipe; anything else, including absence, means comma).
func parseBracketContent(s string) (int, byte, error) {
	if s == "" {
		return 0, 0, ErrInvalidLength
	}
	delim := byte(',')
	lengthPart := s
	switch s[len(s)-1] {
	case '\t':
		delim = '\t'
		lengthPart = s[:len(s)-1]
	case '|':
		delim = '|'
		lengthPart = s[:len(s)-1]
	}
	if len(lengthPart) > 0 && lengthPart[0] == '#' {
		lengthPart = lengthPart[1:]
	}
	if lengthPart == "" {
		return 0, 0, ErrInvalidLength
	}
	for i := 0; i < len(lengthPart); i++ {
		if !isASCIIDigit(lengthPart[i]) {
			return 0, 0, ErrInvalidLength
		}
	}
	n, err := strconv.Atoi(lengthPart)
	if err != nil || n < 0 {
		return 0, 0, ErrInvalidLength
	}
	return n, delim, nil
}

// parseFieldList splits a header's `{…}` contents into field names, each
// either a bare token or a quoted-and-escaped string, trimmed of
// surrounding spaces.
func parseFieldList(inner string, delim byte) ([]string, error) {
	tokens := splitDelimited(inner, delim)
	fields := make([]string, len(tokens))
	for i, tok := range tokens {
		if tok != "" && tok[0] == '"' {
			name, err := unescape(tok)
			if err != nil {
				return nil, err
			}
			fields[i] = name
			continue
		}
		fields[i] = tok
	}
	return fields, nil
}
