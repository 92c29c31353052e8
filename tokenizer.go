package toon

import "strings"

// Line is one physical source line after indentation has been measured and
// stripped. Blank lines are retained (with Depth 0, Content "") rather than
// dropped here, so callers that need to tell "blank between structural
// lines" apart from "blank inside an array body" (spec §4.2) can make that
// call themselves — the tokenizer does not know which context it is in.
type Line struct {
	Number  int
	Depth   int
	Content string
	Blank   bool
}

// splitLines splits src into physical lines on '\n' only, after normalizing
// "\r\n" to "\n" (spec §9's resolution of the open question on literal '\r'
// bytes). A final trailing newline does not produce a spurious empty last
// line.
func splitLines(src string) []string {
	src = strings.ReplaceAll(src, "\r\n", "\n")
	lines := strings.Split(src, "\n")
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// isBlankLine reports whether every byte of raw is ASCII whitespace (spec
// §4.2's blank-line policy).
func isBlankLine(raw string) bool {
	for i := 0; i < len(raw); i++ {
		if !isASCIISpace(raw[i]) {
			return false
		}
	}
	return true
}

// computeDepth measures raw's leading-space indentation and returns the
// depth (indentation divided by indentWidth) plus the content with that
// indentation stripped. In strict mode a tab anywhere in the indent prefix
// is rejected, and the space count must be an exact multiple of indentWidth.
// In non-strict mode each tab counts as indentWidth spaces and a
// non-multiple count rounds down, per spec §4.2.
func computeDepth(raw string, indentWidth int, strict bool) (depth int, content string, err error) {
	if indentWidth <= 0 {
		indentWidth = 1
	}
	spaces := 0
	i := 0
scan:
	for i < len(raw) {
		switch raw[i] {
		case ' ':
			spaces++
			i++
		case '\t':
			if strict {
				return 0, "", ErrInvalidIndent
			}
			spaces += indentWidth
			i++
		default:
			break scan
		}
	}
	if strict && spaces%indentWidth != 0 {
		return 0, "", ErrInvalidIndent
	}
	return spaces / indentWidth, raw[i:], nil
}

// tokenizeLines splits src into Lines, computing depth for every non-blank
// line. Blank lines are kept as Blank entries rather than dropped, so the
// decoder can apply the "blank between structural lines is fine, blank
// inside an array body is an error" rule from spec §4.2 at the point it has
// the context to tell the two apart.
func tokenizeLines(src string, indentWidth int, strict bool) ([]Line, error) {
	raws := splitLines(src)
	lines := make([]Line, 0, len(raws))
	for idx, raw := range raws {
		number := idx + 1
		if isBlankLine(raw) {
			lines = append(lines, Line{Number: number, Blank: true})
			continue
		}
		depth, content, err := computeDepth(raw, indentWidth, strict)
		if err != nil {
			return nil, newSyntaxError(number, err, "line %q", raw)
		}
		lines = append(lines, Line{Number: number, Depth: depth, Content: content})
	}
	return lines, nil
}

// findUnquoted returns the index of the first occurrence of target in s
// that is not inside a double-quoted run, or -1 if none exists. Inside
// quotes, a backslash consumes (skips over) the following byte so an
// escaped quote or escaped delimiter is never mistaken for a real one.
func findUnquoted(s string, target byte) int {
	inQuotes := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if inQuotes {
			if c == '\\' {
				if i+1 < len(s) {
					i++
				}
				continue
			}
			if c == '"' {
				inQuotes = false
			}
			continue
		}
		if c == '"' {
			inQuotes = true
			continue
		}
		if c == target {
			return i
		}
	}
	return -1
}

// trimSpacesOnly trims leading and trailing ASCII space (0x20) bytes — not
// tabs or newlines — matching spec §4.2's "trims ASCII spaces from each
// token".
func trimSpacesOnly(s string) string {
	start := 0
	for start < len(s) && s[start] == ' ' {
		start++
	}
	end := len(s)
	for end > start && s[end-1] == ' ' {
		end--
	}
	return s[start:end]
}

// splitDelimited splits s on every unquoted occurrence of delim, trimming
// surrounding spaces from each resulting token. It always returns at least
// one token, even for an empty or fully-quoted input.
func splitDelimited(s string, delim byte) []string {
	var tokens []string
	start := 0
	inQuotes := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if inQuotes {
			if c == '\\' {
				if i+1 < len(s) {
					i++
				}
				continue
			}
			if c == '"' {
				inQuotes = false
			}
			continue
		}
		if c == '"' {
			inQuotes = true
			continue
		}
		if c == delim {
			tokens = append(tokens, trimSpacesOnly(s[start:i]))
			start = i + 1
		}
	}
	tokens = append(tokens, trimSpacesOnly(s[start:]))
	return tokens
}

// isListItem reports whether content opens a list-array item: a line
// starting with '-' that is either exactly "-" or has a space following the
// dash.
func isListItem(content string) bool {
	return len(content) > 0 && content[0] == '-' && (len(content) == 1 || content[1] == ' ')
}

// stripListMarker returns the residue after a list item's "- " marker, or
// "" if content was just "-".
func stripListMarker(content string) string {
	if len(content) <= 1 {
		return ""
	}
	return content[2:]
}
