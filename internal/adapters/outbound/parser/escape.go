package parser

import (
	"strconv"
	"strings"
	"unicode/utf16"
	"unicode/utf8"

	sitter "github.com/smacker/go-tree-sitter"
)

// stringValue decodes a string literal from its string_fragment and
// escape_sequence children. Quote tokens are skipped. Adjacent escapes are
// decoded together so \uD83D\uDE00 pairs combine. Grammars that expose no
// content children fall back to decoding the text between the quotes.
func stringValue(n *sitter.Node, source []byte) string {
	var b, escapes strings.Builder
	found := false
	flush := func() {
		b.WriteString(decodeEscapes(escapes.String()))
		escapes.Reset()
	}
	for i := 0; i < int(n.ChildCount()); i++ {
		child := n.Child(i)
		switch child.Type() {
		case "string_fragment", "html_character_reference":
			flush()
			b.WriteString(nodeText(child, source))
			found = true
		case "escape_sequence":
			escapes.WriteString(nodeText(child, source))
			found = true
		}
	}
	flush()
	if !found {
		return decodeEscapes(trimDelims(nodeText(n, source)))
	}
	return b.String()
}

// templateValue decodes a template literal without substitutions.
func templateValue(raw string) string {
	return decodeEscapes(trimDelims(raw))
}

// trimDelims strips one matching pair of quotes or backticks.
func trimDelims(raw string) string {
	if len(raw) < 2 {
		return raw
	}
	switch q := raw[0]; q {
	case '\'', '"', '`':
		if raw[len(raw)-1] == q {
			return raw[1 : len(raw)-1]
		}
	}
	return raw
}

// decodeEscapes resolves JavaScript escape sequences in s: single-character
// escapes, \xHH, \uHHHH (surrogate pairs combined), \u{H...}, legacy octal,
// and line continuations. Malformed escapes keep the escaped character.
func decodeEscapes(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))

	for i := 0; i < len(s); {
		if s[i] != '\\' || i+1 >= len(s) {
			b.WriteByte(s[i])
			i++
			continue
		}

		c := s[i+1]
		i += 2
		switch c {
		case 'n':
			b.WriteByte('\n')
		case 't':
			b.WriteByte('\t')
		case 'r':
			b.WriteByte('\r')
		case 'b':
			b.WriteByte('\b')
		case 'f':
			b.WriteByte('\f')
		case 'v':
			b.WriteByte('\v')
		case '\n':
			// line continuation
		case '\r':
			if i < len(s) && s[i] == '\n' {
				i++
			}
		case 'x':
			if r, ok := parseHex(s, i, 2); ok {
				b.WriteRune(r)
				i += 2
			} else {
				b.WriteByte('x')
			}
		case 'u':
			r, n := parseUnicodeEscape(s, i)
			if n == 0 {
				b.WriteByte('u')
				break
			}
			i += n
			if utf16.IsSurrogate(r) {
				if lo, m := parseLowSurrogate(s, i); m > 0 {
					r = utf16.DecodeRune(r, lo)
					i += m
				} else {
					r = utf8.RuneError
				}
			}
			b.WriteRune(r)
		case '0', '1', '2', '3', '4', '5', '6', '7':
			j := i - 1
			limit := 3
			if c > '3' {
				limit = 2
			}
			for j < len(s) && j-(i-1) < limit && s[j] >= '0' && s[j] <= '7' {
				j++
			}
			v, _ := strconv.ParseUint(s[i-1:j], 8, 32)
			b.WriteRune(rune(v))
			i = j
		default:
			// \' \" \\ \` and identity escapes. U+2028/U+2029 continue the line.
			r, size := utf8.DecodeRuneInString(s[i-1:])
			if r == '\u2028' || r == '\u2029' {
				i += size - 1
				break
			}
			b.WriteString(s[i-1 : i-1+size])
			i += size - 1
		}
	}

	return b.String()
}

// parseUnicodeEscape reads the part of a \u escape after the "u" starting at
// s[i], returning the code point and the number of bytes consumed.
func parseUnicodeEscape(s string, i int) (rune, int) {
	if i < len(s) && s[i] == '{' {
		end := strings.IndexByte(s[i:], '}')
		if end < 2 {
			return 0, 0
		}
		v, err := strconv.ParseUint(s[i+1:i+end], 16, 32)
		if err != nil || v > utf8.MaxRune {
			return 0, 0
		}
		return rune(v), end + 1
	}
	if r, ok := parseHex(s, i, 4); ok {
		return r, 4
	}
	return 0, 0
}

func parseLowSurrogate(s string, i int) (rune, int) {
	if i+6 > len(s) || s[i] != '\\' || s[i+1] != 'u' {
		return 0, 0
	}
	r, ok := parseHex(s, i+2, 4)
	if !ok || r < 0xDC00 || r > 0xDFFF {
		return 0, 0
	}
	return r, 6
}

func parseHex(s string, i, n int) (rune, bool) {
	if i+n > len(s) {
		return 0, false
	}
	v, err := strconv.ParseUint(s[i:i+n], 16, 32)
	if err != nil {
		return 0, false
	}
	return rune(v), true
}
