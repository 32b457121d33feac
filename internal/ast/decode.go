package ast

import "strings"

// StripQuotes removes a single matching leading/trailing quote character
// (', ", or `) from raw, the way a "string" node's content always has its
// delimiters as its first and last byte.
func StripQuotes(raw string) string {
	if len(raw) < 2 {
		return raw
	}
	first := raw[0]
	last := raw[len(raw)-1]
	if (first == '\'' || first == '"' || first == '`') && first == last {
		return raw[1 : len(raw)-1]
	}
	return raw
}

// DecodeEscapes interprets the escape sequences a JavaScript string or
// template literal can contain, per the decoding rules in C1: the named
// single-character escapes, \xHH, \uHHHH, \u{HEX}, and 1-3 digit legacy
// octal \NNN. An escape sequence this function doesn't recognize is passed
// through literally, backslash included.
func DecodeEscapes(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	runes := []rune(s)
	for i := 0; i < len(runes); i++ {
		c := runes[i]
		if c != '\\' || i == len(runes)-1 {
			b.WriteRune(c)
			continue
		}

		next := runes[i+1]
		switch next {
		case 'n':
			b.WriteRune('\n')
			i++
		case 'r':
			b.WriteRune('\r')
			i++
		case 't':
			b.WriteRune('\t')
			i++
		case 'b':
			b.WriteRune('\b')
			i++
		case 'f':
			b.WriteRune('\f')
			i++
		case 'v':
			b.WriteRune('\v')
			i++
		case '0':
			// Only a lone \0 (not followed by another digit) is the null
			// escape; \01 etc. falls through to legacy octal below.
			if i+2 >= len(runes) || !isOctalDigit(runes[i+2]) {
				b.WriteRune('\x00')
				i++
			} else if n, consumed, ok := decodeOctal(runes, i+1); ok {
				b.WriteRune(rune(n))
				i += consumed
			} else {
				b.WriteRune(next)
				i++
			}
		case '\\', '\'', '"', '`':
			b.WriteRune(next)
			i++
		case '\n':
			// line continuation: backslash followed by a literal newline
			// is elided entirely.
			i++
		case 'x':
			if n, ok := decodeHex(runes, i+2, 2); ok {
				b.WriteRune(rune(n))
				i += 3
			} else {
				b.WriteRune('\\')
				b.WriteRune(next)
				i++
			}
		case 'u':
			if n, consumed, ok := decodeUnicodeEscape(runes, i+2); ok {
				b.WriteRune(rune(n))
				i += 1 + consumed
			} else {
				b.WriteRune('\\')
				b.WriteRune(next)
				i++
			}
		default:
			if isOctalDigit(next) {
				if n, consumed, ok := decodeOctal(runes, i+1); ok {
					b.WriteRune(rune(n))
					i += consumed
					continue
				}
			}
			// Unrecognized escape: pass the backslash and the following
			// character through literally.
			b.WriteRune('\\')
			b.WriteRune(next)
			i++
		}
	}

	return b.String()
}

func isOctalDigit(r rune) bool {
	return r >= '0' && r <= '7'
}

func isHexDigit(r rune) bool {
	switch {
	case r >= '0' && r <= '9':
		return true
	case r >= 'a' && r <= 'f':
		return true
	case r >= 'A' && r <= 'F':
		return true
	}
	return false
}

func hexValue(r rune) int {
	switch {
	case r >= '0' && r <= '9':
		return int(r - '0')
	case r >= 'a' && r <= 'f':
		return int(r-'a') + 10
	case r >= 'A' && r <= 'F':
		return int(r-'A') + 10
	}
	return -1
}

// decodeHex reads exactly n hex digits starting at start, returning the
// decoded value.
func decodeHex(runes []rune, start, n int) (int, bool) {
	if start+n > len(runes) {
		return 0, false
	}
	val := 0
	for i := 0; i < n; i++ {
		r := runes[start+i]
		if !isHexDigit(r) {
			return 0, false
		}
		val = val*16 + hexValue(r)
	}
	return val, true
}

// decodeUnicodeEscape handles both \uHHHH and \u{HEX}, where start is the
// index right after the 'u'. It returns the decoded code point and the
// number of runes consumed after the 'u' (not counting 'u' itself).
func decodeUnicodeEscape(runes []rune, start int) (int, int, bool) {
	if start < len(runes) && runes[start] == '{' {
		end := start + 1
		for end < len(runes) && runes[end] != '}' {
			end++
		}
		if end >= len(runes) || end == start+1 {
			return 0, 0, false
		}
		hex := runes[start+1 : end]
		val := 0
		for _, r := range hex {
			if !isHexDigit(r) {
				return 0, 0, false
			}
			val = val*16 + hexValue(r)
		}
		return val, end - start + 1, true
	}

	val, ok := decodeHex(runes, start, 4)
	if !ok {
		return 0, 0, false
	}
	return val, 4, true
}

// decodeOctal reads 1-3 octal digits starting at start, returning the
// decoded value and the number of runes consumed (the digits only, not the
// leading backslash already consumed by the caller).
func decodeOctal(runes []rune, start int) (int, int, bool) {
	if start >= len(runes) || !isOctalDigit(runes[start]) {
		return 0, 0, false
	}
	val := 0
	consumed := 0
	for consumed < 3 && start+consumed < len(runes) && isOctalDigit(runes[start+consumed]) {
		val = val*8 + int(runes[start+consumed]-'0')
		consumed++
	}
	return val, consumed, true
}
