package pyparse

import (
	"strconv"
	"strings"
)

// decodeString returns the value of a Python string literal as written
// in source, prefix and quotes included. ok is false for bytes and
// f-string literals, which do not evaluate to a text constant, and for
// text that is not a well-formed literal.
func decodeString(lit string) (value string, ok bool) {
	q := strings.IndexAny(lit, `"'`)
	if q < 0 {
		return "", false
	}

	prefix := strings.ToLower(lit[:q])
	if strings.Trim(prefix, "rbuf") != "" {
		return "", false
	}
	if strings.ContainsAny(prefix, "bf") {
		return "", false
	}

	body := lit[q:]
	delim := body[:1]
	if strings.HasPrefix(body, `"""`) || strings.HasPrefix(body, `'''`) {
		delim = body[:3]
	}
	if len(body) < 2*len(delim) || !strings.HasSuffix(body, delim) {
		return "", false
	}

	inner := body[len(delim) : len(body)-len(delim)]
	inner = strings.ReplaceAll(inner, "\r\n", "\n")
	if strings.Contains(prefix, "r") {
		return inner, true
	}
	return unescape(inner), true
}

var simpleEscapes = map[byte]byte{
	'\\': '\\',
	'\'': '\'',
	'"':  '"',
	'a':  '\a',
	'b':  '\b',
	'f':  '\f',
	'n':  '\n',
	'r':  '\r',
	't':  '\t',
	'v':  '\v',
}

var hexDigits = map[byte]int{'x': 2, 'u': 4, 'U': 8}

// unescape applies Python's backslash escapes. Unknown escapes are kept
// verbatim, as Python does.
func unescape(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		if s[i] != '\\' || i+1 == len(s) {
			b.WriteByte(s[i])
			i++
			continue
		}

		e := s[i+1]
		if r, ok := simpleEscapes[e]; ok {
			b.WriteByte(r)
			i += 2
			continue
		}

		switch {
		case e == '\n':
			// line continuation
			i += 2
		case isOctal(e):
			j := i + 1
			for j < len(s) && j < i+4 && isOctal(s[j]) {
				j++
			}
			v, _ := strconv.ParseUint(s[i+1:j], 8, 32)
			b.WriteRune(rune(v))
			i = j
		case e == 'x' || e == 'u' || e == 'U':
			n := hexDigits[e]
			if r, ok := hexRune(s, i+2, n); ok {
				b.WriteRune(r)
				i += 2 + n
				continue
			}
			b.WriteString(s[i : i+2])
			i += 2
		case e == 'N':
			// named escapes are kept as written
			end := strings.IndexByte(s[i:], '}')
			if strings.HasPrefix(s[i+2:], "{") && end > 0 {
				b.WriteString(s[i : i+end+1])
				i += end + 1
				continue
			}
			b.WriteString(s[i : i+2])
			i += 2
		default:
			b.WriteString(s[i : i+2])
			i += 2
		}
	}
	return b.String()
}

func hexRune(s string, start, n int) (rune, bool) {
	if start+n > len(s) {
		return 0, false
	}
	v, err := strconv.ParseUint(s[start:start+n], 16, 32)
	if err != nil {
		return 0, false
	}
	return rune(v), true
}

func isOctal(c byte) bool {
	return c >= '0' && c <= '7'
}
