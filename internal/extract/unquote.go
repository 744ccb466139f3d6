// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf16"
	"unicode/utf8"
)

// Unquote decodes a JavaScript string literal delimited by ", ' or `.
// Template substitutions are not evaluated; "${" is kept verbatim.
func Unquote(lit string) (string, error) {
	if len(lit) < 2 {
		return "", fmt.Errorf("string literal too short: %q", lit)
	}
	q := lit[0]
	if (q != '"' && q != '\'' && q != '`') || lit[len(lit)-1] != q {
		return "", fmt.Errorf("not a string literal: %q", lit)
	}
	body := lit[1 : len(lit)-1]
	if !strings.ContainsRune(body, '\\') {
		return body, nil
	}

	var b strings.Builder
	b.Grow(len(body))
	for i := 0; i < len(body); i++ {
		c := body[i]
		if c != '\\' {
			b.WriteByte(c)
			continue
		}
		i++
		if i >= len(body) {
			return "", fmt.Errorf("trailing backslash in %q", lit)
		}
		switch e := body[i]; e {
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
		case '0':
			b.WriteByte(0)
		case '\n':
			// Line continuation.
		case 'x':
			if i+3 > len(body) {
				return "", fmt.Errorf("short \\x escape in %q", lit)
			}
			n, err := strconv.ParseUint(body[i+1:i+3], 16, 8)
			if err != nil {
				return "", fmt.Errorf("bad \\x escape in %q: %w", lit, err)
			}
			b.WriteRune(rune(n))
			i += 2
		case 'u':
			r, width, err := decodeUnicodeEscape(body[i+1:])
			if err != nil {
				return "", fmt.Errorf("bad \\u escape in %q: %w", lit, err)
			}
			i += width
			if utf16.IsSurrogate(r) && strings.HasPrefix(body[i+1:], `\u`) {
				lo, w2, err := decodeUnicodeEscape(body[i+3:])
				if err == nil {
					if pair := utf16.DecodeRune(r, lo); pair != utf8.RuneError {
						r = pair
						i += 2 + w2
					}
				}
			}
			b.WriteRune(r)
		default:
			// \\, \", \', \` and any other escaped character stand for
			// themselves.
			b.WriteByte(e)
		}
	}
	return b.String(), nil
}

// decodeUnicodeEscape reads the part of a \u escape after the "u": either
// four hex digits or a braced code point. It returns the rune and the
// number of bytes consumed.
func decodeUnicodeEscape(s string) (rune, int, error) {
	if strings.HasPrefix(s, "{") {
		end := strings.IndexByte(s, '}')
		if end < 2 {
			return 0, 0, fmt.Errorf("unterminated code point")
		}
		n, err := strconv.ParseUint(s[1:end], 16, 32)
		if err != nil {
			return 0, 0, err
		}
		return rune(n), end + 1, nil
	}
	if len(s) < 4 {
		return 0, 0, fmt.Errorf("need four hex digits")
	}
	n, err := strconv.ParseUint(s[:4], 16, 16)
	if err != nil {
		return 0, 0, err
	}
	return rune(n), 4, nil
}
