// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import "strings"

// SplitListNaive splits the body of a list literal on every comma and trims
// whitespace and surrounding quotes from each token. Commas inside quoted
// elements also split, so `"a", "b, c"` yields three tokens. Empty tokens
// (from a trailing comma or an empty list) are dropped.
func SplitListNaive(body string) []string {
	var out []string
	for _, tok := range strings.Split(body, ",") {
		tok = strings.Trim(strings.TrimSpace(tok), `"'`)
		if tok != "" {
			out = append(out, tok)
		}
	}
	return out
}

// SplitList splits the body of a list literal on top-level commas. Commas
// inside quoted strings or nested brackets do not split. Quoted elements are
// unquoted; other elements are returned trimmed. Empty elements are dropped.
func SplitList(body string) []string {
	var (
		out   []string
		start int
		quote byte
		depth int
	)

	flush := func(end int) {
		tok := strings.TrimSpace(body[start:end])
		start = end + 1
		if tok == "" {
			return
		}
		if s, err := Unquote(tok); err == nil {
			tok = s
		}
		out = append(out, tok)
	}

	for i := 0; i < len(body); i++ {
		c := body[i]
		if quote != 0 {
			switch c {
			case '\\':
				i++
			case quote:
				quote = 0
			}
			continue
		}
		switch c {
		case '"', '\'', '`':
			quote = c
		case '[', '{', '(':
			depth++
		case ']', '}', ')':
			if depth > 0 {
				depth--
			}
		case ',':
			if depth == 0 {
				flush(i)
			}
		}
	}
	flush(len(body))
	return out
}
