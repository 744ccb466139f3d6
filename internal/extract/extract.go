// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package extract pulls exported array literals out of TypeScript data
// modules with regular expressions and splits them into per-record text
// fragments.
//
// Extraction is best effort. A missing array yields an empty body, and
// unexpected literal structure yields wrong field boundaries rather than
// errors. Use package tsdata when the records must be exact.
package extract

import (
	"bytes"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

// templateLiteral matches a backtick string, newlines included.
var templateLiteral = regexp.MustCompile("(?s)`(.*?)`")

// ExtractArray returns the raw text between the brackets of
// `export const <name>: <type> = [ ... ];` in content. It returns ""
// when no such declaration exists.
//
// Every template literal in content is rewritten to a double-quoted string
// before the search, including literals outside the requested array.
func ExtractArray(content, name string) string {
	content = RewriteTemplateLiterals(content)

	pattern := regexp.MustCompile(fmt.Sprintf(`(?s)export const %s: .*? = \[(.*?)\];`, regexp.QuoteMeta(name)))
	m := pattern.FindStringSubmatch(content)
	if m == nil {
		return ""
	}
	return m[1]
}

// RewriteTemplateLiterals replaces each backtick-delimited string in s with a
// double-quoted string holding its whitespace-trimmed contents. Control
// characters in the contents are escaped.
func RewriteTemplateLiterals(s string) string {
	return templateLiteral.ReplaceAllStringFunc(s, func(lit string) string {
		return quote(strings.TrimSpace(lit[1 : len(lit)-1]))
	})
}

// quote encodes s as a JSON string without HTML escaping.
func quote(s string) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		// Encoding a string cannot fail.
		panic(err)
	}
	return strings.TrimSuffix(buf.String(), "\n")
}
