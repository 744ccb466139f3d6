package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitListNaive_SplitsEmbeddedCommas(t *testing.T) {
	got := SplitListNaive(`"a", "b, c", "d"`)
	assert.Equal(t, []string{"a", "b", "c", "d"}, got)
}

func TestSplitList(t *testing.T) {
	tests := []struct {
		name string
		body string
		want []string
	}{
		{name: "embedded comma kept", body: `"a", "b, c", "d"`, want: []string{"a", "b, c", "d"}},
		{name: "multi-line with trailing comma", body: "\n  \"x\",\n  \"y\",\n", want: []string{"x", "y"}},
		{name: "single quotes", body: `'it\'s', 'ok'`, want: []string{"it's", "ok"}},
		{name: "escaped quote", body: `"say \"hi\", then go"`, want: []string{`say "hi", then go`}},
		{name: "unquoted tokens", body: `1, true, null`, want: []string{"1", "true", "null"}},
		{name: "nested brackets", body: `[1, 2], {a: 1, b: 2}`, want: []string{"[1, 2]", "{a: 1, b: 2}"}},
		{name: "empty", body: "  ", want: nil},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, SplitList(tc.body))
		})
	}
}

func TestUnquote(t *testing.T) {
	tests := []struct {
		lit  string
		want string
	}{
		{lit: `"plain"`, want: "plain"},
		{lit: `'single'`, want: "single"},
		{lit: "`tick`", want: "tick"},
		{lit: `"a\nb\tc"`, want: "a\nb\tc"},
		{lit: `"q\"q"`, want: `q"q`},
		{lit: `'don\'t'`, want: "don't"},
		{lit: `"\x41B\u{43}"`, want: "ABC"},
		{lit: `"\uD83D\uDE80"`, want: "\U0001F680"},
		{lit: `"back\\slash"`, want: `back\slash`},
		{lit: "\"line\\\ncontinued\"", want: "linecontinued"},
		{lit: `"\d"`, want: "d"},
	}
	for _, tc := range tests {
		t.Run(tc.lit, func(t *testing.T) {
			got, err := Unquote(tc.lit)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestUnquote_Errors(t *testing.T) {
	for _, lit := range []string{``, `"`, `abc`, `"mismatch'`, `"\x4"`, `"\uZZZZ"`, `"\u{}"`} {
		t.Run(lit, func(t *testing.T) {
			_, err := Unquote(lit)
			assert.Error(t, err)
		})
	}
}
