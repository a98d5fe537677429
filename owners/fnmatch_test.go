package owners

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFnmatchToRegexp(t *testing.T) {
	tests := []struct {
		pattern string
		name    string
		want    bool
	}{
		{pattern: "*", name: "", want: true},
		{pattern: "*", name: "a/b/c", want: true},
		{pattern: "*.rs", name: "dir/x.rs", want: true},
		{pattern: "a**b", name: "a/x/b", want: true},
		{pattern: "a*a", name: "a", want: false},
		{pattern: "a*a", name: "aa", want: true},
		{pattern: "a?c", name: "abc", want: true},
		{pattern: "a?c", name: "ac", want: false},
		{pattern: "a?c", name: "a/c", want: true},
		{pattern: "x", name: "x\n", want: false},
		{pattern: "x", name: "xx", want: false},
		{pattern: "[abc]", name: "b", want: true},
		{pattern: "[abc]", name: "d", want: false},
		{pattern: "[!abc]", name: "b", want: false},
		{pattern: "[!abc]", name: "d", want: true},
		{pattern: "[a-c]x", name: "bx", want: true},
		{pattern: "[a-c]x", name: "dx", want: false},
		{pattern: "[a-c-e]", name: "-", want: true},
		{pattern: "[a-c-e]", name: "e", want: true},
		{pattern: "[a-c-e]", name: "d", want: false},
		{pattern: "[z-a]", name: "a", want: false},
		{pattern: "[z-a]", name: "z", want: false},
		{pattern: "[!z-a]", name: "q", want: true},
		{pattern: "[]]", name: "]", want: true},
		{pattern: "[!]]", name: "a", want: true},
		{pattern: "[!]]", name: "]", want: false},
		{pattern: "[a-]", name: "-", want: true},
		{pattern: "[-a]", name: "-", want: true},
		{pattern: "[^a]", name: "^", want: true},
		{pattern: "[^a]", name: "b", want: false},
		{pattern: `[\]`, name: `\`, want: true},
		{pattern: "[[:alpha:]]", name: "a]", want: true},
		{pattern: "[[:alpha:]]", name: "b", want: false},
		{pattern: `a\b`, name: `a\b`, want: true},
		{pattern: `a\*`, name: `a\xyz`, want: true},
		{pattern: "{a,b}", name: "a", want: false},
		{pattern: "{a,b}", name: "{a,b}", want: true},
		{pattern: "[", name: "[", want: true},
		{pattern: "lib[*", name: "lib[x", want: true},
		{pattern: "a.b", name: "axb", want: false},
		{pattern: "a+b", name: "a+b", want: true},
		{pattern: "é?", name: "éü", want: true},
	}
	for _, tt := range tests {
		t.Run(tt.pattern+" "+tt.name, func(t *testing.T) {
			re, err := regexp.Compile(fnmatchToRegexp(tt.pattern))
			require.NoError(t, err)
			assert.Equal(t, tt.want, re.MatchString(tt.name))
		})
	}
}

func TestFnmatchToRegexpIsAnchored(t *testing.T) {
	assert.Equal(t, `^(?s:/library/std/.*)\z`, fnmatchToRegexp("/library/std/*"))
	assert.Equal(t, `^(?s:[^a-c])\z`, fnmatchToRegexp("[!a-c]"))
	assert.Equal(t, `^(?s:\{a,b\}\[)\z`, fnmatchToRegexp("{a,b}["))
}
