package owners

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Matches no character at all. Used for a class like "[z-a]" whose only range is empty.
const emptyClass = `[^\x00-\x{10FFFF}]`

// Convert a shell-style pattern into an anchored regexp with the same rules as Python's fnmatch:
//   - "*" matches any run of characters, "/" included
//   - "?" matches any single character
//   - "[seq]" and "[!seq]" match one character in or not in seq, where "a-z" is a range
//
// Everything else is literal, including "{", "}", "\" and a "[" that has no closing "]".
func fnmatchToRegexp(pattern string) string {
	pat := []rune(pattern)
	n := len(pat)
	var b strings.Builder
	b.WriteString(`^(?s:`)
	for i := 0; i < n; {
		c := pat[i]
		i++
		switch c {
		case '*':
			// Consecutive stars are the same as one
			for i < n && pat[i] == '*' {
				i++
			}
			b.WriteString(`.*`)
		case '?':
			b.WriteString(`.`)
		case '[':
			// A "]" right after "[" or "[!" is part of the set, not its end
			j := i
			if j < n && pat[j] == '!' {
				j++
			}
			if j < n && pat[j] == ']' {
				j++
			}
			for j < n && pat[j] != ']' {
				j++
			}
			if j >= n {
				b.WriteString(`\[`)
				continue
			}
			b.WriteString(charClassToRegexp(pat[i:j]))
			i = j + 1
		default:
			b.WriteString(regexp.QuoteMeta(string(c)))
		}
	}
	b.WriteString(`)\z`)
	return b.String()
}

// Convert the text between "[" and "]" into a regexp character class. The set is split into chunks on
// each "-" that forms a range. A "-" at the start or the end of the set, or right after a range, is
// literal. Ranges whose start sorts after their end are dropped.
func charClassToRegexp(set []rune) string {
	var chunks [][]rune
	i := 0
	k := 1
	if set[0] == '!' {
		k = 2
	}
	for {
		k = indexRune(set, '-', k)
		if k < 0 {
			break
		}
		chunks = append(chunks, append([]rune(nil), set[i:k]...))
		i = k + 1
		k += 3
	}
	if i < len(set) {
		chunks = append(chunks, append([]rune(nil), set[i:]...))
	} else {
		last := len(chunks) - 1
		chunks[last] = append(chunks[last], '-')
	}
	chunks = dropEmptyRanges(chunks)

	if len(chunks) == 1 && len(chunks[0]) == 0 {
		return emptyClass
	}
	if len(chunks) == 1 && string(chunks[0]) == "!" {
		return `.`
	}
	negate := len(chunks[0]) > 0 && chunks[0][0] == '!'
	if negate {
		chunks[0] = chunks[0][1:]
	}
	parts := make([]string, len(chunks))
	for idx, chunk := range chunks {
		var p strings.Builder
		for _, r := range chunk {
			p.WriteString(classEscape(r))
		}
		parts[idx] = p.String()
	}
	if negate {
		return `[^` + strings.Join(parts, "-") + `]`
	}
	return `[` + strings.Join(parts, "-") + `]`
}

// Merge neighbouring chunks whose joining range is empty (ex: "z-a"), removing both range ends.
func dropEmptyRanges(chunks [][]rune) [][]rune {
	for changed := true; changed; {
		changed = false
		for k := len(chunks) - 1; k > 0; k-- {
			prev, cur := chunks[k-1], chunks[k]
			if len(prev) == 0 || len(cur) == 0 || prev[len(prev)-1] <= cur[0] {
				continue
			}
			chunks[k-1] = append(prev[:len(prev)-1:len(prev)-1], cur[1:]...)
			chunks = append(chunks[:k], chunks[k+1:]...)
			changed = true
		}
	}
	return chunks
}

func indexRune(s []rune, r rune, from int) int {
	for i := from; i < len(s); i++ {
		if s[i] == r {
			return i
		}
	}
	return -1
}

// Escape a rune for use inside a regexp character class. Any ASCII punctuation or control character
// is escaped, so "-", "]", "^", "[" and "\" are always literal.
func classEscape(r rune) string {
	if r < utf8.RuneSelf && !isAlnum(r) {
		return `\` + string(r)
	}
	return string(r)
}

func isAlnum(r rune) bool {
	return ('0' <= r && r <= '9') || ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z')
}
