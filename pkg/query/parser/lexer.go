package parser

import "strings"

// fieldPrefixes lists every recognized term prefix, longest first so that
// prefix matching never stops at a shorter prefix that happens to share
// leading characters (inacctonly: before inacct:).
var fieldPrefixes = []string{
	"inacctonly:",
	"inacct:",
	"status:",
	"depth:",
	"edate:",
	"empty:",
	"desc:",
	"acct:",
	"date:",
	"real:",
}

const notPrefix = "not:"

// Lex splits a raw query expression into terms. Terms are separated by runs
// of spaces, except inside single- or double-quoted phrases. A field prefix
// (optionally preceded by not:) may be glued to an opening quote; the quotes
// are stripped and the prefix re-attached:
//
//	Lex(`not:desc:'a a' 'b b' c`)  =>  [`not:desc:a a`, `b b`, `c`]
//
// Lexing never fails. An unmatched quote is not special: the run containing
// it is passed through verbatim as a plain term.
func Lex(input string) []string {
	var terms []string
	i := 0
	for i < len(input) {
		if input[i] == ' ' {
			i++
			continue
		}
		if term, next, ok := lexPrefixedQuoted(input, i); ok {
			terms = append(terms, term)
			i = next
			continue
		}
		if content, next, ok := lexQuoted(input, i); ok {
			terms = append(terms, content)
			i = next
			continue
		}
		j := i
		for j < len(input) && input[j] != ' ' {
			j++
		}
		terms = append(terms, input[i:j])
		i = j
	}
	return terms
}

// lexPrefixedQuoted matches [not:][prefix:]'phrase' at position i. A bare
// quoted phrase with no prefix at all is left for lexQuoted; a prefix with
// no quote after it is left for the plain-term path.
func lexPrefixedQuoted(s string, i int) (term string, next int, ok bool) {
	j := i
	neg := ""
	if strings.HasPrefix(s[j:], notPrefix) {
		neg = notPrefix
		j += len(notPrefix)
	}
	prefix := ""
	for _, p := range fieldPrefixes {
		if strings.HasPrefix(s[j:], p) {
			prefix = p
			j += len(p)
			break
		}
	}
	if neg == "" && prefix == "" {
		return "", 0, false
	}
	content, next, ok := lexQuoted(s, j)
	if !ok {
		return "", 0, false
	}
	return neg + prefix + content, next, true
}

// lexQuoted matches a quoted phrase at position i. The opening and closing
// quote must be the same character, one of ' or "; the content between them
// is taken verbatim, with no escaping.
func lexQuoted(s string, i int) (content string, next int, ok bool) {
	if i >= len(s) || (s[i] != '\'' && s[i] != '"') {
		return "", 0, false
	}
	quote := s[i]
	end := strings.IndexByte(s[i+1:], quote)
	if end < 0 {
		return "", 0, false
	}
	end += i + 1
	return s[i+1 : end], end + 1, true
}
