package parser

import (
	"reflect"
	"testing"
)

func TestLex(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty", "", nil},
		{"spaces only", "   ", nil},
		{"plain terms", "a b expenses:food", []string{"a", "b", "expenses:food"}},
		{"extra spaces", "a   b", []string{"a", "b"}},
		{"double quoted phrase", `"b b"`, []string{"b b"}},
		{"single quoted phrase", "'a a' c", []string{"a a", "c"}},
		{"prefixed quoted phrase", "desc:'x y' z", []string{"desc:x y", "z"}},
		{"prefixed double quoted", `not:desc:"a a"`, []string{"not:desc:a a"}},
		{"negated bare quote", "not:'a a'", []string{"not:a a"}},
		{"unmatched quote kept literally", "not:'a a' 'b", []string{"not:a a", "'b"}},
		{"quote inside plain run", "aa'bb", []string{"aa'bb"}},
		{"prefix without quote stays plain", "desc:plain", []string{"desc:plain"}},
		{"empty quoted phrase", "''", []string{""}},
		{"mixed quotes are literal", `'a" b`, []string{`'a"`, "b"}},
		{"option prefix with quote", "inacct:'a b'", []string{"inacct:a b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Lex(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Lex(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
