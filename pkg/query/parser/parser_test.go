package parser

import (
	"errors"
	"testing"
	"time"

	"quillbooks/sift/pkg/dates"
	"quillbooks/sift/pkg/query/ast"
)

var refDate = dates.Day(2000, time.January, 1)

func TestParseTerm_Predicates(t *testing.T) {
	tests := []struct {
		term string
		want ast.Query
	}{
		{"", ast.Any{}},
		{"desc:b", ast.Desc{Pattern: "b"}},
		{"acct:expenses:travel", ast.Acct{Pattern: "expenses:travel"}},
		{"expenses", ast.Acct{Pattern: "expenses"}},
		{"not:desc:b", ast.Not{Q: ast.Desc{Pattern: "b"}}},
		{"not:not:desc:b", ast.Not{Q: ast.Not{Q: ast.Desc{Pattern: "b"}}}},
		{"not:plain", ast.Not{Q: ast.Acct{Pattern: "plain"}}},
		{"status:1", ast.Status{Value: true}},
		{"status:t", ast.Status{Value: true}},
		{"status:true", ast.Status{Value: true}},
		{"status:*", ast.Status{Value: true}},
		{"status:", ast.Status{Value: false}},
		{"status:yes", ast.Status{Value: false}},
		{"real:1", ast.Real{Value: true}},
		{"real:*", ast.Real{Value: false}},
		{"empty:true", ast.Empty{Value: true}},
		{"empty:", ast.Empty{Value: false}},
		{"depth:7", ast.Depth{Limit: 7}},
		{"depth:x", ast.Depth{Limit: 0}},
		{"depth:", ast.Depth{Limit: 0}},
		{
			"date:2008",
			ast.Date{Span: dates.SpanBetween(
				dates.Day(2008, time.January, 1),
				dates.Day(2009, time.January, 1),
			)},
		},
		{
			"edate:2008",
			ast.EDate{Span: dates.SpanBetween(
				dates.Day(2008, time.January, 1),
				dates.Day(2009, time.January, 1),
			)},
		},
		{"date:bogus", ast.None{}},
		{"edate:", ast.None{}},
	}

	p := NewParser()
	for _, tt := range tests {
		t.Run(tt.term, func(t *testing.T) {
			got, opt := p.parseTerm(refDate, tt.term)
			if opt != nil {
				t.Fatalf("parseTerm(%q) yielded option %v, want predicate", tt.term, opt)
			}
			if !ast.Equal(got, tt.want) {
				t.Errorf("parseTerm(%q) = %v, want %v", tt.term, got, tt.want)
			}
		})
	}
}

func TestParseTerm_Options(t *testing.T) {
	p := NewParser()

	_, opt := p.parseTerm(refDate, "inacct:assets:cash")
	if want := (ast.InAcct{Account: "assets:cash"}); opt != want {
		t.Errorf("parseTerm(inacct:) = %v, want %v", opt, want)
	}

	_, opt = p.parseTerm(refDate, "inacctonly:assets:cash")
	if want := (ast.InAcctOnly{Account: "assets:cash"}); opt != want {
		t.Errorf("parseTerm(inacctonly:) = %v, want %v", opt, want)
	}

	// Options cannot be negated: the term degrades to Any and the option
	// is discarded.
	q, opt := p.parseTerm(refDate, "not:inacct:a")
	if opt != nil {
		t.Errorf("parseTerm(not:inacct:a) recorded option %v, want none", opt)
	}
	if !ast.Equal(q, ast.Any{}) {
		t.Errorf("parseTerm(not:inacct:a) = %v, want any", q)
	}
}

func TestParse_Grouping(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		want     ast.Query
		wantOpts []ast.Opt
	}{
		{
			name:  "accounts or together and with desc",
			input: "acct:a acct:b desc:x",
			want: ast.And{
				ast.Or{ast.Acct{Pattern: "a"}, ast.Acct{Pattern: "b"}},
				ast.Desc{Pattern: "x"},
			},
		},
		{
			name:  "quoted account with desc",
			input: "acct:'expenses:travel' desc:b",
			want: ast.And{
				ast.Acct{Pattern: "expenses:travel"},
				ast.Desc{Pattern: "b"},
			},
		},
		{
			name:     "option plus desc",
			input:    `inacct:a desc:"b b"`,
			want:     ast.Desc{Pattern: "b b"},
			wantOpts: []ast.Opt{ast.InAcct{Account: "a"}},
		},
		{
			name:     "options only",
			input:    "inacct:a inacct:b",
			want:     ast.Any{},
			wantOpts: []ast.Opt{ast.InAcct{Account: "a"}, ast.InAcct{Account: "b"}},
		},
		{
			name:  "negated field terms are not grouped",
			input: "not:acct:a acct:b",
			want: ast.And{
				ast.Acct{Pattern: "b"},
				ast.Not{Q: ast.Acct{Pattern: "a"}},
			},
		},
		{
			name:  "empty input",
			input: "",
			want:  ast.Any{},
		},
	}

	p := NewParser()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, opts := p.Parse(refDate, tt.input)
			if !ast.Equal(got, tt.want) {
				t.Errorf("Parse(%q) = %v, want %v", tt.input, got, tt.want)
			}
			if len(opts) != len(tt.wantOpts) {
				t.Fatalf("Parse(%q) options = %v, want %v", tt.input, opts, tt.wantOpts)
			}
			for i := range opts {
				if opts[i] != tt.wantOpts[i] {
					t.Errorf("Parse(%q) option %d = %v, want %v", tt.input, i, opts[i], tt.wantOpts[i])
				}
			}
		})
	}
}

func TestParse_PeriodPort(t *testing.T) {
	fixed := dates.SpanBetween(dates.Day(2024, time.May, 1), dates.Day(2024, time.June, 1))
	p := &Parser{
		ParsePeriod: func(ref time.Time, expr string) (dates.Span, error) {
			if expr == "boom" {
				return dates.Span{}, errors.New("boom")
			}
			return fixed, nil
		},
	}

	q, _ := p.Parse(refDate, "date:whatever")
	if !ast.Equal(q, ast.Date{Span: fixed}) {
		t.Errorf("Parse with fake period port = %v, want date:%v", q, fixed)
	}

	q, _ = p.Parse(refDate, "date:boom")
	if !ast.Equal(q, ast.None{}) {
		t.Errorf("Parse with failing period port = %v, want none", q)
	}
}
