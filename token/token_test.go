package token_test

import (
	"testing"

	"github.com/tofu-lang/tofu/token"
)

func TestLookupIdent(t *testing.T) {
	t.Parallel()

	testcases := []struct {
		ident    string
		expected token.TokenKind
	}{
		{"fn", token.FN},
		{"let", token.LET},
		{"if", token.IF},
		{"else", token.ELSE},
		{"true", token.TRUE},
		{"false", token.FALSE},
		{"return", token.RETURN},
		{"foo", token.IDENT},
		{"lets", token.IDENT},
		{"Fn", token.IDENT},
		{"_", token.IDENT},
		{"", token.IDENT},
	}

	for _, testcase := range testcases {
		if got := token.LookupIdent(testcase.ident); got != testcase.expected {
			t.Errorf("LookupIdent(%q) = %v, want %v", testcase.ident, got, testcase.expected)
		}
	}
}

func TestTokenString(t *testing.T) {
	t.Parallel()

	testcases := []struct {
		token    token.Token
		expected string
	}{
		{token.Token{Kind: token.LET, Text: "let"}, `{LET, "let"}`},
		{token.Token{Kind: token.EQ, Text: "=="}, `{EQ, "=="}`},
		{token.Token{Kind: token.STRING, Text: "foo bar"}, `{STRING, "foo bar"}`},
		{token.Token{Kind: token.EOF, Text: ""}, `{EOF, ""}`},
	}

	for _, testcase := range testcases {
		if got := testcase.token.String(); got != testcase.expected {
			t.Errorf("String() = %q, want %q", got, testcase.expected)
		}
	}
}
