package token

import "fmt"

//go:generate go run golang.org/x/tools/cmd/stringer@v0.13.0 -type=TokenKind
type TokenKind int

const (
	EOF TokenKind = iota
	ILLEGAL

	// Literals and identifiers.
	IDENT
	INT
	STRING

	// Operators.
	ASSIGN
	PLUS
	MINUS
	BANG
	ASTERISK
	SLASH
	EQ
	NOTEQ
	LESSTHAN
	GREATERTHAN

	// Delimiters.
	COMMA
	SEMICOLON
	LEFTPAREN
	RIGHTPAREN
	LEFTBRACE
	RIGHTBRACE

	// Keywords.
	FN
	LET
	IF
	ELSE
	TRUE
	FALSE
	RETURN
)

// Token is one classified unit of source text. Text holds the exact
// spelling that produced the token; it is empty only for EOF.
type Token struct {
	Kind TokenKind
	Text string
}

func (t Token) String() string {
	return fmt.Sprintf("{%v, %q}", t.Kind, t.Text)
}

var keywords = map[string]TokenKind{
	"fn":     FN,
	"let":    LET,
	"if":     IF,
	"else":   ELSE,
	"true":   TRUE,
	"false":  FALSE,
	"return": RETURN,
}

// LookupIdent maps a scanned spelling to its keyword kind, or IDENT for
// anything that is not reserved.
func LookupIdent(ident string) TokenKind {
	if k, ok := keywords[ident]; ok {
		return k
	}
	return IDENT
}
