package lexer

import (
	"unicode"

	"github.com/tofu-lang/tofu/token"
)

// Lexer turns source text into tokens, one NextToken call at a time.
// The input is held as runes so multi-byte characters scan as single
// characters. ch is the rune under the cursor; the NUL sentinel marks
// exhausted input.
type Lexer struct {
	input   []rune
	pos     int // index of ch
	readPos int // one past pos, used for lookahead
	ch      rune
}

// New returns a Lexer positioned on the first character of input.
func New(input string) *Lexer {
	l := &Lexer{input: []rune(input)}
	l.readChar()
	return l
}

// Lex scans the whole source and returns every token, EOF included.
func Lex(source string) []token.Token {
	l := New(source)
	var tokens []token.Token
	for {
		tok := l.NextToken()
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			return tokens
		}
	}
}

// NextToken returns the next token and advances past it. It never
// fails: unrecognized characters come back as ILLEGAL tokens, and once
// the input is exhausted every further call returns EOF.
func (l *Lexer) NextToken() token.Token {
	l.skipWhitespace()
	for l.ch == '/' && l.peekChar() == '/' {
		l.skipComment()
		l.skipWhitespace()
	}

	var tok token.Token
	switch l.ch {
	case ';':
		tok = newToken(token.SEMICOLON, l.ch)
	case ',':
		tok = newToken(token.COMMA, l.ch)
	case '(':
		tok = newToken(token.LEFTPAREN, l.ch)
	case ')':
		tok = newToken(token.RIGHTPAREN, l.ch)
	case '{':
		tok = newToken(token.LEFTBRACE, l.ch)
	case '}':
		tok = newToken(token.RIGHTBRACE, l.ch)
	case '+':
		tok = newToken(token.PLUS, l.ch)
	case '-':
		tok = newToken(token.MINUS, l.ch)
	case '*':
		tok = newToken(token.ASTERISK, l.ch)
	case '/':
		tok = newToken(token.SLASH, l.ch)
	case '<':
		tok = newToken(token.LESSTHAN, l.ch)
	case '>':
		tok = newToken(token.GREATERTHAN, l.ch)
	case '=':
		if l.peekChar() == '=' {
			l.readChar()
			tok = token.Token{Kind: token.EQ, Text: "=="}
		} else {
			tok = newToken(token.ASSIGN, l.ch)
		}
	case '!':
		if l.peekChar() == '=' {
			l.readChar()
			tok = token.Token{Kind: token.NOTEQ, Text: "!="}
		} else {
			tok = newToken(token.BANG, l.ch)
		}
	case '"':
		// The closing quote is consumed by the readChar below.
		tok = token.Token{Kind: token.STRING, Text: l.readString()}
	case 0:
		// Stay put so repeated calls keep returning EOF.
		return token.Token{Kind: token.EOF, Text: ""}
	default:
		if isLetter(l.ch) {
			ident := l.readIdentifier()
			return token.Token{Kind: token.LookupIdent(ident), Text: ident}
		}
		if isDigit(l.ch) {
			return token.Token{Kind: token.INT, Text: l.readNumber()}
		}
		tok = newToken(token.ILLEGAL, l.ch)
	}

	l.readChar()
	return tok
}

func newToken(kind token.TokenKind, ch rune) token.Token {
	return token.Token{Kind: kind, Text: string(ch)}
}

func (l *Lexer) readChar() {
	if l.readPos >= len(l.input) {
		l.ch = 0
	} else {
		l.ch = l.input[l.readPos]
	}
	l.pos = l.readPos
	l.readPos++
}

func (l *Lexer) peekChar() rune {
	if l.readPos >= len(l.input) {
		return 0
	}
	return l.input[l.readPos]
}

func (l *Lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\n' || l.ch == '\r' {
		l.readChar()
	}
}

func (l *Lexer) skipComment() {
	for l.ch != '\n' && l.ch != 0 {
		l.readChar()
	}
}

// readIdentifier consumes a maximal run of letters and underscores.
// Digits do not continue an identifier, so "x1" scans as "x" then "1".
// A quirk inherited from the original language, kept for compatibility.
func (l *Lexer) readIdentifier() string {
	start := l.pos
	for isLetter(l.ch) {
		l.readChar()
	}
	return string(l.input[start:l.pos])
}

func (l *Lexer) readNumber() string {
	start := l.pos
	for isDigit(l.ch) {
		l.readChar()
	}
	return string(l.input[start:l.pos])
}

// readString consumes up to the closing quote and returns the content
// between the quotes, verbatim. There are no escape sequences. An
// unterminated string yields everything up to end of input.
func (l *Lexer) readString() string {
	start := l.pos + 1
	for {
		l.readChar()
		if l.ch == '"' || l.ch == 0 {
			return string(l.input[start:l.pos])
		}
	}
}

func isLetter(ch rune) bool {
	return unicode.IsLetter(ch) || ch == '_'
}

func isDigit(ch rune) bool {
	return '0' <= ch && ch <= '9'
}
