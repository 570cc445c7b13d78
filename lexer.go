package refute

import (
	"bufio"
	"fmt"
	"strings"
	"unicode"
)

// Lexer tokenizes one clause line: whitespace-separated literals of the form
// !name(arg,...) with function terms nested to any depth.
type Lexer struct {
	input  *bufio.Reader
	state  lexState
	tokens []Token
	buf    strings.Builder
}

// NewLexer creates a Lexer over the given input.
func NewLexer(input *bufio.Reader) *Lexer {
	l := Lexer{input: input}
	l.state = l.clause
	return &l
}

// Next returns the next token. After the input is exhausted it keeps
// returning TokenEOS.
func (l *Lexer) Next() Token {
	for l.state != nil && len(l.tokens) == 0 {
		l.state = l.state(l.next())
	}

	if len(l.tokens) > 0 {
		var t Token
		t, l.tokens = l.tokens[0], l.tokens[1:]
		return t
	}

	return Token{}
}

func (l *Lexer) next() rune {
	r, _, err := l.input.ReadRune()
	if err != nil {
		return 0
	}
	return r
}

func (l *Lexer) backup() {
	_ = l.input.UnreadRune()
}

func (l *Lexer) emit(t Token) {
	l.tokens = append(l.tokens, t)
}

// Token is a minimal unit of the clause syntax.
type Token struct {
	Kind TokenKind
	Val  string
}

func (t Token) String() string {
	return fmt.Sprintf("%s %q", t.Kind, t.Val)
}

// TokenKind classifies tokens.
type TokenKind byte

const (
	// TokenEOS represents an end of the input.
	TokenEOS TokenKind = iota
	// TokenBang is the negation marker.
	TokenBang
	// TokenIdent is a symbol name.
	TokenIdent
	// TokenOpen is an opening parenthesis.
	TokenOpen
	// TokenClose is a closing parenthesis.
	TokenClose
	// TokenComma separates arguments.
	TokenComma
	// TokenInvalid is a rune the syntax has no use for.
	TokenInvalid
)

func (k TokenKind) String() string {
	switch k {
	case TokenEOS:
		return "eos"
	case TokenBang:
		return "bang"
	case TokenIdent:
		return "ident"
	case TokenOpen:
		return "open"
	case TokenClose:
		return "close"
	case TokenComma:
		return "comma"
	case TokenInvalid:
		return "invalid"
	default:
		return fmt.Sprintf("unknown(%d)", k)
	}
}

type lexState func(rune) lexState

func (l *Lexer) clause(r rune) lexState {
	switch {
	case r == 0:
		l.emit(Token{Kind: TokenEOS})
		return nil
	case unicode.IsSpace(r):
		return l.clause
	case r == '!':
		l.emit(Token{Kind: TokenBang, Val: "!"})
		return l.clause
	case r == '(':
		l.emit(Token{Kind: TokenOpen, Val: "("})
		return l.clause
	case r == ')':
		l.emit(Token{Kind: TokenClose, Val: ")"})
		return l.clause
	case r == ',':
		l.emit(Token{Kind: TokenComma, Val: ","})
		return l.clause
	case unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_':
		l.buf.WriteRune(r)
		return l.ident
	default:
		l.emit(Token{Kind: TokenInvalid, Val: string(r)})
		return l.clause
	}
}

func (l *Lexer) ident(r rune) lexState {
	switch {
	case unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_':
		l.buf.WriteRune(r)
		return l.ident
	default:
		if r != 0 {
			l.backup()
		}
		l.emit(Token{Kind: TokenIdent, Val: l.buf.String()})
		l.buf.Reset()
		if r == 0 {
			l.emit(Token{Kind: TokenEOS})
			return nil
		}
		return l.clause
	}
}
