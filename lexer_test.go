package refute

import (
	"bufio"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLexer_Next(t *testing.T) {
	tests := []struct {
		title  string
		input  string
		tokens []Token
	}{
		{
			title: "positive literal",
			input: "P(a,x)",
			tokens: []Token{
				{Kind: TokenIdent, Val: "P"},
				{Kind: TokenOpen, Val: "("},
				{Kind: TokenIdent, Val: "a"},
				{Kind: TokenComma, Val: ","},
				{Kind: TokenIdent, Val: "x"},
				{Kind: TokenClose, Val: ")"},
			},
		},
		{
			title: "negated literal",
			input: "!P(a)",
			tokens: []Token{
				{Kind: TokenBang, Val: "!"},
				{Kind: TokenIdent, Val: "P"},
				{Kind: TokenOpen, Val: "("},
				{Kind: TokenIdent, Val: "a"},
				{Kind: TokenClose, Val: ")"},
			},
		},
		{
			title: "nullary literal without parentheses",
			input: "P",
			tokens: []Token{
				{Kind: TokenIdent, Val: "P"},
			},
		},
		{
			title: "several literals separated by whitespace",
			input: "P(x)  !Q",
			tokens: []Token{
				{Kind: TokenIdent, Val: "P"},
				{Kind: TokenOpen, Val: "("},
				{Kind: TokenIdent, Val: "x"},
				{Kind: TokenClose, Val: ")"},
				{Kind: TokenBang, Val: "!"},
				{Kind: TokenIdent, Val: "Q"},
			},
		},
		{
			title: "nested function terms",
			input: "P(f(g(x),a))",
			tokens: []Token{
				{Kind: TokenIdent, Val: "P"},
				{Kind: TokenOpen, Val: "("},
				{Kind: TokenIdent, Val: "f"},
				{Kind: TokenOpen, Val: "("},
				{Kind: TokenIdent, Val: "g"},
				{Kind: TokenOpen, Val: "("},
				{Kind: TokenIdent, Val: "x"},
				{Kind: TokenClose, Val: ")"},
				{Kind: TokenComma, Val: ","},
				{Kind: TokenIdent, Val: "a"},
				{Kind: TokenClose, Val: ")"},
				{Kind: TokenClose, Val: ")"},
			},
		},
		{
			title: "stray rune",
			input: "P ?",
			tokens: []Token{
				{Kind: TokenIdent, Val: "P"},
				{Kind: TokenInvalid, Val: "?"},
			},
		},
		{
			title:  "empty input",
			input:  "",
			tokens: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			l := NewLexer(bufio.NewReader(strings.NewReader(tt.input)))
			for _, want := range tt.tokens {
				assert.Equal(t, want, l.Next())
			}
			assert.Equal(t, Token{Kind: TokenEOS}, l.Next())
			assert.Equal(t, Token{Kind: TokenEOS}, l.Next())
		})
	}
}
