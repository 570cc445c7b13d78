package refute

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/ichiban/refute/engine"
)

// Problem is a clause set together with its declared symbol tables.
// The four tables are disjoint namespaces: a name in a clause is classified
// by the table it appears in, and a name in none of them is a contract
// violation, not a fresh symbol.
type Problem struct {
	Predicates map[string]struct{}
	Variables  map[string]struct{}
	Constants  map[string]struct{}
	Functions  map[string]struct{}
	Clauses    []engine.Clause
}

// MalformedTermError means a clause mentions a symbol that was not declared
// in any of the header sections.
type MalformedTermError struct {
	Symbol string
}

func (e MalformedTermError) Error() string {
	return fmt.Sprintf("symbol %q is not a declared predicate, variable, constant, or function", e.Symbol)
}

// Parse reads the five-section problem format: four header lines declaring
// predicate, variable, constant, and function symbols, a reserved separator
// line, then one clause per line. The leading token of each header line is a
// section label and is skipped.
func Parse(r io.Reader) (*Problem, error) {
	p := Problem{
		Predicates: map[string]struct{}{},
		Variables:  map[string]struct{}{},
		Constants:  map[string]struct{}{},
		Functions:  map[string]struct{}{},
	}

	s := bufio.NewScanner(r)
	line := 0

	for _, table := range []map[string]struct{}{p.Predicates, p.Variables, p.Constants, p.Functions} {
		line++
		if !s.Scan() {
			if err := s.Err(); err != nil {
				return nil, err
			}
			return nil, fmt.Errorf("line %d: missing header line", line)
		}
		fields := strings.Fields(s.Text())
		if len(fields) > 0 {
			fields = fields[1:] // section label
		}
		for _, f := range fields {
			table[f] = struct{}{}
		}
	}

	// Reserved separator line.
	if s.Scan() {
		line++
	}

	for s.Scan() {
		line++
		text := strings.TrimSpace(s.Text())
		if text == "" {
			continue
		}
		c, err := p.ParseClause(text)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		p.Clauses = append(p.Clauses, c)
	}
	return &p, s.Err()
}

// ParseClause parses one clause line against the problem's symbol tables.
func (p *Problem) ParseClause(text string) (engine.Clause, error) {
	l := NewLexer(bufio.NewReader(strings.NewReader(text)))
	var lits []engine.Literal
	tok := l.Next()
	for tok.Kind != TokenEOS {
		lit, next, err := p.parseLiteral(l, tok)
		if err != nil {
			return engine.Clause{}, err
		}
		lits = append(lits, lit)
		tok = next
	}
	return engine.Clause{Literals: lits}, nil
}

// parseLiteral consumes one literal starting at tok and returns it along
// with the first token after it.
func (p *Problem) parseLiteral(l *Lexer, tok Token) (engine.Literal, Token, error) {
	var lit engine.Literal
	if tok.Kind == TokenBang {
		lit.Negated = true
		tok = l.Next()
	}
	if tok.Kind != TokenIdent {
		return lit, tok, fmt.Errorf("expected a literal, got %s", tok)
	}
	if _, ok := p.Predicates[tok.Val]; !ok {
		return lit, tok, MalformedTermError{Symbol: tok.Val}
	}
	lit.Predicate = tok.Val

	tok = l.Next()
	if tok.Kind != TokenOpen {
		return lit, tok, nil // a nullary literal may omit parentheses
	}

	tok = l.Next()
	if tok.Kind == TokenClose {
		return lit, l.Next(), nil
	}
	for {
		arg, next, err := p.parseTerm(l, tok)
		if err != nil {
			return lit, next, err
		}
		lit.Args = append(lit.Args, arg)
		tok = next
		if tok.Kind != TokenComma {
			break
		}
		tok = l.Next()
	}
	if tok.Kind != TokenClose {
		return lit, tok, fmt.Errorf("expected %q, got %s", ")", tok)
	}
	return lit, l.Next(), nil
}

// parseTerm consumes one constant, variable, or function term starting at
// tok and returns it along with the first token after it.
func (p *Problem) parseTerm(l *Lexer, tok Token) (engine.Term, Token, error) {
	if tok.Kind != TokenIdent {
		return nil, tok, fmt.Errorf("expected a term, got %s", tok)
	}
	name := tok.Val
	tok = l.Next()

	if _, ok := p.Functions[name]; ok {
		if tok.Kind != TokenOpen {
			return nil, tok, fmt.Errorf("function %q is missing its argument list", name)
		}
		f := engine.Function{Name: name}
		tok = l.Next()
		for {
			arg, next, err := p.parseTerm(l, tok)
			if err != nil {
				return nil, next, err
			}
			f.Args = append(f.Args, arg)
			tok = next
			if tok.Kind != TokenComma {
				break
			}
			tok = l.Next()
		}
		if tok.Kind != TokenClose {
			return nil, tok, fmt.Errorf("expected %q, got %s", ")", tok)
		}
		return &f, l.Next(), nil
	}
	if _, ok := p.Variables[name]; ok {
		return engine.Variable(name), tok, nil
	}
	if _, ok := p.Constants[name]; ok {
		return engine.Constant(name), tok, nil
	}
	return nil, tok, MalformedTermError{Symbol: name}
}
