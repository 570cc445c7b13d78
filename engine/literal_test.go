package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLiteral_Complements(t *testing.T) {
	p := Literal{Predicate: "P", Args: []Term{Variable("x")}}
	assert.True(t, p.Complements(Literal{Predicate: "P", Negated: true}))
	assert.False(t, p.Complements(Literal{Predicate: "P"}))
	assert.False(t, p.Complements(Literal{Predicate: "Q", Negated: true}))
}

func TestLiteral_Unify(t *testing.T) {
	t.Run("arguments pair up by position", func(t *testing.T) {
		p := Literal{Predicate: "P", Args: []Term{Variable("x"), Constant("b")}}
		q := Literal{Predicate: "P", Negated: true, Args: []Term{Constant("a"), Variable("y")}}
		env, ok := p.Unify(q, nil)
		assert.True(t, ok)
		assert.Equal(t, Constant("a"), env.Resolve(Variable("x")))
		assert.Equal(t, Constant("b"), env.Resolve(Variable("y")))
	})

	t.Run("one environment threads through all pairs", func(t *testing.T) {
		p := Literal{Predicate: "P", Args: []Term{Variable("x"), Variable("x")}}
		q := Literal{Predicate: "P", Args: []Term{Constant("a"), Constant("b")}}
		_, ok := p.Unify(q, nil)
		assert.False(t, ok)
	})

	t.Run("fails fast on the first mismatching pair", func(t *testing.T) {
		p := Literal{Predicate: "P", Args: []Term{Constant("a"), Variable("x")}}
		q := Literal{Predicate: "P", Args: []Term{Constant("b"), Constant("c")}}
		env, ok := p.Unify(q, nil)
		assert.False(t, ok)
		assert.Equal(t, Variable("x"), env.Resolve(Variable("x")))
	})

	t.Run("arity mismatch", func(t *testing.T) {
		p := Literal{Predicate: "P", Args: []Term{Constant("a")}}
		q := Literal{Predicate: "P"}
		_, ok := p.Unify(q, nil)
		assert.False(t, ok)
	})

	t.Run("nullary literals unify trivially", func(t *testing.T) {
		p := Literal{Predicate: "P"}
		q := Literal{Predicate: "P", Negated: true}
		env, ok := p.Unify(q, nil)
		assert.True(t, ok)
		assert.Nil(t, env)
	})
}

func TestLiteral_Equal(t *testing.T) {
	p := Literal{Predicate: "P", Args: []Term{Constant("a"), Variable("x")}}

	assert.True(t, p.Equal(Literal{Predicate: "P", Args: []Term{Constant("a"), Variable("x")}}))
	assert.False(t, p.Equal(Literal{Predicate: "P", Negated: true, Args: []Term{Constant("a"), Variable("x")}}))
	assert.False(t, p.Equal(Literal{Predicate: "P", Args: []Term{Constant("b"), Variable("x")}}))
	assert.False(t, p.Equal(Literal{Predicate: "P", Args: []Term{Constant("a")}}))
	assert.False(t, p.Equal(Literal{Predicate: "Q", Args: []Term{Constant("a"), Variable("x")}}))
}

func TestLiteral_Simplify(t *testing.T) {
	var env *Env
	env = env.Bind(Variable("x"), Constant("a"))

	l := Literal{Predicate: "P", Negated: true, Args: []Term{
		Variable("x"),
		&Function{Name: "f", Args: []Term{Variable("x"), Variable("y")}},
	}}
	assert.Equal(t, Literal{Predicate: "P", Negated: true, Args: []Term{
		Constant("a"),
		&Function{Name: "f", Args: []Term{Constant("a"), Variable("y")}},
	}}, l.Simplify(env))

	t.Run("nullary literals pass through", func(t *testing.T) {
		l := Literal{Predicate: "P"}
		assert.Equal(t, l, l.Simplify(env))
	})
}

func TestLiteral_String(t *testing.T) {
	assert.Equal(t, "P", Literal{Predicate: "P"}.String())
	assert.Equal(t, "!P", Literal{Predicate: "P", Negated: true}.String())
	assert.Equal(t, "!P(a,f(x))", Literal{Predicate: "P", Negated: true, Args: []Term{
		Constant("a"),
		&Function{Name: "f", Args: []Term{Variable("x")}},
	}}.String())
}
