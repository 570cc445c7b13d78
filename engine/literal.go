package engine

import "strings"

// Literal is a predicate applied to terms, possibly negated.
type Literal struct {
	Predicate string
	Negated   bool
	Args      []Term
}

// Complements reports whether l and m clash: same predicate name, opposite
// sign.
func (l Literal) Complements(m Literal) bool {
	return l.Predicate == m.Predicate && l.Negated != m.Negated
}

// Unify unifies the argument lists of l and m pairwise in positional order,
// threading env through every pair and failing on the first mismatch.
// A pair of nullary literals unifies trivially.
func (l Literal) Unify(m Literal, env *Env) (*Env, bool) {
	if l.Predicate != m.Predicate {
		return env, false
	}
	if len(l.Args) != len(m.Args) {
		return env, false
	}
	var ok bool
	for i := range l.Args {
		env, ok = l.Args[i].Unify(m.Args[i], true, env)
		if !ok {
			return env, false
		}
	}
	return env, true
}

// Simplify applies env to every argument.
func (l Literal) Simplify(env *Env) Literal {
	if len(l.Args) == 0 {
		return l
	}
	args := make([]Term, len(l.Args))
	for i, a := range l.Args {
		args[i] = env.Simplify(a)
	}
	return Literal{Predicate: l.Predicate, Negated: l.Negated, Args: args}
}

// Compare orders literals by predicate name, sign, then arguments.
func (l Literal) Compare(m Literal) int {
	if d := strings.Compare(l.Predicate, m.Predicate); d != 0 {
		return d
	}
	if l.Negated != m.Negated {
		if l.Negated {
			return 1
		}
		return -1
	}
	if d := len(l.Args) - len(m.Args); d != 0 {
		return d
	}
	for i, a := range l.Args {
		if d := a.Compare(m.Args[i]); d != 0 {
			return d
		}
	}
	return 0
}

// Equal reports full structural equality: predicate name, sign, and
// structurally-equal argument sequences.
func (l Literal) Equal(m Literal) bool {
	return l.Compare(m) == 0
}

func (l Literal) String() string {
	var sb strings.Builder
	if l.Negated {
		_, _ = sb.WriteString("!")
	}
	_, _ = sb.WriteString(l.Predicate)
	if len(l.Args) > 0 {
		_, _ = sb.WriteString("(")
		for i, a := range l.Args {
			if i > 0 {
				_, _ = sb.WriteString(",")
			}
			_, _ = sb.WriteString(a.String())
		}
		_, _ = sb.WriteString(")")
	}
	return sb.String()
}
