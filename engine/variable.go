package engine

import "strings"

// Variable is a placeholder symbol, scoped to the clause it appears in.
type Variable string

func (v Variable) String() string {
	return string(v)
}

// Unify unifies the variable with t. If the variable is already bound, the
// bound term is unified against t instead. Binding a variable to a term that
// contains it is refused while occursCheck holds.
func (v Variable) Unify(t Term, occursCheck bool, env *Env) (*Env, bool) {
	r := env.Resolve(v)
	t = env.Resolve(t)
	w, ok := r.(Variable)
	if !ok {
		return r.Unify(t, occursCheck, env)
	}
	if u, ok := t.(Variable); ok && u == w {
		return env, true
	}
	if occursCheck && contains(t, w, env) {
		return env, false
	}
	return env.Bind(w, t), true
}

// Compare compares the variable to another term.
func (v Variable) Compare(t Term) int {
	switch t := t.(type) {
	case Variable:
		return strings.Compare(string(v), string(t))
	default:
		return -1
	}
}
