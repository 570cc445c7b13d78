package engine

import "fmt"

// Term is a first-order term: a constant, a variable, or a function application.
type Term interface {
	fmt.Stringer
	// Unify unifies the term with t under env and returns the extended
	// environment. On failure it reports false and the caller discards
	// whatever was bound along the way.
	Unify(t Term, occursCheck bool, env *Env) (*Env, bool)
	// Compare orders terms structurally: variables, then constants, then
	// functions.
	Compare(t Term) int
}

// contains checks if t contains the variable v after resolving bindings in env.
func contains(t Term, v Variable, env *Env) bool {
	switch t := env.Resolve(t).(type) {
	case Variable:
		return t == v
	case *Function:
		for _, a := range t.Args {
			if contains(a, v, env) {
				return true
			}
		}
		return false
	default:
		return false
	}
}
