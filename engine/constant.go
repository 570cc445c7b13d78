package engine

import "strings"

// Constant is an atomic, self-denoting symbol.
type Constant string

func (c Constant) String() string {
	return string(c)
}

// Unify unifies the constant with t.
func (c Constant) Unify(t Term, occursCheck bool, env *Env) (*Env, bool) {
	switch t := env.Resolve(t).(type) {
	case Constant:
		return env, c == t
	case Variable:
		return t.Unify(c, occursCheck, env)
	default:
		return env, false
	}
}

// Compare compares the constant to another term.
func (c Constant) Compare(t Term) int {
	switch t := t.(type) {
	case Variable:
		return 1
	case Constant:
		return strings.Compare(string(c), string(t))
	default:
		return -1
	}
}
