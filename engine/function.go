package engine

import (
	"strings"
)

// Function is a compound term. The symbol is identified by Name plus arity,
// and argument order is significant.
type Function struct {
	Name string
	Args []Term
}

func (f *Function) String() string {
	var sb strings.Builder
	_, _ = sb.WriteString(f.Name)
	_, _ = sb.WriteString("(")
	for i, a := range f.Args {
		if i > 0 {
			_, _ = sb.WriteString(",")
		}
		_, _ = sb.WriteString(a.String())
	}
	_, _ = sb.WriteString(")")
	return sb.String()
}

// Unify unifies the function term with t. Both sides must have the same name
// and arity; the arguments are then unified pairwise in positional order,
// threading env through each pair.
func (f *Function) Unify(t Term, occursCheck bool, env *Env) (*Env, bool) {
	switch t := env.Resolve(t).(type) {
	case *Function:
		if f.Name != t.Name {
			return env, false
		}
		if len(f.Args) != len(t.Args) {
			return env, false
		}
		var ok bool
		for i := range f.Args {
			env, ok = f.Args[i].Unify(t.Args[i], occursCheck, env)
			if !ok {
				return env, false
			}
		}
		return env, true
	case Variable:
		return t.Unify(f, occursCheck, env)
	default:
		return env, false
	}
}

// Compare compares the function term to another term.
func (f *Function) Compare(t Term) int {
	switch t := t.(type) {
	case *Function:
		if d := len(f.Args) - len(t.Args); d != 0 {
			return d
		}
		if d := strings.Compare(f.Name, t.Name); d != 0 {
			return d
		}
		for i, a := range f.Args {
			if d := a.Compare(t.Args[i]); d != 0 {
				return d
			}
		}
		return 0
	default:
		return 1
	}
}
