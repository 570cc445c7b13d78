package engine

// Env is a set of variable bindings accumulated during one unification
// attempt. The zero value (nil) is the empty environment. An Env is never
// mutated: Bind stacks a new frame, so a failed attempt is discarded by
// dropping the pointer.
type Env struct {
	up      *Env
	binding binding
}

type binding struct {
	variable Variable
	value    Term
}

// Bind returns an extension of e where v is bound to t.
func (e *Env) Bind(v Variable, t Term) *Env {
	return &Env{
		up: e,
		binding: binding{
			variable: v,
			value:    t,
		},
	}
}

// Lookup returns the value bound to v, newest binding first.
func (e *Env) Lookup(v Variable) (Term, bool) {
	for env := e; env != nil; env = env.up {
		if env.binding.variable == v {
			return env.binding.value, true
		}
	}
	return nil, false
}

// Resolve follows the variable chain in e and returns the first non-variable
// term or the last free variable. The walk is iterative and keeps the
// variables already visited, so a chain that closes on itself stops instead
// of looping.
func (e *Env) Resolve(t Term) Term {
	var seen []Variable
	for {
		v, ok := t.(Variable)
		if !ok {
			return t
		}
		for _, s := range seen {
			if v == s {
				return v
			}
		}
		ref, ok := e.Lookup(v)
		if !ok {
			return v
		}
		seen = append(seen, v)
		t = ref
	}
}

// Simplify rewrites t, replacing every variable with its fully-resolved
// binding. Constants and function structure pass through unchanged.
// Simplifying an already fully-resolved term returns an equal term.
func (e *Env) Simplify(t Term) Term {
	switch t := e.Resolve(t).(type) {
	case *Function:
		args := make([]Term, len(t.Args))
		for i, a := range t.Args {
			args[i] = e.Simplify(a)
		}
		return &Function{Name: t.Name, Args: args}
	default:
		return t
	}
}

// Compose returns an environment equivalent to applying e, then b. Where
// both bind the same variable, e wins: its frames end up on top of b's, and
// Lookup prefers the topmost frame. Chained lookups through b's bindings
// still apply, which is what makes the result a composition rather than a
// plain union.
func (e *Env) Compose(b *Env) *Env {
	var frames []binding
	for env := e; env != nil; env = env.up {
		frames = append(frames, env.binding)
	}
	out := b
	for i := len(frames) - 1; i >= 0; i-- {
		out = out.Bind(frames[i].variable, frames[i].value)
	}
	return out
}
