package engine

// Resolvents returns every clause derivable from c1 and c2 in a single
// resolution step: one resolvent per complementary literal pair whose
// argument lists unify. Each pair starts from a fresh environment, so
// bindings discovered for one pair never leak into a resolvent built from
// another. A pair that fails to unify contributes nothing and the remaining
// pairs are still tried.
func Resolvents(c1, c2 Clause) []Clause {
	var out []Clause
	for i, p := range c1.Literals {
		for j, q := range c2.Literals {
			if !p.Complements(q) {
				continue
			}
			env, ok := p.Unify(q, nil)
			if !ok {
				continue
			}
			out = append(out, resolvent(c1, i, c2, j, env))
		}
	}
	return out
}

// resolvent builds the clause of every literal of c1 except the i-th and
// every literal of c2 except the j-th, with env applied to the survivors.
// Exclusion is by index, so a duplicate of the consumed literal elsewhere in
// the parent survives.
func resolvent(c1 Clause, i int, c2 Clause, j int, env *Env) Clause {
	lits := make([]Literal, 0, len(c1.Literals)+len(c2.Literals)-2)
	for k, l := range c1.Literals {
		if k == i {
			continue
		}
		lits = append(lits, l.Simplify(env))
	}
	for k, l := range c2.Literals {
		if k == j {
			continue
		}
		lits = append(lits, l.Simplify(env))
	}
	return Clause{Literals: lits}
}
