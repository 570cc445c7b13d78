// Package refute decides satisfiability of finite first-order clause sets by
// resolution refutation: clauses with complementary literals are combined
// until either the empty clause appears (the set is unsatisfiable) or no new
// clause can be derived (the set is satisfiable). The general problem is
// undecidable, so a run can also end indeterminate when a caller-supplied
// bound is hit.
package refute

import (
	"context"
	"io"

	"github.com/ichiban/refute/engine"
)

// Solver returns a saturation solver over the problem's clauses.
func (p *Problem) Solver(opts ...engine.Option) *engine.Solver {
	return engine.New(p.Clauses, opts...)
}

// Solve parses a problem and saturates it.
func Solve(ctx context.Context, r io.Reader, opts ...engine.Option) (engine.Status, error) {
	p, err := Parse(r)
	if err != nil {
		return engine.Indet, err
	}
	return p.Solver(opts...).Solve(ctx), nil
}
