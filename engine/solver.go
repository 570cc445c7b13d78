package engine

import (
	"context"
	"io"
	"sync"

	"github.com/kr/pretty"

	"github.com/ichiban/refute/internal/parallel"
)

// Status is the outcome of a saturation run.
type Status byte

const (
	// Indet means the clause set is neither proven satisfiable nor
	// unsatisfiable: a resource bound was hit or the run was cancelled.
	Indet Status = iota
	// Sat means the clause set saturated without deriving the empty clause.
	Sat
	// Unsat means the empty clause was derived.
	Unsat
)

func (s Status) String() string {
	switch s {
	case Sat:
		return "satisfiable"
	case Unsat:
		return "unsatisfiable"
	default:
		return "indeterminate"
	}
}

// Solver saturates a clause set by binary resolution. Resolution is
// refutation-complete but not a decision procedure: once function symbols
// appear, unification can keep producing fresh terms and the loop may never
// reach a fixpoint. A run on such a set should carry a round bound, a clause
// bound, or a context deadline.
type Solver struct {
	clauses []Clause
	seen    map[string]struct{}

	maxRounds  int
	maxClauses int
	workers    int
	debug      io.Writer
}

// Option configures a Solver.
type Option func(*Solver)

// WithMaxRounds gives up after n saturation rounds. Zero means no bound.
func WithMaxRounds(n int) Option {
	return func(s *Solver) {
		s.maxRounds = n
	}
}

// WithMaxClauses gives up once the working set outgrows n clauses. Zero
// means no bound.
func WithMaxClauses(n int) Option {
	return func(s *Solver) {
		s.maxClauses = n
	}
}

// WithWorkers sets how many goroutines resolve clause pairs within a round.
// Zero means one per CPU.
func WithWorkers(n int) Option {
	return func(s *Solver) {
		s.workers = n
	}
}

// WithDebug dumps the working set to w after every round.
func WithDebug(w io.Writer) Option {
	return func(s *Solver) {
		s.debug = w
	}
}

// New returns a Solver over the given clauses. Duplicates in the input set
// are folded away up front.
func New(clauses []Clause, opts ...Option) *Solver {
	s := Solver{seen: map[string]struct{}{}}
	for _, c := range clauses {
		s.add(c)
	}
	for _, o := range opts {
		o(&s)
	}
	return &s
}

// add extends the working set unless an equal clause is already known.
func (s *Solver) add(c Clause) bool {
	k := c.key()
	if _, ok := s.seen[k]; ok {
		return false
	}
	s.seen[k] = struct{}{}
	s.clauses = append(s.clauses, c)
	return true
}

// Clauses returns a copy of the current working set.
func (s *Solver) Clauses() []Clause {
	cs := make([]Clause, len(s.clauses))
	copy(cs, s.clauses)
	return cs
}

// Solve runs saturation rounds until the empty clause appears (Unsat), a
// round derives nothing new (Sat), or a bound or the context cuts the run
// short (Indet). Clauses are only ever added, never removed: parent clauses
// stay in the set alongside their resolvents.
func (s *Solver) Solve(ctx context.Context) Status {
	for _, c := range s.clauses {
		if c.Empty() {
			return Unsat
		}
	}

	pool := parallel.NewPool(s.workers)
	defer pool.Shutdown()

	for round := 1; ; round++ {
		if s.maxRounds != 0 && round > s.maxRounds {
			return Indet
		}

		resolvents := s.round(ctx, pool)
		if ctx.Err() != nil {
			return Indet
		}

		grew := false
		for _, c := range resolvents {
			if c.Empty() {
				return Unsat
			}
			if s.add(c) {
				grew = true
			}
		}

		if s.debug != nil {
			_, _ = pretty.Fprintf(s.debug, "round %d: %d clauses\n%# v\n", round, len(s.clauses), s.clauses)
		}

		if !grew {
			return Sat
		}
		if s.maxClauses != 0 && len(s.clauses) > s.maxClauses {
			return Indet
		}
	}
}

// round resolves every unordered pair of distinct clauses against a frozen
// snapshot of the working set and returns the union of their resolvents.
// The snapshot is the round barrier: nothing derived in this round is
// visible to it, so the fixpoint test compares against the pre-round set.
func (s *Solver) round(ctx context.Context, pool *parallel.Pool) []Clause {
	snapshot := s.clauses

	var (
		mu  sync.Mutex
		out []Clause
		wg  sync.WaitGroup
	)
	for i := range snapshot {
		i := i
		wg.Add(1)
		if err := pool.Submit(ctx, func() {
			defer wg.Done()
			var rs []Clause
			for j := i + 1; j < len(snapshot); j++ {
				rs = append(rs, Resolvents(snapshot[i], snapshot[j])...)
			}
			if len(rs) == 0 {
				return
			}
			mu.Lock()
			out = append(out, rs...)
			mu.Unlock()
		}); err != nil {
			wg.Done()
		}
	}
	wg.Wait()
	return out
}
