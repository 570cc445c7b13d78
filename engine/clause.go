package engine

import (
	"sort"
	"strings"
)

// Clause is a disjunction of literals. The order of literals carries no
// meaning: two clauses are the same clause iff their literals form the same
// multiset. The zero value is the empty clause, the contradiction.
type Clause struct {
	Literals []Literal
}

// NewClause builds a clause over the given literals.
func NewClause(lits ...Literal) Clause {
	return Clause{Literals: lits}
}

// Empty reports whether c has no literals.
func (c Clause) Empty() bool {
	return len(c.Literals) == 0
}

// Equal compares c and d as multisets of literals.
func (c Clause) Equal(d Clause) bool {
	if len(c.Literals) != len(d.Literals) {
		return false
	}
	cs, ds := c.sorted(), d.sorted()
	for i := range cs {
		if !cs[i].Equal(ds[i]) {
			return false
		}
	}
	return true
}

func (c Clause) sorted() []Literal {
	lits := make([]Literal, len(c.Literals))
	copy(lits, c.Literals)
	sort.Slice(lits, func(i, j int) bool {
		return lits[i].Compare(lits[j]) < 0
	})
	return lits
}

// key is the canonical rendering of the clause, used as the working-set
// dedup key. Literal order does not affect it.
func (c Clause) key() string {
	lits := c.sorted()
	ss := make([]string, len(lits))
	for i, l := range lits {
		ss[i] = l.String()
	}
	return strings.Join(ss, " ")
}

func (c Clause) String() string {
	if c.Empty() {
		return "<empty>"
	}
	ss := make([]string, len(c.Literals))
	for i, l := range c.Literals {
		ss[i] = l.String()
	}
	return strings.Join(ss, " ")
}
