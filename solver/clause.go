package solver

import (
	"strings"

	"github.com/ericr/satori/lit"
)

// Clause is a CNF clause: a disjunction of literals. Original clauses are
// immutable after construction; learnt clauses are appended to the database
// and never removed during a solve. A clause's identity is its pointer.
type Clause struct {
	lits    []lit.Lit
	watched []lit.Lit
	learnt  bool
}

// newClause constructs an original clause, removing duplicate literals and
// installing its watches. The boolean result is false on a top-level
// conflict: an empty clause, or a unit clause contradicting the current
// root assignment. The clause is returned whenever one was constructed.
func newClause(s *Solver, lits []lit.Lit) (bool, *Clause) {
	c := &Clause{
		lits: dedup(lits),
	}

	if c.Len() == 0 {
		// Empty clause, the formula is trivially unsatisfiable.
		return false, nil
	}
	if c.Len() == 1 {
		s.watchUnit(c)
		s.logger.Debugf("unit clause %s, enqueueing", c)

		return s.enqueue(c.lits[0], c), c
	}
	s.watchFirstTwo(c)

	return true, c
}

// newLearntClause constructs a learnt clause from the literals produced by
// conflict analysis and installs watches on its highest-level literals.
// Must be called before backtracking, while all literals are still
// assigned.
func newLearntClause(s *Solver, lits []lit.Lit) *Clause {
	c := &Clause{
		lits:   dedup(lits),
		learnt: true,
	}
	s.watchHighestLevels(c)

	return c
}

// resolve resolves two literal sets on the pivot variable v, which must
// appear positively in one and negatively in the other. The result is the
// union of both sets minus both literals over v, with duplicates collapsed
// and first-occurrence order preserved.
func resolve(a, b []lit.Lit, v int) []lit.Lit {
	out := []lit.Lit{}
	seen := map[lit.Lit]bool{}

	for _, p := range a {
		if p.Index() == v || seen[p] {
			continue
		}
		seen[p] = true
		out = append(out, p)
	}
	for _, p := range b {
		if p.Index() == v || seen[p] {
			continue
		}
		seen[p] = true
		out = append(out, p)
	}
	return out
}

// dedup removes duplicate literals, keeping the first occurrence of each.
func dedup(lits []lit.Lit) []lit.Lit {
	out := []lit.Lit{}
	seen := map[lit.Lit]bool{}

	for _, p := range lits {
		if seen[p] {
			continue
		}
		seen[p] = true
		out = append(out, p)
	}
	return out
}

// Len returns the number of literals in the clause.
func (c *Clause) Len() int {
	return len(c.lits)
}

// asStrings returns the clause as an array of literal strings.
func (c *Clause) asStrings() []string {
	litStrs := []string{}

	for _, p := range c.lits {
		litStrs = append(litStrs, p.String())
	}
	return litStrs
}

// String implements the Stringer interface.
func (c *Clause) String() string {
	return strings.Join(c.asStrings(), ",")
}
