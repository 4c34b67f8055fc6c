package solver

import "github.com/ericr/satori/lit"

// analyze performs first-UIP conflict analysis. Starting from the
// conflicting clause, it repeatedly resolves against the antecedent of the
// most recently assigned current-level literal until exactly one literal
// at the current level remains. It returns the backjump level and the
// learnt literals, or (-1, nil) when the conflict occurs at the root.
func (s *Solver) analyze(confl *Clause) (int, []lit.Lit) {
	if s.decisionLevel() == 0 {
		return -1, nil
	}
	w := make([]lit.Lit, confl.Len())
	copy(w, confl.lits)

	for s.countAtCurrentLevel(w) > 1 {
		p := s.lastAssigned(w)
		ante := s.reason[p.Index()]

		s.logger.Debugf("resolving on %d with antecedent %s", p.Var(), ante)
		w = resolve(w, ante.lits, p.Index())
	}
	return s.backjumpLevel(w), w
}

// countAtCurrentLevel returns the number of literals in w assigned at the
// current decision level.
func (s *Solver) countAtCurrentLevel(w []lit.Lit) int {
	n := 0

	for _, p := range w {
		if s.level[p.Index()] == s.decisionLevel() {
			n++
		}
	}
	return n
}

// lastAssigned returns the literal of w whose variable was assigned most
// recently. While more than one literal of w sits at the current level,
// that variable is at the current level and was implied, not decided: the
// level's decision precedes every implication on the trail.
func (s *Solver) lastAssigned(w []lit.Lit) lit.Lit {
	inW := map[int]lit.Lit{}

	for _, p := range w {
		inW[p.Index()] = p
	}
	for i := s.NAssigns() - 1; i >= 0; i-- {
		if p, ok := inW[s.trail[i].Index()]; ok {
			return p
		}
	}
	return lit.Undef
}

// backjumpLevel returns the level to backtrack to so that the learnt
// literals w become a unit clause: 0 when w spans a single decision
// level, otherwise the second-largest distinct level among its literals.
func (s *Solver) backjumpLevel(w []lit.Lit) int {
	largest, second := -1, -1

	for _, p := range w {
		switch level := s.level[p.Index()]; {
		case level > largest:
			second = largest
			largest = level
		case level < largest && level > second:
			second = level
		}
	}
	if second < 0 {
		return 0
	}
	return second
}
