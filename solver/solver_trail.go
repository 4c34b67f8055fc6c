package solver

import (
	"github.com/ericr/satori/lit"
	"github.com/ericr/satori/tribool"
)

// assume pushes a new decision level and assigns p as a decision.
func (s *Solver) assume(p lit.Lit) bool {
	s.trailLim = append(s.trailLim, s.NAssigns())

	return s.enqueue(p, nil)
}

// undoOne unbinds the most recently assigned variable.
func (s *Solver) undoOne() {
	p := s.trail[s.NAssigns()-1]

	s.assigns[p.Index()] = tribool.Undef
	s.reason[p.Index()] = nil
	s.level[p.Index()] = -1
	s.trail = s.trail[:s.NAssigns()-1]
}

// cancel reverts all assignments made at the current decision level.
func (s *Solver) cancel() {
	c := s.NAssigns() - s.trailLim[s.decisionLevel()-1]
	for ; c > 0; c-- {
		s.undoOne()
	}
	s.trailLim = s.trailLim[:s.decisionLevel()-1]
}

// cancelUntil backtracks to the given decision level, removing every
// assignment made above it. Idempotent; level 0 keeps only root
// propagations.
func (s *Solver) cancelUntil(level int) {
	for s.decisionLevel() > level {
		s.cancel()
	}
}

// decisionLevel returns the current decision level.
func (s *Solver) decisionLevel() int {
	return len(s.trailLim)
}

// satisfies reports whether the current assignment satisfies every clause
// in cs.
func (s *Solver) satisfies(cs []*Clause) bool {
	for _, c := range cs {
		sat := false

		for _, p := range c.lits {
			if s.litValue(p).True() {
				sat = true
				break
			}
		}
		if !sat {
			return false
		}
	}
	return true
}
