package solver

import (
	"github.com/ericr/satori/lit"
	"github.com/ericr/satori/tribool"
)

// search runs the CDCL loop: propagate, branch on a free variable, and on
// each conflict learn a clause and backjump. Returns True with the model
// stored, or False when the formula is unsatisfiable.
func (s *Solver) search() tribool.Tribool {
	// Root propagation of the original unit clauses.
	if confl := s.propagate(); confl != nil {
		s.logger.Debugf("root conflict on clause %s", confl)

		return tribool.False
	}
	for {
		if s.NAssigns() == s.NVars() {
			s.storeModel()

			return tribool.True
		}
		p := s.picker.Choose()
		s.decisions++
		s.logger.Debugf("deciding %s at level %d", p, s.decisionLevel()+1)
		s.assume(p)

		for {
			confl := s.propagate()
			if confl == nil {
				break
			}
			s.conflicts++

			backjump, learnt := s.analyze(confl)
			if backjump < 0 {
				return tribool.False
			}
			s.record(learnt, backjump)
		}
	}
}

// record installs a learnt clause, backtracks to the backjump level, and
// asserts the clause's single unassigned literal so propagation resumes
// from it.
func (s *Solver) record(lits []lit.Lit, backjump int) {
	c := newLearntClause(s, lits)
	s.learnts = append(s.learnts, c)
	s.logger.Debugf("learnt clause %s, backjumping to level %d", c, backjump)

	s.cancelUntil(backjump)

	for _, p := range c.lits {
		if s.litValue(p).Undef() {
			s.enqueue(p, c)

			return
		}
	}
}
