package solver

import (
	"github.com/ericr/satori/lit"
	"github.com/ericr/satori/tribool"
)

// enqueue records the fact p with antecedent from and schedules it for
// propagation. Returns false when p conflicts with the current assignment.
func (s *Solver) enqueue(p lit.Lit, from *Clause) bool {
	// Check if the fact isn't new first.
	if !s.litValue(p).Undef() {
		return !s.litValue(p).False()
	}
	// Fact is new, store and enqueue it.
	s.assigns[p.Index()] = tribool.NewFromBool(!p.Sign())
	s.level[p.Index()] = s.decisionLevel()
	s.reason[p.Index()] = from
	s.trail = append(s.trail, p)
	s.propQ.Insert(p)

	return true
}

// propagate drains the propagation queue, visiting the clauses that watch
// each newly falsified literal. Returns the conflicting clause if one is
// found, or nil once the queue is empty.
func (s *Solver) propagate() *Clause {
	for s.propQ.Size() > 0 {
		p := s.propQ.Dequeue()
		falsified := p.Not()
		s.propagations++

		// Snapshot the watcher list; rewatching mutates it.
		watching := make([]*Clause, len(s.watches[int(falsified)]))
		copy(watching, s.watches[int(falsified)])

		for _, c := range watching {
			if s.clauseSatisfied(c) {
				continue
			}
			if s.rewatch(c, falsified) {
				continue
			}
			if c.Len() == 1 {
				// A falsified unit clause has no other watch.
				s.propQ.Clear()

				return c
			}
			other := c.otherWatch(falsified)

			switch {
			case s.litValue(other).Undef():
				// Clause is unit under assignment.
				s.logger.Debugf("clause %s is unit, implying %s", c, other)
				s.enqueue(other, c)
			case s.litValue(other).True():
				// Clause is already satisfied.
			default:
				// Both watches false: conflict.
				s.logger.Debugf("conflict on clause %s", c)
				s.propQ.Clear()

				return c
			}
		}
	}
	return nil
}

// clauseSatisfied reports whether some literal of c is true under the
// current assignment.
func (s *Solver) clauseSatisfied(c *Clause) bool {
	for _, p := range c.lits {
		if s.litValue(p).True() {
			return true
		}
	}
	return false
}
