package solver

import (
	"sort"

	"github.com/ericr/satori/lit"
)

// The watch index keeps two mirrored relations: each clause records the
// (up to two) literals it watches, and watches lists for each literal the
// clauses watching it. A clause only needs re-examination when one of its
// watched literals becomes false.

// watchUnit installs the sole watch of a unit clause.
func (s *Solver) watchUnit(c *Clause) {
	c.watched = []lit.Lit{c.lits[0]}
	s.addWatcher(c.lits[0], c)
}

// watchFirstTwo installs watches on the first two literals of a clause.
func (s *Solver) watchFirstTwo(c *Clause) {
	c.watched = []lit.Lit{c.lits[0], c.lits[1]}
	s.addWatcher(c.lits[0], c)
	s.addWatcher(c.lits[1], c)
}

// watchHighestLevels installs watches on the literals assigned at the
// highest decision levels. Those are the first to be unassigned when the
// caller backtracks, so they are the ones whose falsification must drive
// propagation of the learnt clause.
func (s *Solver) watchHighestLevels(c *Clause) {
	byLevel := make([]lit.Lit, c.Len())
	copy(byLevel, c.lits)

	sort.SliceStable(byLevel, func(i, j int) bool {
		return s.level[byLevel[i].Index()] > s.level[byLevel[j].Index()]
	})

	n := 2
	if c.Len() < n {
		n = c.Len()
	}
	c.watched = byLevel[:n:n]

	for _, p := range c.watched {
		s.addWatcher(p, c)
	}
}

// rewatch scans c for a literal that is neither of its current watches and
// not assigned false, and if one exists swaps it in for the falsified
// watch, updating both relations. Returns false when no candidate exists.
func (s *Solver) rewatch(c *Clause, falsified lit.Lit) bool {
	for _, p := range c.lits {
		if c.isWatched(p) || s.litValue(p).False() {
			continue
		}
		for i, w := range c.watched {
			if w == falsified {
				c.watched[i] = p
				break
			}
		}
		s.removeWatcher(falsified, c)
		s.addWatcher(p, c)
		s.logger.Debugf("clause %s rewatched from %s to %s", c, falsified, p)

		return true
	}
	return false
}

// otherWatch returns the watched literal of c that is not p. Only valid
// for clauses with two watches.
func (c *Clause) otherWatch(p lit.Lit) lit.Lit {
	if c.watched[0] == p {
		return c.watched[1]
	}
	return c.watched[0]
}

// isWatched reports whether p is one of c's watched literals.
func (c *Clause) isWatched(p lit.Lit) bool {
	for _, w := range c.watched {
		if w == p {
			return true
		}
	}
	return false
}

// addWatcher adds c to p's watcher list.
func (s *Solver) addWatcher(p lit.Lit, c *Clause) {
	s.watches[int(p)] = append(s.watches[int(p)], c)
}

// removeWatcher removes c from p's watcher list. Swap-remove is fine
// because watcher-list order is not observable: propagation iterates over
// a snapshot.
func (s *Solver) removeWatcher(p lit.Lit, c *Clause) {
	list := s.watches[int(p)]

	for idx, watcher := range list {
		if watcher == c {
			list[idx] = list[len(list)-1]
			s.watches[int(p)] = list[:len(list)-1]

			return
		}
	}
}
