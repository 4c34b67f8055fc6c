package solver

import (
	"fmt"
	"sort"

	"github.com/ericr/satori/branch"
	"github.com/ericr/satori/config"
	"github.com/ericr/satori/lit"
	"github.com/ericr/satori/tribool"
	"github.com/sirupsen/logrus"
)

const (
	VersionMajor = 1
	VersionMinor = 0
)

// Solver is a conflict-driven clause learning SAT solver. It decides a
// single formula built up with AddClause; conflicts found during the
// search are analyzed into learnt clauses that prune later branches.
type Solver struct {
	// config is the solver's configuration.
	config *config.Config
	// logger receives trace output.
	logger logrus.FieldLogger

	// Model Database Fields

	// userVars maps user-defined variables to internal variable indices.
	userVars map[int]int
	// internalVars maps internal variable indices back to user variables.
	internalVars map[int]int
	// model stores the satisfying assignment of the last successful solve.
	model map[int]bool

	// Clause Database Fields

	// constrs is the list of problem clauses, in insertion order.
	constrs []*Clause
	// learnts is the list of learnt clauses, in learning order.
	learnts []*Clause
	// unsat is latched when the database is contradictory on its face:
	// an empty clause, or unit clauses conflicting at the root.
	unsat bool

	// Propagation Fields

	// watches lists, for each literal (indexed by its packed value), the
	// clauses currently watching that literal.
	watches [][]*Clause
	// propQ is the propagation queue of just-assigned literals.
	propQ *lit.Queue

	// Assignment Fields

	// assigns holds the current value of each internal variable.
	assigns []tribool.Tribool
	// level holds the decision level each variable was assigned at, or -1.
	level []int
	// reason holds the clause that implied each variable's assignment,
	// or nil for decisions and unassigned variables.
	reason []*Clause
	// trail lists the assigned literals in chronological order.
	trail []lit.Lit
	// trailLim holds the trail index at which each decision level starts.
	trailLim []int

	// Branching Fields

	// picker chooses branching literals.
	picker *branch.Picker

	// Stats Fields

	// propagations counts processed propagation queue entries.
	propagations int
	// conflicts counts conflicts found during search.
	conflicts int
	// decisions counts branching decisions.
	decisions int
}

// New returns a new initialized solver.
func New(c *config.Config) *Solver {
	s := &Solver{
		config:       c,
		logger:       c.Logger,
		userVars:     map[int]int{},
		internalVars: map[int]int{},
		model:        map[int]bool{},
		constrs:      []*Clause{},
		learnts:      []*Clause{},
		watches:      [][]*Clause{},
		propQ:        lit.NewQueue(),
		assigns:      []tribool.Tribool{},
		level:        []int{},
		reason:       []*Clause{},
		trail:        []lit.Lit{},
		trailLim:     []int{},
	}
	s.picker = branch.New(&s.assigns, c.Seed)

	return s
}

// Version returns the version of the solver.
func Version() string {
	return fmt.Sprintf("%d.%d", VersionMajor, VersionMinor)
}

// AddClause adds a problem clause given as signed DIMACS-style integers.
// It returns false when the clause makes the formula trivially
// unsatisfiable; the contradiction is also remembered by the solver, so
// callers may ignore the result and rely on Solve.
func (s *Solver) AddClause(ps []int) bool {
	lits := []lit.Lit{}

	for _, p := range ps {
		lits = append(lits, s.newVar(lit.NewFromInt(p)))
	}
	ok, c := newClause(s, lits)
	if c != nil {
		s.constrs = append(s.constrs, c)
	}
	if !ok {
		s.unsat = true
	}
	return ok
}

// Solve runs the CDCL search and reports whether the formula is
// satisfiable. On success the model is available through Model and Answer.
func (s *Solver) Solve() bool {
	if s.unsat {
		return false
	}
	status := s.search()
	s.cancelUntil(0)

	return status.True()
}

// Model returns the satisfying assignment found by the last successful
// Solve, keyed by user variable.
func (s *Solver) Model() map[int]bool {
	return s.model
}

// Answer returns the model as sorted signed DIMACS-style integers.
func (s *Solver) Answer() []int {
	ps := []int{}

	for p, val := range s.model {
		if val {
			ps = append(ps, p)
		} else {
			ps = append(ps, -p)
		}
	}
	sort.Slice(ps, func(i, j int) bool {
		i, j = ps[i], ps[j]

		if i < 0 {
			i = -i
		}
		if j < 0 {
			j = -j
		}
		return i < j
	})
	return ps
}

// Verify checks the model of the last successful Solve against every
// problem clause and every learnt clause.
func (s *Solver) Verify() bool {
	for _, c := range s.constrs {
		if !s.modelSatisfies(c) {
			return false
		}
	}
	for _, c := range s.learnts {
		if !s.modelSatisfies(c) {
			return false
		}
	}
	return true
}

// modelSatisfies reports whether the stored model satisfies the clause.
func (s *Solver) modelSatisfies(c *Clause) bool {
	for _, p := range c.lits {
		if s.model[s.internalVars[p.Index()]] != p.Sign() {
			return true
		}
	}
	return false
}

// storeModel snapshots the current total assignment as the model.
func (s *Solver) storeModel() {
	s.model = map[int]bool{}

	for i := 0; i < s.NVars(); i++ {
		s.model[s.internalVars[i]] = s.assigns[i].True()
	}
}

// NVars returns the number of variables.
func (s *Solver) NVars() int {
	return len(s.assigns)
}

// NAssigns returns the number of assigned variables.
func (s *Solver) NAssigns() int {
	return len(s.trail)
}

// NConstrs returns the number of problem clauses.
func (s *Solver) NConstrs() int {
	return len(s.constrs)
}

// NLearnts returns the number of learnt clauses.
func (s *Solver) NLearnts() int {
	return len(s.learnts)
}

// NPropagations returns the number of propagations that have occurred.
func (s *Solver) NPropagations() int {
	return s.propagations
}

// NConflicts returns the number of conflicts that have occurred.
func (s *Solver) NConflicts() int {
	return s.conflicts
}

// NDecisions returns the number of branching decisions made.
func (s *Solver) NDecisions() int {
	return s.decisions
}

// newVar registers p's variable if unseen, growing the per-variable and
// per-literal tables, and returns p mapped to its internal index.
func (s *Solver) newVar(p lit.Lit) lit.Lit {
	if _, ok := s.userVars[p.Var()]; !ok {
		v := s.NVars()

		s.userVars[p.Var()] = v
		s.internalVars[v] = p.Var()
		s.watches = append(s.watches, []*Clause{}, []*Clause{})
		s.assigns = append(s.assigns, tribool.Undef)
		s.level = append(s.level, -1)
		s.reason = append(s.reason, nil)
	}
	return lit.New(s.userVars[p.Var()], p.Sign())
}

// litValue returns p's value under the current assignment.
func (s *Solver) litValue(p lit.Lit) tribool.Tribool {
	if p == lit.Undef {
		return tribool.Undef
	}
	if p.Sign() {
		return s.assigns[p.Index()].Not()
	}
	return s.assigns[p.Index()]
}
