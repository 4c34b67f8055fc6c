package solver

import (
	"testing"

	"github.com/ericr/satori/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSolver(clauses [][]int, seed int64) *Solver {
	conf := config.New()
	conf.Seed = seed

	s := New(conf)
	for _, clause := range clauses {
		s.AddClause(clause)
	}
	return s
}

func TestEmptyFormulaSAT(t *testing.T) {
	s := newTestSolver(nil, 1)

	require.True(t, s.Solve())
	assert.Empty(t, s.Model())
}

func TestEmptyClauseUNSAT(t *testing.T) {
	s := New(config.New())

	assert.False(t, s.AddClause([]int{}))
	assert.False(t, s.Solve())
}

func TestContradictingUnitsUNSAT(t *testing.T) {
	s := newTestSolver([][]int{{1}, {-1}}, 1)

	assert.False(t, s.Solve())
}

func TestSingleLiteralSAT(t *testing.T) {
	s := newTestSolver([][]int{{1}}, 1)

	require.True(t, s.Solve())
	assert.Equal(t, map[int]bool{1: true}, s.Model())
}

func TestSimpleSAT(t *testing.T) {
	s := newTestSolver([][]int{{1, 2}, {-1, 2}}, 1)

	require.True(t, s.Solve())
	assert.True(t, s.Model()[2])
	assert.True(t, s.Verify())
}

func TestSimpleUNSAT(t *testing.T) {
	s := newTestSolver([][]int{{1}, {-1}}, 1)

	assert.False(t, s.Solve())
}

func TestForcedChainAtRoot(t *testing.T) {
	s := newTestSolver([][]int{{1}, {-1, 2}, {-2, 3}}, 1)

	require.True(t, s.Solve())
	assert.Equal(t, map[int]bool{1: true, 2: true, 3: true}, s.Model())
	assert.Equal(t, 0, s.NDecisions())
	// Root propagations survive the final backtrack.
	assert.True(t, s.satisfies(s.constrs))
}

func TestBackjumpUNSAT(t *testing.T) {
	// Either polarity of 1 forces both 3 and ~3.
	clauses := [][]int{{1, 2}, {1, -2}, {-1, 3}, {-1, -3}}

	for seed := int64(1); seed <= 10; seed++ {
		s := newTestSolver(clauses, seed)
		assert.False(t, s.Solve(), "seed %d", seed)
	}
}

func TestPigeonholeUNSAT(t *testing.T) {
	// Three pigeons, two holes. Variable 2i-1 is pigeon i in hole 1,
	// variable 2i is pigeon i in hole 2.
	clauses := [][]int{
		{1, 2}, {3, 4}, {5, 6},
		{-1, -3}, {-1, -5}, {-3, -5},
		{-2, -4}, {-2, -6}, {-4, -6},
	}

	for seed := int64(1); seed <= 10; seed++ {
		s := newTestSolver(clauses, seed)
		assert.False(t, s.Solve(), "seed %d", seed)
	}
}

func TestModelSatisfiesFormulaAndLearnts(t *testing.T) {
	// Three forced-pair gadgets; wrong guesses cause conflicts and
	// learnt clauses, which any model must also satisfy.
	clauses := [][]int{
		{1, 2}, {-1, 2}, {1, -2},
		{3, 4}, {-3, 4}, {3, -4},
		{5, 6}, {-5, 6}, {5, -6},
	}

	for seed := int64(1); seed <= 10; seed++ {
		s := newTestSolver(clauses, seed)
		require.True(t, s.Solve(), "seed %d", seed)
		assert.True(t, s.Verify(), "seed %d", seed)
	}
}

func TestSeedDeterminism(t *testing.T) {
	clauses := [][]int{{1, 2, 3}, {-1, -2}, {-2, -3}, {-1, -3}}

	a := newTestSolver(clauses, 7)
	b := newTestSolver(clauses, 7)
	require.True(t, a.Solve())
	require.True(t, b.Solve())
	assert.Equal(t, a.Answer(), b.Answer())
}

func TestAnswerSorted(t *testing.T) {
	s := newTestSolver([][]int{{3}, {-1}, {2}}, 1)

	require.True(t, s.Solve())
	assert.Equal(t, []int{-1, 2, 3}, s.Answer())
}
