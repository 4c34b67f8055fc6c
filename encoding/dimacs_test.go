package encoding

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDimacs(t *testing.T) {
	in := `c a comment
p cnf 4 3
1 -2 0
2 3 -4 0
4 0
`
	clauses, err := ParseDimacs(strings.NewReader(in))
	require.NoError(t, err)

	want := [][]int{{1, -2}, {2, 3, -4}, {4}}
	assert.Empty(t, cmp.Diff(want, clauses))
}

func TestParseDimacsClauseSpansLines(t *testing.T) {
	in := "1 2\n-3 0\n4\n0\n"
	clauses, err := ParseDimacs(strings.NewReader(in))
	require.NoError(t, err)

	want := [][]int{{1, 2, -3}, {4}}
	assert.Empty(t, cmp.Diff(want, clauses))
}

func TestParseDimacsStrayTrailingZero(t *testing.T) {
	clauses, err := ParseDimacs(strings.NewReader("1 0 0\n"))
	require.NoError(t, err)

	want := [][]int{{1}}
	assert.Empty(t, cmp.Diff(want, clauses))
}

func TestParseDimacsUnterminatedFinalClause(t *testing.T) {
	clauses, err := ParseDimacs(strings.NewReader("1 0 2 3\n"))
	require.NoError(t, err)

	want := [][]int{{1}, {2, 3}}
	assert.Empty(t, cmp.Diff(want, clauses))
}

func TestParseDimacsEmpty(t *testing.T) {
	clauses, err := ParseDimacs(strings.NewReader("c nothing here\np cnf 0 0\n"))
	require.NoError(t, err)
	assert.Empty(t, clauses)
}

func TestParseDimacsBadToken(t *testing.T) {
	_, err := ParseDimacs(strings.NewReader("1 x 0\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse literal")
}

func TestRoundTrip(t *testing.T) {
	clauses := [][]int{{1, -2, 3}, {-1}, {2, 4}}
	buf := &bytes.Buffer{}
	require.NoError(t, WriteDimacs(buf, clauses, 4))

	parsed, err := ParseDimacs(buf)
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff(clauses, parsed))
}
