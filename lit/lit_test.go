package lit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewFromInt(t *testing.T) {
	assert.Equal(t, 12, NewFromInt(12).Var())
	assert.Equal(t, 12, NewFromInt(-12).Var())
	assert.False(t, NewFromInt(12).Sign())
	assert.True(t, NewFromInt(-12).Sign())
}

func TestNot(t *testing.T) {
	assert.Equal(t, New(12, true), New(12, false).Not())
	assert.Equal(t, New(12, false), New(12, true).Not())
}

func TestNotInvolution(t *testing.T) {
	for _, l := range []Lit{New(0, false), New(0, true), New(7, false), New(7, true)} {
		assert.Equal(t, l, l.Not().Not())
	}
}

func TestVar(t *testing.T) {
	assert.Equal(t, 24, New(23, false).Var())
	assert.Equal(t, 24, New(23, true).Var())
}

func TestInt(t *testing.T) {
	assert.Equal(t, 5, NewFromInt(5).Int())
	assert.Equal(t, -5, NewFromInt(-5).Int())
}

func TestString(t *testing.T) {
	assert.Equal(t, "3", New(2, false).String())
	assert.Equal(t, "~3", New(2, true).String())
}
