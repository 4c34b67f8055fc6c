package lit

import "fmt"

// Undef denotes the absence of a literal.
const Undef = Lit(-1)

// Lit is a literal packed into an integer: the variable's 0-based index
// shifted left by one, with the negation flag in the least significant bit.
// The packed value doubles as an index into per-literal tables such as the
// watcher lists, and makes a literal and its negation adjacent when sorted.
type Lit int

// New returns the literal over the 0-indexed variable v, negated if neg.
func New(v int, neg bool) Lit {
	if neg {
		return Lit(v + v + 1)
	}
	return Lit(v + v)
}

// NewFromInt returns the literal for a signed DIMACS-style variable: a
// positive i is the positive literal over variable i, a negative i its
// negation.
func NewFromInt(i int) Lit {
	if i < 0 {
		return New(-i-1, true)
	}
	return New(i-1, false)
}

// Not returns the negation of the literal. It is its own inverse.
func (l Lit) Not() Lit {
	return Lit(l ^ 1)
}

// Sign returns true if the literal is negated.
func (l Lit) Sign() bool {
	return l&1 == 1
}

// Index returns the 0-based index of the literal's variable.
func (l Lit) Index() int {
	return int(l >> 1)
}

// Var returns the literal's 1-based variable.
func (l Lit) Var() int {
	return int(l>>1) + 1
}

// Int returns the literal in signed DIMACS form.
func (l Lit) Int() int {
	if l.Sign() {
		return -l.Var()
	}
	return l.Var()
}

// String implements the Stringer interface.
func (l Lit) String() string {
	if l.Sign() {
		return fmt.Sprintf("~%d", l.Var())
	}
	return fmt.Sprintf("%d", l.Var())
}
