package branch

import (
	"math/rand"

	"github.com/ericr/satori/lit"
	"github.com/ericr/satori/tribool"
)

// Picker selects branching literals uniformly at random from the
// unassigned variables. It reads the solver's assignment slice through a
// pointer so it always sees the current trail state.
type Picker struct {
	rng     *rand.Rand
	assigns *[]tribool.Tribool
}

// New returns a Picker over the given assignment slice, seeded for
// reproducible runs.
func New(assigns *[]tribool.Tribool, seed int64) *Picker {
	return &Picker{
		rng:     rand.New(rand.NewSource(seed)),
		assigns: assigns,
	}
}

// Choose returns a literal over a random unassigned variable with random
// polarity, or lit.Undef when every variable is assigned.
func (p *Picker) Choose() lit.Lit {
	unassigned := []int{}

	for v, val := range *p.assigns {
		if val.Undef() {
			unassigned = append(unassigned, v)
		}
	}
	if len(unassigned) == 0 {
		return lit.Undef
	}
	v := unassigned[p.rng.Intn(len(unassigned))]

	return lit.New(v, p.rng.Intn(2) == 1)
}
