package logic

import (
	"math/rand"
)

// IRng is the randomness used to pick a rule and a message. Injected so
// tests can supply a seeded sequence and assert the exact selection.
// *rand.Rand satisfies this interface.
type IRng interface {
	Intn(n int) int
}

type systemRng struct{}

func NewRng() IRng {
	return systemRng{}
}

// The top-level math/rand source is safe for concurrent use; per-post
// decision evaluations may overlap.
func (systemRng) Intn(n int) int {
	return rand.Intn(n)
}
