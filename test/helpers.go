package test

// fixedRng hands out a preset sequence of picks so tests can pin down which
// rule and message the agent selects.
type fixedRng struct {
	vals []int
	pos  int
}

func (r *fixedRng) Intn(n int) int {
	if len(r.vals) == 0 {
		return 0
	}
	v := r.vals[r.pos%len(r.vals)]
	r.pos++
	return v % n
}

func strSliceMatch(items []string) func(x any) bool {
	res := func(x any) bool {
		slice, ok := x.([]string)
		if !ok {
			return false
		}
		if len(slice) != len(items) {
			return false
		}
		for i := 0; i < len(slice); i++ {
			if slice[i] != items[i] {
				return false
			}
		}
		return true
	}
	return res
}
