// SPDX-License-Identifier: MIT

package hmm

// Brute-force solver.
//
// Paths are visited as an odometer over state indices: the last position
// turns fastest, so the visiting order is the lexicographic order of the
// repeated Cartesian product of States(). Each path's joint probability is
// the hidden-chain product times the emission product:
//
//	P(S, O) = [π(s₁) · ∏ A(sᵢ₋₁, sᵢ)] · [∏ B(sᵢ, oᵢ)]

// enumerate calls visit for every path with its joint probability.
// path is reused between calls; visit must copy it to keep it.
// obs must be non-empty.
func (e *Engine[S, O]) enumerate(obs []int, visit func(path []int, p float64)) {
	n, k := len(e.states), len(e.symbols)
	path := make([]int, len(obs))

	for {
		hidden := e.start[path[0]]
		emitted := e.emit[path[0]*k+obs[0]]
		for t := 1; t < len(obs); t++ {
			prev, cur := path[t-1], path[t]
			hidden *= e.trans[prev*n+cur]
			emitted *= e.emit[cur*k+obs[t]]
		}
		visit(path, hidden*emitted)

		// advance the odometer
		t := len(path) - 1
		for ; t >= 0; t-- {
			path[t]++
			if path[t] < n {
				break
			}
			path[t] = 0
		}
		if t < 0 {
			return
		}
	}
}

// enumerateSum returns Σ P(S, O) over all paths, in visiting order.
func (e *Engine[S, O]) enumerateSum(obs []int) float64 {
	var total float64
	e.enumerate(obs, func(_ []int, p float64) { total += p })

	return total
}

// enumerateMax returns the first path with the strictly greatest joint
// probability. The running maximum starts at 0, so when every path is
// impossible the result is (empty, 0).
func (e *Engine[S, O]) enumerateMax(obs []int) ([]int, float64) {
	best := []int{}
	var top float64
	e.enumerate(obs, func(path []int, p float64) {
		if p > top {
			top = p
			best = append(best[:0], path...)
		}
	})

	return best, top
}

// withinLimit reports whether n^length <= limit without overflowing.
func withinLimit(n, length, limit int) bool {
	count := 1
	for i := 0; i < length; i++ {
		if count > limit/n {
			return false
		}
		count *= n
	}

	return count <= limit
}
