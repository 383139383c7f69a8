// SPDX-License-Identifier: MIT

// Package hmm - trellis solvers (forward algorithm, Viterbi).
//
// Storage:
//   - lattice is a row-major time × state buffer (offset = t*n + j).
//   - Row t depends only on row t-1, in fixed loop order (deterministic sums).
//
// Complexity quicksheet:
//   - forward / viterbi: Time O(T·n²), Space O(T·n).

package hmm

import "gonum.org/v1/gonum/floats"

// lattice is a dense T×n grid of path probabilities.
type lattice struct {
	n    int       // states per time step
	data []float64 // len == T*n
}

func newLattice(steps, n int) *lattice {
	return &lattice{n: n, data: make([]float64, steps*n)}
}

// row returns the no-copy slice for time step t.
func (l *lattice) row(t int) []float64 { return l.data[t*l.n : (t+1)*l.n] }

// column returns a copy of transition column j: A(·, j).
func (e *Engine[S, O]) column(j int) []float64 {
	n := len(e.states)
	col := make([]float64, n)
	for i := 0; i < n; i++ {
		col[i] = e.trans[i*n+j]
	}

	return col
}

// seed fills row 0 with π(j)·B(j, o₀).
func (e *Engine[S, O]) seed(l *lattice, o0 int) {
	k := len(e.symbols)
	first := l.row(0)
	for j := range first {
		first[j] = e.start[j] * e.emit[j*k+o0]
	}
}

// forward computes P(O) with the forward recursion
//
//	α₀(j)   = π(j)·B(j, o₀)
//	αₜ(j)   = [Σᵢ αₜ₋₁(i)·A(i, j)] · B(j, oₜ)
//	P(O)    = Σⱼ α_T₋₁(j)
//
// obs must be non-empty.
func (e *Engine[S, O]) forward(obs []int) float64 {
	n, k := len(e.states), len(e.symbols)
	cols := make([][]float64, n)
	for j := range cols {
		cols[j] = e.column(j)
	}

	alpha := newLattice(len(obs), n)
	e.seed(alpha, obs[0])
	for t := 1; t < len(obs); t++ {
		prev, cur := alpha.row(t-1), alpha.row(t)
		for j := 0; j < n; j++ {
			cur[j] = floats.Dot(prev, cols[j]) * e.emit[j*k+obs[t]]
		}
	}

	return floats.Sum(alpha.row(len(obs) - 1))
}

// viterbi returns the most probable path and its joint probability.
//
//	δ₀(j) = π(j)·B(j, o₀)
//	δₜ(j) = maxᵢ δₜ₋₁(i)·A(i, j) · B(j, oₜ),  ψₜ(j) = first maximizing i
//
// Like the brute-force solver, a best final probability that is not > 0
// yields (empty, 0). obs must be non-empty.
func (e *Engine[S, O]) viterbi(obs []int) ([]int, float64) {
	n, k := len(e.states), len(e.symbols)
	steps := len(obs)

	delta := newLattice(steps, n)
	back := make([]int, steps*n) // ψ, row-major like delta
	e.seed(delta, obs[0])

	for t := 1; t < steps; t++ {
		prev, cur := delta.row(t-1), delta.row(t)
		for j := 0; j < n; j++ {
			arg, top := 0, prev[0]*e.trans[j]
			for i := 1; i < n; i++ {
				if p := prev[i] * e.trans[i*n+j]; p > top {
					arg, top = i, p
				}
			}
			cur[j] = top * e.emit[j*k+obs[t]]
			back[t*n+j] = arg
		}
	}

	last := delta.row(steps - 1)
	j := floats.MaxIdx(last)
	best := last[j]
	if !(best > 0) {
		return []int{}, 0
	}

	path := make([]int, steps)
	path[steps-1] = j
	for t := steps - 1; t > 0; t-- {
		j = back[t*n+j]
		path[t-1] = j
	}

	return path, best
}
