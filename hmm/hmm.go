// SPDX-License-Identifier: MIT

package hmm

import (
	"fmt"

	"github.com/katalvlaran/lvhmm/prob"
)

// Engine evaluates and decodes observation sequences against one fixed model.
//
// The three tables are validated and flattened once in New:
//   - states: declared order of the start distribution (enumeration order).
//   - symbols: declared order of the first emission row.
//   - start[i], trans[i*n+j], emit[i*k+m]: row-major weights by index.
//
// Nothing is mutated after New, so an Engine may be shared across goroutines.
type Engine[S, O comparable] struct {
	startDist   *prob.Distribution[S]
	transitions *prob.Table[S, S]
	emissions   *prob.Table[S, O]

	states   []S
	symbols  []O
	symIndex map[O]int

	start []float64 // len n
	trans []float64 // n×n, row = from-state
	emit  []float64 // n×k, row = state

	opts Options
}

// New validates the model and builds an Engine.
// MAIN DESCRIPTION:
//   - Enforce the state-set invariants eagerly so a malformed model never
//     produces a plausible-looking answer later.
//
// Implementation:
//   - Stage 1: reject nil tables and an empty state set.
//   - Stage 2: start, transition and emission key sets must be equal.
//   - Stage 3: every transition row must be indexed over the state set.
//   - Stage 4: every emission row must be indexed over the same alphabet.
//   - Stage 5: flatten weights into index-addressed slices via Lookup.
//
// Errors:
//   - ErrInvalidModel, wrapped with context; a failed Lookup also carries
//     prob.ErrKeyNotFound.
//
// Complexity:
//   - Time O(|S|² + |S|·|O|), Space O(|S|² + |S|·|O|).
func New[S, O comparable](
	start *prob.Distribution[S],
	transitions *prob.Table[S, S],
	emissions *prob.Table[S, O],
	opts ...Option,
) (*Engine[S, O], error) {
	if start == nil || transitions == nil || emissions == nil {
		return nil, fmt.Errorf("New: nil table: %w", ErrInvalidModel)
	}

	states := start.Labels()
	if len(states) == 0 {
		return nil, fmt.Errorf("New: no states: %w", ErrInvalidModel)
	}
	if !prob.SameLabels(states, transitions.Labels()) {
		return nil, fmt.Errorf("New: transition keys %v differ from start states %v: %w",
			transitions.Labels(), states, ErrInvalidModel)
	}
	if !prob.SameLabels(states, emissions.Labels()) {
		return nil, fmt.Errorf("New: emission keys %v differ from start states %v: %w",
			emissions.Labels(), states, ErrInvalidModel)
	}

	first, err := emissions.Row(states[0])
	if err != nil {
		return nil, fmt.Errorf("New: %w: %w", ErrInvalidModel, err)
	}
	symbols := first.Labels()

	n, k := len(states), len(symbols)
	e := &Engine[S, O]{
		startDist:   start,
		transitions: transitions,
		emissions:   emissions,
		states:      states,
		symbols:     symbols,
		symIndex:    make(map[O]int, k),
		start:       make([]float64, n),
		trans:       make([]float64, n*n),
		emit:        make([]float64, n*k),
		opts:        gatherOptions(opts...),
	}
	for m, o := range symbols {
		e.symIndex[o] = m
	}

	for i, s := range states {
		if e.start[i], err = start.Lookup(s); err != nil {
			return nil, fmt.Errorf("New: start: %w: %w", ErrInvalidModel, err)
		}

		tr, err := transitions.Row(s)
		if err != nil {
			return nil, fmt.Errorf("New: %w: %w", ErrInvalidModel, err)
		}
		if !prob.SameLabels(states, tr.Labels()) {
			return nil, fmt.Errorf("New: transition row %v over %v, want %v: %w",
				s, tr.Labels(), states, ErrInvalidModel)
		}
		for j, to := range states {
			if e.trans[i*n+j], err = tr.Lookup(to); err != nil {
				return nil, fmt.Errorf("New: transition row %v: %w: %w", s, ErrInvalidModel, err)
			}
		}

		em, err := emissions.Row(s)
		if err != nil {
			return nil, fmt.Errorf("New: %w: %w", ErrInvalidModel, err)
		}
		if !prob.SameLabels(symbols, em.Labels()) {
			return nil, fmt.Errorf("New: emission row %v over %v, want %v: %w",
				s, em.Labels(), symbols, ErrInvalidModel)
		}
		for m, o := range symbols {
			if e.emit[i*k+m], err = em.Lookup(o); err != nil {
				return nil, fmt.Errorf("New: emission row %v: %w: %w", s, ErrInvalidModel, err)
			}
		}
	}

	return e, nil
}

// Evaluate returns P(observations), summed over every hidden path of the
// same length. An empty sequence yields 1.
//
// Errors:
//   - ErrUnknownSymbol when an observation is outside the alphabet.
//   - ErrTooManyPaths (Enumerate with WithPathLimit) when |S|^n exceeds the limit.
func (e *Engine[S, O]) Evaluate(observations []O) (float64, error) {
	obs, err := e.prepare(observations)
	if err != nil {
		return 0, err
	}
	if len(obs) == 0 {
		return 1, nil
	}
	if e.opts.method == Trellis {
		return e.forward(obs), nil
	}

	return e.enumerateSum(obs), nil
}

// Decode returns the hidden path maximizing P(S, observations) and that
// joint probability.
//
// Behavior highlights:
//   - Enumerate keeps the first maximal path in lexicographic state order;
//     later paths replace it only when strictly more probable.
//   - If no path has positive probability, the result is an empty path and 0.
//   - An empty sequence yields an empty path and 1.
//
// Errors: same as Evaluate.
func (e *Engine[S, O]) Decode(observations []O) ([]S, float64, error) {
	obs, err := e.prepare(observations)
	if err != nil {
		return nil, 0, err
	}
	if len(obs) == 0 {
		return []S{}, 1, nil
	}

	var (
		best []int
		p    float64
	)
	if e.opts.method == Trellis {
		best, p = e.viterbi(obs)
	} else {
		best, p = e.enumerateMax(obs)
	}

	path := make([]S, len(best))
	for t, i := range best {
		path[t] = e.states[i]
	}

	return path, p, nil
}

// prepare maps observations to alphabet indices and applies the path guard.
// All validation happens here, before any solver work.
func (e *Engine[S, O]) prepare(observations []O) ([]int, error) {
	obs := make([]int, len(observations))
	for t, o := range observations {
		m, ok := e.symIndex[o]
		if !ok {
			return nil, fmt.Errorf("observation %d (%v): %w", t, o, ErrUnknownSymbol)
		}
		obs[t] = m
	}
	if e.opts.method == Enumerate && e.opts.pathLimit > 0 {
		if !withinLimit(len(e.states), len(obs), e.opts.pathLimit) {
			return nil, fmt.Errorf("%d states ^ %d observations > %d: %w",
				len(e.states), len(obs), e.opts.pathLimit, ErrTooManyPaths)
		}
	}

	return obs, nil
}

// States returns the state set in enumeration order.
func (e *Engine[S, O]) States() []S {
	out := make([]S, len(e.states))
	copy(out, e.states)

	return out
}

// Symbols returns the observable alphabet in declared order.
func (e *Engine[S, O]) Symbols() []O {
	out := make([]O, len(e.symbols))
	copy(out, e.symbols)

	return out
}

// Method reports the solver in use.
func (e *Engine[S, O]) Method() Method { return e.opts.method }

// Start returns the start distribution the Engine was built from.
func (e *Engine[S, O]) Start() *prob.Distribution[S] { return e.startDist }

// Transitions returns the transition table the Engine was built from.
func (e *Engine[S, O]) Transitions() *prob.Table[S, S] { return e.transitions }

// Emissions returns the emission table the Engine was built from.
func (e *Engine[S, O]) Emissions() *prob.Table[S, O] { return e.emissions }
