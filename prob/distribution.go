// SPDX-License-Identifier: MIT

// Package prob - Distribution: ordered label → weight mapping.
//
// Purpose:
//   - Keep the declared label order (slice) next to an O(1) index (map).
//   - Reject malformed input at construction; expose read-only accessors only.

package prob

import (
	"fmt"
	"math"
)

// DefaultEpsilon is the tolerance used by IsNormalized when eps <= 0 is passed.
const DefaultEpsilon = 1e-9

// Entry is one (label, weight) pair supplied to NewDistribution.
type Entry[L comparable] struct {
	Label  L
	Weight float64
}

// Distribution is an immutable, ordered mapping from labels to weights.
//   - labels holds the declared domain in insertion order.
//   - weights is aligned with labels (weights[i] belongs to labels[i]).
//   - index maps a label to its position.
type Distribution[L comparable] struct {
	labels  []L
	weights []float64
	index   map[L]int
}

// NewDistribution builds a Distribution from entries in declared order.
// MAIN DESCRIPTION:
//   - Validate each entry and index it by label.
//
// Implementation:
//   - Stage 1: reject an empty entry list (ErrEmpty).
//   - Stage 2: for each entry, reject NaN/±Inf/negative weights and duplicates.
//   - Stage 3: store labels, weights and the reverse index.
//
// Behavior highlights:
//   - Weights are NOT required to sum to 1; see Sum and IsNormalized.
//   - A zero weight is legal and distinct from a missing label.
//
// Errors:
//   - ErrEmpty, ErrInvalidWeight, ErrDuplicateLabel (wrapped with the label).
//
// Complexity:
//   - Time O(k), Space O(k).
func NewDistribution[L comparable](entries ...Entry[L]) (*Distribution[L], error) {
	if len(entries) == 0 {
		return nil, fmt.Errorf("NewDistribution: %w", ErrEmpty)
	}

	d := &Distribution[L]{
		labels:  make([]L, 0, len(entries)),
		weights: make([]float64, 0, len(entries)),
		index:   make(map[L]int, len(entries)),
	}
	for _, e := range entries {
		if math.IsNaN(e.Weight) || math.IsInf(e.Weight, 0) || e.Weight < 0 {
			return nil, fmt.Errorf("NewDistribution(%v=%v): %w", e.Label, e.Weight, ErrInvalidWeight)
		}
		if _, dup := d.index[e.Label]; dup {
			return nil, fmt.Errorf("NewDistribution(%v): %w", e.Label, ErrDuplicateLabel)
		}
		d.index[e.Label] = len(d.labels)
		d.labels = append(d.labels, e.Label)
		d.weights = append(d.weights, e.Weight)
	}

	return d, nil
}

// Lookup returns the weight declared for label.
// Returns ErrKeyNotFound (wrapped with the label) when label is outside the domain.
func (d *Distribution[L]) Lookup(label L) (float64, error) {
	i, ok := d.index[label]
	if !ok {
		return 0, fmt.Errorf("Distribution.Lookup(%v): %w", label, ErrKeyNotFound)
	}

	return d.weights[i], nil
}

// Has reports whether label belongs to the declared domain.
func (d *Distribution[L]) Has(label L) bool {
	_, ok := d.index[label]

	return ok
}

// Labels returns a copy of the declared domain in declared order.
func (d *Distribution[L]) Labels() []L {
	out := make([]L, len(d.labels))
	copy(out, d.labels)

	return out
}

// Len returns the size of the declared domain.
func (d *Distribution[L]) Len() int { return len(d.labels) }

// Sum returns the total weight, accumulated in declared order.
func (d *Distribution[L]) Sum() float64 {
	var s float64
	for _, w := range d.weights {
		s += w
	}

	return s
}

// IsNormalized reports whether |Sum()-1| <= eps.
// A non-positive eps falls back to DefaultEpsilon.
func (d *Distribution[L]) IsNormalized(eps float64) bool {
	if eps <= 0 {
		eps = DefaultEpsilon
	}

	return math.Abs(d.Sum()-1) <= eps
}

// SameLabels reports whether a and b contain the same labels, ignoring order.
// Duplicates are not expected (Distribution and Table forbid them); lengths
// must match.
func SameLabels[L comparable](a, b []L) bool {
	if len(a) != len(b) {
		return false
	}
	seen := make(map[L]struct{}, len(a))
	for _, x := range a {
		seen[x] = struct{}{}
	}
	for _, y := range b {
		if _, ok := seen[y]; !ok {
			return false
		}
	}

	return true
}
