// SPDX-License-Identifier: MIT

package prob

import "fmt"

// Row binds one "from" label to its Distribution.
type Row[F, L comparable] struct {
	From F
	Dist *Distribution[L]
}

// Table is an immutable, ordered collection of Distributions keyed by a
// "from" label. Transition tables use F == L (state → state); emission
// tables map states to observation symbols.
type Table[F, L comparable] struct {
	from  []F
	rows  []*Distribution[L]
	index map[F]int
}

// NewTable builds a Table from rows in declared order.
//
// Errors:
//   - ErrEmpty when no rows are given.
//   - ErrNilDistribution when a row has no Distribution.
//   - ErrDuplicateLabel when a "from" label repeats.
//
// The inner Distributions are shared, not copied; they are immutable.
func NewTable[F, L comparable](rows ...Row[F, L]) (*Table[F, L], error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("NewTable: %w", ErrEmpty)
	}

	t := &Table[F, L]{
		from:  make([]F, 0, len(rows)),
		rows:  make([]*Distribution[L], 0, len(rows)),
		index: make(map[F]int, len(rows)),
	}
	for _, r := range rows {
		if r.Dist == nil {
			return nil, fmt.Errorf("NewTable(%v): %w", r.From, ErrNilDistribution)
		}
		if _, dup := t.index[r.From]; dup {
			return nil, fmt.Errorf("NewTable(%v): %w", r.From, ErrDuplicateLabel)
		}
		t.index[r.From] = len(t.from)
		t.from = append(t.from, r.From)
		t.rows = append(t.rows, r.Dist)
	}

	return t, nil
}

// Row returns the Distribution stored under from, or ErrKeyNotFound.
func (t *Table[F, L]) Row(from F) (*Distribution[L], error) {
	i, ok := t.index[from]
	if !ok {
		return nil, fmt.Errorf("Table.Row(%v): %w", from, ErrKeyNotFound)
	}

	return t.rows[i], nil
}

// Lookup returns the weight of to in the row of from.
// Either label being outside its domain yields ErrKeyNotFound.
func (t *Table[F, L]) Lookup(from F, to L) (float64, error) {
	d, err := t.Row(from)
	if err != nil {
		return 0, err
	}
	w, err := d.Lookup(to)
	if err != nil {
		return 0, fmt.Errorf("Table.Lookup(%v): %w", from, err)
	}

	return w, nil
}

// Labels returns a copy of the "from" labels in declared order.
func (t *Table[F, L]) Labels() []F {
	out := make([]F, len(t.from))
	copy(out, t.from)

	return out
}

// Len returns the number of rows.
func (t *Table[F, L]) Len() int { return len(t.from) }
