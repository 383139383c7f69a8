package hmm_test

import (
	"testing"

	"github.com/katalvlaran/lvhmm/hmm"
	"github.com/katalvlaran/lvhmm/prob"
	"github.com/stretchr/testify/require"
)

type (
	entry = prob.Entry[string]
	row   = prob.Row[string, string]
)

// dist builds a Distribution or fails the test.
func dist(t testing.TB, entries ...entry) *prob.Distribution[string] {
	t.Helper()
	d, err := prob.NewDistribution(entries...)
	require.NoError(t, err)

	return d
}

// table builds a Table or fails the test.
func table(t testing.TB, rows ...row) *prob.Table[string, string] {
	t.Helper()
	tb, err := prob.NewTable(rows...)
	require.NoError(t, err)

	return tb
}

// weatherTables returns the Rainy/Sunny model used across the tests:
//
//	π = {Rainy:0.6, Sunny:0.4}
//	A = Rainy→{0.7,0.3}, Sunny→{0.4,0.6}
//	B = Rainy→{Walk:0.1, Shop:0.4, Clean:0.5}, Sunny→{Walk:0.6, Shop:0.3, Clean:0.1}
func weatherTables(t testing.TB) (*prob.Distribution[string], *prob.Table[string, string], *prob.Table[string, string]) {
	t.Helper()
	start := dist(t, entry{"Rainy", 0.6}, entry{"Sunny", 0.4})
	trans := table(t,
		row{"Rainy", dist(t, entry{"Rainy", 0.7}, entry{"Sunny", 0.3})},
		row{"Sunny", dist(t, entry{"Rainy", 0.4}, entry{"Sunny", 0.6})},
	)
	emit := table(t,
		row{"Rainy", dist(t, entry{"Walk", 0.1}, entry{"Shop", 0.4}, entry{"Clean", 0.5})},
		row{"Sunny", dist(t, entry{"Walk", 0.6}, entry{"Shop", 0.3}, entry{"Clean", 0.1})},
	)

	return start, trans, emit
}

// weather builds an Engine over the Rainy/Sunny model.
func weather(t testing.TB, opts ...hmm.Option) *hmm.Engine[string, string] {
	t.Helper()
	start, trans, emit := weatherTables(t)
	e, err := hmm.New(start, trans, emit, opts...)
	require.NoError(t, err)

	return e
}

// allSequences returns every sequence of length n over alphabet, in
// lexicographic order.
func allSequences(alphabet []string, n int) [][]string {
	if n == 0 {
		return [][]string{{}}
	}
	var out [][]string
	for _, prefix := range allSequences(alphabet, n-1) {
		for _, s := range alphabet {
			seq := append(append([]string{}, prefix...), s)
			out = append(out, seq)
		}
	}

	return out
}
