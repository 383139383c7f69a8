package prob_test

import (
	"testing"

	"github.com/katalvlaran/lvhmm/prob"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type row = prob.Row[string, string]

// mustDist is a test helper building a Distribution or failing the test.
func mustDist(t *testing.T, entries ...prob.Entry[string]) *prob.Distribution[string] {
	t.Helper()
	d, err := prob.NewDistribution(entries...)
	require.NoError(t, err)

	return d
}

// TestNewTable_Errors covers empty, nil-row and duplicate-key rejection.
func TestNewTable_Errors(t *testing.T) {
	_, err := prob.NewTable[string, string]()
	require.ErrorIs(t, err, prob.ErrEmpty)

	_, err = prob.NewTable(row{From: "Rainy"})
	require.ErrorIs(t, err, prob.ErrNilDistribution)

	d := mustDist(t, e{"Walk", 1})
	_, err = prob.NewTable(row{"Rainy", d}, row{"Rainy", d})
	require.ErrorIs(t, err, prob.ErrDuplicateLabel)
}

// TestTable_Lookup verifies row access and two-level lookups.
func TestTable_Lookup(t *testing.T) {
	tbl, err := prob.NewTable(
		row{"Rainy", mustDist(t, e{"Rainy", 0.7}, e{"Sunny", 0.3})},
		row{"Sunny", mustDist(t, e{"Rainy", 0.4}, e{"Sunny", 0.6})},
	)
	require.NoError(t, err)
	assert.Equal(t, []string{"Rainy", "Sunny"}, tbl.Labels())
	assert.Equal(t, 2, tbl.Len())

	w, err := tbl.Lookup("Sunny", "Rainy")
	require.NoError(t, err)
	assert.Equal(t, 0.4, w)

	_, err = tbl.Lookup("Foggy", "Rainy")
	assert.ErrorIs(t, err, prob.ErrKeyNotFound, "unknown from-label")

	_, err = tbl.Lookup("Rainy", "Foggy")
	assert.ErrorIs(t, err, prob.ErrKeyNotFound, "unknown to-label")

	r, err := tbl.Row("Rainy")
	require.NoError(t, err)
	assert.Equal(t, []string{"Rainy", "Sunny"}, r.Labels())
}
