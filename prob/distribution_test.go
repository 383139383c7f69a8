package prob_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvhmm/prob"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type e = prob.Entry[string]

// TestNewDistribution_Empty verifies that no entries is rejected.
func TestNewDistribution_Empty(t *testing.T) {
	_, err := prob.NewDistribution[string]()
	require.ErrorIs(t, err, prob.ErrEmpty)
}

// TestNewDistribution_InvalidWeight rejects negative, NaN and Inf weights.
func TestNewDistribution_InvalidWeight(t *testing.T) {
	for _, w := range []float64{-0.1, math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := prob.NewDistribution(e{"a", 0.5}, e{"b", w})
		assert.ErrorIs(t, err, prob.ErrInvalidWeight, "weight %v must be rejected", w)
	}
}

// TestNewDistribution_Duplicate rejects a label supplied twice.
func TestNewDistribution_Duplicate(t *testing.T) {
	_, err := prob.NewDistribution(e{"a", 0.5}, e{"a", 0.5})
	require.ErrorIs(t, err, prob.ErrDuplicateLabel)
}

// TestDistribution_Lookup checks declared weights, legitimate zeros and missing labels.
func TestDistribution_Lookup(t *testing.T) {
	d, err := prob.NewDistribution(e{"Walk", 0.1}, e{"Shop", 0.9}, e{"Clean", 0})
	require.NoError(t, err)

	w, err := d.Lookup("Shop")
	require.NoError(t, err)
	assert.Equal(t, 0.9, w)

	w, err = d.Lookup("Clean")
	require.NoError(t, err, "zero weight is a declared entry")
	assert.Equal(t, 0.0, w)

	_, err = d.Lookup("Swim")
	assert.ErrorIs(t, err, prob.ErrKeyNotFound, "missing label must not default to zero")
	assert.True(t, d.Has("Clean"))
	assert.False(t, d.Has("Swim"))
}

// TestDistribution_LabelsOrderAndCopy verifies declared order and that callers
// cannot mutate the internal domain.
func TestDistribution_LabelsOrderAndCopy(t *testing.T) {
	d, err := prob.NewDistribution(e{"z", 0.2}, e{"a", 0.3}, e{"m", 0.5})
	require.NoError(t, err)

	labels := d.Labels()
	assert.Equal(t, []string{"z", "a", "m"}, labels)
	labels[0] = "mutated"
	assert.Equal(t, []string{"z", "a", "m"}, d.Labels())
	assert.Equal(t, 3, d.Len())
}

// TestDistribution_Normalization covers Sum and IsNormalized, including the default eps.
func TestDistribution_Normalization(t *testing.T) {
	d, err := prob.NewDistribution(e{"a", 0.1}, e{"b", 0.2}, e{"c", 0.7})
	require.NoError(t, err)
	assert.InDelta(t, 1.0, d.Sum(), 1e-12)
	assert.True(t, d.IsNormalized(0))

	u, err := prob.NewDistribution(e{"a", 0.5}, e{"b", 0.6})
	require.NoError(t, err)
	assert.False(t, u.IsNormalized(1e-6), "unnormalized weights are accepted but reported")
	assert.True(t, u.IsNormalized(0.2))
}

// TestSameLabels checks order-insensitive set equality.
func TestSameLabels(t *testing.T) {
	assert.True(t, prob.SameLabels([]string{"a", "b"}, []string{"b", "a"}))
	assert.False(t, prob.SameLabels([]string{"a", "b"}, []string{"a", "c"}))
	assert.False(t, prob.SameLabels([]string{"a"}, []string{"a", "b"}))
	assert.True(t, prob.SameLabels[string](nil, nil))
}
