package report_test

import (
	"bytes"
	"testing"

	"github.com/katalvlaran/lvhmm/hmm"
	"github.com/katalvlaran/lvhmm/internal/report"
	"github.com/katalvlaran/lvhmm/internal/weather"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScores(t *testing.T) {
	e, err := weather.NewEngine()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, report.Scores[string](&buf, e, weather.ScoreSequences()))
	assert.Equal(t,
		"Score for [Walk] is 0.300000.\n"+
			"Score for [Clean] is 0.340000.\n",
		buf.String())
}

func TestPaths(t *testing.T) {
	e, err := weather.NewEngine()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, report.Paths[string, string](&buf, e, weather.DecodeSequences()))
	assert.Equal(t,
		"Given the known model and the observation [Shop Clean Walk], the weather was most likely [Rainy Rainy Sunny] with ~1.51% probability.\n"+
			"Given the known model and the observation [Clean Clean Clean], the weather was most likely [Rainy Rainy Rainy] with ~3.67% probability.\n",
		buf.String())
}

func TestScores_PropagatesError(t *testing.T) {
	e, err := weather.NewEngine()
	require.NoError(t, err)

	var buf bytes.Buffer
	err = report.Scores[string](&buf, e, [][]string{{"Walk"}, {"Swim"}})
	assert.ErrorIs(t, err, hmm.ErrUnknownSymbol)
	assert.Equal(t, "Score for [Walk] is 0.300000.\n", buf.String())
}

func TestDecodeLine_EmptyPath(t *testing.T) {
	assert.Equal(t,
		"Given the known model and the observation [x], the weather was most likely [] with ~0.00% probability.",
		report.DecodeLine([]string{"x"}, []string{}, 0))
}
