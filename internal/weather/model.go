// Package weather builds the classic Rainy/Sunny activity model from literal
// data. It is a caller of prob and hmm, not part of the engine.
package weather

import (
	"fmt"

	"github.com/katalvlaran/lvhmm/hmm"
	"github.com/katalvlaran/lvhmm/prob"
)

// Hidden states.
const (
	Rainy = "Rainy"
	Sunny = "Sunny"
)

// Observable activities.
const (
	Walk  = "Walk"
	Shop  = "Shop"
	Clean = "Clean"
)

type (
	entry = prob.Entry[string]
	row   = prob.Row[string, string]
)

// Tables returns the start distribution, transition table and emission table.
func Tables() (*prob.Distribution[string], *prob.Table[string, string], *prob.Table[string, string], error) {
	start, err := prob.NewDistribution(entry{Rainy, 0.6}, entry{Sunny, 0.4})
	if err != nil {
		return nil, nil, nil, fmt.Errorf("weather: start: %w", err)
	}

	fromRainy, err := prob.NewDistribution(entry{Rainy, 0.7}, entry{Sunny, 0.3})
	if err != nil {
		return nil, nil, nil, fmt.Errorf("weather: transitions: %w", err)
	}
	fromSunny, err := prob.NewDistribution(entry{Rainy, 0.4}, entry{Sunny, 0.6})
	if err != nil {
		return nil, nil, nil, fmt.Errorf("weather: transitions: %w", err)
	}
	trans, err := prob.NewTable(row{Rainy, fromRainy}, row{Sunny, fromSunny})
	if err != nil {
		return nil, nil, nil, fmt.Errorf("weather: transitions: %w", err)
	}

	onRainy, err := prob.NewDistribution(entry{Walk, 0.1}, entry{Shop, 0.4}, entry{Clean, 0.5})
	if err != nil {
		return nil, nil, nil, fmt.Errorf("weather: emissions: %w", err)
	}
	onSunny, err := prob.NewDistribution(entry{Walk, 0.6}, entry{Shop, 0.3}, entry{Clean, 0.1})
	if err != nil {
		return nil, nil, nil, fmt.Errorf("weather: emissions: %w", err)
	}
	emit, err := prob.NewTable(row{Rainy, onRainy}, row{Sunny, onSunny})
	if err != nil {
		return nil, nil, nil, fmt.Errorf("weather: emissions: %w", err)
	}

	return start, trans, emit, nil
}

// NewEngine builds an hmm.Engine over the weather model.
func NewEngine(opts ...hmm.Option) (*hmm.Engine[string, string], error) {
	start, trans, emit, err := Tables()
	if err != nil {
		return nil, err
	}

	return hmm.New(start, trans, emit, opts...)
}

// ScoreSequences are the sequences the demo evaluates.
func ScoreSequences() [][]string {
	return [][]string{{Walk}, {Clean}}
}

// DecodeSequences are the sequences the demo decodes.
func DecodeSequences() [][]string {
	return [][]string{{Shop, Clean, Walk}, {Clean, Clean, Clean}}
}
