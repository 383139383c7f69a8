// Package report formats Evaluate and Decode results as console lines.
package report

import (
	"fmt"
	"io"
)

// Scorer is the Evaluate half of an hmm.Engine.
type Scorer[O any] interface {
	Evaluate(observations []O) (float64, error)
}

// Decoder is the Decode half of an hmm.Engine.
type Decoder[S, O any] interface {
	Decode(observations []O) ([]S, float64, error)
}

// ScoreLine renders one evaluation result.
func ScoreLine[O any](observations []O, p float64) string {
	return fmt.Sprintf("Score for %v is %f.", observations, p)
}

// DecodeLine renders one decoding result with the probability as a percentage.
func DecodeLine[S, O any](observations []O, path []S, p float64) string {
	return fmt.Sprintf(
		"Given the known model and the observation %v, the weather was most likely %v with ~%.2f%% probability.",
		observations, path, p*100)
}

// Scores writes a ScoreLine per sequence. It stops at the first error.
func Scores[O any](w io.Writer, s Scorer[O], sequences [][]O) error {
	for _, obs := range sequences {
		p, err := s.Evaluate(obs)
		if err != nil {
			return fmt.Errorf("report: evaluate %v: %w", obs, err)
		}
		if _, err := fmt.Fprintln(w, ScoreLine(obs, p)); err != nil {
			return err
		}
	}

	return nil
}

// Paths writes a DecodeLine per sequence. It stops at the first error.
func Paths[S, O any](w io.Writer, d Decoder[S, O], sequences [][]O) error {
	for _, obs := range sequences {
		path, p, err := d.Decode(obs)
		if err != nil {
			return fmt.Errorf("report: decode %v: %w", obs, err)
		}
		if _, err := fmt.Fprintln(w, DecodeLine(obs, path, p)); err != nil {
			return err
		}
	}

	return nil
}
