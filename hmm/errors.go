// SPDX-License-Identifier: MIT
// Package hmm: sentinel error set.
// Messages are prefixed with "hmm: ". Construction failures wrap the inner
// cause as well (e.g. prob.ErrKeyNotFound), so errors.Is matches both.

package hmm

import "errors"

var (
	// ErrInvalidModel is returned by New when start, transition and emission
	// tables disagree on the state set or emission rows disagree on the alphabet.
	ErrInvalidModel = errors.New("hmm: invalid model")

	// ErrUnknownSymbol indicates an observation outside the model's alphabet.
	ErrUnknownSymbol = errors.New("hmm: unknown observation symbol")

	// ErrTooManyPaths indicates |states|^n exceeds the configured path limit.
	ErrTooManyPaths = errors.New("hmm: candidate path count exceeds limit")
)
