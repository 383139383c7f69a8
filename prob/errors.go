// SPDX-License-Identifier: MIT
// Package prob: sentinel error set.
// Every message is prefixed with "prob: ". Detection sites wrap the sentinel
// with the offending label via fmt.Errorf("...: %w", ErrX); callers match
// with errors.Is.

package prob

import "errors"

var (
	// ErrKeyNotFound is returned when a label outside the declared domain is queried.
	ErrKeyNotFound = errors.New("prob: label not found")

	// ErrEmpty indicates a Distribution or Table was built without entries.
	ErrEmpty = errors.New("prob: no entries")

	// ErrDuplicateLabel indicates the same label was supplied twice.
	ErrDuplicateLabel = errors.New("prob: duplicate label")

	// ErrInvalidWeight indicates a negative, NaN or ±Inf weight.
	ErrInvalidWeight = errors.New("prob: weight must be finite and non-negative")

	// ErrNilDistribution indicates a Table row without a Distribution.
	ErrNilDistribution = errors.New("prob: nil distribution")
)
