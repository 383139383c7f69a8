// SPDX-License-Identifier: MIT

package hmm

import (
	"fmt"
	"strings"
)

// Method selects the solver behind Evaluate and Decode.
//
//   - Enumerate: brute force over the full Cartesian product of states.
//     Time O(n·|S|^n), memory O(n).
//
//   - Trellis: forward algorithm / Viterbi with backpointers.
//     Time O(n·|S|²), memory O(n·|S|).
type Method int

const (
	// Enumerate walks every hidden path; reference values and tie-breaking.
	Enumerate Method = iota

	// Trellis uses dynamic programming over a time × state lattice.
	Trellis
)

// String returns the lower-case method name.
func (m Method) String() string {
	switch m {
	case Enumerate:
		return "enumerate"
	case Trellis:
		return "trellis"
	default:
		return fmt.Sprintf("method(%d)", int(m))
	}
}

// ParseMethod maps a name ("enumerate", "trellis", case-insensitive) to a Method.
func ParseMethod(name string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "enumerate", "brute", "naive":
		return Enumerate, nil
	case "trellis", "dp", "viterbi", "forward":
		return Trellis, nil
	default:
		return 0, fmt.Errorf("hmm: unknown method %q", name)
	}
}

func (m Method) valid() bool { return m == Enumerate || m == Trellis }
