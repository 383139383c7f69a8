// Package hmm evaluates and decodes observation sequences against a discrete
// hidden Markov model built from prob tables.
//
// 🚀 What does it solve?
//
//	Given a start distribution π, a transition table A (state → state) and an
//	emission table B (state → symbol):
//	  • Evaluate (evaluation problem): P(O), summed over every hidden path
//	  • Decode (decoding problem): argmax_S P(S, O) and its probability
//
// ✨ Solvers (choose via WithMethod):
//   - Enumerate (default) follows the textbook definition and walks the full Cartesian
//     product of states, |S|^n candidate paths. Exact reference values and
//     first-seen tie-breaking in lexicographic state order.
//   - Trellis: forward algorithm and Viterbi with backpointers, O(n·|S|²).
//     Same probabilities; ties between equally likely paths may resolve
//     to a different (equally likely) sequence.
//
// ⚙️ Usage:
//
//	import (
//	  "github.com/katalvlaran/lvhmm/hmm"
//	  "github.com/katalvlaran/lvhmm/prob"
//	)
//
//	eng, err := hmm.New(start, transitions, emissions)
//	p, err := eng.Evaluate([]string{"Walk"})
//	path, best, err := eng.Decode([]string{"Shop", "Clean", "Walk"})
//
// Conventions:
//   - Evaluate(nil) == 1 and Decode(nil) == ([], 1): the empty product.
//   - If every path has probability 0, Decode returns ([], 0) without error.
//
// Errors:
//   - ErrInvalidModel: raised by New, never lazily.
//   - ErrUnknownSymbol: observation outside the alphabet, raised before any work.
//   - ErrTooManyPaths: Enumerate only, when WithPathLimit is exceeded.
//
// An Engine is immutable; concurrent Evaluate/Decode calls are safe.
package hmm
