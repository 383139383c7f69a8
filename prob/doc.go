// Package prob provides labeled, immutable probability tables.
//
// 🚀 What is a probability table?
//
//	A Distribution maps a finite, ordered set of labels (hidden states or
//	observation symbols) to non-negative weights. A Table indexes one
//	Distribution per "from" label and is used for both the transition
//	matrix (state → state) and the emission matrix (state → symbol) of a
//	hidden Markov model.
//
// ✨ Key properties:
//   - declared order: labels keep the order in which entries were supplied
//   - strict lookups: a label outside the declared domain returns
//     ErrKeyNotFound and is never silently treated as zero
//   - immutable: no mutation after construction, safe for concurrent reads
//   - normalization is the caller's contract; Sum and IsNormalized help check it
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lvhmm/prob"
//
//	start, err := prob.NewDistribution(
//	  prob.Entry[string]{Label: "Rainy", Weight: 0.6},
//	  prob.Entry[string]{Label: "Sunny", Weight: 0.4},
//	)
//	p, err := start.Lookup("Rainy") // 0.6
//
// Complexity:
//
//   - NewDistribution / NewTable: O(k)
//   - Lookup / Row / Has: O(1)
//   - Labels: O(k) (returns a copy)
package prob
