// Package lvhmm is an in-memory toolkit for discrete hidden Markov models:
// labeled probability tables and an engine answering the evaluation and
// decoding problems.
//
// 🚀 What is lvhmm?
//
//	A small, pure-Go library that brings together:
//		• Probability tables: ordered, immutable, strict-lookup distributions
//		• Evaluation: P(O) by brute-force enumeration or the forward algorithm
//		• Decoding: most likely hidden path by enumeration or Viterbi
//
// ✨ Why choose lvhmm?
//
//   - Strict by construction – malformed models fail in hmm.New, not mid-query
//   - Reference semantics – the default solver walks every hidden path, so
//     results and tie-breaking match the textbook definition exactly
//   - Generic labels – any comparable type for states and symbols
//   - Immutable – one Engine serves concurrent callers without locks
//
// Packages:
//
//	prob/: Distribution and Table: labeled weights with declared order
//	hmm/: Engine: New, Evaluate, Decode; Enumerate and Trellis solvers
//
// Quick ASCII example:
//
//	  Rainy ──0.3──▶ Sunny
//	    ▲ ◀──0.4──   │
//	   0.7          0.6
//	    │  emits     │ emits
//	 Walk/Shop/Clean Walk/Shop/Clean
//
// The cmd/hmmweather tool runs the Rainy/Sunny model end to end.
//
//	go get github.com/katalvlaran/lvhmm
package lvhmm
