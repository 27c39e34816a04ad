// Package attack provides cryptanalysis tools for the MLCC cipher
// stages: frequency analysis, stochastic key search for the
// substitution and transposition layers, and congruence-based key
// recovery for the modified Vigenère layer.
//
// 🚀 What is in here?
//
//   - Frequencies / SuggestMapping — letter histograms and a heuristic
//     cipher→plain mapping rank-aligned against English frequency order.
//   - CrackSubstitution — simulated annealing over 26-letter
//     permutations, scored by word/digram hits on the decoded text.
//   - CrackTransposition — the same annealing scheme over column read
//     orders, one search per candidate key length, decoded through the
//     inverse zigzag transposition.
//   - RecoverVigenereKey — exact per-position modular congruence
//     solving over aligned pre-/post-Vigenère strings.
//
// ✨ Guarantees and limits:
//   - Deterministic: every stochastic solver takes an explicit Seed;
//     seed 0 maps to a fixed default stream, never wall-clock time.
//   - Cooperative cancellation: solvers accept a context.Context and
//     check it between iterations.
//   - Single-stage scope: CrackSubstitution assumes substitution-only
//     input and CrackTransposition assumes transposition-only input.
//     Feed them the matching intermediate string (Encryption.Substituted
//     / Encryption.VigenereResult) or the output of the other tool —
//     running them on full three-stage ciphertext degrades sharply.
//   - Heuristic output: the annealing solvers never fail; a poor search
//     simply yields a low-scoring candidate.
//
// Solvers are single-threaded and stateless between calls. Restarts and
// candidate key lengths are fully independent, so callers may fan them
// out and keep the best score; results reduce by pure max.
package attack
