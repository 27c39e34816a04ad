// Package alphabet maps uppercase ASCII letters onto the 0..25 residue
// ring used by every MLCC transform stage.
//
// The codec is deliberately tiny:
//
//   - Clean  — drop every non-letter, uppercase the rest (idempotent).
//   - Encode — letter → residue in [0,26).
//   - Decode — residue → letter; any integer is normalized first, so
//     negative intermediate values from modular subtraction are safe.
//
// There are no failure modes: empty input yields empty output, and
// Decode is total over int.
package alphabet
