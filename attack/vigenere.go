// Package attack - congruence-based Vigenère key recovery.
//
// Given aligned pre-Vigenère (substituted) and post-Vigenère strings,
// each position i yields the linear congruence
//
//	vig_i ≡ sub_i + shift · ((i%5)+1)   (mod 26)
//
// over the unknown shift of key position (i + ⌊i/5⌋) mod L — the closed
// form of the stage's rotating key index. Solution sets intersect
// across every observation of the same key position; an empty
// intersection proves the trial length infeasible (a normal outcome,
// not an error). Feasible lengths report per-position candidate sets
// and, when the Cartesian product is small enough, concrete keys.
//
// This recovery is exact, deterministic and randomness-free — unlike
// the annealing solvers there is nothing stochastic to tune.
//
// Complexity: O(lengths · n · 26) plus bounded enumeration.
package attack

import (
	"context"

	"github.com/katalvlaran/mlcc/alphabet"
)

// VigenereOptions tunes RecoverVigenereKey.
type VigenereOptions struct {
	// MinKeyLen / MaxKeyLen bound the trial key lengths, inclusive.
	MinKeyLen int
	MaxKeyLen int
	// MaxEnumerate caps full key enumeration per feasible length; above
	// it only the per-position candidate sets are reported.
	MaxEnumerate int
}

// DefaultVigenereOptions returns the standard tuning: trial lengths
// 3..20, at most 200 enumerated keys per length.
func DefaultVigenereOptions() VigenereOptions {
	return VigenereOptions{MinKeyLen: 3, MaxKeyLen: 20, MaxEnumerate: 200}
}

func (o VigenereOptions) validate() error {
	if o.MinKeyLen < 1 || o.MaxKeyLen < o.MinKeyLen || o.MaxEnumerate < 1 {
		return ErrBadOptions
	}

	return nil
}

// effectiveKeyIndex is the closed form of the stage's rotating index:
// the rotation after i characters equals ⌊i/5⌋.
func effectiveKeyIndex(i, keyLen int) int {
	return (i + i/5) % keyLen
}

// shiftMask returns the set of shifts s∈0..25 with
// sub + s·modifier ≡ vig (mod 26), as a 26-bit mask.
func shiftMask(sub, vig, modifier int) uint32 {
	var (
		mask uint32
		s    int
	)
	for s = 0; s < alphabet.Size; s++ {
		if (sub+s*modifier)%alphabet.Size == vig {
			mask |= 1 << s
		}
	}

	return mask
}

// RecoverVigenereKey constrains and (when feasible) enumerates the
// Vigenère key from two aligned strings for every trial length in the
// configured range. Infeasible lengths are skipped silently; an empty
// result slice means no length in range is consistent.
//
// Errors: ErrBadOptions, ErrLengthMismatch when the cleaned inputs
// differ in length, ErrEmptyText when both are empty, or ctx.Err().
func RecoverVigenereKey(ctx context.Context, substituted, vigenereResult string, opts VigenereOptions) ([]VigenereCandidate, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}

	var (
		sub = alphabet.Clean(substituted)
		vig = alphabet.Clean(vigenereResult)
	)
	if len(sub) != len(vig) {
		return nil, ErrLengthMismatch
	}
	if len(sub) == 0 {
		return nil, ErrEmptyText
	}

	var (
		out    []VigenereCandidate
		keyLen int
	)
	for keyLen = opts.MinKeyLen; keyLen <= opts.MaxKeyLen; keyLen++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if cand := constrainKeyLength(sub, vig, keyLen, opts.MaxEnumerate); cand != nil {
			out = append(out, *cand)
		}
	}

	return out, nil
}

// constrainKeyLength intersects shift sets for one trial length.
// Returns nil when any key position ends up with no consistent shift.
func constrainKeyLength(sub, vig string, keyLen, maxEnumerate int) *VigenereCandidate {
	const fullMask = uint32(1)<<alphabet.Size - 1

	masks := make([]uint32, keyLen)
	var p int
	for p = range masks {
		masks[p] = fullMask
	}

	var i int
	for i = 0; i < len(sub); i++ {
		p = effectiveKeyIndex(i, keyLen)
		masks[p] &= shiftMask(alphabet.Encode(sub[i]), alphabet.Encode(vig[i]), i%5+1)
		if masks[p] == 0 {
			return nil
		}
	}

	var (
		shifts       = make([][]int, keyLen)
		combinations = 1
		s            int
	)
	for p = range masks {
		for s = 0; s < alphabet.Size; s++ {
			if masks[p]&(1<<s) != 0 {
				shifts[p] = append(shifts[p], s)
			}
		}
		if combinations <= maxEnumerate {
			combinations *= len(shifts[p])
		}
	}

	cand := &VigenereCandidate{KeyLen: keyLen, Shifts: shifts, Combinations: combinations}
	if combinations <= maxEnumerate {
		cand.Keys = enumerateKeys(shifts)
	}

	return cand
}

// enumerateKeys expands the full Cartesian product of per-position
// shifts into key strings (shift value → key letter of that value).
func enumerateKeys(shifts [][]int) []string {
	var (
		keyLen = len(shifts)
		idx    = make([]int, keyLen)
		key    = make([]byte, keyLen)
		out    []string
		p      int
	)
	for {
		for p = 0; p < keyLen; p++ {
			key[p] = alphabet.Decode(shifts[p][idx[p]])
		}
		out = append(out, string(key))

		// Odometer increment over the per-position candidate lists.
		for p = keyLen - 1; p >= 0; p-- {
			idx[p]++
			if idx[p] < len(shifts[p]) {
				break
			}
			idx[p] = 0
		}
		if p < 0 {
			return out
		}
	}
}
