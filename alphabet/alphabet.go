package alphabet

import "strings"

// Size is the number of letters in the cipher alphabet.
const Size = 26

// Letters is the standard alphabet in encoding order: Letters[Encode(c)] == c.
const Letters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// IsLetter reports whether b is an ASCII letter (either case).
//
// Complexity: O(1).
func IsLetter(b byte) bool {
	return (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
}

// Clean returns text with every non-letter removed and all letters
// uppercased. Clean(Clean(x)) == Clean(x) for all x.
//
// Complexity: O(n) time, O(n) space for the result.
func Clean(text string) string {
	var b strings.Builder
	b.Grow(len(text))

	var i int
	var c byte
	for i = 0; i < len(text); i++ {
		c = text[i]
		switch {
		case c >= 'A' && c <= 'Z':
			b.WriteByte(c)
		case c >= 'a' && c <= 'z':
			b.WriteByte(c - 'a' + 'A')
		}
	}

	return b.String()
}

// Encode maps an uppercase letter to its residue in [0,26).
// The caller guarantees c is in 'A'..'Z' (i.e. came from Clean).
//
// Complexity: O(1).
func Encode(c byte) int {
	return int(c - 'A')
}

// Decode maps a residue back to an uppercase letter. The residue is
// normalized into [0,26) first, so callers may pass the raw result of
// modular subtraction without adjusting the sign themselves.
//
// Complexity: O(1).
func Decode(r int) byte {
	r %= Size
	if r < 0 {
		r += Size
	}

	return byte('A' + r)
}
