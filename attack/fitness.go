// Package attack - English-likeness fitness used to guide the
// stochastic solvers. The scores are heuristics, not probabilities;
// only their ordering matters to the annealing acceptance rule.
package attack

import "strings"

// commonWords bias the substitution fitness towards English; each hit
// is worth wordBonus.
var commonWords = []string{
	"THE", "AND", "THAT", "HAVE", "FOR", "WITH", "NOT", "THIS", "BUT",
	"YOU", "FROM", "THEY", "SAY", "HER", "SHE", "WILL", "ONE", "ALL",
	"WOULD", "THERE", "THEIR", "WHAT", "SO", "UP", "OUT", "IF", "ABOUT",
}

// commonDigrams are frequent English letter pairs; each hit is worth
// digramBonus.
var commonDigrams = []string{
	"TH", "HE", "IN", "ER", "AN", "RE", "ED", "ON", "ES", "ST",
	"EN", "AT", "TE", "OR", "TI", "HI", "AS", "ET", "NG",
}

// transpositionWords are the shorter trigram-heavy list used by the
// transposition fitness, where column mixes rarely preserve long words.
var transpositionWords = []string{
	"THE", "AND", "ING", "ION", "ENT", "HER", "FOR", "THA", "NTH",
	"HES", "HIS", "ERE", "TIO", "VER", "ALL", "WAS", "YOU",
}

// frequentLetters is the high-frequency English letter set used for the
// per-letter component of the transposition fitness.
const frequentLetters = "ETAOINSHRDLU"

// Substitution fitness weights.
const (
	wordBonus          = 5.0
	digramBonus        = 1.0
	placeholderPenalty = 8.0
	lengthBonus        = 0.001
)

// Transposition fitness weights.
const (
	transpositionWordBonus = 4.0
	frequentLetterBonus    = 0.2
)

// scoreSubstitution rates a decoded candidate: word and digram hits up,
// undecodable placeholders down, plus a tiny length reward so longer
// decodes are never dominated by empty ones.
//
// Complexity: O(n · |lists|).
func scoreSubstitution(text string) float64 {
	var (
		s float64
		w string
	)
	for _, w = range commonWords {
		s += float64(strings.Count(text, w)) * wordBonus
	}
	for _, w = range commonDigrams {
		s += float64(strings.Count(text, w)) * digramBonus
	}
	s -= float64(strings.Count(text, string(Placeholder))) * placeholderPenalty
	s += float64(len(text)) * lengthBonus

	return s
}

// scoreTransposition rates a candidate column untangling, normalized by
// length so scores compare across trial key lengths.
//
// Complexity: O(n · |lists|).
func scoreTransposition(text string) float64 {
	var (
		s float64
		w string
		i int
	)
	for _, w = range transpositionWords {
		s += float64(strings.Count(text, w)) * transpositionWordBonus
	}
	for i = 0; i < len(text); i++ {
		if strings.IndexByte(frequentLetters, text[i]) >= 0 {
			s += frequentLetterBonus
		}
	}

	n := len(text)
	if n < 1 {
		n = 1
	}

	return s / float64(n)
}
