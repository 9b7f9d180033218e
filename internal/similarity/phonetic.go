package similarity

import (
	"strings"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
	"github.com/nvandessel/affinity/internal/normalize"
)

// VowelSymbol stands in for every vowel in a phonetic code.
const VowelSymbol = 'a'

// soundClasses collapses sound-alike Latin consonants onto one symbol.
var soundClasses = map[rune]rune{
	'c': 'k', 'k': 'k',
	's': 's', 'z': 's',
	'f': 'f', 'v': 'f',
	'b': 'b', 'p': 'b',
	'd': 'd', 't': 'd',
	'g': 'g', 'j': 'g',
	'm': 'n', 'n': 'n',
}

// PhoneticCode reduces n to a coarse sound skeleton: sound-alike consonants
// share a symbol, h is silent, and runs of the same letter collapse to one.
// Vowels become VowelSymbol only after collapsing, so "oa" stays two symbols.
// Letters outside the table pass through unchanged.
func PhoneticCode(n normalize.Name) string {
	var b strings.Builder
	b.Grow(len(n))

	last := rune(-1)
	for _, r := range string(n) {
		if r == 'h' {
			continue
		}
		sym := r
		if class, ok := soundClasses[r]; ok {
			sym = class
		}
		if sym == last {
			continue
		}
		last = sym
		if IsVowel(sym) {
			sym = VowelSymbol
		}
		b.WriteRune(sym)
	}
	return b.String()
}

// PhoneticSimilarity compares the phonetic codes of a and b by Levenshtein
// distance, normalized by the longer code. Two empty codes score 100.
func PhoneticSimilarity(a, b normalize.Name) float64 {
	ca, cb := PhoneticCode(a), PhoneticCode(b)
	longest := max(utf8.RuneCountInString(ca), utf8.RuneCountInString(cb))
	if longest == 0 {
		return 100
	}

	d := levenshtein.ComputeDistance(ca, cb)
	return percent(1 - float64(d)/float64(longest))
}
