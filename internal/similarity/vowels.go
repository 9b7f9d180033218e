package similarity

import (
	"math"

	"github.com/nvandessel/affinity/internal/normalize"
)

// vowelLetters lists vowel letters per script, in normalized (case-folded,
// mark-free) form.
var vowelLetters = []string{
	// Latin
	"aeiou",
	// Cyrillic
	"аеиоуыэюя",
	// Greek
	"αεηιουω",
	// Devanagari independent vowels
	"अआइईउऊऋऌऍऎएऐऑऒओऔ",
	// Hiragana and Katakana, including small forms
	"あいうえおぁぃぅぇぉ",
	"アイウエオァィゥェォ",
}

var vowels = func() map[rune]struct{} {
	set := make(map[rune]struct{})
	for _, letters := range vowelLetters {
		for _, r := range letters {
			set[r] = struct{}{}
		}
	}
	return set
}()

// IsVowel reports whether r is a vowel letter in any supported script.
func IsVowel(r rune) bool {
	_, ok := vowels[r]
	return ok
}

// VowelRatio is the share of vowels among the letters of n. The empty name
// has ratio 0.
func VowelRatio(n normalize.Name) float64 {
	total, count := 0, 0
	for _, r := range string(n) {
		total++
		if IsVowel(r) {
			count++
		}
	}
	if total == 0 {
		return 0
	}
	return float64(count) / float64(total)
}

// VowelBalanceSimilarity scores how close the vowel ratios of a and b are.
// Returns 0 if either name is empty.
func VowelBalanceSimilarity(a, b normalize.Name) float64 {
	if a.Empty() || b.Empty() {
		return 0
	}
	diff := math.Abs(VowelRatio(a) - VowelRatio(b))
	return Round1(math.Max(0, (1-diff)*100))
}
