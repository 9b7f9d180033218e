package similarity

import (
	"unicode"

	"github.com/mozillazg/go-unidecode"
	"github.com/nvandessel/affinity/internal/normalize"
)

// AlphabetSpan is the largest distance between two initials, the span of
// the Latin alphabet from a to z.
const AlphabetSpan = 25

// InitialProximity scores how close the first letters of a and b sit in
// the alphabet. Same initial scores 100, adjacent initials 96, and initials
// 25 or more positions apart score 0. Returns 0 if either name is empty.
func InitialProximity(a, b normalize.Name) float64 {
	ra, okA := a.First()
	rb, okB := b.First()
	if !okA || !okB {
		return 0
	}

	d := initialDistance(ra, rb)
	if d > AlphabetSpan {
		d = AlphabetSpan
	}
	return percent(1 - float64(d)/AlphabetSpan)
}

func initialDistance(a, b rune) int {
	pa, okA := Ordinal(a)
	pb, okB := Ordinal(b)
	if okA && okB {
		return absInt(pa - pb)
	}
	return absInt(int(a) - int(b))
}

// Ordinal returns the 0-based Latin alphabet position (a=0 … z=25) of r.
// Letters outside a–z are transliterated to ASCII first, so ø maps to o,
// б to b and 张 to z. ok is false when the transliteration holds no ASCII
// letter; callers then compare raw code points instead.
func Ordinal(r rune) (pos int, ok bool) {
	if r >= 'a' && r <= 'z' {
		return int(r - 'a'), true
	}
	for _, c := range unidecode.Unidecode(string(r)) {
		c = unicode.ToLower(c)
		if c >= 'a' && c <= 'z' {
			return int(c - 'a'), true
		}
	}
	return 0, false
}
