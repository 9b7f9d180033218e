package similarity

import (
	"math"

	"github.com/nvandessel/affinity/internal/normalize"
)

// DestinyStep is the score lost per unit of difference between two destiny
// numbers. The largest difference is 8, so the score never drops below 80.
const DestinyStep = 2.5

// LetterValue is the numerology value of a letter in 1–9. Latin letters
// follow the Pythagorean table (a=1 … i=9, j=1 …); any other letter is
// hashed by code point.
func LetterValue(r rune) int {
	if r >= 'a' && r <= 'z' {
		return int(r-'a')%9 + 1
	}
	return int(r%9) + 1
}

// DigitalRoot repeatedly sums the decimal digits of n until one digit
// remains. Non-positive input yields 1.
func DigitalRoot(n int) int {
	if n <= 0 {
		return 1
	}
	for n > 9 {
		sum := 0
		for n > 0 {
			sum += n % 10
			n /= 10
		}
		n = sum
	}
	return n
}

// DestinyNumber is the digital root of the letter values of n, in 1–9.
// The empty name has destiny number 1.
func DestinyNumber(n normalize.Name) int {
	sum := 0
	for _, r := range string(n) {
		sum += LetterValue(r)
	}
	return DigitalRoot(sum)
}

// NumerologicalCompatibility scores 100 minus DestinyStep per unit of
// difference between the destiny numbers of a and b.
func NumerologicalCompatibility(a, b normalize.Name) float64 {
	diff := absInt(DestinyNumber(a) - DestinyNumber(b))
	return Round1(math.Max(0, 100-DestinyStep*float64(diff)))
}
