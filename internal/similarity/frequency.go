package similarity

import (
	"slices"

	"github.com/nvandessel/affinity/internal/normalize"
	"gonum.org/v1/gonum/floats"
)

// Profile maps each distinct letter of a name to its relative frequency.
// The frequencies of a non-empty name sum to 1.
type Profile map[rune]float64

// NewProfile builds the frequency profile of n. The empty name yields an
// empty profile.
func NewProfile(n normalize.Name) Profile {
	letters := n.Runes()
	p := make(Profile, len(letters))
	if len(letters) == 0 {
		return p
	}

	for _, r := range letters {
		p[r]++
	}
	total := float64(len(letters))
	for r, count := range p {
		p[r] = count / total
	}
	return p
}

// Letters returns the distinct letters of the profile in code point order.
func (p Profile) Letters() []rune {
	letters := make([]rune, 0, len(p))
	for r := range p {
		letters = append(letters, r)
	}
	slices.Sort(letters)
	return letters
}

// LetterFrequencySimilarity is the cosine similarity of the two frequency
// profiles over the union of their letters, scaled to [0,100]. A missing
// letter counts as 0; an empty name is the zero vector and scores 0.
func LetterFrequencySimilarity(a, b normalize.Name) float64 {
	pa, pb := NewProfile(a), NewProfile(b)
	if len(pa) == 0 || len(pb) == 0 {
		return 0
	}

	// Dimensions are sorted so float summation order never depends on map order.
	union := make(Profile, len(pa)+len(pb))
	for r := range pa {
		union[r] = 0
	}
	for r := range pb {
		union[r] = 0
	}
	dims := union.Letters()

	va := make([]float64, len(dims))
	vb := make([]float64, len(dims))
	for i, r := range dims {
		va[i] = pa[r]
		vb[i] = pb[r]
	}

	na, nb := floats.Norm(va, 2), floats.Norm(vb, 2)
	if na == 0 || nb == 0 {
		return 0
	}
	return percent(floats.Dot(va, vb) / (na * nb))
}
