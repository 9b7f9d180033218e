// Package affinity computes the Affinity Quotient of two names: a
// deterministic compatibility score in [0,100] built from five independent
// sub-metrics.
//
//	S  initial proximity            weight 0.15
//	L  letter-frequency similarity  weight 0.25
//	P  phonetic similarity          weight 0.20
//	N  numerological compatibility  weight 0.10
//	B  vowel-balance similarity     weight 0.15
//
// The weighted sum plus a constant offset of 15 is clamped to [0,100] and
// rounded to one decimal place. The quotient is symmetric in its two
// arguments and holds no state between calls.
package affinity

import (
	"errors"
	"fmt"

	"github.com/nvandessel/affinity/internal/constants"
	"github.com/nvandessel/affinity/internal/normalize"
	"github.com/nvandessel/affinity/internal/similarity"
)

// ErrInvalidName is matched by every InvalidNameError via errors.Is.
var ErrInvalidName = errors.New("name contains no letters")

// InvalidNameError reports an input that normalizes to no letters at all,
// such as an empty string, whitespace, digits, punctuation or emoji.
// The error is deterministic: the same input always fails.
type InvalidNameError struct {
	// Arg is the offending argument, "name1" or "name2".
	Arg string
	// Raw is the input as supplied by the caller.
	Raw string
}

func (e *InvalidNameError) Error() string {
	return fmt.Sprintf("invalid %s %q: contains no letters", e.Arg, e.Raw)
}

func (e *InvalidNameError) Unwrap() error {
	return ErrInvalidName
}

// Breakdown is the full result of one comparison. Every field is rounded to
// one decimal place.
type Breakdown struct {
	S     float64 `json:"s" yaml:"s"`
	L     float64 `json:"l" yaml:"l"`
	P     float64 `json:"p" yaml:"p"`
	N     float64 `json:"n" yaml:"n"`
	B     float64 `json:"b" yaml:"b"`
	Final float64 `json:"final" yaml:"final"`
}

// Quotient returns the final affinity score of name1 and name2.
func Quotient(name1, name2 string) (float64, error) {
	bd, err := QuotientWithBreakdown(name1, name2)
	if err != nil {
		return 0, err
	}
	return bd.Final, nil
}

// QuotientWithBreakdown returns the five sub-scores and the final score.
// It fails with *InvalidNameError before computing anything if either name
// has no letters; name1 is checked first.
func QuotientWithBreakdown(name1, name2 string) (Breakdown, error) {
	a, b, err := normalizePair(name1, name2)
	if err != nil {
		return Breakdown{}, err
	}
	return compute(a, b), nil
}

func normalizePair(name1, name2 string) (normalize.Name, normalize.Name, error) {
	a := normalize.Normalize(name1)
	if a.Empty() {
		return "", "", &InvalidNameError{Arg: "name1", Raw: name1}
	}
	b := normalize.Normalize(name2)
	if b.Empty() {
		return "", "", &InvalidNameError{Arg: "name2", Raw: name2}
	}
	return a, b, nil
}

func compute(a, b normalize.Name) Breakdown {
	bd := Breakdown{
		S: similarity.InitialProximity(a, b),
		L: similarity.LetterFrequencySimilarity(a, b),
		P: similarity.PhoneticSimilarity(a, b),
		N: similarity.NumerologicalCompatibility(a, b),
		B: similarity.VowelBalanceSimilarity(a, b),
	}

	raw := constants.LetterFrequencyWeight*bd.L +
		constants.PhoneticWeight*bd.P +
		constants.InitialProximityWeight*bd.S +
		constants.VowelBalanceWeight*bd.B +
		constants.NumerologyWeight*bd.N +
		constants.BaseOffset

	bd.Final = similarity.Round1(similarity.Clamp(raw, constants.MinScore, constants.MaxScore))
	return bd
}
