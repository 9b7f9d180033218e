// Package constants provides named constants used throughout the affinity codebase.
// This centralizes magic numbers for better maintainability and documentation.
package constants

// Affinity quotient weights. The weights sum to 0.85 and BaseOffset
// supplies the remaining 15 points, so five perfect sub-scores give exactly 100.
const (
	// LetterFrequencyWeight is the weight of the letter-frequency similarity (L).
	LetterFrequencyWeight = 0.25

	// PhoneticWeight is the weight of the phonetic similarity (P).
	PhoneticWeight = 0.20

	// InitialProximityWeight is the weight of the initial proximity (S).
	InitialProximityWeight = 0.15

	// VowelBalanceWeight is the weight of the vowel-balance similarity (B).
	VowelBalanceWeight = 0.15

	// NumerologyWeight is the weight of the numerological compatibility (N).
	NumerologyWeight = 0.10

	// BaseOffset is added to every weighted sum before clamping.
	BaseOffset = 15.0
)

// Score range.
const (
	// MinScore is the lowest score any metric or the final quotient can take.
	MinScore = 0.0

	// MaxScore is the highest score any metric or the final quotient can take.
	MaxScore = 100.0
)

// Scorer defaults.
const (
	// DefaultCacheSize is the number of scored pairs the CLI memoizes.
	// Zero disables the cache.
	DefaultCacheSize = 1024

	// DefaultBatchWorkers is the number of pairs scored concurrently in batch mode.
	DefaultBatchWorkers = 4

	// MaxBatchWorkers bounds the configurable worker count.
	MaxBatchWorkers = 256
)
