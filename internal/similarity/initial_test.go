package similarity

import (
	"testing"

	"github.com/nvandessel/affinity/internal/normalize"
	"github.com/stretchr/testify/assert"
)

func TestInitialProximity(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want float64
	}{
		{"same initial", "Alice", "Anna", 100},
		{"adjacent initials", "Alice", "Bob", 96},
		{"maximal distance", "Alice", "Zoe", 0},
		{"a to m", "Alice", "Mike", 52},
		{"case and accents ignored", "émile", "Eva", 100},
		{"cyrillic transliterated", "Борис", "Bob", 100},
		{"either empty", "", "Anna", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := InitialProximity(normalize.Normalize(tt.a), normalize.Normalize(tt.b))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOrdinal(t *testing.T) {
	tests := []struct {
		r    rune
		want int
	}{
		{'a', 0},
		{'m', 12},
		{'z', 25},
		{'ø', 14},
		{'б', 1},
	}

	for _, tt := range tests {
		got, ok := Ordinal(tt.r)
		assert.True(t, ok, "Ordinal(%q)", tt.r)
		assert.Equal(t, tt.want, got, "Ordinal(%q)", tt.r)
	}
}
