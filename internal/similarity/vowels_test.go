package similarity

import (
	"testing"

	"github.com/nvandessel/affinity/internal/normalize"
	"github.com/stretchr/testify/assert"
)

func TestIsVowel(t *testing.T) {
	for _, r := range []rune("aeiouаеиоуыэюяαεηιουωअआあアぁ") {
		assert.True(t, IsVowel(r), "IsVowel(%q)", r)
	}
	for _, r := range []rune("bcdhnyzбгλ张민") {
		assert.False(t, IsVowel(r), "IsVowel(%q)", r)
	}
}

func TestVowelRatio(t *testing.T) {
	assert.InDelta(t, 2.0/3.0, VowelRatio(normalize.Normalize("Ada")), 1e-12)
	assert.Equal(t, 0.5, VowelRatio(normalize.Normalize("Anna")))
	assert.Equal(t, 0.0, VowelRatio(normalize.Normalize("张伟")))
	assert.Equal(t, 0.0, VowelRatio(""))
}

func TestVowelBalanceSimilarity(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want float64
	}{
		{"equal ratios", "Ada", "Ava", 100},
		{"all vowels vs none", "Aia", "Bcd", 0},
		{"anna vs bob", "Anna", "Bob", 83.3},
		{"alice vs anna", "Alice", "Anna", 90},
		{"cyrillic", "Ольга", "Anna", 90},
		{"y is a consonant", "Amy", "Anna", 83.3},
		{"either empty", "", "Bcd", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := VowelBalanceSimilarity(normalize.Normalize(tt.a), normalize.Normalize(tt.b))
			assert.Equal(t, tt.want, got)
		})
	}
}
