package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want Name
	}{
		{"ascii", "Alice", "alice"},
		{"precomposed accent", "José", "jose"},
		{"combining accent", "Jose\u0301", "jose"},
		{"punctuation and digits", "  Anna-Marie O'Neil 3rd ", "annamarieoneilrd"},
		{"fullwidth", "ＪＯＨＮ", "john"},
		{"sharp s folds", "Straße", "strasse"},
		{"cyrillic", "Ольга", "ольга"},
		{"greek final sigma", "ΟΔΥΣΣΕΑΣ", "οδυσσεασ"},
		{"cjk has no case", "张伟", "张伟"},
		{"hangul recomposes", "민준", "민준"},
		{"invalid utf8 dropped", "An\xffna", "anna"},
		{"empty", "", ""},
		{"whitespace only", " \t\n ", ""},
		{"digits and punctuation", "123!!!", ""},
		{"emoji", "😀🎉", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.raw))
		})
	}
}

func TestNormalize_EquivalentForms(t *testing.T) {
	pairs := [][2]string{
		{"Zoë", "Zoe\u0308"},
		{"Björk", "Bjo\u0308rk"},
		{"Åsa", "A\u030asa"},
		{"François", "FRANCOIS"},
	}
	for _, p := range pairs {
		assert.Equal(t, Normalize(p[0]), Normalize(p[1]), "%q vs %q", p[0], p[1])
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	for _, raw := range []string{"Renée", "Дарья", "Ἀλέξανδρος", "佐藤", "O'Brien"} {
		once := Normalize(raw)
		assert.Equal(t, once, Normalize(string(once)), "raw %q", raw)
	}
}

func TestName_Helpers(t *testing.T) {
	n := Normalize("Élodie")

	r, ok := n.First()
	assert.True(t, ok)
	assert.Equal(t, 'e', r)
	assert.Equal(t, 6, n.Len())
	assert.Equal(t, []rune("elodie"), n.Runes())
	assert.False(t, n.Empty())

	var empty Name
	_, ok = empty.First()
	assert.False(t, ok)
	assert.Equal(t, 0, empty.Len())
	assert.True(t, empty.Empty())
}
