// Package normalize reduces raw names to a canonical sequence of letters.
//
// The pipeline runs in this order:
//  1. Drop invalid UTF-8 bytes
//  2. NFKD decomposition (compatibility forms and accents split apart)
//  3. Unicode case folding
//  4. Keep only code points in the Unicode letter categories (any script)
//  5. NFC recomposition
package normalize

import (
	"strings"
	"sync"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Name is a normalized name: case-folded letters only, no marks,
// whitespace, digits or punctuation. The zero value is the empty name.
type Name string

// Runes returns the letters of the name as code points.
func (n Name) Runes() []rune {
	return []rune(string(n))
}

// Len returns the number of letters in the name.
func (n Name) Len() int {
	return len([]rune(string(n)))
}

// Empty reports whether no letters survived normalization.
func (n Name) Empty() bool {
	return n == ""
}

// First returns the first letter of the name. ok is false for the empty name.
func (n Name) First() (r rune, ok bool) {
	for _, r := range string(n) {
		return r, true
	}
	return 0, false
}

// Transformer chains are stateful, so each call takes its own from the pool.
var chainPool = sync.Pool{
	New: func() any {
		return transform.Chain(
			norm.NFKD,
			cases.Fold(),
			runes.Remove(runes.NotIn(unicode.L)),
			norm.NFC,
		)
	},
}

// Normalize returns the canonical letter sequence of raw. The result may be
// empty when raw contains no letters; callers decide whether that is an error.
func Normalize(raw string) Name {
	if raw == "" {
		return ""
	}

	raw = strings.ToValidUTF8(raw, "")

	tr := chainPool.Get().(transform.Transformer)
	out, _, _ := transform.String(tr, raw)
	tr.Reset()
	chainPool.Put(tr)

	return Name(out)
}
