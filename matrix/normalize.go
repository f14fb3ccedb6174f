// SPDX-License-Identifier: MIT

package matrix

import (
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Normalize uppercases text and applies the filter policy, returning the
// runes that will populate the matrix in row-major order.
// Uppercasing is full Unicode case mapping, so "ß" becomes "SS".
// A Caser is not safe for concurrent use, so one is built per call.
// Complexity: O(len(text)).
func Normalize(text string, policy FilterPolicy) []rune {
	upper := cases.Upper(language.Und).String(text)

	out := make([]rune, 0, len(upper))
	for _, r := range upper {
		if policy == FilterLetters && !unicode.IsLetter(r) {
			continue
		}
		out = append(out, r)
	}

	return out
}
