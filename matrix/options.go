// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for matrix construction.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Notes:
//   - No global state: every New call resolves its own Options.
//   - Options fields are unexported; public APIs consume ...Option.
package matrix

import "unicode"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultPadding is substituted for cells past the end of the source text.
	DefaultPadding = 'X'

	// DefaultFilter keeps only letters after uppercasing.
	DefaultFilter = FilterLetters
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicPaddingInvalid = "matrix: WithPadding: padding must be a printable, non-space rune"
	panicFilterInvalid  = "matrix: WithFilter: unknown filter policy"
)

// FilterPolicy selects which characters of the source text survive normalisation.
type FilterPolicy int

const (
	// FilterLetters uppercases the text and keeps only letters.
	FilterLetters FilterPolicy = iota
	// FilterNone uppercases the text and keeps every rune, punctuation and spaces included.
	FilterNone
)

// String implements fmt.Stringer.
func (p FilterPolicy) String() string {
	switch p {
	case FilterLetters:
		return "letters"
	case FilterNone:
		return "none"
	default:
		return "unknown"
	}
}

// Option mutates internal options. Safe to apply repeatedly.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	padding rune
	filter  FilterPolicy
}

// WithPadding sets the rune returned for addressable cells past the end of the source.
// Panics on a space or non-printable rune: such padding would be invisible in the ciphertext.
func WithPadding(r rune) Option {
	if !ValidPadding(r) {
		panic(panicPaddingInvalid)
	}

	return func(o *Options) { o.padding = r }
}

// ValidPadding reports whether r is acceptable to WithPadding.
func ValidPadding(r rune) bool {
	return unicode.IsPrint(r) && !unicode.IsSpace(r)
}

// WithFilter sets the normalisation policy applied to the source text.
func WithFilter(p FilterPolicy) Option {
	if p != FilterLetters && p != FilterNone {
		panic(panicFilterInvalid)
	}

	return func(o *Options) { o.filter = p }
}

// gatherOptions applies setters over the documented defaults.
func gatherOptions(opts ...Option) Options {
	o := Options{
		padding: DefaultPadding,
		filter:  DefaultFilter,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
