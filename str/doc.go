// Package str provides string normalization helpers.
//
// # Normalization
//
// [Normalize] makes strings that render the same compare equal with ==. It
// folds typographic quotes, the Unicode initial and final punctuation
// categories, into a plain apostrophe and then applies Unicode Normalization
// Form C, so a precomposed "é" and an "e" followed by a combining acute
// accent become the same bytes:
//
//	str.Normalize("\u201cit\u2019s\u201d")        // → "'it's'"
//	str.Normalize("Ame\u0301lie") == "Am\u00e9lie" // true
//
// Normalization is idempotent: Normalize(Normalize(s)) == Normalize(s).
package str
