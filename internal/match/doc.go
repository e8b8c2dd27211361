// Package match ranks known type names by their similarity to a name that
// failed to resolve.
//
// Names are compared on their simple part (the text after the package path),
// normalized by NormalizeName, using a Levenshtein similarity score.
//
// Key functions:
//   - Suggest: closest candidates above MinScore, best first
//   - NormalizeName: lower-cased simple name without separators
//   - Levenshtein / Similarity: edit distance and its normalized score
package match
