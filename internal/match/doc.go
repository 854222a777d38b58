// Package match provides identifier normalization and edit-distance ranking
// for property names.
//
// Key functions:
//   - NormalizeIdent: case-folds and strips separators ("order_id" -> "orderid")
//   - Levenshtein: computes edit distance between strings
//   - Suggest: ranks known property names close to an unknown one
package match
