package match

import (
	"strings"
)

// NormalizeIdent normalizes an identifier for fuzzy matching:
// separators (_, -, spaces) are stripped and the result is case-folded to lower.
//
//	"OrderID" -> "orderid", "order_id" -> "orderid", "Order-Id" -> "orderid"
func NormalizeIdent(s string) string {
	return strings.ToLower(StripSeparators(s))
}

// StripSeparators removes common separators from a string, keeping case.
// It maps snake_case column names onto camelCase property names:
// "total_cents" -> "totalcents", which a case-insensitive lookup then resolves to "totalCents".
func StripSeparators(s string) string {
	if !strings.ContainsFunc(s, isSeparator) {
		return s
	}

	var result strings.Builder

	result.Grow(len(s))

	for _, r := range s {
		if !isSeparator(r) {
			result.WriteRune(r)
		}
	}

	return result.String()
}

// isSeparator returns true if the rune is a common separator.
func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == ' '
}
