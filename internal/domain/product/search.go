// internal/domain/product/search.go
package product

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// foldTransformer decomposes to NFD and drops combining marks, so that
// "Áo" and "ao" compare equal.
var foldTransformer = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize strips diacritics and lower-cases a string for matching
func Normalize(s string) string {
	folded, _, err := transform.String(foldTransformer, s)
	if err != nil {
		// Fall back to case folding only; a failed transform must not
		// break search.
		return strings.ToLower(s)
	}
	return strings.ToLower(folded)
}

// Search filters products whose normalized name or description contains
// the normalized query as a substring. It is a pure function over
// already-fetched data; an empty query returns the input unchanged.
func Search(query string, products []Product) []Product {
	if query == "" {
		return products
	}

	normalizedQuery := Normalize(query)

	results := make([]Product, 0, len(products))
	for _, p := range products {
		if strings.Contains(Normalize(p.Name), normalizedQuery) ||
			strings.Contains(Normalize(p.Description), normalizedQuery) {
			results = append(results, p)
		}
	}
	return results
}
