package entities

import "strings"

// CardRecord is a normalized in-memory representation of one external
// catalog entry. Name is already resolved from the catalog's possibly
// multilingual name field; records without a resolvable name never leave
// the extraction boundary. Optional fields are empty strings when absent.
type CardRecord struct {
	ID        string
	Name      string
	Type      string
	Alignment string
	Set       string
}

// NormalizeName converts a name to lowercase for case-insensitive matching.
// Normalization is intentionally weak: no accent stripping, no punctuation
// removal. Matching robustness comes from the fuzzy step.
func NormalizeName(name string) string {
	return strings.ToLower(name)
}

// StripSpaces removes space characters, producing the second index key
// derived from a normalized name.
func StripSpaces(name string) string {
	return strings.ReplaceAll(name, " ", "")
}
