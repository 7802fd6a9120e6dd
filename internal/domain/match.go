package domain

import "strings"

// NameMatches reports whether name contains search, ignoring case. An empty
// search matches everything. Plain substring containment, not tokenized.
func NameMatches(name, search string) bool {
	search = strings.TrimSpace(search)
	if search == "" {
		return true
	}
	return strings.Contains(strings.ToLower(name), strings.ToLower(search))
}
