package postgres

import (
	"fmt"
	"strings"
)

func placeholder(n int) string {
	return fmt.Sprintf("$%d", n)
}

// searchPattern turns free text into an ILIKE pattern for case-insensitive
// substring matching. Empty or whitespace-only input applies no filter.
func searchPattern(search string) (string, bool) {
	trimmed := strings.TrimSpace(search)
	if trimmed == "" {
		return "", false
	}
	escaped := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(trimmed)
	return "%" + escaped + "%", true
}

func paginationClause(params *[]any, limit, offset int) string {
	*params = append(*params, limit)
	clause := ` LIMIT ` + placeholder(len(*params))
	*params = append(*params, offset)
	clause += ` OFFSET ` + placeholder(len(*params))
	return clause
}
