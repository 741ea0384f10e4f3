package record

import (
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Filter returns the records whose product name contains query, in their
// original order. Matching is exact: case-sensitive and untrimmed. An empty
// query keeps every record.
func Filter(records []Record, query string) []Record {
	if query == "" {
		return Clone(records)
	}
	filtered := make([]Record, 0, len(records))
	for _, r := range records {
		if strings.Contains(r.ProductName, query) {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

// Suggest ranks product names loosely resembling query. It only feeds the
// "no matching product" hint and never widens Filter.
func Suggest(records []Record, query string, limit int) []string {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" || limit <= 0 || len(records) == 0 {
		return nil
	}
	names := make([]string, len(records))
	for i, r := range records {
		names[i] = r.ProductName
	}
	ranks := fuzzy.RankFindNormalizedFold(trimmed, names)
	if len(ranks) == 0 {
		return nil
	}
	// stable by distance, then server order
	for i := 1; i < len(ranks); i++ {
		for j := i; j > 0 && less(ranks[j], ranks[j-1]); j-- {
			ranks[j], ranks[j-1] = ranks[j-1], ranks[j]
		}
	}
	seen := make(map[string]struct{}, limit)
	out := make([]string, 0, limit)
	for _, rank := range ranks {
		if _, dup := seen[rank.Target]; dup {
			continue
		}
		seen[rank.Target] = struct{}{}
		out = append(out, rank.Target)
		if len(out) == limit {
			break
		}
	}
	return out
}

func less(a, b fuzzy.Rank) bool {
	if a.Distance != b.Distance {
		return a.Distance < b.Distance
	}
	return a.OriginalIndex < b.OriginalIndex
}
