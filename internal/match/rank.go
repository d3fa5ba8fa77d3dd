package match

import "github.com/sahilm/fuzzy"

// source adapts a catalog slice to the fuzzy matcher.
type source []string

func (s source) String(i int) string { return s[i] }
func (s source) Len() int            { return len(s) }

// Rank orders the given names by fuzzy relevance to query, best first.
// Names that do not fuzzy-match at all are dropped. An empty query returns
// the input unchanged.
func Rank(query string, names []string) []string {
	if query == "" {
		return names
	}
	results := fuzzy.FindFrom(query, source(names))
	out := make([]string, 0, len(results))
	for _, r := range results {
		out = append(out, names[r.Index])
	}
	return out
}
