package match

import (
	"sort"
	"strings"

	"golang.org/x/text/cases"

	"github.com/skillman-io/skillman/internal/catalog"
)

// Kind classifies a match result.
type Kind int

const (
	// NotFound means no catalog entry matched the query.
	NotFound Kind = iota
	// Unique means exactly one entry matched.
	Unique
	// Ambiguous means multiple entries matched and the caller must not guess.
	Ambiguous
)

// Result is the outcome of resolving one query. Entry is set for Unique;
// Candidates (sorted by name) is set for Ambiguous.
type Result struct {
	Kind       Kind
	Entry      catalog.Entry
	Candidates []catalog.Entry
}

// fold case-folds s for comparison. A fresh Caser per call keeps matching
// safe under concurrent use; Casers themselves are stateful.
func fold(s string) string {
	return cases.Fold().String(s)
}

// Match resolves query against the catalog snapshot.
//
// An exact case-insensitive name match short-circuits: if exactly one
// entry's name equals the query, that entry wins regardless of other
// substring matches. Otherwise the query is split on whitespace and the
// candidate set is narrowed to entries whose name contains every token.
func Match(query string, entries []catalog.Entry) Result {
	q := fold(strings.TrimSpace(query))
	if q == "" {
		return Result{Kind: NotFound}
	}

	var exact []catalog.Entry
	for _, e := range entries {
		if fold(e.Name) == q {
			exact = append(exact, e)
		}
	}
	if len(exact) == 1 {
		return Result{Kind: Unique, Entry: exact[0]}
	}

	candidates := Narrow(query, entries)
	switch len(candidates) {
	case 0:
		return Result{Kind: NotFound}
	case 1:
		return Result{Kind: Unique, Entry: candidates[0]}
	default:
		sort.Slice(candidates, func(i, j int) bool {
			return candidates[i].Name < candidates[j].Name
		})
		return Result{Kind: Ambiguous, Candidates: candidates}
	}
}

// Narrow returns the entries whose name contains every whitespace-separated
// token of query. Adding tokens can only shrink or preserve the result.
func Narrow(query string, entries []catalog.Entry) []catalog.Entry {
	tokens := strings.Fields(fold(query))
	if len(tokens) == 0 {
		return nil
	}

	var out []catalog.Entry
	for _, e := range entries {
		name := fold(e.Name)
		all := true
		for _, tok := range tokens {
			if !strings.Contains(name, tok) {
				all = false
				break
			}
		}
		if all {
			out = append(out, e)
		}
	}
	return out
}
