// Package match resolves free-text queries against a catalog snapshot.
// Resolution is pure: it never touches the filesystem or network. An exact
// name match (case-insensitive) wins outright; otherwise the query is
// tokenized on whitespace and entries must contain every token. Ambiguity
// is surfaced, never guessed away.
package match
