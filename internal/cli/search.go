package cli

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/skillman-io/skillman/internal/catalog"
	"github.com/skillman-io/skillman/internal/match"
)

var searchJSON bool

var searchCmd = &cobra.Command{
	Use:   "search <query>...",
	Short: "Search the skills catalog",
	Long: `Search catalog skills by name. Multi-word queries narrow the results: every
word must appear in the skill name. Results are ordered by fuzzy relevance.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	query := strings.Join(args, " ")

	entries, err := fetchCatalog(cmd.Context())
	if err != nil {
		return err
	}

	candidates := match.Narrow(query, entries)
	if len(candidates) == 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "No skills found matching %q\n", query)
		return nil
	}

	byName := make(map[string]catalog.Entry, len(candidates))
	names := make([]string, 0, len(candidates))
	for _, c := range candidates {
		byName[c.Name] = c
		names = append(names, c.Name)
	}

	// Rank by fuzzy relevance; names the ranker drops keep their
	// original catalog order at the end.
	ranked := match.Rank(query, names)
	seen := make(map[string]bool, len(ranked))
	for _, n := range ranked {
		seen[n] = true
	}
	for _, n := range names {
		if !seen[n] {
			ranked = append(ranked, n)
		}
	}

	if searchJSON {
		out := make([]listEntry, 0, len(ranked))
		eng := newEngine()
		for _, n := range ranked {
			e := byName[n]
			out = append(out, listEntry{Name: e.Name, URL: e.URL, Installed: eng.Installed(e)})
		}
		data, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling results: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "NAME\tURL")
	for _, n := range ranked {
		fmt.Fprintf(w, "%s\t%s\n", n, byName[n].URL)
	}
	return w.Flush()
}
