package cli

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var listJSON bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List catalog skills and their install state",
	RunE:  runList,
}

func init() {
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(listCmd)
}

// listEntry represents one catalog skill for display.
type listEntry struct {
	Name      string `json:"name"`
	URL       string `json:"url"`
	Installed bool   `json:"installed"`
}

func runList(cmd *cobra.Command, args []string) error {
	entries, err := fetchCatalog(cmd.Context())
	if err != nil {
		return err
	}

	eng := newEngine()
	out := make([]listEntry, 0, len(entries))
	for _, e := range entries {
		out = append(out, listEntry{
			Name:      e.Name,
			URL:       e.URL,
			Installed: eng.Installed(e),
		})
	}

	if listJSON {
		data, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling list: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "NAME\tSTATUS\tURL")
	for _, e := range out {
		state := "-"
		if e.Installed {
			state = "installed"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", e.Name, state, e.URL)
	}
	return w.Flush()
}
