package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/skillman-io/skillman/internal/config"
	"github.com/skillman-io/skillman/internal/readme"
)

var infoCmd = &cobra.Command{
	Use:   "info <query|url>",
	Short: "Show a skill's README",
	Long: `Resolve a skill and print its README, probing the usual filename variants
at the repository's raw-content URL.`,
	Args: cobra.ExactArgs(1),
	RunE: runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	entry, err := resolveQuery(ctx, args[0])
	if err != nil {
		return err
	}

	content, err := readme.New(config.Mainline()).Fetch(ctx, entry.URL)
	if err != nil {
		return fmt.Errorf("fetching README for %s: %w", entry.Name, err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), content)
	return nil
}
