package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/skillman-io/skillman/internal/config"
	"github.com/skillman-io/skillman/internal/logging"
	"github.com/skillman-io/skillman/internal/status"
	"github.com/skillman-io/skillman/internal/update"
)

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update all installed skills",
	Long: `Update every installed skill concurrently. A checkout is only advanced when
it sits on the mainline branch, has no local modifications to tracked files,
is not ahead of its upstream, and uses a non-interactive remote; anything
else is skipped, never force-updated.`,
	Args: cobra.NoArgs,
	RunE: runUpdate,
}

func init() {
	rootCmd.AddCommand(updateCmd)
}

func runUpdate(cmd *cobra.Command, args []string) error {
	bus := newBus()
	defer bus.Close()

	rep := status.NewReporter("update", bus)
	rep.Begin()
	defer rep.End()

	orch := &update.Orchestrator{
		Root:        config.SkillsDir(),
		Mainline:    config.Mainline(),
		Concurrency: config.UpdateConcurrency(),
		Engine:      newEngine(),
		Log:         logging.New(os.Stderr, "update"),
	}

	results, err := orch.UpdateAll(cmd.Context())
	if err != nil {
		return status.Errorf(status.UpdateFailed, "scanning %s: %v", orch.Root, err)
	}
	if len(results) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No skills installed.")
		return nil
	}

	for _, r := range results {
		switch r.Outcome {
		case update.Updated:
			fmt.Fprintf(cmd.OutOrStdout(), "  ✓ %s updated\n", r.Name)
			rep.Success(r.Name)
		case update.Unchanged:
			fmt.Fprintf(cmd.OutOrStdout(), "  ✓ %s already up to date\n", r.Name)
		case update.Skipped:
			fmt.Fprintf(cmd.OutOrStdout(), "  - %s skipped: %s\n", r.Name, r.Reason)
		case update.Failed:
			fmt.Fprintf(cmd.OutOrStdout(), "  ✗ %s: %s\n", r.Name, r.Reason)
			rep.Failure(r.Name, r.Code)
		}
	}

	if agg := update.ExitCode(results); agg > 0 {
		return &exitError{code: agg}
	}
	return nil
}
