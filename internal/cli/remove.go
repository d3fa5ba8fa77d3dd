package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/skillman-io/skillman/internal/lifecycle"
	"github.com/skillman-io/skillman/internal/status"
)

var removeCmd = &cobra.Command{
	Use:     "remove <query>...",
	Aliases: []string{"uninstall"},
	Short:   "Remove one or more installed skills",
	Long: `Remove installed skill checkouts. Queries resolve against the catalog the
same way install does; removing a skill that is not installed is a benign
no-op, not a failure.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runRemove,
}

func init() {
	rootCmd.AddCommand(removeCmd)
}

func runRemove(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	eng := newEngine()
	bus := newBus()
	defer bus.Close()

	rep := status.NewReporter("remove", bus)
	rep.Begin()
	defer rep.End()

	var codes []status.Code
	for _, arg := range args {
		entry, err := resolveQuery(ctx, arg)
		if err != nil {
			code := status.CodeOf(err)
			codes = append(codes, code)
			fmt.Fprintf(cmd.OutOrStdout(), "  ✗ %s: %v\n", arg, err)
			rep.Failure(arg, code)
			continue
		}

		name := lifecycle.DeriveName(entry.URL)
		err = eng.Remove(ctx, entry)
		code := status.CodeOf(err)
		codes = append(codes, code)

		switch {
		case err == nil:
			fmt.Fprintf(cmd.OutOrStdout(), "  ✓ %s removed\n", name)
			rep.Success(name)
		case code.Benign():
			fmt.Fprintf(cmd.OutOrStdout(), "  - %v\n", err)
		default:
			fmt.Fprintf(cmd.OutOrStdout(), "  ✗ %s: %v\n", name, err)
			rep.Failure(name, code)
		}
	}

	if agg := status.Aggregate(codes); agg > 0 {
		return &exitError{code: agg}
	}
	return nil
}
