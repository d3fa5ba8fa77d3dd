package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/skillman-io/skillman/internal/lifecycle"
	"github.com/skillman-io/skillman/internal/status"
)

var installCmd = &cobra.Command{
	Use:   "install <query|url>...",
	Short: "Install one or more skills",
	Long: `Install skills by catalog name, free-text query, or raw repository URL.

Queries resolve against the published catalog; an ambiguous query lists all
candidates instead of guessing. Raw URLs are cloned directly without a
catalog lookup. Items are processed in order and individual failures never
abort the rest; the process exits with the worst per-item code.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runInstall,
}

func init() {
	rootCmd.AddCommand(installCmd)
}

func runInstall(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	eng := newEngine()
	bus := newBus()
	defer bus.Close()

	rep := status.NewReporter("install", bus)
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
		err = eng.Install(ctx, entry)
		code := status.CodeOf(err)
		codes = append(codes, code)

		switch {
		case err == nil:
			fmt.Fprintf(cmd.OutOrStdout(), "  ✓ %s installed\n", name)
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
