package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/skillman-io/skillman/internal/config"
	"github.com/skillman-io/skillman/internal/lifecycle"
	"github.com/skillman-io/skillman/internal/status"
)

var defaultCmd = &cobra.Command{
	Use:   "default",
	Short: "Install the default skill set",
	Long: `Install every skill named by the default_skills configuration key. Skills
that are already installed are skipped; failures are collected and reported
at the end without aborting the rest.`,
	Args: cobra.NoArgs,
	RunE: runDefault,
}

func init() {
	rootCmd.AddCommand(defaultCmd)
}

func runDefault(cmd *cobra.Command, args []string) error {
	names := config.DefaultSkills()
	if len(names) == 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "No default skills configured. Set %q in %s.\n",
			config.KeyDefaultSkills, config.FilePath())
		return nil
	}

	ctx := cmd.Context()
	eng := newEngine()
	bus := newBus()
	defer bus.Close()

	rep := status.NewReporter("install", bus)
	rep.Begin()
	defer rep.End()

	// Failures are an explicit collected list, not side-channel state.
	var failed []string
	var codes []status.Code
	installed := 0

	for _, name := range names {
		entry, err := resolveQuery(ctx, name)
		if err != nil {
			code := status.CodeOf(err)
			codes = append(codes, code)
			failed = append(failed, name)
			fmt.Fprintf(cmd.OutOrStdout(), "  ✗ %s: %v\n", name, err)
			rep.Failure(name, code)
			continue
		}

		err = eng.Install(ctx, entry)
		code := status.CodeOf(err)
		codes = append(codes, code)

		skill := lifecycle.DeriveName(entry.URL)
		switch {
		case err == nil:
			installed++
			fmt.Fprintf(cmd.OutOrStdout(), "  ✓ %s installed\n", skill)
			rep.Success(skill)
		case code.Benign():
			fmt.Fprintf(cmd.OutOrStdout(), "  - %v\n", err)
		default:
			failed = append(failed, skill)
			fmt.Fprintf(cmd.OutOrStdout(), "  ✗ %s: %v\n", skill, err)
			rep.Failure(skill, code)
		}
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Installed %d of %d default skills.\n", installed, len(names))
	if len(failed) > 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "Failed: %v\n", failed)
	}

	if agg := status.Aggregate(codes); agg > 0 {
		return &exitError{code: agg}
	}
	return nil
}
