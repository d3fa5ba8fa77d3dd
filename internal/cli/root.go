package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"github.com/skillman-io/skillman/internal/branding"
	"github.com/skillman-io/skillman/internal/catalog"
	"github.com/skillman-io/skillman/internal/config"
	"github.com/skillman-io/skillman/internal/lifecycle"
	"github.com/skillman-io/skillman/internal/logging"
	"github.com/skillman-io/skillman/internal/match"
	"github.com/skillman-io/skillman/internal/notify"
	"github.com/skillman-io/skillman/internal/status"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string

	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` resolves skill names against the published skills catalog and
manages the lifecycle of local git-backed skill checkouts: install, remove,
search, and concurrent bulk update.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.Setup(verbose)
		config.Load()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}

// Execute runs the root command with build info injected via ldflags and
// returns the process exit code.
func Execute(version, commit, date string) int {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	err := rootCmd.Execute()
	if err == nil {
		return 0
	}

	var ee *exitError
	if errors.As(err, &ee) {
		// Bulk commands print their own per-item diagnostics.
		return ee.code
	}

	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	code := status.CodeOf(err)
	if s := code.Severity(); s > 0 {
		return s
	}
	if code.Benign() && code != status.OK {
		return 0
	}
	return 1
}

// exitError carries an already-reported aggregate exit code out of a bulk
// command without triggering the generic error printer.
type exitError struct {
	code int
}

func (e *exitError) Error() string {
	return fmt.Sprintf("exit code %d", e.code)
}

// catalogOnce holds the process-wide catalog client: one fetch per
// invocation, shared by every command that needs the snapshot.
var (
	catalogOnce   sync.Once
	catalogClient *catalog.Client
)

func fetchCatalog(ctx context.Context) ([]catalog.Entry, error) {
	catalogOnce.Do(func() {
		catalogClient = catalog.NewClient(config.ManifestURL())
	})
	return catalogClient.Fetch(ctx)
}

// isRepoURL reports whether the argument is a raw repository URL rather
// than a catalog query. URL-form input bypasses the matcher entirely.
func isRepoURL(s string) bool {
	return strings.Contains(s, "://") || strings.HasPrefix(s, "git@")
}

// resolveQuery turns one user argument into exactly one catalog entry, or
// a coded error. Ambiguity lists every candidate rather than guessing.
func resolveQuery(ctx context.Context, query string) (catalog.Entry, error) {
	if isRepoURL(query) {
		return lifecycle.EntryFromURL(query), nil
	}

	entries, err := fetchCatalog(ctx)
	if err != nil {
		return catalog.Entry{}, err
	}

	result := match.Match(query, entries)
	switch result.Kind {
	case match.Unique:
		return result.Entry, nil
	case match.Ambiguous:
		names := make([]string, 0, len(result.Candidates))
		for _, c := range result.Candidates {
			names = append(names, c.Name)
		}
		return catalog.Entry{}, status.Errorf(status.AmbiguousMatch,
			"%q matches multiple skills: %s", query, strings.Join(names, ", "))
	default:
		return catalog.Entry{}, status.Errorf(status.NotFound, "no skill matches %q", query)
	}
}

// newEngine builds the lifecycle engine from configuration.
func newEngine() *lifecycle.Engine {
	return lifecycle.New(config.SkillsDir(), config.Python(), logging.New(os.Stderr, "lifecycle"))
}

// newBus connects the notification collaborator; an unset bus_url yields
// a no-op emitter.
func newBus() notify.Notifier {
	return notify.NewBus(config.BusURL(), logging.New(os.Stderr, "notify"))
}
