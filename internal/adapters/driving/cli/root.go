// Package cli provides the cobra command tree for oddart.
package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/oddart/internal/core/ports/driven"
	"github.com/custodia-labs/oddart/internal/core/ports/driving"
	"github.com/custodia-labs/oddart/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

// Services used by the commands. Set through the Wiring hook before a
// command runs, or directly in tests.
var (
	pipelineService driving.PipelineService
	quizService     driving.QuizService
	settingsService driving.SettingsService
	inputWatcher    driven.InputWatcher
)

// GlobalOptions holds the persistent flags shared by every command.
type GlobalOptions struct {
	// ConfigDir overrides ~/.oddart.
	ConfigDir string

	// Input overrides paths.input for this invocation.
	Input string

	// Index overrides paths.index for this invocation.
	Index string

	// Verbose enables debug logging.
	Verbose bool
}

// Services is what a Wiring function produces.
type Services struct {
	Pipeline driving.PipelineService
	Quiz     driving.QuizService
	Settings driving.SettingsService
	Watcher  driven.InputWatcher

	// Close releases resources such as database handles. May be nil.
	Close func() error
}

// Wiring builds the services for the given global options.
type Wiring func(opts GlobalOptions) (*Services, error)

var (
	globalOpts GlobalOptions
	wiring     Wiring
	closer     func() error
)

var rootCmd = &cobra.Command{
	Use:   "oddart",
	Short: "Curate public-domain paintings and play Odd Art Out",
	Long: `oddart turns the Metropolitan Museum of Art open-access export into a
per-artist list of public-domain painting URLs, then quizzes you on it:
three paintings by one artist, one by another. Spot the odd one out.

Typical use:
  oddart build --input MetObjects.csv
  oddart quiz
  oddart play`,
	SilenceUsage:       true,
	PersistentPreRunE:  setup,
	PersistentPostRunE: teardown,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&globalOpts.ConfigDir, "config-dir", "", "configuration directory (default ~/.oddart)")
	flags.StringVarP(&globalOpts.Input, "input", "i", "", "object export CSV (overrides paths.input)")
	flags.StringVarP(&globalOpts.Index, "index", "o", "", "artist index file, .json or .yaml (overrides paths.index)")
	flags.BoolVarP(&globalOpts.Verbose, "verbose", "v", false, "print debug output to stderr")
}

// SetWiring registers the function that builds services once flags are parsed.
func SetWiring(w Wiring) {
	wiring = w
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// ExecuteContext runs the root command with ctx, which is cancelled on
// interrupt by the caller.
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

func setup(cmd *cobra.Command, _ []string) error {
	logger.SetVerbose(globalOpts.Verbose)

	if wiring == nil || cmd == versionCmd {
		return nil
	}

	services, err := wiring(globalOpts)
	if err != nil {
		return err
	}
	pipelineService = services.Pipeline
	quizService = services.Quiz
	settingsService = services.Settings
	inputWatcher = services.Watcher
	closer = services.Close
	return nil
}

func teardown(_ *cobra.Command, _ []string) error {
	if closer == nil {
		return nil
	}
	err := closer()
	closer = nil
	return err
}
