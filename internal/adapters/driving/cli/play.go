package cli

import (
	"errors"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/oddart/internal/adapters/driving/tui"
)

// isTerminal reports whether stdin is interactive. Replaced in tests.
var isTerminal = func() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Odd Art Out in the terminal",
	Long: `Starts the interactive quiz. Each round shows four paintings: three by one
artist and one by another. Pick the odd one out.

Run 'oddart build' first to create the artist index.`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	rootCmd.AddCommand(playCmd)
}

func runPlay(cmd *cobra.Command, _ []string) error {
	if quizService == nil {
		return errors.New("quiz service not configured")
	}
	if !isTerminal() {
		return tui.ErrNotTerminal
	}

	app, err := tui.NewApp(tui.NewPorts(quizService, settingsService))
	if err != nil {
		return err
	}
	return app.WithContext(cmd.Context()).Run()
}
