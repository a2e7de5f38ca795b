package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var scoreRecent int

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Show quiz score",
	Long:  `Shows the running totals of rounds answered in 'oddart play'.`,
	Args:  cobra.NoArgs,
	RunE:  runScoreShow,
}

var scoreResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Clear the quiz score",
	Args:  cobra.NoArgs,
	RunE:  runScoreReset,
}

func init() {
	scoreCmd.Flags().IntVarP(&scoreRecent, "recent", "n", 0, "also list the N most recent answers")
	scoreCmd.AddCommand(scoreResetCmd)
	rootCmd.AddCommand(scoreCmd)
}

func runScoreShow(cmd *cobra.Command, _ []string) error {
	if quizService == nil {
		return errors.New("quiz service not configured")
	}

	score, err := quizService.Score(cmd.Context())
	if err != nil {
		return fmt.Errorf("reading score: %w", err)
	}

	cmd.Printf("%s: %d\n", score.CorrectLabel(), score.Correct)
	cmd.Printf("%s: %d\n", score.IncorrectLabel(), score.Incorrect)

	if scoreRecent <= 0 {
		return nil
	}

	history, err := quizService.History(cmd.Context(), scoreRecent)
	if err != nil {
		return fmt.Errorf("reading history: %w", err)
	}
	if len(history) == 0 {
		return nil
	}

	cmd.Println()
	cmd.Println("Recent answers:")
	for _, o := range history {
		mark := "wrong"
		if o.Correct {
			mark = "right"
		}
		cmd.Printf("  %s  %-5s  %s among %s\n",
			o.AnsweredAt.Local().Format("2006-01-02 15:04"), mark, o.CorrectArtist, o.IncorrectArtist)
	}
	return nil
}

func runScoreReset(cmd *cobra.Command, _ []string) error {
	if quizService == nil {
		return errors.New("quiz service not configured")
	}

	if err := quizService.ResetScore(cmd.Context()); err != nil {
		return fmt.Errorf("resetting score: %w", err)
	}
	cmd.Println("Score cleared.")
	return nil
}
