package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/oddart/internal/core/domain"
)

var (
	quizJSON    bool
	quizArtists bool
)

var quizCmd = &cobra.Command{
	Use:   "quiz",
	Short: "Draw one quiz answer set",
	Long: `Draws two artists from the index: three paintings by the first are the
incorrect answers, one painting by the second is the correct answer.

Set quiz.seed to make draws reproducible:
  oddart settings set quiz.seed 42`,
	Args: cobra.NoArgs,
	RunE: runQuiz,
}

func init() {
	quizCmd.Flags().BoolVar(&quizJSON, "json", false, "output the answer set as JSON")
	quizCmd.Flags().BoolVar(&quizArtists, "artists", false, "also print which artist painted each set")
	rootCmd.AddCommand(quizCmd)
}

func runQuiz(cmd *cobra.Command, _ []string) error {
	if quizService == nil {
		return errors.New("quiz service not configured")
	}

	set, err := quizService.Draw(cmd.Context())
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("%w\nRun 'oddart build' first", err)
		}
		return fmt.Errorf("draw failed: %w", err)
	}

	if quizJSON {
		return outputQuizJSON(cmd, set)
	}

	cmd.Println("Incorrect answers:")
	for _, url := range set.Incorrect {
		cmd.Printf("  %s\n", url)
	}
	cmd.Println("Correct answer:")
	cmd.Printf("  %s\n", set.Correct)

	if quizArtists {
		cmd.Println()
		cmd.Printf("Incorrect answers by %s, correct answer by %s.\n", set.IncorrectArtist, set.CorrectArtist)
	}
	return nil
}

// answerSetJSON is the --json form of an answer set.
type answerSetJSON struct {
	Incorrect       []string `json:"incorrect"`
	Correct         string   `json:"correct"`
	IncorrectArtist string   `json:"incorrect_artist,omitempty"`
	CorrectArtist   string   `json:"correct_artist,omitempty"`
}

func outputQuizJSON(cmd *cobra.Command, set *domain.AnswerSet) error {
	out := answerSetJSON{
		Incorrect: set.Incorrect,
		Correct:   set.Correct,
	}
	if quizArtists {
		out.IncorrectArtist = set.IncorrectArtist
		out.CorrectArtist = set.CorrectArtist
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal answer set: %w", err)
	}
	cmd.Println(string(data))
	return nil
}
