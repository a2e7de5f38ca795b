package mcp

import (
	"context"

	"github.com/custodia-labs/oddart/internal/core/domain"
	"github.com/custodia-labs/oddart/internal/core/ports/driving"
)

// mockQuizService is a mock implementation of driving.QuizService.
type mockQuizService struct {
	round    *domain.Round
	artists  []driving.ArtistSummary
	index    *domain.ArtistURLIndex
	score    domain.Score
	answered []int
	err      error
}

func (m *mockQuizService) Draw(_ context.Context) (*domain.AnswerSet, error) {
	if m.err != nil {
		return nil, m.err
	}
	return &m.round.Answers, nil
}

func (m *mockQuizService) NewRound(_ context.Context) (*domain.Round, error) {
	return m.round, m.err
}

func (m *mockQuizService) Answer(_ context.Context, round *domain.Round, choice int) (*domain.Outcome, error) {
	correct, err := round.Check(choice)
	if err != nil {
		return nil, err
	}
	m.answered = append(m.answered, choice)
	return &domain.Outcome{
		RoundID:         round.ID,
		Choice:          choice,
		Correct:         correct,
		CorrectArtist:   round.Answers.CorrectArtist,
		IncorrectArtist: round.Answers.IncorrectArtist,
	}, nil
}

func (m *mockQuizService) Score(_ context.Context) (domain.Score, error) {
	return m.score, m.err
}

func (m *mockQuizService) History(_ context.Context, _ int) ([]domain.Outcome, error) {
	return nil, m.err
}

func (m *mockQuizService) ResetScore(_ context.Context) error {
	return m.err
}

func (m *mockQuizService) Index(_ context.Context) (*domain.ArtistURLIndex, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.index == nil {
		return nil, domain.ErrNotFound
	}
	return m.index, nil
}

func (m *mockQuizService) Artists(_ context.Context) ([]driving.ArtistSummary, error) {
	return m.artists, m.err
}

// testRound has the odd painting out at index 2.
func testRound(id string) *domain.Round {
	return &domain.Round{
		ID: id,
		Answers: domain.AnswerSet{
			IncorrectArtist: "Claude Monet",
			Incorrect:       []string{"u/1", "u/2", "u/3"},
			CorrectArtist:   "Edgar Degas",
			Correct:         "u/9",
		},
		Choices: []domain.Choice{
			{URL: "u/1"},
			{URL: "u/2", Artwork: &domain.Artwork{Title: "Water Lilies", Medium: "Oil on canvas", ImageURL: "img/2"}},
			{URL: "u/9", Correct: true},
			{URL: "u/3"},
		},
	}
}
