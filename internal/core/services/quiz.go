package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/oddart/internal/core/domain"
	"github.com/custodia-labs/oddart/internal/core/ports/driven"
	"github.com/custodia-labs/oddart/internal/core/ports/driving"
	"github.com/custodia-labs/oddart/internal/logger"
)

// Ensure QuizService implements the interface.
var _ driving.QuizService = (*QuizService)(nil)

// QuizService draws rounds from the stored artist index and keeps score.
type QuizService struct {
	// mu guards sampler, which is not safe for concurrent use.
	mu      sync.Mutex
	sampler *AnswerSampler

	store   driven.IndexStore
	fetcher driven.ArtworkFetcher
	scores  driven.ScoreStore

	now   func() time.Time
	newID func() string
}

// NewQuizService creates a new quiz service.
// The fetcher and score store are optional and set separately.
func NewQuizService(store driven.IndexStore, sampler *AnswerSampler) *QuizService {
	return &QuizService{
		sampler: sampler,
		store:   store,
		now:     time.Now,
		newID:   uuid.NewString,
	}
}

// SetArtworkFetcher enables artwork metadata on new rounds.
func (s *QuizService) SetArtworkFetcher(fetcher driven.ArtworkFetcher) {
	s.fetcher = fetcher
}

// SetScoreStore enables answer history.
func (s *QuizService) SetScoreStore(store driven.ScoreStore) {
	s.scores = store
}

func (s *QuizService) loadIndex(ctx context.Context) (*domain.ArtistURLIndex, error) {
	if s.store == nil {
		return nil, errors.New("index store not configured")
	}
	index, err := s.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading artist index: %w", err)
	}
	return index, nil
}

// Draw samples an answer set from the stored index.
func (s *QuizService) Draw(ctx context.Context) (*domain.AnswerSet, error) {
	index, err := s.loadIndex(ctx)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sampler.Sample(index)
}

// NewRound draws an answer set and shuffles its four paintings.
// Artwork fetch failures are logged and the round is returned without
// metadata.
func (s *QuizService) NewRound(ctx context.Context) (*domain.Round, error) {
	answers, err := s.Draw(ctx)
	if err != nil {
		return nil, err
	}

	choices := make([]domain.Choice, 0, len(answers.Incorrect)+1)
	choices = append(choices, domain.Choice{URL: answers.Correct, Correct: true})
	for _, url := range answers.Incorrect {
		choices = append(choices, domain.Choice{URL: url})
	}

	s.mu.Lock()
	s.sampler.Shuffle(len(choices), func(i, j int) {
		choices[i], choices[j] = choices[j], choices[i]
	})
	s.mu.Unlock()

	round := &domain.Round{
		ID:        s.newID(),
		Answers:   *answers,
		Choices:   choices,
		CreatedAt: s.now(),
	}

	if s.fetcher != nil {
		urls := make([]string, len(choices))
		for i, c := range choices {
			urls[i] = c.URL
		}
		artworks, err := s.fetcher.FetchAll(ctx, urls)
		if err != nil {
			logger.Warn("Fetching artwork for round %s: %v", round.ID, err)
		} else {
			for i := range round.Choices {
				round.Choices[i].Artwork = artworks[i]
			}
		}
	}

	logger.Debug("Round %s: odd one out by %s among %s", round.ID, answers.CorrectArtist, answers.IncorrectArtist)
	return round, nil
}

// Answer checks a choice and records the outcome when a score store is set.
func (s *QuizService) Answer(ctx context.Context, round *domain.Round, choice int) (*domain.Outcome, error) {
	if round == nil {
		return nil, fmt.Errorf("%w: no round", domain.ErrInvalidInput)
	}
	correct, err := round.Check(choice)
	if err != nil {
		return nil, err
	}

	outcome := &domain.Outcome{
		RoundID:         round.ID,
		Choice:          choice,
		Correct:         correct,
		CorrectArtist:   round.Answers.CorrectArtist,
		IncorrectArtist: round.Answers.IncorrectArtist,
		AnsweredAt:      s.now(),
	}

	if s.scores != nil {
		if err := s.scores.Record(ctx, *outcome); err != nil {
			return nil, fmt.Errorf("recording outcome: %w", err)
		}
	}
	return outcome, nil
}

// Score returns running totals. Without a score store it is always zero.
func (s *QuizService) Score(ctx context.Context) (domain.Score, error) {
	if s.scores == nil {
		return domain.Score{}, nil
	}
	return s.scores.Totals(ctx)
}

// History returns recent outcomes, newest first. Without a score store it
// is always empty.
func (s *QuizService) History(ctx context.Context, limit int) ([]domain.Outcome, error) {
	if s.scores == nil {
		return nil, nil
	}
	return s.scores.Recent(ctx, limit)
}

// ResetScore clears answer history.
func (s *QuizService) ResetScore(ctx context.Context) error {
	if s.scores == nil {
		return nil
	}
	return s.scores.Reset(ctx)
}

// Index returns the stored artist URL index.
func (s *QuizService) Index(ctx context.Context) (*domain.ArtistURLIndex, error) {
	return s.loadIndex(ctx)
}

// Artists lists the artists of the stored index with their painting counts.
func (s *QuizService) Artists(ctx context.Context) ([]driving.ArtistSummary, error) {
	index, err := s.loadIndex(ctx)
	if err != nil {
		return nil, err
	}

	artists := index.Artists()
	summaries := make([]driving.ArtistSummary, len(artists))
	for i, name := range artists {
		urls, _ := index.URLs(name)
		summaries[i] = driving.ArtistSummary{Name: name, Paintings: len(urls)}
	}
	return summaries, nil
}
