package domain

import (
	"fmt"
	"time"
)

// Sample sizes of one quiz draw.
const (
	// IncorrectAnswerCount is the number of paintings drawn from the first artist.
	IncorrectAnswerCount = 3

	// ArtistsPerDraw is the number of distinct artists drawn per round.
	ArtistsPerDraw = 2
)

// AnswerSet is one draw from an ArtistURLIndex: three paintings by one artist
// and a single painting by another. The single painting is the correct answer,
// the odd one out.
type AnswerSet struct {
	// IncorrectArtist painted every URL in Incorrect.
	IncorrectArtist string

	// Incorrect holds IncorrectAnswerCount distinct URLs.
	Incorrect []string

	// CorrectArtist painted Correct.
	CorrectArtist string

	// Correct is the odd painting out.
	Correct string
}

// Choice is one of the four paintings shown in a round.
type Choice struct {
	// URL is the object resource URL.
	URL string

	// Correct is true for the odd painting out.
	Correct bool

	// Artwork holds fetched object metadata. Nil when not fetched.
	Artwork *Artwork
}

// Round is a playable quiz round: the answer set's URLs in shuffled order.
type Round struct {
	// ID uniquely identifies the round.
	ID string

	// Answers is the draw the round was built from.
	Answers AnswerSet

	// Choices are the shuffled paintings.
	Choices []Choice

	// CreatedAt is when the round was drawn.
	CreatedAt time.Time
}

// CorrectIndex returns the index of the correct choice, or -1.
func (r *Round) CorrectIndex() int {
	for i, c := range r.Choices {
		if c.Correct {
			return i
		}
	}
	return -1
}

// Check reports whether choice picks the odd painting out.
func (r *Round) Check(choice int) (bool, error) {
	if choice < 0 || choice >= len(r.Choices) {
		return false, fmt.Errorf("%w: %d not in [0,%d)", ErrInvalidChoice, choice, len(r.Choices))
	}
	return r.Choices[choice].Correct, nil
}

// Outcome records how a round was answered.
type Outcome struct {
	// RoundID links to the answered Round.
	RoundID string

	// Choice is the index picked by the player.
	Choice int

	// Correct is true if the player found the odd painting out.
	Correct bool

	// CorrectArtist and IncorrectArtist are the round's two artists.
	CorrectArtist   string
	IncorrectArtist string

	// AnsweredAt is when the answer was given.
	AnsweredAt time.Time
}

// Score holds running answer totals.
type Score struct {
	Correct   int
	Incorrect int
}

// Total returns the number of answered rounds.
func (s Score) Total() int {
	return s.Correct + s.Incorrect
}

// Add returns the score after counting outcome.
func (s Score) Add(outcome Outcome) Score {
	if outcome.Correct {
		s.Correct++
	} else {
		s.Incorrect++
	}
	return s
}

// CorrectLabel returns "Correct Guess" or "Correct Guesses".
func (s Score) CorrectLabel() string {
	if s.Correct > 1 {
		return "Correct Guesses"
	}
	return "Correct Guess"
}

// IncorrectLabel returns "Incorrect Guess" or "Incorrect Guesses".
func (s Score) IncorrectLabel() string {
	if s.Incorrect > 1 {
		return "Incorrect Guesses"
	}
	return "Incorrect Guess"
}
