package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// DrawRoundInput is the input schema for the draw_round tool.
type DrawRoundInput struct{}

// DrawRoundOutput is the output schema for the draw_round tool.
type DrawRoundOutput struct {
	RoundID string        `json:"round_id"`
	Choices []ChoiceOutput `json:"choices"`
}

// ChoiceOutput is one painting of a round. It never names the artist.
type ChoiceOutput struct {
	Index    int    `json:"index"`
	URL      string `json:"url"`
	Title    string `json:"title,omitempty"`
	Medium   string `json:"medium,omitempty"`
	ImageURL string `json:"image_url,omitempty"`
	AltText  string `json:"alt_text,omitempty"`
}

// AnswerInput is the input schema for the answer tool.
type AnswerInput struct {
	RoundID string `json:"round_id" jsonschema:"the round_id returned by draw_round"`
	Choice  int    `json:"choice" jsonschema:"zero-based index of the painting believed to be the odd one out"`
}

// AnswerOutput is the output schema for the answer tool.
type AnswerOutput struct {
	Correct         bool   `json:"correct"`
	CorrectChoice   int    `json:"correct_choice"`
	CorrectArtist   string `json:"correct_artist"`
	IncorrectArtist string `json:"incorrect_artist"`
}

// ListArtistsInput is the input schema for the list_artists tool.
type ListArtistsInput struct{}

// ListArtistsOutput is the output schema for the list_artists tool.
type ListArtistsOutput struct {
	Artists []ArtistOutput `json:"artists"`
	Count   int            `json:"count"`
}

// ArtistOutput is one artist of the index.
type ArtistOutput struct {
	Name      string `json:"name"`
	Paintings int    `json:"paintings"`
}

// ScoreInput is the input schema for the score tool.
type ScoreInput struct{}

// ScoreOutput is the output schema for the score tool.
type ScoreOutput struct {
	Correct   int `json:"correct"`
	Incorrect int `json:"incorrect"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "draw_round",
		Description: "Draw an Odd Art Out round: four paintings, three by one artist and one by another",
	}, s.handleDrawRound)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "answer",
		Description: "Answer a drawn round by picking the painting by the other artist",
	}, s.handleAnswer)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_artists",
		Description: "List the artists in the curated index with their painting counts",
	}, s.handleListArtists)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "score",
		Description: "Show the running quiz score",
	}, s.handleScore)
}

func (s *Server) handleDrawRound(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ DrawRoundInput,
) (*mcp.CallToolResult, DrawRoundOutput, error) {
	round, err := s.ports.Quiz.NewRound(ctx)
	if err != nil {
		return nil, DrawRoundOutput{}, err
	}
	s.keepRound(round)

	output := DrawRoundOutput{
		RoundID: round.ID,
		Choices: make([]ChoiceOutput, len(round.Choices)),
	}
	for i, c := range round.Choices {
		out := ChoiceOutput{Index: i, URL: c.URL}
		if c.Artwork != nil {
			out.Title = c.Artwork.Title
			out.Medium = c.Artwork.Medium
			out.ImageURL = c.Artwork.ImageURL
			out.AltText = c.Artwork.AltText()
		}
		output.Choices[i] = out
	}
	return nil, output, nil
}

func (s *Server) handleAnswer(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input AnswerInput,
) (*mcp.CallToolResult, AnswerOutput, error) {
	round, ok := s.takeRound(input.RoundID)
	if !ok {
		return nil, AnswerOutput{}, fmt.Errorf("%w: %q", ErrUnknownRound, input.RoundID)
	}

	outcome, err := s.ports.Quiz.Answer(ctx, round, input.Choice)
	if err != nil {
		// An out-of-range choice leaves the round answerable.
		s.keepRound(round)
		return nil, AnswerOutput{}, err
	}

	return nil, AnswerOutput{
		Correct:         outcome.Correct,
		CorrectChoice:   round.CorrectIndex(),
		CorrectArtist:   outcome.CorrectArtist,
		IncorrectArtist: outcome.IncorrectArtist,
	}, nil
}

func (s *Server) handleListArtists(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ ListArtistsInput,
) (*mcp.CallToolResult, ListArtistsOutput, error) {
	artists, err := s.ports.Quiz.Artists(ctx)
	if err != nil {
		return nil, ListArtistsOutput{}, err
	}

	output := ListArtistsOutput{
		Artists: make([]ArtistOutput, len(artists)),
		Count:   len(artists),
	}
	for i, a := range artists {
		output.Artists[i] = ArtistOutput{Name: a.Name, Paintings: a.Paintings}
	}
	return nil, output, nil
}

func (s *Server) handleScore(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ ScoreInput,
) (*mcp.CallToolResult, ScoreOutput, error) {
	score, err := s.ports.Quiz.Score(ctx)
	if err != nil {
		return nil, ScoreOutput{}, err
	}
	return nil, ScoreOutput{Correct: score.Correct, Incorrect: score.Incorrect}, nil
}
