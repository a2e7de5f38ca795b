// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/custodia-labs/oddart/internal/core/domain"
	"github.com/custodia-labs/oddart/internal/core/ports/driving"
)

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewMenu is the main navigation menu.
	ViewMenu ViewType = iota
	// ViewQuiz plays Odd Art Out rounds.
	ViewQuiz
	// ViewArtists lists the artists of the index.
	ViewArtists
	// ViewSettings edits curation and quiz settings.
	ViewSettings
	// ViewHelp is the help/keybindings view.
	ViewHelp
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewMenu:
		return "menu"
	case ViewQuiz:
		return "quiz"
	case ViewArtists:
		return "artists"
	case ViewSettings:
		return "settings"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}

// RoundLoaded carries a freshly drawn round.
type RoundLoaded struct {
	Round *domain.Round
	Err   error
}

// AnswerChecked carries the outcome of answering a round.
type AnswerChecked struct {
	Outcome *domain.Outcome
	Err     error
}

// ScoreLoaded carries the stored running totals.
type ScoreLoaded struct {
	Score domain.Score
	Err   error
}

// ArtistsLoaded carries the artists of the index.
type ArtistsLoaded struct {
	Artists []driving.ArtistSummary
	Err     error
}

// SettingsLoaded carries the current application settings.
type SettingsLoaded struct {
	Settings *domain.AppSettings
	Err      error
}

// SettingsSaved reports the result of changing one setting.
type SettingsSaved struct {
	Key string
	Err error
}
