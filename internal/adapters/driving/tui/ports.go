// Package tui provides an interactive terminal quiz for oddart.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/custodia-labs/oddart/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the TUI.
type Ports struct {
	// Quiz draws and scores rounds.
	Quiz driving.QuizService

	// Settings is optional; without it the settings view shows an error.
	Settings driving.SettingsService
}

// NewPorts creates a new Ports aggregate with the given services.
func NewPorts(quiz driving.QuizService, settings driving.SettingsService) *Ports {
	return &Ports{Quiz: quiz, Settings: settings}
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Quiz == nil {
		return ErrMissingQuizService
	}
	return nil
}
