package mcp

import (
	"github.com/custodia-labs/oddart/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
type Ports struct {
	// Quiz draws and scores rounds.
	Quiz driving.QuizService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Quiz == nil {
		return ErrMissingQuizService
	}
	return nil
}
