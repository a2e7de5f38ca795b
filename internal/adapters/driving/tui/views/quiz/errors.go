package quiz

import "errors"

// Error definitions for the quiz view.
var (
	// ErrNoQuizService indicates that no quiz service was provided.
	ErrNoQuizService = errors.New("quiz service is required")
)
