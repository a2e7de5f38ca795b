package tui

import "errors"

// ErrMissingQuizService is returned when the quiz service is not provided.
var ErrMissingQuizService = errors.New("tui: quiz service is required")

// ErrNotTerminal is returned when the TUI is started without an interactive
// terminal.
var ErrNotTerminal = errors.New("tui: stdin is not a terminal")
