// Package styles provides colour themes and styling for the TUI.
package styles

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme is a gallery palette: gilt frames on a dark wall.
type Theme struct {
	// Gilt is the accent used for titles, the cursor and framed cards.
	Gilt lipgloss.Color

	// Verdigris is the secondary accent for subtitles and prompts.
	Verdigris lipgloss.Color

	// Wall is the background behind the status bar.
	Wall lipgloss.Color

	// Ink is the default text colour.
	Ink lipgloss.Color

	// Faded is for captions, URLs and hints.
	Faded lipgloss.Color

	// Right marks a correct answer.
	Right lipgloss.Color

	// Caution marks configuration warnings.
	Caution lipgloss.Color

	// Wrong marks a wrong answer and errors.
	Wrong lipgloss.Color

	// Frame is the border colour of unselected cards.
	Frame lipgloss.Color
}

// DefaultTheme returns the default gallery palette.
func DefaultTheme() *Theme {
	return &Theme{
		Gilt:      lipgloss.Color("#D4A84B"),
		Verdigris: lipgloss.Color("#5FA99B"),
		Wall:      lipgloss.Color("#1F1B18"),
		Ink:       lipgloss.Color("#EDE6DA"),
		Faded:     lipgloss.Color("#8C8276"),
		Right:     lipgloss.Color("#8FBF6A"),
		Caution:   lipgloss.Color("#E8C468"),
		Wrong:     lipgloss.Color("#C8553D"),
		Frame:     lipgloss.Color("#5A4E44"),
	}
}

// Styles contains pre-configured lipgloss styles.
type Styles struct {
	theme *Theme

	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Normal   lipgloss.Style
	Muted    lipgloss.Style

	// Selected highlights the row under the cursor in menus and lists.
	Selected lipgloss.Style

	Error   lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style

	// Card frames one painting of a round; CardSelected is the one under
	// the cursor.
	Card         lipgloss.Style
	CardSelected lipgloss.Style

	// Correct and Incorrect mark the reveal once a round is answered.
	Correct   lipgloss.Style
	Incorrect lipgloss.Style

	// Score renders running totals on the menu.
	Score lipgloss.Style

	// Input frames a text field being edited.
	Input lipgloss.Style

	StatusBar lipgloss.Style
	Help      lipgloss.Style
	Border    lipgloss.Style
}

// NewStyles creates styles from a theme.
func NewStyles(theme *Theme) *Styles {
	if theme == nil {
		theme = DefaultTheme()
	}

	framed := func(c lipgloss.Color) lipgloss.Style {
		return lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(c).
			Padding(0, 1)
	}

	return &Styles{
		theme: theme,

		Title:    lipgloss.NewStyle().Bold(true).Foreground(theme.Gilt),
		Subtitle: lipgloss.NewStyle().Italic(true).Foreground(theme.Verdigris),
		Normal:   lipgloss.NewStyle().Foreground(theme.Ink),
		Muted:    lipgloss.NewStyle().Foreground(theme.Faded),
		Selected: lipgloss.NewStyle().Bold(true).Foreground(theme.Gilt),

		Error:   lipgloss.NewStyle().Foreground(theme.Wrong),
		Success: lipgloss.NewStyle().Foreground(theme.Right),
		Warning: lipgloss.NewStyle().Foreground(theme.Caution),

		Card:         framed(theme.Frame),
		CardSelected: framed(theme.Gilt),

		Correct:   lipgloss.NewStyle().Bold(true).Foreground(theme.Right),
		Incorrect: lipgloss.NewStyle().Bold(true).Foreground(theme.Wrong),

		Score: lipgloss.NewStyle().Foreground(theme.Verdigris),
		Input: framed(theme.Verdigris),

		StatusBar: lipgloss.NewStyle().
			Foreground(theme.Faded).
			Background(theme.Wall).
			Padding(0, 1),
		Help: lipgloss.NewStyle().Foreground(theme.Faded),
		Border: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(theme.Frame),
	}
}

// DefaultStyles returns styles with the default theme.
func DefaultStyles() *Styles {
	return NewStyles(DefaultTheme())
}

// Theme returns the theme used by these styles.
func (s *Styles) Theme() *Theme {
	return s.theme
}
