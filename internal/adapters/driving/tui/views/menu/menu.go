// Package menu provides the main navigation menu view for the TUI.
package menu

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/oddart/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/oddart/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/oddart/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/oddart/internal/core/domain"
)

const tagline = "Odd Art Out: spot the painting by a different artist"

// Item represents a single menu option.
type Item struct {
	Label string
	Hint  string
	View  messages.ViewType
	Quit  bool
}

// DefaultItems returns the menu entries in display order.
func DefaultItems() []Item {
	return []Item{
		{Label: "Play", Hint: "four paintings, one odd one out", View: messages.ViewQuiz},
		{Label: "Artists", Hint: "who made it into the index", View: messages.ViewArtists},
		{Label: "Settings", Hint: "curation and quiz options", View: messages.ViewSettings},
		{Label: "Help", View: messages.ViewHelp},
		{Label: "Quit", Quit: true},
	}
}

// View is the main menu. It also shows the all-time score once one is known.
type View struct {
	styles *styles.Styles
	keymap *keymap.KeyMap
	items  []Item

	selected int
	score    domain.Score

	width  int
	height int
	ready  bool
}

// NewView creates a new menu view.
func NewView(s *styles.Styles, km *keymap.KeyMap) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &View{
		styles: s,
		keymap: km,
		items:  DefaultItems(),
		width:  80,
		height: 24,
	}
}

// Init initialises the menu view.
func (v *View) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case messages.ScoreLoaded:
		if msg.Err == nil {
			v.score = msg.Score
		}
		return v, nil

	case tea.KeyMsg:
		keyStr := msg.String()
		switch {
		case keymap.Matches(keyStr, v.keymap.Up):
			if v.selected > 0 {
				v.selected--
			}
		case keymap.Matches(keyStr, v.keymap.Down):
			if v.selected < len(v.items)-1 {
				v.selected++
			}
		case keymap.Matches(keyStr, v.keymap.Select):
			item := v.items[v.selected]
			if item.Quit {
				return v, tea.Quit
			}
			return v, func() tea.Msg {
				return messages.ViewChanged{View: item.View}
			}
		case keymap.Matches(keyStr, v.keymap.Quit):
			return v, tea.Quit
		}
	}

	return v, nil
}

// View renders the menu.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	var b strings.Builder

	b.WriteString(v.styles.Title.Render("oddart"))
	b.WriteString("\n")
	b.WriteString(v.styles.Subtitle.Render(tagline))
	b.WriteString("\n\n")

	width := 0
	for _, item := range v.items {
		width = max(width, len(item.Label))
	}

	for i, item := range v.items {
		label := fmt.Sprintf("%-*s", width, item.Label)
		if i == v.selected {
			b.WriteString(v.styles.Selected.Render("> " + label))
		} else {
			b.WriteString(v.styles.Normal.Render("  " + label))
		}
		if item.Hint != "" {
			b.WriteString("   ")
			b.WriteString(v.styles.Muted.Render(item.Hint))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(v.styles.Score.Render(scoreLine(v.score)))
	b.WriteString("\n\n")
	b.WriteString(v.styles.Help.Render("[j/k] navigate  [enter] select  [q] quit"))

	return b.String()
}

func scoreLine(s domain.Score) string {
	if s.Total() == 0 {
		return "No rounds played yet"
	}
	return fmt.Sprintf("All time: %d %s, %d %s",
		s.Correct, s.CorrectLabel(), s.Incorrect, s.IncorrectLabel())
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

// Selected returns the currently selected index.
func (v *View) Selected() int {
	return v.selected
}

// Score returns the all-time score shown on the menu.
func (v *View) Score() domain.Score {
	return v.score
}
