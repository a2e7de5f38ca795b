// Package list provides list display components for the TUI.
package list

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/oddart/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/oddart/internal/core/ports/driving"
)

// ArtistList displays index artists in a scrollable list.
type ArtistList struct {
	artists  []driving.ArtistSummary
	selected int
	styles   *styles.Styles
	width    int
	height   int
}

// NewArtistList creates a new artist list component.
func NewArtistList(s *styles.Styles) *ArtistList {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &ArtistList{
		styles: s,
		width:  80,
		height: 10,
	}
}

// Init initialises the artist list.
func (r *ArtistList) Init() tea.Cmd {
	return nil
}

// Update handles list navigation messages.
func (r *ArtistList) Update(msg tea.Msg) (*ArtistList, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "up", "k":
			r.MoveUp()
		case "down", "j":
			r.MoveDown()
		case "home", "g":
			r.selected = 0
		case "end", "G":
			if len(r.artists) > 0 {
				r.selected = len(r.artists) - 1
			}
		}
	}
	return r, nil
}

// View renders the visible window of the list.
func (r *ArtistList) View() string {
	if len(r.artists) == 0 {
		return r.styles.Muted.Render("No artists")
	}

	lines := make([]string, 0, len(r.artists)+2)
	lines = append(lines, r.styles.Subtitle.Render(fmt.Sprintf("Artists (%d)", len(r.artists))), "")

	start, end := r.visibleRange()
	nameWidth := r.width - 12
	if nameWidth < 10 {
		nameWidth = 10
	}

	for i := start; i < end; i++ {
		a := r.artists[i]
		name := a.Name
		if len(name) > nameWidth {
			name = name[:nameWidth-3] + "..."
		}
		if i == r.selected {
			lines = append(lines, r.styles.Selected.Render(fmt.Sprintf("> %-*s %5d", nameWidth, name, a.Paintings)))
		} else {
			lines = append(lines, r.styles.Normal.Render(fmt.Sprintf("  %-*s ", nameWidth, name))+
				r.styles.Muted.Render(fmt.Sprintf("%5d", a.Paintings)))
		}
	}

	return strings.Join(lines, "\n")
}

// visibleRange returns the window of rows that fits the height and keeps
// the selection in view.
func (r *ArtistList) visibleRange() (int, int) {
	visible := r.height - 2
	if visible < 1 {
		visible = 1
	}

	start := 0
	if r.selected >= visible {
		start = r.selected - visible + 1
	}
	end := min(start+visible, len(r.artists))
	return start, end
}

// SetArtists replaces the list contents.
func (r *ArtistList) SetArtists(artists []driving.ArtistSummary) {
	r.artists = artists
	r.selected = 0
}

// Artists returns the current list contents.
func (r *ArtistList) Artists() []driving.ArtistSummary {
	return r.artists
}

// Selected returns the index of the selected artist.
func (r *ArtistList) Selected() int {
	return r.selected
}

// SelectedArtist returns the currently selected artist, or nil if none.
func (r *ArtistList) SelectedArtist() *driving.ArtistSummary {
	if r.selected < 0 || r.selected >= len(r.artists) {
		return nil
	}
	return &r.artists[r.selected]
}

// MoveUp moves selection up.
func (r *ArtistList) MoveUp() {
	if r.selected > 0 {
		r.selected--
	}
}

// MoveDown moves selection down.
func (r *ArtistList) MoveDown() {
	if r.selected < len(r.artists)-1 {
		r.selected++
	}
}

// SetDimensions sets the component dimensions.
func (r *ArtistList) SetDimensions(width, height int) {
	r.width = width
	r.height = height
}

// Count returns the number of artists.
func (r *ArtistList) Count() int {
	return len(r.artists)
}
