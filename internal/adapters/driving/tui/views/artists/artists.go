// Package artists provides the index artist listing view for the TUI.
package artists

import (
	"context"
	"errors"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/oddart/internal/adapters/driving/tui/components/list"
	"github.com/custodia-labs/oddart/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/oddart/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/oddart/internal/core/ports/driving"
)

// ErrNoQuizService indicates that no quiz service was provided.
var ErrNoQuizService = errors.New("quiz service is required")

// View lists the artists of the index with their painting counts.
type View struct {
	styles      *styles.Styles
	list        *list.ArtistList
	quizService driving.QuizService
	ctx         context.Context

	width   int
	height  int
	loading bool
	err     error
}

// NewView creates a new artists view.
func NewView(s *styles.Styles, quizService driving.QuizService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &View{
		styles:      s,
		list:        list.NewArtistList(s),
		quizService: quizService,
		ctx:         context.Background(),
		width:       80,
		height:      24,
	}
}

// WithContext sets the context for the view.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init loads the artists.
func (v *View) Init() tea.Cmd {
	v.loading = true
	v.err = nil

	if v.quizService == nil {
		return func() tea.Msg {
			return messages.ArtistsLoaded{Err: ErrNoQuizService}
		}
	}

	svc, ctx := v.quizService, v.ctx
	return func() tea.Msg {
		artists, err := svc.Artists(ctx)
		return messages.ArtistsLoaded{Artists: artists, Err: err}
	}
}

// Update handles messages for the artists view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case messages.ArtistsLoaded:
		v.loading = false
		v.err = msg.Err
		if msg.Err == nil {
			v.list.SetArtists(msg.Artists)
		}
		return v, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyEsc {
			return v, func() tea.Msg {
				return messages.ViewChanged{View: messages.ViewMenu}
			}
		}
		var cmd tea.Cmd
		v.list, cmd = v.list.Update(msg)
		return v, cmd
	}

	return v, nil
}

// View renders the artists view.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Artists"))
	b.WriteString("\n\n")

	switch {
	case v.loading:
		b.WriteString(v.styles.Muted.Render("Loading..."))
	case v.err != nil:
		b.WriteString(v.styles.Error.Render(v.err.Error()))
	default:
		b.WriteString(v.list.View())
	}

	b.WriteString("\n\n")
	b.WriteString(v.styles.Help.Render("[j/k] Navigate  [esc] Back"))
	return b.String()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.list.SetDimensions(width, height-6)
}

// Count returns the number of listed artists.
func (v *View) Count() int {
	return v.list.Count()
}

// Err returns the last load error.
func (v *View) Err() error {
	return v.err
}
