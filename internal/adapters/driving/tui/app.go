package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/oddart/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/oddart/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/oddart/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/oddart/internal/adapters/driving/tui/views/artists"
	"github.com/custodia-labs/oddart/internal/adapters/driving/tui/views/menu"
	"github.com/custodia-labs/oddart/internal/adapters/driving/tui/views/quiz"
	"github.com/custodia-labs/oddart/internal/adapters/driving/tui/views/settings"
)

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	styles *styles.Styles
	keymap *keymap.KeyMap

	menuView     *menu.View
	quizView     *quiz.View
	artistsView  *artists.View
	settingsView *settings.View

	// currentView tracks which view is active.
	currentView messages.ViewType

	// err holds the last error that occurred.
	err error

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates if the app has initialised.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()

	return &App{
		ports:       ports,
		ctx:         context.Background(),
		styles:      s,
		keymap:      km,
		menuView:     menu.NewView(s, km),
		quizView:     quiz.NewView(s, km, ports.Quiz),
		artistsView:  artists.NewView(s, ports.Quiz),
		settingsView: settings.NewView(s, km, ports.Settings),
		currentView:  messages.ViewMenu,
	}, nil
}

// WithContext sets the context for the app and its views.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	a.quizView.WithContext(ctx)
	a.artistsView.WithContext(ctx)
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		tea.SetWindowTitle("oddart - Odd Art Out"),
		a.loadScore(),
	)
}

// loadScore fetches the all-time score shown on the menu.
func (a *App) loadScore() tea.Cmd {
	svc, ctx := a.ports.Quiz, a.ctx
	return func() tea.Msg {
		score, err := svc.Score(ctx)
		return messages.ScoreLoaded{Score: score, Err: err}
	}
}

// Update implements tea.Model.
//
//nolint:gocyclo // central message handler
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		// Global quit with ctrl+c
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}

		switch a.currentView {
		case messages.ViewMenu:
			a.menuView, cmd = a.menuView.Update(msg)
		case messages.ViewQuiz:
			a.quizView, cmd = a.quizView.Update(msg)
		case messages.ViewArtists:
			a.artistsView, cmd = a.artistsView.Update(msg)
		case messages.ViewSettings:
			a.settingsView, cmd = a.settingsView.Update(msg)
		case messages.ViewHelp:
			if msg.Type == tea.KeyEsc {
				a.currentView = messages.ViewMenu
			}
		}
		return a, cmd

	case messages.ViewChanged:
		a.currentView = msg.View
		switch msg.View {
		case messages.ViewQuiz:
			a.quizView.Reset()
			return a, a.quizView.Init()
		case messages.ViewArtists:
			return a, a.artistsView.Init()
		case messages.ViewSettings:
			a.settingsView.Reset()
			return a, a.settingsView.Init()
		case messages.ViewMenu:
			return a, a.loadScore()
		case messages.ViewHelp:
		}
		return a, nil

	case messages.ScoreLoaded:
		a.menuView, _ = a.menuView.Update(msg)
		a.quizView, cmd = a.quizView.Update(msg)
		return a, cmd

	case messages.RoundLoaded, messages.AnswerChecked:
		a.quizView, cmd = a.quizView.Update(msg)
		a.err = a.quizView.Err()
		return a, cmd

	case messages.SettingsLoaded, messages.SettingsSaved:
		a.settingsView, cmd = a.settingsView.Update(msg)
		a.err = a.settingsView.Err()
		return a, cmd

	case messages.ArtistsLoaded:
		a.artistsView, cmd = a.artistsView.Update(msg)
		a.err = a.artistsView.Err()
		return a, cmd

	case messages.ErrorOccurred:
		a.err = msg.Err
		if a.currentView == messages.ViewQuiz {
			a.quizView, cmd = a.quizView.Update(msg)
		}
		return a, cmd

	case messages.Quit:
		return a, tea.Quit
	}

	return a, nil
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	switch a.currentView {
	case messages.ViewQuiz:
		return a.quizView.View()
	case messages.ViewArtists:
		return a.artistsView.View()
	case messages.ViewSettings:
		return a.settingsView.View()
	case messages.ViewHelp:
		return a.viewHelp()
	case messages.ViewMenu:
		return a.menuView.View()
	default:
		return a.menuView.View()
	}
}

// viewHelp renders the help view.
func (a *App) viewHelp() string {
	return `Help

Each round shows four paintings. Three are by one artist and one is by
another. Pick the odd one out.

Navigation:
  esc         Back to Menu
  ctrl+c      Quit

Menu:
  j/k, ↑/↓    Navigate options
  enter       Select option
  q           Quit

Round:
  j/k, ↑/↓    Move between paintings
  1-4         Pick a painting
  enter       Pick the highlighted painting
  n           Next round once answered

Settings:
  enter       Edit the highlighted setting
  esc         Cancel an edit

[esc] back to menu`
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen(), tea.WithContext(a.ctx))
	_, err := p.Run()
	return err
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions on the app and every view.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.menuView.SetDimensions(width, height)
	a.quizView.SetDimensions(width, height)
	a.artistsView.SetDimensions(width, height)
	a.settingsView.SetDimensions(width, height)
}
