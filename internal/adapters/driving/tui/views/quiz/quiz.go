// Package quiz provides the Odd Art Out round view for the TUI.
package quiz

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/oddart/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/oddart/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/oddart/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/oddart/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/oddart/internal/core/domain"
	"github.com/custodia-labs/oddart/internal/core/ports/driving"
)

const prompt = "Three of these paintings are by the same artist. Which one is not?"

// View shows one round at a time: four paintings, then the reveal.
type View struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	statusbar *status.Bar

	quizService driving.QuizService
	ctx         context.Context

	round    *domain.Round
	outcome  *domain.Outcome
	selected int
	session  domain.Score
	allTime  domain.Score

	// answering is set while an answer for round is in flight.
	answering bool

	width  int
	height int
	err    error
}

// NewView creates a new quiz view.
func NewView(s *styles.Styles, km *keymap.KeyMap, quizService driving.QuizService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &View{
		styles:      s,
		keymap:      km,
		statusbar:   status.NewBar(s, km),
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

// Init draws the first round and loads the stored score.
func (v *View) Init() tea.Cmd {
	return tea.Batch(v.drawRound(), v.loadScore())
}

// Reset clears the current round and the session score.
func (v *View) Reset() {
	v.round = nil
	v.outcome = nil
	v.selected = 0
	v.answering = false
	v.session = domain.Score{}
	v.err = nil
	v.statusbar.Clear()
}

// Update handles messages for the quiz view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.RoundLoaded:
		if msg.Err != nil {
			v.setError(msg.Err)
			return v, nil
		}
		v.round = msg.Round
		v.outcome = nil
		v.selected = 0
		v.answering = false
		v.err = nil
		v.statusbar.SetState(status.StateQuestion)
		return v, nil

	case messages.AnswerChecked:
		if msg.Outcome != nil && (v.round == nil || msg.Outcome.RoundID != v.round.ID) {
			// Answer for a round that is no longer on screen.
			return v, nil
		}
		v.answering = false
		if msg.Err != nil {
			v.setError(msg.Err)
			return v, nil
		}
		v.outcome = msg.Outcome
		v.session = v.session.Add(*msg.Outcome)
		v.statusbar.SetScore(v.session)
		v.statusbar.SetState(status.StateAnswered)
		return v, v.loadScore()

	case messages.ScoreLoaded:
		if msg.Err == nil {
			v.allTime = msg.Score
		}
		return v, nil

	case messages.ErrorOccurred:
		v.setError(msg.Err)
		return v, nil
	}

	return v, nil
}

func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	keyStr := msg.String()

	if keymap.Matches(keyStr, v.keymap.Back) {
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewMenu}
		}
	}

	if v.round == nil {
		// Nothing to answer yet. After a failed draw, enter retries.
		if v.err != nil && keymap.Matches(keyStr, v.keymap.Next) {
			return v, v.drawRound()
		}
		return v, nil
	}

	if v.outcome != nil {
		if keymap.Matches(keyStr, v.keymap.Next) {
			return v, v.drawRound()
		}
		return v, nil
	}

	if v.answering {
		return v, nil
	}

	switch {
	case keymap.Matches(keyStr, v.keymap.Up):
		if v.selected > 0 {
			v.selected--
		}
	case keymap.Matches(keyStr, v.keymap.Down):
		if v.selected < len(v.round.Choices)-1 {
			v.selected++
		}
	case keymap.Matches(keyStr, v.keymap.Pick):
		choice := int(keyStr[0] - '1')
		if choice < len(v.round.Choices) {
			v.selected = choice
			return v, v.answer(choice)
		}
	case keymap.Matches(keyStr, v.keymap.Select):
		return v, v.answer(v.selected)
	}
	return v, nil
}

func (v *View) setError(err error) {
	v.err = err
	v.statusbar.SetState(status.StateError)
	v.statusbar.SetMessage(err.Error())
}

// drawRound returns a command that draws a new round.
func (v *View) drawRound() tea.Cmd {
	if v.quizService == nil {
		return func() tea.Msg {
			return messages.RoundLoaded{Err: ErrNoQuizService}
		}
	}
	v.statusbar.SetState(status.StateLoading)

	svc, ctx := v.quizService, v.ctx
	return func() tea.Msg {
		round, err := svc.NewRound(ctx)
		return messages.RoundLoaded{Round: round, Err: err}
	}
}

// answer returns a command that checks choice against the current round.
func (v *View) answer(choice int) tea.Cmd {
	if v.quizService == nil {
		return nil
	}

	v.answering = true
	svc, ctx, round := v.quizService, v.ctx, v.round
	return func() tea.Msg {
		outcome, err := svc.Answer(ctx, round, choice)
		return messages.AnswerChecked{Outcome: outcome, Err: err}
	}
}

// loadScore returns a command that loads the stored score.
func (v *View) loadScore() tea.Cmd {
	if v.quizService == nil {
		return nil
	}

	svc, ctx := v.quizService, v.ctx
	return func() tea.Msg {
		score, err := svc.Score(ctx)
		return messages.ScoreLoaded{Score: score, Err: err}
	}
}

// View renders the quiz view.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Odd Art Out"))
	if v.allTime.Total() > 0 {
		b.WriteString(v.styles.Muted.Render(fmt.Sprintf("   all time: %d/%d", v.allTime.Correct, v.allTime.Total())))
	}
	b.WriteString("\n\n")

	switch {
	case v.round == nil && v.err != nil:
		b.WriteString(v.styles.Error.Render(v.err.Error()))
		b.WriteString("\n\n")
		b.WriteString(v.styles.Help.Render("[enter] try again  [esc] back"))
	case v.round == nil:
		b.WriteString(v.styles.Muted.Render("Drawing paintings..."))
	default:
		b.WriteString(v.renderRound())
	}

	b.WriteString("\n\n")
	v.statusbar.SetWidth(v.width)
	b.WriteString(v.statusbar.View())
	return b.String()
}

func (v *View) renderRound() string {
	var b strings.Builder

	b.WriteString(v.styles.Subtitle.Render(prompt))
	b.WriteString("\n\n")

	for i := range v.round.Choices {
		b.WriteString(v.renderChoice(i))
		b.WriteString("\n")
	}

	if v.outcome != nil {
		b.WriteString("\n")
		b.WriteString(v.renderReveal())
	}
	return b.String()
}

func (v *View) renderChoice(i int) string {
	c := v.round.Choices[i]

	lines := []string{fmt.Sprintf("%d. %s", i+1, choiceTitle(c))}
	if c.Artwork != nil {
		lines = append(lines, v.styles.Muted.Render(c.Artwork.AltText()))
		if c.Artwork.ImageURL != "" {
			lines = append(lines, v.styles.Muted.Render(c.Artwork.ImageURL))
		}
	}
	lines = append(lines, v.styles.Muted.Render(c.URL))

	if v.outcome != nil {
		switch {
		case c.Correct:
			lines[0] = v.styles.Correct.Render(lines[0] + "  ✓ odd one out")
		case i == v.outcome.Choice:
			lines[0] = v.styles.Incorrect.Render(lines[0] + "  ✗ your pick")
		}
		if c.Artwork != nil && c.Artwork.Artist != "" {
			lines = append(lines, v.styles.Normal.Render(revealLine(c.Artwork)))
		}
	}

	card := v.styles.Card
	if v.outcome == nil && i == v.selected {
		card = v.styles.CardSelected
	}
	return card.Width(max(v.width-4, 20)).Render(strings.Join(lines, "\n"))
}

func (v *View) renderReveal() string {
	o := v.outcome
	verdict := v.styles.Incorrect.Render("Not quite.")
	if o.Correct {
		verdict = v.styles.Correct.Render("Correct!")
	}
	return fmt.Sprintf("%s The odd one out is by %s. The other three are by %s.",
		verdict, o.CorrectArtist, o.IncorrectArtist)
}

func choiceTitle(c domain.Choice) string {
	if c.Artwork == nil || c.Artwork.Title == "" {
		return "Untitled painting"
	}
	return c.Artwork.Title
}

func revealLine(a *domain.Artwork) string {
	if a.Year != 0 {
		return fmt.Sprintf("%s, %d", a.Artist, a.Year)
	}
	return a.Artist
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.statusbar.SetWidth(width)
}

// Round returns the current round, or nil.
func (v *View) Round() *domain.Round {
	return v.round
}

// Outcome returns the outcome of the current round, or nil if unanswered.
func (v *View) Outcome() *domain.Outcome {
	return v.outcome
}

// Selected returns the choice under the cursor.
func (v *View) Selected() int {
	return v.selected
}

// Answering reports whether an answer is waiting to be checked.
func (v *View) Answering() bool {
	return v.answering
}

// Session returns the score of rounds answered in this view.
func (v *View) Session() domain.Score {
	return v.session
}

// Err returns the last error.
func (v *View) Err() error {
	return v.err
}
