// Package settings provides the settings view for the TUI.
package settings

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/oddart/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/oddart/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/oddart/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/oddart/internal/core/domain"
	"github.com/custodia-labs/oddart/internal/core/ports/driving"
)

// ErrNoSettingsService indicates that no settings service was provided.
var ErrNoSettingsService = errors.New("settings service not available")

// Setting keys edited from this view.
const (
	KeyMultiValueMode    = "pipeline.multi_value_mode"
	KeyTargetDepartments = "pipeline.target_departments"
	KeyMinRecords        = "pipeline.min_records"
	KeyQuizSeed          = "quiz.seed"
)

// Section tracks which part of the view is active.
type Section int

const (
	// SectionOverview lists the editable settings.
	SectionOverview Section = iota
	// SectionMode picks a multi-value mode.
	SectionMode
	// SectionEdit edits one setting as text.
	SectionEdit
)

type item struct {
	key   string
	label string
	value func(*domain.AppSettings) string
}

var items = []item{
	{KeyMultiValueMode, "Multi-value mode", func(s *domain.AppSettings) string {
		return s.Pipeline.MultiValueMode.Description()
	}},
	{KeyTargetDepartments, "Target departments", func(s *domain.AppSettings) string {
		return strings.Join(s.Pipeline.TargetDepartments, ", ")
	}},
	{KeyMinRecords, "Minimum paintings per artist", func(s *domain.AppSettings) string {
		return strconv.Itoa(s.Pipeline.MinRecords)
	}},
	{KeyQuizSeed, "Quiz seed", func(s *domain.AppSettings) string {
		if !s.Quiz.Seeded {
			return ""
		}
		return strconv.FormatUint(s.Quiz.Seed, 10)
	}},
}

// View shows and edits the settings that shape the index and the quiz.
// Changes to curation settings apply to the next 'oddart build'.
type View struct {
	styles          *styles.Styles
	keymap          *keymap.KeyMap
	settingsService driving.SettingsService

	settings *domain.AppSettings
	invalid  error
	err      error
	saved    string

	section  Section
	selected int
	editing  int
	input    textinput.Model

	width  int
	height int
}

// NewView creates a new settings view.
func NewView(s *styles.Styles, km *keymap.KeyMap, settingsService driving.SettingsService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	input := textinput.New()
	input.CharLimit = 256
	input.Prompt = ""

	return &View{
		styles:          s,
		keymap:          km,
		settingsService: settingsService,
		input:           input,
		width:           80,
		height:          24,
	}
}

// Init loads the current settings.
func (v *View) Init() tea.Cmd {
	return v.loadSettings()
}

func (v *View) loadSettings() tea.Cmd {
	svc := v.settingsService
	return func() tea.Msg {
		if svc == nil {
			return messages.SettingsLoaded{Err: ErrNoSettingsService}
		}
		settings, err := svc.Get()
		return messages.SettingsLoaded{Settings: settings, Err: err}
	}
}

// save stores value under key. An empty seed restores time seeding.
func (v *View) save(key, value string) tea.Cmd {
	svc := v.settingsService
	return func() tea.Msg {
		if svc == nil {
			return messages.SettingsSaved{Key: key, Err: ErrNoSettingsService}
		}
		if key == KeyQuizSeed && strings.TrimSpace(value) == "" {
			return messages.SettingsSaved{Key: key, Err: svc.Unset(key)}
		}
		return messages.SettingsSaved{Key: key, Err: svc.Set(key, value)}
	}
}

// Update handles messages for the settings view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case messages.SettingsLoaded:
		if msg.Err != nil {
			v.err = msg.Err
			return v, nil
		}
		v.settings = msg.Settings
		v.invalid = msg.Settings.Validate()
		v.err = nil
		return v, nil

	case messages.SettingsSaved:
		if msg.Err != nil {
			// Stay in the editor so the value can be corrected.
			v.err = msg.Err
			return v, nil
		}
		v.err = nil
		v.saved = msg.Key
		v.closeEditor()
		return v, v.loadSettings()

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)
	}

	return v, nil
}

func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	if keymap.Matches(msg.String(), v.keymap.Back) {
		if v.section == SectionOverview {
			return v, func() tea.Msg {
				return messages.ViewChanged{View: messages.ViewMenu}
			}
		}
		v.err = nil
		v.closeEditor()
		return v, nil
	}

	if v.settings == nil {
		return v, nil
	}

	switch v.section {
	case SectionOverview:
		return v.handleOverviewKeys(msg)
	case SectionMode:
		return v.handleModeKeys(msg)
	case SectionEdit:
		return v.handleEditKeys(msg)
	}
	return v, nil
}

func (v *View) handleOverviewKeys(msg tea.KeyMsg) (*View, tea.Cmd) {
	keyStr := msg.String()
	switch {
	case keymap.Matches(keyStr, v.keymap.Up):
		if v.selected > 0 {
			v.selected--
		}
	case keymap.Matches(keyStr, v.keymap.Down):
		if v.selected < len(items)-1 {
			v.selected++
		}
	case keymap.Matches(keyStr, v.keymap.Select):
		v.saved = ""
		v.editing = v.selected
		if items[v.selected].key == KeyMultiValueMode {
			v.section = SectionMode
			v.selected = modeIndex(v.settings.Pipeline.MultiValueMode)
			return v, nil
		}
		v.section = SectionEdit
		v.input.SetValue(items[v.editing].value(v.settings))
		v.input.CursorEnd()
		return v, v.input.Focus()
	}
	return v, nil
}

func (v *View) handleModeKeys(msg tea.KeyMsg) (*View, tea.Cmd) {
	modes := domain.AllMultiValueModes()
	keyStr := msg.String()

	switch {
	case keymap.Matches(keyStr, v.keymap.Up):
		if v.selected > 0 {
			v.selected--
		}
	case keymap.Matches(keyStr, v.keymap.Down):
		if v.selected < len(modes)-1 {
			v.selected++
		}
	case keymap.Matches(keyStr, v.keymap.Select):
		return v, v.save(KeyMultiValueMode, modes[v.selected].String())
	}
	return v, nil
}

func (v *View) handleEditKeys(msg tea.KeyMsg) (*View, tea.Cmd) {
	if msg.Type == tea.KeyEnter {
		return v, v.save(items[v.editing].key, v.input.Value())
	}
	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

func (v *View) closeEditor() {
	if v.section != SectionOverview {
		v.selected = v.editing
	}
	v.section = SectionOverview
	v.input.Blur()
	v.input.SetValue("")
}

func modeIndex(mode domain.MultiValueMode) int {
	for i, m := range domain.AllMultiValueModes() {
		if m == mode {
			return i
		}
	}
	return 0
}

// View renders the settings view.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Settings"))
	b.WriteString("\n\n")

	if v.err != nil {
		b.WriteString(v.styles.Error.Render("Error: " + v.err.Error()))
		b.WriteString("\n\n")
	}

	if v.settings == nil {
		if v.err == nil {
			b.WriteString(v.styles.Muted.Render("Loading settings..."))
		}
		b.WriteString("\n")
		b.WriteString(v.styles.Help.Render("[esc] back"))
		return b.String()
	}

	switch v.section {
	case SectionOverview:
		b.WriteString(v.renderOverview())
	case SectionMode:
		b.WriteString(v.renderModeSelect())
	case SectionEdit:
		b.WriteString(v.renderEditor())
	}

	b.WriteString("\n")
	b.WriteString(v.renderHelp())
	return b.String()
}

func (v *View) renderOverview() string {
	var b strings.Builder

	for i, it := range items {
		value := it.value(v.settings)
		if it.key == KeyQuizSeed && value == "" {
			value = "(time)"
		}
		line := fmt.Sprintf("%s: %s", it.label, value)
		if i == v.selected {
			b.WriteString(v.styles.Selected.Render("> " + line))
		} else {
			b.WriteString(v.styles.Normal.Render("  " + line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	switch {
	case v.invalid != nil:
		b.WriteString(v.styles.Warning.Render("Warning: " + v.invalid.Error()))
	case v.saved != "":
		b.WriteString(v.styles.Success.Render("Saved " + v.saved + ". Run 'oddart build' to rebuild the index."))
	default:
		b.WriteString(v.styles.Success.Render("Configuration is valid"))
	}
	b.WriteString("\n")
	return b.String()
}

func (v *View) renderModeSelect() string {
	var b strings.Builder

	b.WriteString(v.styles.Subtitle.Render("How should values joined with | be counted?"))
	b.WriteString("\n\n")

	for i, mode := range domain.AllMultiValueModes() {
		line := mode.Description()
		if mode == v.settings.Pipeline.MultiValueMode {
			line += " (current)"
		}
		if i == v.selected {
			b.WriteString(v.styles.Selected.Render("> " + line))
		} else {
			b.WriteString(v.styles.Normal.Render("  " + line))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (v *View) renderEditor() string {
	var b strings.Builder

	it := items[v.editing]
	b.WriteString(v.styles.Subtitle.Render(it.label))
	b.WriteString("\n")
	b.WriteString(v.styles.Input.Width(max(v.width-4, 20)).Render(v.input.View()))
	b.WriteString("\n")
	switch it.key {
	case KeyTargetDepartments:
		b.WriteString(v.styles.Muted.Render("Comma separated, e.g. European Paintings, Robert Lehman Collection"))
	case KeyQuizSeed:
		b.WriteString(v.styles.Muted.Render("Leave empty for a new draw order every session"))
	}
	b.WriteString("\n")
	return b.String()
}

func (v *View) renderHelp() string {
	switch v.section {
	case SectionEdit:
		return v.styles.Help.Render("[enter] save  [esc] cancel")
	case SectionMode:
		return v.styles.Help.Render("[j/k] navigate  [enter] select  [esc] cancel")
	default:
		return v.styles.Help.Render("[j/k] navigate  [enter] edit  [esc] back")
	}
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
}

// Reset returns the view to the overview.
func (v *View) Reset() {
	v.section = SectionOverview
	v.selected = 0
	v.editing = 0
	v.err = nil
	v.saved = ""
	v.input.Blur()
	v.input.SetValue("")
}

// Section returns the active section.
func (v *View) Section() Section {
	return v.section
}

// Selected returns the row under the cursor.
func (v *View) Selected() int {
	return v.selected
}

// Settings returns the last loaded settings, or nil.
func (v *View) Settings() *domain.AppSettings {
	return v.settings
}

// Err returns the last error.
func (v *View) Err() error {
	return v.err
}
