package ui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/yourusername/ghlookup/internal/domain"
	"github.com/yourusername/ghlookup/internal/logging"
	"github.com/yourusername/ghlookup/internal/ui/components"
	"github.com/yourusername/ghlookup/internal/ui/layout"
	"github.com/yourusername/ghlookup/internal/ui/theme"
	"github.com/yourusername/ghlookup/internal/usecase"
)

// Focus targets of the form, in Tab order.
type focusArea int

const (
	focusSelector focusArea = iota
	focusInput
	focusButton
	focusCount
)

// ResultState is what the result area currently shows.
type ResultState int

const (
	ResultEmpty ResultState = iota
	ResultLoading
	ResultRendered
)

const searchLabel = "[ Search ]"

// LookupModel is the lookup form: mode selector, input, button, result area
// and the blocking error notice. It owns all state of the lookup cycles.
type LookupModel struct {
	ctx context.Context
	uc  *usecase.LookupUseCase

	selector ModeSelector
	input    textinput.Model
	button   Button
	spinner  spinner.Model
	focus    focusArea

	// generation is bumped by every trigger and mode change; messages
	// carrying an older generation are dropped.
	generation  uint64
	renderDelay time.Duration

	resultState ResultState
	result      *domain.LookupResult
	notice      *components.Modal

	windowWidth  int
	windowHeight int
}

// Messages for async operations

type lookupFetchedMsg struct {
	gen     uint64
	cycleID string
	target  domain.Target
	rec     *domain.Record
	err     error
}

type lookupRenderMsg struct {
	gen     uint64
	cycleID string
	target  domain.Target
	rec     *domain.Record
}

// NewLookupModel creates the form with mode preselected and the input focused.
func NewLookupModel(ctx context.Context, uc *usecase.LookupUseCase, mode domain.Mode) LookupModel {
	if ctx == nil {
		ctx = context.Background()
	}
	if !mode.IsValid() {
		mode = domain.ModeFollowers
	}

	ti := textinput.New()
	ti.Placeholder = mode.Placeholder()
	ti.Prompt = ""
	ti.Width = layout.InputWidth
	ti.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = theme.Global().Styles().Loading

	return LookupModel{
		ctx:          ctx,
		uc:           uc,
		selector:     NewModeSelector("Mode", mode),
		input:        ti,
		button:       NewButton(searchLabel),
		spinner:      sp,
		focus:        focusInput,
		renderDelay:  uc.RenderDelay(),
		windowWidth:  80,
		windowHeight: 24,
	}
}

// Mode returns the active mode.
func (m LookupModel) Mode() domain.Mode {
	return m.selector.Mode()
}

// InputValue returns the current text of the input field.
func (m LookupModel) InputValue() string {
	return m.input.Value()
}

// Placeholder returns the placeholder of the input field.
func (m LookupModel) Placeholder() string {
	return m.input.Placeholder
}

// ResultState returns what the result area shows.
func (m LookupModel) ResultState() ResultState {
	return m.resultState
}

// Result returns the rendered result, or nil when none is shown.
func (m LookupModel) Result() *domain.LookupResult {
	return m.result
}

// Notice returns the text of the pending error notice, or "".
func (m LookupModel) Notice() string {
	if m.notice == nil {
		return ""
	}
	return m.notice.Message
}

// Init starts the cursor blink. The spinner runs only while a lookup loads.
func (m LookupModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages and updates the form state
func (m LookupModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.windowWidth = msg.Width
		m.windowHeight = msg.Height
		if w := msg.Width - 20; w > 10 && w < layout.InputWidth {
			m.input.Width = w
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case lookupFetchedMsg:
		if msg.gen != m.generation {
			logging.Debug("dropping stale fetch result", "cycle_id", msg.cycleID, "generation", msg.gen, "current", m.generation)
			return m, nil
		}
		if msg.err != nil {
			logging.Warn("lookup fetch failed", "cycle_id", msg.cycleID, "target", msg.target.Identifier, "error", msg.err)
			m.raiseNotice(msg.err)
			return m, nil
		}
		return m, m.scheduleRender(msg)

	case lookupRenderMsg:
		if msg.gen != m.generation {
			logging.Debug("dropping stale render", "cycle_id", msg.cycleID, "generation", msg.gen, "current", m.generation)
			return m, nil
		}
		result, err := m.uc.Interpret(msg.target.Mode, msg.rec)
		if err != nil {
			logging.Info("lookup response rejected", "cycle_id", msg.cycleID, "target", msg.target.Identifier, "error", err)
			m.raiseNotice(err)
			return m, nil
		}
		logging.Info("lookup rendered", "cycle_id", msg.cycleID, "target", msg.target.Identifier)
		m.result = result
		m.resultState = ResultRendered
		return m, nil

	case spinner.TickMsg:
		if m.resultState != ResultLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	if m.focus == focusInput {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m LookupModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	// Any key dismisses the notice and is not forwarded to the form.
	if m.notice != nil {
		m.notice = nil
		return m, nil
	}

	switch msg.Type {
	case tea.KeyEsc:
		return m, tea.Quit
	case tea.KeyTab:
		m.setFocus((m.focus + 1) % focusCount)
		return m, nil
	case tea.KeyShiftTab:
		m.setFocus((m.focus - 1 + focusCount) % focusCount)
		return m, nil
	}

	switch m.focus {
	case focusSelector:
		switch msg.String() {
		case "left", "h":
			m.selector.Previous()
			m.changeMode(m.selector.Mode())
		case "right", "l":
			m.selector.Next()
			m.changeMode(m.selector.Mode())
		}
		return m, nil

	case focusInput:
		if msg.Type == tea.KeyEnter {
			return m.submit()
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd

	case focusButton:
		if msg.Type == tea.KeyEnter || msg.Type == tea.KeySpace || msg.String() == " " {
			return m.submit()
		}
	}

	return m, nil
}

func (m *LookupModel) setFocus(f focusArea) {
	m.focus = f
	m.selector.Focused = f == focusSelector
	m.button.Focused = f == focusButton
	if f == focusInput {
		m.input.Focus()
	} else {
		m.input.Blur()
	}
}

// changeMode clears the input and result and invalidates in-flight cycles.
func (m *LookupModel) changeMode(mode domain.Mode) {
	m.generation++
	m.selector.SetMode(mode)
	m.input.SetValue("")
	m.input.Placeholder = mode.Placeholder()
	m.result = nil
	m.resultState = ResultEmpty
	logging.Debug("mode changed", "mode", mode, "generation", m.generation)
}

// submit starts a new lookup cycle for the current mode and input.
func (m LookupModel) submit() (tea.Model, tea.Cmd) {
	m.generation++
	gen := m.generation
	cycleID := usecase.NewCycleID()
	mode := m.Mode()

	m.result = nil
	m.resultState = ResultLoading
	logging.Info("lookup started", "cycle_id", cycleID, "mode", mode, "generation", gen)

	target, err := m.uc.Resolve(mode, m.input.Value())
	if err != nil {
		logging.Info("lookup rejected", "cycle_id", cycleID, "error", err)
		m.raiseNotice(err)
		return m, nil
	}

	return m, tea.Batch(m.fetch(gen, cycleID, target), m.spinner.Tick)
}

func (m LookupModel) fetch(gen uint64, cycleID string, target domain.Target) tea.Cmd {
	uc := m.uc
	ctx := m.ctx
	return func() tea.Msg {
		rec, err := uc.Fetch(ctx, target)
		return lookupFetchedMsg{gen: gen, cycleID: cycleID, target: target, rec: rec, err: err}
	}
}

func (m LookupModel) scheduleRender(msg lookupFetchedMsg) tea.Cmd {
	return tea.Tick(m.renderDelay, func(time.Time) tea.Msg {
		return lookupRenderMsg{gen: msg.gen, cycleID: msg.cycleID, target: msg.target, rec: msg.rec}
	})
}

// raiseNotice shows the notice for err and clears the result area.
func (m *LookupModel) raiseNotice(err error) {
	m.notice = components.NewErrorModal(domain.Notice(err))
	m.result = nil
	m.resultState = ResultEmpty
}

// View renders the form, or only the notice while one is pending.
func (m LookupModel) View() string {
	if m.notice != nil {
		return m.notice.RenderCentered(m.windowWidth, m.windowHeight)
	}

	styles := theme.Global().Styles()

	inputBox := styles.FormInput
	if m.focus == focusInput {
		inputBox = styles.FormInputFocused
	}
	inputRow := lipgloss.JoinHorizontal(lipgloss.Center,
		styles.FormLabel.Render("Input:"),
		" ",
		inputBox.Width(m.input.Width+2).Render(m.input.View()),
	)

	form := lipgloss.JoinVertical(lipgloss.Left,
		m.selector.View(),
		inputRow,
		"",
		lipgloss.NewStyle().PaddingLeft(9).Render(m.button.View()),
	)

	sections := []string{
		components.RenderLogo(m.windowWidth, "Look up GitHub followers, repository dates and stats"),
		"",
		form,
	}
	if area := m.renderResultArea(); area != "" {
		sections = append(sections, area)
	}

	selectorFocused := m.focus == focusSelector
	sections = append(sections, styles.Footer.Render(
		components.LookupFooter(selectorFocused, false, m.Mode().Label(), m.windowWidth),
	))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m LookupModel) renderResultArea() string {
	switch m.resultState {
	case ResultLoading:
		return "\n" + m.spinner.View() + " " + theme.Global().Styles().Loading.Render("Loading...")
	case ResultRendered:
		if m.result == nil {
			return ""
		}
		lines := m.result.Lines()
		items := make([]components.InfoItem, 0, len(lines))
		for _, l := range lines {
			items = append(items, components.InfoItem{Label: l.Label, Value: l.Value})
		}
		card := components.NewInfoCard("Result", items)
		card.SetWidth(layout.InputWidth + 12)
		return card.Render()
	}
	return ""
}
