// Package recommend provides the book recommendation view for the TUI.
//
// The view owns a single SearchState. Submitting a non-blank query moves it
// to Busy and schedules a completion message after the configured delay.
// The displayed recommendations never depend on the query.
package recommend

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/custodia-labs/sommelier/internal/adapters/driving/tui/components/button"
	"github.com/custodia-labs/sommelier/internal/adapters/driving/tui/components/card"
	"github.com/custodia-labs/sommelier/internal/adapters/driving/tui/components/input"
	"github.com/custodia-labs/sommelier/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/sommelier/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/sommelier/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/sommelier/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/sommelier/internal/core/domain"
	"github.com/custodia-labs/sommelier/internal/core/ports/driving"
	"github.com/custodia-labs/sommelier/internal/logger"
)

// Display text.
const (
	Heading     = "Book Sommelier"
	Tagline     = "Discover your next read based on plot similarity, not just popularity."
	Section     = "Top Recommendations"
	Footer      = "Built with Python, Scikit-Learn & TF-IDF"
	SubmitLabel = "Analyze & Recommend"
	BusyLabel   = "Analyzing..."
)

// focusTarget identifies the control receiving key input.
type focusTarget int

const (
	focusInput focusTarget = iota
	focusButton
)

// View is the recommendation view: header, search box, submit button,
// the recommendation grid and a status bar.
type View struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	input     *input.SearchInput
	button    *button.Button
	grid      *card.Grid
	statusbar *status.Bar
	spinner   spinner.Model

	service driving.RecommendationService
	ctx     context.Context

	// mount scope; cancelled by Close
	mountID  string
	mountCtx context.Context
	cancel   context.CancelFunc

	state      domain.SearchState
	submission string
	delay      time.Duration
	focus      focusTarget

	width  int
	height int
	ready  bool
	err    error
}

// NewView creates a new recommendation view and mounts it.
func NewView(s *styles.Styles, km *keymap.KeyMap, service driving.RecommendationService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	v := &View{
		styles:    s,
		keymap:    km,
		input:     input.NewSearchInput(s),
		button:    button.New(s, SubmitLabel, BusyLabel),
		grid:      card.NewGrid(s),
		statusbar: status.NewBar(s, km),
		spinner:   sp,
		service:   service,
		ctx:       context.Background(),
		delay:     domain.DefaultAnalyzeDelay,
		focus:     focusInput,
		width:     80,
		height:    24,
	}
	v.mount()
	return v
}

// WithContext sets the parent context for the view's mounts.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	v.Close()
	v.mount()
	return v
}

// WithDelay sets the analysis delay.
func (v *View) WithDelay(d time.Duration) *View {
	_ = v.SetDelay(d)
	return v
}

func (v *View) mount() {
	v.mountID = uuid.NewString()
	v.mountCtx, v.cancel = context.WithCancel(v.ctx)
	logger.Debug("recommend: mounted %s", v.mountID)
}

// Init initialises the view and loads the recommendations.
func (v *View) Init() tea.Cmd {
	if v.cancel == nil {
		v.mount()
	}
	return tea.Batch(v.input.Init(), v.loadRecommendations())
}

// loadRecommendations fetches the ranked list once per mount.
func (v *View) loadRecommendations() tea.Cmd {
	ctx := v.mountCtx
	svc := v.service
	return func() tea.Msg {
		if svc == nil {
			return messages.RecommendationsLoaded{Err: ErrNoRecommendationService}
		}
		recs, err := svc.Top(ctx)
		return messages.RecommendationsLoaded{Recommendations: recs, Err: err}
	}
}

// Update handles messages for the recommendation view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.RecommendationsLoaded:
		v.handleLoaded(msg)
		return v, nil

	case messages.AnalysisCompleted:
		v.handleCompleted(msg)
		return v, nil

	case messages.SettingsChanged:
		if msg.Settings != nil {
			_ = v.SetDelay(msg.Settings.Analysis.Delay)
		}
		return v, nil

	case messages.ErrorOccurred:
		v.setError(msg.Err)
		return v, nil

	case spinner.TickMsg:
		// Stop ticking once idle.
		if !v.state.Busy {
			return v, nil
		}
		var cmd tea.Cmd
		v.spinner, cmd = v.spinner.Update(msg)
		v.statusbar.SetIndicator(v.spinner.View())
		return v, cmd
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

// handleKeyMsg processes keyboard input.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	key := msg.String()

	if keymap.Matches(key, v.keymap.FocusNext) || keymap.Matches(key, v.keymap.FocusPrev) {
		v.toggleFocus()
		return v, nil
	}

	if v.focus == focusButton {
		if keymap.Matches(key, v.keymap.Press) {
			if v.button.Disabled() {
				return v, nil
			}
			return v, v.Submit()
		}
		return v, nil
	}

	if keymap.Matches(key, v.keymap.Submit) {
		return v, v.Submit()
	}

	// Typing stays live while busy.
	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	v.state.SetQuery(v.input.Value())
	return v, cmd
}

func (v *View) toggleFocus() {
	if v.focus == focusInput {
		v.focus = focusButton
		v.input.Blur()
		v.button.Focus()
		return
	}
	v.focus = focusInput
	v.button.Blur()
	v.input.Focus()
}

// Submit starts an analysis. It returns nil and changes nothing when the
// trimmed query is empty or an analysis is already running. Otherwise the
// view becomes busy immediately and the returned command delivers the
// completion after the configured delay.
func (v *View) Submit() tea.Cmd {
	if v.state.Busy {
		logger.Debug("recommend: submit ignored, analysis in progress")
		return nil
	}
	if !v.state.Begin() {
		logger.Debug("recommend: submit ignored, empty query")
		return nil
	}

	id := uuid.NewString()
	v.submission = id
	v.button.SetBusy(true)
	v.statusbar.SetState(status.StateAnalyzing)
	v.statusbar.SetIndicator(v.spinner.View())

	logger.With(map[string]any{
		"submission": id,
		"delay":      v.delay.String(),
	}).Debug("recommend: analysis started")

	return tea.Batch(v.spinner.Tick, v.scheduleCompletion(v.mountCtx, id, v.delay))
}

// scheduleCompletion waits for the delay and reports completion for id.
// A cancelled mount yields no message.
func (v *View) scheduleCompletion(ctx context.Context, id string, delay time.Duration) tea.Cmd {
	return func() tea.Msg {
		timer := time.NewTimer(delay)
		defer timer.Stop()

		select {
		case <-ctx.Done():
			return nil
		case <-timer.C:
			return messages.AnalysisCompleted{ID: id}
		}
	}
}

// handleCompleted returns the view to idle if msg belongs to the pending submission.
func (v *View) handleCompleted(msg messages.AnalysisCompleted) {
	if msg.ID == "" || msg.ID != v.submission {
		logger.Debug("recommend: stale completion %q ignored", msg.ID)
		return
	}
	if !v.state.Finish() {
		return
	}
	v.submission = ""
	v.button.SetBusy(false)
	if v.err != nil {
		v.statusbar.SetState(status.StateError)
	} else {
		v.statusbar.SetState(status.StateReady)
	}
	logger.Debug("recommend: analysis %s finished", msg.ID)
}

func (v *View) handleLoaded(msg messages.RecommendationsLoaded) {
	if msg.Err != nil {
		v.setError(msg.Err)
		return
	}
	v.err = nil
	v.grid.SetItems(msg.Recommendations)
	v.statusbar.SetCount(len(msg.Recommendations))
	if !v.state.Busy {
		v.statusbar.SetState(status.StateReady)
	}
}

func (v *View) setError(err error) {
	if err == nil {
		return
	}
	v.err = err
	v.statusbar.SetMessage(err.Error())
	if !v.state.Busy {
		v.statusbar.SetState(status.StateError)
	}
}

// View renders the recommendation view.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	center := lipgloss.NewStyle().Width(v.width).Align(lipgloss.Center)

	searchRow := lipgloss.JoinHorizontal(lipgloss.Center, v.input.View(), " ", v.button.View())

	sections := []string{
		center.Render(v.styles.Title.Render(Heading)),
		center.Render(v.styles.Tagline.Render(Tagline)),
		"",
		center.Render(searchRow),
		"",
		center.Render(v.styles.SectionTitle.Render(Section)),
		"",
		v.grid.View(),
		"",
		v.styles.Footer.Width(v.width).Align(lipgloss.Center).Render(Footer),
		v.statusbar.View(),
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true

	inputWidth := width - lipgloss.Width(v.button.View()) - 4
	if inputWidth > 72 {
		inputWidth = 72
	}
	v.input.SetWidth(inputWidth)
	v.grid.SetWidth(width)
	v.statusbar.SetWidth(width)
}

// SetDelay changes the delay used by the next submission. A pending
// analysis keeps the delay it started with.
func (v *View) SetDelay(d time.Duration) error {
	if err := domain.ValidateAnalyzeDelay(d); err != nil {
		logger.Warn("recommend: keeping delay %s: %v", v.delay, err)
		return err
	}
	v.delay = d
	return nil
}

// Delay returns the delay used by the next submission.
func (v *View) Delay() time.Duration {
	return v.delay
}

// Close tears the view down and cancels any pending analysis.
// It is safe to call more than once.
func (v *View) Close() {
	if v.cancel == nil {
		return
	}
	v.cancel()
	v.cancel = nil
	logger.Debug("recommend: closed %s", v.mountID)
}

// Reset discards the current state and mounts the view afresh.
// Call Init afterwards to reload the recommendations.
func (v *View) Reset() {
	v.Close()
	v.state = domain.SearchState{}
	v.submission = ""
	v.err = nil
	v.input.Reset()
	v.focus = focusInput
	v.input.Focus()
	v.button.Blur()
	v.button.SetBusy(false)
	v.grid.SetItems(nil)
	v.statusbar.Clear()
	v.mount()
}

// SetQuery replaces the query text. It never touches the busy flag.
func (v *View) SetQuery(text string) {
	v.input.SetValue(text)
	v.state.SetQuery(v.input.Value())
}

// Query returns the current query text.
func (v *View) Query() string {
	return v.state.Query
}

// Busy reports whether an analysis is in progress.
func (v *View) Busy() bool {
	return v.state.Busy
}

// Phase returns the current phase of the search state.
func (v *View) Phase() domain.Phase {
	return v.state.Phase()
}

// Recommendations returns the displayed recommendations.
func (v *View) Recommendations() []domain.Recommendation {
	return v.grid.Items()
}

// ButtonLabel returns the submit button's current label.
func (v *View) ButtonLabel() string {
	return v.button.Label()
}

// ButtonDisabled reports whether the submit button is disabled.
func (v *View) ButtonDisabled() bool {
	return v.button.Disabled()
}

// InputFocused returns whether the search field has focus.
func (v *View) InputFocused() bool {
	return v.focus == focusInput
}

// Err returns the current error, if any.
func (v *View) Err() error {
	return v.err
}

// Ready returns whether the view is ready to render.
func (v *View) Ready() bool {
	return v.ready
}

// Width returns the current width.
func (v *View) Width() int {
	return v.width
}

// Height returns the current height.
func (v *View) Height() int {
	return v.height
}
