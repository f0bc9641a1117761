package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"checkgrip/internal/config"
	"checkgrip/internal/eventbus"
	"checkgrip/internal/logging"
	"checkgrip/internal/selector"
	"checkgrip/internal/ui/commands"
	"checkgrip/internal/ui/input"
	inputtypes "checkgrip/internal/ui/input/types"
	"checkgrip/internal/ui/logic"
	"checkgrip/internal/ui/services/selection"
	"checkgrip/internal/ui/state"
	"checkgrip/internal/ui/views"
)

// chromeLines is the number of lines around the option list: padding,
// title, separator, status and scroll indicators
const chromeLines = 9

// Result is what the checklist reports once the program exits
type Result struct {
	Accepted bool
	Aborted  bool
	Selected []string
}

// Model represents the UI state
type Model struct {
	bus    eventbus.EventBus
	config *config.Config
	state  *state.AppState

	help help.Model
	keys KeyMap

	selection    *selection.Service
	navigator    *logic.Navigator
	renderer     *views.Renderer
	inputHandler *input.Handler
	cmdExecutor  *commands.Executor
	logger       zerolog.Logger
	onReady      func()
}

// NewModel creates a new UI model over sel. bus may be nil. lr must be bound
// to the writer the program renders to; nil uses lipgloss's default renderer.
func NewModel(cfg *config.Config, sel selector.Selector, bus eventbus.EventBus, lr *lipgloss.Renderer) *Model {
	if lr == nil {
		lr = lipgloss.DefaultRenderer()
	}
	appState := state.NewAppState()
	selSvc := selection.NewService(sel, bus, cfg.SelectAllLabel)

	m := &Model{
		bus:          bus,
		config:       cfg,
		state:        appState,
		help:         newHelp(lr),
		keys:         DefaultKeyMap(),
		selection:    selSvc,
		navigator:    logic.NewNavigator(selSvc.RowCount()),
		renderer:     views.NewRenderer(lr),
		inputHandler: input.New(),
		cmdExecutor:  commands.NewExecutor(appState, selSvc, bus),
		logger:       logging.GetLogger("ui"),
	}

	return m
}

// OnReady registers fn to run once the program is accepting input
func (m *Model) OnReady(fn func()) {
	m.onReady = fn
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	return func() tea.Msg { return readyMsg{} }
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.state.Width = msg.Width
		m.state.Height = msg.Height
		m.help.Width = msg.Width
		m.updateViewportHeight()

	case tea.KeyMsg:
		ctx := &input.ModelContext{
			Selection: m.selection,
			Navigator: m.navigator,
		}
		actions := m.inputHandler.HandleKey(msg, ctx)
		m.help.ShowAll = m.inputHandler.CurrentMode() == inputtypes.ModeHelp
		m.updateViewportHeight()

		var cmds []tea.Cmd
		for _, action := range actions {
			if cmd := m.handleAction(action); cmd != nil {
				cmds = append(cmds, cmd)
			}
		}
		return m, tea.Batch(cmds...)

	case readyMsg:
		m.logger.Debug().Msg("UI ready")
		if m.onReady != nil {
			m.onReady()
		}

	case pagerClosedMsg:
		if msg.err != nil {
			m.logger.Error().Err(msg.err).Msg("Pager failed")
			m.state.StatusMessage = fmt.Sprintf("Pager failed: %v", msg.err)
			if m.bus != nil {
				m.bus.Publish(eventbus.ErrorEvent{Message: "pager failed", Err: msg.err})
			}
		}
	}

	return m, nil
}

func (m *Model) handleAction(action inputtypes.Action) tea.Cmd {
	m.logger.Trace().Str("action", action.Type()).Msg("Handling action")

	switch a := action.(type) {
	case inputtypes.NavigateAction:
		m.navigator.Move(a.Direction)

	case inputtypes.ToggleAction:
		row := a.Index
		if row < 0 {
			row = m.navigator.Cursor()
		}
		return m.cmdExecutor.ExecuteToggle(row)

	case inputtypes.ToggleAllAction:
		return m.cmdExecutor.ExecuteToggleAll()

	case inputtypes.OpenPagerAction:
		report := m.renderer.RenderReport(m.viewState())
		return tea.Exec(newPagerCommand(report), func(err error) tea.Msg {
			return pagerClosedMsg{err: err}
		})

	case inputtypes.AcceptAction:
		return m.cmdExecutor.ExecuteAccept()

	case inputtypes.QuitAction:
		return m.cmdExecutor.ExecuteQuit(a.Force)
	}

	return nil
}

// View renders the checklist
func (m *Model) View() string {
	if m.state.Done {
		return ""
	}
	return m.renderer.Render(m.viewState())
}

// Result reports the outcome; Selected is the current selection either way
func (m *Model) Result() Result {
	return Result{
		Accepted: m.state.Accepted,
		Aborted:  m.state.Aborted,
		Selected: m.selection.GetSelected(),
	}
}

func (m *Model) viewState() views.ViewState {
	start, end := m.navigator.VisibleRange()
	return views.ViewState{
		Width:         m.state.Width,
		Height:        m.state.Height,
		Title:         m.config.Title,
		Rows:          m.selection.Rows(),
		Cursor:        m.navigator.Cursor(),
		VisibleStart:  start,
		VisibleEnd:    end,
		Count:         m.selection.GetCount(),
		Total:         m.selection.Total(),
		StatusMessage: m.state.StatusMessage,
		HelpView:      m.helpView(),
	}
}

func (m *Model) helpView() string {
	if !m.help.ShowAll && !m.config.UISettings.ShowHelp {
		return ""
	}
	return m.help.View(m.keys)
}

func (m *Model) updateViewportHeight() {
	if m.state.Height == 0 {
		return
	}
	helpLines := 0
	if view := m.helpView(); view != "" {
		helpLines = strings.Count(view, "\n") + 1
	}
	m.navigator.SetViewportHeight(m.state.Height - chromeLines - helpLines)
}
