package ui

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"memberadmin/internal/config"
	"memberadmin/internal/eventbus"
	"memberadmin/internal/provider"
	"memberadmin/internal/ui/commands"
	"memberadmin/internal/ui/input"
	inputtypes "memberadmin/internal/ui/input/types"
	"memberadmin/internal/ui/state"
	"memberadmin/internal/ui/viewmodels"
	"memberadmin/internal/ui/views"
)

// statusTimeout is how long transient status messages stay visible
const statusTimeout = 3 * time.Second

// Model represents the UI state
type Model struct {
	ctx    context.Context
	bus    eventbus.EventBus
	config *config.Config
	state  *state.AppState // centralized state
	loader *provider.Loader

	// UI-specific state not in AppState
	width       int
	height      int
	help        help.Model
	keys        inputtypes.KeyMap
	spinner     spinner.Model
	inPagerMode bool // tracks if we're currently in pager mode

	// Handlers
	renderer     *views.Renderer       // view renderer
	helpRenderer *HelpRenderer         // help content
	viewModel    *viewmodels.ViewModel // view model for rendering
	cmdExecutor  *commands.Executor    // command executor
	inputHandler *input.Handler        // input handling
	pager        *PagerOps             // ov pager

	// Program reference for terminal management
	program *tea.Program
}

// NewModel creates a new UI model. The loader is run once from Init.
func NewModel(ctx context.Context, bus eventbus.EventBus, cfg *config.Config, loader *provider.Loader) *Model {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	appState := state.NewAppState()
	appState.Source = loader.Source()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("99"))

	keys := inputtypes.DefaultKeyMap()

	m := &Model{
		ctx:          ctx,
		bus:          bus,
		config:       cfg,
		state:        appState,
		loader:       loader,
		help:         help.New(),
		keys:         keys,
		spinner:      sp,
		renderer:     views.NewRenderer(),
		helpRenderer: NewHelpRenderer(),
		inputHandler: input.New(keys),
		pager:        NewPagerOps(nil),
	}

	// Create command executor
	m.cmdExecutor = commands.NewExecutor(appState, bus)

	// Create view model with a placeholder text input (actual one is in input handler)
	m.viewModel = viewmodels.NewViewModel(appState, cfg, textinput.New())
	m.viewModel.SetHelp(m.help, m.keys)

	return m
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.pager.SetProgram(p)
}

// State exposes the application state
func (m *Model) State() *state.AppState {
	return m.state
}

// Init starts the spinner and the one-time member fetch
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.loadMembers())
}

func (m *Model) loadMembers() tea.Cmd {
	return func() tea.Msg {
		records, err := m.loader.Load(m.ctx)
		return membersLoadedMsg{records: records, err: err}
	}
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.viewModel.SetHelp(m.help, m.keys)
		return m, nil

	case tea.KeyMsg:
		// Handle info/help popups first
		if m.state.ShowInfo {
			switch msg.String() {
			case "ctrl+c":
				return m, tea.Quit
			case "esc", "i", "q", "enter":
				m.state.ShowInfo = false
				m.state.InfoContent = ""
			}
			return m, nil
		}

		if m.state.ShowHelp {
			switch msg.String() {
			case "ctrl+c":
				return m, tea.Quit
			case "esc", "?", "q":
				m.state.ShowHelp = false
				m.state.HelpScrollOffset = 0
			case "j", "down":
				m.state.HelpScrollOffset++
			case "k", "up":
				if m.state.HelpScrollOffset > 0 {
					m.state.HelpScrollOffset--
				}
			}
			return m, nil
		}

		// Create context for input handler
		ctx := &input.ModelContext{
			State:  m.state,
			Config: m.config,
		}

		statusBefore := m.state.StatusMessage
		actions, cmd := m.inputHandler.HandleKey(msg, ctx)

		// Process actions
		cmds := []tea.Cmd{}
		if cmd != nil {
			cmds = append(cmds, cmd)
		}

		for _, action := range actions {
			if actionCmd := m.processAction(action); actionCmd != nil {
				cmds = append(cmds, actionCmd)
			}
		}

		if status := m.state.StatusMessage; status != "" && status != statusBefore {
			cmds = append(cmds, clearStatusAfter(status))
		}

		return m, tea.Batch(cmds...)

	default:
		return m.handleNonKeyboardMsg(msg)
	}
}

// View renders the UI
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	m.viewModel.SetDimensions(m.width, m.height)
	m.viewModel.SetSpinner(m.spinner.View())

	var viewModelMode viewmodels.InputMode
	switch m.inputHandler.CurrentMode() {
	case inputtypes.ModeSearch:
		viewModelMode = viewmodels.InputModeSearch
	case inputtypes.ModeEdit:
		viewModelMode = viewmodels.InputModeEdit
	case inputtypes.ModeConfirmBulkDelete:
		viewModelMode = viewmodels.InputModeConfirmBulkDelete
	default:
		viewModelMode = viewmodels.InputModeNormal
	}
	m.viewModel.SetInputMode(viewModelMode)

	// Use input handler's text input if available
	if ti := m.inputHandler.TextInput(); ti != nil {
		m.viewModel.UpdateTextInput(*ti)
	}

	if edit := m.inputHandler.Edit(); edit != nil {
		name, email := edit.Inputs()
		m.viewModel.SetEditInputs(edit.ID(), name.View(), email.View(), edit.FocusedField())
	} else {
		m.viewModel.SetEditInputs("", "", "", "")
	}
	m.viewModel.SetConfirmCount(m.inputHandler.ConfirmCount())

	if m.state.ShowHelp {
		m.viewModel.SetHelpContent(m.helpRenderer.renderHelpContent(m.height, m.state.HelpScrollOffset))
	} else {
		m.viewModel.SetHelpContent("")
	}

	return m.renderer.Render(m.viewModel.BuildViewState())
}

// runPager returns a command that shows content in the ov pager
func (m *Model) runPager(kind, content string) tea.Cmd {
	return func() tea.Msg {
		// Send pause message to stop rendering
		m.program.Send(pauseRenderingMsg{})

		err := m.pager.ShowInPager(content)

		// Send resume message to restart rendering
		m.program.Send(resumeRenderingMsg{})

		return pagerMsg{kind: kind, content: content, err: err}
	}
}

func (m *Model) usePager() bool {
	return m.config.UISettings.UsePager && m.pager.Available()
}

// processAction processes an action from the input handler
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	log.Printf("processAction: %T", action)
	members := m.state.Members

	switch a := action.(type) {
	case inputtypes.NavigateAction:
		switch a.Direction {
		case "up":
			m.state.MoveCursor(-1)
		case "down":
			m.state.MoveCursor(1)
		}

	case inputtypes.PageAction:
		switch a.Direction {
		case "next":
			return m.cmdExecutor.ExecuteChangePage(members.Page() + 1)
		case "prev":
			return m.cmdExecutor.ExecuteChangePage(members.Page() - 1)
		case "first":
			return m.cmdExecutor.ExecuteChangePage(1)
		case "last":
			return m.cmdExecutor.ExecuteChangePage(members.TotalPages())
		}

	case inputtypes.SelectAction:
		return m.cmdExecutor.ExecuteToggleSelection(a.ID)

	case inputtypes.SelectAllVisibleAction:
		return m.cmdExecutor.ExecuteToggleAllVisible()

	case inputtypes.UpdateTextAction:
		if m.inputHandler.CurrentMode() == inputtypes.ModeSearch {
			return m.cmdExecutor.ExecuteSetQuery(a.Text)
		}

	case inputtypes.SubmitTextAction:
		if a.Mode == inputtypes.ModeSearch {
			return m.cmdExecutor.ExecuteSetQuery(a.Text)
		}

	case inputtypes.CancelTextAction, inputtypes.ClearQueryAction:
		return m.cmdExecutor.ExecuteSetQuery("")

	case inputtypes.BeginEditAction:
		return m.cmdExecutor.ExecuteBeginEdit(a.ID)

	case inputtypes.UpdateFieldAction:
		return m.cmdExecutor.ExecuteUpdateField(a.ID, a.Field, a.Value)

	case inputtypes.ApplyEditAction:
		return m.cmdExecutor.ExecuteApplyEdit(a.ID, a.Name, a.Email)

	case inputtypes.EndEditAction:
		return m.cmdExecutor.ExecuteEndEdit(a.ID)

	case inputtypes.DeleteAction:
		return m.cmdExecutor.ExecuteDelete(a.ID)

	case inputtypes.BulkDeleteAction:
		return m.cmdExecutor.ExecuteBulkDelete()

	case inputtypes.ShowDetailAction:
		r, ok := m.state.CurrentMember()
		if !ok {
			return nil
		}
		content := RenderMemberDetail(r)
		if m.usePager() {
			return m.runPager("detail", content)
		}
		m.state.InfoContent = content
		m.state.ShowInfo = true

	case inputtypes.ToggleHelpAction:
		if m.usePager() {
			return m.runPager("help", m.helpRenderer.RenderHelpContentPlain())
		}
		m.state.ShowHelp = !m.state.ShowHelp
		m.state.HelpScrollOffset = 0

	case inputtypes.QuitAction:
		return tea.Quit
	}

	return nil
}

// handleNonKeyboardMsg handles non-keyboard messages
func (m *Model) handleNonKeyboardMsg(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case membersLoadedMsg:
		m.state.Loading = false
		if msg.err != nil {
			if errors.Is(msg.err, provider.ErrAlreadyLoaded) {
				return m, nil
			}
			// The loader already logged and published the failure
			m.state.LoadErr = msg.err
			return m, nil
		}
		m.state.Members.Load(msg.records)
		m.state.ClampCursor()
		m.state.StatusMessage = fmt.Sprintf("Loaded %d members from %s", len(msg.records), m.state.Source)
		return m, clearStatusAfter(m.state.StatusMessage)

	case spinner.TickMsg:
		// Stop ticking once the fetch is done or while the pager owns the screen
		if !m.state.Loading || m.inPagerMode {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case pagerMsg:
		if msg.err != nil {
			// Pager failed, log and fall back to popup
			log.Printf("%s pager failed: %v, falling back to popup", msg.kind, msg.err)
			switch msg.kind {
			case "help":
				m.state.ShowHelp = true
				m.state.HelpScrollOffset = 0
			case "detail":
				m.state.InfoContent = msg.content
				m.state.ShowInfo = true
			}
		}
		// Pager succeeded, RestoreTerminal() should have restored the screen
		return m, nil

	case pauseRenderingMsg:
		m.inPagerMode = true
		return m, nil

	case resumeRenderingMsg:
		m.inPagerMode = false
		return m, nil

	case clearStatusMsg:
		if m.state.StatusMessage == msg.message {
			m.state.StatusMessage = ""
		}
		return m, nil

	default:
		// Cursor blink and other text input messages
		return m, m.inputHandler.Update(msg)
	}
}

func clearStatusAfter(message string) tea.Cmd {
	return tea.Tick(statusTimeout, func(time.Time) tea.Msg {
		return clearStatusMsg{message: message}
	})
}
