package core

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/jask/clinicflow/internal/nav"
	"github.com/jask/clinicflow/internal/widgets"
)

type Screen interface {
	Update(msg tea.Msg) (Screen, tea.Cmd, bool)
	View(width, height int) string
	Scope() string
	Title() string
}

// Panel is the content shown for one navigation entry. A fresh Panel is
// built every time its entry is selected.
type Panel interface {
	ID() nav.PanelID
	Title() string
	Subtitle() string
	Scope() string
	Update(m *Model, msg tea.Msg) tea.Cmd
	Build(m *Model) widgets.Widget
}

type PanelFactory func() Panel

type PaneKeyHandler interface {
	HandlePaneKey(m *Model, msg tea.KeyMsg) (bool, tea.Cmd)
	ActivePaneTitle() string
}

// TextCapturer is implemented by panels that own a text field. While it
// reports true, printable keys go to the field instead of global bindings.
type TextCapturer interface {
	CapturingText() bool
}

type PanelInitializer interface {
	InitPanel(m *Model) tea.Cmd
}

// Chrome is the static shell text around the active panel.
type Chrome struct {
	Clinician    string
	Initials     string
	SidebarWidth int
}

type Model struct {
	width               int
	height              int
	selector            nav.Selector
	factories           map[nav.PanelID]PanelFactory
	panel               Panel
	screens             ScreenStack
	keys                *KeyRegistry
	commands            *CommandRegistry
	status              string
	statusErr           bool
	quitting            bool
	chrome              Chrome
	log                 zerolog.Logger
	OpenCommandModal    func(m *Model, scope string) Screen
	OpenJumpPickerModal func(m *Model, targets []JumpTarget) Screen
}

func NewModel(factories map[nav.PanelID]PanelFactory, keys *KeyRegistry, commands *CommandRegistry, chrome Chrome, log zerolog.Logger) Model {
	if keys == nil {
		keys = NewKeyRegistry(nil)
	}
	if commands == nil {
		commands = NewCommandRegistry(nil)
	}
	if chrome.SidebarWidth <= 0 {
		chrome.SidebarWidth = 22
	}
	m := Model{
		selector:  nav.NewSelector(),
		factories: factories,
		keys:      keys,
		commands:  commands,
		chrome:    chrome,
		log:       log,
		status:    "Ready",
		width:     120,
		height:    36,
	}
	m.panel = m.buildPanel()
	return m
}

func (m Model) Init() tea.Cmd {
	return m.initPanel()
}

func (m *Model) initPanel() tea.Cmd {
	if init, ok := m.panel.(PanelInitializer); ok {
		return init.InitPanel(m)
	}
	return nil
}

// Select makes id the active panel identifier and rebuilds the panel, so any
// local state of the previous instance is dropped. Unknown ids show the
// default panel.
func (m *Model) Select(id string) tea.Cmd {
	m.selector.Select(id)
	m.panel = m.buildPanel()
	current := m.selector.Current()
	m.log.Debug().
		Str("requested", id).
		Str("panel", string(current)).
		Msg("panel selected")
	if item, ok := nav.Lookup(string(current)); ok {
		m.SetStatus("Viewing " + item.Label)
	}
	return m.initPanel()
}

func (m *Model) buildPanel() Panel {
	if f := m.factories[m.selector.Current()]; f != nil {
		return f()
	}
	if f := m.factories[nav.Default]; f != nil {
		return f()
	}
	return nil
}

func (m *Model) SetStatus(msg string) {
	m.status = msg
	m.statusErr = false
}

func (m *Model) SetError(err error) {
	if err == nil {
		m.status = ""
		m.statusErr = false
		return
	}
	m.status = err.Error()
	m.statusErr = true
}

func (m Model) ActiveScope() string {
	if top := m.screens.Top(); top != nil {
		return top.Scope()
	}
	if m.panel == nil {
		return "app"
	}
	return m.panel.Scope()
}

// ActivePanel returns the identifier as last selected, unresolved.
func (m Model) ActivePanel() string {
	return m.selector.Active()
}

func (m Model) CurrentPanel() nav.PanelID {
	return m.selector.Current()
}

func (m Model) Panel() Panel {
	return m.panel
}

func (m *Model) PushScreen(s Screen) {
	m.screens.Push(s)
}

func (m Model) Screens() int {
	return m.screens.Len()
}

func (m Model) Status() (string, bool) {
	return m.status, m.statusErr
}

func (m *Model) Keys() *KeyRegistry {
	return m.keys
}

func (m *Model) CommandRegistry() *CommandRegistry {
	return m.commands
}

func (m Model) Chrome() Chrome {
	return m.chrome
}

func (m *Model) Log() *zerolog.Logger {
	return &m.log
}

func (m Model) Size() (int, int) {
	return m.width, m.height
}
