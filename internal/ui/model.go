package ui

import (
	"context"
	"reflect"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/st-little/anshin-meshi/internal/content"
	"github.com/st-little/anshin-meshi/internal/fetch"
	"github.com/st-little/anshin-meshi/internal/theme"
	"github.com/st-little/anshin-meshi/internal/ui/command"
	uistate "github.com/st-little/anshin-meshi/internal/ui/state"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
)

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// Fetcher performs the single fetch and settles the cell with its outcome.
type Fetcher interface {
	Start(ctx context.Context, cell *fetch.Cell) fetch.Result
	URL() string
}

// Options configures a Model.
type Options struct {
	Width      int
	Height     int
	ShowFooter bool
	Fetcher    Fetcher
	Cell       *fetch.Cell
	Context    context.Context
}

// Model implements the Bubble Tea model for the product search view.
type Model struct {
	dispatcher *uistate.Dispatcher
	list       *uistate.List
	result     fetch.Result

	fetcher Fetcher
	cell    *fetch.Cell
	ctx     context.Context
	bus     *command.Bus

	search    textinput.Model
	spinner   spinner.Model
	modalView viewport.Model
	help      help.Model
	keys      keyMap

	// identifies the dialog copy and size loaded into modalView
	modalKey    modalCacheKey
	modalLoaded bool

	menuCursor  int
	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	showFooter  bool
	errMsg      string
	infoMsg     string
	infoExpire  time.Time

	handlers map[reflect.Type]msgHandler
}

// NewModel initialises the UI with everything closed and the fetch pending.
func NewModel(opts Options) *Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	cell := opts.Cell
	if cell == nil {
		cell = fetch.NewCell()
	}
	m := &Model{
		dispatcher: uistate.NewDispatcher(uistate.New()),
		list:       uistate.NewList(),
		result:     cell.Snapshot(),
		fetcher:    opts.Fetcher,
		cell:       cell,
		ctx:        ctx,
		bus:        command.New(),
		search:     newSearchInput(),
		spinner:    spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(*styles.Loading)),
		modalView:  viewport.New(0, 0),
		help:       help.New(),
		keys:       defaultKeyMap(),
		showFooter: opts.ShowFooter,
	}
	if opts.Width > 0 {
		m.width = opts.Width
		m.fixedWidth = true
	}
	if opts.Height > 0 {
		m.height = opts.Height
		m.fixedHeight = true
	}
	if m.result.Settled() {
		m.list.Sync(m.result.Records, "")
	}
	m.resizeSearch()
	m.registerHandlers()
	return m
}

func newSearchInput() textinput.Model {
	ti := textinput.New()
	ti.Prompt = "» "
	ti.Placeholder = content.SearchHint
	if styles.FilterPrompt != nil {
		ti.PromptStyle = *styles.FilterPrompt
	}
	if styles.Filter != nil {
		ti.TextStyle = *styles.Filter
	}
	if styles.FilterPlaceholder != nil {
		ti.PlaceholderStyle = *styles.FilterPlaceholder
	}
	ti.Focus()
	return ti
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink}
	if !m.result.Settled() {
		cmds = append(cmds, m.spinner.Tick)
		if cmd := m.fetchCmd(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return tea.Batch(cmds...)
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, 2)
	if handler := m.handlerFor(msg); handler != nil {
		if cmd := handler(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	m.syncModal()
	if len(cmds) == 0 {
		return m, nil
	}
	return m, tea.Batch(cmds...)
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.MouseMsg{}):      m.handleMouseMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(fetchSettledMsg{}):   m.handleFetchSettledMsg,
		reflect.TypeOf(clipboardMsg{}):      m.handleClipboardMsg,
		reflect.TypeOf(spinner.TickMsg{}):   m.handleSpinnerTickMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return m.handleOtherMsg
}

// handleOtherMsg forwards cursor blinks and similar internal messages to the
// search box.
func (m *Model) handleOtherMsg(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	return cmd
}

// State returns the current UI state snapshot.
func (m *Model) State() uistate.State {
	return m.dispatcher.State()
}

// Result returns the fetch outcome observed by the view.
func (m *Model) Result() fetch.Result {
	return m.result
}

// dispatch applies an action and keeps derived view state in step.
func (m *Model) dispatch(a uistate.Action) uistate.State {
	before := m.dispatcher.State()
	after := m.dispatcher.Dispatch(a)
	if before.Search != after.Search && m.result.Status == fetch.Success {
		m.list.Sync(m.result.Records, after.Search)
		m.traceFilter(after.Search)
	}
	return after
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	size, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = size.Width
	}
	if !m.fixedHeight {
		m.height = size.Height
	}
	m.resizeSearch()
	m.ensureCursorVisible()
	traceResize(m.width, m.height)
	return nil
}

func (m *Model) viewWidth() int {
	if m.width <= 0 {
		return defaultWidth
	}
	return m.width
}

func (m *Model) viewHeight() int {
	if m.height <= 0 {
		return defaultHeight
	}
	return m.height
}

func (m *Model) setInfo(message string) {
	m.infoMsg = message
	m.infoExpire = time.Now().Add(5 * time.Second)
}

func (m *Model) forceClearInfo() {
	m.infoMsg = ""
	m.infoExpire = time.Time{}
}

func (m *Model) currentInfo() string {
	if m.infoMsg != "" && !m.infoExpire.IsZero() && time.Now().After(m.infoExpire) {
		m.infoMsg = ""
		m.infoExpire = time.Time{}
	}
	return m.infoMsg
}
