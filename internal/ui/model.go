package ui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"countryexplorer/internal/config"
	"countryexplorer/internal/countries"
	"countryexplorer/internal/ui/logic"
	"countryexplorer/internal/ui/state"
	"countryexplorer/internal/ui/views"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
	filterWidth   = 40
)

// Model represents the UI state
type Model struct {
	ctx     context.Context
	config  *config.Config
	fetcher countries.Fetcher
	logger  *zap.Logger
	state   *state.AppState // query outcome

	// UI-specific state not in AppState
	width       int
	height      int
	filterInput textinput.Model // owns the filter string
	table       table.Model
	spinner     spinner.Model
	help        help.Model
	keys        keyMap
	inPagerMode bool // tracks if we're currently in pager mode

	renderer     *views.Renderer
	helpRenderer *HelpRenderer
	helpOps      *HelpOps

	now func() time.Time

	// Program reference for terminal management
	program *tea.Program
}

// NewModel creates a new UI model. The countries query is started by Init.
func NewModel(ctx context.Context, cfg *config.Config, fetcher countries.Fetcher, logger *zap.Logger) *Model {
	if logger == nil {
		logger = zap.NewNop()
	}

	ti := textinput.New()
	ti.Placeholder = views.FilterPlaceholder
	ti.Prompt = "Filter: "
	ti.Width = filterWidth
	ti.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	m := &Model{
		ctx:          ctx,
		config:       cfg,
		fetcher:      fetcher,
		logger:       logger,
		state:        state.NewAppState(),
		width:        defaultWidth,
		height:       defaultHeight,
		filterInput:  ti,
		spinner:      sp,
		help:         help.New(),
		keys:         newKeyMap(),
		renderer:     views.NewRenderer(),
		helpRenderer: NewHelpRenderer(),
		helpOps:      NewHelpOps(nil),
		now:          time.Now,
	}

	m.table = table.New(
		table.WithColumns(tableColumns(m.width)),
		table.WithFocused(true),
		table.WithHeight(views.TableHeight(m.height, cfg.UISettings.ShowHelp)),
		table.WithStyles(views.TableStyles()),
		table.WithKeyMap(tableKeyMap()),
	)

	return m
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.helpOps = NewHelpOps(p)
}

// SetFilter replaces the filter string
func (m *Model) SetFilter(value string) {
	m.filterInput.SetValue(value)
	m.filterInput.CursorEnd()
	m.onFilterChanged()
}

// Filter returns the current filter string
func (m *Model) Filter() string {
	return m.filterInput.Value()
}

// Init starts the one countries query together with the spinner and cursor blink
func (m *Model) Init() tea.Cmd {
	m.state.Start(m.now())
	return tea.Batch(m.spinner.Tick, textinput.Blink, m.fetchCountries)
}

// fetchCountries runs the countries query. It runs off the event loop and
// only touches immutable fields.
func (m *Model) fetchCountries() tea.Msg {
	ctx, cancel := context.WithTimeout(m.ctx, m.config.RequestTimeout())
	defer cancel()

	result, err := m.fetcher.FetchCountries(ctx)
	return countriesLoadedMsg{countries: result, err: err}
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.resize()
		return m, nil

	case countriesLoadedMsg:
		m.state.Resolve(msg.countries, msg.err, m.now())
		if msg.err != nil {
			m.logger.Info("Countries query failed", zap.Error(msg.err))
		} else {
			m.logger.Info("Countries loaded",
				zap.Int("count", len(msg.countries)),
				zap.Duration("elapsed", m.state.Elapsed()))
		}
		m.refreshTable()
		return m, nil

	case spinner.TickMsg:
		// Stop ticking once the query has resolved
		if !m.state.Loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case helpPagerMsg:
		if msg.err != nil {
			// Pager failed: log only; do not surface in the view
			m.logger.Warn("Help pager failed", zap.Error(msg.err))
		}
		return m, nil

	case pauseRenderingMsg:
		m.inPagerMode = true
		return m, nil

	case resumeRenderingMsg:
		m.inPagerMode = false
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	// Cursor blink and anything else the text input understands
	var cmd tea.Cmd
	m.filterInput, cmd = m.filterInput.Update(msg)
	return m, cmd
}

// handleKey routes a key press to a binding, the table or the filter input
func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.logger.Debug("Quit requested")
		return m, tea.Quit

	case key.Matches(msg, m.keys.Clear):
		m.SetFilter("")
		return m, nil

	case key.Matches(msg, m.keys.Help):
		if m.program == nil {
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}
		return m, m.showHelpPager(m.helpRenderer.RenderHelpContent())

	case key.Matches(msg, m.keys.Up, m.keys.Down, m.keys.PageUp, m.keys.PageDown):
		var cmd tea.Cmd
		m.table, cmd = m.table.Update(msg)
		return m, cmd
	}

	before := m.filterInput.Value()
	var cmd tea.Cmd
	m.filterInput, cmd = m.filterInput.Update(msg)
	if m.filterInput.Value() != before {
		m.onFilterChanged()
	}
	return m, cmd
}

// showHelpPager returns a command that shows help using ov pager
func (m *Model) showHelpPager(helpContent string) tea.Cmd {
	return func() tea.Msg {
		// Send pause message to stop rendering
		m.program.Send(pauseRenderingMsg{})

		err := m.helpOps.ShowHelpInPager(helpContent)

		// Send resume message to restart rendering
		m.program.Send(resumeRenderingMsg{})

		return helpPagerMsg{err: err}
	}
}

// onFilterChanged keeps the clear binding and the table rows in step with the filter
func (m *Model) onFilterChanged() {
	m.keys.Clear.SetEnabled(logic.ClearVisible(m.Filter()))
	m.refreshTable()
	m.table.SetCursor(0)
}

// refreshTable loads the filtered countries into the table
func (m *Model) refreshTable() {
	filtered := logic.FilterCountries(m.state.Countries, m.Filter())
	rows := make([]table.Row, 0, len(filtered))
	for _, c := range filtered {
		rows = append(rows, table.Row{c.Name, c.Code})
	}
	m.table.SetRows(rows)
}

// resize re-lays out the table for the current window
func (m *Model) resize() {
	m.table.SetColumns(tableColumns(m.width))
	m.table.SetHeight(views.TableHeight(m.height, m.config.UISettings.ShowHelp))
	m.table.SetWidth(views.NameColumnWidth(m.width) + views.CodeColumnWidth + 4)
}

func tableColumns(width int) []table.Column {
	return []table.Column{
		{Title: "Country Name", Width: views.NameColumnWidth(width)},
		{Title: "Code", Width: views.CodeColumnWidth},
	}
}

// DisplayState derives the display state from the query outcome and the filter
func (m *Model) DisplayState() logic.DisplayState {
	filter := m.Filter()
	filtered := logic.FilterCountries(m.state.Countries, filter)
	return logic.SelectDisplayState(m.state.Loading, m.state.Err, filter, filtered)
}

// View renders the UI
func (m *Model) View() string {
	if m.inPagerMode {
		return ""
	}

	display := m.DisplayState()
	vs := views.ViewState{
		Width:        m.width,
		Height:       m.height,
		FilterInput:  m.filterInput.View(),
		ClearVisible: logic.ClearVisible(m.Filter()),
		Display:      display,
		Spinner:      m.spinner.View(),
		Total:        len(m.state.Countries),
		ShowHelp:     m.config.UISettings.ShowHelp,
		HelpView:     m.help.View(m.keys),
	}
	if display.Kind == logic.DisplayResults {
		vs.Table = m.table.View()
	}

	return m.renderer.Render(vs)
}
