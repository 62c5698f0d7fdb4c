package ui

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	log "github.com/sirupsen/logrus"

	"munros/internal/api"
	"munros/internal/config"
	"munros/internal/domain"
	"munros/internal/ui/logic"
	"munros/internal/ui/views"
)

const defaultTableHeight = 15

// Model is the single view of the application. It owns the search text and
// the munros currently shown. All state changes happen inside Update.
type Model struct {
	client api.Client
	log    log.FieldLogger

	// Search state
	input  textinput.Model
	search string

	// Result state; replaced wholesale by each applied fetch
	munros []domain.Munro
	shown  string // search text the held munros belong to

	// Fetch bookkeeping
	ctx      context.Context
	fetches  logic.Sequencer
	cancel   context.CancelFunc // cancels the latest in-flight fetch
	loading  bool
	debounce time.Duration
	pending  logic.Sequencer // debounce tags

	// Presentation
	width    int
	height   int
	keys     keyMap
	table    table.Model
	help     help.Model
	renderer *views.Renderer
	helpText *HelpRenderer
}

// NewModel creates the view. A nil logger discards diagnostics.
func NewModel(ctx context.Context, cfg *config.Config, client api.Client, logger log.FieldLogger) *Model {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if logger == nil {
		discard := log.New()
		discard.SetOutput(io.Discard)
		logger = discard
	}

	keys := defaultKeyMap()
	renderer := views.NewRenderer(nil)

	input := textinput.New()
	input.Placeholder = cfg.UI.Placeholder
	input.Prompt = "> "
	input.Focus()

	tbl := table.New(
		table.WithColumns(views.Columns(80)),
		table.WithRows([]table.Row{}),
		table.WithHeight(defaultTableHeight),
		table.WithFocused(true),
		table.WithKeyMap(keys.tableKeys()),
		table.WithStyles(renderer.Styles().TableStyles()),
	)

	return &Model{
		client:   client,
		log:      logger,
		input:    input,
		ctx:      ctx,
		debounce: cfg.UI.Debounce.Duration,
		keys:     keys,
		table:    tbl,
		help:     help.New(),
		renderer: renderer,
		helpText: NewHelpRenderer(),
	}
}

// Init fetches the full listing and starts the cursor blinking
func (m *Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.fetch(m.search))
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		return m, m.handleKey(msg)

	case listingLoadedMsg:
		m.applyListing(msg)
		return m, nil

	case listingFailedMsg:
		m.handleFailure(msg)
		return m, nil

	case debounceElapsedMsg:
		if !m.pending.IsCurrent(msg.tag) {
			return m, nil
		}
		return m, m.fetch(m.search)

	case pagerClosedMsg:
		if msg.err != nil {
			m.log.WithError(msg.err).WithField("pager", msg.what).Error("Pager failed")
		}
		return m, nil
	}

	// Cursor blink and anything else the input understands
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the UI
func (m *Model) View() string {
	return m.renderer.Render(views.ViewState{
		Width:    m.width,
		Height:   m.height,
		Input:    m.input.View(),
		Table:    m.table.View(),
		Count:    len(m.munros),
		Loading:  m.loading,
		Search:   m.shown,
		HelpLine: m.help.View(m.keys),
	})
}

// SetSearch replaces the search text. A change schedules a fetch; setting
// the same text again does nothing.
func (m *Model) SetSearch(text string) tea.Cmd {
	if m.input.Value() != text {
		m.input.SetValue(text)
	}
	if text == m.search {
		return nil
	}
	m.search = text
	return m.scheduleFetch()
}

// Search returns the current search text
func (m *Model) Search() string {
	return m.search
}

// Munros returns the munros currently displayed, in display order
func (m *Model) Munros() []domain.Munro {
	return m.munros
}

// Rows returns the rendered table rows
func (m *Model) Rows() []table.Row {
	return m.table.Rows()
}

// Loading reports whether the latest fetch is still in flight
func (m *Model) Loading() bool {
	return m.loading
}

// Close cancels any in-flight fetch
func (m *Model) Close() {
	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
	}
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.Close()
		return tea.Quit

	case key.Matches(msg, m.keys.Help):
		return openPager("help", m.helpText.renderHelpContent())

	case key.Matches(msg, m.keys.Details):
		selected, ok := m.selected()
		if !ok {
			return nil
		}
		return openPager("details", views.RenderDetails(selected, m.renderer.Styles()))

	case m.keys.isNavigation(msg):
		var cmd tea.Cmd
		m.table, cmd = m.table.Update(msg)
		return cmd
	}

	// Everything else edits the search text
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() == m.search {
		return cmd
	}
	return tea.Batch(cmd, m.SetSearch(m.input.Value()))
}

// scheduleFetch fetches immediately, or after the debounce period when one
// is configured
func (m *Model) scheduleFetch() tea.Cmd {
	if m.debounce <= 0 {
		return m.fetch(m.search)
	}
	tag := m.pending.Next()
	return tea.Tick(m.debounce, func(time.Time) tea.Msg {
		return debounceElapsedMsg{tag: tag}
	})
}

// fetch dispatches a listing request tagged with a new sequence token and
// cancels the request it supersedes
func (m *Model) fetch(search string) tea.Cmd {
	if m.cancel != nil {
		m.cancel()
	}
	ctx, cancel := context.WithCancel(m.ctx)
	m.cancel = cancel
	seq := m.fetches.Next()
	m.loading = true

	client := m.client
	logger := m.log.WithFields(log.Fields{"search": search, "seq": seq})
	logger.Debug("Fetching listing")

	return func() tea.Msg {
		munros, err := client.List(ctx, search)
		if err != nil {
			return listingFailedMsg{seq: seq, search: search, err: err}
		}
		return listingLoadedMsg{seq: seq, listing: domain.Listing{Search: search, Munros: munros}}
	}
}

// applyListing replaces the held munros if the result is still current
func (m *Model) applyListing(msg listingLoadedMsg) {
	logger := m.log.WithFields(log.Fields{"search": msg.listing.Search, "seq": msg.seq})
	if !m.fetches.IsCurrent(msg.seq) {
		logger.Debug("Discarding stale listing")
		return
	}

	m.loading = false
	m.munros = msg.listing.Munros
	m.shown = msg.listing.Search
	m.table.SetRows(views.Rows(m.munros))
	if len(m.munros) > 0 {
		m.table.SetCursor(0)
	}
	logger.WithField("count", msg.listing.Len()).Debug("Listing applied")
}

// handleFailure logs a failed fetch. The held munros stay as they were.
func (m *Model) handleFailure(msg listingFailedMsg) {
	logger := m.log.WithFields(log.Fields{"search": msg.search, "seq": msg.seq}).WithError(msg.err)
	if !m.fetches.IsCurrent(msg.seq) {
		if errors.Is(msg.err, context.Canceled) {
			logger.Debug("Superseded fetch canceled")
		} else {
			logger.Warn("Stale listing fetch failed")
		}
		return
	}

	m.loading = false
	logger.Error("Listing fetch failed")
}

func (m *Model) selected() (domain.Munro, bool) {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.munros) {
		return domain.Munro{}, false
	}
	return m.munros[i], true
}

func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height
	m.help.Width = width

	m.input.Width = width - 4 - 2 - 2 - len(m.input.Prompt)
	m.table.SetColumns(views.Columns(width - 4))

	bodyHeight := height - views.ChromeHeight
	if bodyHeight < 3 {
		bodyHeight = 3
	}
	m.table.SetHeight(bodyHeight)
}
