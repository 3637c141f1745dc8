package tui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mvanholt/croon/internal/browser"
	"github.com/mvanholt/croon/internal/catalog"
	"github.com/mvanholt/croon/internal/core"
	"github.com/mvanholt/croon/internal/player"
	"github.com/mvanholt/croon/internal/session"
	"github.com/mvanholt/croon/internal/tui/components"
	"github.com/mvanholt/croon/internal/tui/styles"
)

// Panel represents which panel is focused
type Panel int

const (
	PanelNowPlaying Panel = iota
	PanelQueue
	PanelLyrics
)

const panelCount = 3

const searchDebounce = 300 * time.Millisecond

// App holds the TUI application state
type App struct {
	session     *session.Session
	catalog     *catalog.Client
	refreshRate time.Duration
	searchLimit int
}

// NewApp creates a new TUI application
func NewApp(sess *session.Session, cat *catalog.Client, refreshRate time.Duration, searchLimit int) *App {
	if refreshRate == 0 {
		refreshRate = 500 * time.Millisecond
	}
	return &App{
		session:     sess,
		catalog:     cat,
		refreshRate: refreshRate,
		searchLimit: searchLimit,
	}
}

// Model is the main TUI model
type Model struct {
	app          *App
	width        int
	height       int
	focusedPanel Panel

	// State
	state *core.PlaybackState

	// Components
	nowPlaying *components.NowPlaying
	queueView  *components.Queue
	lyricsView *components.Lyrics

	// Lyrics state
	lyricsTrackID string
	lyricsText    string
	lyricsLoading bool

	// Overlays
	showHelp bool

	// Search state
	showSearch    bool
	searchInput   textinput.Model
	searchResults []core.Track
	searchCursor  int
	searching     bool
	lastQuery     string
	searchErr     error

	// Error handling
	lastError   error
	errorExpiry time.Time // When to clear the error

	// Quit flag
	quitting bool
}

// NewModel creates a new TUI model
func NewModel(app *App) Model {
	ti := textinput.New()
	ti.Placeholder = "Search for songs..."
	ti.CharLimit = 100
	ti.Width = 50

	return Model{
		app:          app,
		focusedPanel: PanelNowPlaying,
		nowPlaying:   components.NewNowPlaying(),
		queueView:    components.NewQueue(),
		lyricsView:   components.NewLyrics(),
		searchInput:  ti,
	}
}

// Messages
type tickMsg time.Time
type errMsg error

type lyricsMsg struct {
	trackID string
	text    string
}

// Search messages
type searchDebounceMsg struct{ query string }
type searchResultsMsg struct {
	query   string
	results []core.Track
	err     error
}

// Commands
func (m Model) tick() tea.Cmd {
	return tea.Tick(m.app.refreshRate, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m Model) fetchLyrics(trackID string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		text := m.app.catalog.Lyrics(ctx, trackID)
		return lyricsMsg{trackID: trackID, text: text}
	}
}

func (m Model) doSearch(query string) tea.Cmd {
	return func() tea.Msg {
		if query == "" {
			return searchResultsMsg{query: query}
		}

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		results, err := m.app.catalog.Search(ctx, query, m.app.searchLimit)
		return searchResultsMsg{query: query, results: results, err: err}
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return m.tick()
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tickMsg:
		return m.handleTick()

	case lyricsMsg:
		// Ignore responses for tracks we've moved past
		if msg.trackID == m.lyricsTrackID {
			m.lyricsLoading = false
			m.lyricsText = msg.text
			m.lyricsView.Reset()
		}
		return m, nil

	case errMsg:
		m.lastError = msg
		m.errorExpiry = time.Now().Add(5 * time.Second) // Show error for 5 seconds
		return m, nil

	case searchDebounceMsg:
		if msg.query == m.searchInput.Value() && msg.query != m.lastQuery {
			m.lastQuery = msg.query
			m.searching = true
			return m, m.doSearch(msg.query)
		}

	case searchResultsMsg:
		// Discard results for anything but the latest query
		if msg.query == m.lastQuery {
			m.searching = false
			m.searchResults = msg.results
			m.searchErr = msg.err
			m.searchCursor = 0
		}
		return m, nil
	}

	// Forward other messages to textinput when search is active
	if m.showSearch {
		var inputCmd tea.Cmd
		m.searchInput, inputCmd = m.searchInput.Update(msg)
		return m, inputCmd
	}

	return m, nil
}

func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if time.Now().After(m.errorExpiry) {
		m.lastError = nil
	}

	sess := m.app.session
	m.state = player.Snapshot(sess.Port())

	if sess.ShouldAutoAdvance(m.state) {
		sess.Advance()
		m.state = player.Snapshot(sess.Port())
	}

	cmds := []tea.Cmd{m.tick()}

	// Refresh lyrics when the current track changes
	if cur := sess.Current(); cur != nil {
		if cur.ID != m.lyricsTrackID {
			m.lyricsTrackID = cur.ID
			m.lyricsText = ""
			m.lyricsLoading = true
			cmds = append(cmds, m.fetchLyrics(cur.ID))
		}
	} else if m.lyricsTrackID != "" {
		m.lyricsTrackID = ""
		m.lyricsText = ""
		m.lyricsLoading = false
	}

	return m, tea.Batch(cmds...)
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Global keys (always work)
	if msg.String() == "ctrl+c" {
		m.quitting = true
		return m, tea.Quit
	}

	// Help overlay
	if m.showHelp {
		switch msg.String() {
		case "?", "esc", "q":
			m.showHelp = false
		}
		return m, nil
	}

	// Search overlay
	if m.showSearch {
		return m.handleSearchKeyPress(msg)
	}

	sess := m.app.session

	// Normal mode
	switch msg.String() {
	case "q":
		m.quitting = true
		return m, tea.Quit

	case "?":
		m.showHelp = true
		return m, nil

	case "/":
		m.showSearch = true
		m.searchInput.SetValue("")
		m.searchInput.Focus()
		m.searchResults = nil
		m.searchCursor = 0
		m.lastQuery = ""
		m.searchErr = nil
		return m, textinput.Blink

	case "tab":
		m.focusedPanel = (m.focusedPanel + 1) % panelCount
		return m, nil

	case "shift+tab":
		m.focusedPanel = (m.focusedPanel + panelCount - 1) % panelCount
		return m, nil
	}

	// Playback controls
	switch msg.String() {
	case " ":
		sess.Port().TogglePause()
		return m, nil
	case "n":
		sess.Advance()
		return m, nil
	case "p":
		sess.Retreat()
		return m, nil
	case "s":
		sess.ToggleShuffle()
		return m, nil
	case "r":
		sess.CycleRepeat()
		return m, nil
	case "c":
		sess.Clear()
		m.queueView.SetCursor(0)
		return m, nil
	case "+", "=":
		return m, m.adjustVolume(5)
	case "-":
		return m, m.adjustVolume(-5)
	case "right":
		sess.Port().Seek(10, player.SeekRelative)
		return m, nil
	case "left":
		sess.Port().Seek(-10, player.SeekRelative)
		return m, nil
	case "o":
		if cur := sess.Current(); cur != nil {
			if err := browser.Open(cur.WatchURL()); err != nil {
				return m, func() tea.Msg { return errMsg(err) }
			}
		}
		return m, nil
	}

	// Panel-specific keys
	switch m.focusedPanel {
	case PanelQueue:
		switch msg.String() {
		case "j", "down":
			m.queueView.CursorDown(sess.Len())
		case "k", "up":
			m.queueView.CursorUp()
		case "enter":
			sess.PlayIndex(m.queueView.Cursor())
		case "d", "x":
			sess.Remove(m.queueView.Cursor())
			m.queueView.ClampCursor(sess.Len())
		case "J":
			i := m.queueView.Cursor()
			if sess.Move(i, i+1) {
				m.queueView.SetCursor(i + 1)
			}
		case "K":
			i := m.queueView.Cursor()
			if sess.Move(i, i-1) {
				m.queueView.SetCursor(i - 1)
			}
		}
	case PanelLyrics:
		switch msg.String() {
		case "j", "down":
			m.lyricsView.ScrollDown()
		case "k", "up":
			m.lyricsView.ScrollUp()
		}
	}

	return m, nil
}

func (m Model) handleSearchKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg.String() {
	case "esc":
		m.showSearch = false
		m.searchInput.Blur()
		return m, nil

	case "enter":
		if len(m.searchResults) > 0 && m.searchCursor < len(m.searchResults) {
			track := m.searchResults[m.searchCursor]
			sess := m.app.session

			wasIdle := sess.CurrentIndex() < 0
			sess.Add(track)
			if wasIdle {
				sess.PlayIndex(sess.Len() - 1)
			}

			m.showSearch = false
			m.searchInput.Blur()
		}
		return m, nil

	case "ctrl+q":
		// Add to queue without starting playback
		if len(m.searchResults) > 0 && m.searchCursor < len(m.searchResults) {
			m.app.session.Add(m.searchResults[m.searchCursor])
		}
		return m, nil

	case "up", "ctrl+p":
		if m.searchCursor > 0 {
			m.searchCursor--
		}
		return m, nil

	case "down", "ctrl+n":
		if m.searchCursor < len(m.searchResults)-1 {
			m.searchCursor++
		}
		return m, nil
	}

	// Handle text input
	var inputCmd tea.Cmd
	m.searchInput, inputCmd = m.searchInput.Update(msg)
	cmds = append(cmds, inputCmd)

	// Debounce search
	if m.searchInput.Value() != m.lastQuery {
		cmds = append(cmds, tea.Tick(searchDebounce, func(time.Time) tea.Msg {
			return searchDebounceMsg{query: m.searchInput.Value()}
		}))
	}

	return m, tea.Batch(cmds...)
}

func (m Model) adjustVolume(delta int) tea.Cmd {
	port := m.app.session.Port()
	vol := port.Volume() + delta
	if vol > 100 {
		vol = 100
	}
	if vol < 0 {
		vol = 0
	}
	port.SetVolume(vol)
	return nil
}

// View renders the UI
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.width == 0 {
		return "Loading..."
	}

	// Show overlays if active
	if m.showHelp {
		return m.renderHelp()
	}

	if m.showSearch {
		return m.renderSearch()
	}

	// Main layout: two columns
	// Left: Now Playing (top), Queue (bottom)
	// Right: Lyrics (full height)

	leftWidth := m.width * 60 / 100
	rightWidth := m.width - leftWidth - 2
	topHeight := m.height * 40 / 100
	bottomHeight := m.height - topHeight - 2

	sess := m.app.session

	nowPlaying := m.nowPlaying.Render(
		sess.Current(), m.state, sess.Shuffle(), sess.Repeat(),
		leftWidth-2, topHeight-2, m.focusedPanel == PanelNowPlaying)
	queueView := m.queueView.Render(
		sess.Tracks(), sess.CurrentIndex(),
		leftWidth-2, bottomHeight-2, m.focusedPanel == PanelQueue)
	lyricsView := m.lyricsView.Render(
		m.lyricsText, m.lyricsLoading,
		rightWidth-2, m.height-4, m.focusedPanel == PanelLyrics)

	leftCol := lipgloss.JoinVertical(lipgloss.Left, nowPlaying, queueView)
	main := lipgloss.JoinHorizontal(lipgloss.Top, leftCol, lyricsView)

	statusBar := m.renderStatusBar()

	return lipgloss.JoinVertical(lipgloss.Left, main, statusBar)
}

func (m Model) renderStatusBar() string {
	status := styles.Dim.Render("q:quit  ?:help  /:search  space:play/pause  n:next  p:prev  s:shuffle  r:repeat  tab:switch panel")

	if m.lastError != nil {
		status = styles.Paused.Render("Error: " + m.lastError.Error())
	}

	return lipgloss.NewStyle().
		Width(m.width).
		Padding(0, 1).
		Render(status)
}

func (m Model) renderHelp() string {
	title := "Croon - Keyboard Shortcuts"
	divider := styles.Repeat("═", len(title))

	help := `
  ` + title + `
  ` + divider + `

  Global
  ──────
  q, Ctrl+C    Quit
  ?            Toggle help
  /            Search
  Tab          Next panel
  Shift+Tab    Previous panel

  Playback
  ────────
  Space        Play/Pause
  n            Next track
  p            Previous track / restart
  s            Toggle shuffle
  r            Cycle repeat (off/all/one)
  c            Clear queue
  ←/→          Seek -10s/+10s
  +/=          Volume up
  -            Volume down
  o            Open current track in browser

  Queue Panel
  ───────────
  j/↓          Move cursor down
  k/↑          Move cursor up
  Enter        Play selected
  d, x         Remove selected
  J/K          Move selected down/up

  Lyrics Panel
  ────────────
  j/↓          Scroll down
  k/↑          Scroll up

  Press ? or Esc to close
`

	return lipgloss.NewStyle().
		Width(m.width).
		Height(m.height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(styles.BorderStyle.Render(help))
}

func (m Model) renderSearch() string {
	var b strings.Builder

	b.WriteString(styles.Highlight.Render("Search"))
	b.WriteString("\n\n")

	b.WriteString(m.searchInput.View())
	b.WriteString("\n\n")

	if m.searchErr != nil {
		b.WriteString(lipgloss.NewStyle().Foreground(styles.Error).Render("Error: " + m.searchErr.Error()))
	} else if m.searching {
		b.WriteString(styles.Muted.Render("Searching..."))
	} else if len(m.searchResults) == 0 && m.searchInput.Value() != "" && m.lastQuery != "" {
		b.WriteString(styles.Muted.Render("No results found"))
	} else {
		maxResults := 10
		for i, track := range m.searchResults {
			if i >= maxResults {
				b.WriteString(styles.Muted.Render("  ...and more"))
				break
			}

			line := track.Title + " " + styles.Muted.Render(track.Artist+" • "+track.Duration)

			if i == m.searchCursor {
				b.WriteString(lipgloss.NewStyle().Background(styles.Surface).Render("> " + line))
			} else {
				b.WriteString("  " + line)
			}
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(styles.Muted.Render("↑/↓:nav  Enter:add+play  Ctrl+q:add  Esc:close"))

	content := lipgloss.NewStyle().
		Width(60).
		Padding(1, 2).
		Render(b.String())

	return lipgloss.NewStyle().
		Width(m.width).
		Height(m.height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(styles.FocusedBorder.Render(content))
}

// Run starts the TUI application
func Run(sess *session.Session, cat *catalog.Client, refreshRate time.Duration, searchLimit int, theme string) error {
	styles.SetTheme(theme)

	app := NewApp(sess, cat, refreshRate, searchLimit)
	model := NewModel(app)
	p := tea.NewProgram(model, tea.WithAltScreen())

	_, err := p.Run()
	return err
}
