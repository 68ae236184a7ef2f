package ui

import (
	"context"
	"reflect"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/lyriclang/lyriclang/internal/backend"
	"github.com/lyriclang/lyriclang/internal/catalog"
	"github.com/lyriclang/lyriclang/internal/data/dispatcher"
	"github.com/lyriclang/lyriclang/internal/lexicon"
	"github.com/lyriclang/lyriclang/internal/panel"
	"github.com/lyriclang/lyriclang/internal/player"
	"github.com/lyriclang/lyriclang/internal/selection"
	"github.com/lyriclang/lyriclang/internal/state"
	"github.com/lyriclang/lyriclang/internal/theme"
	"github.com/lyriclang/lyriclang/internal/ui/command"
	uistate "github.com/lyriclang/lyriclang/internal/ui/state"
	"github.com/lyriclang/lyriclang/internal/videos"
)

const (
	defaultDebounce   = 100 * time.Millisecond
	defaultClearDelay = 100 * time.Millisecond
	defaultPlayerTick = time.Second
)

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// Catalog is the song source behind the picker.
type Catalog interface {
	GetSongByID(ctx context.Context, id string) (catalog.Song, error)
	SearchSongs(ctx context.Context, f catalog.Filters) ([]catalog.Song, error)
	GetPopularSongs(ctx context.Context, limit int) ([]catalog.Song, error)
	Suggest(query string, limit int) []catalog.Song
}

// Dictionary resolves clicked words.
type Dictionary interface {
	LookupWord(ctx context.Context, word string) (lexicon.Result, error)
}

// VideoSource suggests clips for a selected phrase.
type VideoSource interface {
	Suggest(ctx context.Context, phrase string) ([]videos.Video, error)
}

// Options configures a Model. Nil providers fall back to the built-in seed
// data without simulated latency.
type Options struct {
	Width        int
	Height       int
	ShowFooter   bool
	Verbose      bool
	Catalog      Catalog
	Dictionary   Dictionary
	Videos       VideoSource
	DefaultSong  string
	Debounce     time.Duration
	ClearDelay   time.Duration
	Throttle     time.Duration
	PlayerTick   time.Duration
	SongDuration int
	// Animate enables the loading spinner.
	Animate bool
}

// Model implements the Bubble Tea model for the lyrics reader.
type Model struct {
	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	showFooter  bool
	verbose     bool
	animate     bool
	errMsg      string
	infoMsg     string
	infoExpire  time.Time

	catalog     Catalog
	dictionary  Dictionary
	videoSource VideoSource
	defaultSong string

	runner     *backend.Runner
	bus        *command.Bus
	words      state.WordStore
	videos     state.VideoStore
	songs      state.SongStore
	dispatcher *dispatcher.Dispatcher
	router     panel.Router

	panelOffset int // scrolls the side panel body

	layout        *uistate.Layout
	layoutWidth   int
	cursorVisible bool
	activeWord    *uistate.WordRef
	hoverWord     *uistate.WordRef

	selection    selection.Range
	pressed      bool
	dragged      bool
	pressWord    *uistate.WordRef
	visual       bool
	visualAnchor uistate.WordRef
	settle       *selection.Debouncer
	clear        *selection.Debouncer
	banner       string

	search *searchState

	player       player.Player
	songDuration int
	playerTick   time.Duration
	playerGen    int

	spinner  spinner.Model
	handlers map[reflect.Type]msgHandler
}

// NewModel initialises the UI state. The default song is requested by Init.
func NewModel(opts Options) *Model {
	if opts.Catalog == nil {
		opts.Catalog = catalog.Default()
	}
	if opts.Dictionary == nil {
		opts.Dictionary = lexicon.Default()
	}
	if opts.Videos == nil {
		opts.Videos = videos.NewSource(0)
	}
	if opts.DefaultSong == "" {
		opts.DefaultSong = catalog.DefaultSongID
	}
	if opts.Debounce <= 0 {
		opts.Debounce = defaultDebounce
	}
	if opts.ClearDelay <= 0 {
		opts.ClearDelay = defaultClearDelay
	}
	if opts.PlayerTick <= 0 {
		opts.PlayerTick = defaultPlayerTick
	}
	if opts.SongDuration <= 0 {
		opts.SongDuration = player.DefaultDuration
	}
	words := state.NewWordStore()
	vids := state.NewVideoStore()
	songs := state.NewSongStore()
	m := &Model{
		showFooter:   opts.ShowFooter,
		verbose:      opts.Verbose,
		animate:      opts.Animate,
		catalog:      opts.Catalog,
		dictionary:   opts.Dictionary,
		videoSource:  opts.Videos,
		defaultSong:  opts.DefaultSong,
		runner:       backend.NewRunner(opts.Throttle),
		bus:          command.New(),
		words:        words,
		videos:       vids,
		songs:        songs,
		dispatcher:   dispatcher.New(words, vids, songs),
		settle:       selection.NewDebouncer(opts.Debounce),
		clear:        selection.NewDebouncer(opts.ClearDelay),
		songDuration: opts.SongDuration,
		playerTick:   opts.PlayerTick,
		player:       player.New(opts.SongDuration),
		layout:       uistate.NewLayout(nil, 0),
	}
	if opts.Width > 0 {
		m.width = opts.Width
		m.fixedWidth = true
	}
	if opts.Height > 0 {
		m.height = opts.Height
		m.fixedHeight = true
	}
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	if styles.Loading != nil {
		sp.Style = *styles.Loading
	}
	m.spinner = sp
	m.registerHandlers()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.loadSongCmd(m.defaultSong, true)}
	if m.animate {
		cmds = append(cmds, m.spinner.Tick)
	}
	return tea.Batch(cmds...)
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, 4)
	if handler := m.handlerFor(msg); handler != nil {
		if cmd := handler(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	} else if m.search != nil {
		// cursor blink and other input-owned messages
		var cmd tea.Cmd
		m.search.input, cmd = m.search.input.Update(msg)
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return m, m.finishUpdate(cmds)
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):         m.handleKeyMsg,
		reflect.TypeOf(tea.MouseMsg{}):       m.handleMouseMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}):  m.handleWindowSizeMsg,
		reflect.TypeOf(spinner.TickMsg{}):    m.handleSpinnerMsg,
		reflect.TypeOf(lookupResultMsg{}):    m.handleLookupResultMsg,
		reflect.TypeOf(selectionSettleMsg{}): m.handleSelectionSettleMsg,
		reflect.TypeOf(highlightClearMsg{}):  m.handleHighlightClearMsg,
		reflect.TypeOf(playerTickMsg{}):      m.handlePlayerTickMsg,
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
	return nil
}

func (m *Model) finishUpdate(cmds []tea.Cmd) tea.Cmd {
	m.syncLayout()
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

func (m *Model) handleSpinnerMsg(msg tea.Msg) tea.Cmd {
	if !m.animate {
		return nil
	}
	var cmd tea.Cmd
	m.spinner, cmd = m.spinner.Update(msg)
	return cmd
}

func (m *Model) setInfo(message string) {
	m.infoMsg = message
	m.infoExpire = time.Now().Add(5 * time.Second)
}

func (m *Model) currentInfo() string {
	if m.infoMsg != "" && !m.infoExpire.IsZero() && time.Now().After(m.infoExpire) {
		m.infoMsg = ""
		m.infoExpire = time.Time{}
	}
	return m.infoMsg
}

// PanelState exposes the router snapshot.
func (m *Model) PanelState() panel.State {
	return m.router.State()
}

// Banner is the last captured phrase, empty when cleared.
func (m *Model) Banner() string {
	return m.banner
}

// CurrentSong returns the song on screen.
func (m *Model) CurrentSong() (catalog.Song, bool) {
	return m.songs.Current(), m.songs.HasCurrent()
}
