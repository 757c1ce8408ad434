package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/space-defender/internal/audio"
	"github.com/vovakirdan/space-defender/internal/config"
	"github.com/vovakirdan/space-defender/internal/core"
	"github.com/vovakirdan/space-defender/internal/defender"
	"github.com/vovakirdan/space-defender/internal/storage"
)

// DefaultKeyHold is how long a key counts as held after its last press or
// auto-repeat. Terminals never report key releases.
const DefaultKeyHold = 120 * time.Millisecond

// ScoreStore is the persistence the terminal UI needs.
type ScoreStore interface {
	SaveRun(run storage.Run) (int64, error)
	TopScores(gameID string, limit int) ([]storage.ScoreEntry, error)
	HighScore(gameID string) (int, error)
	GetGameStats(gameID string) (*storage.GameStats, error)
}

var _ ScoreStore = (*storage.Store)(nil)

// Options configures a terminal session.
type Options struct {
	Config        config.DefenderConfig
	Runtime       core.RuntimeConfig
	Store         ScoreStore    // Optional
	Audio         audio.Player  // Optional
	Logger        *log.Logger   // Optional
	Clock         core.Clock    // Optional, system clock by default
	Player        string        // Name stored with scores
	KeyHold       time.Duration // Zero means DefaultKeyHold
	ScreenshotDir string        // Empty means ~/.defender/screenshots
}

// withDefaults fills in every optional field.
func (o Options) withDefaults() Options {
	if o.Runtime.Seed == 0 {
		o.Runtime.Seed = time.Now().UnixNano()
	}
	if o.Runtime.TickRate <= 0 {
		o.Runtime.TickRate = 60
	}
	if o.Audio == nil {
		o.Audio = audio.Silent{}
	}
	if o.Logger == nil {
		o.Logger = log.New(io.Discard)
	}
	if o.Clock == nil {
		o.Clock = core.SystemClock{}
	}
	if o.KeyHold <= 0 {
		o.KeyHold = DefaultKeyHold
	}
	return o
}

// GameModel is the Bubble Tea model for one game of Space Defender.
// The top row is the HUD; the rest of the terminal is the playfield.
type GameModel struct {
	opts       Options
	game       *defender.Game
	screen     *core.Screen
	raster     *core.Raster
	input      *core.InputState
	keyMapper  *KeyMapper
	tickTag    int64
	interval   time.Duration
	state      core.GameState
	best       int
	startedAt  time.Time
	exitOnBack bool // Standalone play: back quits the program
	quitting   bool
	backToMenu bool
	scoreSaved bool // Whether the run has been saved for the current game over
}

// NewGameModel creates a game model. The run starts in Init.
func NewGameModel(opts Options) GameModel {
	opts = opts.withDefaults()

	screen := core.NewScreen(opts.Runtime.ScreenW, playfieldRows(opts.Runtime.ScreenH))
	m := GameModel{
		opts:      opts,
		game:      defender.New(opts.Config, opts.Clock, opts.Runtime.Seed),
		screen:    screen,
		raster:    core.NewRaster(screen, opts.Config.Playfield.Width, opts.Config.Playfield.Height),
		input:     core.NewHoldInputState(opts.KeyHold),
		keyMapper: NewKeyMapper(),
		tickTag:   nextTickTag(),
		interval:  frameInterval(opts.Runtime.TickRate),
		startedAt: opts.Clock.Now(),
	}

	if opts.Store != nil {
		if best, err := opts.Store.HighScore(defender.GameID); err == nil {
			m.best = best
		}
	}
	return m
}

// playfieldRows leaves one row for the HUD.
func playfieldRows(height int) int {
	return core.Max(height-1, 1)
}

// Init starts the run and the tick loop.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.opts.Runtime)
	m.opts.Logger.Debug("run started", "player", m.opts.Player, "seed", m.opts.Runtime.Seed)
	return tickCmd(m.tickTag, m.interval)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		// The playfield is logical, so a resize only rescales the raster.
		m.opts.Runtime.ScreenW = msg.Width
		m.opts.Runtime.ScreenH = msg.Height
		m.screen.Resize(msg.Width, playfieldRows(msg.Height))
		return m, nil

	case TickMsg:
		if msg.Tag != m.tickTag {
			return m, nil
		}
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.game.Stop()
		m.quitting = true
		return m, tea.Quit
	}

	switch action {
	case core.ActionLeft, core.ActionRight, core.ActionFire:
		m.input.Press(action, m.opts.Clock.Now())

	case core.ActionRestart, core.ActionConfirm:
		if m.state.GameOver {
			m.restart()
		}

	case core.ActionBack:
		m.game.Stop()
		m.backToMenu = true
		if m.exitOnBack {
			m.quitting = true
			return m, tea.Quit
		}
	}

	return m, nil
}

// restart begins a new run with a fresh seed.
func (m *GameModel) restart() {
	m.opts.Runtime.Seed = time.Now().UnixNano()
	m.game.Reset(m.opts.Runtime)
	m.input.Reset()
	m.state = m.game.State()
	m.scoreSaved = false
	m.startedAt = m.opts.Clock.Now()
	m.opts.Logger.Debug("run restarted", "player", m.opts.Player, "seed", m.opts.Runtime.Seed)
}

// handleTick processes simulation ticks.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	// Stopped games let the tick chain die out
	if m.game.Phase() == core.PhaseIdle {
		return m, nil
	}

	now := m.opts.Clock.Now()
	result := m.game.Step(m.input.Frame(now))
	m.state = result.State
	m.dispatch(result.Events)

	return m, tickCmd(m.tickTag, m.interval)
}

// dispatch forwards step events to audio, the log and storage.
func (m *GameModel) dispatch(events []core.Event) {
	for _, e := range events {
		if cue, ok := audio.CueFor(e.Kind); ok {
			m.opts.Audio.Play(cue)
		}

		switch e.Kind {
		case core.EventLevelUp:
			m.opts.Logger.Debug("level up", "level", e.Value, "player", m.opts.Player)
		case core.EventGameOver:
			snap := m.game.Snapshot()
			m.opts.Logger.Debug("game over", "score", e.Value, "level", m.state.Level,
				"player", m.opts.Player, "ticks", snap.Tick, "hash", snap.Hash())
			m.saveRun()
		}
	}
}

// saveRun records the finished run once per game over.
func (m *GameModel) saveRun() {
	if m.scoreSaved {
		return
	}
	m.scoreSaved = true
	m.best = core.Max(m.best, m.state.Score)

	if m.opts.Store == nil || m.state.Score <= 0 {
		return
	}

	run := storage.Run{
		GameID:   defender.GameID,
		Player:   m.opts.Player,
		Score:    m.state.Score,
		Level:    m.state.Level,
		Duration: m.opts.Clock.Now().Sub(m.startedAt),
	}
	if _, err := m.opts.Store.SaveRun(run); err != nil {
		m.opts.Logger.Warn("could not save run", "error", err)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *GameModel) saveScreenshot() {
	m.game.Render(m.raster)

	dir := m.opts.ScreenshotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return
		}
		dir = filepath.Join(home, ".defender", "screenshots")
	}
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.opts.Logger.Warn("could not save screenshot", "error", err)
		return
	}
	m.opts.Logger.Info("screenshot saved", "path", path)
}

// View renders the HUD and the playfield.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.raster)
	if m.state.GameOver {
		m.screen.DrawMessage("GAME OVER", fmt.Sprintf("Score %d  R/Enter: restart  B: menu", m.state.Score))
	}

	return RenderHUD(m.state, m.best, m.screen.Width()) + "\n" + RenderScreen(m.screen)
}

// State returns the readout after the last tick.
func (m GameModel) State() core.GameState {
	return m.state
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run plays a single game in the terminal. Back and quit both exit.
func Run(opts Options) error {
	model := NewGameModel(opts)
	model.exitOnBack = true

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
