// Package window runs Space Defender in a desktop window with Ebitengine.
//
// Ebitengine reports real key releases, so held keys are sampled directly
// each tick. The logical screen is the playfield itself and Ebitengine scales
// it to the window.
package window

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/space-defender/internal/audio"
	"github.com/vovakirdan/space-defender/internal/config"
	"github.com/vovakirdan/space-defender/internal/core"
	"github.com/vovakirdan/space-defender/internal/defender"
	"github.com/vovakirdan/space-defender/internal/storage"
)

// ScoreStore is the persistence the window frontend needs.
type ScoreStore interface {
	SaveRun(run storage.Run) (int64, error)
	HighScore(gameID string) (int, error)
}

// Options configures a window session.
type Options struct {
	Config   config.DefenderConfig
	Seed     int64        // Zero means time-based
	TickRate int          // Zero means 60
	Scale    float64      // Window size relative to the playfield, zero means 1
	Store    ScoreStore   // Optional
	Audio    audio.Player // Optional
	Logger   *log.Logger  // Optional
	Clock    core.Clock   // Optional, system clock by default
	Player   string
}

func (o Options) withDefaults() Options {
	if o.Seed == 0 {
		o.Seed = time.Now().UnixNano()
	}
	if o.TickRate <= 0 {
		o.TickRate = 60
	}
	if o.Scale <= 0 {
		o.Scale = 1
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
	return o
}

// keyBindings lists the physical keys for each held action.
var keyBindings = map[core.Action][]ebiten.Key{
	core.ActionLeft:  {ebiten.KeyArrowLeft, ebiten.KeyA},
	core.ActionRight: {ebiten.KeyArrowRight, ebiten.KeyD},
	core.ActionFire:  {ebiten.KeySpace, ebiten.KeyE, ebiten.KeyArrowUp, ebiten.KeyW},
}

// heldActions reports which bound actions have at least one key down.
func heldActions(pressed func(ebiten.Key) bool) map[core.Action]bool {
	held := make(map[core.Action]bool, len(keyBindings))
	for action, keys := range keyBindings {
		for _, k := range keys {
			if pressed(k) {
				held[action] = true
				break
			}
		}
	}
	return held
}

// Game adapts a defender.Game to ebiten.Game.
type Game struct {
	opts       Options
	game       *defender.Game
	input      *core.InputState
	canvas     *canvas // Created on first Draw
	state      core.GameState
	best       int
	startedAt  time.Time
	scoreSaved bool
}

// NewGame creates the window adapter. The run starts from the title screen.
func NewGame(opts Options) *Game {
	opts = opts.withDefaults()
	g := &Game{
		opts:  opts,
		game:  defender.New(opts.Config, opts.Clock, opts.Seed),
		input: core.NewInputState(),
	}
	g.state = g.game.State()

	if opts.Store != nil {
		if best, err := opts.Store.HighScore(defender.GameID); err == nil {
			g.best = best
		}
	}
	return g
}

// start begins a fresh run.
func (g *Game) start() {
	g.game.Reset(core.RuntimeConfig{TickRate: g.opts.TickRate, Seed: g.opts.Seed})
	g.opts.Seed = time.Now().UnixNano()
	g.input.Reset()
	g.state = g.game.State()
	g.scoreSaved = false
	g.startedAt = g.opts.Clock.Now()
	g.opts.Logger.Debug("run started", "player", g.opts.Player)
}

// Update handles menu keys and advances the simulation one tick.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	switch g.game.Phase() {
	case core.PhaseIdle:
		if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			return ebiten.Termination
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
			g.start()
		}
		return nil

	case core.PhaseGameOver:
		if inpututil.IsKeyJustPressed(ebiten.KeyR) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
			g.start()
			return nil
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.game.Stop()
		g.input.Reset()
		g.state = g.game.State()
		return nil
	}

	g.tick(heldActions(ebiten.IsKeyPressed))
	return nil
}

// tick samples held actions and steps the game.
func (g *Game) tick(held map[core.Action]bool) {
	now := g.opts.Clock.Now()
	for action := range keyBindings {
		if held[action] {
			g.input.Press(action, now)
		} else {
			g.input.Release(action)
		}
	}

	result := g.game.Step(g.input.Frame(now))
	g.state = result.State
	g.dispatch(result.Events)
}

// dispatch forwards step events to audio, the log and storage.
func (g *Game) dispatch(events []core.Event) {
	for _, e := range events {
		if cue, ok := audio.CueFor(e.Kind); ok {
			g.opts.Audio.Play(cue)
		}

		switch e.Kind {
		case core.EventLevelUp:
			g.opts.Logger.Debug("level up", "level", e.Value)
		case core.EventGameOver:
			g.opts.Logger.Debug("game over", "score", e.Value, "level", g.state.Level)
			g.saveRun()
		}
	}
}

// saveRun records the finished run once per game over.
func (g *Game) saveRun() {
	if g.scoreSaved {
		return
	}
	g.scoreSaved = true
	g.best = max(g.best, g.state.Score)

	if g.opts.Store == nil || g.state.Score <= 0 {
		return
	}
	run := storage.Run{
		GameID:   defender.GameID,
		Player:   g.opts.Player,
		Score:    g.state.Score,
		Level:    g.state.Level,
		Duration: g.opts.Clock.Now().Sub(g.startedAt),
	}
	if _, err := g.opts.Store.SaveRun(run); err != nil {
		g.opts.Logger.Warn("could not save run", "error", err)
	}
}

// Draw renders the playfield, the HUD and any overlay.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.canvas == nil {
		g.canvas = newCanvas()
	}
	g.canvas.target(screen)
	g.game.Render(g.canvas)

	ebitenutil.DebugPrintAt(screen, hudText(g.state, g.best), 8, 6)

	w, h := g.Layout(0, 0)
	switch g.state.Phase {
	case core.PhaseIdle:
		drawCentered(screen, w, h/2-16, "S P A C E   D E F E N D E R")
		drawCentered(screen, w, h/2+4, "ENTER: start   ESC: quit")
		drawCentered(screen, w, h/2+20, "A/D or arrows move   SPACE fire")
	case core.PhaseGameOver:
		drawCentered(screen, w, h/2-8, "GAME OVER")
		drawCentered(screen, w, h/2+8, fmt.Sprintf("Score %d   R: restart   ESC: title", g.state.Score))
	}
}

// Layout keeps the logical screen at playfield size.
func (g *Game) Layout(int, int) (int, int) {
	field := g.game.Config().Playfield
	return int(field.Width), int(field.Height)
}

// State returns the readout after the last tick.
func (g *Game) State() core.GameState {
	return g.state
}

// hudText is the top-left readout.
func hudText(st core.GameState, best int) string {
	return fmt.Sprintf("SCORE %d   LEVEL %d   LIVES %d   BEST %d", st.Score, st.Level, st.Lives, max(best, st.Score))
}

// debugGlyphW is the advance of ebitenutil's debug font.
const debugGlyphW = 6

func drawCentered(screen *ebiten.Image, width, y int, text string) {
	x := (width - len(text)*debugGlyphW) / 2
	ebitenutil.DebugPrintAt(screen, text, max(x, 0), y)
}

// Run opens the window and blocks until it is closed.
func Run(opts Options) error {
	g := NewGame(opts)

	ebiten.SetWindowSize(
		int(g.opts.Config.Playfield.Width*g.opts.Scale),
		int(g.opts.Config.Playfield.Height*g.opts.Scale),
	)
	ebiten.SetWindowTitle(g.game.Title())
	ebiten.SetWindowResizable(true)
	ebiten.SetTPS(g.opts.TickRate)

	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}
