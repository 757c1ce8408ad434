package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/space-defender/internal/audio"
	"github.com/vovakirdan/space-defender/internal/config"
	"github.com/vovakirdan/space-defender/internal/core"
	"github.com/vovakirdan/space-defender/internal/storage"
)

// fakeStore records saved runs in memory.
type fakeStore struct {
	runs []storage.Run
	best int
}

func (s *fakeStore) SaveRun(run storage.Run) (int64, error) {
	s.runs = append(s.runs, run)
	return int64(len(s.runs)), nil
}

func (s *fakeStore) TopScores(string, int) ([]storage.ScoreEntry, error) {
	entries := make([]storage.ScoreEntry, len(s.runs))
	for i, r := range s.runs {
		entries[i] = storage.ScoreEntry{ID: int64(i + 1), Player: r.Player, Score: r.Score, Level: r.Level}
	}
	return entries, nil
}

func (s *fakeStore) HighScore(string) (int, error) {
	return s.best, nil
}

func (s *fakeStore) GetGameStats(gameID string) (*storage.GameStats, error) {
	return &storage.GameStats{GameID: gameID, GamesCount: len(s.runs)}, nil
}

// fakeAudio records played cues.
type fakeAudio struct {
	cues []audio.Cue
}

func (a *fakeAudio) Play(c audio.Cue) { a.cues = append(a.cues, c) }
func (a *fakeAudio) Close() error     { return nil }

func testOptions(clock core.Clock, cfg config.DefenderConfig) Options {
	return Options{
		Config:  cfg,
		Runtime: core.RuntimeConfig{ScreenW: 80, ScreenH: 25, TickRate: 60, Seed: 7},
		Clock:   clock,
		Player:  "tester",
	}
}

// deadlyConfig ends a run on the first tick: the first enemy escapes at once.
func deadlyConfig() config.DefenderConfig {
	cfg := config.DefaultDefenderConfig()
	cfg.Session.Lives = 1
	cfg.Progression.BaseSpeed = 700
	return cfg
}

func step(t *testing.T, m GameModel, msg tea.Msg) GameModel {
	t.Helper()
	next, _ := m.Update(msg)
	gm, ok := next.(GameModel)
	if !ok {
		t.Fatalf("Update returned %T, want GameModel", next)
	}
	return gm
}

// tick builds the next tick message for m.
func (m GameModel) tick() TickMsg {
	return TickMsg{Tag: m.tickTag}
}

func TestGameModelMovesShipWhileKeyHeld(t *testing.T) {
	clock := core.NewManualClock(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	m := NewGameModel(testOptions(clock, config.DefaultDefenderConfig()))
	m.Init()

	startX := m.game.Ship().X
	m = step(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m = step(t, m, m.tick())

	if got := m.game.Ship().X; got != startX+10 {
		t.Fatalf("ship x = %v, want %v", got, startX+10)
	}

	// Past the hold window the key counts as released
	clock.Advance(DefaultKeyHold)
	m = step(t, m, m.tick())
	if got := m.game.Ship().X; got != startX+10 {
		t.Errorf("ship kept moving after hold expired: x = %v", got)
	}
}

func TestGameModelFirePlaysCue(t *testing.T) {
	clock := core.NewManualClock(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	sink := &fakeAudio{}
	opts := testOptions(clock, config.DefaultDefenderConfig())
	opts.Audio = sink

	m := NewGameModel(opts)
	m.Init()
	m = step(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	step(t, m, m.tick())

	found := false
	for _, c := range sink.cues {
		if c == audio.CueShot {
			found = true
		}
	}
	if !found {
		t.Errorf("cues = %v, want a shot", sink.cues)
	}
}

func TestGameModelSkipsZeroScoreRuns(t *testing.T) {
	clock := core.NewManualClock(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	store := &fakeStore{}
	opts := testOptions(clock, deadlyConfig())
	opts.Store = store

	m := NewGameModel(opts)
	m.Init()
	m = step(t, m, m.tick())

	if !m.State().GameOver {
		t.Fatalf("State = %+v, want game over", m.State())
	}
	if len(store.runs) != 0 {
		t.Errorf("saved %d runs, want 0 for a zero score", len(store.runs))
	}
	if !strings.Contains(m.View(), "GAME OVER") {
		t.Error("game over overlay missing from view")
	}
}

func TestGameModelSavesRunOnce(t *testing.T) {
	clock := core.NewManualClock(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	store := &fakeStore{}
	opts := testOptions(clock, config.DefaultDefenderConfig())
	opts.Store = store

	m := NewGameModel(opts)
	clock.Advance(90 * time.Second)
	m.state = core.GameState{Score: 50, Level: 2, Phase: core.PhaseGameOver, GameOver: true}
	m.saveRun()
	m.saveRun()

	if len(store.runs) != 1 {
		t.Fatalf("saved %d runs, want 1", len(store.runs))
	}
	run := store.runs[0]
	if run.Player != "tester" || run.Score != 50 || run.Level != 2 || run.Duration != 90*time.Second {
		t.Errorf("run = %+v", run)
	}
	if m.best != 50 {
		t.Errorf("best = %d, want 50", m.best)
	}
}

func TestGameModelRestart(t *testing.T) {
	clock := core.NewManualClock(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	m := NewGameModel(testOptions(clock, deadlyConfig()))
	m.Init()
	m = step(t, m, m.tick())
	if !m.State().GameOver {
		t.Fatal("expected game over")
	}

	m = step(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})

	st := m.State()
	if st.GameOver || st.Phase != core.PhaseRunning || st.Lives != 1 || st.Score != 0 {
		t.Errorf("State after restart = %+v", st)
	}
}

func TestGameModelBack(t *testing.T) {
	clock := core.NewManualClock(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	m := NewGameModel(testOptions(clock, config.DefaultDefenderConfig()))
	m.Init()

	m = step(t, m, tea.KeyMsg{Type: tea.KeyEsc})

	if !m.BackToMenu() || m.IsQuitting() {
		t.Error("esc should go back to the menu without quitting")
	}
	if m.game.Phase() != core.PhaseIdle {
		t.Errorf("Phase = %v, want idle", m.game.Phase())
	}

	// Ticks after stopping do not reschedule
	_, cmd := m.Update(m.tick())
	if cmd != nil {
		t.Error("tick after stop should not schedule another tick")
	}
}

func TestGameModelIgnoresForeignTicks(t *testing.T) {
	clock := core.NewManualClock(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	old := NewGameModel(testOptions(clock, config.DefaultDefenderConfig()))
	m := NewGameModel(testOptions(clock, config.DefaultDefenderConfig()))
	m.Init()

	_, cmd := m.Update(old.tick())
	if cmd != nil {
		t.Error("a tick from another game model should not schedule a tick")
	}
	if len(m.game.Enemies()) != 0 {
		t.Error("a tick from another game model should not step the game")
	}
}

func TestGameModelViewHasHUD(t *testing.T) {
	clock := core.NewManualClock(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	m := NewGameModel(testOptions(clock, config.DefaultDefenderConfig()))
	m.Init()
	m = step(t, m, m.tick())

	view := m.View()
	if !strings.Contains(view, "SCORE 0") || !strings.Contains(view, "LEVEL 1") {
		t.Errorf("HUD missing from view: %q", strings.SplitN(view, "\n", 2)[0])
	}
	if lines := strings.Count(view, "\n") + 1; lines != 25 {
		t.Errorf("view has %d lines, want 25", lines)
	}
}

func TestSessionMenuToGameAndBack(t *testing.T) {
	clock := core.NewManualClock(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	store := &fakeStore{best: 250}
	opts := testOptions(clock, config.DefaultDefenderConfig())
	opts.Store = store

	var model tea.Model = NewSessionModel(opts)
	if !strings.Contains(model.View(), "Best: 250") {
		t.Error("title screen should show the best score")
	}

	model, _ = model.Update(tea.KeyMsg{Type: tea.KeyEnter})
	s := model.(SessionModel)
	if s.current != screenGame {
		t.Fatalf("screen = %v, want game", s.current)
	}

	model, _ = model.Update(tea.KeyMsg{Type: tea.KeyEsc})
	s = model.(SessionModel)
	if s.current != screenMenu || s.quitting {
		t.Errorf("esc in game should return to the menu, screen = %v", s.current)
	}

	model, _ = model.Update(tea.KeyMsg{Type: tea.KeyTab})
	s = model.(SessionModel)
	if s.current != screenScores {
		t.Errorf("tab should open the scoreboard, screen = %v", s.current)
	}

	model, _ = model.Update(tea.KeyMsg{Type: tea.KeyEsc})
	s = model.(SessionModel)
	if s.current != screenMenu {
		t.Errorf("esc on the scoreboard should return to the menu, screen = %v", s.current)
	}
}

func TestRenderHUD(t *testing.T) {
	hud := RenderHUD(core.GameState{Score: 40, Lives: 2, Level: 3}, 100, 60)

	for _, want := range []string{"SCORE 40", "LEVEL 3", "♥♥", "BEST 100"} {
		if !strings.Contains(hud, want) {
			t.Errorf("HUD %q missing %q", hud, want)
		}
	}
}
