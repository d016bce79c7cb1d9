package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-sweeper/internal/core"
	"github.com/vovakirdan/tui-sweeper/internal/registry"
	"github.com/vovakirdan/tui-sweeper/internal/storage"
)

// stubGame records what the platform feeds it.
type stubGame struct {
	resets  int
	resized [2]int
	state   core.GameState
	steps   []core.InputFrame
}

func (g *stubGame) ID() string    { return "stub" }
func (g *stubGame) Title() string { return "Stub Board" }

func (g *stubGame) Reset(core.RuntimeConfig) {
	g.resets++
	g.state = core.GameState{}
}

func (g *stubGame) Step(in core.InputFrame) core.StepResult {
	g.steps = append(g.steps, in.Clone())
	return core.StepResult{State: g.state}
}

func (g *stubGame) Render(dst *core.Screen) { dst.DrawText(0, 0, "stub") }
func (g *stubGame) State() core.GameState   { return g.state }

func (g *stubGame) Summary() registry.Summary {
	return registry.Summary{Won: g.state.Won, Revealed: 71, Width: 9, Height: 9, Bombs: 10}
}

func (g *stubGame) Resize(w, h int) { g.resized = [2]int{w, h} }

// plainGame hides the optional interfaces of the game it wraps.
type plainGame struct{ registry.Game }

func init() {
	registry.Register("stub", func() registry.Game { return &stubGame{} })
}

var testConfig = core.RuntimeConfig{ScreenW: 40, ScreenH: 12, TickRate: 60, Seed: 1}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func update(t *testing.T, m GameModel, msg tea.Msg) (GameModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	gm, ok := next.(GameModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return gm, cmd
}

func openTestStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "results.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestGameModelReservesHelpRow(t *testing.T) {
	g := &stubGame{}
	m := NewGameModel(g, nil, testConfig)

	if m.screen.Height() != testConfig.ScreenH-helpRows {
		t.Errorf("screen height = %d, expected %d", m.screen.Height(), testConfig.ScreenH-helpRows)
	}

	m.Init()
	if g.resets != 1 {
		t.Errorf("Init should reset the game once, got %d", g.resets)
	}
	if view := m.View(); !strings.Contains(view, "stub") || !strings.Contains(view, "reveal") {
		t.Errorf("View() should contain the game and the key help:\n%s", view)
	}
}

func TestGameModelForwardsInput(t *testing.T) {
	g := &stubGame{}
	m := NewGameModel(g, nil, testConfig)
	m.Init()

	m, _ = update(t, m, runes("f"))
	m, _ = update(t, m, tea.MouseMsg{X: 3, Y: 4, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m, _ = update(t, m, tea.MouseMsg{X: 5, Y: 4, Action: tea.MouseActionMotion, Button: tea.MouseButtonNone})
	m, _ = update(t, m, TickMsg{})

	if len(g.steps) != 1 {
		t.Fatalf("expected 1 step, got %d", len(g.steps))
	}
	in := g.steps[0]
	if !in.Has(core.ActionMark) {
		t.Error("mark key not forwarded")
	}
	if len(in.Pointers) != 1 || in.Pointers[0] != (core.PointerEvent{Col: 3, Row: 4, Button: core.PointerPrimary}) {
		t.Errorf("Pointers = %+v", in.Pointers)
	}

	// Input is cleared between ticks
	update(t, m, TickMsg{})
	if len(g.steps[1].Pointers) != 0 || g.steps[1].Has(core.ActionMark) {
		t.Errorf("second tick input = %+v", g.steps[1])
	}
}

func TestGameModelSavesResultOnce(t *testing.T) {
	store := openTestStore(t)
	g := &stubGame{}
	m := NewGameModel(g, store, testConfig)
	m.Init()

	g.state = core.GameState{Score: 71, GameOver: true, Won: true}
	m, _ = update(t, m, TickMsg{})
	update(t, m, TickMsg{})

	results, err := store.RecentResults("stub", 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 1 {
		t.Fatalf("expected 1 saved result, got %d", len(results))
	}
	r := results[0]
	if !r.Won() || r.Revealed != 71 || r.Width != 9 || r.Bombs != 10 {
		t.Errorf("saved result = %+v", r)
	}
}

func TestGameModelRestartAfterGameOver(t *testing.T) {
	store := openTestStore(t)
	g := &stubGame{}
	m := NewGameModel(g, store, testConfig)
	m.Init()

	g.state = core.GameState{GameOver: true}
	m, _ = update(t, m, TickMsg{})
	m, _ = update(t, m, runes("r"))
	m, _ = update(t, m, TickMsg{})

	if g.resets != 2 {
		t.Fatalf("expected a restart, resets = %d", g.resets)
	}
	if m.State().GameOver {
		t.Error("state should be fresh after restart")
	}

	// The next game over is recorded again
	g.state = core.GameState{GameOver: true}
	update(t, m, TickMsg{})
	results, _ := store.RecentResults("stub", 10)
	if len(results) != 2 {
		t.Errorf("expected 2 results, got %d", len(results))
	}
}

func TestGameModelQuitAndBack(t *testing.T) {
	m := NewGameModel(&stubGame{}, nil, testConfig)
	m.Init()

	back, cmd := update(t, m, runes("b"))
	if !back.BackToMenu() || cmd != nil {
		t.Error("back inside a session should return to the menu without quitting")
	}

	m.standalone = true
	if _, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEsc}); cmd == nil {
		t.Error("back in a standalone game should quit")
	}

	quit, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	if !quit.IsQuitting() || cmd == nil {
		t.Error("ctrl+c should quit")
	}
	if quit.View() != "" {
		t.Error("View() should be empty after quitting")
	}
}

func TestGameModelResize(t *testing.T) {
	g := &stubGame{}
	m := NewGameModel(g, nil, testConfig)
	m.Init()

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	if g.resized != [2]int{100, 29} {
		t.Errorf("Resize got %v, expected [100 29]", g.resized)
	}
	if g.resets != 1 {
		t.Error("a Resizer should not be reset on resize")
	}
	if m.screen.Width() != 100 || m.screen.Height() != 29 {
		t.Errorf("screen = %dx%d", m.screen.Width(), m.screen.Height())
	}

	p := &stubGame{}
	pm := NewGameModel(plainGame{p}, nil, testConfig)
	pm.Init()
	update(t, pm, tea.WindowSizeMsg{Width: 100, Height: 30})
	if p.resets != 2 {
		t.Errorf("a plain game should be reset on resize, resets = %d", p.resets)
	}
}

func TestResultOf(t *testing.T) {
	r := resultOf(plainGame{&stubGame{}}, core.GameState{Score: 5, GameOver: true})
	if r.Outcome != storage.OutcomeLost || r.Revealed != 5 || r.GameID != "stub" {
		t.Errorf("resultOf(plain) = %+v", r)
	}

	g := &stubGame{state: core.GameState{Won: true}}
	r = resultOf(g, g.state)
	if r.Outcome != storage.OutcomeWon || r.Revealed != 71 || r.Height != 9 {
		t.Errorf("resultOf(summarizer) = %+v", r)
	}
}

func TestSessionModelFlow(t *testing.T) {
	var m tea.Model = NewSessionModel(nil, testConfig)
	send := func(msg tea.Msg) {
		t.Helper()
		m, _ = m.Update(msg)
	}
	screen := func() sessionScreen {
		return m.(SessionModel).screen
	}

	send(tea.KeyMsg{Type: tea.KeyEnter})
	if screen() != screenGame {
		t.Fatalf("enter should start the selected game, screen = %d", screen())
	}
	if !strings.Contains(m.View(), "stub") {
		t.Errorf("game view expected, got:\n%s", m.View())
	}

	send(tea.KeyMsg{Type: tea.KeyEsc})
	if screen() != screenMenu {
		t.Fatalf("esc should return to the menu, screen = %d", screen())
	}
	if !strings.Contains(m.View(), "Stub Board") {
		t.Errorf("menu should list the stub game:\n%s", m.View())
	}

	send(tea.KeyMsg{Type: tea.KeyTab})
	if screen() != screenHistory {
		t.Fatalf("tab should open the history, screen = %d", screen())
	}
	if !strings.Contains(m.View(), "No results recorded yet") {
		t.Errorf("empty history expected:\n%s", m.View())
	}

	send(runes("b"))
	if screen() != screenMenu {
		t.Fatalf("b should return to the menu, screen = %d", screen())
	}

	var cmd tea.Cmd
	m, cmd = m.Update(runes("q"))
	if cmd == nil || !m.(SessionModel).quitting {
		t.Error("q should quit the session")
	}
}
