package minesweeper

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/vovakirdan/tui-sweeper/internal/config"
	"github.com/vovakirdan/tui-sweeper/internal/core"
	"github.com/vovakirdan/tui-sweeper/internal/games/minesweeper/board"
	"github.com/vovakirdan/tui-sweeper/internal/registry"
)

// A 5x5 board with unit tiles on a 60x12 screen. The board area is 30x10
// units, so the board spans columns 25..34 and rows 5..9.
const fixedBoardYAML = `
map_size: {width: 5, height: 5}
position: {mode: centered}
tile_size: {mode: fixed, size: 1}
tile_padding: 0
safe_start: false
counter_colors: [green, yellow]
layout:
`

var testRuntime = core.RuntimeConfig{ScreenW: 60, ScreenH: 12, TickRate: 60, Seed: 1}

// cellOf returns the screen cell holding the glyph of tile (x, y).
func cellOf(x, y int) (col, row int) {
	return 25 + 2*x, 9 - y
}

// useConfig points the loader at a temporary file for the duration of t.
func useConfig(t *testing.T, content string) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	path := filepath.Join(t.TempDir(), "minesweeper.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	SetConfigPath(path)
	t.Cleanup(func() { SetConfigPath("") })
}

func useLayout(t *testing.T, bombs ...string) *Game {
	t.Helper()
	yaml := fixedBoardYAML
	for _, b := range bombs {
		yaml += "  - " + b + "\n"
	}
	useConfig(t, yaml)

	g := New()
	g.Reset(testRuntime)
	if g.err != nil {
		t.Fatalf("Reset() error = %v", g.err)
	}
	return g
}

func click(g *Game, x, y int, button core.PointerButton) core.StepResult {
	in := core.NewInputFrame()
	col, row := cellOf(x, y)
	in.Press(col, row, button)
	return g.Step(in)
}

func press(g *Game, actions ...core.Action) core.StepResult {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return g.Step(in)
}

func TestClickRevealsOneRingPerTick(t *testing.T) {
	g := useLayout(t, "{x: 0, y: 0}")

	res := click(g, 4, 4, core.PointerPrimary)
	if res.State.Score != 1 {
		t.Fatalf("Score after first tick = %d, expected 1", res.State.Score)
	}
	if g.Snapshot().Pending != 3 {
		t.Errorf("Pending = %d, expected the 3 neighbors of (4, 4)", g.Snapshot().Pending)
	}

	idle := core.NewInputFrame()
	for i := 0; i < 20 && !res.State.GameOver; i++ {
		res = g.Step(idle)
	}

	if !res.State.GameOver || !res.State.Won {
		t.Fatalf("State = %+v, expected a won game", res.State)
	}
	if res.State.Score != 24 {
		t.Errorf("Score = %d, expected 24", res.State.Score)
	}
	if diff := cmp.Diff([]board.Coordinates{board.At(0, 0)}, g.Snapshot().Covered); diff != "" {
		t.Errorf("Covered mismatch (-expected +got):\n%s", diff)
	}
}

func TestRightClickMarksAndProtects(t *testing.T) {
	g := useLayout(t, "{x: 0, y: 0}")

	click(g, 4, 4, core.PointerSecondary)
	if diff := cmp.Diff([]board.Coordinates{board.At(4, 4)}, g.Snapshot().Marked); diff != "" {
		t.Fatalf("Marked mismatch (-expected +got):\n%s", diff)
	}

	res := click(g, 4, 4, core.PointerPrimary)
	if res.State.Score != 0 {
		t.Errorf("revealing a marked tile should do nothing, Score = %d", res.State.Score)
	}

	click(g, 4, 4, core.PointerSecondary)
	if len(g.Snapshot().Marked) != 0 {
		t.Error("second right click should remove the mark")
	}
}

func TestMarkInSameTickAsRevealWins(t *testing.T) {
	g := useLayout(t, "{x: 0, y: 0}")

	in := core.NewInputFrame()
	col, row := cellOf(2, 2)
	in.Press(col, row, core.PointerPrimary)
	in.Press(col, row, core.PointerSecondary)
	res := g.Step(in)

	if res.State.Score != 0 {
		t.Errorf("Score = %d, expected 0", res.State.Score)
	}
	snap := g.Snapshot()
	if diff := cmp.Diff([]board.Coordinates{board.At(2, 2)}, snap.Marked); diff != "" {
		t.Errorf("Marked mismatch (-expected +got):\n%s", diff)
	}
	if len(snap.Covered) != 25 || snap.Pending != 0 {
		t.Errorf("Covered = %d, Pending = %d, expected 25, 0", len(snap.Covered), snap.Pending)
	}
}

func TestMiddleClickIsIgnored(t *testing.T) {
	g := useLayout(t, "{x: 0, y: 0}")

	res := click(g, 1, 3, core.PointerMiddle)
	snap := g.Snapshot()
	if res.State.Score != 0 || len(snap.Marked) != 0 || snap.Pending != 0 {
		t.Errorf("hint should not change the board: %+v", snap)
	}
	if snap.CursorX != 1 || snap.CursorY != 3 {
		t.Errorf("cursor = (%d, %d), expected (1, 3)", snap.CursorX, snap.CursorY)
	}
}

func TestClickOutsideBoardIsIgnored(t *testing.T) {
	g := useLayout(t, "{x: 0, y: 0}")

	in := core.NewInputFrame()
	in.Press(0, 11, core.PointerPrimary) // Bottom-left corner of the screen
	in.Press(20, 0, core.PointerPrimary) // HUD row
	res := g.Step(in)

	if res.State.Score != 0 || g.Snapshot().Pending != 0 {
		t.Error("clicks outside the board should be ignored")
	}
}

func TestBombClickLoses(t *testing.T) {
	g := useLayout(t, "{x: 0, y: 0}")

	res := click(g, 0, 0, core.PointerPrimary)
	if !res.State.GameOver || res.State.Won {
		t.Fatalf("State = %+v, expected a lost game", res.State)
	}
	if res.State.Score != 0 {
		t.Errorf("Score = %d, a bomb is not a revealed safe tile", res.State.Score)
	}

	res = click(g, 4, 4, core.PointerPrimary)
	if res.State.Score != 0 {
		t.Error("input after a loss should be ignored")
	}

	summary := g.Summary()
	if summary.Won || summary.Width != 5 || summary.Bombs != 1 {
		t.Errorf("Summary() = %+v", summary)
	}
}

func TestKeyboardCursorReveal(t *testing.T) {
	g := useLayout(t, "{x: 0, y: 0}")

	snap := g.Snapshot()
	if snap.CursorX != 2 || snap.CursorY != 2 {
		t.Fatalf("initial cursor = (%d, %d), expected (2, 2)", snap.CursorX, snap.CursorY)
	}

	press(g, core.ActionLeft, core.ActionDown)
	press(g, core.ActionLeft, core.ActionDown)
	press(g, core.ActionLeft, core.ActionDown) // Clamped at the corner
	press(g, core.ActionMark)
	if diff := cmp.Diff([]board.Coordinates{board.At(0, 0)}, g.Snapshot().Marked); diff != "" {
		t.Fatalf("Marked mismatch (-expected +got):\n%s", diff)
	}

	for range 5 {
		press(g, core.ActionRight, core.ActionUp)
	}
	snap = g.Snapshot()
	if snap.CursorX != 4 || snap.CursorY != 4 {
		t.Fatalf("cursor = (%d, %d), expected (4, 4)", snap.CursorX, snap.CursorY)
	}

	res := press(g, core.ActionReveal)
	if res.State.Score != 1 {
		t.Errorf("Score = %d, expected 1", res.State.Score)
	}
}

func TestRenderMatchesHitTesting(t *testing.T) {
	g := useLayout(t, "{x: 0, y: 0}")
	click(g, 4, 4, core.PointerPrimary)
	for i := 0; i < 20; i++ {
		press(g)
	}

	dst := core.NewScreen(testRuntime.ScreenW, testRuntime.ScreenH)
	g.Render(dst)

	tests := []struct {
		name  string
		x, y  int
		char  rune
		color core.Color
	}{
		{"counter above bomb", 0, 1, '1', core.ColorGreen},
		{"counter diagonal", 1, 1, '1', core.ColorGreen},
		{"empty", 3, 3, EmptyChar, core.ColorDefault},
		{"covered bomb", 0, 0, CoverChar, core.ColorGray},
	}
	for _, tt := range tests {
		col, row := cellOf(tt.x, tt.y)
		cell := dst.GetCell(col, row)
		if cell.Rune != tt.char || cell.Color != tt.color {
			t.Errorf("%s: cell (%d, %d) = %q/%d, expected %q/%d", tt.name, col, row, cell.Rune, cell.Color, tt.char, tt.color)
		}
	}

	if got := dst.GetCell(24, 4); got.Rune != '┌' || got.Color != core.ColorBrightGreen {
		t.Errorf("frame corner = %q/%d, expected a green ┌", got.Rune, got.Color)
	}
	if !strings.Contains(dst.Row(0), "Minesweeper") {
		t.Errorf("title row = %q", dst.Row(0))
	}
	if !strings.Contains(dst.Row(1), "CLEARED!") || !strings.Contains(dst.Row(1), "Revealed: 24/24") {
		t.Errorf("status row = %q", dst.Row(1))
	}
}

func TestRenderLossShowsBombsAndWrongMarks(t *testing.T) {
	g := useLayout(t, "{x: 0, y: 0}", "{x: 4, y: 0}")

	click(g, 2, 2, core.PointerSecondary)
	click(g, 0, 0, core.PointerPrimary)

	dst := core.NewScreen(testRuntime.ScreenW, testRuntime.ScreenH)
	g.Render(dst)

	tests := []struct {
		name  string
		x, y  int
		char  rune
		color core.Color
	}{
		{"exploded bomb", 0, 0, BombChar, core.ColorBrightRed},
		{"hidden bomb", 4, 0, BombChar, core.ColorRed},
		{"wrong mark", 2, 2, WrongMark, core.ColorBrightRed},
	}
	for _, tt := range tests {
		col, row := cellOf(tt.x, tt.y)
		cell := dst.GetCell(col, row)
		if cell.Rune != tt.char || cell.Color != tt.color {
			t.Errorf("%s: cell (%d, %d) = %q/%d, expected %q/%d", tt.name, col, row, cell.Rune, cell.Color, tt.char, tt.color)
		}
	}
	if !strings.Contains(dst.Row(1), "BOOM!") {
		t.Errorf("status row = %q", dst.Row(1))
	}
}

func TestTilePaddingBlanksEdges(t *testing.T) {
	useConfig(t, strings.Replace(fixedBoardYAML, "tile_padding: 0", "tile_padding: 0.5", 1)+"  - {x: 0, y: 0}\n")
	g := New()
	g.Reset(testRuntime)

	dst := core.NewScreen(testRuntime.ScreenW, testRuntime.ScreenH)
	g.Render(dst)

	col, row := cellOf(0, 4)
	if dst.Get(col, row) != CoverChar {
		t.Errorf("glyph cell = %q, expected cover", dst.Get(col, row))
	}
	if dst.Get(col+1, row) != ' ' {
		t.Errorf("padded cell = %q, expected blank", dst.Get(col+1, row))
	}
}

func TestPauseBlocksInput(t *testing.T) {
	g := useLayout(t, "{x: 0, y: 0}")

	if res := press(g, core.ActionPause); !res.State.Paused {
		t.Fatal("game should be paused")
	}
	if res := click(g, 4, 4, core.PointerPrimary); res.State.Score != 0 {
		t.Error("clicks while paused should be ignored")
	}
	if res := press(g, core.ActionPause); res.State.Paused {
		t.Error("second pause should resume")
	}
}

func TestRestartAfterGameOver(t *testing.T) {
	g := useLayout(t, "{x: 0, y: 0}")
	click(g, 0, 0, core.PointerPrimary)

	press(g, core.ActionRestart)
	state := g.State()
	if state.GameOver || state.Score != 0 {
		t.Errorf("State after restart = %+v", state)
	}
	if g.Snapshot().Tick != 0 {
		t.Errorf("Tick after restart = %d", g.Snapshot().Tick)
	}
}

func TestRestartIgnoredWhilePlaying(t *testing.T) {
	g := useLayout(t, "{x: 0, y: 0}")
	click(g, 4, 4, core.PointerPrimary)

	press(g, core.ActionRestart)
	if g.State().Score == 0 {
		t.Error("restart should only work once the game is over")
	}
}

func TestInvalidConfigShowsError(t *testing.T) {
	useConfig(t, "map_size: {width: 3, height: 3}\nbomb_count: 9\n")
	g := New()
	g.Reset(testRuntime)

	g.Step(core.NewInputFrame())
	dst := core.NewScreen(testRuntime.ScreenW, testRuntime.ScreenH)
	g.Render(dst)

	if !strings.Contains(dst.String(), "Invalid board configuration") {
		t.Errorf("expected an error message, got:\n%s", dst.String())
	}
	if g.State() != (core.GameState{}) {
		t.Errorf("State() = %+v, expected zero", g.State())
	}
}

func TestTooSmallScreen(t *testing.T) {
	useConfig(t, fixedBoardYAML+"  - {x: 0, y: 0}\n")
	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 24, ScreenH: 6, Seed: 1})

	if res := g.Step(core.NewInputFrame()); res.State.Score != 0 {
		t.Error("a board that does not fit should not run")
	}
	dst := core.NewScreen(24, 6)
	g.Render(dst)
	if !strings.Contains(dst.String(), "Window") {
		t.Errorf("expected a too-small message, got:\n%s", dst.String())
	}
}

func TestResizeKeepsBoard(t *testing.T) {
	g := useLayout(t, "{x: 0, y: 0}")
	click(g, 4, 4, core.PointerPrimary)
	before := g.Snapshot()

	g.Resize(24, 6)
	if res := click(g, 1, 1, core.PointerPrimary); res.State.Score != before.Revealed {
		t.Error("a board that no longer fits should not take input")
	}

	g.Resize(80, 12)
	if diff := cmp.Diff(before.Covered, g.Snapshot().Covered); diff != "" {
		t.Errorf("Resize changed the board (-before +after):\n%s", diff)
	}

	// The board is now centered in a 40-unit wide area: tile x sits at column 35+2x.
	dst := core.NewScreen(80, 12)
	g.Render(dst)
	if got := dst.Get(35+2*4, 9-4); got != CursorChar {
		t.Errorf("revealed cursor tile (4, 4) = %q, expected %q", got, CursorChar)
	}
	if got := dst.Get(35, 9); got != CoverChar {
		t.Errorf("tile (0, 0) = %q, expected cover", got)
	}
}

func TestDeterminism(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 12345}
	g1 := NewPreset(config.DifficultyBeginner)
	g1.Reset(cfg)
	g2 := NewPreset(config.DifficultyBeginner)
	g2.Reset(cfg)

	for i := 0; i < 60; i++ {
		in := core.NewInputFrame()
		switch i {
		case 10:
			in.Set(core.ActionLeft)
		case 20:
			in.Set(core.ActionMark)
		case 30:
			in.Set(core.ActionUp)
			in.Set(core.ActionReveal)
		}
		g1.Step(in)
		g2.Step(in)
	}

	if diff := cmp.Diff(g1.Snapshot(), g2.Snapshot()); diff != "" {
		t.Errorf("snapshots differ (-g1 +g2):\n%s", diff)
	}
	if g1.Snapshot().Width != 9 || g1.Snapshot().Bombs != 10 {
		t.Errorf("beginner board = %dx%d/%d", g1.Snapshot().Width, g1.Snapshot().Height, g1.Snapshot().Bombs)
	}
}

func TestSafeStartRevealsOnFirstTick(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	for seed := int64(1); seed <= 10; seed++ {
		g := NewPreset(config.DifficultyIntermediate)
		g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: seed})

		res := g.Step(core.NewInputFrame())
		if res.State.Score == 0 || (res.State.GameOver && !res.State.Won) {
			t.Errorf("seed %d: safe start state = %+v", seed, res.State)
		}
	}
}

func TestCounterColor(t *testing.T) {
	palette := []core.Color{core.ColorGreen, core.ColorYellow, core.ColorRed}

	tests := []struct {
		palette  []core.Color
		n        uint8
		expected core.Color
	}{
		{palette, 1, core.ColorGreen},
		{palette, 3, core.ColorRed},
		{palette, 8, core.ColorRed},
		{nil, 2, core.ColorWhite},
	}
	for _, tt := range tests {
		if got := counterColor(tt.palette, tt.n); got != tt.expected {
			t.Errorf("counterColor(%v, %d) = %d, expected %d", tt.palette, tt.n, got, tt.expected)
		}
	}
}

func TestOptionsFromConfig(t *testing.T) {
	cfg := config.DefaultMinesweeperConfig()
	cfg.Position = config.PositionConfig{Mode: "Custom", X: -3, Y: 2}
	cfg.TileSize = config.TileSizeConfig{Mode: config.TileSizeFixed, Size: 2}
	cfg.Layout = []config.Point{{X: 1, Y: 2}}

	opts, palette, err := optionsFromConfig(cfg)
	if err != nil {
		t.Fatalf("optionsFromConfig() error = %v", err)
	}
	if opts.Position != board.Custom(core.V(-3, 2)) {
		t.Errorf("Position = %+v", opts.Position)
	}
	if opts.TileSize != board.FixedTileSize(2) {
		t.Errorf("TileSize = %+v", opts.TileSize)
	}
	if diff := cmp.Diff([]board.Coordinates{board.At(1, 2)}, opts.Layout); diff != "" {
		t.Errorf("Layout mismatch (-expected +got):\n%s", diff)
	}
	if len(palette) != 5 || palette[3] != core.ColorOrange {
		t.Errorf("palette = %v", palette)
	}

	cfg.CounterColors = []string{"ultraviolet"}
	if _, _, err := optionsFromConfig(cfg); err == nil {
		t.Error("unknown counter color should be rejected")
	}
}

func TestRegisteredGames(t *testing.T) {
	for _, id := range []string{"minesweeper", "minesweeper_beginner", "minesweeper_intermediate", "minesweeper_expert"} {
		if !registry.Exists(id) {
			t.Errorf("game %q is not registered", id)
		}
	}

	g, err := registry.Create("minesweeper_expert")
	if err != nil {
		t.Fatal(err)
	}
	if g.Title() != "Minesweeper (Expert)" {
		t.Errorf("Title() = %q", g.Title())
	}
	if _, ok := g.(registry.Summarizer); !ok {
		t.Error("minesweeper should report session summaries")
	}
}
