// Package minesweeper is the terminal front end of the board package: it
// builds boards from the YAML config, turns keys and mouse clicks into reveal
// and mark requests, runs one cascade ring per tick and draws the board.
package minesweeper

import (
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-sweeper/internal/config"
	"github.com/vovakirdan/tui-sweeper/internal/core"
	"github.com/vovakirdan/tui-sweeper/internal/games/minesweeper/board"
	"github.com/vovakirdan/tui-sweeper/internal/registry"
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI.
// Only the config-driven "minesweeper" game uses it.
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the board size preset. Unknown values reset it.
func SetDifficultyPreset(preset string) {
	p, err := config.ParseDifficulty(preset)
	if err != nil {
		p = ""
	}
	difficultyPreset = p
}

// Game implements registry.Game for minesweeper.
type Game struct {
	preset config.DifficultyPreset // Fixed preset, empty for the config-driven game

	session *board.Session[*sprite]
	sprites map[board.Coordinates]*sprite
	frame   *sprite // Root token: the border around the board
	palette []core.Color

	tilePadding float64

	cursor   board.Coordinates
	tick     uint64
	revealed int
	exploded *board.Coordinates
	paused   bool

	runtime  core.RuntimeConfig
	view     viewport
	tooSmall bool
	err      error // Configuration error shown instead of the board

	logger *log.Logger
}

// New creates the config-driven game. Its size comes from the YAML config,
// optionally overridden by SetDifficultyPreset.
func New() *Game {
	return &Game{}
}

// NewPreset creates a game with a fixed board size.
func NewPreset(preset config.DifficultyPreset) *Game {
	return &Game{preset: preset}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.preset == "" {
		return "minesweeper"
	}
	return "minesweeper_" + string(g.preset)
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	switch g.preset {
	case config.DifficultyBeginner:
		return "Minesweeper (Beginner)"
	case config.DifficultyIntermediate:
		return "Minesweeper (Intermediate)"
	case config.DifficultyExpert:
		return "Minesweeper (Expert)"
	default:
		return "Minesweeper"
	}
}

// Reset loads the config and builds a fresh board.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.view = viewport{w: runtime.ScreenW, h: runtime.ScreenH}
	g.logger = log.Default().WithPrefix(g.ID())

	g.session = nil
	g.sprites = make(map[board.Coordinates]*sprite)
	g.frame = &sprite{color: BorderColor}
	g.tick = 0
	g.revealed = 0
	g.exploded = nil
	g.paused = false
	g.tooSmall = false
	g.err = nil

	cfg, err := config.LoadMinesweeper(configPath)
	if err != nil {
		g.logger.Warn("using default config", "err", err)
		cfg = config.DefaultMinesweeperConfig()
	}

	preset := g.preset
	if preset == "" {
		preset = difficultyPreset
	}
	config.ApplyMinesweeperPreset(&cfg, preset)

	opts, palette, err := optionsFromConfig(cfg)
	if err != nil {
		g.err = err
		g.logger.Error("invalid board options", "err", err)
		return
	}
	g.palette = palette
	g.tilePadding = opts.TilePadding

	session, err := board.Build(opts, board.Env[*sprite]{
		Window: g.view.window(),
		Rand:   rand.New(rand.NewSource(runtime.Seed)),
		Spawn:  g.spawn,
		Root:   g.frame,
		Logger: g.logger,
	})
	if err != nil {
		g.err = err
		g.logger.Error("cannot build board", "err", err)
		return
	}

	g.session = session
	b := session.Board()
	g.cursor = board.At(b.TileMap().Width()/2, b.TileMap().Height()/2)
	g.tooSmall = !g.view.fits(b.Bounds())

	g.logger.Debug("board ready",
		"size", board.At(b.TileMap().Width(), b.TileMap().Height()),
		"bombs", b.TileMap().BombCount(),
		"tile", b.TileSize(),
		"seed", runtime.Seed,
	)
}

// Resize follows a new screen size. The board keeps its tiles and tile size
// and stays centered in the new board area.
func (g *Game) Resize(width, height int) {
	g.runtime.ScreenW = width
	g.runtime.ScreenH = height
	g.view = viewport{w: width, h: height}
	if g.session != nil {
		g.tooSmall = !g.view.fits(g.session.Board().Bounds())
	}
}

func (g *Game) spawn(c board.Coordinates, t board.Tile) *sprite {
	s := newSprite(c, t, g.palette)
	g.sprites[c] = s
	return s
}

// Step advances the game by one tick: input first, then one cascade ring.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.session == nil || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	// Handle restart
	if in.Has(core.ActionRestart) && g.session.Over() {
		g.Reset(g.runtime)
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) && !g.session.Over() {
		g.paused = !g.paused
	}

	if g.paused || g.session.Over() {
		return core.StepResult{State: g.State()}
	}

	g.tick++
	g.handleKeys(in)
	g.handlePointers(in.Pointers)
	g.apply(g.session.Step())

	return core.StepResult{State: g.State()}
}

func (g *Game) handleKeys(in core.InputFrame) {
	m := g.session.Board().TileMap()

	if in.Has(core.ActionLeft) && g.cursor.X > 0 {
		g.cursor.X--
	}
	if in.Has(core.ActionRight) && g.cursor.X+1 < m.Width() {
		g.cursor.X++
	}
	// Board rows grow upward on screen
	if in.Has(core.ActionUp) && g.cursor.Y+1 < m.Height() {
		g.cursor.Y++
	}
	if in.Has(core.ActionDown) && g.cursor.Y > 0 {
		g.cursor.Y--
	}

	if in.Has(core.ActionReveal) {
		g.session.RequestReveal(g.cursor)
	}
	if in.Has(core.ActionMark) {
		g.session.RequestMark(g.cursor)
	}
}

func (g *Game) handlePointers(presses []core.PointerEvent) {
	b := g.session.Board()
	for _, press := range presses {
		p, ok := g.view.pointer(press.Col, press.Row)
		if !ok {
			continue
		}
		c, ok := b.MousePosition(g.view.window(), p)
		if !ok {
			continue
		}

		g.cursor = c
		switch press.Button {
		case core.PointerPrimary:
			g.session.RequestReveal(c)
		case core.PointerSecondary:
			g.session.RequestMark(c)
		case core.PointerMiddle:
			g.logger.Debug("hint requested", "coord", c)
		}
	}
}

// apply updates the sprites from the session events.
func (g *Game) apply(events []board.Event) {
	for _, ev := range events {
		switch e := ev.(type) {
		case board.TileRevealed[*sprite]:
			e.Token.revealed = true
			e.Token.marked = false
			if !e.Tile.IsBomb() {
				g.revealed++
			}
		case board.MarkToggled[*sprite]:
			e.Token.marked = e.Marked
		case board.CascadeStep:
			g.logger.Debug("ring revealed", "tick", g.tick, "tiles", len(e.Revealed))
		case board.BombTriggered:
			c := e.Coord
			g.exploded = &c
			g.session.Board().Root().color = core.ColorBrightRed
		case board.BoardCompleted:
			g.session.Board().Root().color = core.ColorBrightGreen
		}
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.session == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.revealed,
		GameOver: g.session.Over(),
		Won:      g.session.Status() == board.StatusWon,
		Paused:   g.paused,
	}
}

// Summary describes the session for the results history.
func (g *Game) Summary() registry.Summary {
	if g.session == nil {
		return registry.Summary{}
	}
	m := g.session.Board().TileMap()
	return registry.Summary{
		Won:      g.session.Status() == board.StatusWon,
		Revealed: g.revealed,
		Width:    int(m.Width()),
		Height:   int(m.Height()),
		Bombs:    int(m.BombCount()),
	}
}

// Register the config-driven game and one game per preset
func init() {
	registry.Register("minesweeper", func() registry.Game {
		return New()
	})
	for _, p := range config.Presets() {
		registry.Register("minesweeper_"+string(p), func() registry.Game {
			return NewPreset(p)
		})
	}
}
