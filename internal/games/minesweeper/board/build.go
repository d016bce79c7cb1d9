package board

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-sweeper/internal/core"
)

// Env carries what Build needs from the presentation layer.
type Env[T any] struct {
	Window core.Vec2                 // Window size in pointer space
	Rand   Rand                      // Bomb placement source; nil uses math/rand
	Spawn  func(Coordinates, Tile) T // Creates the covered-cell token of a tile; may be nil
	Root   T                         // Handle of the board's own presentation object
	Logger *log.Logger               // nil uses log.Default()
}

// Build generates a map from opts, places it in env.Window, spawns a covered
// token for every tile and starts a session. With SafeStart the first empty
// tile in row-major order is queued for reveal.
func Build[T any](opts Options, env Env[T]) (*Session[T], error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	logger := env.Logger
	if logger == nil {
		logger = log.Default()
	}

	tileMap, err := generate(opts, env.Rand)
	if err != nil {
		return nil, err
	}
	logger.Debug("generated tile map\n" + tileMap.ConsoleOutput())

	tileSize := opts.TileSize.Resolve(env.Window, tileMap.Width(), tileMap.Height())
	boardSize := core.V(float64(tileMap.Width())*tileSize, float64(tileMap.Height())*tileSize)
	bounds := core.Bounds{
		Position: opts.Position.Origin(boardSize),
		Size:     boardSize,
	}

	covered := make(map[Coordinates]T, int(tileMap.Width())*int(tileMap.Height()))
	for c, t := range tileMap.All() {
		var token T
		if env.Spawn != nil {
			token = env.Spawn(c, t)
		}
		covered[c] = token
	}

	b := NewBoard(tileMap, bounds, tileSize, covered, env.Root)
	b.SetLogger(logger)
	session := NewSession(b)
	session.SetLogger(logger)

	if opts.SafeStart {
		if c, ok := SafeStartTile(tileMap); ok {
			session.RequestReveal(c)
			logger.Debug("safe start", "coord", c)
		}
	}

	return session, nil
}

func generate(opts Options, rng Rand) (*TileMap, error) {
	if len(opts.Layout) > 0 {
		return NewTileMapWithBombs(opts.MapWidth, opts.MapHeight, opts.Layout)
	}
	m, err := NewEmptyTileMap(opts.MapWidth, opts.MapHeight)
	if err != nil {
		return nil, err
	}
	if err := m.AddBombs(opts.BombCount, rng); err != nil {
		return nil, err
	}
	return m, nil
}

// SafeStartTile returns the first empty tile in row-major order, or the
// first non-bomb tile when the map has no empty tile.
func SafeStartTile(m *TileMap) (Coordinates, bool) {
	var (
		fallback Coordinates
		found    bool
	)
	for c, t := range m.All() {
		if t.IsEmpty() {
			return c, true
		}
		if !found && !t.IsBomb() {
			fallback, found = c, true
		}
	}
	return fallback, found
}
