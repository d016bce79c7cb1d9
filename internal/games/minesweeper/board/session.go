package board

import "github.com/charmbracelet/log"

// Status is the outcome state of a session.
type Status uint8

const (
	StatusPlaying Status = iota
	StatusWon
	StatusLost
)

// String implements fmt.Stringer.
func (s Status) String() string {
	switch s {
	case StatusPlaying:
		return "playing"
	case StatusWon:
		return "won"
	case StatusLost:
		return "lost"
	default:
		return "unknown"
	}
}

// Session drives a Board through reveal and mark requests.
//
// Reveals are queued and processed by Step, one flood-fill ring per call: the
// tiles queued before the call are uncovered, and the covered unmarked
// neighbors of every empty tile among them are queued for the next call.
// A queued tile that was marked before its turn stays covered.
// Flush runs Step until nothing is pending. Both reach the same end state.
//
// A Session is owned by a single game loop and is not safe for concurrent use.
type Session[T any] struct {
	board   *Board[T]
	pending []Coordinates
	queued  map[Coordinates]struct{}
	status  Status
	outbox  []Event
	rings   int
	logger  *log.Logger
}

// NewSession starts a session on b.
func NewSession[T any](b *Board[T]) *Session[T] {
	return &Session[T]{
		board:  b,
		queued: make(map[Coordinates]struct{}),
		logger: log.Default(),
	}
}

// SetLogger replaces the diagnostics logger. nil restores log.Default().
func (s *Session[T]) SetLogger(l *log.Logger) {
	if l == nil {
		l = log.Default()
	}
	s.logger = l
}

// Board returns the board being played.
func (s *Session[T]) Board() *Board[T] {
	return s.board
}

// Status returns the current outcome state.
func (s *Session[T]) Status() Status {
	return s.status
}

// Over reports whether the session was won or lost.
func (s *Session[T]) Over() bool {
	return s.status != StatusPlaying
}

// Pending returns the number of tiles queued for the next Step.
func (s *Session[T]) Pending() int {
	return len(s.pending)
}

// Rings returns how many Step calls revealed at least one tile.
func (s *Session[T]) Rings() int {
	return s.rings
}

// RequestReveal queues c for uncovering. It reports false when the session
// is over, c is not covered, c is marked, or c is already queued.
func (s *Session[T]) RequestReveal(c Coordinates) bool {
	if s.Over() {
		return false
	}
	if _, ok := s.board.TileToUncover(c); !ok {
		return false
	}
	return s.enqueue(c)
}

// RequestMark toggles the mark on c. The resulting MarkToggled event is
// delivered by the next Step. ok is false when the session is over or c is
// not covered.
func (s *Session[T]) RequestMark(c Coordinates) (marked bool, ok bool) {
	if s.Over() {
		return false, false
	}
	token, marked, ok := s.board.TryToggleMark(c)
	if !ok {
		return false, false
	}
	s.outbox = append(s.outbox, MarkToggled[T]{Coord: c, Marked: marked, Token: token})
	return marked, true
}

func (s *Session[T]) enqueue(c Coordinates) bool {
	if _, ok := s.queued[c]; ok {
		return false
	}
	s.queued[c] = struct{}{}
	s.pending = append(s.pending, c)
	return true
}

// Step delivers the buffered request events and processes one ring of
// pending reveals. It returns nil when there was nothing to do.
func (s *Session[T]) Step() []Event {
	events := s.outbox
	s.outbox = nil

	if len(s.pending) == 0 {
		return events
	}

	ring := s.pending
	s.pending = nil

	var (
		revealed []Coordinates
		terminal Event
	)
	for _, c := range ring {
		delete(s.queued, c)

		// Marked since it was queued: the mark wins and the reveal is dropped
		if s.board.IsMarked(c) {
			s.logger.Debug("queued reveal dropped: tile marked", "coord", c)
			continue
		}

		token, ok := s.board.TryUncoverTile(c)
		if !ok {
			continue
		}
		tile, _ := s.board.tileMap.Tile(c)
		revealed = append(revealed, c)
		events = append(events, TileRevealed[T]{Coord: c, Tile: tile, Token: token})

		if tile.IsBomb() {
			s.status = StatusLost
			terminal = BombTriggered{Coord: c}
			s.logger.Info("bomb triggered", "coord", c)
			break
		}

		if tile.IsEmpty() {
			for _, n := range s.board.AdjacentCoveredCoordinates(c) {
				s.enqueue(n)
			}
		}

		if s.board.IsCompleted() {
			s.status = StatusWon
			terminal = BoardCompleted{}
			s.logger.Info("board completed", "rings", s.rings+1)
			break
		}
	}

	if s.Over() {
		s.pending = nil
		clear(s.queued)
	}

	if len(revealed) > 0 {
		s.rings++
		events = append(events, CascadeStep{Revealed: revealed})
		s.logger.Debug("cascade step", "revealed", len(revealed), "pending", len(s.pending))
	}
	if terminal != nil {
		events = append(events, terminal)
	}
	return events
}

// Flush runs Step until no reveal is pending and returns every event in
// order.
func (s *Session[T]) Flush() []Event {
	events := s.Step()
	for len(s.pending) > 0 {
		events = append(events, s.Step()...)
	}
	return events
}
