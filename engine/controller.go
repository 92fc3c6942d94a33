package engine

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"reversi-local/board"
	"reversi-local/types"
)

// Controller owns the board and the color to move, and is the only writer of either.
// It is not safe for concurrent use; callers serialize input.
type Controller struct {
	config  GameConfig
	baseLog *zap.Logger
	log     *zap.Logger

	gameID uuid.UUID
	board  *board.Board
	toMove types.Cell
	moves  []types.Move
}

var _ GameEngine = (*Controller)(nil)

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the logger used for placement and lifecycle events.
func WithLogger(l *zap.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.baseLog = l
			c.log = l
		}
	}
}

// NewController creates a controller and initializes a board of cfg.BoardSize.
func NewController(cfg GameConfig, opts ...Option) (*Controller, error) {
	c := &Controller{
		config:  cfg,
		baseLog: zap.NewNop(),
		log:     zap.NewNop(),
		toMove:  types.Black,
	}
	for _, opt := range opts {
		opt(c)
	}
	if err := c.Initialize(cfg.BoardSize); err != nil {
		return nil, err
	}
	return c, nil
}

// Initialize discards any current game and seeds a new board of the given size.
func (c *Controller) Initialize(size int) error {
	b, err := board.New(size)
	if err != nil {
		c.log.Warn("initialize rejected", zap.Int("size", size), zap.Error(err))
		return err
	}

	for _, s := range openingBlock(size) {
		if err := b.Set(s.Pos.X, s.Pos.Y, s.Color); err != nil {
			return fmt.Errorf("seed %v: %w", s.Pos, err)
		}
	}

	hints, err := RecomputeHints(b, types.Black)
	if err != nil {
		return err
	}

	c.board = b
	c.config.BoardSize = size
	c.toMove = types.Black
	c.moves = nil
	c.gameID = uuid.New()
	c.log = c.baseLog.With(zap.String("game_id", c.gameID.String()))
	c.log.Info("game initialized", zap.Int("size", size), zap.Int("hints", hints))
	return nil
}

// openingBlock returns the four seed pieces around m = size/2. White holds the
// (m-1,m-1)-(m,m) diagonal and Black the other. For odd sizes the block sits
// one cell up and left of the true centre.
func openingBlock(size int) []types.Move {
	m := size / 2
	return []types.Move{
		{Pos: types.BoardPos{X: m - 1, Y: m - 1}, Color: types.White},
		{Pos: types.BoardPos{X: m, Y: m - 1}, Color: types.Black},
		{Pos: types.BoardPos{X: m, Y: m}, Color: types.White},
		{Pos: types.BoardPos{X: m - 1, Y: m}, Color: types.Black},
	}
}

// RequestPlacement places the color to move at (x, y), flips the turn and recomputes hints.
// The target must be Empty or Hint; nothing is mutated when an error is returned.
func (c *Controller) RequestPlacement(x, y int) error {
	if c.board == nil {
		return ErrNotInitialized
	}
	cell, err := c.board.Get(x, y)
	if err != nil {
		return err
	}
	if cell.IsPiece() {
		c.log.Debug("placement rejected", zap.Int("x", x), zap.Int("y", y), zap.Stringer("cell", cell))
		return fmt.Errorf("%w: (%d, %d) holds %s", ErrIllegalCell, x, y, cell)
	}

	mover := c.toMove
	if err := c.board.Set(x, y, mover); err != nil {
		return err
	}
	clearHints(c.board)

	flipped := 0
	if c.config.FlipCaptures {
		for _, p := range outflanked(c.board, mover, x, y) {
			if err := c.board.Set(p.X, p.Y, mover); err != nil {
				return fmt.Errorf("flip %v: %w", p, err)
			}
			flipped++
		}
	}

	c.toMove = mover.Opponent()
	hints, err := RecomputeHints(c.board, c.toMove)
	if err != nil {
		return err
	}
	move := types.Move{Pos: types.BoardPos{X: x, Y: y}, Color: mover}
	c.moves = append(c.moves, move)

	c.log.Info("placement",
		zap.Any("move", move),
		zap.Bool("was_hint", cell == types.Hint),
		zap.Int("flipped", flipped),
		zap.Int("hints", hints),
	)
	return nil
}

// CurrentColor returns the color to move.
func (c *Controller) CurrentColor() types.Cell {
	return c.toMove
}

// BoardSize returns N, or 0 before Initialize.
func (c *Controller) BoardSize() int {
	if c.board == nil {
		return 0
	}
	return c.board.Size()
}

// CellAt returns the state of (x, y).
func (c *Controller) CellAt(x, y int) (types.Cell, error) {
	if c.board == nil {
		return types.Empty, ErrNotInitialized
	}
	return c.board.Get(x, y)
}

// AllCells returns every cell in row-major order.
func (c *Controller) AllCells() []board.CellInfo {
	if c.board == nil {
		return nil
	}
	return c.board.AllCells()
}

// Hints returns the cells currently marked as legal placements.
func (c *Controller) Hints() []types.BoardPos {
	if c.board == nil {
		return nil
	}
	return c.board.CellsOfType(types.Hint)
}

// Count returns how many cells hold cell.
func (c *Controller) Count(cell types.Cell) int {
	if c.board == nil {
		return 0
	}
	return c.board.Count(cell)
}

// Moves returns a copy of the placements made since Initialize.
func (c *Controller) Moves() []types.Move {
	out := make([]types.Move, len(c.moves))
	copy(out, c.moves)
	return out
}

// LastMove returns the most recent placement, or false if none was made.
func (c *Controller) LastMove() (types.Move, bool) {
	if len(c.moves) == 0 {
		return types.Move{}, false
	}
	return c.moves[len(c.moves)-1], true
}

// MoveNumber returns the number of placements made since Initialize.
func (c *Controller) MoveNumber() int {
	return len(c.moves)
}

// GameID identifies the current game in log output.
func (c *Controller) GameID() uuid.UUID {
	return c.gameID
}

// Config returns the configuration of the current game.
func (c *Controller) Config() GameConfig {
	return c.config
}
