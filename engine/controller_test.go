package engine

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"reversi-local/board"
	"reversi-local/types"
)

func newTestController(t *testing.T, size int) *Controller {
	t.Helper()
	c, err := NewController(GameConfig{BoardSize: size})
	require.NoError(t, err)
	return c
}

func pieces(cells []board.CellInfo) map[types.BoardPos]types.Cell {
	out := make(map[types.BoardPos]types.Cell)
	for _, ci := range cells {
		if ci.Cell.IsPiece() {
			out[types.BoardPos{X: ci.X, Y: ci.Y}] = ci.Cell
		}
	}
	return out
}

// The opening block puts White on the (m-1,m-1)-(m,m) diagonal so that Black's
// first hints on 8x8 are exactly d3, c4, f5 and e6.
func TestInitializeSeedsCenter(t *testing.T) {
	for _, size := range []int{4, 5, 6, 7, 8, 9, 10, 20} {
		c := newTestController(t, size)
		m := size / 2
		assert.Equal(t, size, c.BoardSize())
		assert.Equal(t, types.Black, c.CurrentColor())
		assert.Equal(t, map[types.BoardPos]types.Cell{
			{X: m - 1, Y: m - 1}: types.White,
			{X: m, Y: m - 1}:     types.Black,
			{X: m, Y: m}:         types.White,
			{X: m - 1, Y: m}:     types.Black,
		}, pieces(c.AllCells()), "size %d", size)
		assert.Len(t, c.Hints(), 4, "size %d", size)
		assert.Zero(t, c.MoveNumber())
	}
}

func TestInitializeOddSizes(t *testing.T) {
	c := newTestController(t, 5)
	assert.ElementsMatch(t,
		[]types.BoardPos{{X: 0, Y: 1}, {X: 1, Y: 0}, {X: 2, Y: 3}, {X: 3, Y: 2}},
		c.Hints())

	c = newTestController(t, 7)
	assert.ElementsMatch(t,
		[]types.BoardPos{{X: 1, Y: 2}, {X: 2, Y: 1}, {X: 3, Y: 4}, {X: 4, Y: 3}},
		c.Hints())
	require.NoError(t, c.RequestPlacement(1, 2))
	assert.Equal(t, types.White, c.CurrentColor())
}

func TestInitializeStandardOpeningHints(t *testing.T) {
	c := newTestController(t, 8)
	assert.ElementsMatch(t,
		[]types.BoardPos{{X: 2, Y: 3}, {X: 3, Y: 2}, {X: 4, Y: 5}, {X: 5, Y: 4}},
		c.Hints())
}

func TestInitializeRejectsBadSize(t *testing.T) {
	_, err := NewController(GameConfig{BoardSize: 3})
	assert.ErrorIs(t, err, ErrInvalidSize)

	c := newTestController(t, 8)
	before := c.AllCells()
	id := c.GameID()
	assert.ErrorIs(t, c.Initialize(2), ErrInvalidSize)
	assert.Equal(t, before, c.AllCells())
	assert.Equal(t, id, c.GameID())
}

func TestInitializeRestarts(t *testing.T) {
	c := newTestController(t, 8)
	require.NoError(t, c.RequestPlacement(2, 3))
	first := c.GameID()

	require.NoError(t, c.Initialize(6))
	assert.Equal(t, 6, c.BoardSize())
	assert.Equal(t, types.Black, c.CurrentColor())
	assert.Empty(t, c.Moves())
	assert.NotEqual(t, first, c.GameID())
	assert.Equal(t, 6, c.Config().BoardSize)
}

func TestCellAtBounds(t *testing.T) {
	for _, size := range []int{4, 8} {
		c := newTestController(t, size)
		_, err := c.CellAt(-1, 0)
		assert.ErrorIs(t, err, ErrOutOfBounds)
		_, err = c.CellAt(size, 0)
		assert.ErrorIs(t, err, ErrOutOfBounds)
		_, err = c.CellAt(0, size)
		assert.ErrorIs(t, err, ErrOutOfBounds)
	}
}

func TestRequestPlacementOnHint(t *testing.T) {
	c := newTestController(t, 8)
	require.NoError(t, c.RequestPlacement(2, 3))

	cell, err := c.CellAt(2, 3)
	require.NoError(t, err)
	assert.Equal(t, types.Black, cell)
	assert.Equal(t, types.White, c.CurrentColor())

	// No capture: (3,3) stays White.
	cell, err = c.CellAt(3, 3)
	require.NoError(t, err)
	assert.Equal(t, types.White, cell)

	want, err := LegalMoves(boardOf(t, c), types.White)
	require.NoError(t, err)
	assert.ElementsMatch(t, want, c.Hints())

	last, ok := c.LastMove()
	require.True(t, ok)
	assert.Equal(t, types.Move{Pos: types.BoardPos{X: 2, Y: 3}, Color: types.Black}, last)
}

// boardOf rebuilds a board from the controller's pieces, without hints.
func boardOf(t *testing.T, c *Controller) *board.Board {
	t.Helper()
	b, err := board.New(c.BoardSize())
	require.NoError(t, err)
	for p, cell := range pieces(c.AllCells()) {
		require.NoError(t, b.Set(p.X, p.Y, cell))
	}
	return b
}

func TestRequestPlacementOnPlainEmpty(t *testing.T) {
	c := newTestController(t, 8)
	cell, err := c.CellAt(0, 0)
	require.NoError(t, err)
	require.Equal(t, types.Empty, cell)

	require.NoError(t, c.RequestPlacement(0, 0))
	cell, err = c.CellAt(0, 0)
	require.NoError(t, err)
	assert.Equal(t, types.Black, cell)
	assert.Equal(t, types.White, c.CurrentColor())
}

func TestRequestPlacementIllegalCell(t *testing.T) {
	c := newTestController(t, 8)
	before := c.AllCells()

	for _, p := range []types.BoardPos{{X: 3, Y: 3}, {X: 4, Y: 3}} {
		err := c.RequestPlacement(p.X, p.Y)
		assert.ErrorIs(t, err, ErrIllegalCell)
	}
	assert.Equal(t, before, c.AllCells())
	assert.Equal(t, types.Black, c.CurrentColor())
	assert.Zero(t, c.MoveNumber())
}

func TestRequestPlacementOutOfBounds(t *testing.T) {
	c := newTestController(t, 8)
	before := c.AllCells()
	assert.ErrorIs(t, c.RequestPlacement(8, 0), ErrOutOfBounds)
	assert.ErrorIs(t, c.RequestPlacement(0, -1), ErrOutOfBounds)
	assert.Equal(t, before, c.AllCells())
	assert.Equal(t, types.Black, c.CurrentColor())
}

func TestRequestPlacementNotInitialized(t *testing.T) {
	var c Controller
	assert.ErrorIs(t, c.RequestPlacement(0, 0), ErrNotInitialized)
	_, err := c.CellAt(0, 0)
	assert.ErrorIs(t, err, ErrNotInitialized)
	assert.Zero(t, c.BoardSize())
	assert.Nil(t, c.AllCells())
}

func TestRequestPlacementOnlyTouchesTargetAndHints(t *testing.T) {
	c := newTestController(t, 8)
	moves := []types.BoardPos{{X: 2, Y: 3}, {X: 2, Y: 2}, {X: 5, Y: 5}, {X: 0, Y: 7}}
	for _, m := range moves {
		before := pieces(c.AllCells())
		require.NoError(t, c.RequestPlacement(m.X, m.Y))
		after := pieces(c.AllCells())

		mover := before
		mover[m] = after[m]
		assert.Equal(t, mover, after, "placement at %v changed other pieces", m)
	}
}

func TestTurnAlternation(t *testing.T) {
	c := newTestController(t, 8)
	want := types.Black
	for i := 0; i < 10; i++ {
		assert.Equal(t, want, c.CurrentColor())
		hints := c.Hints()
		var target types.BoardPos
		if len(hints) > 0 {
			target = hints[0]
		} else {
			target = c.board.CellsOfType(types.Empty)[0]
		}
		require.NoError(t, c.RequestPlacement(target.X, target.Y))
		want = want.Opponent()
	}
	moves := c.Moves()
	require.Len(t, moves, 10)
	for i, m := range moves {
		if i%2 == 0 {
			assert.Equal(t, types.Black, m.Color)
		} else {
			assert.Equal(t, types.White, m.Color)
		}
	}
}

func TestHintsRecomputedAfterEveryPlacement(t *testing.T) {
	c := newTestController(t, 8)
	for i := 0; i < 6; i++ {
		targets := c.Hints()
		if len(targets) == 0 {
			targets = c.board.CellsOfType(types.Empty)
		}
		target := targets[len(targets)-1]
		require.NoError(t, c.RequestPlacement(target.X, target.Y))

		want, err := LegalMoves(boardOf(t, c), c.CurrentColor())
		require.NoError(t, err)
		assert.ElementsMatch(t, want, c.Hints(), "after move %d", i+1)
	}
}

func TestFlipCaptures(t *testing.T) {
	c, err := NewController(GameConfig{BoardSize: 8, FlipCaptures: true})
	require.NoError(t, err)

	require.NoError(t, c.RequestPlacement(2, 3))
	cell, err := c.CellAt(3, 3)
	require.NoError(t, err)
	assert.Equal(t, types.Black, cell)
	assert.Equal(t, 4, c.Count(types.Black))
	assert.Equal(t, 1, c.Count(types.White))
	assert.ElementsMatch(t,
		[]types.BoardPos{{X: 2, Y: 2}, {X: 4, Y: 2}, {X: 2, Y: 4}},
		c.Hints())
}

func TestControllerLogsPlacements(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	c, err := NewController(DefaultConfig(), WithLogger(zap.New(core)))
	require.NoError(t, err)

	require.NoError(t, c.RequestPlacement(3, 2))
	assert.ErrorIs(t, c.RequestPlacement(3, 2), ErrIllegalCell)

	assert.Equal(t, 1, logs.FilterMessage("game initialized").Len())
	placed := logs.FilterMessage("placement").All()
	require.Len(t, placed, 1)
	fields := placed[0].ContextMap()
	assert.Equal(t, c.GameID().String(), fields["game_id"])
	assert.Equal(t, types.Move{Pos: types.BoardPos{X: 3, Y: 2}, Color: types.Black}, fields["move"])
	assert.Equal(t, true, fields["was_hint"])
	assert.Equal(t, 1, logs.FilterMessage("placement rejected").Len())
}

func TestControllerLogsMoveAsJSON(t *testing.T) {
	var buf bytes.Buffer
	enc := zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	logger := zap.New(zapcore.NewCore(enc, zapcore.AddSync(&buf), zap.InfoLevel))
	c, err := NewController(DefaultConfig(), WithLogger(logger))
	require.NoError(t, err)

	require.NoError(t, c.RequestPlacement(3, 2))
	require.NoError(t, logger.Sync())
	assert.Contains(t, buf.String(), `"move":{"pos":[3,2],"color":"black"}`)
}
