package mines

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// wall puts a column of mines at x = 2 on a 5x5 board.
func wall(t *testing.T) *Board {
	return boardWithMines(t, 5, 5,
		Point{2, 0}, Point{2, 1}, Point{2, 2}, Point{2, 3}, Point{2, 4},
	)
}

func revealedSet(b *Board) map[Point]bool {
	set := make(map[Point]bool)
	for _, c := range b.RevealedCells() {
		set[c.Point()] = true
	}
	return set
}

func TestFloodFillStopsAtNumbers(t *testing.T) {
	b := wall(t)
	require.NoError(t, b.Reveal(0, 0))

	revealed := revealedSet(b)
	assert.Len(t, revealed, 10)
	for y := range 5 {
		assert.True(t, revealed[Point{0, y}])
		assert.True(t, revealed[Point{1, y}])
		assert.False(t, revealed[Point{3, y}])
	}
	assert.Equal(t, InProgress, b.Status())
}

func TestFloodFillSkipsFlaggedCells(t *testing.T) {
	b := wall(t)
	require.NoError(t, b.ToggleFlag(1, 2))
	require.NoError(t, b.Reveal(0, 0))

	c, err := b.Cell(1, 2)
	require.NoError(t, err)
	assert.True(t, c.Flagged)
	assert.False(t, c.Revealed)
	assert.Len(t, b.RevealedCells(), 9)
}

func TestRevealFlaggedCellIsIgnored(t *testing.T) {
	b := wall(t)
	require.NoError(t, b.ToggleFlag(0, 0))
	require.NoError(t, b.Reveal(0, 0))

	c, err := b.Cell(0, 0)
	require.NoError(t, err)
	assert.True(t, c.Flagged)
	assert.False(t, c.Revealed)

	require.NoError(t, b.ToggleFlag(0, 0))
	require.NoError(t, b.Reveal(0, 0))
	c, err = b.Cell(0, 0)
	require.NoError(t, err)
	assert.False(t, c.Flagged)
	assert.True(t, c.Revealed)
}

func TestRevealRevealedCellIsIgnored(t *testing.T) {
	b := wall(t)
	require.NoError(t, b.Reveal(1, 1))

	var events []Event
	b.Subscribe(func(e Event) { events = append(events, e) })
	require.NoError(t, b.Reveal(1, 1))
	assert.Empty(t, events)
	assert.Len(t, b.RevealedCells(), 1)
}

func TestFlagRevealedCellIsIgnored(t *testing.T) {
	b := wall(t)
	require.NoError(t, b.Reveal(1, 1))
	require.NoError(t, b.ToggleFlag(1, 1))
	assert.Empty(t, b.FlaggedCells())
}

func TestFloodFillOpensWholeBoard(t *testing.T) {
	b := boardWithMines(t, 200, 200, Point{199, 199})
	require.NoError(t, b.Reveal(0, 0))

	assert.Equal(t, Won, b.Status())
	assert.Len(t, b.RevealedCells(), 200*200)
}

// expectedRegion walks the zero region around start with plain recursion.
func expectedRegion(b *Board, start Point) map[Point]bool {
	region := make(map[Point]bool)
	var visit func(p Point)
	visit = func(p Point) {
		if region[p] {
			return
		}
		c, _ := b.Cell(p.X, p.Y)
		if c.Mined || c.Revealed || c.Flagged {
			return
		}
		region[p] = true
		if c.Adjacent != 0 {
			return
		}
		neighbors, _ := b.Neighbors(p.X, p.Y)
		for _, n := range neighbors {
			visit(n)
		}
	}
	visit(start)
	return region
}

func TestFloodFillMatchesRecursiveWalk(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	params := GameParams{Width: 16, Height: 16, MineCount: 30}
	checked := 0
	for range 50 {
		b, err := NewBoard(params, r)
		require.NoError(t, err)

		var start *Cell
		for _, c := range b.Cells() {
			if !c.Mined && c.Adjacent == 0 {
				start = &c
				break
			}
		}
		if start == nil {
			continue
		}

		want := expectedRegion(b, start.Point())
		require.NoError(t, b.Reveal(start.X, start.Y))
		got := revealedSet(b)
		if b.Status() == Won {
			for _, c := range b.MinedCells() {
				delete(got, c.Point())
			}
		}
		assert.Equal(t, want, got)
		checked++
	}
	assert.Positive(t, checked)
}

func TestRevealIsMonotonic(t *testing.T) {
	r := rand.New(rand.NewPCG(3, 4))
	b, err := NewBoard(GameParams{Width: 10, Height: 10, MineCount: 12}, r)
	require.NoError(t, err)

	previous := revealedSet(b)
	for range 300 {
		x, y := r.IntN(10), r.IntN(10)
		if r.IntN(3) == 0 {
			require.NoError(t, b.ToggleFlag(x, y))
		} else {
			require.NoError(t, b.Reveal(x, y))
		}
		current := revealedSet(b)
		for p := range previous {
			assert.True(t, current[p], "%s was hidden again", p)
		}
		for _, c := range b.Cells() {
			assert.False(t, c.Revealed && c.Flagged, "%s is revealed and flagged", c.Point())
		}
		previous = current
	}
}

func TestFloodFillNeverOpensMines(t *testing.T) {
	r := rand.New(rand.NewPCG(5, 6))
	for range 50 {
		b, err := NewBoard(GameParams{Width: 9, Height: 9, MineCount: 10}, r)
		require.NoError(t, err)
		for _, c := range b.Cells() {
			if !c.Mined {
				require.NoError(t, b.Reveal(c.X, c.Y))
				break
			}
		}
		if b.Status() == InProgress {
			for _, c := range b.MinedCells() {
				assert.False(t, c.Revealed)
			}
		}
	}
}
