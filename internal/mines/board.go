package mines

import (
	"fmt"
	"math/rand/v2"

	"github.com/sirupsen/logrus"
)

type Status int8

const (
	InProgress Status = iota
	Won
	Lost
)

func (s Status) String() string {
	switch s {
	case InProgress:
		return "in progress"
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return fmt.Sprintf("Status(%d)", int8(s))
	}
}

func (s Status) Terminal() bool {
	return s == Won || s == Lost
}

// Board is one game of Minesweeper. It owns every cell and is the only
// thing that mutates them. A Board is not safe for concurrent use.
type Board struct {
	params    GameParams
	cells     []cell
	status    Status
	cheated   bool
	exploded  int
	rnd       *rand.Rand
	listeners []subscription
	nextSubID int
	pending   []Event
	flushing  bool
}

// NewGame is shorthand for [NewBoard] without first-move forgiveness.
func NewGame(width, height, mineCount int, r *rand.Rand) (*Board, error) {
	return NewBoard(GameParams{
		Width:     width,
		Height:    height,
		MineCount: mineCount,
	}, r)
}

// NewBoard places params.MineCount mines uniformly at random and returns
// an in-progress board. If r is nil a fresh source is used.
func NewBoard(params GameParams, r *rand.Rand) (*Board, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if r == nil {
		r = NewRand()
	}
	b := &Board{params: params, rnd: r}
	b.build()
	return b, nil
}

func (b *Board) build() {
	b.layout()
	b.placeMines()
	b.countAdjacent()
	b.status = InProgress
	b.cheated = false
	b.exploded = -1
}

func (b *Board) layout() {
	w, h := b.params.Width, b.params.Height
	cells := make([]cell, w*h)
	for y := range h {
		for x := range w {
			cells[y*w+x] = cell{
				x: x, y: y,
				neighbors: neighborsOf(w, h, x, y),
			}
		}
	}
	b.cells = cells
}

// placeMines picks random cells until MineCount distinct ones are mined.
func (b *Board) placeMines() {
	w, h, mineCount, _ := b.params.Unpack()
	for placed := 0; placed < mineCount; {
		c := &b.cells[b.rnd.IntN(h)*w+b.rnd.IntN(w)]
		if c.mined {
			continue
		}
		c.mined = true
		placed++
	}
}

// countAdjacent must run after every mine is placed.
func (b *Board) countAdjacent() {
	for i := range b.cells {
		c := &b.cells[i]
		c.adjacent = 0
		for _, j := range c.neighbors {
			if b.cells[j].mined {
				c.adjacent++
			}
		}
	}
}

func (b *Board) index(x, y int) (int, error) {
	if !b.params.PointInBounds(x, y) {
		return -1, fmt.Errorf(
			"%w: %d:%d on a %dx%d board",
			ErrOutOfBounds, x, y, b.params.Width, b.params.Height,
		)
	}
	return y*b.params.Width + x, nil
}

func (b *Board) fields() logrus.Fields {
	return logrus.Fields{
		"width":      b.params.Width,
		"height":     b.params.Height,
		"mine_count": b.params.MineCount,
		"status":     b.status.String(),
		"cheated":    b.cheated,
	}
}

func (b *Board) ignore(err error, fields logrus.Fields) {
	Log.WithFields(b.fields()).WithFields(fields).WithError(err).Debug("move ignored")
}
