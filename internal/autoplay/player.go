// Package autoplay drives boards without a human. A Player only looks at
// what a person could see: revealed counts and its own flags.
package autoplay

import (
	"math/rand/v2"

	"github.com/gammazero/deque"
	"github.com/sirupsen/logrus"
	"github.com/songe/minesweeper/internal/mines"
)

var Log = logrus.New()

type Player struct {
	board    *mines.Board
	rnd      *rand.Rand
	inspect  deque.Deque[mines.Point]
	cancel   func()
	guesses  int
	restarts int
}

func NewPlayer(board *mines.Board, rnd *rand.Rand) *Player {
	if rnd == nil {
		rnd = mines.NewRand()
	}
	p := &Player{board: board, rnd: rnd}
	p.cancel = board.Subscribe(p.onEvent)
	return p
}

func (p *Player) Guesses() int  { return p.guesses }
func (p *Player) Restarts() int { return p.restarts }

func (p *Player) onEvent(e mines.Event) {
	switch e.Kind {
	case mines.CellsChanged:
		if e.Cells == nil {
			for _, c := range p.board.RevealedCells() {
				p.inspect.PushBack(c.Point())
			}
			return
		}
		for _, pt := range e.Cells {
			p.inspect.PushBack(pt)
			// a new flag or number can settle the cells around it
			neighbors, _ := p.board.Neighbors(pt.X, pt.Y)
			for _, n := range neighbors {
				p.inspect.PushBack(n)
			}
		}
	case mines.GameRestarted:
		p.inspect.Clear()
		p.restarts++
	}
}

// Play makes moves until the game is over and detaches from the board.
func (p *Player) Play() (mines.Status, error) {
	defer p.cancel()

	for !p.board.Status().Terminal() {
		if p.inspect.Len() > 0 {
			if err := p.inspectCell(p.inspect.PopFront()); err != nil {
				return p.board.Status(), err
			}
			continue
		}
		if err := p.guess(); err != nil {
			return p.board.Status(), err
		}
	}

	Log.WithFields(logrus.Fields{
		"params":   p.board.Params().Seed(),
		"status":   p.board.Status().String(),
		"guesses":  p.guesses,
		"restarts": p.restarts,
	}).Debug("autoplay finished")
	return p.board.Status(), nil
}

func (p *Player) inspectCell(pt mines.Point) error {
	cell, err := p.board.Cell(pt.X, pt.Y)
	if err != nil {
		return err
	}
	if !cell.Revealed || cell.Adjacent == 0 {
		return nil
	}
	neighbors, err := p.board.Neighbors(pt.X, pt.Y)
	if err != nil {
		return err
	}

	var (
		flagged   int
		untouched []mines.Point
	)
	for _, n := range neighbors {
		c, err := p.board.Cell(n.X, n.Y)
		if err != nil {
			return err
		}
		switch {
		case c.Flagged:
			flagged++
		case !c.Revealed:
			untouched = append(untouched, n)
		}
	}
	if len(untouched) == 0 {
		return nil
	}

	var move func(x, y int) error
	switch cell.Adjacent - flagged {
	case 0:
		move = p.board.Reveal
	case len(untouched):
		move = p.board.ToggleFlag
	default:
		return nil
	}
	for _, n := range untouched {
		if err := move(n.X, n.Y); err != nil {
			return err
		}
	}
	return nil
}

// guess opens a random covered cell, or claims the board when none is left.
func (p *Player) guess() error {
	var candidates []mines.Point
	for _, c := range p.board.UnrevealedCells() {
		if !c.Flagged {
			candidates = append(candidates, c.Point())
		}
	}
	if len(candidates) == 0 {
		p.board.Validate(true)
		return nil
	}
	p.guesses++
	pt := candidates[p.rnd.IntN(len(candidates))]
	return p.board.Reveal(pt.X, pt.Y)
}
