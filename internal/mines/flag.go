package mines

import "github.com/sirupsen/logrus"

// ToggleFlag flips the flag on an unrevealed cell. Flagging exactly the
// mined cells wins the game.
func (b *Board) ToggleFlag(x, y int) error {
	i, err := b.index(x, y)
	if err != nil {
		return err
	}
	defer b.flush()
	if err := b.toggleFlag(i); err != nil {
		b.ignore(err, logrus.Fields{"move": "flag", "x": x, "y": y})
	}
	return nil
}

func (b *Board) toggleFlag(i int) error {
	if b.status.Terminal() {
		return transitionError{"game is over"}
	}
	c := &b.cells[i]
	if c.revealed {
		return transitionError{"cell is already revealed"}
	}
	c.flagged = !c.flagged
	b.emit(Event{Kind: CellsChanged, Cells: []Point{c.point()}, Status: b.status})
	b.checkWin()
	return nil
}
