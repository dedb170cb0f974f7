package mines

import "github.com/sirupsen/logrus"

// Reveal opens the cell at x,y. Revealing a flagged or already revealed
// cell, or any cell once the game is over, does nothing. Opening a cell
// with no mined neighbors opens the whole connected empty region and its
// numbered border.
func (b *Board) Reveal(x, y int) error {
	i, err := b.index(x, y)
	if err != nil {
		return err
	}
	defer b.flush()
	if err := b.reveal(i); err != nil {
		b.ignore(err, logrus.Fields{"move": "reveal", "x": x, "y": y})
	}
	return nil
}

func (b *Board) reveal(i int) error {
	if b.status.Terminal() {
		return transitionError{"game is over"}
	}
	c := &b.cells[i]
	if c.revealed {
		return transitionError{"cell is already revealed"}
	}
	if c.flagged {
		return transitionError{"cell is flagged"}
	}

	c.revealed = true

	if c.mined {
		b.exploded = i
		b.emit(Event{Kind: CellsChanged, Cells: []Point{c.point()}, Status: b.status})
		b.validate(false)
		return nil
	}

	b.emit(Event{Kind: CellsChanged, Cells: b.flood(i), Status: b.status})
	b.checkWin()
	return nil
}

// flood opens everything reachable from the freshly revealed cell start
// through cells with no mined neighbors. Mined and flagged cells are never
// opened here. Returns every cell it revealed, start included.
func (b *Board) flood(start int) []Point {
	changed := []Point{b.cells[start].point()}
	if b.cells[start].adjacent != 0 {
		return changed
	}

	todo := newCellTodo(len(b.cells))
	todo.add(start)
	for i, ok := todo.pop(); ok; i, ok = todo.pop() {
		for _, j := range b.cells[i].neighbors {
			n := &b.cells[j]
			if n.revealed || n.flagged || n.mined {
				continue
			}
			n.revealed = true
			changed = append(changed, n.point())
			if n.adjacent == 0 {
				todo.add(j)
			}
		}
	}
	return changed
}
