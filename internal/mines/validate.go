package mines

import "github.com/sirupsen/logrus"

// Validate settles the game if it can be settled. An explicit validation is
// the player claiming the board is solved: anything short of a win loses.
// An implicit one (after a move) only ends the game on a win or when a
// mine has been revealed.
func (b *Board) Validate(explicit bool) {
	defer b.flush()
	b.validate(explicit)
}

func (b *Board) validate(explicit bool) {
	if b.status.Terminal() {
		b.ignore(transitionError{"game is over"}, logrus.Fields{"move": "validate"})
		return
	}

	if b.won() {
		b.finish(Won)
		return
	}

	if !explicit {
		if b.exploded < 0 {
			return
		}
		if b.params.Forgiving && b.revealedCount() == 1 {
			b.restart()
			return
		}
	}

	b.finish(Lost)
}

func (b *Board) checkWin() {
	if !b.status.Terminal() && b.won() {
		b.finish(Won)
	}
}

// won reports whether the flagged cells are exactly the mined ones, or the
// unrevealed cells are exactly the mined ones.
func (b *Board) won() bool {
	flagsMatch, coveredMatch := true, true
	for i := range b.cells {
		c := &b.cells[i]
		if c.flagged != c.mined {
			flagsMatch = false
		}
		if c.revealed == c.mined {
			coveredMatch = false
		}
	}
	return flagsMatch || coveredMatch
}

func (b *Board) revealedCount() (n int) {
	for i := range b.cells {
		if b.cells[i].revealed {
			n++
		}
	}
	return
}

func (b *Board) finish(status Status) {
	b.status = status
	if changed := b.revealMines(); len(changed) > 0 {
		b.emit(Event{Kind: CellsChanged, Cells: changed, Status: status})
	}

	kind := GameLost
	if status == Won {
		kind = GameWon
	}
	b.emit(Event{Kind: kind, Status: status, Assisted: b.Assisted()})

	Log.WithFields(b.fields()).Debug("game over")
}

// revealMines opens every mine that is still covered, dropping its flag.
func (b *Board) revealMines() (changed []Point) {
	for i := range b.cells {
		c := &b.cells[i]
		if c.mined && !c.revealed {
			c.revealed = true
			c.flagged = false
			changed = append(changed, c.point())
		}
	}
	return
}

// restart throws the cells away and lays out a fresh board with the same
// parameters.
func (b *Board) restart() {
	Log.WithFields(b.fields()).Debug("mine on the first move, restarting")
	b.build()
	b.emit(Event{Kind: GameRestarted, Status: b.status})
}

// CheatRevealAll marks every cell so a renderer may show the mines without
// ending the game. A later win is reported as assisted.
func (b *Board) CheatRevealAll() {
	defer b.flush()
	if b.status.Terminal() {
		b.ignore(transitionError{"game is over"}, logrus.Fields{"move": "cheat"})
		return
	}
	for i := range b.cells {
		b.cells[i].cheat = true
	}
	b.cheated = true
	b.emit(Event{Kind: BoardCheated, Status: b.status})
}
