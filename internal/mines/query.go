package mines

func (b *Board) Status() Status     { return b.status }
func (b *Board) Params() GameParams { return b.params }
func (b *Board) Width() int         { return b.params.Width }
func (b *Board) Height() int        { return b.params.Height }
func (b *Board) MineCount() int     { return b.params.MineCount }
func (b *Board) Cheated() bool      { return b.cheated }

// Assisted reports a win after [Board.CheatRevealAll] was used.
func (b *Board) Assisted() bool {
	return b.status == Won && b.cheated
}

func (b *Board) filter(keep func(c *cell) bool) []Cell {
	result := make([]Cell, 0)
	for i := range b.cells {
		if keep(&b.cells[i]) {
			result = append(result, b.cells[i].snapshot())
		}
	}
	return result
}

// Cells returns every cell in row-major order.
func (b *Board) Cells() []Cell {
	return b.filter(func(*cell) bool { return true })
}

func (b *Board) RevealedCells() []Cell {
	return b.filter(func(c *cell) bool { return c.revealed })
}

func (b *Board) UnrevealedCells() []Cell {
	return b.filter(func(c *cell) bool { return !c.revealed })
}

func (b *Board) FlaggedCells() []Cell {
	return b.filter(func(c *cell) bool { return c.flagged })
}

func (b *Board) MinedCells() []Cell {
	return b.filter(func(c *cell) bool { return c.mined })
}

func (b *Board) Row(y int) ([]Cell, error) {
	if _, err := b.index(0, y); err != nil {
		return nil, err
	}
	return b.filter(func(c *cell) bool { return c.y == y }), nil
}

func (b *Board) Cell(x, y int) (Cell, error) {
	i, err := b.index(x, y)
	if err != nil {
		return Cell{}, err
	}
	return b.cells[i].snapshot(), nil
}

func (b *Board) Neighbors(x, y int) ([]Point, error) {
	i, err := b.index(x, y)
	if err != nil {
		return nil, err
	}
	points := make([]Point, 0, len(b.cells[i].neighbors))
	for _, j := range b.cells[i].neighbors {
		points = append(points, b.cells[j].point())
	}
	return points, nil
}

// Counts is the summary a status line needs.
type Counts struct {
	Revealed, Remaining, Flagged, Mines int
}

func (b *Board) Counts() Counts {
	counts := Counts{Mines: b.params.MineCount}
	for i := range b.cells {
		c := &b.cells[i]
		if c.revealed {
			counts.Revealed++
		} else {
			counts.Remaining++
		}
		if c.flagged {
			counts.Flagged++
		}
	}
	return counts
}
