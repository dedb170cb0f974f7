package mines

import (
	"fmt"
	"strconv"
	"strings"
)

type CellState int8

const (
	Unknown      CellState = -2
	Flagged      CellState = -1
	RevealedMine CellState = 64
	ExplodedMine CellState = 65
	CheatMine    CellState = 66
	/*
	 * 0 to 8 mean the cell is open and has that many mined neighbors.
	 * CheatMine is a covered mine shown only because the board was
	 * cheated; ExplodedMine is the one that ended the game.
	 */
)

func (s CellState) String() string {
	switch {
	case s == Unknown:
		return "#"
	case s == Flagged:
		return "F"
	case s == 0:
		return "."
	case 0 < s && s <= 8:
		return strconv.Itoa(int(s))
	case s == RevealedMine:
		return "*"
	case s == ExplodedMine:
		return "X"
	case s == CheatMine:
		return "m"
	default:
		return "!"
	}
}

// Grid is what the player can see, row-major.
type Grid []CellState

func (g Grid) ToString(width int) string {
	if width <= 0 {
		return ""
	}
	height := len(g) / width
	pad := len(strconv.Itoa(max(height-1, 0)))

	var b strings.Builder
	fmt.Fprintf(&b, "%*s ", pad, "")
	for x := range width {
		fmt.Fprintf(&b, " %d", x%10)
	}
	b.WriteString("\n")
	for y := range height {
		fmt.Fprintf(&b, "%*d ", pad, y)
		for x := range width {
			b.WriteString(" " + g[y*width+x].String())
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (b *Board) Grid() Grid {
	grid := make(Grid, len(b.cells))
	for i := range b.cells {
		c := &b.cells[i]
		switch {
		case c.revealed && c.mined && i == b.exploded:
			grid[i] = ExplodedMine
		case c.revealed && c.mined:
			grid[i] = RevealedMine
		case c.revealed:
			grid[i] = CellState(c.adjacent)
		case c.flagged:
			grid[i] = Flagged
		case c.cheat && c.mined:
			grid[i] = CheatMine
		default:
			grid[i] = Unknown
		}
	}
	return grid
}

func (b *Board) String() string {
	return b.Grid().ToString(b.params.Width)
}
