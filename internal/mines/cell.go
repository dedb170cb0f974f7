package mines

import "fmt"

type Point struct {
	X int `schema:"x,required"`
	Y int `schema:"y,required"`
}

func (p Point) String() string {
	return fmt.Sprintf("%d:%d", p.X, p.Y)
}

// Cell is a read-only snapshot of one grid position.
type Cell struct {
	X, Y     int
	Mined    bool
	Adjacent int
	Flagged  bool
	Revealed bool
	Cheat    bool
}

func (c Cell) Point() Point {
	return Point{c.X, c.Y}
}

type cell struct {
	x, y                            int
	mined, flagged, revealed, cheat bool
	adjacent                        int
	neighbors                       []int
}

func (c *cell) point() Point {
	return Point{c.x, c.y}
}

func (c *cell) snapshot() Cell {
	return Cell{
		X:        c.x,
		Y:        c.y,
		Mined:    c.mined,
		Adjacent: c.adjacent,
		Flagged:  c.flagged,
		Revealed: c.revealed,
		Cheat:    c.cheat,
	}
}

// neighborsOf lists the in-bounds indices around x,y in row-major order.
func neighborsOf(width, height, x, y int) []int {
	indices := make([]int, 0, 8)
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			xx, yy := x+dx, y+dy
			if (dx != 0 || dy != 0) &&
				0 <= xx && xx < width &&
				0 <= yy && yy < height {
				indices = append(indices, yy*width+xx)
			}
		}
	}
	return indices
}
