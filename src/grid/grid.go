package grid

import "math/rand"

//Grid is the mutable drawing field
//it backs the interactive editor and the CLI grid sourcing
//the cells are stored row-major, all rows share one backing buffer
type Grid struct {
	Width  int
	Height int
	Cells  [][]bool
}

//New allocates the empty width x height grid
func New(width int, height int) *Grid {
	g := Grid{Width: width, Height: height, Cells: make([][]bool, height)}
	b := make([]bool, width*height)
	for i := range g.Cells {
		start := width * i
		g.Cells[i] = b[start : start+width : start+width]
	}
	return &g
}

//FromCells wraps already rectangular cells (for example the Parse result) into a Grid
func FromCells(cells [][]bool) *Grid {
	if len(cells) == 0 || len(cells[0]) == 0 {
		return New(1, 1)
	}
	g := New(len(cells[0]), len(cells))
	for y := range cells {
		copy(g.Cells[y], cells[y])
	}
	return g
}

//At returns the cell state at x, y
//coordinates outside the grid read as false
func (g *Grid) At(x int, y int) bool {
	if x < 0 || y < 0 || x >= g.Width || y >= g.Height {
		return false
	}
	return g.Cells[y][x]
}

//Invert inverses the cell state at x, y
func (g *Grid) Invert(x int, y int) {
	if x < 0 || y < 0 || x >= g.Width || y >= g.Height {
		return
	}
	g.Cells[y][x] = !g.Cells[y][x]
}

//Clear turns all cells off
func (g *Grid) Clear() {
	g.Walk(func(x int, y int, on bool) {
		g.Cells[y][x] = false
	})
}

//Randomize turns on random cells, roughly a third of the field
func (g *Grid) Randomize() {
	for i := 0; i < g.Width*g.Height/3; i++ {
		g.Cells[rand.Intn(g.Height)][rand.Intn(g.Width)] = true
	}
}

//CountOn calculates the count of "on" cells
func (g *Grid) CountOn() int {
	n := 0
	g.Walk(func(x int, y int, on bool) {
		if on {
			n++
		}
	})
	return n
}

//Walk walks the entire grid and calls the cb function for each cell
func (g *Grid) Walk(cb func(x int, y int, on bool)) {
	for y := range g.Cells {
		for x := range g.Cells[y] {
			cb(x, y, g.Cells[y][x])
		}
	}
}
