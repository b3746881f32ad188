package render

//Corners holds the classification of the four corners of one cell.
//For an "on" cell a set flag means the corner is rounded convex:
//the quadrant is drawn as a quarter-disc fillet instead of a square.
//For an "off" cell a set flag means the corner is filled concave:
//the quadrant gets a square with a quarter-disc bite taken out.
//An unset flag means a plain square quadrant ("on") or no geometry ("off").
type Corners struct {
	TopLeft     bool
	TopRight    bool
	BottomLeft  bool
	BottomRight bool
}

//any reports whether at least one corner deviates from the default
func (c Corners) any() bool {
	return c.TopLeft || c.TopRight || c.BottomLeft || c.BottomRight
}

//flags lists the corners in emission order: TL, TR, BL, BR
func (c Corners) flags() [4]bool {
	return [4]bool{c.TopLeft, c.TopRight, c.BottomLeft, c.BottomRight}
}

//at reads the cell state at x, y
//coordinates outside the grid read as false, so the border behaves
//like an implicit one-cell "off" padding
func at(cells [][]bool, x int, y int) bool {
	if y < 0 || y >= len(cells) || x < 0 || x >= len(cells[y]) {
		return false
	}
	return cells[y][x]
}

//Classify computes the corner flags for the cell at x, y from its
//eight neighbors. Pure and stateless, one call per cell.
//An "on" corner goes convex iff both axis neighbors at that corner are off.
//An "off" corner goes concave iff both axis neighbors and the diagonal
//neighbor at that corner are on. The convex rule deliberately ignores
//the diagonal neighbor.
func Classify(cells [][]bool, x int, y int) Corners {
	var (
		top    = at(cells, x, y-1)
		bottom = at(cells, x, y+1)
		left   = at(cells, x-1, y)
		right  = at(cells, x+1, y)
	)
	if at(cells, x, y) {
		return Corners{
			TopLeft:     !top && !left,
			TopRight:    !top && !right,
			BottomLeft:  !bottom && !left,
			BottomRight: !bottom && !right,
		}
	}
	return Corners{
		TopLeft:     top && left && at(cells, x-1, y-1),
		TopRight:    top && right && at(cells, x+1, y-1),
		BottomLeft:  bottom && left && at(cells, x-1, y+1),
		BottomRight: bottom && right && at(cells, x+1, y+1),
	}
}
