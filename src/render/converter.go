package render

import (
	"bytes"
	"fmt"
	"sync"

	svg "github.com/ajstarks/svgo"
)

/*
	Converter from a rectangular boolean grid to an SVG document.
	Each "on" cell is drawn as a square whose corners may be rounded
	depending on the on/off pattern of the neighbors, which turns
	connected cell areas into smooth blobs.
*/

//corner quadrant offsets in emission order: TL, TR, BL, BR
var cornerOffsets = [4][2]int{{0, 0}, {1, 0}, {0, 1}, {1, 1}}

//Convert renders cells into a complete SVG document string.
//The grid is only read, never modified, and a second call with the same
//arguments produces a byte-identical document.
//Returns ErrEmptyGrid, ErrRaggedGrid or ErrCellSize on invalid input,
//in which case no partial document is produced.
func Convert(cells [][]bool, o *Options) (string, error) {
	if o == nil {
		o = &DefaultOptions
	}
	if len(cells) == 0 || len(cells[0]) == 0 {
		return "", ErrEmptyGrid
	}
	width := len(cells[0])
	for _, row := range cells {
		if len(row) != width {
			return "", ErrRaggedGrid
		}
	}
	if o.CellSize <= 0 {
		return "", ErrCellSize
	}

	height := len(cells)
	pxWidth := width * o.CellSize
	pxHeight := height * o.CellSize
	onFill := o.OnColor
	if onFill == "" {
		onFill = DefOnColor
	}

	var b bytes.Buffer
	canvas := svg.New(&b)
	canvas.Startview(pxWidth, pxHeight, 0, 0, pxWidth, pxHeight)
	if o.OffColor != "" {
		canvas.Rect(0, 0, pxWidth, pxHeight, fill(o.OffColor))
	}
	if o.Workers > 1 && height > 1 {
		emitParallel(&b, cells, o, onFill)
	} else {
		for y := range cells {
			emitRow(canvas, cells, y, o, onFill)
		}
	}
	canvas.End()
	return b.String(), nil
}

//emitParallel emits the grid rows with several goroutines
//the field is split into the contiguous row bands each of which is emitted
//by an individual goroutine into its own buffer, then the buffers are
//concatenated in row order so the output stays identical to the serial one
func emitParallel(b *bytes.Buffer, cells [][]bool, o *Options, onFill string) {
	height := len(cells)
	rowsPerBand := height / o.Workers
	if rowsPerBand < 1 {
		rowsPerBand = 1
	} else if rowsPerBand*o.Workers < height {
		rowsPerBand++
	}

	type band struct {
		y1, y2 int
		buf    bytes.Buffer
	}
	bands := make([]*band, 0, o.Workers)
	for y1 := 0; y1 < height; y1 += rowsPerBand {
		y2 := y1 + rowsPerBand - 1
		if y2 > height-1 {
			y2 = height - 1
		}
		bands = append(bands, &band{y1: y1, y2: y2})
	}

	var waitGroup sync.WaitGroup
	for _, ba := range bands {
		waitGroup.Add(1)
		go func(ba *band) {
			canvas := svg.New(&ba.buf)
			for y := ba.y1; y <= ba.y2; y++ {
				emitRow(canvas, cells, y, o, onFill)
			}
			waitGroup.Done()
		}(ba)
	}
	waitGroup.Wait()
	for _, ba := range bands {
		b.Write(ba.buf.Bytes())
	}
}

//emitRow emits the primitives for all cells of the row y, left to right
func emitRow(canvas *svg.SVG, cells [][]bool, y int, o *Options, onFill string) {
	s := o.CellSize
	fillAttr := fill(onFill)
	for x := range cells[y] {
		if !o.Rounded {
			if cells[y][x] {
				canvas.Rect(x*s, y*s, s, s, fillAttr)
			}
			continue
		}
		emitCell(canvas, cells, x, y, s, fillAttr)
	}
}

//emitCell emits the rounded-mode primitives of one cell.
//An "on" cell with four square corners collapses to one full-size rect,
//otherwise each quadrant gets its own primitive: a square, a convex
//quarter-disc fillet, or (for "off" cells) a concave inverted fillet.
func emitCell(canvas *svg.SVG, cells [][]bool, x int, y int, s int, fillAttr string) {
	on := cells[y][x]
	c := Classify(cells, x, y)
	if !c.any() {
		if on {
			canvas.Rect(x*s, y*s, s, s, fillAttr)
		}
		return
	}

	x0, y0 := x*s, y*s
	//left/top halves round down, right/bottom halves take the rest,
	//so the four quadrants tile the cell exactly for odd sizes too
	wl, ht := s/2, s/2
	corner := c.flags()
	for i, off := range cornerOffsets {
		dx, dy := off[0], off[1]
		qw, qh := wl, ht
		if dx == 1 {
			qw = s - wl
		}
		if dy == 1 {
			qh = s - ht
		}
		//ix,iy is the inner quadrant corner (the cell center),
		//ox,oy the outer one (the cell corner), ax,ay and bx,by are the
		//arc ends on the vertical and the horizontal outer edge
		ix, iy := x0+wl, y0+ht
		ox, oy := x0+dx*s, y0+dy*s
		ax, ay := ox, iy
		bx, by := ix, oy
		sweep := 0
		if dx == dy {
			sweep = 1
		}
		switch {
		case on && corner[i]:
			//convex fillet: the quarter-disc wedge bulging toward the cell corner
			canvas.Path(fmt.Sprintf("M%d,%d L%d,%d A%d,%d 0 0,%d %d,%d Z",
				ix, iy, ax, ay, qw, qh, sweep, bx, by), fillAttr)
		case on:
			canvas.Rect(x0+dx*wl, y0+dy*ht, qw, qh, fillAttr)
		case corner[i]:
			//concave fillet: the quadrant square minus the quarter-disc bite
			canvas.Path(fmt.Sprintf("M%d,%d L%d,%d A%d,%d 0 0,%d %d,%d Z",
				ox, oy, bx, by, qw, qh, 1-sweep, ax, ay), fillAttr)
		}
	}
}

func fill(color string) string {
	return fmt.Sprintf(`fill="%s"`, color)
}
