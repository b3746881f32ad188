package render_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gridsvg/src/render"
)

func opts(mutate func(o *render.Options)) *render.Options {
	o := render.DefaultOptions
	if mutate != nil {
		mutate(&o)
	}
	return &o
}

func TestConvert_EmptyGrid(t *testing.T) {
	_, err := render.Convert([][]bool{}, nil)
	require.ErrorIs(t, err, render.ErrEmptyGrid)

	_, err = render.Convert([][]bool{{}}, nil)
	require.ErrorIs(t, err, render.ErrEmptyGrid)
}

func TestConvert_RaggedGrid(t *testing.T) {
	_, err := render.Convert([][]bool{{true, false}, {false}}, nil)
	require.ErrorIs(t, err, render.ErrRaggedGrid)
}

func TestConvert_BadCellSize(t *testing.T) {
	for _, size := range []int{0, -5} {
		_, err := render.Convert([][]bool{{true}}, opts(func(o *render.Options) { o.CellSize = size }))
		require.ErrorIs(t, err, render.ErrCellSize, "cell size %d", size)
	}
}

func TestConvert_WithoutBackground(t *testing.T) {
	cells := [][]bool{
		{true, false},
		{false, true},
	}
	doc, err := render.Convert(cells, opts(func(o *render.Options) { o.OnColor = "#ff0000" }))
	require.NoError(t, err)

	assert.Contains(t, doc, `width="20"`)
	assert.Contains(t, doc, `height="20"`)
	assert.Contains(t, doc, `viewBox="0 0 20 20"`)
	assert.Equal(t, 2, strings.Count(doc, "<rect"), "one rect per on cell, no background")
	assert.Contains(t, doc, `fill="#ff0000"`)
	assert.NotContains(t, doc, "<path", "no fillets in simple mode")
	assert.True(t, strings.HasSuffix(strings.TrimSpace(doc), "</svg>"))
}

func TestConvert_WithBackground(t *testing.T) {
	cells := [][]bool{
		{true, false},
		{false, true},
	}
	doc, err := render.Convert(cells, opts(func(o *render.Options) {
		o.CellSize = 20
		o.OnColor = "black"
		o.OffColor = "white"
	}))
	require.NoError(t, err)

	assert.Contains(t, doc, `width="40"`)
	assert.Contains(t, doc, `height="40"`)
	assert.Equal(t, 3, strings.Count(doc, "<rect"), "background rect plus two on cells")
	assert.Contains(t, doc, `fill="white"`)
	assert.Equal(t, 2, strings.Count(doc, `fill="black"`))
}

func TestConvert_SingleCellSimple(t *testing.T) {
	doc, err := render.Convert([][]bool{{true}}, nil)
	require.NoError(t, err)

	assert.Equal(t, 1, strings.Count(doc, "<rect"))
	assert.Zero(t, strings.Count(doc, "<path"))
	assert.Contains(t, doc, `width="10"`)
	assert.Contains(t, doc, `height="10"`)
}

func TestConvert_SingleCellRounded(t *testing.T) {
	//a lone rounded cell is four convex fillets and no square quadrant: a disc
	doc, err := render.Convert([][]bool{{true}}, opts(func(o *render.Options) { o.Rounded = true }))
	require.NoError(t, err)

	assert.Zero(t, strings.Count(doc, "<rect"))
	assert.Equal(t, 4, strings.Count(doc, "<path"))
}

func TestConvert_AllOff(t *testing.T) {
	cells := [][]bool{
		{false, false, false},
		{false, false, false},
	}
	for _, rounded := range []bool{false, true} {
		doc, err := render.Convert(cells, opts(func(o *render.Options) { o.Rounded = rounded }))
		require.NoError(t, err)
		assert.Zero(t, strings.Count(doc, "<rect"), "rounded=%v", rounded)
		assert.Zero(t, strings.Count(doc, "<path"), "rounded=%v", rounded)

		doc, err = render.Convert(cells, opts(func(o *render.Options) {
			o.Rounded = rounded
			o.OffColor = "#eee"
		}))
		require.NoError(t, err)
		assert.Equal(t, 1, strings.Count(doc, "<rect"), "background survives an all-off grid")
	}
}

func TestConvert_RoundedPlusShape(t *testing.T) {
	cells := [][]bool{
		{false, true, false},
		{true, true, true},
		{false, true, false},
	}
	doc, err := render.Convert(cells, opts(func(o *render.Options) { o.Rounded = true }))
	require.NoError(t, err)

	//center cell: all corners square, one full rect
	//4 arm tips: 2 square quadrants + 2 convex fillets each
	//4 off corner cells: 1 concave fillet each
	assert.Equal(t, 9, strings.Count(doc, "<rect"))
	assert.Equal(t, 12, strings.Count(doc, "<path"))
}

func TestConvert_ConvexFilletGeometry(t *testing.T) {
	doc, err := render.Convert([][]bool{{true}}, opts(func(o *render.Options) { o.Rounded = true }))
	require.NoError(t, err)

	//top-left wedge: cell center, down to the left edge midpoint,
	//arc tangent to the top and left edges, back to center
	assert.Contains(t, doc, "M5,5 L0,5 A5,5 0 0,1 5,0 Z")
	//top-right wedge sweeps the other way
	assert.Contains(t, doc, "M5,5 L10,5 A5,5 0 0,0 5,0 Z")
}

func TestConvert_ConcaveFilletGeometry(t *testing.T) {
	cells := [][]bool{
		{true, true},
		{true, false},
	}
	doc, err := render.Convert(cells, opts(func(o *render.Options) { o.Rounded = true }))
	require.NoError(t, err)

	//the off cell at 1,1 fills its top-left quadrant minus the disc bite
	assert.Contains(t, doc, "M10,10 L15,10 A5,5 0 0,0 10,15 Z")
}

func TestConvert_OddCellSize(t *testing.T) {
	//odd sizes split into floor/ceil halves; quadrants still tile the cell
	doc, err := render.Convert([][]bool{{true, true}}, opts(func(o *render.Options) {
		o.CellSize = 7
		o.Rounded = true
	}))
	require.NoError(t, err)

	assert.Contains(t, doc, `width="14"`)
	//left cell, bottom-right quadrant: 4 wide (7-3), starts at x=3
	assert.Contains(t, doc, `<rect x="3" y="3" width="4" height="4"`)
}

func TestConvert_Deterministic(t *testing.T) {
	cells := [][]bool{
		{false, true, false},
		{true, true, true},
		{false, true, false},
	}
	o := opts(func(o *render.Options) {
		o.Rounded = true
		o.OffColor = "#fafafa"
	})

	first, err := render.Convert(cells, o)
	require.NoError(t, err)
	second, err := render.Convert(cells, o)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestConvert_ParallelMatchesSerial(t *testing.T) {
	cells := make([][]bool, 37)
	for y := range cells {
		cells[y] = make([]bool, 23)
		for x := range cells[y] {
			cells[y][x] = (x*31+y*17)%3 == 0
		}
	}

	serial, err := render.Convert(cells, opts(func(o *render.Options) { o.Rounded = true }))
	require.NoError(t, err)

	for _, workers := range []int{2, 4, 8, 64} {
		parallel, err := render.Convert(cells, opts(func(o *render.Options) {
			o.Rounded = true
			o.Workers = workers
		}))
		require.NoError(t, err)
		require.Equal(t, serial, parallel, "workers=%d", workers)
	}
}

func TestConvert_DeclaredDimensions(t *testing.T) {
	for _, tc := range []struct{ cols, rows, size int }{
		{1, 1, 10},
		{3, 2, 5},
		{7, 11, 13},
	} {
		cells := make([][]bool, tc.rows)
		for y := range cells {
			cells[y] = make([]bool, tc.cols)
		}
		doc, err := render.Convert(cells, opts(func(o *render.Options) { o.CellSize = tc.size }))
		require.NoError(t, err)
		assert.Contains(t, doc, fmt.Sprintf(`width="%d"`, tc.cols*tc.size))
		assert.Contains(t, doc, fmt.Sprintf(`height="%d"`, tc.rows*tc.size))
		assert.Contains(t, doc, fmt.Sprintf(`viewBox="0 0 %d %d"`, tc.cols*tc.size, tc.rows*tc.size))
	}
}
