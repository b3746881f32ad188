package render

import "errors"

//validation errors, all fail-fast: Convert returns no document on any of them
var (
	//ErrEmptyGrid indicates the grid has no rows or no columns
	ErrEmptyGrid = errors.New("render: grid must have at least one row and one column")
	//ErrRaggedGrid indicates rows of differing lengths
	ErrRaggedGrid = errors.New("render: all grid rows must have the same length")
	//ErrCellSize indicates a non-positive cell size
	ErrCellSize = errors.New("render: cell size must be positive")
)
