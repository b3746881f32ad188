package grid

import (
	"errors"
	"strings"
)

//ErrEmptyPattern indicates the pattern text contains no cells
var ErrEmptyPattern = errors.New("grid: pattern contains no cells")

//Parse converts pattern text to cells
//'#', '*', 'x', 'X', 'o', 'O' and '1' mark "on" cells, any other char is "off"
//blank lines at the start and the end are skipped
//short lines are padded with "off" cells so the result is always rectangular
func Parse(text string) ([][]bool, error) {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")

	//cut the leading and trailing blank lines
	first, last := 0, len(lines)
	for first < last && strings.TrimSpace(lines[first]) == "" {
		first++
	}
	for last > first && strings.TrimSpace(lines[last-1]) == "" {
		last--
	}
	lines = lines[first:last]

	width := 0
	for _, l := range lines {
		if len(l) > width {
			width = len(l)
		}
	}
	if len(lines) == 0 || width == 0 {
		return nil, ErrEmptyPattern
	}

	cells := make([][]bool, len(lines))
	for y, l := range lines {
		cells[y] = make([]bool, width)
		for x := 0; x < len(l); x++ {
			cells[y][x] = isOn(l[x])
		}
	}
	return cells, nil
}

func isOn(c byte) bool {
	switch c {
	case '#', '*', 'x', 'X', 'o', 'O', '1':
		return true
	}
	return false
}
