package xlgrid

import (
	"fmt"
	"sort"
	"strings"
)

// ShiftDirection controls how remaining cells close the gap left by
// DeleteRange.
type ShiftDirection string

const (
	ShiftUp   ShiftDirection = "up"
	ShiftLeft ShiftDirection = "left"
)

// ParseShiftDirection parses "up" or "left", case-insensitively.
func ParseShiftDirection(s string) (ShiftDirection, error) {
	switch strings.ToLower(s) {
	case "up":
		return ShiftUp, nil
	case "left":
		return ShiftLeft, nil
	default:
		return "", fmt.Errorf("%w: shift direction must be 'up' or 'left', got %q", ErrInvalidArgument, s)
	}
}

// DeleteRange removes the given range and shifts remaining content to close
// the gap.
//
// ShiftUp discards every row inside the range's row band and moves all rows
// below the band up by the band's height.
//
// ShiftLeft operates per row: for each row intersecting the range, the cells
// inside the range's columns are removed and the cells to their right shift
// left by the range's width. Rows outside the range are untouched.
func (g *Grid) DeleteRange(rng Range, dir ShiftDirection) error {
	switch dir {
	case ShiftUp:
		g.deleteShiftUp(rng)
	case ShiftLeft:
		g.deleteShiftLeft(rng)
	default:
		return fmt.Errorf("%w: shift direction must be 'up' or 'left', got %q", ErrInvalidArgument, string(dir))
	}
	return nil
}

func (g *Grid) deleteShiftUp(rng Range) {
	height := rng.Rows()

	for r := rng.FirstRow; r <= rng.LastRow; r++ {
		delete(g.rows, r)
	}

	var below []int
	for idx := range g.rows {
		if idx > rng.LastRow {
			below = append(below, idx)
		}
	}
	sort.Ints(below)

	for _, idx := range below {
		g.rows[idx-height] = g.rows[idx]
		delete(g.rows, idx)
	}
}

func (g *Grid) deleteShiftLeft(rng Range) {
	width := rng.Cols()

	for r := rng.FirstRow; r <= rng.LastRow; r++ {
		row, ok := g.rows[r]
		if !ok {
			continue
		}

		for c := rng.FirstCol; c <= rng.LastCol; c++ {
			delete(row.cells, c)
		}

		var right []int
		for c := range row.cells {
			if c > rng.LastCol {
				right = append(right, c)
			}
		}
		sort.Ints(right)

		for _, c := range right {
			row.cells[c-width] = row.cells[c]
			delete(row.cells, c)
		}
	}
}
