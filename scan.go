package xlgrid

import "strings"

// FirstEmptyRow returns the index of the first structurally empty row,
// scanning the anchor column from row 0 downward. A row counts as empty when
// it is absent, or when its anchor cell is absent, blank, or holds only
// whitespace text. A grid with no rows yields 0; a grid where every scanned
// anchor cell is non-empty yields LastRowIndex()+1.
func (g *Grid) FirstEmptyRow(anchorCol int) int {
	last := g.LastRowIndex()
	if last < 0 {
		return 0
	}

	for r := 0; r <= last; r++ {
		row, ok := g.rows[r]
		if !ok {
			return r
		}
		if anchorCellEmpty(row.cells[anchorCol]) {
			return r
		}
	}
	return last + 1
}

func anchorCellEmpty(c *Cell) bool {
	if c == nil {
		return true
	}
	switch c.Kind {
	case KindBlank:
		return true
	case KindText:
		return strings.TrimSpace(c.Text) == ""
	default:
		return false
	}
}

// AppendRows writes the given rows starting at the first empty row found by
// scanning the anchor column, with values starting at column A. The row
// directly above the insertion point, when present, acts as a template:
// freshly materialized cells take its per-column styles and new rows take
// its height, falling back to the neighbor cascade. Returns the row index
// the append started at.
func (g *Grid) AppendRows(anchorCol int, rows [][]any) int {
	start := g.FirstEmptyRow(anchorCol)

	var template *Row
	if start > 0 {
		template = g.rows[start-1]
	}

	g.writeMatrix(Address{Row: start, Col: 0}, rows, template)
	return start
}
