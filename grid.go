package xlgrid

// Row is a sparse mapping from column index to cell, plus the row's display
// height. A row that has never been materialized is absent from its grid,
// which is a distinct state from a present row full of blank cells.
type Row struct {
	cells  map[int]*Cell
	Height float64 // 0 = default height
}

func newRow() *Row {
	return &Row{cells: make(map[int]*Cell)}
}

// Cell returns the cell at the given column, or nil if the slot was never
// materialized.
func (r *Row) Cell(col int) *Cell {
	return r.cells[col]
}

// Cols returns the column indices of the row's present cells, in no
// particular order.
func (r *Row) Cols() []int {
	cols := make([]int, 0, len(r.cells))
	for c := range r.cells {
		cols = append(cols, c)
	}
	return cols
}

// Grid is the in-memory model of one worksheet: a sparse mapping from row
// index to Row, a set of merged regions, and optional per-column/per-row
// default styles. All mutating operations work directly on the grid; the
// grid itself never touches persisted storage.
type Grid struct {
	rows      map[int]*Row
	merged    []Range
	colStyles map[int]*Style
	rowStyles map[int]*Style
	styles    *StylePool
}

// NewGrid creates an empty grid with its own style pool.
func NewGrid() *Grid {
	return NewGridWithStyles(NewStylePool())
}

// NewGridWithStyles creates an empty grid sharing the given style pool.
// Grids of the same workbook share one pool so equal styles intern to the
// same handle across sheets.
func NewGridWithStyles(pool *StylePool) *Grid {
	return &Grid{
		rows:      make(map[int]*Row),
		colStyles: make(map[int]*Style),
		rowStyles: make(map[int]*Style),
		styles:    pool,
	}
}

// Styles returns the grid's style pool.
func (g *Grid) Styles() *StylePool {
	return g.styles
}

// Row returns the row at the given index, or nil if absent.
func (g *Grid) Row(idx int) *Row {
	return g.rows[idx]
}

func (g *Grid) ensureRow(idx int) *Row {
	r, ok := g.rows[idx]
	if !ok {
		r = newRow()
		g.rows[idx] = r
	}
	return r
}

// Cell returns the cell at the given address, or nil when either the row or
// the cell slot was never materialized.
func (g *Grid) Cell(addr Address) *Cell {
	r, ok := g.rows[addr.Row]
	if !ok {
		return nil
	}
	return r.cells[addr.Col]
}

// EnsureCell materializes the row and cell at the given address as needed
// and returns the cell. A freshly created cell is blank with no style;
// existing structure is never replaced.
func (g *Grid) EnsureCell(addr Address) *Cell {
	r := g.ensureRow(addr.Row)
	c, ok := r.cells[addr.Col]
	if !ok {
		c = &Cell{}
		r.cells[addr.Col] = c
	}
	return c
}

// RowCount returns the number of present rows.
func (g *Grid) RowCount() int {
	return len(g.rows)
}

// LastRowIndex returns the highest present row index, or -1 for a grid with
// no rows.
func (g *Grid) LastRowIndex() int {
	last := -1
	for idx := range g.rows {
		if idx > last {
			last = idx
		}
	}
	return last
}

// RowIndexes returns the indices of all present rows, in no particular
// order.
func (g *Grid) RowIndexes() []int {
	idxs := make([]int, 0, len(g.rows))
	for idx := range g.rows {
		idxs = append(idxs, idx)
	}
	return idxs
}

// SetRowHeight sets the display height of a row, materializing it.
func (g *Grid) SetRowHeight(idx int, height float64) {
	g.ensureRow(idx).Height = height
}

// RowHeight returns the display height of a row, 0 when absent or default.
func (g *Grid) RowHeight(idx int) float64 {
	if r, ok := g.rows[idx]; ok {
		return r.Height
	}
	return 0
}

// SetColStyle sets the default style for a column, consulted by the style
// cascade when new cells are materialized.
func (g *Grid) SetColStyle(col int, s *Style) {
	g.colStyles[col] = s
}

// SetRowStyle sets the default style for a row.
func (g *Grid) SetRowStyle(row int, s *Style) {
	g.rowStyles[row] = s
}

// MergedRegions returns a copy of the grid's merged-region set.
func (g *Grid) MergedRegions() []Range {
	out := make([]Range, len(g.merged))
	copy(out, g.merged)
	return out
}
