package xlgrid

// ReadMatrix extracts the given range as a dense row-major matrix of native
// values. Absent rows and absent cells map to nil, as do blank cells;
// formulas are returned as "="-prefixed expression text. The grid is not
// mutated.
func (g *Grid) ReadMatrix(rng Range) [][]any {
	matrix := make([][]any, rng.Rows())
	for r := 0; r < rng.Rows(); r++ {
		matrix[r] = make([]any, rng.Cols())
		row, ok := g.rows[rng.FirstRow+r]
		if !ok {
			continue
		}
		for c := 0; c < rng.Cols(); c++ {
			if cell, ok := row.cells[rng.FirstCol+c]; ok {
				matrix[r][c] = cell.Value()
			}
		}
	}
	return matrix
}
