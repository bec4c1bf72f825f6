package xlgrid

// WriteMatrix writes a dense row-major matrix into the grid with its top-left
// value at anchor. Input values are classified per Cell.SetValue: nil clears
// the target cell while preserving its style, numbers/bools map to their
// native kinds, "="-prefixed strings become formulas, and anything else is
// stored as text.
//
// A target cell that did not exist before the call receives a style from the
// neighbor cascade before its value is set. A cell that already existed keeps
// whatever style it had.
func (g *Grid) WriteMatrix(anchor Address, matrix [][]any) {
	g.writeMatrix(anchor, matrix, nil)
}

// writeMatrix is the shared write loop. When template is a present row, a
// freshly materialized cell first tries the template cell in its column for
// a style, and a freshly materialized row copies the template's height;
// AppendRows uses this to keep the visible look of the row above.
func (g *Grid) writeMatrix(anchor Address, matrix [][]any, template *Row) {
	for r, rowVals := range matrix {
		rowIdx := anchor.Row + r

		row, existed := g.rows[rowIdx]
		if !existed {
			row = g.ensureRow(rowIdx)
			if template != nil {
				row.Height = template.Height
			}
		}

		for c, v := range rowVals {
			colIdx := anchor.Col + c

			cell, ok := row.cells[colIdx]
			if !ok {
				cell = g.EnsureCell(Address{Row: rowIdx, Col: colIdx})

				// Prefer the template row's style, then the cascade.
				if template != nil {
					if tpl := template.Cell(colIdx); tpl != nil && tpl.Style != nil {
						cell.Style = tpl.Style
					}
				}
				if cell.Style == nil {
					cell.Style = g.styleForNewCell(rowIdx, colIdx)
				}
			}

			cell.SetValue(v)
		}
	}
}
