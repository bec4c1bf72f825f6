package xlgrid

// CopyRange copies the source range of this grid to the target grid with the
// copied block's top-left cell at anchor. The target may be the same grid or
// a different sheet's grid.
//
// A present source cell is copied verbatim: text, number, boolean and formula
// kinds are preserved, and formula text is NOT re-anchored for the new
// location. When copyStyle is true the target cell adopts the source cell's
// style handle and target rows adopt source row heights; when false, target
// styles are left untouched. An absent source cell blanks the target cell
// without touching its existing style.
func (g *Grid) CopyRange(src Range, target *Grid, anchor Address, copyStyle bool) {
	rowOffset := anchor.Row - src.FirstRow
	colOffset := anchor.Col - src.FirstCol

	for r := src.FirstRow; r <= src.LastRow; r++ {
		srcRow := g.rows[r]
		tgtRow := target.ensureRow(r + rowOffset)

		if copyStyle && srcRow != nil {
			tgtRow.Height = srcRow.Height
		}

		for c := src.FirstCol; c <= src.LastCol; c++ {
			var srcCell *Cell
			if srcRow != nil {
				srcCell = srcRow.cells[c]
			}

			tgtCell := target.EnsureCell(Address{Row: r + rowOffset, Col: c + colOffset})
			if srcCell == nil {
				// No source to copy: clear content, keep the target style.
				tgtCell.SetBlank()
				continue
			}

			if copyStyle {
				tgtCell.Style = srcCell.Style
			}
			copyCellValue(srcCell, tgtCell)
		}
	}
}

// copyCellValue copies the value and kind from one cell to another.
func copyCellValue(src, dst *Cell) {
	switch src.Kind {
	case KindText:
		dst.SetText(src.Text)
	case KindNumber:
		dst.SetNumber(src.Number)
	case KindBool:
		dst.SetBool(src.Bool)
	case KindFormula:
		dst.SetFormula(src.Formula)
	default:
		dst.SetBlank()
	}
}
