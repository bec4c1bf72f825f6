package xlsxio

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/javajack/xlgrid"
)

// Grid loads the named sheet into an in-memory grid. Cell values, formulas,
// styles, row heights and merged regions are captured; the returned grid
// shares the workbook's style pool. Fails with xlgrid.ErrSheetNotFound when
// the sheet does not resolve.
func (w *Workbook) Grid(name string) (*xlgrid.Grid, error) {
	if err := w.requireSheet(name); err != nil {
		return nil, err
	}

	g := xlgrid.NewGridWithStyles(w.styles)

	rows, err := w.file.GetRows(name, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("read rows from sheet %q: %w", name, err)
	}

	for rowIdx, rowVals := range rows {
		if len(rowVals) == 0 {
			continue
		}
		if h, err := w.file.GetRowHeight(name, rowIdx+1); err == nil {
			g.SetRowHeight(rowIdx, h)
		}

		for colIdx, raw := range rowVals {
			addr := xlgrid.NewAddress(rowIdx, colIdx)
			cellName := addr.String()

			formula, _ := w.file.GetCellFormula(name, cellName)
			if raw == "" && formula == "" {
				continue
			}

			cell := g.EnsureCell(addr)
			if styleID, err := w.file.GetCellStyle(name, cellName); err == nil && styleID > 0 {
				cell.Style = w.styleFromID(styleID)
			}

			if formula != "" {
				cell.SetFormula(formula)
				continue
			}
			w.setLoadedValue(cell, name, cellName, raw)
		}
	}

	merges, err := w.file.GetMergeCells(name)
	if err != nil {
		return nil, fmt.Errorf("read merged regions from sheet %q: %w", name, err)
	}
	for _, mc := range merges {
		rng, err := xlgrid.ParseRange(mc.GetStartAxis() + ":" + mc.GetEndAxis())
		if err != nil {
			return nil, fmt.Errorf("merged region on sheet %q: %w", name, err)
		}
		if err := g.Merge(rng); err != nil {
			return nil, fmt.Errorf("merged region on sheet %q: %w", name, err)
		}
	}

	w.log.Debug("sheet loaded", "sheet", name, "rows", g.RowCount())
	return g, nil
}

// EnsureGrid loads the named sheet, creating it first when absent.
func (w *Workbook) EnsureGrid(name string) (*xlgrid.Grid, error) {
	if err := w.EnsureSheet(name); err != nil {
		return nil, err
	}
	return w.Grid(name)
}

// setLoadedValue classifies a raw stored value using the cell's declared
// type. Numeric cells carry no type attribute in the file, so an unset type
// with a parseable number loads as a number.
func (w *Workbook) setLoadedValue(cell *xlgrid.Cell, sheet, cellName, raw string) {
	ct, err := w.file.GetCellType(sheet, cellName)
	if err != nil {
		cell.SetText(raw)
		return
	}

	switch ct {
	case excelize.CellTypeBool:
		cell.SetBool(raw == "1" || strings.EqualFold(raw, "true"))
	case excelize.CellTypeNumber, excelize.CellTypeUnset, excelize.CellTypeDate:
		if f, err := strconv.ParseFloat(raw, 64); err == nil {
			cell.SetNumber(f)
		} else {
			cell.SetText(raw)
		}
	default:
		cell.SetText(raw)
	}
}

// PutGrid replaces the named sheet's content with the grid's. Existing cells
// and merged regions are cleared first so rows the engine deleted do not
// linger in the file. The sheet is created when absent.
func (w *Workbook) PutGrid(name string, g *xlgrid.Grid) error {
	if err := w.EnsureSheet(name); err != nil {
		return err
	}
	if err := w.clearSheet(name); err != nil {
		return err
	}

	rowIdxs := g.RowIndexes()
	sort.Ints(rowIdxs)

	for _, rowIdx := range rowIdxs {
		row := g.Row(rowIdx)
		if row.Height > 0 {
			if err := w.file.SetRowHeight(name, rowIdx+1, row.Height); err != nil {
				return fmt.Errorf("set row %d height on sheet %q: %w", rowIdx+1, name, err)
			}
		}

		cols := row.Cols()
		sort.Ints(cols)
		for _, colIdx := range cols {
			if err := w.putCell(name, xlgrid.NewAddress(rowIdx, colIdx), row.Cell(colIdx)); err != nil {
				return err
			}
		}
	}

	for _, region := range g.MergedRegions() {
		if err := w.file.MergeCell(name, region.First().String(), region.Last().String()); err != nil {
			return fmt.Errorf("merge %s on sheet %q: %w", region, name, err)
		}
	}

	w.log.Debug("sheet written", "sheet", name, "rows", len(rowIdxs))
	return nil
}

func (w *Workbook) putCell(sheet string, addr xlgrid.Address, cell *xlgrid.Cell) error {
	cellName := addr.String()

	var err error
	switch cell.Kind {
	case xlgrid.KindText:
		err = w.file.SetCellStr(sheet, cellName, cell.Text)
	case xlgrid.KindNumber:
		err = w.file.SetCellValue(sheet, cellName, cell.Number)
	case xlgrid.KindBool:
		err = w.file.SetCellBool(sheet, cellName, cell.Bool)
	case xlgrid.KindFormula:
		err = w.file.SetCellFormula(sheet, cellName, cell.Formula)
	}
	if err != nil {
		return fmt.Errorf("write cell %s on sheet %q: %w", cellName, sheet, err)
	}

	if cell.Style != nil {
		styleID, err := w.styleID(cell.Style)
		if err != nil {
			return err
		}
		if err := w.file.SetCellStyle(sheet, cellName, cellName, styleID); err != nil {
			return fmt.Errorf("style cell %s on sheet %q: %w", cellName, sheet, err)
		}
	}
	return nil
}

func (w *Workbook) clearSheet(name string) error {
	merges, err := w.file.GetMergeCells(name)
	if err != nil {
		return fmt.Errorf("read merged regions from sheet %q: %w", name, err)
	}
	for _, mc := range merges {
		if err := w.file.UnmergeCell(name, mc.GetStartAxis(), mc.GetEndAxis()); err != nil {
			return fmt.Errorf("unmerge %s on sheet %q: %w", mc.GetStartAxis(), name, err)
		}
	}

	rows, err := w.file.GetRows(name)
	if err != nil {
		return fmt.Errorf("read rows from sheet %q: %w", name, err)
	}
	for rowIdx, rowVals := range rows {
		for colIdx := range rowVals {
			cellName := xlgrid.NewAddress(rowIdx, colIdx).String()
			if err := w.file.SetCellValue(name, cellName, nil); err != nil {
				return fmt.Errorf("clear cell %s on sheet %q: %w", cellName, name, err)
			}
		}
	}
	return nil
}

// styleFromID converts an excelize style to an interned engine style,
// memoizing by style ID since many cells share one file-level style.
func (w *Workbook) styleFromID(styleID int) *xlgrid.Style {
	if s, ok := w.loadedByID[styleID]; ok {
		return s
	}

	raw, err := w.file.GetStyle(styleID)
	if err != nil || raw == nil {
		return nil
	}

	var s xlgrid.Style
	if raw.Font != nil {
		s.Bold = raw.Font.Bold
		s.Italic = raw.Font.Italic
		s.FontSize = raw.Font.Size
		s.FontColor = normalizeColor(raw.Font.Color)
	}
	if raw.Fill.Type == "pattern" && len(raw.Fill.Color) > 0 {
		s.FillColor = normalizeColor(raw.Fill.Color[0])
	}
	if raw.CustomNumFmt != nil {
		s.NumFmt = *raw.CustomNumFmt
	}

	handle := w.styles.Intern(s)
	w.loadedByID[styleID] = handle
	w.styleIDs[handle] = styleID
	return handle
}

// styleID converts an interned engine style to an excelize style ID,
// creating the file-level style on first use.
func (w *Workbook) styleID(s *xlgrid.Style) (int, error) {
	if id, ok := w.styleIDs[s]; ok {
		return id, nil
	}

	style := &excelize.Style{
		Font: &excelize.Font{
			Bold:   s.Bold,
			Italic: s.Italic,
			Size:   s.FontSize,
			Color:  strings.TrimPrefix(s.FontColor, "#"),
		},
	}
	if s.FillColor != "" {
		style.Fill = excelize.Fill{
			Type:    "pattern",
			Pattern: 1,
			Color:   []string{strings.TrimPrefix(s.FillColor, "#")},
		}
	}
	if s.NumFmt != "" {
		numFmt := s.NumFmt
		style.CustomNumFmt = &numFmt
	}

	id, err := w.file.NewStyle(style)
	if err != nil {
		return 0, fmt.Errorf("register style: %w", err)
	}
	w.styleIDs[s] = id
	return id, nil
}

// normalizeColor maps excelize color strings (6-digit RGB or 8-digit ARGB,
// with or without "#") to the engine's "#RRGGBB" form.
func normalizeColor(c string) string {
	v := strings.TrimPrefix(c, "#")
	if len(v) == 8 {
		v = v[2:] // drop alpha
	}
	normalized, err := xlgrid.ParseHexColor(v)
	if err != nil {
		return ""
	}
	return normalized
}
