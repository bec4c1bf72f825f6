package xlgrid

import (
	"fmt"
	"strings"
)

// Style is an immutable bundle of display attributes for a cell. Styles are
// interned through a StylePool; cells hold *Style handles and many cells may
// share the same record. Never mutate a Style after interning.
type Style struct {
	Bold      bool
	Italic    bool
	FontSize  float64 // 0 = default
	FontColor string  // "#RRGGBB", "" = default
	FillColor string  // "#RRGGBB", "" = no fill
	NumFmt    string  // Excel number format code, "" = general
}

// StylePool interns styles by structural equality so that equal records are
// represented by a single shared handle.
type StylePool struct {
	byValue map[Style]*Style
}

// NewStylePool creates an empty StylePool.
func NewStylePool() *StylePool {
	return &StylePool{byValue: make(map[Style]*Style)}
}

// Intern returns the canonical shared handle for the given style value,
// creating it on first use.
func (p *StylePool) Intern(s Style) *Style {
	if existing, ok := p.byValue[s]; ok {
		return existing
	}
	handle := new(Style)
	*handle = s
	p.byValue[s] = handle
	return handle
}

// Len returns the number of distinct interned styles.
func (p *StylePool) Len() int {
	return len(p.byValue)
}

// ParseHexColor validates and normalizes a color like "#FF0000" or "ff0000"
// to "#RRGGBB" form. Returns ErrInvalidArgument for anything else.
func ParseHexColor(s string) (string, error) {
	v := strings.TrimPrefix(s, "#")
	if len(v) != 6 {
		return "", fmt.Errorf("%w: invalid RGB color %q", ErrInvalidArgument, s)
	}
	for i := 0; i < len(v); i++ {
		c := v[i]
		ok := (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
		if !ok {
			return "", fmt.Errorf("%w: invalid RGB color %q", ErrInvalidArgument, s)
		}
	}
	return "#" + strings.ToUpper(v), nil
}

// styleForNewCell resolves the style to give a freshly materialized cell so
// it looks like its visual neighbors. Fallback order, first match wins:
//
//  1. the first present cell strictly above in the same column (sparse rows
//     are skipped; an unstyled present cell stops the scan)
//  2. the cell immediately to the left in the same row
//  3. the grid's default style for the column
//  4. the grid's default style for the row
//
// Returns nil when no neighbor supplies a style.
func (g *Grid) styleForNewCell(row, col int) *Style {
	for r := row - 1; r >= 0; r-- {
		above, ok := g.rows[r]
		if !ok {
			continue
		}
		cell, ok := above.cells[col]
		if !ok {
			continue
		}
		if cell.Style != nil {
			return cell.Style
		}
		break
	}

	if col > 0 {
		if rw, ok := g.rows[row]; ok {
			if left, ok := rw.cells[col-1]; ok && left.Style != nil {
				return left.Style
			}
		}
	}

	if s, ok := g.colStyles[col]; ok {
		return s
	}
	if s, ok := g.rowStyles[row]; ok {
		return s
	}
	return nil
}
