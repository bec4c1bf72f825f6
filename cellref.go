package xlgrid

import (
	"fmt"
	"strconv"
	"strings"
)

// Address is a single cell position with 0-based row and column indices.
type Address struct {
	Row int
	Col int
}

// NewAddress creates an Address with explicit row and column.
func NewAddress(row, col int) Address {
	return Address{Row: row, Col: col}
}

// ParseAddress parses an A1-notation cell address like "C10" or "aa3".
// Letters are case-insensitive; the row number is 1-based with no leading
// zeros. Returns ErrInvalidAddress for anything else.
func ParseAddress(s string) (Address, error) {
	if s == "" {
		return Address{}, fmt.Errorf("%w: empty address", ErrInvalidAddress)
	}

	i := 0
	for i < len(s) && isAlpha(s[i]) {
		i++
	}
	if i == 0 || i == len(s) {
		return Address{}, fmt.Errorf("%w: %q", ErrInvalidAddress, s)
	}

	col, err := ColIndex(s[:i])
	if err != nil {
		return Address{}, fmt.Errorf("%w: %q", ErrInvalidAddress, s)
	}

	rowStr := s[i:]
	if rowStr[0] == '0' {
		return Address{}, fmt.Errorf("%w: %q", ErrInvalidAddress, s)
	}
	row := 0
	for j := 0; j < len(rowStr); j++ {
		ch := rowStr[j]
		if ch < '0' || ch > '9' {
			return Address{}, fmt.Errorf("%w: %q", ErrInvalidAddress, s)
		}
		row = row*10 + int(ch-'0')
	}

	return Address{Row: row - 1, Col: col}, nil
}

func isAlpha(b byte) bool {
	return (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
}

// String formats the address in A1 notation, e.g. "C10".
func (a Address) String() string {
	return ColName(a.Col) + strconv.Itoa(a.Row+1)
}

// Offset returns the address shifted by the given row/column deltas.
func (a Address) Offset(rows, cols int) Address {
	return Address{Row: a.Row + rows, Col: a.Col + cols}
}

// ColName converts a 0-based column index to a column name.
// 0→"A", 25→"Z", 26→"AA"
func ColName(col int) string {
	result := ""
	col++ // convert to 1-based for algorithm
	for col > 0 {
		col-- // adjust for 0-indexed letter
		result = string(rune('A'+col%26)) + result
		col /= 26
	}
	return result
}

// ColIndex converts a column name to a 0-based column index.
// "A"→0, "Z"→25, "AA"→26. Letters are case-insensitive.
func ColIndex(name string) (int, error) {
	name = strings.ToUpper(name)
	if name == "" {
		return 0, fmt.Errorf("empty column name")
	}
	col := 0
	for _, ch := range name {
		if ch < 'A' || ch > 'Z' {
			return 0, fmt.Errorf("invalid column name: %q", name)
		}
		col = col*26 + int(ch-'A') + 1
	}
	return col - 1, nil
}

// Range is a rectangular cell range with inclusive 0-based bounds.
// A normalized Range has FirstRow <= LastRow and FirstCol <= LastCol.
type Range struct {
	FirstRow int
	LastRow  int
	FirstCol int
	LastCol  int
}

// NewRange builds a normalized Range from two corner addresses.
func NewRange(a, b Address) Range {
	r := Range{FirstRow: a.Row, LastRow: b.Row, FirstCol: a.Col, LastCol: b.Col}
	if r.FirstRow > r.LastRow {
		r.FirstRow, r.LastRow = r.LastRow, r.FirstRow
	}
	if r.FirstCol > r.LastCol {
		r.FirstCol, r.LastCol = r.LastCol, r.FirstCol
	}
	return r
}

// ParseRange parses an A1-notation range like "A1:C10". Exactly one ":" is
// required; reversed corners such as "C10:A1" normalize to the same Range
// as "A1:C10". Returns ErrInvalidRange on malformed input.
func ParseRange(s string) (Range, error) {
	if strings.Count(s, ":") != 1 {
		return Range{}, fmt.Errorf("%w (missing ':'): %q", ErrInvalidRange, s)
	}
	first, rest, _ := strings.Cut(s, ":")

	a, err := ParseAddress(first)
	if err != nil {
		return Range{}, fmt.Errorf("%w: %q: %v", ErrInvalidRange, s, err)
	}
	b, err := ParseAddress(rest)
	if err != nil {
		return Range{}, fmt.Errorf("%w: %q: %v", ErrInvalidRange, s, err)
	}

	return NewRange(a, b), nil
}

// String formats the range in A1 notation, e.g. "A1:C10".
func (r Range) String() string {
	return r.First().String() + ":" + r.Last().String()
}

// First returns the top-left address of the range.
func (r Range) First() Address {
	return Address{Row: r.FirstRow, Col: r.FirstCol}
}

// Last returns the bottom-right address of the range.
func (r Range) Last() Address {
	return Address{Row: r.LastRow, Col: r.LastCol}
}

// Rows returns the number of rows covered by the range.
func (r Range) Rows() int {
	return r.LastRow - r.FirstRow + 1
}

// Cols returns the number of columns covered by the range.
func (r Range) Cols() int {
	return r.LastCol - r.FirstCol + 1
}

// Contains returns true if the address lies within the range.
func (r Range) Contains(a Address) bool {
	return a.Row >= r.FirstRow && a.Row <= r.LastRow &&
		a.Col >= r.FirstCol && a.Col <= r.LastCol
}

// Overlaps returns true if the two ranges share at least one cell.
func (r Range) Overlaps(o Range) bool {
	return r.FirstRow <= o.LastRow && r.LastRow >= o.FirstRow &&
		r.FirstCol <= o.LastCol && r.LastCol >= o.FirstCol
}
