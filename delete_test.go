package xlgrid

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeleteRange_ShiftUp(t *testing.T) {
	g := NewGrid()
	for r := 0; r < 10; r++ {
		g.EnsureCell(NewAddress(r, 0)).SetText(fmt.Sprintf("row%d", r))
	}

	// Delete rows 3-4 (0-based rows 2-3).
	err := g.DeleteRange(mustRange(t, "A3:A4"), ShiftUp)
	require.NoError(t, err)

	assert.Equal(t, 8, g.RowCount())
	assert.Equal(t, 7, g.LastRowIndex())

	// Former row 5 (index 4) is now at index 2.
	assert.Equal(t, "row4", g.Cell(NewAddress(2, 0)).Text)
	assert.Equal(t, "row9", g.Cell(NewAddress(7, 0)).Text)
	// Rows above the band are untouched.
	assert.Equal(t, "row0", g.Cell(NewAddress(0, 0)).Text)
	assert.Equal(t, "row1", g.Cell(NewAddress(1, 0)).Text)
}

func TestDeleteRange_ShiftUpDiscardsWholeRows(t *testing.T) {
	g := NewGrid()
	g.EnsureCell(NewAddress(0, 0)).SetText("keep")
	g.EnsureCell(NewAddress(1, 5)).SetText("outside the range's columns, still discarded")
	g.EnsureCell(NewAddress(2, 0)).SetText("below")

	err := g.DeleteRange(mustRange(t, "A2:B2"), ShiftUp)
	require.NoError(t, err)

	assert.Equal(t, "keep", g.Cell(NewAddress(0, 0)).Text)
	assert.Equal(t, "below", g.Cell(NewAddress(1, 0)).Text)
	assert.Nil(t, g.Cell(NewAddress(1, 5)))
}

func TestDeleteRange_ShiftUpMovesRowHeights(t *testing.T) {
	g := NewGrid()
	g.EnsureCell(NewAddress(0, 0)).SetText("x")
	g.EnsureCell(NewAddress(1, 0)).SetText("y")
	g.SetRowHeight(1, 40)

	err := g.DeleteRange(mustRange(t, "A1:A1"), ShiftUp)
	require.NoError(t, err)

	assert.Equal(t, 40.0, g.RowHeight(0))
	assert.Equal(t, "y", g.Cell(NewAddress(0, 0)).Text)
}

func TestDeleteRange_ShiftLeft(t *testing.T) {
	g := NewGrid()
	g.WriteMatrix(NewAddress(0, 0), [][]any{
		{"a", "b", "c", "d", "e"},
		{"p", "q", "r", "s", "t"},
	})

	// Delete B1:C1 (row 0 only), shifting that row's remainder left.
	err := g.DeleteRange(mustRange(t, "B1:C1"), ShiftLeft)
	require.NoError(t, err)

	assert.Equal(t, [][]any{
		{"a", "d", "e", nil, nil},
		{"p", "q", "r", "s", "t"},
	}, g.ReadMatrix(mustRange(t, "A1:E2")))
}

func TestDeleteRange_ShiftLeftSkipsAbsentRows(t *testing.T) {
	g := NewGrid()
	g.EnsureCell(NewAddress(2, 4)).SetText("right")

	// Rows 0-1 absent within the range; only row 2 intersects.
	err := g.DeleteRange(mustRange(t, "B1:C3"), ShiftLeft)
	require.NoError(t, err)

	assert.Equal(t, "right", g.Cell(NewAddress(2, 2)).Text)
	assert.Nil(t, g.Cell(NewAddress(2, 4)))
}

func TestDeleteRange_InvalidDirection(t *testing.T) {
	g := NewGrid()
	err := g.DeleteRange(mustRange(t, "A1:A1"), ShiftDirection("down"))
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestParseShiftDirection(t *testing.T) {
	for input, want := range map[string]ShiftDirection{
		"up": ShiftUp, "UP": ShiftUp, "Left": ShiftLeft, "left": ShiftLeft,
	} {
		dir, err := ParseShiftDirection(input)
		require.NoError(t, err)
		assert.Equal(t, want, dir)
	}

	_, err := ParseShiftDirection("sideways")
	assert.ErrorIs(t, err, ErrInvalidArgument)
}
