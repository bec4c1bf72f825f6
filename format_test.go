package xlgrid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatRange(t *testing.T) {
	g := NewGrid()
	g.EnsureCell(NewAddress(0, 0)).SetText("x")

	err := g.FormatRange(mustRange(t, "A1:B2"), FormatOptions{
		Bold:      true,
		FontSize:  12,
		FontColor: "#ff0000",
		FillColor: "FFFF00",
	})
	require.NoError(t, err)

	want := &Style{Bold: true, FontSize: 12, FontColor: "#FF0000", FillColor: "#FFFF00"}
	for r := 0; r < 2; r++ {
		for c := 0; c < 2; c++ {
			cell := g.Cell(NewAddress(r, c))
			require.NotNil(t, cell, "cell (%d,%d) must be materialized", r, c)
			assert.Equal(t, want, cell.Style)
		}
	}

	// All four cells share one interned record.
	assert.Same(t, g.Cell(NewAddress(0, 0)).Style, g.Cell(NewAddress(1, 1)).Style)
	// Content survives restyling.
	assert.Equal(t, "x", g.Cell(NewAddress(0, 0)).Text)
}

func TestFormatRange_InvalidColorFailsBeforeMutation(t *testing.T) {
	g := NewGrid()

	err := g.FormatRange(mustRange(t, "A1:B2"), FormatOptions{FontColor: "#XYZ123"})
	assert.ErrorIs(t, err, ErrInvalidArgument)
	assert.Equal(t, 0, g.RowCount(), "a rejected format must not materialize cells")

	err = g.FormatRange(mustRange(t, "A1:B2"), FormatOptions{FillColor: "12345"})
	assert.ErrorIs(t, err, ErrInvalidArgument)
	assert.Equal(t, 0, g.RowCount())
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"#FF0000", "#FF0000"},
		{"ff0000", "#FF0000"},
		{"#a1B2c3", "#A1B2C3"},
	}
	for _, tt := range tests {
		got, err := ParseHexColor(tt.input)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}

	for _, bad := range []string{"", "#FFF", "#GG0000", "1234567", "#FF00001"} {
		_, err := ParseHexColor(bad)
		assert.ErrorIs(t, err, ErrInvalidArgument, "input %q", bad)
	}
}

func TestStylePool_Interning(t *testing.T) {
	pool := NewStylePool()

	a := pool.Intern(Style{Bold: true, FontColor: "#FF0000"})
	b := pool.Intern(Style{Bold: true, FontColor: "#FF0000"})
	c := pool.Intern(Style{Bold: true})

	assert.Same(t, a, b, "structurally equal styles share one record")
	assert.NotSame(t, a, c)
	assert.Equal(t, 2, pool.Len())
}

func TestGrids_ShareStylePool(t *testing.T) {
	pool := NewStylePool()
	g1 := NewGridWithStyles(pool)
	g2 := NewGridWithStyles(pool)

	require.NoError(t, g1.FormatRange(mustRange(t, "A1:A1"), FormatOptions{Bold: true}))
	require.NoError(t, g2.FormatRange(mustRange(t, "A1:A1"), FormatOptions{Bold: true}))

	assert.Same(t, g1.Cell(NewAddress(0, 0)).Style, g2.Cell(NewAddress(0, 0)).Style)
}
