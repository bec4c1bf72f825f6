package xlsxio

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/javajack/xlgrid"
)

func tempWorkbookPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "test.xlsx")
}

func TestCreateSaveOpen(t *testing.T) {
	path := tempWorkbookPath(t)

	w, err := Create(path, "Data")
	require.NoError(t, err)
	require.NoError(t, w.Save())
	require.NoError(t, w.Close())

	reopened, err := Open(path)
	require.NoError(t, err)
	defer reopened.Close()

	assert.Equal(t, []string{"Data"}, reopened.SheetNames())
}

func TestCreate_DefaultSheetName(t *testing.T) {
	w, err := Create(tempWorkbookPath(t), "")
	require.NoError(t, err)
	defer w.Close()

	assert.Equal(t, []string{"Sheet1"}, w.SheetNames())
}

func TestSave_LeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.xlsx")

	w, err := Create(path, "")
	require.NoError(t, err)
	defer w.Close()
	require.NoError(t, w.Save())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "out.xlsx", entries[0].Name())
}

func TestGrid_SheetNotFound(t *testing.T) {
	w, err := Create(tempWorkbookPath(t), "")
	require.NoError(t, err)
	defer w.Close()

	_, err = w.Grid("Missing")
	assert.ErrorIs(t, err, xlgrid.ErrSheetNotFound)
}

func TestGridRoundTrip_Values(t *testing.T) {
	path := tempWorkbookPath(t)
	w, err := Create(path, "")
	require.NoError(t, err)

	g := xlgrid.NewGridWithStyles(w.Styles())
	g.WriteMatrix(xlgrid.NewAddress(0, 0), [][]any{
		{"title", 42.5, true},
		{false, "=SUM(B1:B1)", "plain"},
	})
	require.NoError(t, w.PutGrid("Sheet1", g))
	require.NoError(t, w.Save())
	require.NoError(t, w.Close())

	reopened, err := Open(path)
	require.NoError(t, err)
	defer reopened.Close()

	loaded, err := reopened.Grid("Sheet1")
	require.NoError(t, err)

	rng, err := xlgrid.ParseRange("A1:C2")
	require.NoError(t, err)
	assert.Equal(t, [][]any{
		{"title", 42.5, true},
		{false, "=SUM(B1:B1)", "plain"},
	}, loaded.ReadMatrix(rng))
}

func TestGridRoundTrip_StylesAndHeights(t *testing.T) {
	path := tempWorkbookPath(t)
	w, err := Create(path, "")
	require.NoError(t, err)

	g := xlgrid.NewGridWithStyles(w.Styles())
	rng, err := xlgrid.ParseRange("A1:B1")
	require.NoError(t, err)
	require.NoError(t, g.FormatRange(rng, xlgrid.FormatOptions{
		Bold:      true,
		FillColor: "#FFFF00",
	}))
	g.Cell(xlgrid.NewAddress(0, 0)).SetText("header")
	g.SetRowHeight(0, 30)

	require.NoError(t, w.PutGrid("Sheet1", g))
	require.NoError(t, w.Save())
	require.NoError(t, w.Close())

	reopened, err := Open(path)
	require.NoError(t, err)
	defer reopened.Close()

	loaded, err := reopened.Grid("Sheet1")
	require.NoError(t, err)

	cell := loaded.Cell(xlgrid.NewAddress(0, 0))
	require.NotNil(t, cell)
	require.NotNil(t, cell.Style)
	assert.True(t, cell.Style.Bold)
	assert.Equal(t, "#FFFF00", cell.Style.FillColor)
	assert.Equal(t, 30.0, loaded.RowHeight(0))

	// Both styled cells resolve to the same interned record.
	other := loaded.Cell(xlgrid.NewAddress(0, 1))
	require.NotNil(t, other)
	assert.Same(t, cell.Style, other.Style)
}

func TestGridRoundTrip_MergedRegions(t *testing.T) {
	path := tempWorkbookPath(t)
	w, err := Create(path, "")
	require.NoError(t, err)

	g := xlgrid.NewGridWithStyles(w.Styles())
	g.EnsureCell(xlgrid.NewAddress(1, 1)).SetText("merged")
	rng, err := xlgrid.ParseRange("B2:D4")
	require.NoError(t, err)
	require.NoError(t, g.Merge(rng))

	require.NoError(t, w.PutGrid("Sheet1", g))
	require.NoError(t, w.Save())
	require.NoError(t, w.Close())

	reopened, err := Open(path)
	require.NoError(t, err)
	defer reopened.Close()

	loaded, err := reopened.Grid("Sheet1")
	require.NoError(t, err)
	assert.Equal(t, []xlgrid.Range{rng}, loaded.MergedRegions())
}

func TestPutGrid_ClearsDeletedContent(t *testing.T) {
	path := tempWorkbookPath(t)
	w, err := Create(path, "")
	require.NoError(t, err)

	g := xlgrid.NewGridWithStyles(w.Styles())
	g.WriteMatrix(xlgrid.NewAddress(0, 0), [][]any{
		{"row1"}, {"row2"}, {"row3"},
	})
	require.NoError(t, w.PutGrid("Sheet1", g))

	rng, err := xlgrid.ParseRange("A1:A1")
	require.NoError(t, err)
	require.NoError(t, g.DeleteRange(rng, xlgrid.ShiftUp))
	require.NoError(t, w.PutGrid("Sheet1", g))
	require.NoError(t, w.Save())
	require.NoError(t, w.Close())

	reopened, err := Open(path)
	require.NoError(t, err)
	defer reopened.Close()

	loaded, err := reopened.Grid("Sheet1")
	require.NoError(t, err)

	readRng, err := xlgrid.ParseRange("A1:A3")
	require.NoError(t, err)
	assert.Equal(t, [][]any{{"row2"}, {"row3"}, {nil}}, loaded.ReadMatrix(readRng))
}

func TestSheetManagement(t *testing.T) {
	w, err := Create(tempWorkbookPath(t), "First")
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, w.AddSheet("Second"))
	assert.True(t, w.HasSheet("Second"))

	require.NoError(t, w.RenameSheet("Second", "Renamed"))
	assert.False(t, w.HasSheet("Second"))
	assert.True(t, w.HasSheet("Renamed"))

	require.NoError(t, w.CopySheet("Renamed", "Copy"))
	assert.ElementsMatch(t, []string{"First", "Renamed", "Copy"}, w.SheetNames())

	require.NoError(t, w.DeleteSheet("Copy"))
	assert.False(t, w.HasSheet("Copy"))

	assert.ErrorIs(t, w.RenameSheet("Ghost", "X"), xlgrid.ErrSheetNotFound)
	assert.ErrorIs(t, w.DeleteSheet("Ghost"), xlgrid.ErrSheetNotFound)
	assert.ErrorIs(t, w.CopySheet("Ghost", "X"), xlgrid.ErrSheetNotFound)
}

func TestEnsureGrid_CreatesSheet(t *testing.T) {
	w, err := Create(tempWorkbookPath(t), "")
	require.NoError(t, err)
	defer w.Close()

	g, err := w.EnsureGrid("Fresh")
	require.NoError(t, err)
	assert.Equal(t, 0, g.RowCount())
	assert.True(t, w.HasSheet("Fresh"))
}
