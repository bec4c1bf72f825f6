// Package xlsxio is the persistence collaborator for the grid engine: it
// loads worksheets of an .xlsx file into xlgrid.Grid values and writes them
// back, delegating all workbook encoding to excelize. The engine itself
// never touches files.
package xlsxio

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/javajack/xlgrid"
)

// DefaultSheetName is used when a workbook is created without a sheet name.
const DefaultSheetName = "Sheet1"

// Workbook wraps an excelize file and a style pool shared by every grid
// loaded from it.
type Workbook struct {
	file   *excelize.File
	path   string
	styles *xlgrid.StylePool

	styleIDs   map[*xlgrid.Style]int // interned style → excelize style ID
	loadedByID map[int]*xlgrid.Style // excelize style ID → interned style

	log    *slog.Logger
	recalc bool
}

// Options holds configuration for a Workbook.
type Options struct {
	logger *slog.Logger
	recalc bool
}

// Option configures a Workbook.
type Option func(*Options)

// WithLogger sets the logging sink. The default discards everything; the
// package never touches process-global logger state.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) { o.logger = l }
}

// WithRecalcOnSave marks saved workbooks so Excel recalculates all formulas
// when the file is opened.
func WithRecalcOnSave(recalc bool) Option {
	return func(o *Options) { o.recalc = recalc }
}

func newWorkbook(f *excelize.File, path string, opts ...Option) *Workbook {
	o := &Options{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
	for _, opt := range opts {
		opt(o)
	}
	return &Workbook{
		file:       f,
		path:       path,
		styles:     xlgrid.NewStylePool(),
		styleIDs:   make(map[*xlgrid.Style]int),
		loadedByID: make(map[int]*xlgrid.Style),
		log:        o.logger,
		recalc:     o.recalc,
	}
}

// Open opens an existing workbook file.
func Open(path string, opts ...Option) (*Workbook, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook %q: %w", path, err)
	}
	return newWorkbook(f, path, opts...), nil
}

// Create creates a new workbook with a single sheet at the given path. An
// empty sheetName defaults to "Sheet1". The file is not written until Save.
func Create(path, sheetName string, opts ...Option) (*Workbook, error) {
	if sheetName == "" {
		sheetName = DefaultSheetName
	}
	f := excelize.NewFile()
	if sheetName != DefaultSheetName {
		if err := f.SetSheetName(DefaultSheetName, sheetName); err != nil {
			return nil, fmt.Errorf("name first sheet %q: %w", sheetName, err)
		}
	}
	return newWorkbook(f, path, opts...), nil
}

// Path returns the file path the workbook was opened from or created at.
func (w *Workbook) Path() string {
	return w.path
}

// Styles returns the style pool shared by all grids of this workbook.
func (w *Workbook) Styles() *xlgrid.StylePool {
	return w.styles
}

// SheetNames lists the workbook's sheet names in workbook order.
func (w *Workbook) SheetNames() []string {
	return w.file.GetSheetList()
}

// HasSheet reports whether a sheet with the given name exists.
func (w *Workbook) HasSheet(name string) bool {
	idx, err := w.file.GetSheetIndex(name)
	return err == nil && idx >= 0
}

func (w *Workbook) requireSheet(name string) error {
	if !w.HasSheet(name) {
		return fmt.Errorf("%w: %q", xlgrid.ErrSheetNotFound, name)
	}
	return nil
}

// AddSheet appends a new empty sheet.
func (w *Workbook) AddSheet(name string) error {
	if _, err := w.file.NewSheet(name); err != nil {
		return fmt.Errorf("create sheet %q: %w", name, err)
	}
	w.log.Debug("sheet created", "sheet", name)
	return nil
}

// EnsureSheet creates the sheet if it does not exist yet.
func (w *Workbook) EnsureSheet(name string) error {
	if w.HasSheet(name) {
		return nil
	}
	return w.AddSheet(name)
}

// RenameSheet renames an existing sheet.
func (w *Workbook) RenameSheet(oldName, newName string) error {
	if err := w.requireSheet(oldName); err != nil {
		return err
	}
	if err := w.file.SetSheetName(oldName, newName); err != nil {
		return fmt.Errorf("rename sheet %q to %q: %w", oldName, newName, err)
	}
	return nil
}

// CopySheet duplicates a sheet under a new name.
func (w *Workbook) CopySheet(src, dst string) error {
	srcIdx, err := w.file.GetSheetIndex(src)
	if err != nil || srcIdx < 0 {
		return fmt.Errorf("%w: %q", xlgrid.ErrSheetNotFound, src)
	}
	dstIdx, err := w.file.NewSheet(dst)
	if err != nil {
		return fmt.Errorf("create sheet %q: %w", dst, err)
	}
	if err := w.file.CopySheet(srcIdx, dstIdx); err != nil {
		return fmt.Errorf("copy sheet %q to %q: %w", src, dst, err)
	}
	return nil
}

// DeleteSheet removes a sheet from the workbook.
func (w *Workbook) DeleteSheet(name string) error {
	if err := w.requireSheet(name); err != nil {
		return err
	}
	if err := w.file.DeleteSheet(name); err != nil {
		return fmt.Errorf("delete sheet %q: %w", name, err)
	}
	return nil
}

// Save writes the workbook back to its path. The write goes through a
// uniquely named temp file in the same directory and a rename, so a crash
// mid-save never leaves a truncated workbook behind.
func (w *Workbook) Save() error {
	return w.SaveAs(w.path)
}

// SaveAs writes the workbook to the given path atomically.
func (w *Workbook) SaveAs(path string) error {
	if path == "" {
		return fmt.Errorf("%w: empty workbook path", xlgrid.ErrInvalidArgument)
	}
	if w.recalc {
		if err := w.file.UpdateLinkedValue(); err != nil {
			return fmt.Errorf("clear cached formula values: %w", err)
		}
	}

	dir := filepath.Dir(path)
	tmp := filepath.Join(dir, fmt.Sprintf(".%s.%s.tmp", filepath.Base(path), uuid.NewString()))
	tmpFile, err := os.OpenFile(tmp, os.O_WRONLY|os.O_TRUNC|os.O_CREATE, 0o666)
	if err != nil {
		return fmt.Errorf("write workbook %q: %w", path, err)
	}
	if err := w.file.Write(tmpFile); err != nil {
		tmpFile.Close()
		os.Remove(tmp)
		return fmt.Errorf("write workbook %q: %w", path, err)
	}
	if err := tmpFile.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("write workbook %q: %w", path, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("replace workbook %q: %w", path, err)
	}
	w.log.Debug("workbook saved", "path", path)
	return nil
}

// Close releases the underlying file handle without saving.
func (w *Workbook) Close() error {
	return w.file.Close()
}

// File exposes the underlying excelize file for operations the collaborator
// does not wrap.
func (w *Workbook) File() *excelize.File {
	return w.file
}
