package main

import (
	"github.com/spf13/cobra"

	"github.com/javajack/xlgrid"
)

var (
	copyTargetSheet string
	copyStyle       bool
)

var copyCmd = &cobra.Command{
	Use:   "copy <file> <sheet> <source-range> <target-start>",
	Short: "Copy a cell range to another location",
	Long: `Copy a rectangular range so its top-left cell lands on the target start
cell. Values, formulas, styles and row heights come along; formulas are
copied verbatim, their references are not re-anchored. With --target-sheet
the destination is another sheet of the same workbook, created when absent.

Examples:
  xlgrid copy report.xlsx Sheet1 A1:C5 E1
  xlgrid copy report.xlsx Sheet1 A1:C5 A1 --target-sheet Backup
  xlgrid copy report.xlsx Sheet1 A1:C5 E1 --style=false`,
	Args: cobra.ExactArgs(4),
	RunE: runCopy,
}

func init() {
	copyCmd.Flags().StringVar(&copyTargetSheet, "target-sheet", "", "Destination sheet (default: same sheet)")
	copyCmd.Flags().BoolVar(&copyStyle, "style", true, "Copy cell styles and row heights")
	rootCmd.AddCommand(copyCmd)
}

func runCopy(cmd *cobra.Command, args []string) error {
	src, err := xlgrid.ParseRange(args[2])
	if err != nil {
		return err
	}
	anchor, err := xlgrid.ParseAddress(args[3])
	if err != nil {
		return err
	}

	w, err := openWorkbook(args[0])
	if err != nil {
		return err
	}
	defer w.Close()

	g, err := w.Grid(args[1])
	if err != nil {
		return err
	}

	targetSheet := args[1]
	target := g
	if copyTargetSheet != "" && copyTargetSheet != args[1] {
		targetSheet = copyTargetSheet
		target, err = w.EnsureGrid(targetSheet)
		if err != nil {
			return err
		}
	}

	g.CopyRange(src, target, anchor, copyStyle)

	if err := w.PutGrid(targetSheet, target); err != nil {
		return err
	}
	return w.Save()
}
