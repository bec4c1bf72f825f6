package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/javajack/xlgrid"
)

var (
	writeData  string
	appendData string
)

var writeCmd = &cobra.Command{
	Use:   "write <file> <sheet> <start> <rows>",
	Short: "Write a JSON matrix starting at a cell",
	Long: `Write a JSON array of arrays into the sheet with its top-left value at
the start cell. Strings beginning with "=" are written as formulas; null
clears the cell while keeping its style. The sheet is created when absent.

With --data, string values may contain ${...} expressions evaluated against
the given JSON object file.

Examples:
  xlgrid write report.xlsx Sheet1 B3 '[["a",1],[true,"=SUM(A1:B1)"]]'
  xlgrid write report.xlsx Sheet1 A1 '[["${title}"]]' --data vars.json`,
	Args: cobra.ExactArgs(4),
	RunE: runWrite,
}

var appendCmd = &cobra.Command{
	Use:   "append <file> <sheet> <anchor-column> <rows>",
	Short: "Append rows at the first empty row",
	Long: `Append a JSON array of arrays at the first empty row, found by scanning
the anchor column from the top. New cells take their look from the row
directly above the insertion point. Prints the row number the append
started at (1-based).

Examples:
  xlgrid append report.xlsx Sheet1 A '[["x",1],["y",2]]'`,
	Args: cobra.ExactArgs(4),
	RunE: runAppend,
}

func init() {
	writeCmd.Flags().StringVar(&writeData, "data", "", "JSON object file for ${...} expression expansion")
	appendCmd.Flags().StringVar(&appendData, "data", "", "JSON object file for ${...} expression expansion")
	rootCmd.AddCommand(writeCmd)
	rootCmd.AddCommand(appendCmd)
}

func runWrite(cmd *cobra.Command, args []string) error {
	anchor, err := xlgrid.ParseAddress(args[2])
	if err != nil {
		return err
	}
	matrix, err := parseMatrix(args[3], writeData)
	if err != nil {
		return err
	}

	w, err := openWorkbook(args[0])
	if err != nil {
		return err
	}
	defer w.Close()

	g, err := w.EnsureGrid(args[1])
	if err != nil {
		return err
	}
	g.WriteMatrix(anchor, matrix)

	if err := w.PutGrid(args[1], g); err != nil {
		return err
	}
	return w.Save()
}

func runAppend(cmd *cobra.Command, args []string) error {
	anchorCol, err := parseAnchorColumn(args[2])
	if err != nil {
		return err
	}
	matrix, err := parseMatrix(args[3], appendData)
	if err != nil {
		return err
	}

	w, err := openWorkbook(args[0])
	if err != nil {
		return err
	}
	defer w.Close()

	g, err := w.EnsureGrid(args[1])
	if err != nil {
		return err
	}
	start := g.AppendRows(anchorCol, matrix)

	if err := w.PutGrid(args[1], g); err != nil {
		return err
	}
	if err := w.Save(); err != nil {
		return err
	}
	fmt.Println(start + 1)
	return nil
}
