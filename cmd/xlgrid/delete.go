package main

import (
	"github.com/spf13/cobra"

	"github.com/javajack/xlgrid"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <file> <sheet> <range> <up|left>",
	Short: "Delete a cell range and shift neighbors in",
	Long: `Delete the cells of a range. With "up", rows below the range move up to
close the gap; with "left", cells to the right of the range move left
within each affected row.

Examples:
  xlgrid delete report.xlsx Sheet1 A3:C4 up
  xlgrid delete report.xlsx Sheet1 B2:B2 left`,
	Args: cobra.ExactArgs(4),
	RunE: runDelete,
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}

func runDelete(cmd *cobra.Command, args []string) error {
	rng, err := xlgrid.ParseRange(args[2])
	if err != nil {
		return err
	}
	dir, err := xlgrid.ParseShiftDirection(args[3])
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
	if err := g.DeleteRange(rng, dir); err != nil {
		return err
	}

	if err := w.PutGrid(args[1], g); err != nil {
		return err
	}
	return w.Save()
}
