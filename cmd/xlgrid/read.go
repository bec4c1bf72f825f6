package main

import (
	"github.com/spf13/cobra"

	"github.com/javajack/xlgrid"
)

var readCmd = &cobra.Command{
	Use:   "read <file> <sheet> <range>",
	Short: "Read a cell range as a JSON matrix",
	Long: `Read a rectangular range and print it as a JSON array of arrays.
Blank or absent cells print as null; formulas print as "="-prefixed strings.

Examples:
  xlgrid read report.xlsx Sheet1 A1:C10`,
	Args: cobra.ExactArgs(3),
	RunE: runRead,
}

func init() {
	rootCmd.AddCommand(readCmd)
}

func runRead(cmd *cobra.Command, args []string) error {
	rng, err := xlgrid.ParseRange(args[2])
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
	return printJSON(g.ReadMatrix(rng))
}
