package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/javajack/xlgrid"
)

var mergeCmd = &cobra.Command{
	Use:   "merge <file> <sheet> <range>",
	Short: "Merge a cell range",
	Long: `Merge the cells of a range into one region. Fails when the range
overlaps an existing merged region.

Examples:
  xlgrid merge report.xlsx Sheet1 A1:C1`,
	Args: cobra.ExactArgs(3),
	RunE: runMerge,
}

var unmergeCmd = &cobra.Command{
	Use:   "unmerge <file> <sheet> <range>",
	Short: "Unmerge regions overlapping a range",
	Long: `Remove every merged region that overlaps the range, even partially.
Prints the number of regions removed.

Examples:
  xlgrid unmerge report.xlsx Sheet1 A1:Z100`,
	Args: cobra.ExactArgs(3),
	RunE: runUnmerge,
}

func init() {
	rootCmd.AddCommand(mergeCmd)
	rootCmd.AddCommand(unmergeCmd)
}

func runMerge(cmd *cobra.Command, args []string) error {
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
	if err := g.Merge(rng); err != nil {
		return err
	}

	if err := w.PutGrid(args[1], g); err != nil {
		return err
	}
	return w.Save()
}

func runUnmerge(cmd *cobra.Command, args []string) error {
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
	removed := g.Unmerge(rng)

	if err := w.PutGrid(args[1], g); err != nil {
		return err
	}
	if err := w.Save(); err != nil {
		return err
	}
	fmt.Println(removed)
	return nil
}
