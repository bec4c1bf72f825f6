package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/javajack/xlgrid"
)

var formulaValidate bool

var formulaCmd = &cobra.Command{
	Use:   "formula <file> <sheet> <cell> <formula>",
	Short: "Set a formula in a cell",
	Long: `Store a formula in the given cell. The leading "=" is optional. With
--validate, the formula's syntax is checked first and nothing is written
when it fails.

Examples:
  xlgrid formula report.xlsx Sheet1 D1 "=SUM(A1:C1)"
  xlgrid formula report.xlsx Sheet1 D1 "SUM(A1:C1)" --validate`,
	Args: cobra.ExactArgs(4),
	RunE: runFormula,
}

var validateFormulaCmd = &cobra.Command{
	Use:   "validate-formula <formula>",
	Short: "Check a formula's syntax",
	Long: `Tokenize a formula and check it for unparseable tokens and unbalanced
parentheses. No workbook is touched. Prints "ok" on success.

Examples:
  xlgrid validate-formula "=IF(A1>0,SUM(B1:B10),0)"`,
	Args: cobra.ExactArgs(1),
	RunE: runValidateFormula,
}

var validateRangeCmd = &cobra.Command{
	Use:   "validate-range <range>",
	Short: "Check an A1-notation range",
	Long: `Parse an A1-notation range and print its normalized form, with the
top-left corner first. No workbook is touched.

Examples:
  xlgrid validate-range C10:A1`,
	Args: cobra.ExactArgs(1),
	RunE: runValidateRange,
}

func init() {
	formulaCmd.Flags().BoolVar(&formulaValidate, "validate", false, "Check the formula's syntax before writing")
	rootCmd.AddCommand(formulaCmd)
	rootCmd.AddCommand(validateFormulaCmd)
	rootCmd.AddCommand(validateRangeCmd)
}

func runFormula(cmd *cobra.Command, args []string) error {
	addr, err := xlgrid.ParseAddress(args[2])
	if err != nil {
		return err
	}
	if formulaValidate {
		if err := xlgrid.ValidateFormulaSyntax(args[3]); err != nil {
			return err
		}
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
	g.SetFormula(addr, args[3])

	if err := w.PutGrid(args[1], g); err != nil {
		return err
	}
	return w.Save()
}

func runValidateFormula(cmd *cobra.Command, args []string) error {
	if err := xlgrid.ValidateFormulaSyntax(args[0]); err != nil {
		return err
	}
	fmt.Println("ok")
	return nil
}

func runValidateRange(cmd *cobra.Command, args []string) error {
	rng, err := xlgrid.ValidateRange(args[0])
	if err != nil {
		return err
	}
	fmt.Println(rng.String())
	return nil
}
