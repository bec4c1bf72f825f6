package main

import (
	"github.com/spf13/cobra"

	"github.com/javajack/xlgrid"
)

var formatOpts xlgrid.FormatOptions

var formatCmd = &cobra.Command{
	Use:   "format <file> <sheet> <range>",
	Short: "Apply a style to a cell range",
	Long: `Build a style from the flags and assign it to every cell in the range,
replacing whatever styles the cells had. Colors are "#RRGGBB".

Examples:
  xlgrid format report.xlsx Sheet1 A1:C1 --bold --bg-color "#FFFF00"
  xlgrid format report.xlsx Sheet1 B2:B100 --numfmt "0.00%"`,
	Args: cobra.ExactArgs(3),
	RunE: runFormat,
}

func init() {
	formatCmd.Flags().BoolVar(&formatOpts.Bold, "bold", false, "Bold font")
	formatCmd.Flags().BoolVar(&formatOpts.Italic, "italic", false, "Italic font")
	formatCmd.Flags().Float64Var(&formatOpts.FontSize, "size", 0, "Font size in points (0 keeps the default)")
	formatCmd.Flags().StringVar(&formatOpts.FontColor, "font-color", "", "Font color, \"#RRGGBB\"")
	formatCmd.Flags().StringVar(&formatOpts.FillColor, "bg-color", "", "Background fill color, \"#RRGGBB\"")
	formatCmd.Flags().StringVar(&formatOpts.NumFmt, "numfmt", "", "Excel number format code")
	rootCmd.AddCommand(formatCmd)
}

func runFormat(cmd *cobra.Command, args []string) error {
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
	if err := g.FormatRange(rng, formatOpts); err != nil {
		return err
	}

	if err := w.PutGrid(args[1], g); err != nil {
		return err
	}
	return w.Save()
}
