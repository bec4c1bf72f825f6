package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/javajack/xlgrid"
	"github.com/javajack/xlgrid/fill"
	"github.com/javajack/xlgrid/xlsxio"
)

// Version is set at build time via -ldflags.
var Version = "dev"

var verbose bool

var rootCmd = &cobra.Command{
	Use:           "xlgrid",
	Short:         "xlgrid — edit cell ranges of Excel workbooks",
	Version:       Version,
	SilenceErrors: true,
	SilenceUsage:  true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log workbook operations to stderr")
	rootCmd.SetGlobalNormalizationFunc(func(f *pflag.FlagSet, name string) pflag.NormalizedName {
		return pflag.NormalizedName(strings.ToLower(name))
	})
}

func logger() *slog.Logger {
	if verbose {
		return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func openWorkbook(path string) (*xlsxio.Workbook, error) {
	return xlsxio.Open(path, xlsxio.WithLogger(logger()))
}

// parseMatrix decodes a JSON array of arrays and optionally expands ${...}
// expressions against a JSON data file.
func parseMatrix(jsonRows, dataPath string) ([][]any, error) {
	var matrix [][]any
	if err := json.Unmarshal([]byte(jsonRows), &matrix); err != nil {
		return nil, fmt.Errorf("rows must be a JSON array of arrays: %w", err)
	}
	if dataPath == "" {
		return matrix, nil
	}

	raw, err := os.ReadFile(dataPath)
	if err != nil {
		return nil, fmt.Errorf("read data file: %w", err)
	}
	var data map[string]any
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("data file must hold a JSON object: %w", err)
	}
	return fill.New(data).ExpandMatrix(matrix)
}

func printJSON(v any) error {
	out, err := json.Marshal(v)
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

func parseAnchorColumn(s string) (int, error) {
	col, err := xlgrid.ColIndex(s)
	if err != nil {
		return 0, fmt.Errorf("anchor column must be a column letter like \"A\": %w", err)
	}
	return col, nil
}
