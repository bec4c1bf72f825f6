package xlgrid

import "fmt"

// FormatOptions describes the style to apply to a range. Zero values mean
// "default": a FontSize of 0 keeps the default size and empty color strings
// skip that attribute.
type FormatOptions struct {
	Bold      bool
	Italic    bool
	FontSize  float64
	FontColor string // "#RRGGBB" or ""
	FillColor string // "#RRGGBB" or ""
	NumFmt    string // Excel number format code or ""
}

// FormatRange builds one interned style from opts and assigns it to every
// cell in the range, materializing rows and cells as needed. The style
// replaces whatever styles the cells had. Color validation happens before
// any mutation; a malformed color fails with ErrInvalidArgument and leaves
// the grid unchanged.
func (g *Grid) FormatRange(rng Range, opts FormatOptions) error {
	style := Style{
		Bold:     opts.Bold,
		Italic:   opts.Italic,
		FontSize: opts.FontSize,
		NumFmt:   opts.NumFmt,
	}

	if opts.FontColor != "" {
		color, err := ParseHexColor(opts.FontColor)
		if err != nil {
			return fmt.Errorf("font color: %w", err)
		}
		style.FontColor = color
	}
	if opts.FillColor != "" {
		color, err := ParseHexColor(opts.FillColor)
		if err != nil {
			return fmt.Errorf("fill color: %w", err)
		}
		style.FillColor = color
	}

	handle := g.styles.Intern(style)
	for r := rng.FirstRow; r <= rng.LastRow; r++ {
		for c := rng.FirstCol; c <= rng.LastCol; c++ {
			g.EnsureCell(Address{Row: r, Col: c}).Style = handle
		}
	}
	return nil
}
