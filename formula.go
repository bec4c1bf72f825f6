package xlgrid

import (
	"fmt"
	"strings"

	"github.com/xuri/efp"
)

// SetFormula stores a formula expression in the cell at addr, materializing
// it as needed. A leading "=" is optional and always stripped before
// storage.
func (g *Grid) SetFormula(addr Address, formula string) {
	g.EnsureCell(addr).SetFormula(formula)
}

// ValidateFormulaSyntax tokenizes the formula and rejects expressions that
// are empty, contain unparseable tokens, or have unbalanced function or
// subexpression delimiters. A leading "=" is optional. Returns
// ErrInvalidFormula on failure.
func ValidateFormulaSyntax(formula string) error {
	expr := strings.TrimPrefix(strings.TrimSpace(formula), "=")
	if expr == "" {
		return fmt.Errorf("%w: empty formula", ErrInvalidFormula)
	}

	ps := efp.ExcelParser()
	depth := 0
	for _, token := range ps.Parse(expr) {
		if token.TType == efp.TokenTypeUnknown {
			return fmt.Errorf("%w: unrecognized token %q in %q", ErrInvalidFormula, token.TValue, formula)
		}
		if token.TType != efp.TokenTypeFunction && token.TType != efp.TokenTypeSubexpression {
			continue
		}
		switch token.TSubType {
		case efp.TokenSubTypeStart:
			depth++
		case efp.TokenSubTypeStop:
			depth--
			if depth < 0 {
				return fmt.Errorf("%w: unbalanced parentheses in %q", ErrInvalidFormula, formula)
			}
		}
	}
	if depth != 0 {
		return fmt.Errorf("%w: unbalanced parentheses in %q", ErrInvalidFormula, formula)
	}
	return nil
}

// ValidateRange parses an A1-notation range and checks that its bounds are
// inside the sheet's addressable area. Returns the parsed range on success.
func ValidateRange(text string) (Range, error) {
	rng, err := ParseRange(text)
	if err != nil {
		return Range{}, err
	}
	if rng.FirstRow < 0 || rng.FirstCol < 0 {
		return Range{}, fmt.Errorf("%w: out of bounds: %s", ErrInvalidRange, rng)
	}
	return rng, nil
}
