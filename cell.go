package xlgrid

import (
	"encoding/json"
	"fmt"
	"strings"
)

// CellKind represents the kind of value held by a cell.
type CellKind int

const (
	KindBlank CellKind = iota
	KindText
	KindNumber
	KindBool
	KindFormula
)

// String returns a human-readable name for the CellKind.
func (k CellKind) String() string {
	switch k {
	case KindBlank:
		return "Blank"
	case KindText:
		return "Text"
	case KindNumber:
		return "Number"
	case KindBool:
		return "Bool"
	case KindFormula:
		return "Formula"
	default:
		return "Unknown"
	}
}

// Cell holds a single cell's value and a handle to its shared style record.
// A cell is owned exclusively by its containing row; styles are interned and
// may be shared by many cells.
type Cell struct {
	Kind    CellKind
	Text    string  // KindText
	Number  float64 // KindNumber
	Bool    bool    // KindBool
	Formula string  // KindFormula, stored without the leading "="
	Style   *Style  // nil = unstyled
}

// SetBlank clears the cell's content. The style handle is left untouched;
// clearing never removes the cell from its row.
func (c *Cell) SetBlank() {
	c.Kind = KindBlank
	c.Text = ""
	c.Number = 0
	c.Bool = false
	c.Formula = ""
}

// SetText sets a text value.
func (c *Cell) SetText(s string) {
	c.SetBlank()
	c.Kind = KindText
	c.Text = s
}

// SetNumber sets a numeric value.
func (c *Cell) SetNumber(f float64) {
	c.SetBlank()
	c.Kind = KindNumber
	c.Number = f
}

// SetBool sets a boolean value.
func (c *Cell) SetBool(b bool) {
	c.SetBlank()
	c.Kind = KindBool
	c.Bool = b
}

// SetFormula sets a formula expression. A leading "=" is stripped so the
// stored expression never carries one.
func (c *Cell) SetFormula(expr string) {
	c.SetBlank()
	c.Kind = KindFormula
	c.Formula = strings.TrimPrefix(expr, "=")
}

// SetValue classifies an arbitrary input value and stores it:
//
//   - nil clears the cell (style preserved)
//   - numeric types become Number
//   - bool becomes Bool
//   - a string starting with "=" (and longer than 1) becomes Formula
//   - any other string becomes Text
//   - anything else is stored as its textual representation
func (c *Cell) SetValue(v any) {
	switch val := v.(type) {
	case nil:
		c.SetBlank()
	case bool:
		c.SetBool(val)
	case float64:
		c.SetNumber(val)
	case float32:
		c.SetNumber(float64(val))
	case int:
		c.SetNumber(float64(val))
	case int8:
		c.SetNumber(float64(val))
	case int16:
		c.SetNumber(float64(val))
	case int32:
		c.SetNumber(float64(val))
	case int64:
		c.SetNumber(float64(val))
	case uint:
		c.SetNumber(float64(val))
	case uint8:
		c.SetNumber(float64(val))
	case uint16:
		c.SetNumber(float64(val))
	case uint32:
		c.SetNumber(float64(val))
	case uint64:
		c.SetNumber(float64(val))
	case json.Number:
		if f, err := val.Float64(); err == nil {
			c.SetNumber(f)
		} else {
			c.SetText(val.String())
		}
	case string:
		if strings.HasPrefix(val, "=") && len(val) > 1 {
			c.SetFormula(val)
		} else {
			c.SetText(val)
		}
	default:
		// Fallback: store structured values as text, never fail.
		c.SetText(fmt.Sprintf("%v", v))
	}
}

// Value returns the cell's native value: string, float64, bool, or nil for
// a blank cell. A formula is returned as its expression text with a leading
// "=" so callers can round-trip it through SetValue.
func (c *Cell) Value() any {
	switch c.Kind {
	case KindText:
		return c.Text
	case KindNumber:
		return c.Number
	case KindBool:
		return c.Bool
	case KindFormula:
		return "=" + c.Formula
	default:
		return nil
	}
}

// IsBlank returns true if the cell holds no value.
func (c *Cell) IsBlank() bool {
	return c.Kind == KindBlank
}
