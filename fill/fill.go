// Package fill expands ${...} expressions inside matrix values against a
// data map before the values reach the grid. A value that is one single
// expression keeps the expression's native type; mixed text interpolates
// into a string. Non-string values pass through untouched.
package fill

import (
	"fmt"
	"strings"
	"sync"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

const (
	defaultNotationBegin = "${"
	defaultNotationEnd   = "}"
)

// Expander evaluates ${...} expressions against a fixed data map. Compiled
// programs are cached per expression.
type Expander struct {
	data  map[string]any
	begin string
	end   string
	cache sync.Map // expression string → compiled *vm.Program
}

// Option configures an Expander.
type Option func(*Expander)

// WithNotation sets custom expression delimiters (default: "${", "}").
func WithNotation(begin, end string) Option {
	return func(e *Expander) {
		e.begin = begin
		e.end = end
	}
}

// New creates an Expander over the given data map.
func New(data map[string]any, opts ...Option) *Expander {
	if data == nil {
		data = make(map[string]any)
	}
	e := &Expander{
		data:  data,
		begin: defaultNotationBegin,
		end:   defaultNotationEnd,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ExpandMatrix returns a copy of the matrix with every string value
// expanded. The input matrix is not modified.
func (e *Expander) ExpandMatrix(matrix [][]any) ([][]any, error) {
	out := make([][]any, len(matrix))
	for r, row := range matrix {
		out[r] = make([]any, len(row))
		for c, v := range row {
			expanded, err := e.ExpandValue(v)
			if err != nil {
				return nil, fmt.Errorf("cell (%d,%d): %w", r, c, err)
			}
			out[r][c] = expanded
		}
	}
	return out, nil
}

// ExpandValue expands a single value. Only strings containing the begin
// delimiter are touched.
func (e *Expander) ExpandValue(v any) (any, error) {
	s, ok := v.(string)
	if !ok || !strings.Contains(s, e.begin) {
		return v, nil
	}

	if inner, ok := e.singleExpression(s); ok {
		return e.evaluate(inner)
	}

	var b strings.Builder
	remaining := s
	for {
		start := strings.Index(remaining, e.begin)
		if start < 0 {
			b.WriteString(remaining)
			break
		}
		end := strings.Index(remaining[start+len(e.begin):], e.end)
		if end < 0 {
			b.WriteString(remaining)
			break
		}
		end += start + len(e.begin)

		b.WriteString(remaining[:start])
		result, err := e.evaluate(remaining[start+len(e.begin) : end])
		if err != nil {
			return nil, err
		}
		if result != nil {
			fmt.Fprintf(&b, "%v", result)
		}
		remaining = remaining[end+len(e.end):]
	}
	return b.String(), nil
}

// singleExpression reports whether the value is exactly one expression with
// no surrounding text, returning its content.
func (e *Expander) singleExpression(s string) (string, bool) {
	trimmed := strings.TrimSpace(s)
	if !strings.HasPrefix(trimmed, e.begin) || !strings.HasSuffix(trimmed, e.end) {
		return "", false
	}
	inner := trimmed[len(e.begin) : len(trimmed)-len(e.end)]
	if strings.Contains(inner, e.begin) || strings.Contains(inner, e.end) {
		return "", false
	}
	return inner, true
}

func (e *Expander) evaluate(expression string) (any, error) {
	if expression == "" {
		return nil, nil
	}
	program, err := e.compile(expression)
	if err != nil {
		return nil, fmt.Errorf("compile expression %q: %w", expression, err)
	}
	result, err := expr.Run(program, e.data)
	if err != nil {
		return nil, fmt.Errorf("evaluate expression %q: %w", expression, err)
	}
	return result, nil
}

func (e *Expander) compile(expression string) (*vm.Program, error) {
	if cached, ok := e.cache.Load(expression); ok {
		return cached.(*vm.Program), nil
	}
	program, err := expr.Compile(expression, expr.Env(e.data), expr.AllowUndefinedVariables())
	if err != nil {
		return nil, err
	}
	e.cache.Store(expression, program)
	return program, nil
}
