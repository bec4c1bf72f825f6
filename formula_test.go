package xlgrid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateFormulaSyntax_Valid(t *testing.T) {
	valid := []string{
		"=SUM(A1:B1)",
		"SUM(A1:B1)",
		"=A1+B1*2",
		"=IF(A1>0, SUM(B1:B10), 0)",
		"=(A1+A2)/A3",
		`=CONCATENATE("a", "b")`,
	}
	for _, f := range valid {
		t.Run(f, func(t *testing.T) {
			assert.NoError(t, ValidateFormulaSyntax(f))
		})
	}
}

func TestValidateFormulaSyntax_Invalid(t *testing.T) {
	invalid := []string{
		"",
		"=",
		"   ",
		"=SUM(A1:B1",
		"=SUM(A1:B1))",
		"=IF(A1>0, SUM(B1:B10, 0)",
	}
	for _, f := range invalid {
		t.Run(f, func(t *testing.T) {
			assert.ErrorIs(t, ValidateFormulaSyntax(f), ErrInvalidFormula)
		})
	}
}

func TestValidateRange(t *testing.T) {
	rng, err := ValidateRange("A1:C10")
	require.NoError(t, err)
	assert.Equal(t, mustRange(t, "A1:C10"), rng)

	_, err = ValidateRange("A1")
	assert.ErrorIs(t, err, ErrInvalidRange)

	_, err = ValidateRange("A1:?")
	assert.ErrorIs(t, err, ErrInvalidRange)
}
