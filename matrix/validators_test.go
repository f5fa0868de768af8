package matrix_test

import (
	"testing"

	"github.com/katalvlaran/vecmat/matrix"
	"github.com/stretchr/testify/require"
)

func TestValidateNotEmpty(t *testing.T) {
	require.ErrorIs(t, matrix.ValidateNotEmpty(matrix.Matrix[int]{}), matrix.ErrEmptyMatrix)
	require.NoError(t, matrix.ValidateNotEmpty(matrix.New([][]int{{}})))
}

func TestValidateRectangular(t *testing.T) {
	require.NoError(t, matrix.ValidateRectangular(matrix.Matrix[int]{}))
	require.NoError(t, matrix.ValidateRectangular(matrix.New([][]int{{1, 2}, {3, 4}})))
	require.ErrorIs(t, matrix.ValidateRectangular(matrix.New([][]int{{1, 2}, {3}})), matrix.ErrDimensionMismatch)
}

// TestValidateMulCompatible_Priority checks that emptiness is reported before shape.
func TestValidateMulCompatible_Priority(t *testing.T) {
	b := matrix.New([][]int{{1, 2}, {3}})
	err := matrix.ValidateMulCompatible(matrix.Matrix[int]{}, b)
	require.ErrorIs(t, err, matrix.ErrEmptyMatrix)
	require.NotErrorIs(t, err, matrix.ErrDimensionMismatch)

	require.NoError(t, matrix.ValidateMulCompatible(
		matrix.New([][]int{{1, 2}}),
		matrix.New([][]int{{1}, {2}}),
	))
}
