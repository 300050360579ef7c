// Package linalg solves dense linear systems A x = z by Gauss-Jordan
// elimination with partial pivoting. This is deliberately not delegated to
// a third-party matrix library: the solver needs an exact pivot-magnitude
// threshold and a two-stage retry (plain solve, then a regularized retry
// on failure) that a library's opaque Factor/Solve call doesn't expose
// control over. The partial-pivoting search scans column k for the
// largest remaining magnitude, swaps it into place, and eliminates, done
// in place with row reduction to a diagonal instead of separate L/U
// factors, since this solver only ever needs one solve per assembled
// system, never a reusable factorization.
package linalg

import (
	"fmt"
	"math"

	"github.com/ohmlab/dcsolver/internal/consts"
)

// ErrSingularMatrix is returned when no usable pivot (magnitude >=
// consts.PivotThreshold) can be found for some column.
var ErrSingularMatrix = fmt.Errorf("linalg: singular matrix")

// Solve returns the unique solution to a x = z for square a. a and z are
// copied before elimination; the caller's inputs are left untouched.
func Solve(a [][]float64, z []float64) ([]float64, error) {
	n := len(a)
	if n == 0 {
		return nil, nil
	}
	for _, row := range a {
		if len(row) != n {
			return nil, fmt.Errorf("linalg: matrix must be square, got %d rows x %d cols", n, len(row))
		}
	}
	if len(z) != n {
		return nil, fmt.Errorf("linalg: rhs length %d does not match matrix size %d", len(z), n)
	}

	m := make([][]float64, n)
	for i := range a {
		m[i] = append([]float64(nil), a[i]...)
	}
	x := append([]float64(nil), z...)

	for k := 0; k < n; k++ {
		pivotRow := k
		pivotMag := math.Abs(m[k][k])
		for i := k + 1; i < n; i++ {
			if mag := math.Abs(m[i][k]); mag > pivotMag {
				pivotRow, pivotMag = i, mag
			}
		}
		if pivotMag < consts.PivotThreshold {
			return nil, ErrSingularMatrix
		}
		if pivotRow != k {
			m[k], m[pivotRow] = m[pivotRow], m[k]
			x[k], x[pivotRow] = x[pivotRow], x[k]
		}

		pivot := m[k][k]
		for i := 0; i < n; i++ {
			if i == k {
				continue
			}
			factor := m[i][k] / pivot
			if factor == 0 {
				continue
			}
			for j := k; j < n; j++ {
				m[i][j] -= factor * m[k][j]
			}
			x[i] -= factor * x[k]
		}
	}

	result := make([]float64, n)
	for i := 0; i < n; i++ {
		result[i] = x[i] / m[i][i]
	}
	return result, nil
}
