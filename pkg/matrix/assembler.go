// Package matrix is the MNA assembler: it turns a component's stamp list
// into the (N+M)x(N+M) system LinAlg solves. Contributions accumulate into
// a github.com/edp1096/sparse matrix through a thin AddElement/AddRHS
// wrapper, which is a convenient growable backing store for a system whose
// size isn't known until all stamps for an iteration are in hand. The
// assembler then exports a dense snapshot for pkg/linalg's own solve step
// rather than calling the sparse library's factorer directly, since the
// solver needs an exact pivot threshold and a two-stage regularized retry
// that a black-box Factor/Solve call doesn't expose (see DESIGN.md).
package matrix

import (
	"fmt"

	"github.com/edp1096/sparse"
)

// Assembler accumulates conductance and RHS contributions into a
// 1-indexed size x size system (index 0 means "ground, skip").
type Assembler struct {
	Size int
	mat  *sparse.Matrix
	rhs  []float64
}

// NewAssembler creates an assembler for a system of the given size
// (N non-ground nodes + M voltage-source branches).
func NewAssembler(size int) (*Assembler, error) {
	config := &sparse.Configuration{
		Real:           true,
		Complex:        false,
		Expandable:     true,
		ModifiedNodal:  true,
		TiesMultiplier: 5,
	}

	mat, err := sparse.Create(int64(size), config)
	if err != nil {
		return nil, fmt.Errorf("matrix: create: %w", err)
	}

	return &Assembler{
		Size: size,
		mat:  mat,
		rhs:  make([]float64, size+1), // 1-based
	}, nil
}

// AddElement adds value to A[i][j]. Indices <= 0 (ground) are no-ops.
func (a *Assembler) AddElement(i, j int, value float64) {
	if i <= 0 || j <= 0 || i > a.Size || j > a.Size {
		return
	}
	a.mat.GetElement(int64(i), int64(j)).Real += value
}

// AddRHS adds value to z[i]. Index <= 0 (ground) is a no-op.
func (a *Assembler) AddRHS(i int, value float64) {
	if i <= 0 || i > a.Size {
		return
	}
	a.rhs[i] += value
}

// Dense exports the accumulated system as a 0-indexed dense matrix and RHS
// vector of dimension Size, suitable for pkg/linalg.Solve.
func (a *Assembler) Dense() ([][]float64, []float64) {
	dense := make([][]float64, a.Size)
	for i := 1; i <= a.Size; i++ {
		row := make([]float64, a.Size)
		for j := 1; j <= a.Size; j++ {
			row[j-1] = a.mat.GetElement(int64(i), int64(j)).Real
		}
		dense[i-1] = row
	}
	z := make([]float64, a.Size)
	copy(z, a.rhs[1:])
	return dense, z
}

// RowColEmpty reports whether row i and column i are both entirely zero,
// the test for an unstamped (floating) node.
func (a *Assembler) RowColEmpty(i int) bool {
	for j := 1; j <= a.Size; j++ {
		if a.mat.GetElement(int64(i), int64(j)).Real != 0 {
			return false
		}
		if a.mat.GetElement(int64(j), int64(i)).Real != 0 {
			return false
		}
	}
	return true
}

// Destroy releases the backing sparse matrix's native resources.
func (a *Assembler) Destroy() {
	if a.mat != nil {
		a.mat.Destroy()
	}
}
