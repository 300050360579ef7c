// Package analysis runs the DC outer fixed-point loop: assemble, solve,
// update behavioral state, repeat until the node voltages settle or the
// iteration budget runs out. Each device is piecewise-linear and simply
// snaps between fixed linear regions as behavioral state changes between
// passes, so there is no Jacobian to maintain — only a re-stamp from
// updated behavioral state, with a regularized retry before giving up on
// a pass whose assembled system comes out singular.
package analysis

import (
	"fmt"
	"math"

	"github.com/ohmlab/dcsolver/internal/consts"
	"github.com/ohmlab/dcsolver/pkg/device"
	"github.com/ohmlab/dcsolver/pkg/linalg"
	"github.com/ohmlab/dcsolver/pkg/matrix"
	"github.com/ohmlab/dcsolver/pkg/stamp"
)

// Result is the outer loop's report.
type Result struct {
	NodeVoltages map[string]float64
	VSCurrents   map[string]float64
	Iterations   int
	Converged    bool
}

// UnsolvableError is the solver's fatal verdict: both the plain solve and
// the Tikhonov-regularized retry found the assembled system singular.
type UnsolvableError struct {
	Nodes         []string
	FloatingNodes []string
	VSCount       int
	Err           error
}

func (e *UnsolvableError) Error() string {
	return fmt.Sprintf("analysis: unsolvable: %d nodes, %d floating, %d voltage sources: %v",
		len(e.Nodes), len(e.FloatingNodes), e.VSCount, e.Err)
}

func (e *UnsolvableError) Unwrap() error { return e.Err }

// Solve runs the fixed-point loop over an already-netlisted component set
// (pins already bound to node ids by netlist.Build).
func Solve(devices []device.Device, maxIter int, tol float64) (Result, error) {
	if maxIter <= 0 {
		maxIter = consts.DefaultMaxIter
	}
	if tol <= 0 {
		tol = consts.DefaultTol
	}

	nodeList, nodeIndex := collectNodes(devices)
	n := len(nodeList)

	lastVoltages := make(map[string]float64, n+1)
	lastVoltages[consts.GroundNode] = 0
	for _, id := range nodeList {
		lastVoltages[id] = 0
	}

	// Seed behavioral state from the zero vector before the first assembly.
	// A logic gate whose VCC pin reads 0 V here sees every input as
	// indeterminate and stays undriven until a solved vector gives it a
	// supply rail.
	for _, d := range devices {
		d.UpdateState(lastVoltages)
	}

	for iter := 1; iter <= maxIter; iter++ {
		var stamps []stamp.Stamp
		for _, d := range devices {
			stamps = append(stamps, d.Stamps()...)
		}

		a, z, vsIndex, floating, err := matrix.Assemble(stamps, nodeIndex, n)
		if err != nil {
			return Result{}, fmt.Errorf("analysis: assemble: %w", err)
		}

		x, err := linalg.Solve(a, z)
		if err != nil {
			x, err = retryWithTikhonov(a, z, n)
			if err != nil {
				return Result{}, &UnsolvableError{
					Nodes:         nodeList,
					FloatingNodes: floating,
					VSCount:       len(vsIndex),
					Err:           err,
				}
			}
		}

		nodeVoltages := make(map[string]float64, n+1)
		nodeVoltages[consts.GroundNode] = 0
		for i, id := range nodeList {
			nodeVoltages[id] = x[i]
		}

		for _, d := range devices {
			d.UpdateState(nodeVoltages)
		}

		maxDiff := 0.0
		for _, id := range nodeList {
			if diff := math.Abs(nodeVoltages[id] - lastVoltages[id]); diff > maxDiff {
				maxDiff = diff
			}
		}
		lastVoltages = nodeVoltages

		if maxDiff < tol {
			vsCurrents := make(map[string]float64, len(vsIndex))
			for id, rank := range vsIndex {
				vsCurrents[id] = x[n+rank-1]
			}
			return Result{
				NodeVoltages: nodeVoltages,
				VSCurrents:   vsCurrents,
				Iterations:   iter,
				Converged:    true,
			}, nil
		}
	}

	return Result{
		NodeVoltages: lastVoltages,
		VSCurrents:   map[string]float64{},
		Iterations:   maxIter,
		Converged:    false,
	}, nil
}

// collectNodes gathers the stable, first-encounter-ordered list of
// non-ground node ids referenced by any bound device pin, and a 1-based
// row/col index for each.
func collectNodes(devices []device.Device) ([]string, map[string]int) {
	var nodeList []string
	nodeIndex := make(map[string]int)
	for _, d := range devices {
		for _, pin := range d.PinNames() {
			node, ok := d.NodeOf(pin)
			if !ok || node == consts.GroundNode {
				continue
			}
			if _, seen := nodeIndex[node]; !seen {
				nodeIndex[node] = len(nodeList) + 1
				nodeList = append(nodeList, node)
			}
		}
	}
	return nodeList, nodeIndex
}

// retryWithTikhonov adds ε to every non-ground node diagonal and to any
// zero-diagonal voltage-source extension row, then solves once more (spec
// §4.5 step 4d, §9 "Tikhonov fallback catches what detection misses").
func retryWithTikhonov(a [][]float64, z []float64, n int) ([]float64, error) {
	size := len(a)
	reg := make([][]float64, size)
	for i := range a {
		reg[i] = append([]float64(nil), a[i]...)
	}
	for i := 0; i < size; i++ {
		if i < n {
			reg[i][i] += consts.TikhonovEps
		} else if reg[i][i] == 0 {
			reg[i][i] += consts.TikhonovEps
		}
	}
	return linalg.Solve(reg, z)
}
