package matrix

import (
	"github.com/ohmlab/dcsolver/internal/consts"
	"github.com/ohmlab/dcsolver/pkg/stamp"
)

// Assemble translates a stamp list into a dense A, z system of dimension
// N+M, where nodeIndex maps each non-ground node id to a 1-based row/col in
// [1, n] and each distinct voltage-source stamp id encountered is assigned
// a contiguous extension index in [n+1, n+m], in first-encounter order.
// Ground ("0") and any node id absent from nodeIndex resolve to the skip
// index 0.
//
// After stamping, any non-ground node whose row and column are entirely
// zero gets a tiny shunt to ground — a pre-emptive defense against
// singularity that runs before the caller ever touches LinAlg, cheaper and
// more accurate than discovering the same singularity from a failed solve.
// The node ids that needed shunting are returned alongside the system,
// purely for Unsolvable diagnostics upstream — the shunt itself has
// already been applied by the time the caller sees them.
func Assemble(stamps []stamp.Stamp, nodeIndex map[string]int, n int) (a [][]float64, z []float64, vsIndex map[string]int, floating []string, err error) {
	vsIndex = make(map[string]int)
	var vsOrder []string
	for _, s := range stamps {
		if vs, ok := s.(stamp.VoltageSource); ok {
			if _, seen := vsIndex[vs.ID]; !seen {
				vsIndex[vs.ID] = len(vsOrder) + 1 // 1-based rank within the VS block
				vsOrder = append(vsOrder, vs.ID)
			}
		}
	}
	m := len(vsOrder)
	size := n + m

	asm, aerr := NewAssembler(size)
	if aerr != nil {
		return nil, nil, nil, nil, aerr
	}
	defer asm.Destroy()

	nodeIDByIndex := make(map[int]string, len(nodeIndex))
	for id, idx := range nodeIndex {
		nodeIDByIndex[idx] = id
	}

	resolve := func(node string) int {
		if node == consts.GroundNode {
			return 0
		}
		idx, ok := nodeIndex[node]
		if !ok {
			return 0
		}
		return idx
	}

	for _, s := range stamps {
		switch v := s.(type) {
		case stamp.Conductance:
			i1, i2 := resolve(v.N1), resolve(v.N2)
			if i1 == i2 {
				continue // both ground, or stamp on an identical node
			}
			asm.AddElement(i1, i1, v.G)
			asm.AddElement(i2, i2, v.G)
			asm.AddElement(i1, i2, -v.G)
			asm.AddElement(i2, i1, -v.G)

		case stamp.CurrentInjection:
			i := resolve(v.N)
			asm.AddRHS(i, v.I)

		case stamp.VoltageSource:
			iPlus, iMinus := resolve(v.NPlus), resolve(v.NMinus)
			k := n + vsIndex[v.ID]
			asm.AddElement(iPlus, k, 1)
			asm.AddElement(k, iPlus, 1)
			asm.AddElement(iMinus, k, -1)
			asm.AddElement(k, iMinus, -1)
			asm.AddRHS(k, v.V)
		}
	}

	for i := 1; i <= n; i++ {
		if asm.RowColEmpty(i) {
			asm.AddElement(i, i, consts.FloatingNodeShunt)
			if id, ok := nodeIDByIndex[i]; ok {
				floating = append(floating, id)
			}
		}
	}

	a, z = asm.Dense()
	return a, z, vsIndex, floating, nil
}
