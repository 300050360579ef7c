package device

import (
	"github.com/ohmlab/dcsolver/pkg/stamp"
)

// Resistor is a two-terminal linear conductance between pins A and B.
type Resistor struct {
	BaseDevice
	R float64 // ohms, > 0
}

// NewResistor builds a resistor with resistance R ohms.
func NewResistor(id string, r float64) *Resistor {
	return &Resistor{BaseDevice: newBase(id, []string{"A", "B"}), R: r}
}

func (r *Resistor) Kind() string { return "RESISTOR" }

func (r *Resistor) Stamps() []stamp.Stamp {
	a, okA := r.NodeOf("A")
	b, okB := r.NodeOf("B")
	if !okA || !okB || sameNode(a, b, okA, okB) {
		return nil
	}
	return []stamp.Stamp{stamp.Conductance{N1: a, N2: b, G: 1.0 / r.R}}
}

// UpdateState is a no-op: a resistor's contribution never depends on the
// solved voltages.
func (r *Resistor) UpdateState(map[string]float64) {}
