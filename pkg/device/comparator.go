package device

import (
	"github.com/ohmlab/dcsolver/internal/consts"
	"github.com/ohmlab/dcsolver/pkg/stamp"
)

// Comparator is an LM339-style open-collector comparator: VCC, GND, IN+,
// IN-, OUT. Active pulls OUT to the component's own GND pin; inactive
// leaves OUT high-impedance, relying on an external pull-up for the high
// level. The active pull reuses the same zero-volt-clamp idiom as
// VoltageSource's ideal short: an exact equality constraint through the
// MNA extension rather than a very-low resistance, so every "pull to a
// rail" device in this package shares one well-conditioned trick.
type Comparator struct {
	BaseDevice
	active bool
}

// NewComparator builds an LM339 comparator.
func NewComparator(id string) *Comparator {
	return &Comparator{BaseDevice: newBase(id, []string{"VCC", "GND", "IN+", "IN-", "OUT"})}
}

func (c *Comparator) Kind() string { return "LM339" }

func (c *Comparator) Stamps() []stamp.Stamp {
	if !c.active {
		return nil
	}
	out, okOut := c.NodeOf("OUT")
	gnd, okGnd := c.NodeOf("GND")
	if !okOut || !okGnd || sameNode(out, gnd, okOut, okGnd) {
		return nil
	}
	return []stamp.Stamp{stamp.VoltageSource{NPlus: out, NMinus: gnd, V: 0, ID: c.Id + "_vs"}}
}

// UpdateState activates the comparator when IN+ exceeds IN- by more than
// the comparator margin. Per spec this inverts a conventional LM339's
// polarity; see DESIGN.md for why that inversion is kept as-is.
func (c *Comparator) UpdateState(voltages map[string]float64) {
	inPlus, okP := c.NodeOf("IN+")
	inMinus, okM := c.NodeOf("IN-")
	if !okP || !okM {
		c.active = false
		return
	}
	vp, okVp := voltages[inPlus]
	vm, okVm := voltages[inMinus]
	if !okVp || !okVm {
		c.active = false
		return
	}
	c.active = vp > vm+consts.ComparatorMargin
}

// Active reports the comparator's current behavioral state.
func (c *Comparator) Active() bool { return c.active }
