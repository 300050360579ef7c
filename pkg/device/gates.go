package device

import (
	"github.com/ohmlab/dcsolver/internal/consts"
	"github.com/ohmlab/dcsolver/pkg/stamp"
)

// level is a tri-state logic reading: a gate input can be definitely HIGH,
// definitely LOW, or indeterminate (between the two thresholds).
type level int

const (
	levelIndeterminate level = iota
	levelLow
	levelHigh
)

// classify reads a pin's node voltage against the VIL/VIH thresholds
// derived from vcc. A non-positive vcc means no supply rail has been
// established yet (e.g. the all-zero seed vector before the first solve),
// so any reading against it is meaningless.
func classify(voltages map[string]float64, node string, bound bool, vcc float64) level {
	if !bound || vcc <= 0 {
		return levelIndeterminate
	}
	v, ok := voltages[node]
	if !ok {
		return levelIndeterminate
	}
	vil := consts.LogicVILFactor * vcc
	vih := consts.LogicVIHFactor * vcc
	switch {
	case v >= vih:
		return levelHigh
	case v <= vil:
		return levelLow
	default:
		return levelIndeterminate
	}
}

// gateVcc resolves the voltage to classify thresholds against: the
// component's own VCC pin when it is bound and has a defined voltage,
// falling back to the device's nominal Vcc parameter otherwise.
func gateVcc(voltages map[string]float64, node string, bound bool, nominal float64) float64 {
	if bound {
		if v, ok := voltages[node]; ok {
			return v
		}
	}
	return nominal
}

// HC04 is a single inverter gate: VCC, GND, IN, OUT. Like Comparator, it
// clamps its output to a rail with a zero-volt voltage source rather than
// modeling any analog gain; what it adds on top is the HIGH/LOW/
// indeterminate classification of its digital inputs: driven latches true
// on the first definite evaluation and never resets, once an output has
// been decided it holds until a new definite input overrides it.
type HC04 struct {
	BaseDevice
	Vcc float64 // nominal Vcc, volts

	driven  bool
	outHigh bool
}

// NewHC04 builds an inverter with nominal supply vcc.
func NewHC04(id string, vcc float64) *HC04 {
	return &HC04{BaseDevice: newBase(id, []string{"VCC", "GND", "IN", "OUT"}), Vcc: vcc}
}

func (g *HC04) Kind() string { return "HC04" }

func (g *HC04) Stamps() []stamp.Stamp {
	if !g.driven {
		return nil
	}
	return railClampStamp(g.BaseDevice, g.outHigh, g.Id+"_vs")
}

func (g *HC04) UpdateState(voltages map[string]float64) {
	vccNode, vccBound := g.NodeOf("VCC")
	inNode, inBound := g.NodeOf("IN")
	vcc := gateVcc(voltages, vccNode, vccBound, g.Vcc)

	switch classify(voltages, inNode, inBound, vcc) {
	case levelHigh:
		g.driven, g.outHigh = true, false
	case levelLow:
		g.driven, g.outHigh = true, true
	case levelIndeterminate:
		// retain previous out_high if already driven; otherwise stay
		// undriven until a definite input appears.
	}
}

// OutHigh reports the gate's current behavioral output.
func (g *HC04) OutHigh() bool { return g.outHigh }

// HC08 is a two-input AND gate: VCC, GND, A, B, OUT. LOW is dominant: a LOW
// on either input drives OUT low even if the other input is indeterminate.
type HC08 struct {
	BaseDevice
	Vcc float64

	driven  bool
	outHigh bool
}

// NewHC08 builds an AND gate with nominal supply vcc.
func NewHC08(id string, vcc float64) *HC08 {
	return &HC08{BaseDevice: newBase(id, []string{"VCC", "GND", "A", "B", "OUT"}), Vcc: vcc}
}

func (g *HC08) Kind() string { return "HC08" }

func (g *HC08) Stamps() []stamp.Stamp {
	if !g.driven {
		return nil
	}
	return railClampStamp(g.BaseDevice, g.outHigh, g.Id+"_vs")
}

func (g *HC08) UpdateState(voltages map[string]float64) {
	vccNode, vccBound := g.NodeOf("VCC")
	aNode, aBound := g.NodeOf("A")
	bNode, bBound := g.NodeOf("B")
	vcc := gateVcc(voltages, vccNode, vccBound, g.Vcc)

	la := classify(voltages, aNode, aBound, vcc)
	lb := classify(voltages, bNode, bBound, vcc)

	switch {
	case la == levelLow || lb == levelLow:
		g.driven, g.outHigh = true, false
	case la == levelHigh && lb == levelHigh:
		g.driven, g.outHigh = true, true
	default:
		// both indeterminate, or one indeterminate/one high with no LOW:
		// retain previous output if already driven.
	}
}

// OutHigh reports the gate's current behavioral output.
func (g *HC08) OutHigh() bool { return g.outHigh }

// railClampStamp emits the zero-volt VS that clamps OUT to VCC or GND,
// shared by HC04 and HC08.
func railClampStamp(b BaseDevice, outHigh bool, id string) []stamp.Stamp {
	out, okOut := b.NodeOf("OUT")
	rail := "GND"
	if outHigh {
		rail = "VCC"
	}
	railNode, okRail := b.NodeOf(rail)
	if !okOut || !okRail || sameNode(out, railNode, okOut, okRail) {
		return nil
	}
	return []stamp.Stamp{stamp.VoltageSource{NPlus: out, NMinus: railNode, V: 0, ID: id}}
}
