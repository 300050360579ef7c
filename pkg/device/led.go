package device

import (
	"github.com/ohmlab/dcsolver/pkg/stamp"

	"github.com/ohmlab/dcsolver/internal/consts"
)

// LED is a piecewise-linear diode model between AN (anode) and K (cathode):
// off contributes nothing, on clamps AN-K to the forward voltage Vf with a
// conductance 1/Rs stamped in parallel across the same two pins, so Rs
// carries extra current but adds no series drop. There is no
// Shockley-equation linearization around
// an operating point here — that level of semiconductor physics is
// overkill for a steady-state LED indicator that only ever needs to know
// whether it is lit. What matters is the on/off state held across
// iterations and refined from the solved voltage.
type LED struct {
	BaseDevice
	Vf float64 // forward voltage, > 0
	Rs float64 // series resistance, > 0

	on bool
}

// NewLED builds an LED with forward voltage vf and series resistance rs.
func NewLED(id string, vf, rs float64) *LED {
	return &LED{BaseDevice: newBase(id, []string{"AN", "K"}), Vf: vf, Rs: rs}
}

func (l *LED) Kind() string { return "LED" }

func (l *LED) Stamps() []stamp.Stamp {
	if !l.on {
		return nil
	}
	an, okA := l.NodeOf("AN")
	k, okK := l.NodeOf("K")
	if !okA || !okK || sameNode(an, k, okA, okK) {
		return nil
	}
	return []stamp.Stamp{
		stamp.VoltageSource{NPlus: an, NMinus: k, V: l.Vf, ID: l.Id + "_Vf"},
		stamp.Conductance{N1: an, N2: k, G: 1.0 / l.Rs},
	}
}

// UpdateState applies the hysteretic on/off rule: while on, stay on until
// Vd drops below Vf - margin; while off, turn on only once Vd rises above
// Vf + margin. An unbound or undefined terminal forces the LED off.
func (l *LED) UpdateState(voltages map[string]float64) {
	an, okA := l.NodeOf("AN")
	k, okK := l.NodeOf("K")
	if !okA || !okK {
		l.on = false
		return
	}
	van, okVan := voltages[an]
	vk, okVk := voltages[k]
	if !okVan || !okVk {
		l.on = false
		return
	}

	vd := van - vk
	m := consts.LEDHysteresis
	if l.on {
		l.on = vd >= l.Vf-m
	} else {
		l.on = vd >= l.Vf+m
	}
}

// On reports the LED's current behavioral state.
func (l *LED) On() bool { return l.on }
