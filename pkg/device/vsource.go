package device

import (
	"github.com/ohmlab/dcsolver/pkg/stamp"
)

// VoltageSource is an ideal DC source between PLUS and MINUS, optionally
// current-limited. There is no SIN/PULSE/PWL waveform machinery here — a
// DC steady-state analysis only ever samples the source once.
type VoltageSource struct {
	BaseDevice
	V    float64
	Imax float64 // 0 means ideal (no current limit)
}

// NewVoltageSource builds an ideal voltage source of value v volts.
func NewVoltageSource(id string, v float64) *VoltageSource {
	return &VoltageSource{BaseDevice: newBase(id, []string{"PLUS", "MINUS"}), V: v}
}

// NewCurrentLimitedVoltageSource builds a voltage source with a maximum
// current imax (> 0), modeled per spec as an internal conductance
// imax/v in parallel with the ideal source.
func NewCurrentLimitedVoltageSource(id string, v, imax float64) *VoltageSource {
	return &VoltageSource{BaseDevice: newBase(id, []string{"PLUS", "MINUS"}), V: v, Imax: imax}
}

func (v *VoltageSource) Kind() string { return "GENERATEUR" }

func (v *VoltageSource) Stamps() []stamp.Stamp {
	plus, okP := v.NodeOf("PLUS")
	minus, okM := v.NodeOf("MINUS")
	if !okP || !okM {
		return nil
	}

	var stamps []stamp.Stamp
	if !sameNode(plus, minus, okP, okM) {
		stamps = append(stamps, stamp.VoltageSource{NPlus: plus, NMinus: minus, V: v.V, ID: v.Id})
		if v.Imax > 0 && v.V != 0 {
			stamps = append(stamps, stamp.Conductance{N1: plus, N2: minus, G: v.Imax / v.V})
		}
	}
	return stamps
}

// UpdateState is a no-op: an ideal source's value is a user input, not
// something the outer loop solves for.
func (v *VoltageSource) UpdateState(map[string]float64) {}

// SetValue changes the source's DC value in place (used by callers sweeping
// a source, e.g. between successive solves).
func (v *VoltageSource) SetValue(value float64) { v.V = value }

// Switch is an ideal two-terminal make/break contact. Per spec it is
// stamped as a zero-volt VoltageSource when closed rather than as a
// near-zero resistance, to keep the matrix well-conditioned.
type Switch struct {
	BaseDevice
	Closed bool
}

// NewSwitch builds a switch, initially open or closed per the closed flag.
func NewSwitch(id string, closed bool) *Switch {
	return &Switch{BaseDevice: newBase(id, []string{"A", "B"}), Closed: closed}
}

func (s *Switch) Kind() string { return "SWITCH" }

func (s *Switch) Stamps() []stamp.Stamp {
	if !s.Closed {
		return nil
	}
	a, okA := s.NodeOf("A")
	b, okB := s.NodeOf("B")
	if !okA || !okB || sameNode(a, b, okA, okB) {
		return nil
	}
	return []stamp.Stamp{stamp.VoltageSource{NPlus: a, NMinus: b, V: 0, ID: s.Id}}
}

// UpdateState is a no-op: a switch's open/closed bit is a user input, never
// solved.
func (s *Switch) UpdateState(map[string]float64) {}
