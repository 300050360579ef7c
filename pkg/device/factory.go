package device

import (
	"github.com/ohmlab/dcsolver/pkg/netlist"
)

// NewFromSpec builds a concrete Device from a decoded persisted-format
// component entry. spec.Type must already be normalized (netlist.Decode
// does this, resolving the V_SOURCE/GENERATEUR synonym) — an unrecognized
// tag is an UnknownKindError, surfaced here so the solver never sees the
// offending component.
func NewFromSpec(spec netlist.ComponentSpec) (Device, error) {
	props := spec.Properties

	switch spec.Type {
	case "RESISTOR":
		return NewResistor(spec.ID, props["R"]), nil

	case "GENERATEUR":
		if imax, ok := props["Imax"]; ok && imax > 0 {
			return NewCurrentLimitedVoltageSource(spec.ID, props["V"], imax), nil
		}
		return NewVoltageSource(spec.ID, props["V"]), nil

	case "SWITCH":
		return NewSwitch(spec.ID, props["closed"] != 0), nil

	case "LED":
		return NewLED(spec.ID, props["Vf"], props["Rs"]), nil

	case "LM339":
		return NewComparator(spec.ID), nil

	case "HC04":
		return NewHC04(spec.ID, props["Vcc"]), nil

	case "HC08":
		return NewHC08(spec.ID, props["Vcc"]), nil

	default:
		return nil, &UnknownKindError{Kind: spec.Type}
	}
}
