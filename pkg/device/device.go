// Package device implements the closed family of component kinds: Resistor,
// VoltageSource, Switch, LED, LM339, HC04, HC08. Each exposes the two pure
// operations the netlist is built around: Stamps() for its current
// behavioral state, and UpdateState() to refine that state from a freshly
// solved voltage vector.
//
// Every concrete type embeds a common BaseDevice for pin binding and
// reports its own kind tag. There is no separate conductance/current split
// on top of Stamps() because every device here is either linear or snaps
// between fixed linear regions, so one Stamps() call per outer iteration
// suffices — none of these devices needs a Newton-style linearization step.
package device

import (
	"fmt"

	"github.com/ohmlab/dcsolver/pkg/stamp"
)

// Device is the contract every component kind satisfies.
type Device interface {
	ID() string
	Kind() string
	PinNames() []string
	Bind(pinName, nodeID string)
	NodeOf(pinName string) (string, bool)

	// Stamps computes this device's MNA contributions for its current
	// behavioral state.
	Stamps() []stamp.Stamp

	// UpdateState refines behavioral state from a freshly solved
	// node-voltage vector (ground included, keyed "0").
	UpdateState(voltages map[string]float64)
}

// BaseDevice implements the pin-binding half of netlist.Component; concrete
// kinds embed it.
type BaseDevice struct {
	Id    string
	Pins  []string
	nodes map[string]string
}

func newBase(id string, pins []string) BaseDevice {
	return BaseDevice{Id: id, Pins: pins, nodes: make(map[string]string, len(pins))}
}

func (b *BaseDevice) ID() string         { return b.Id }
func (b *BaseDevice) PinNames() []string { return b.Pins }

func (b *BaseDevice) Bind(pin, node string) {
	if b.nodes == nil {
		b.nodes = make(map[string]string, len(b.Pins))
	}
	b.nodes[pin] = node
}

func (b *BaseDevice) NodeOf(pin string) (string, bool) {
	n, ok := b.nodes[pin]
	return n, ok
}

// UnknownKindError reports an unrecognized component kind tag encountered
// while building devices from a persisted netlist.
type UnknownKindError struct {
	Kind string
}

func (e *UnknownKindError) Error() string {
	return fmt.Sprintf("device: unknown component kind %q", e.Kind)
}

// sameNode reports whether a two-terminal stamp's endpoints resolved to the
// same bound node, in which case the stamp is a no-op and must be dropped
// rather than fed to the assembler.
func sameNode(a, b string, okA, okB bool) bool {
	return okA && okB && a == b
}
