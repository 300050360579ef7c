// Package netlist fuses component pins into electrical nodes. Components
// are wired pin-to-pin rather than sharing node names directly, so
// identity has to be discovered first: a union-find over pin pairs fuses
// every wired pair (and every GND-named pin) into its electrical
// equivalence class before any node numbering can happen.
package netlist

import (
	"fmt"
	"sort"
	"strings"
)

// Component is the minimal surface the netlist builder needs from a device:
// enough to enumerate its pins and bind each one to a resolved node id.
// pkg/device.Device declares the same four methods, so every device
// satisfies it.
type Component interface {
	ID() string
	PinNames() []string
	Bind(pinName, nodeID string)
	NodeOf(pinName string) (string, bool)
}

// PinRef identifies a single pin by component id and pin name.
type PinRef struct {
	ComponentID string
	PinName     string
}

func (p PinRef) key() string { return p.ComponentID + ":" + p.PinName }

func (p PinRef) String() string { return p.key() }

// Wire is an undirected connection between two pins.
type Wire struct {
	A, B PinRef
}

// MalformedNetlistError reports a wire referencing a pin no component
// declares.
type MalformedNetlistError struct {
	Pin PinRef
}

func (e *MalformedNetlistError) Error() string {
	return fmt.Sprintf("netlist: wire references undeclared pin %s", e.Pin)
}

// Build unions every wire pair, auto-unions all pins named GND
// (case-insensitive), assigns node ids ("0" for the ground class, "N1",
// "N2", … for the rest in first-encounter order), and writes the resolved
// node id back onto each component's pins via Bind. It returns the count of
// non-ground nodes.
//
// Build has no failure mode of its own for disconnected pins — a pin with
// no wire gets its own singleton node — but a wire naming an undeclared pin
// is a MalformedNetlistError.
func Build(components []Component, wires []Wire) (int, error) {
	uf := newUnionFind()

	declared := make(map[string]PinRef)
	for _, c := range components {
		for _, pin := range c.PinNames() {
			ref := PinRef{ComponentID: c.ID(), PinName: pin}
			declared[ref.key()] = ref
			uf.add(ref.key())
		}
	}

	for _, w := range wires {
		if _, ok := declared[w.A.key()]; !ok {
			return 0, &MalformedNetlistError{Pin: w.A}
		}
		if _, ok := declared[w.B.key()]; !ok {
			return 0, &MalformedNetlistError{Pin: w.B}
		}
		uf.union(w.A.key(), w.B.key())
	}

	// Fuse every GND-named pin into a single ground class.
	var groundKeys []string
	for _, ref := range declared {
		if strings.EqualFold(ref.PinName, "GND") {
			groundKeys = append(groundKeys, ref.key())
		}
	}
	sort.Strings(groundKeys)
	for i := 1; i < len(groundKeys); i++ {
		uf.union(groundKeys[0], groundKeys[i])
	}
	var groundRoot string
	hasGround := len(groundKeys) > 0
	if hasGround {
		groundRoot = uf.find(groundKeys[0])
	}

	nodeIDByRoot := make(map[string]string)
	nextNode := 1
	if hasGround {
		nodeIDByRoot[groundRoot] = "0"
	}

	for _, c := range components {
		for _, pin := range c.PinNames() {
			ref := PinRef{ComponentID: c.ID(), PinName: pin}
			root := uf.find(ref.key())
			id, ok := nodeIDByRoot[root]
			if !ok {
				id = fmt.Sprintf("N%d", nextNode)
				nextNode++
				nodeIDByRoot[root] = id
			}
			c.Bind(pin, id)
		}
	}

	return nextNode - 1, nil
}
