package netlist

import "testing"

type fakeComponent struct {
	id    string
	pins  []string
	nodes map[string]string
}

func newFake(id string, pins ...string) *fakeComponent {
	return &fakeComponent{id: id, pins: pins, nodes: make(map[string]string)}
}

func (f *fakeComponent) ID() string         { return f.id }
func (f *fakeComponent) PinNames() []string { return f.pins }
func (f *fakeComponent) Bind(pin, node string) {
	f.nodes[pin] = node
}
func (f *fakeComponent) NodeOf(pin string) (string, bool) {
	n, ok := f.nodes[pin]
	return n, ok
}

func componentsOf(fakes ...*fakeComponent) []Component {
	cs := make([]Component, len(fakes))
	for i, f := range fakes {
		cs[i] = f
	}
	return cs
}

func TestBuildUnionsWiredPins(t *testing.T) {
	r1 := newFake("R1", "A", "B")
	r2 := newFake("R2", "A", "B")
	wires := []Wire{{A: PinRef{"R1", "B"}, B: PinRef{"R2", "A"}}}

	n, err := Build(componentsOf(r1, r2), wires)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if n != 3 {
		t.Fatalf("expected 3 non-ground nodes, got %d", n)
	}
	b1, _ := r1.NodeOf("B")
	a2, _ := r2.NodeOf("A")
	if b1 != a2 {
		t.Fatalf("wired pins got different nodes: %s vs %s", b1, a2)
	}
}

func TestBuildFusesAllGroundPins(t *testing.T) {
	v1 := newFake("V1", "PLUS", "GND")
	v2 := newFake("V2", "PLUS", "GND")

	_, err := Build(componentsOf(v1, v2), nil)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	g1, _ := v1.NodeOf("GND")
	g2, _ := v2.NodeOf("GND")
	if g1 != "0" || g2 != "0" {
		t.Fatalf("GND pins must resolve to node 0, got %s and %s", g1, g2)
	}
}

func TestBuildIsCaseInsensitiveForGround(t *testing.T) {
	c := newFake("C1", "gnd")
	if _, err := Build(componentsOf(c), nil); err != nil {
		t.Fatalf("Build: %v", err)
	}
	node, _ := c.NodeOf("gnd")
	if node != "0" {
		t.Fatalf("expected lowercase gnd pin fused to ground, got %s", node)
	}
}

func TestBuildMalformedNetlistOnUndeclaredPin(t *testing.T) {
	c := newFake("C1", "A")
	wires := []Wire{{A: PinRef{"C1", "A"}, B: PinRef{"C1", "Z"}}}

	_, err := Build(componentsOf(c), wires)
	if err == nil {
		t.Fatal("expected MalformedNetlistError, got nil")
	}
	if _, ok := err.(*MalformedNetlistError); !ok {
		t.Fatalf("expected *MalformedNetlistError, got %T", err)
	}
}

func TestBuildIsIdempotent(t *testing.T) {
	r := newFake("R1", "A", "B")
	wires := []Wire{}

	n1, err := Build(componentsOf(r), wires)
	if err != nil {
		t.Fatalf("first Build: %v", err)
	}
	a1, _ := r.NodeOf("A")
	b1, _ := r.NodeOf("B")

	n2, err := Build(componentsOf(r), wires)
	if err != nil {
		t.Fatalf("second Build: %v", err)
	}
	a2, _ := r.NodeOf("A")
	b2, _ := r.NodeOf("B")

	if n1 != n2 || a1 != a2 || b1 != b2 {
		t.Fatalf("rebuild was not idempotent: (%d,%s,%s) vs (%d,%s,%s)", n1, a1, b1, n2, a2, b2)
	}
}

func TestBuildSingletonNodeForDisconnectedPin(t *testing.T) {
	c := newFake("C1", "A")
	n, err := Build(componentsOf(c), nil)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if n != 1 {
		t.Fatalf("expected 1 node for a single floating pin, got %d", n)
	}
}
