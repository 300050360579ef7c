package device

import "testing"

func TestLEDHysteresis(t *testing.T) {
	l := NewLED("D1", 2.0, 20)
	l.Bind("AN", "N1")
	l.Bind("K", "N2")

	// starts off; below the turn-on threshold it stays off.
	l.UpdateState(map[string]float64{"N1": 2.05, "N2": 0})
	if l.On() {
		t.Fatal("expected LED to stay off below Vf+margin")
	}

	// above Vf+margin it turns on.
	l.UpdateState(map[string]float64{"N1": 2.11, "N2": 0})
	if !l.On() {
		t.Fatal("expected LED to turn on above Vf+margin")
	}

	// inside the hysteresis band it stays on.
	l.UpdateState(map[string]float64{"N1": 1.95, "N2": 0})
	if !l.On() {
		t.Fatal("expected LED to remain on within hysteresis band")
	}

	// below Vf-margin it turns off.
	l.UpdateState(map[string]float64{"N1": 1.85, "N2": 0})
	if l.On() {
		t.Fatal("expected LED to turn off below Vf-margin")
	}
}

func TestLEDForcedOffOnUnboundTerminal(t *testing.T) {
	l := NewLED("D1", 2.0, 20)
	l.Bind("AN", "N1")
	// K never bound.
	l.UpdateState(map[string]float64{"N1": 10})
	if l.On() {
		t.Fatal("expected LED forced off with an unbound terminal")
	}
}

func TestLEDNoStampsWhenOff(t *testing.T) {
	l := NewLED("D1", 2.0, 20)
	l.Bind("AN", "N1")
	l.Bind("K", "0")
	if stamps := l.Stamps(); stamps != nil {
		t.Fatalf("expected no stamps while off, got %v", stamps)
	}
}
