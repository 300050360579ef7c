package netlist

import "testing"

func TestDecodeNormalizesLegacyVSourceSynonym(t *testing.T) {
	data := []byte(`{
		"version": "1.0",
		"components": [{"type": "V_SOURCE", "id": "V1", "properties": {"V": 5}}],
		"wires": []
	}`)

	f, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if f.Components[0].Type != "GENERATEUR" {
		t.Fatalf("expected V_SOURCE normalized to GENERATEUR, got %s", f.Components[0].Type)
	}
}

func TestDecodeNormalizesCase(t *testing.T) {
	data := []byte(`{"version":"1.0","components":[{"type":"resistor","id":"R1","properties":{"R":1000}}],"wires":[]}`)
	f, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if f.Components[0].Type != "RESISTOR" {
		t.Fatalf("expected normalized RESISTOR, got %s", f.Components[0].Type)
	}
}

func TestParsePinID(t *testing.T) {
	ref, err := ParsePinID("R1:A")
	if err != nil {
		t.Fatalf("ParsePinID: %v", err)
	}
	if ref.ComponentID != "R1" || ref.PinName != "A" {
		t.Fatalf("unexpected pin ref: %+v", ref)
	}
}

func TestParsePinIDRejectsMalformed(t *testing.T) {
	for _, bad := range []string{"R1", "R1:", ":A", ""} {
		if _, err := ParsePinID(bad); err == nil {
			t.Fatalf("expected error parsing %q", bad)
		}
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	orig := &File{
		Version: "1.0",
		Components: []ComponentSpec{
			{Type: "RESISTOR", ID: "R1", Properties: map[string]float64{"R": 1000}},
		},
		Wires: [][2]string{{"R1:A", "R1:B"}},
	}

	data, err := Encode(orig)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	decoded, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if decoded.Components[0].ID != "R1" || decoded.Components[0].Type != "RESISTOR" {
		t.Fatalf("round-trip mismatch: %+v", decoded.Components[0])
	}
	if decoded.Wires[0][0] != "R1:A" || decoded.Wires[0][1] != "R1:B" {
		t.Fatalf("wire round-trip mismatch: %+v", decoded.Wires[0])
	}
}
