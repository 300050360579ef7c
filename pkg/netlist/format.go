package netlist

import (
	"encoding/json"
	"fmt"
	"strings"
)

// File is the persisted circuit format the editor/UI collaborator owns:
//
//	{ version: "1.0",
//	  components: [ { type, id, properties: {...}, position?: {x,y} }, ... ],
//	  wires:      [ [pin_id_1, pin_id_2], ... ] }
//
// pin_id is "<component_id>:<pin_name>". This is a structural decode only —
// it does not know the closed set of component kinds (that's
// pkg/device.NewFromSpec's job) beyond normalizing the one documented
// synonym (V_SOURCE == GENERATEUR).
type File struct {
	Version    string          `json:"version"`
	Components []ComponentSpec `json:"components"`
	Wires      [][2]string     `json:"wires"`
}

// ComponentSpec is one deserialized component entry, prior to device
// construction.
type ComponentSpec struct {
	Type       string             `json:"type"`
	ID         string             `json:"id"`
	Properties map[string]float64 `json:"properties"`
	Position   *Position          `json:"position,omitempty"`
}

type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// legacyKindSynonyms maps older on-disk tags to their current name.
var legacyKindSynonyms = map[string]string{
	"V_SOURCE": "GENERATEUR",
}

// NormalizeKind upper-cases a kind tag and resolves legacy synonyms.
func NormalizeKind(kind string) string {
	k := strings.ToUpper(strings.TrimSpace(kind))
	if canon, ok := legacyKindSynonyms[k]; ok {
		return canon
	}
	return k
}

// Decode parses a persisted circuit file and normalizes component kind tags.
func Decode(data []byte) (*File, error) {
	var f File
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("netlist: decode: %w", err)
	}
	for i := range f.Components {
		f.Components[i].Type = NormalizeKind(f.Components[i].Type)
	}
	return &f, nil
}

// Encode serializes a circuit file back to its on-disk JSON form.
func Encode(f *File) ([]byte, error) {
	data, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("netlist: encode: %w", err)
	}
	return data, nil
}

// ParsePinID splits "<component_id>:<pin_name>" into its two halves.
func ParsePinID(pinID string) (PinRef, error) {
	idx := strings.LastIndex(pinID, ":")
	if idx <= 0 || idx == len(pinID)-1 {
		return PinRef{}, fmt.Errorf("netlist: malformed pin id %q", pinID)
	}
	return PinRef{ComponentID: pinID[:idx], PinName: pinID[idx+1:]}, nil
}

// WiresFromFile converts a File's raw pin-id pairs into Wire values.
func WiresFromFile(f *File) ([]Wire, error) {
	wires := make([]Wire, 0, len(f.Wires))
	for _, pair := range f.Wires {
		a, err := ParsePinID(pair[0])
		if err != nil {
			return nil, err
		}
		b, err := ParsePinID(pair[1])
		if err != nil {
			return nil, err
		}
		wires = append(wires, Wire{A: a, B: b})
	}
	return wires, nil
}
