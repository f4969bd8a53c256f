package packet

import (
	"encoding/json"
	"fmt"
	"os"
)

// DecodeError reports packet text that cannot be decoded: malformed JSON,
// a missing required field, or a tag outside its closed set.
type DecodeError struct {
	Field  string
	Reason string
}

func (e *DecodeError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("packet: decode %s: %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("packet: decode: %s", e.Reason)
}

// requiredKeys lists the top-level fields every packet must carry, in
// wire order.
var requiredKeys = []string{
	"id", "timestamp", "fields", "action", "metrics", "visualization_type", "metadata",
}

// requiredFieldKeys lists the members of the "fields" object.
var requiredFieldKeys = []string{
	"quaternion_field", "dirac_spinor", "gauge_field", "metric",
}

// Encode produces the stable textual encoding of the packet: a single
// JSON object with fields in the order id, timestamp, fields, action,
// metrics, visualization_type, metadata. Complex numbers appear as
// {"real", "imag"} pairs and tensors as nested arrays.
func (p *Packet) Encode() ([]byte, error) {
	return json.Marshal(p)
}

// Decode is the inverse of Encode. It fails with a *DecodeError when a
// required field is absent or a tag is outside its closed enum.
func Decode(data []byte) (*Packet, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, &DecodeError{Reason: err.Error()}
	}
	for _, key := range requiredKeys {
		if _, ok := raw[key]; !ok {
			return nil, &DecodeError{Field: key, Reason: "required field missing"}
		}
	}
	var fieldsRaw map[string]json.RawMessage
	if err := json.Unmarshal(raw["fields"], &fieldsRaw); err != nil {
		return nil, &DecodeError{Field: "fields", Reason: err.Error()}
	}
	for _, key := range requiredFieldKeys {
		if _, ok := fieldsRaw[key]; !ok {
			return nil, &DecodeError{Field: "fields." + key, Reason: "required field missing"}
		}
	}

	var p Packet
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, &DecodeError{Reason: err.Error()}
	}
	return &p, nil
}

// Save writes the packet to path as indented UTF-8 JSON. File errors
// propagate to the caller unchanged apart from path context.
func (p *Packet) Save(path string) error {
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("save packet %s: %w", path, err)
	}
	return nil
}

// Load reads a packet file written by Save.
func Load(path string) (*Packet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load packet %s: %w", path, err)
	}
	return Decode(data)
}
