// Package packet defines the visualization packet envelope exchanged with
// the field-producer system, together with its JSON wire codec and the
// request/response types of the rendering service contract.
package packet

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/eqgft/fieldviz/internal/field"
)

// VizType tags a packet with the kind of rendering it is meant for. The
// set is closed; the wire encoding is the literal string value.
type VizType string

const (
	Viz2D        VizType = "2d"
	Viz3D        VizType = "3d"
	VizAnimation VizType = "animation"
	VizTopology  VizType = "topology"
	VizCustom    VizType = "custom"
)

// ParseVizType normalizes case and rejects values outside the closed set.
func ParseVizType(s string) (VizType, error) {
	switch VizType(normalize(s)) {
	case Viz2D:
		return Viz2D, nil
	case Viz3D:
		return Viz3D, nil
	case VizAnimation:
		return VizAnimation, nil
	case VizTopology:
		return VizTopology, nil
	case VizCustom:
		return VizCustom, nil
	}
	return "", fmt.Errorf("unknown visualization type %q", s)
}

func normalize(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}

func (v *VizType) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseVizType(s)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// Status reports where a visualization request is in its lifecycle.
type Status string

const (
	StatusQueued     Status = "queued"
	StatusProcessing Status = "processing"
	StatusCompleted  Status = "completed"
	StatusFailed     Status = "failed"
)

func (s *Status) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch Status(raw) {
	case StatusQueued, StatusProcessing, StatusCompleted, StatusFailed:
		*s = Status(raw)
		return nil
	}
	return fmt.Errorf("unknown status %q", raw)
}

// Metadata is an open mapping from string keys to arbitrary JSON values.
// Nesting is preserved verbatim; producers and consumers agree on the
// key conventions out of band.
type Metadata map[string]json.RawMessage

// Packet is one snapshot of computed field data plus metadata, the unit
// passed to a renderer. Packets are constructed by an external producer
// and not mutated after construction.
type Packet struct {
	ID        string             `json:"id"`
	Timestamp time.Time          `json:"timestamp"`
	Fields    field.Fields       `json:"fields"`
	Action    field.Action       `json:"action"`
	Metrics   map[string]float64 `json:"metrics"`
	Type      VizType            `json:"visualization_type"`
	Metadata  Metadata           `json:"metadata"`
}

// New assembles a packet, filling in a fresh UUID when id is empty and
// rejecting visualization types outside the closed set. Identifier
// uniqueness across producers stays the caller's responsibility.
func New(id string, ts time.Time, fields field.Fields, action field.Action, metrics map[string]float64, typ VizType) (*Packet, error) {
	if _, err := ParseVizType(string(typ)); err != nil {
		return nil, err
	}
	if id == "" {
		id = uuid.NewString()
	}
	if metrics == nil {
		metrics = map[string]float64{}
	}
	return &Packet{
		ID:        id,
		Timestamp: ts,
		Fields:    fields,
		Action:    action,
		Metrics:   metrics,
		Type:      typ,
		Metadata:  Metadata{},
	}, nil
}

// Request asks the rendering service for one visualization.
type Request struct {
	Type        VizType  `json:"visualization_type"`
	Parameters  Metadata `json:"parameters,omitempty"`
	CallbackURL string   `json:"callback_url,omitempty"`
}

// Response reports the outcome of a Request.
type Response struct {
	Status    Status   `json:"status"`
	ResultURL string   `json:"result_url,omitempty"`
	Error     string   `json:"error,omitempty"`
	Metadata  Metadata `json:"metadata,omitempty"`
}
