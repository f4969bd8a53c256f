// Package metrics loads columnar metric-event logs produced by the
// simulation side and groups them into per-kind time series for the
// chart and dashboard layers.
package metrics

import (
	"encoding/json"
	"fmt"
)

// MissingFieldError reports a payload that lacks a key the consumer
// requires, such as the numeric "value" field during plotting.
type MissingFieldError struct {
	Key string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("metrics: payload missing %q field", e.Key)
}

// Payload is the structured part of a metric event. Beyond the required
// numeric "value" field its content is producer-defined.
type Payload map[string]json.RawMessage

// Value extracts the required numeric field. Missing or non-numeric
// values are reported, never papered over with a default.
func (p Payload) Value() (float64, error) {
	raw, ok := p["value"]
	if !ok {
		return 0, &MissingFieldError{Key: "value"}
	}
	var v float64
	if err := json.Unmarshal(raw, &v); err != nil {
		return 0, fmt.Errorf("metrics: payload value is not numeric: %w", err)
	}
	return v, nil
}

// Event is one row of the columnar log: an epoch-seconds timestamp, the
// kind grouping key, and the decoded payload. Rows are read-only after
// load.
type Event struct {
	ID        uint64
	Kind      string
	Timestamp float64
	Payload   Payload
}
