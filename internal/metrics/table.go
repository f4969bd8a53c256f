package metrics

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strconv"
)

// Table is a whole-file, in-memory view of a metric log. Kind order is
// the first-seen order of the file, which makes grouping deterministic.
type Table struct {
	events []Event
	kinds  []string
}

// Load reads the entire columnar file into memory. The header must name
// timestamp, kind, and payload columns; id is optional and any other
// column is ignored. Every textual payload is JSON-decoded eagerly; the
// first bad row aborts the load with no partial table.
func Load(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("load metrics %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("load metrics %s: %w", path, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("load metrics %s: empty file", path)
	}

	col := map[string]int{}
	for i, name := range rows[0] {
		col[name] = i
	}
	for _, required := range []string{"timestamp", "kind", "payload"} {
		if _, ok := col[required]; !ok {
			return nil, fmt.Errorf("load metrics %s: missing %q column", path, required)
		}
	}
	idCol, hasID := col["id"]

	t := &Table{}
	seen := map[string]bool{}
	for n, row := range rows[1:] {
		line := n + 2 // 1-based, after header

		ts, err := strconv.ParseFloat(row[col["timestamp"]], 64)
		if err != nil {
			return nil, fmt.Errorf("load metrics %s: row %d: bad timestamp: %w", path, line, err)
		}

		var payload Payload
		if err := json.Unmarshal([]byte(row[col["payload"]]), &payload); err != nil {
			return nil, fmt.Errorf("load metrics %s: row %d: bad payload: %w", path, line, err)
		}

		ev := Event{Kind: row[col["kind"]], Timestamp: ts, Payload: payload}
		if hasID {
			if id, err := strconv.ParseUint(row[idCol], 10, 64); err == nil {
				ev.ID = id
			}
		}
		t.events = append(t.events, ev)
		if !seen[ev.Kind] {
			seen[ev.Kind] = true
			t.kinds = append(t.kinds, ev.Kind)
		}
	}
	return t, nil
}

// Len reports the number of rows.
func (t *Table) Len() int { return len(t.events) }

// Kinds returns the distinct kind values in first-seen order. The caller
// owns the returned slice.
func (t *Table) Kinds() []string {
	return append([]string(nil), t.kinds...)
}

// Point is one sample of a series.
type Point struct {
	T float64
	V float64
}

// Series extracts the points of one kind sorted by ascending timestamp.
// A payload without a numeric value fails the extraction; the caller
// gets no partial series.
func (t *Table) Series(kind string) ([]Point, error) {
	var points []Point
	for _, ev := range t.events {
		if ev.Kind != kind {
			continue
		}
		v, err := ev.Payload.Value()
		if err != nil {
			return nil, err
		}
		points = append(points, Point{T: ev.Timestamp, V: v})
	}
	sort.SliceStable(points, func(i, j int) bool { return points[i].T < points[j].T })
	return points, nil
}
