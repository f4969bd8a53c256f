package metrics

import (
	"encoding/csv"
	"fmt"
	"math/rand"
	"os"
	"strconv"
)

var sampleKinds = []string{"cpu", "memory", "network", "disk"}

// Generate writes a sample metric log in the producer's columnar layout,
// one minute between events, cycling through the standard kinds. Useful
// for trying the plotter without a running simulation.
func Generate(path string, rows int, seed int64) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("generate metrics %s: %w", path, err)
	}
	defer f.Close()

	rng := rand.New(rand.NewSource(seed))
	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write([]string{"id", "kind", "timestamp", "payload"}); err != nil {
		return err
	}

	const epoch = 1732400000
	for i := 0; i < rows; i++ {
		kind := sampleKinds[i%len(sampleKinds)]
		unit := "%"
		if kind == "network" {
			unit = "MB/s"
		}
		payload := fmt.Sprintf(`{"value": %.4f, "unit": %q, "host": "host-%d"}`,
			rng.Float64()*100, unit, rng.Intn(5)+1)
		row := []string{
			strconv.Itoa(i),
			kind,
			strconv.FormatInt(epoch+int64(i)*60, 10),
			payload,
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return w.Error()
}
