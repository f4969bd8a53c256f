package packet

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eqgft/fieldviz/internal/field"
)

// testPacket builds a small deterministic packet used across the codec
// and render tests.
func testPacket(t *testing.T) *Packet {
	t.Helper()

	spinor, err := field.SpinorFromVector(
		[]complex128{complex(1, 0), 0, 0, 0}, []float64{1, 0, 0, 0})
	require.NoError(t, err)

	p, err := New("pkt-0001",
		time.Date(2024, 11, 24, 12, 0, 0, 0, time.UTC),
		field.Fields{
			Quaternion: field.QuaternionField{Q0: 1},
			Spinor:     spinor,
			Gauge:      field.GaugeField{},
			Metric:     field.MinkowskiMetric(),
		},
		field.Action{
			Gravity:           0.25,
			QuaternionKinetic: 0.5,
			FermionMass:       1,
		},
		map[string]float64{"energy": 0.5},
		Viz3D,
	)
	require.NoError(t, err)
	p.Metadata = Metadata{"source": []byte(`"test"`)}
	return p
}

func TestNew_GeneratesID(t *testing.T) {
	p, err := New("", time.Now().UTC(), field.Fields{}, field.Action{}, nil, Viz2D)
	require.NoError(t, err)
	assert.NotEmpty(t, p.ID)
	assert.NotNil(t, p.Metrics)
}

func TestNew_RejectsUnknownType(t *testing.T) {
	_, err := New("x", time.Now().UTC(), field.Fields{}, field.Action{}, nil, VizType("4d"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "4d")
}

func TestParseVizType(t *testing.T) {
	tests := []struct {
		in      string
		want    VizType
		wantErr bool
	}{
		{"2d", Viz2D, false},
		{"3D", Viz3D, false},
		{"TOPOLOGY", VizTopology, false},
		{"Animation", VizAnimation, false},
		{"custom", VizCustom, false},
		{"4d", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		got, err := ParseVizType(tt.in)
		if tt.wantErr {
			assert.Error(t, err, "input %q", tt.in)
			continue
		}
		require.NoError(t, err, "input %q", tt.in)
		assert.Equal(t, tt.want, got)
	}
}

func TestStatusUnmarshal_Closed(t *testing.T) {
	var s Status
	require.NoError(t, s.UnmarshalJSON([]byte(`"completed"`)))
	assert.Equal(t, StatusCompleted, s)

	require.Error(t, s.UnmarshalJSON([]byte(`"done"`)))
}
