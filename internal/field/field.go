// Package field defines the typed records for a single snapshot of the
// simulated field content: the unit quaternion rotor field, the derived
// Dirac spinor, the U(1) gauge field, and the Lorentzian metric.
//
// All types are plain immutable values. Constructors and conversions
// validate vector lengths eagerly and return a *ShapeError instead of
// indexing out of range.
package field

// QuaternionField is one sample of the rotor field
// Q(x) = q0(x) + i q1(x) + j q2(x) + k q3(x) at spacetime point
// Coordinates = (x, y, z, t).
type QuaternionField struct {
	Q0          float64    `json:"q0"`
	Q1          float64    `json:"q1"`
	Q2          float64    `json:"q2"`
	Q3          float64    `json:"q3"`
	Coordinates [4]float64 `json:"coordinates"`
}

// Vector returns the components in the order q0, q1, q2, q3.
func (q QuaternionField) Vector() [4]float64 {
	return [4]float64{q.Q0, q.Q1, q.Q2, q.Q3}
}

// QuaternionFromVector builds a QuaternionField from a flat component
// vector. coords may be nil, which selects the zero 4-vector; any other
// length than 4 is a shape error.
func QuaternionFromVector(v []float64, coords []float64) (QuaternionField, error) {
	if len(v) < 4 {
		return QuaternionField{}, &ShapeError{What: "quaternion component vector", Want: 4, Got: len(v)}
	}
	q := QuaternionField{Q0: v[0], Q1: v[1], Q2: v[2], Q3: v[3]}
	if coords != nil {
		if len(coords) != 4 {
			return QuaternionField{}, &ShapeError{What: "coordinate vector", Want: 4, Got: len(coords)}
		}
		copy(q.Coordinates[:], coords)
	}
	return q, nil
}

// DiracSpinor is the derived spinor field: four complex components plus
// the real vacuum seed spinor it was grown from.
type DiracSpinor struct {
	Components [4]Complex `json:"components"`
	VacuumSeed [4]float64 `json:"vacuum_seed"`
}

// Vector returns the components as native complex values.
func (s DiracSpinor) Vector() [4]complex128 {
	var out [4]complex128
	for i, c := range s.Components {
		out[i] = c.Complex128()
	}
	return out
}

// SpinorFromVector builds a DiracSpinor from a complex component vector.
// seed may be nil, which selects the default vacuum state (1, 0, 0, 0).
func SpinorFromVector(v []complex128, seed []float64) (DiracSpinor, error) {
	if len(v) < 4 {
		return DiracSpinor{}, &ShapeError{What: "spinor component vector", Want: 4, Got: len(v)}
	}
	var s DiracSpinor
	for i := 0; i < 4; i++ {
		s.Components[i] = NewComplex(v[i])
	}
	if seed == nil {
		s.VacuumSeed = [4]float64{1, 0, 0, 0}
	} else {
		if len(seed) != 4 {
			return DiracSpinor{}, &ShapeError{What: "vacuum seed vector", Want: 4, Got: len(seed)}
		}
		copy(s.VacuumSeed[:], seed)
	}
	return s, nil
}

// GaugeField holds the U(1) gauge potential A_mu and the field strength
// tensor F_munu. Antisymmetry of F is a producer contract, not enforced
// here.
type GaugeField struct {
	Potential     [4]float64    `json:"potential"`
	FieldStrength [4][4]float64 `json:"field_strength"`
}

// Metric is the Lorentzian metric tensor g_munu with its signature,
// conventionally (-1, 1, 1, 1).
type Metric struct {
	Tensor    [4][4]float64 `json:"tensor"`
	Signature [4]int        `json:"signature"`
}

// MinkowskiMetric returns the flat metric diag(-1, 1, 1, 1).
func MinkowskiMetric() Metric {
	return Metric{
		Tensor: [4][4]float64{
			{-1, 0, 0, 0},
			{0, 1, 0, 0},
			{0, 0, 1, 0},
			{0, 0, 0, 1},
		},
		Signature: [4]int{-1, 1, 1, 1},
	}
}

// Fields aggregates one sample of each fundamental field. Each member is
// owned by value.
type Fields struct {
	Quaternion QuaternionField `json:"quaternion_field"`
	Spinor     DiracSpinor     `json:"dirac_spinor"`
	Gauge      GaugeField      `json:"gauge_field"`
	Metric     Metric          `json:"metric"`
}

// Action carries the evaluated action terms. Pure data, no derived
// computation happens on the consumer side.
type Action struct {
	Gravity           float64    `json:"gravity"`
	QuaternionKinetic float64    `json:"quaternion_kinetic"`
	Constraint        float64    `json:"constraint"`
	FermionMass       float64    `json:"fermion_mass"`
	GeometricCurrent  [4]float64 `json:"geometric_current"`
}
