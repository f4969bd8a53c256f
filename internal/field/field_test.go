package field

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuaternionVectorRoundTrip(t *testing.T) {
	q := QuaternionField{
		Q0: 0.96, Q1: 0.1, Q2: -0.2, Q3: 0.15,
		Coordinates: [4]float64{1, 2, 3, 0.5},
	}

	v := q.Vector()
	back, err := QuaternionFromVector(v[:], q.Coordinates[:])
	require.NoError(t, err)
	assert.Equal(t, q, back)
}

func TestQuaternionFromVector_DefaultCoordinates(t *testing.T) {
	q, err := QuaternionFromVector([]float64{1, 0, 0, 0}, nil)
	require.NoError(t, err)
	assert.Equal(t, [4]float64{0, 0, 0, 0}, q.Coordinates)
}

func TestQuaternionFromVector_ShortVector(t *testing.T) {
	_, err := QuaternionFromVector([]float64{1, 0, 0}, nil)

	var shapeErr *ShapeError
	require.ErrorAs(t, err, &shapeErr)
	assert.Equal(t, 4, shapeErr.Want)
	assert.Equal(t, 3, shapeErr.Got)
}

func TestQuaternionFromVector_BadCoordinates(t *testing.T) {
	_, err := QuaternionFromVector([]float64{1, 0, 0, 0}, []float64{1, 2})

	var shapeErr *ShapeError
	require.ErrorAs(t, err, &shapeErr)
	assert.Equal(t, 2, shapeErr.Got)
}

func TestSpinorVectorRoundTrip(t *testing.T) {
	s, err := SpinorFromVector([]complex128{
		complex(1, 0), complex(0, 1), complex(-0.5, 0.5), complex(0, 0),
	}, []float64{1, 0, 0, 0})
	require.NoError(t, err)

	v := s.Vector()
	back, err := SpinorFromVector(v[:], s.VacuumSeed[:])
	require.NoError(t, err)
	assert.Equal(t, s, back)
}

func TestSpinorFromVector_DefaultSeed(t *testing.T) {
	s, err := SpinorFromVector(make([]complex128, 4), nil)
	require.NoError(t, err)
	assert.Equal(t, [4]float64{1, 0, 0, 0}, s.VacuumSeed)
}

func TestSpinorFromVector_ShortVector(t *testing.T) {
	_, err := SpinorFromVector([]complex128{complex(1, 0)}, nil)

	var shapeErr *ShapeError
	require.ErrorAs(t, err, &shapeErr)
	assert.Equal(t, 1, shapeErr.Got)
}

func TestComplexConversion(t *testing.T) {
	c := NewComplex(complex(2.5, -1.25))
	assert.Equal(t, 2.5, c.Real)
	assert.Equal(t, -1.25, c.Imag)
	assert.Equal(t, complex(2.5, -1.25), c.Complex128())
}

func TestMinkowskiMetric(t *testing.T) {
	m := MinkowskiMetric()
	assert.Equal(t, [4]int{-1, 1, 1, 1}, m.Signature)
	assert.Equal(t, -1.0, m.Tensor[0][0])
	assert.Equal(t, 1.0, m.Tensor[3][3])
	assert.Equal(t, 0.0, m.Tensor[0][1])
}
