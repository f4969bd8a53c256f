package field

import "fmt"

// ShapeError reports a vector or tensor whose dimensions do not match the
// fixed 4-dimensional layout the field types require.
type ShapeError struct {
	What string
	Want int
	Got  int
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("field: %s has %d elements, want %d", e.What, e.Got, e.Want)
}
