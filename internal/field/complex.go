package field

// Complex is a complex number with an explicit two-field wire encoding.
// The packet format encodes spinor components as {"real": r, "imag": i}
// objects rather than native complex values.
type Complex struct {
	Real float64 `json:"real"`
	Imag float64 `json:"imag"`
}

func NewComplex(c complex128) Complex {
	return Complex{Real: real(c), Imag: imag(c)}
}

func (c Complex) Complex128() complex128 {
	return complex(c.Real, c.Imag)
}
