package integrators

// Func is a real-valued function of one real variable.
type Func func(x float64) float64

// Quadrature approximates a definite integral.
type Quadrature interface {
	Integrate(f Func, a, b float64) float64
}
