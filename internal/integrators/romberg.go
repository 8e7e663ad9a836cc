package integrators

import "math"

const (
	DefaultTolerance = 1e-8
	DefaultMaxLevels = 25
)

// Estimate is the outcome of a Romberg run. Converged is false when the
// level cap was hit before two successive diagonal entries agreed.
type Estimate struct {
	Value     float64
	Levels    int
	Converged bool
}

type RombergOption func(*Romberg)

// WithTolerance sets the absolute convergence tolerance.
func WithTolerance(tol float64) RombergOption {
	return func(r *Romberg) {
		if tol > 0 {
			r.tol = tol
		}
	}
}

// WithMaxLevels caps the number of refinement levels. Level n evaluates the
// integrand on 2^(n-1)+1 points.
func WithMaxLevels(n int) RombergOption {
	return func(r *Romberg) {
		if n >= 2 {
			r.maxLevels = n
		}
	}
}

// Romberg integrates by repeated trapezoid halving with Richardson
// extrapolation across levels. The two table rows are reused between calls,
// so a Romberg value must not be shared between goroutines.
type Romberg struct {
	tol       float64
	maxLevels int
	prev, cur []float64
}

func NewRomberg(opts ...RombergOption) *Romberg {
	r := &Romberg{
		tol:       DefaultTolerance,
		maxLevels: DefaultMaxLevels,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Clone returns a Romberg with the same settings and its own table rows.
func (r *Romberg) Clone() *Romberg {
	return NewRomberg(WithTolerance(r.tol), WithMaxLevels(r.maxLevels))
}

func (r *Romberg) Tolerance() float64 { return r.tol }
func (r *Romberg) MaxLevels() int     { return r.maxLevels }

// Integrate returns the best available estimate of the integral of f over
// [a, b]. A run that exhausts every level still returns its last high-order
// estimate; use IntegrateDetailed to tell the two apart.
func (r *Romberg) Integrate(f Func, a, b float64) float64 {
	return r.IntegrateDetailed(f, a, b).Value
}

func (r *Romberg) ensureRows() {
	if len(r.prev) != r.maxLevels {
		r.prev = make([]float64, r.maxLevels)
		r.cur = make([]float64, r.maxLevels)
	}
}

func (r *Romberg) IntegrateDetailed(f Func, a, b float64) Estimate {
	r.ensureRows()
	prev, cur := r.prev, r.cur

	h := b - a
	panels := 1
	prev[0] = h / 2 * (f(a) + f(b))
	best := prev[0]

	for i := 1; i < r.maxLevels; i++ {
		h /= 2
		panels *= 2
		sum := 0.0
		for k := 1; k < panels; k += 2 {
			sum += f(a + float64(k)*h)
		}

		cur[0] = 0.5*prev[0] + h*sum
		// row i holds i entries; entry j extrapolates with weight 4^j
		m := 1.0
		for j := 1; j < i; j++ {
			m *= 4
			cur[j] = cur[j-1] + (cur[j-1]-prev[j-1])/(m-1)
		}
		best = cur[i-1]

		// the first halving has no extrapolated entry to compare against
		if i > 1 && math.Abs(cur[i-1]-prev[i-2]) < r.tol {
			return Estimate{Value: best, Levels: i + 1, Converged: true}
		}
		prev, cur = cur, prev
	}

	return Estimate{Value: best, Levels: r.maxLevels, Converged: false}
}
