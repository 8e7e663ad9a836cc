package integrators

// Trapezoid is the composite trapezoid rule on a fixed number of panels.
type Trapezoid struct {
	panels int
}

func NewTrapezoid(panels int) *Trapezoid {
	if panels < 1 {
		panels = 1
	}
	return &Trapezoid{panels: panels}
}

func (t *Trapezoid) Integrate(f Func, a, b float64) float64 {
	h := (b - a) / float64(t.panels)
	sum := 0.5 * (f(a) + f(b))
	for k := 1; k < t.panels; k++ {
		sum += f(a + float64(k)*h)
	}
	return sum * h
}

// Simpson is the composite Simpson rule. An odd panel count is rounded up.
type Simpson struct {
	panels int
}

func NewSimpson(panels int) *Simpson {
	if panels < 2 {
		panels = 2
	}
	if panels%2 != 0 {
		panels++
	}
	return &Simpson{panels: panels}
}

func (s *Simpson) Integrate(f Func, a, b float64) float64 {
	h := (b - a) / float64(s.panels)
	sum := f(a) + f(b)
	for k := 1; k < s.panels; k++ {
		w := 2.0
		if k%2 == 1 {
			w = 4.0
		}
		sum += w * f(a+float64(k)*h)
	}
	return sum * h / 3
}
