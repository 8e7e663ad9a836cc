package integrators

import (
	"fmt"
	"sort"
)

const defaultPanels = 1024

type Registry struct {
	rules map[string]func() Quadrature
}

func NewRegistry() *Registry {
	r := &Registry{
		rules: make(map[string]func() Quadrature),
	}

	r.rules["romberg"] = func() Quadrature { return NewRomberg() }
	r.rules["simpson"] = func() Quadrature { return NewSimpson(defaultPanels) }
	r.rules["trapezoid"] = func() Quadrature { return NewTrapezoid(defaultPanels) }

	return r
}

func (r *Registry) Get(name string) (Quadrature, error) {
	fn, ok := r.rules[name]
	if !ok {
		return nil, fmt.Errorf("unknown integrator: %s", name)
	}
	return fn(), nil
}

func (r *Registry) List() []string {
	names := make([]string, 0, len(r.rules))
	for name := range r.rules {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
