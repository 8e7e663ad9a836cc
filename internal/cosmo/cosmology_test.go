package cosmo

import (
	"math"
	"testing"

	. "github.com/onsi/gomega"

	"github.com/san-kum/cosmic/internal/integrators"
)

func relTol(v float64) float64 {
	return math.Abs(v) * 1e-6
}

func TestConcordanceAtRedshiftOne(t *testing.T) {
	g := NewWithT(t)

	c := New(71, 0.27, 0.73)
	c.SetRedshift(1.0)

	g.Expect(c.Z()).To(Equal(1.0))
	g.Expect(c.DC()).To(BeNumerically("~", 3317.407180, relTol(3317.407180)))
	g.Expect(c.DA()).To(BeNumerically("~", 1658.703590, relTol(1658.703590)))
	g.Expect(c.DL()).To(BeNumerically("~", 6634.814360, relTol(6634.814360)))
	g.Expect(c.VC()).To(BeNumerically("~", 152.927275, relTol(152.927275)))
	g.Expect(SecondsToGyr(c.Lookback())).To(BeNumerically("~", 7.731331, 1e-5))
	g.Expect(SecondsToGyr(c.Age())).To(BeNumerically("~", 13.671299, 1e-5))
	g.Expect(SecondsToGyr(c.AgeAt())).To(BeNumerically("~", 13.671299-7.731331, 1e-5))
	g.Expect(c.Scale()).To(BeNumerically("~", 8.041622, 1e-5))
	g.Expect(c.RhoCrit()).To(BeNumerically("~", 2.737161e-29, 1e-34))
}

func TestFlatTransverseEqualsRadial(t *testing.T) {
	c := New(70, 0.3, 0.7)
	if !c.IsFlat() || c.Curvature() != Flat {
		t.Fatalf("expected flat cosmology, Omega_k = %g", c.OmegaK())
	}

	for _, z := range []float64{0.01, 0.5, 1, 2.5, 10, 1000} {
		c.SetRedshift(z)
		if c.DM() != c.DC() {
			t.Errorf("z=%g: dM=%v dC=%v", z, c.DM(), c.DC())
		}
		want := 4 * math.Pi * math.Pow(c.DM(), 3) / 3 / 1e9
		if math.Abs(c.VC()-want) > relTol(want) {
			t.Errorf("z=%g: VC=%v want %v", z, c.VC(), want)
		}
	}
}

func TestReciprocity(t *testing.T) {
	params := []Params{
		{71, 0.27, 0.73},
		{70, 0.3, 0},
		{70, 2, 0},
		{70, 1, 0},
		{67.04, 0.3183, 0.6817},
		{50, 0.05, 1.2},
	}

	for _, p := range params {
		c := FromParams(p)
		for _, z := range []float64{0, 0.1, 1, 3, 7} {
			c.SetRedshift(z)
			want := c.DA() * (1 + z) * (1 + z)
			if math.Abs(c.DL()-want) > relTol(want) {
				t.Errorf("%+v z=%g: dL=%v, dA(1+z)^2=%v", p, z, c.DL(), want)
			}
		}
	}
}

func TestZeroRedshift(t *testing.T) {
	g := NewWithT(t)

	for _, p := range []Params{{71, 0.27, 0.73}, {70, 0.3, 0}, {70, 2, 0}, {100, 0, 0}} {
		c := FromParams(p)
		c.SetRedshift(2)
		c.SetRedshift(0)

		g.Expect(c.DC()).To(BeZero())
		g.Expect(c.DM()).To(BeZero())
		g.Expect(c.DA()).To(BeZero())
		g.Expect(c.DL()).To(BeZero())
		g.Expect(c.VC()).To(BeZero())
		g.Expect(c.Lookback()).To(BeZero())
		g.Expect(c.Scale()).To(BeZero())
		g.Expect(c.InverseScale()).To(BeZero())
		g.Expect(c.AgeAt()).To(Equal(c.Age()))
	}
}

func TestComovingDistanceMonotonic(t *testing.T) {
	for _, p := range []Params{{71, 0.27, 0.73}, {70, 0.3, 0}, {70, 2, 0}} {
		c := FromParams(p)
		prev := 0.0
		for z := 0.05; z <= 5; z += 0.05 {
			c.SetRedshift(z)
			if c.DC() <= prev {
				t.Fatalf("%+v: dC(%g)=%v not greater than %v", p, z, c.DC(), prev)
			}
			prev = c.DC()
		}
	}
}

func TestCriticalDensityAtZero(t *testing.T) {
	c := New(71, 0.27, 0.73)
	want := 3 / (8 * math.Pi) * math.Pow(71/KmPerMpc, 2) / Gravitational * (0.27 + 0.73)

	if math.Abs(c.RhoCrit()) != 0 {
		t.Errorf("critical density should be zero before a redshift is set, got %v", c.RhoCrit())
	}

	c.SetRedshift(0)
	if math.Abs(c.RhoCrit()-want) > relTol(want) {
		t.Errorf("rhoCrit = %v, want %v", c.RhoCrit(), want)
	}
	if math.Abs(c.RhoCrit()-9.47114667e-30) > 1e-36 {
		t.Errorf("rhoCrit = %v", c.RhoCrit())
	}
}

func TestAgeIndependentOfRedshift(t *testing.T) {
	c := New(71, 0.27, 0.73)
	age := c.Age()
	if age <= 0 {
		t.Fatalf("age = %v", age)
	}

	for _, z := range []float64{0.5, 3, 0, 20} {
		c.SetRedshift(z)
		if c.Age() != age {
			t.Errorf("age changed after SetRedshift(%g): %v vs %v", z, c.Age(), age)
		}
	}
}

func TestEinsteinDeSitterAge(t *testing.T) {
	c := New(70, 1, 0)
	// t0 = 2/(3 H0)
	want := 2.0 / 3.0 / 70 * KmPerMpc
	if math.Abs(c.Age()-want)/want > 1e-3 {
		t.Errorf("age = %v Gyr, want %v Gyr", SecondsToGyr(c.Age()), SecondsToGyr(want))
	}
}

func TestCurvatureBranches(t *testing.T) {
	tests := []struct {
		name      string
		p         Params
		curvature Curvature
		dC, dM    float64
		vC        float64
	}{
		{"open", Params{70, 0.3, 0}, Open, 2795.156021, 2936.147221, 97.088506},
		{"closed", Params{70, 2, 0}, Closed, 2242.442342, 2141.374700, 44.710476},
		{"flat", Params{70, 0.3, 0.7}, Flat, 3303.828806, 3303.828806, 151.057125},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewWithT(t)
			c := FromParams(tt.p)
			c.SetRedshift(1)

			g.Expect(c.Curvature()).To(Equal(tt.curvature))
			g.Expect(c.DC()).To(BeNumerically("~", tt.dC, relTol(tt.dC)))
			g.Expect(c.DM()).To(BeNumerically("~", tt.dM, relTol(tt.dM)))
			g.Expect(c.VC()).To(BeNumerically("~", tt.vC, relTol(tt.vC)))
		})
	}
}

func TestCurvatureSnap(t *testing.T) {
	// each pair leaves a rounding residual in 1 - m - l
	pairs := [][2]float64{{0.3111, 0.6889}, {0.7, 0.3}, {0.9, 0.1}, {0.32, 0.68}}

	for _, p := range pairs {
		if 1-p[0]-p[1] == 0 {
			t.Fatalf("%v: expected a nonzero residual", p)
		}
		c := New(70, p[0], p[1])
		if c.OmegaK() != 0 {
			t.Errorf("%v: Omega_k = %g, want exactly 0", p, c.OmegaK())
		}
		c.SetRedshift(1.5)
		if c.DM() != c.DC() {
			t.Errorf("%v: flat branch not taken", p)
		}
	}

	// residual just above machine epsilon
	g := NewWithT(t)
	c := New(70, 0.3, 0.7+4e-16)
	g.Expect(c.Curvature()).To(Equal(Flat))
	g.Expect(c.OmegaK()).To(BeZero())
	c.SetRedshift(1)
	g.Expect(c.VC()).To(BeNumerically("~", 151.057125, 1e-5))

	c = New(70, 0.3, 0.7-1e-9)
	if c.OmegaK() == 0 || c.Curvature() != Open {
		t.Errorf("small but real curvature was snapped: %g", c.OmegaK())
	}
}

func TestDerivedParameters(t *testing.T) {
	g := NewWithT(t)
	c := New(50, 0.4, 0.2)

	g.Expect(c.OmegaK()).To(BeNumerically("~", 0.4, 1e-15))
	g.Expect(c.Q0()).To(BeNumerically("~", 0.0, 1e-15))
	g.Expect(c.HubbleDistance()).To(Equal(SpeedOfLight / 50))
	g.Expect(c.OmegaM() + c.OmegaL() + c.OmegaK()).To(BeNumerically("~", 1, 1e-15))
	g.Expect(c.Params()).To(Equal(Params{50, 0.4, 0.2}))
	g.Expect(c.E(0)).To(BeNumerically("~", 1, 1e-15))
}

func TestSetCosmologyKeepsRedshift(t *testing.T) {
	c := New(70, 0.3, 0.7)
	c.SetRedshift(1)
	c.SetCosmology(71, 0.27, 0.73)

	fresh := New(71, 0.27, 0.73)
	fresh.SetRedshift(1)

	if c.Snapshot() != fresh.Snapshot() {
		t.Errorf("SetCosmology result differs from a fresh engine:\n%+v\n%+v", c.Snapshot(), fresh.Snapshot())
	}

	c.SetRedshift(0)
	c.SetCosmology(70, 0.3, 0.7)
	if c.Z() != 0 || c.RhoCrit() != 0 {
		t.Errorf("expected uninitialized redshift state, got z=%v rho=%v", c.Z(), c.RhoCrit())
	}
}

func TestCloneIsIndependent(t *testing.T) {
	c := New(71, 0.27, 0.73)
	c.SetRedshift(2)

	d := c.Clone()
	if d.Snapshot() != c.Snapshot() {
		t.Fatal("clone differs from original")
	}

	d.SetRedshift(0.5)
	if c.Z() != 2 {
		t.Errorf("original redshift changed to %v", c.Z())
	}
}

func TestDefaultParameters(t *testing.T) {
	c := NewDefault()
	if c.Params() != (Params{DefaultH0, DefaultOmegaM, DefaultOmegaL}) {
		t.Errorf("unexpected defaults: %+v", c.Params())
	}
	c.SetRedshift(1)
	if math.Abs(c.DC()-3413.027165) > relTol(3413.027165) {
		t.Errorf("dC = %v", c.DC())
	}
}

func TestWithQuadrature(t *testing.T) {
	romberg := New(71, 0.27, 0.73)
	simpson := New(71, 0.27, 0.73, WithQuadrature(integrators.NewSimpson(2048)))

	romberg.SetRedshift(1)
	simpson.SetRedshift(1)

	if math.Abs(romberg.DC()-simpson.DC()) > 1e-3 {
		t.Errorf("romberg %v vs simpson %v", romberg.DC(), simpson.DC())
	}
}

func TestNonPhysicalParametersDoNotPanic(t *testing.T) {
	inputs := []Params{
		{70, -0.5, 0.7},
		{-70, 0.3, 0.7},
		{0, 0.3, 0.7},
		{70, 0, 3},
		{70, 5, -2},
	}

	for _, p := range inputs {
		func() {
			defer func() {
				if r := recover(); r != nil {
					t.Errorf("%+v: panic %v", p, r)
				}
			}()
			c := FromParams(p)
			c.SetRedshift(1)
			_ = c.Snapshot()
		}()
	}
}
