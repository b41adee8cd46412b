package primitive

import "math"

// Float1D is a one-dimensional floating-point chaotic map. Scalar and Wide
// are allowed to diverge numerically (Sine does, deliberately); everywhere
// else they agree up to floating-point rounding.
type Float1D interface {
	ID() ID
	Scalar(x float64) float64
	Wide(x []float64)
}

// Float2D is a two-dimensional floating-point chaotic map.
type Float2D interface {
	ID() ID
	Scalar(s Pair[float64]) Pair[float64]
	Wide(x, y []float64)
}

// Float3D is a three-dimensional floating-point chaotic map, stepped with
// an explicit Euler integrator at the caller-supplied dt.
type Float3D interface {
	ID() ID
	Scalar(s Triple[float64], dt float64) Triple[float64]
	Wide(x, y, z []float64, dt float64)
}

func wideF1(x []float64, step func(float64) float64) {
	for i, v := range x {
		x[i] = step(v)
	}
}

// --- Logistic ---------------------------------------------------------

type logisticMap struct{ r float64 }

// Logistic is the canonical logistic map x' = r*x*(1-x) at r=3.99, just
// past the onset of full chaos.
var Logistic Float1D = logisticMap{r: 3.99}

func (logisticMap) ID() ID { return IDLogistic }

func (m logisticMap) Scalar(x float64) float64 { return m.r * x * (1 - x) }

func (m logisticMap) Wide(x []float64) { wideF1(x, m.Scalar) }

// --- Tent ---------------------------------------------------------

type tentMap struct{ mu float64 }

// Tent is the tent map x' = mu*x (x<0.5) or mu*(1-x) (x>=0.5) at mu=1.9999.
// The wide path computes both branches unconditionally for every lane and
// then picks one per lane by the x<0.5 predicate, mirroring the masked blend
// a real SIMD lane would use.
var Tent Float1D = tentMap{mu: 1.9999}

func (tentMap) ID() ID { return IDTent }

func (m tentMap) Scalar(x float64) float64 {
	if x < 0.5 {
		return m.mu * x
	}
	return m.mu * (1 - x)
}

func (m tentMap) Wide(x []float64) {
	for i, v := range x {
		left := m.mu * v
		right := m.mu * (1 - v)
		if v < 0.5 {
			x[i] = left
		} else {
			x[i] = right
		}
	}
}

// --- Sine ---------------------------------------------------------

type sineMap struct{ r float64 }

// Sine is the scientific map with a deliberately tier-dependent definition:
// Scalar evaluates sin directly, Wide uses the Bhaskara I rational
// approximation of sin(pi*x). The two are numerically close but not
// bit-identical; callers needing reproducibility across machines must pin
// a tier rather than rely on this primitive alone.
var Sine Float1D = sineMap{r: 1.0}

func (sineMap) ID() ID { return IDSine }

func (m sineMap) Scalar(x float64) float64 {
	return m.r * math.Sin(math.Pi*x)
}

func bhaskaraSine(x float64) float64 {
	return 16 * x * (1 - x) / (5 - 4*x*(1-x))
}

func (m sineMap) Wide(x []float64) {
	for i, v := range x {
		x[i] = m.r * bhaskaraSine(v)
	}
}

// --- Henon ---------------------------------------------------------

type henonMap struct{ a, b float64 }

// Henon is the canonical 2D Henon attractor. The update is order
// sensitive: y' is derived from the pre-update x, not the freshly computed
// x'.
var Henon Float2D = henonMap{a: 1.4, b: 0.3}

func (henonMap) ID() ID { return IDHenon }

func (m henonMap) Scalar(s Pair[float64]) Pair[float64] {
	x, y := s.X, s.Y
	nx := 1 - m.a*x*x + y
	ny := m.b * x
	return Pair[float64]{X: nx, Y: ny}
}

func (m henonMap) Wide(x, y []float64) {
	for i := range x {
		s := m.Scalar(Pair[float64]{X: x[i], Y: y[i]})
		x[i], y[i] = s.X, s.Y
	}
}

// --- Lorenz ---------------------------------------------------------

type lorenzMap struct{ sigma, rho, beta float64 }

// Lorenz is the classical Lorenz system, advanced with a single explicit
// Euler step per call at the caller-supplied dt.
var Lorenz Float3D = lorenzMap{sigma: 10, rho: 28, beta: 8.0 / 3.0}

func (lorenzMap) ID() ID { return IDLorenz }

func (m lorenzMap) Scalar(s Triple[float64], dt float64) Triple[float64] {
	x, y, z := s.X, s.Y, s.Z
	dx := m.sigma * (y - x)
	dy := x*(m.rho-z) - y
	dz := x*y - m.beta*z
	return Triple[float64]{X: x + dx*dt, Y: y + dy*dt, Z: z + dz*dt}
}

func (m lorenzMap) Wide(x, y, z []float64, dt float64) {
	for i := range x {
		s := m.Scalar(Triple[float64]{X: x[i], Y: y[i], Z: z[i]}, dt)
		x[i], y[i], z[i] = s.X, s.Y, s.Z
	}
}

// --- Chen ---------------------------------------------------------

type chenMap struct{ a, b, c float64 }

// Chen is the Chen attractor, a Lorenz relative with a wider chaotic
// parameter regime, also advanced with a single explicit Euler step.
var Chen Float3D = chenMap{a: 35, b: 3, c: 28}

func (chenMap) ID() ID { return IDChen }

func (m chenMap) Scalar(s Triple[float64], dt float64) Triple[float64] {
	x, y, z := s.X, s.Y, s.Z
	dx := m.a * (y - x)
	dy := (m.c-m.a)*x - x*z + m.c*y
	dz := x*y - m.b*z
	return Triple[float64]{X: x + dx*dt, Y: y + dy*dt, Z: z + dz*dt}
}

func (m chenMap) Wide(x, y, z []float64, dt float64) {
	for i := range x {
		s := m.Scalar(Triple[float64]{X: x[i], Y: y[i], Z: z[i]}, dt)
		x[i], y[i], z[i] = s.X, s.Y, s.Z
	}
}
