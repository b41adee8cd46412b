package primitive

import "math/bits"

// Int1D is a one-dimensional integer chaotic map.
type Int1D interface {
	ID() ID
	Weyl() uint32
	Scalar(x uint32) uint32
	Wide(x []uint32)
}

// Int2D is a two-dimensional integer chaotic map. Order sensitivity (a new
// y depending on the pre-update x, or vice versa) is expressed directly in
// Scalar/Wide rather than hidden behind independent per-component calls.
type Int2D interface {
	ID() ID
	Scalar(s Pair[uint32]) Pair[uint32]
	Wide(x, y []uint32)
}

// Int3D is a three-dimensional integer chaotic map.
type Int3D interface {
	ID() ID
	Scalar(s Triple[uint32]) Triple[uint32]
	Wide(x, y, z []uint32)
}

// wide1 applies a 1-lane scalar step independently across every element of x.
// Because it is the same function used by Scalar, lane k of any slice length
// equals the scalar result seeded with x[k] — this is what makes cross-tier
// equivalence automatic instead of a property that has to be proven.
func wide1(x []uint32, step func(uint32) uint32) {
	for i, v := range x {
		x[i] = step(v)
	}
}

// --- Integer Tent ---------------------------------------------------------

type integerTent struct{}

// IntegerTent is the tent map over Z/2^32Z: rotate the mantissa left by one
// bit, folding through the complement above the domain midpoint, then add
// the Weyl constant to avoid short cycles at the map's fixed points.
var IntegerTent Int1D = integerTent{}

func (integerTent) ID() ID      { return IDIntegerTent }
func (integerTent) Weyl() uint32 { return 0x9E3779B9 }

func (p integerTent) Scalar(x uint32) uint32 {
	var y uint32
	if x < 0x80000000 {
		y = bits.RotateLeft32(x, 1)
	} else {
		y = bits.RotateLeft32(^x, 1)
	}
	return y + p.Weyl()
}

func (p integerTent) Wide(x []uint32) { wide1(x, p.Scalar) }

// --- Integer Logistic ------------------------------------------------------

type integerLogistic struct{}

// IntegerLogistic multiplies x by its own complement in 64-bit, keeps bits
// [30:62) of the product, and adds a Weyl constant.
var IntegerLogistic Int1D = integerLogistic{}

func (integerLogistic) ID() ID       { return IDIntegerLogistic }
func (integerLogistic) Weyl() uint32 { return 0x61C88647 }

func (p integerLogistic) Scalar(x uint32) uint32 {
	prod := uint64(x) * uint64(^x)
	y := uint32(prod >> 30)
	return y + p.Weyl()
}

func (p integerLogistic) Wide(x []uint32) { wide1(x, p.Scalar) }

// --- Integer Sine ------------------------------------------------------

type integerSine struct{}

// IntegerSine approximates a fixed-point sine map using the Bhaskara I
// rational identity, evaluated in float64 on x/2^32 and converted back to
// uint32, then adds a Weyl constant. Unlike the float Sine primitive, this path has no scalar/SIMD
// divergence: there is only one definition, since it never calls math.Sin.
var IntegerSine Int1D = integerSine{}

func (integerSine) ID() ID       { return IDIntegerSine }
func (integerSine) Weyl() uint32 { return 0xB504F333 }

func (p integerSine) Scalar(x uint32) uint32 {
	const scale = 1 << 32
	v := float64(x) / scale
	num := 16 * v * (1 - v)
	den := 5 - 4*v*(1-v)
	s := 4 * num / den
	return uint32(s*scale) + p.Weyl()
}

func (p integerSine) Wide(x []uint32) { wide1(x, p.Scalar) }

// --- Integer Henon ---------------------------------------------------------

type integerHenon struct{}

// IntegerHenon is the integer analogue of the Henon map: a non-linear mixer
// of the high and low halves of x^2 perturbs the next x, and the update is
// order sensitive (y' takes the pre-update x).
var IntegerHenon Int2D = integerHenon{}

func (integerHenon) ID() ID { return IDIntegerHenon }

func (integerHenon) Scalar(s Pair[uint32]) Pair[uint32] {
	x, y := s.X, s.Y
	prod := uint64(x) * uint64(x)
	t := uint32(prod) ^ uint32(prod>>32)
	nx := y + 0x6D2B79F5 - t
	ny := x
	return Pair[uint32]{X: nx, Y: ny}
}

func (p integerHenon) Wide(x, y []uint32) {
	for i := range x {
		s := p.Scalar(Pair[uint32]{X: x[i], Y: y[i]})
		x[i], y[i] = s.X, s.Y
	}
}

// --- Integer Lorenz ---------------------------------------------------------

type integerLorenz struct{}

// IntegerLorenz is an integer-arithmetic analogue of the Lorenz attractor:
// each component's forward difference is a fixed-shift, fixed-xor function
// of the current state, added back into the running state every step.
var IntegerLorenz Int3D = integerLorenz{}

func (integerLorenz) ID() ID { return IDIntegerLorenz }

func (integerLorenz) Scalar(s Triple[uint32]) Triple[uint32] {
	x, y, z := s.X, s.Y, s.Z
	dx := (y - x) >> 2
	dy := (x ^ (y >> 3)) - z
	dz := (x + y) ^ (z << 1)
	return Triple[uint32]{X: x + dx, Y: y + dy, Z: z + dz}
}

func (p integerLorenz) Wide(x, y, z []uint32) {
	for i := range x {
		s := p.Scalar(Triple[uint32]{X: x[i], Y: y[i], Z: z[i]})
		x[i], y[i], z[i] = s.X, s.Y, s.Z
	}
}

// --- Integer Chen ---------------------------------------------------------

type integerChen struct{}

// IntegerChen is a second integer three-dimensional attractor, structurally
// similar to IntegerLorenz but with a different mixing schedule so the two
// primitives produce distinguishable keystreams from the same seed.
var IntegerChen Int3D = integerChen{}

func (integerChen) ID() ID { return IDIntegerChen }

func (integerChen) Scalar(s Triple[uint32]) Triple[uint32] {
	x, y, z := s.X, s.Y, s.Z
	diff := y - x
	dx := diff + (diff << 1)
	dy := (x ^ (y << 2)) + (z >> 1)
	dz := (x + y) ^ (z + (z << 1))
	return Triple[uint32]{X: x + dx, Y: y + dy, Z: z + dz}
}

func (p integerChen) Wide(x, y, z []uint32) {
	for i := range x {
		s := p.Scalar(Triple[uint32]{X: x[i], Y: y[i], Z: z[i]})
		x[i], y[i], z[i] = s.X, s.Y, s.Z
	}
}
