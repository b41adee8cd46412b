// Package generator implements the scientific generator: it wraps a
// floating-point primitive behind a uniform Generate1D/2D/3D interface that
// fills caller-supplied buffers from initial conditions at vector
// throughput, falling back to a scalar tail for whatever remainder doesn't
// divide evenly into the detected tier's lane count.
package generator

import (
	"github.com/umitkrkmz/chaoticengine/chaoserr"
	"github.com/umitkrkmz/chaoticengine/internal/dispatch"
	"github.com/umitkrkmz/chaoticengine/ints"
	"github.com/umitkrkmz/chaoticengine/primitive"
)

// alignedLen returns the largest multiple of lanes that is <= n — the
// vector/tail split point from §4.2 step 4.
func alignedLen(n, lanes int) int {
	return int(ints.AlignDown(uint(n), uint(lanes)))
}

// epsilon staggers parallel lane seeds apart so their trajectories diverge
// under sensitive dependence on initial conditions rather than marching in
// lockstep.
const epsilon = 1e-10

// maxLanesF64 is the widest float64 lane count any tier uses (W512), sized
// so seed and state vectors can live in fixed arrays instead of heap slices.
const maxLanesF64 = 8

// reducesToUnitInterval reports whether a primitive's natural domain is
// [0,1), in which case staggered lane seeds are wrapped back into range
// rather than left to wander outside the map's intended domain.
func reducesToUnitInterval(id primitive.ID) bool {
	return id == primitive.IDTent || id == primitive.IDSine
}

func seedLane(x0 float64, k int, reduceMod bool) float64 {
	v := x0 + float64(k)*epsilon
	if reduceMod {
		v -= float64(int(v))
		if v < 0 {
			v += 1
		}
	}
	return v
}

// Generate1D fills buf with N successive states of the 1D primitive id,
// started from x0. Per §4.2: the widest tier available runs L lanes
// interleaved in memory order until fewer than L elements remain, and a
// scalar tail finishes the buffer. The tail's starting point is the last
// lane written by the final vector iteration, not a per-lane continuation —
// this mirrors the source's own discontinuity at the seam and is preserved
// deliberately rather than smoothed over.
func Generate1D(buf []float64, x0 float64, id primitive.ID) error {
	if len(buf) == 0 {
		return nil
	}
	desc := primitive.Describe(id)
	if desc.Dim != primitive.D1 || desc.Domain != primitive.DomainF64 {
		return chaoserr.ErrUnsupportedPrimitive
	}

	tier := dispatch.Detect()
	lanes := tier.LanesF64()
	reduceMod := reducesToUnitInterval(id)

	var state [maxLanesF64]float64
	for k := 0; k < lanes; k++ {
		state[k] = seedLane(x0, k, reduceMod)
	}
	x := state[:lanes]

	i := 0
	n := len(buf)
	stop := alignedLen(n, lanes)
	for i < stop {
		desc.Float1.Wide(x)
		copy(buf[i:i+lanes], x)
		i += lanes
	}

	tailX := x0
	if i > 0 {
		tailX = buf[i-1]
	}
	for ; i < n; i++ {
		tailX = desc.Float1.Scalar(tailX)
		buf[i] = tailX
	}
	return nil
}

// Generate2D fills xbuf and ybuf with N successive states of the 2D
// primitive id, started from (x0, y0). xbuf and ybuf must have equal
// length; otherwise it fails with chaoserr.ErrShapeMismatch before mutating
// either buffer.
func Generate2D(xbuf, ybuf []float64, x0, y0 float64, id primitive.ID) error {
	if len(xbuf) != len(ybuf) {
		return chaoserr.ErrShapeMismatch
	}
	if len(xbuf) == 0 {
		return nil
	}
	desc := primitive.Describe(id)
	if desc.Dim != primitive.D2 || desc.Domain != primitive.DomainF64 {
		return chaoserr.ErrUnsupportedPrimitive
	}

	tier := dispatch.Detect()
	lanes := tier.LanesF64()

	var xs, ys [maxLanesF64]float64
	for k := 0; k < lanes; k++ {
		xs[k] = seedLane(x0, k, false)
		ys[k] = seedLane(y0, k, false)
	}
	x, y := xs[:lanes], ys[:lanes]

	i := 0
	n := len(xbuf)
	stop := alignedLen(n, lanes)
	for i < stop {
		desc.Float2.Wide(x, y)
		copy(xbuf[i:i+lanes], x)
		copy(ybuf[i:i+lanes], y)
		i += lanes
	}

	tailX, tailY := x0, y0
	if i > 0 {
		tailX, tailY = xbuf[i-1], ybuf[i-1]
	}
	for ; i < n; i++ {
		s := desc.Float2.Scalar(primitive.Pair[float64]{X: tailX, Y: tailY})
		tailX, tailY = s.X, s.Y
		xbuf[i], ybuf[i] = tailX, tailY
	}
	return nil
}

// Generate3D fills xbuf, ybuf, zbuf with N successive states of the 3D
// primitive id, advanced by explicit Euler steps of size dt, started from
// (x0, y0, z0). All three buffers must have equal length.
func Generate3D(xbuf, ybuf, zbuf []float64, x0, y0, z0, dt float64, id primitive.ID) error {
	if len(xbuf) != len(ybuf) || len(ybuf) != len(zbuf) {
		return chaoserr.ErrShapeMismatch
	}
	if len(xbuf) == 0 {
		return nil
	}
	desc := primitive.Describe(id)
	if desc.Dim != primitive.D3 || desc.Domain != primitive.DomainF64 {
		return chaoserr.ErrUnsupportedPrimitive
	}

	tier := dispatch.Detect()
	lanes := tier.LanesF64()

	var xs, ys, zs [maxLanesF64]float64
	for k := 0; k < lanes; k++ {
		xs[k] = seedLane(x0, k, false)
		ys[k] = seedLane(y0, k, false)
		zs[k] = seedLane(z0, k, false)
	}
	x, y, z := xs[:lanes], ys[:lanes], zs[:lanes]

	i := 0
	n := len(xbuf)
	stop := alignedLen(n, lanes)
	for i < stop {
		desc.Float3.Wide(x, y, z, dt)
		copy(xbuf[i:i+lanes], x)
		copy(ybuf[i:i+lanes], y)
		copy(zbuf[i:i+lanes], z)
		i += lanes
	}

	tailX, tailY, tailZ := x0, y0, z0
	if i > 0 {
		tailX, tailY, tailZ = xbuf[i-1], ybuf[i-1], zbuf[i-1]
	}
	for ; i < n; i++ {
		s := desc.Float3.Scalar(primitive.Triple[float64]{X: tailX, Y: tailY, Z: tailZ}, dt)
		tailX, tailY, tailZ = s.X, s.Y, s.Z
		xbuf[i], ybuf[i], zbuf[i] = tailX, tailY, tailZ
	}
	return nil
}
