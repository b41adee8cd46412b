package generator_test

import (
	"math"
	"testing"

	"github.com/umitkrkmz/chaoticengine/chaoserr"
	"github.com/umitkrkmz/chaoticengine/generator"
	"github.com/umitkrkmz/chaoticengine/internal/dispatch"
	"github.com/umitkrkmz/chaoticengine/primitive"
)

func TestGenerate2DShapeMismatch(t *testing.T) {
	xbuf := make([]float64, 10)
	ybuf := make([]float64, 5)
	err := generator.Generate2D(xbuf, ybuf, 0.1, 0.1, primitive.IDHenon)
	if err != chaoserr.ErrShapeMismatch {
		t.Fatalf("got %v, want ErrShapeMismatch", err)
	}
}

func TestGenerate3DShapeMismatch(t *testing.T) {
	xbuf := make([]float64, 10)
	ybuf := make([]float64, 10)
	zbuf := make([]float64, 9)
	err := generator.Generate3D(xbuf, ybuf, zbuf, 0.1, 0.1, 0.1, 0.01, primitive.IDLorenz)
	if err != chaoserr.ErrShapeMismatch {
		t.Fatalf("got %v, want ErrShapeMismatch", err)
	}
}

// §8 scenario 5: Lorenz generator statistics. After warm-up the x series
// should span roughly [-20, 20] and carry enough entropy to not be
// degenerate.
func TestGenerate3DLorenzStatistics(t *testing.T) {
	const n = 50000
	const warmup = 1000

	xbuf := make([]float64, n)
	ybuf := make([]float64, n)
	zbuf := make([]float64, n)
	err := generator.Generate3D(xbuf, ybuf, zbuf, 0.1, 0.1, 0.1, 0.01, primitive.IDLorenz)
	if err != nil {
		t.Fatalf("Generate3D: %v", err)
	}

	xs := xbuf[warmup:]
	zs := zbuf[warmup:]

	minX, maxX := xs[0], xs[0]
	for _, v := range xs {
		if v < minX {
			minX = v
		}
		if v > maxX {
			maxX = v
		}
	}
	minZ, maxZ := zs[0], zs[0]
	for _, v := range zs {
		if v < minZ {
			minZ = v
		}
		if v > maxZ {
			maxZ = v
		}
	}

	if maxX-minX < 20 {
		t.Errorf("x range too narrow: [%v, %v]", minX, maxX)
	}
	if maxZ < 20 {
		t.Errorf("z max too small for a Lorenz attractor: %v", maxZ)
	}

	entropy := shannonEntropy(xs, 256)
	if entropy <= 5.0 {
		t.Errorf("x-series entropy = %v, want > 5.0 bits", entropy)
	}
}

func shannonEntropy(xs []float64, bins int) float64 {
	lo, hi := xs[0], xs[0]
	for _, v := range xs {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	if hi == lo {
		return 0
	}
	counts := make([]int, bins)
	for _, v := range xs {
		b := int((v - lo) / (hi - lo) * float64(bins))
		if b >= bins {
			b = bins - 1
		}
		if b < 0 {
			b = 0
		}
		counts[b]++
	}
	n := float64(len(xs))
	var h float64
	for _, c := range counts {
		if c == 0 {
			continue
		}
		p := float64(c) / n
		h -= p * math.Log2(p)
	}
	return h
}

// The scalar tail deliberately continues from buffer[i-1] (the last lane of
// the final vector iteration) rather than any single lane's own trajectory
// — an intentionally preserved discontinuity (§9), not a bug to paper over.
// This test only asserts the tail is populated and finite, not that it is a
// smooth continuation.
func TestGenerate1DTailIsPopulated(t *testing.T) {
	dispatch.SetOverride(dispatch.W512)
	defer dispatch.ClearOverride()

	buf := make([]float64, 19) // not a multiple of 8 lanes
	if err := generator.Generate1D(buf, 0.3, primitive.IDLogistic); err != nil {
		t.Fatal(err)
	}
	for i, v := range buf {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("buf[%d] = %v, not finite", i, v)
		}
	}
}

func TestGenerate1DRejectsWrongDomain(t *testing.T) {
	buf := make([]float64, 4)
	err := generator.Generate1D(buf, 0.1, primitive.IDIntegerTent)
	if err != chaoserr.ErrUnsupportedPrimitive {
		t.Fatalf("got %v, want ErrUnsupportedPrimitive", err)
	}
}
