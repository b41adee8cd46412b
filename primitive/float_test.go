package primitive_test

import (
	"math"
	"testing"

	"github.com/umitkrkmz/chaoticengine/primitive"
)

func TestLogisticStaysInUnitInterval(t *testing.T) {
	x := 0.4
	for i := 0; i < 1000; i++ {
		x = primitive.Logistic.Scalar(x)
		if x < 0 || x > 1 {
			t.Fatalf("logistic escaped [0,1] at step %d: %v", i, x)
		}
	}
}

func TestTentWideMatchesScalarBranching(t *testing.T) {
	xs := []float64{0.1, 0.49, 0.5, 0.51, 0.9}
	wide := append([]float64(nil), xs...)
	primitive.Tent.Wide(wide)
	for i, x := range xs {
		want := primitive.Tent.Scalar(x)
		if wide[i] != want {
			t.Errorf("tent lane %d: wide=%v scalar=%v", i, wide[i], want)
		}
	}
}

// Sine is deliberately NOT tier-equivalent: scalar uses math.Sin, the wide
// path uses the Bhaskara I approximation. This test asserts the two paths
// are close but documents that they are not required to match exactly —
// the divergence must not be "fixed" (spec §9).
func TestSineTiersDivergeButAgreeApproximately(t *testing.T) {
	x := 0.37
	scalar := primitive.Sine.Scalar(x)
	wide := []float64{x}
	primitive.Sine.Wide(wide)

	if scalar == wide[0] {
		t.Skip("scalar and wide coincidentally matched exactly; not a contract violation")
	}
	if math.Abs(scalar-wide[0]) > 0.05 {
		t.Errorf("scalar=%v wide=%v diverge by more than the expected Bhaskara approximation error", scalar, wide[0])
	}
}

func TestHenonOrderSensitivity(t *testing.T) {
	s := primitive.Pair[float64]{X: 0.1, Y: 0.1}
	next := primitive.Henon.Scalar(s)
	// y' must be derived from the pre-update x (b*x), not the freshly
	// computed x'.
	wantY := 0.3 * s.X
	if next.Y != wantY {
		t.Errorf("henon y' = %v, want %v (order-sensitive on pre-update x)", next.Y, wantY)
	}
}

func TestLorenzEulerStepMovesState(t *testing.T) {
	s := primitive.Triple[float64]{X: 0.1, Y: 0.1, Z: 0.1}
	next := primitive.Lorenz.Scalar(s, 0.01)
	if next == s {
		t.Error("lorenz step produced no change in state")
	}
}
