package dispatch_test

import (
	"testing"

	"github.com/umitkrkmz/chaoticengine/internal/dispatch"
)

func TestOverridePinsDetect(t *testing.T) {
	defer dispatch.ClearOverride()

	for _, tier := range []dispatch.Tier{dispatch.Scalar, dispatch.W256, dispatch.W512} {
		dispatch.SetOverride(tier)
		if got := dispatch.Detect(); got != tier {
			t.Errorf("Detect() = %v after SetOverride(%v)", got, tier)
		}
	}
}

func TestLaneCountsByTier(t *testing.T) {
	cases := []struct {
		tier       dispatch.Tier
		lanes32    int
		lanesF64   int
		stride     int
	}{
		{dispatch.Scalar, 1, 1, 4},
		{dispatch.W256, 8, 4, 32},
		{dispatch.W512, 16, 8, 64},
	}
	for _, c := range cases {
		if got := c.tier.Lanes32(); got != c.lanes32 {
			t.Errorf("%v.Lanes32() = %d, want %d", c.tier, got, c.lanes32)
		}
		if got := c.tier.LanesF64(); got != c.lanesF64 {
			t.Errorf("%v.LanesF64() = %d, want %d", c.tier, got, c.lanesF64)
		}
		if got := c.tier.Stride(); got != c.stride {
			t.Errorf("%v.Stride() = %d, want %d", c.tier, got, c.stride)
		}
	}
}

func TestClearOverrideRestoresHardwareDetection(t *testing.T) {
	dispatch.SetOverride(dispatch.W512)
	dispatch.ClearOverride()
	// Just confirm this returns a valid tier without panicking; the actual
	// value depends on the host running the test.
	switch dispatch.Detect() {
	case dispatch.Scalar, dispatch.W256, dispatch.W512:
	default:
		t.Error("Detect() returned an unrecognized tier after ClearOverride")
	}
}
