// Package dispatch resolves, once per call, which hardware tier a Process or
// Generate call should run at. It mirrors the capability-struct pattern the
// teacher codebase uses to pick AVX512 instruction levels at runtime
// (vm.avx512level): a single read of process-global capability state,
// cached by the underlying golang.org/x/sys/cpu detection, with no
// possibility of switching tiers mid-buffer.
package dispatch

import "golang.org/x/sys/cpu"

// Tier is one of the three execution widths a call can run at.
type Tier int

const (
	Scalar Tier = iota
	W256
	W512
)

func (t Tier) String() string {
	switch t {
	case Scalar:
		return "scalar"
	case W256:
		return "w256"
	case W512:
		return "w512"
	default:
		return "unknown"
	}
}

// Lanes32 returns the number of uint32 lanes a tier processes per step.
func (t Tier) Lanes32() int {
	switch t {
	case W512:
		return 16
	case W256:
		return 8
	default:
		return 1
	}
}

// LanesF64 returns the number of float64 lanes a tier processes per step.
func (t Tier) LanesF64() int {
	switch t {
	case W512:
		return 8
	case W256:
		return 4
	default:
		return 1
	}
}

// Stride returns the number of keystream bytes a tier produces per step of a
// single 32-bit-lane primitive.
func (t Tier) Stride() int {
	return t.Lanes32() * 4
}

var override *Tier

// SetOverride pins Detect to always return t, regardless of the host's
// actual capabilities. Tests use this to exercise all three tiers on a
// single machine instead of only whatever the CI runner happens to support.
func SetOverride(t Tier) { override = &t }

// ClearOverride removes a tier previously pinned with SetOverride.
func ClearOverride() { override = nil }

// Detect picks the widest tier the current process can use. The underlying
// golang.org/x/sys/cpu feature bits are populated once at program init, so
// repeated calls are cheap and every call within a single Process/Generate
// invocation observes the same answer — the contract that forbids a
// mid-buffer tier switch.
func Detect() Tier {
	if override != nil {
		return *override
	}
	return detectHardware()
}

// HasAVX2 reports whether the 256-bit integer tier is available on this
// host, independent of any test override. Exposed for diagnostics.
func HasAVX2() bool { return cpu.X86.HasAVX2 }

// HasAVX512 reports whether the 512-bit integer tier is available on this
// host, independent of any test override. Exposed for diagnostics.
func HasAVX512() bool { return cpu.X86.HasAVX512F && cpu.X86.HasAVX512BW }
