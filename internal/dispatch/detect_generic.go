//go:build !amd64
// +build !amd64

package dispatch

// detectHardware falls back to the scalar tier on architectures without the
// AVX2/AVX512 detection golang.org/x/sys/cpu exposes. The wide tiers are
// emulated in portable Go anyway (see internal/simd), so running them here
// would be correct but offers no throughput benefit; scalar keeps the
// fallback path simple and matches what the teacher's own !amd64 build
// tag does for its hardware-accelerated primitives.
func detectHardware() Tier {
	return Scalar
}
