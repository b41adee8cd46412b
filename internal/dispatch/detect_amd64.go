//go:build amd64
// +build amd64

package dispatch

import "golang.org/x/sys/cpu"

// detectHardware probes the three tiers from widest to narrowest. AVX512
// requires both the foundation (F) and byte/word (BW) extensions, the
// minimum set the wide integer lane ops in internal/simd assume.
func detectHardware() Tier {
	if cpu.X86.HasAVX512F && cpu.X86.HasAVX512BW {
		return W512
	}
	if cpu.X86.HasAVX2 {
		return W256
	}
	return Scalar
}
