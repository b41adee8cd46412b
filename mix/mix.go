// Package mix implements the fixed 32-bit avalanche finalizer applied to raw
// chaotic state before it is used as keystream bytes. The constants are the
// well-known murmur3-style finalizer constants; what matters for this
// package's contract is that the same two-round multiply/xor-shift runs
// whether it is applied to one lane or sixteen.
package mix

import "github.com/umitkrkmz/chaoticengine/internal/simd"

// Avalanche applies the two-round multiply/xor-shift finalizer to k.
func Avalanche(k uint32) uint32 {
	k *= 0x85EBCA6B
	k ^= k >> 16
	k *= 0xC2B2AE35
	k ^= k >> 13
	return k
}

// AvalancheSlice applies Avalanche to every lane of k in place, one lane at
// a time. AvalancheTier falls back to it for any length other than 16 or 8,
// which in the cipher means the scalar tier's single-lane chunks.
func AvalancheSlice(k []uint32) {
	for i, v := range k {
		k[i] = Avalanche(v)
	}
}

// AvalancheW16 mixes all 16 lanes of a Vec32x16 using the shared simd
// elementwise helpers, so the 512-bit tier genuinely routes through
// internal/simd rather than just looping over a slice view.
func AvalancheW16(k *simd.Vec32x16) {
	c1 := simd.BroadcastU32x16(0x85EBCA6B)
	c2 := simd.BroadcastU32x16(0xC2B2AE35)
	var t simd.Vec32x16

	simd.MulLoU32x16(k, &c1, k)
	simd.ShrU32x16(k, 16, &t)
	simd.XorU32x16(k, &t, k)
	simd.MulLoU32x16(k, &c2, k)
	simd.ShrU32x16(k, 13, &t)
	simd.XorU32x16(k, &t, k)
}

// AvalancheW8 mixes all 8 lanes of a Vec32x8, the 256-bit tier counterpart
// of AvalancheW16.
func AvalancheW8(k *simd.Vec32x8) {
	c1 := simd.BroadcastU32x8(0x85EBCA6B)
	c2 := simd.BroadcastU32x8(0xC2B2AE35)
	var t simd.Vec32x8

	simd.MulLoU32x8(k, &c1, k)
	simd.ShrU32x8(k, 16, &t)
	simd.XorU32x8(k, &t, k)
	simd.MulLoU32x8(k, &c2, k)
	simd.ShrU32x8(k, 13, &t)
	simd.XorU32x8(k, &t, k)
}

// AvalancheTier mixes k in place, routing through the simd-backed
// AvalancheW16/AvalancheW8 when k is exactly one tier's lane width and
// falling back to the plain elementwise loop otherwise. len(k) must be 16,
// 8, or anything else AvalancheSlice already handles one lane at a time;
// the result is identical regardless of which path runs, since all three
// are the same finalizer applied lane by lane.
func AvalancheTier(k []uint32) {
	switch len(k) {
	case 16:
		AvalancheW16((*simd.Vec32x16)(k))
	case 8:
		AvalancheW8((*simd.Vec32x8)(k))
	default:
		AvalancheSlice(k)
	}
}
