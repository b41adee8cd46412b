package cipher

import "github.com/umitkrkmz/chaoticengine/primitive"

const zeroLaneSentinel uint32 = 0xDEADBEEF

// readLE32Circular reads a little-endian uint32 starting at byte offset off
// into buf, wrapping around the end of buf. Real keys need not be a
// multiple of 4 bytes, so the "(4*i) mod len" cursor the spec describes can
// land within 3 bytes of the end; wrapping keeps every read in-bounds
// without the caller needing to pad.
func readLE32Circular(buf []byte, off int) uint32 {
	n := len(buf)
	var v uint32
	for b := 0; b < 4; b++ {
		v |= uint32(buf[(off+b)%n]) << (8 * b)
	}
	return v
}

// warmupStep is the fixed per-lane diffusion function DeriveSeeds uses to
// scramble key/IV bits across lanes. Any bijective-ish integer map would do
// this job; IntegerTent's scalar step is reused here so seed derivation
// stays independent of whichever primitive the caller ultimately selected
// for the keystream itself.
func warmupStep(x uint32) uint32 {
	return primitive.IntegerTent.Scalar(x)
}

// maxLanes is the fixed ring size deriveSeeds always warms up at, regardless
// of which tier a given Process call ends up running. A call running at
// L=8 lanes simply consumes the first 8 entries of this 16-entry table.
// Fixing the ring size (rather than sizing it to whatever L the caller
// asked for) is what makes the derived seeds — and therefore the keystream
// — identical across tiers: the wire format in §6 depends on Process
// producing the same bytes whether it ran at scalar, 256-bit, or 512-bit
// width, which would not hold if narrower tiers warmed up a smaller,
// differently-wrapping ring.
const maxLanes = 16

// deriveSeeds implements §4.4.3: derive maxLanes lane seeds from key and iv,
// with the lane index offset by dimOffset*maxLanes, so the read cursor for
// Y and Z starts 64 and 128 bytes further along than for X. dimOffset is 0
// for X, 1 for Y, 2 for Z. Because the cursor wraps modulo the key and IV
// lengths, a key or IV whose length divides 64 (such as a 32-byte key and a
// 16-byte IV) gives X, Y and Z identical seeds; they separate only once the
// primitive's coupled step runs. Callers running at a narrower tier take a
// prefix of the returned slice.
func deriveSeeds(key, iv []byte, dimOffset int) [maxLanes]uint32 {
	var s [maxLanes]uint32
	for k := 0; k < maxLanes; k++ {
		i := dimOffset*maxLanes + k
		v := readLE32Circular(key, (4*i)%len(key))
		if len(iv) >= 4 {
			v ^= readLE32Circular(iv, (4*i)%len(iv))
		}
		if v == 0 {
			v = zeroLaneSentinel
		}
		s[k] = v
	}

	for round := 0; round < 16; round++ {
		var next [maxLanes]uint32
		for k := 0; k < maxLanes; k++ {
			next[k] = warmupStep(s[k]) ^ (s[(k+1)%maxLanes] >> 1)
		}
		s = next
	}
	return s
}
