// Package cipher implements the XOR-stream cipher core: given a key, an IV,
// and a mutable byte buffer, it derives parallel integer chaotic state,
// iterates the selected primitive at the widest available width, mixes the
// state through the avalanche finalizer, and XORs the resulting bytes into
// the buffer in place. Process∘Process is the identity for fixed (key, iv).
package cipher

import (
	"encoding/binary"

	"github.com/umitkrkmz/chaoticengine/chaoserr"
	"github.com/umitkrkmz/chaoticengine/internal/dispatch"
	"github.com/umitkrkmz/chaoticengine/mix"
	"github.com/umitkrkmz/chaoticengine/primitive"
)

const maxKeyLen = 32

// Cipher is a stateless XOR-stream cipher bound to one primitive, key, and
// IV. It holds no mutable state between Process calls: every call rederives
// its keystream from (key, iv) alone, which is what makes the seekable
// stream wrapper in package stream possible.
type Cipher struct {
	desc primitive.Descriptor
	key  []byte
	iv   []byte
}

// New validates key and iv and binds them to the primitive named by id.
// Keys shorter than 4 bytes are rejected with chaoserr.ErrInvalidKey; keys
// longer than 32 bytes are truncated. IVs shorter than 4 bytes are accepted
// but reduce DeriveSeeds to key-only mixing.
func New(id primitive.ID, key, iv []byte) (*Cipher, error) {
	if len(key) < 4 {
		return nil, chaoserr.ErrInvalidKey
	}
	k := key
	if len(k) > maxKeyLen {
		k = k[:maxKeyLen]
	}
	kCopy := make([]byte, len(k))
	copy(kCopy, k)
	ivCopy := make([]byte, len(iv))
	copy(ivCopy, iv)

	return &Cipher{
		desc: primitive.Describe(id),
		key:  kCopy,
		iv:   ivCopy,
	}, nil
}

// Process XORs the keystream derived from (key, iv) into buf in place.
// Calling Process twice with the same buffer, key, and iv restores the
// original contents: Process is its own inverse.
func (c *Cipher) Process(buf []byte) error {
	if len(buf) == 0 {
		return nil
	}

	tier := dispatch.Detect()
	lanes := tier.Lanes32()

	pos := 0
	if len(buf) >= window {
		lastX, lastY, lastZ := c.runWide(buf, lanes, &pos)
		if pos < len(buf) {
			c.runScalarTail(buf, pos, lastX, lastY, lastZ)
		}
		return nil
	}

	// The buffer is shorter than one window: the whole thing is handled by
	// the scalar tail, seeded fresh from lane 0 — the same lane 0 every
	// tier's wide loop would have started from.
	xSeeds := deriveSeeds(c.key, c.iv, 0)
	x := xSeeds[0]
	var y, z uint32
	if c.desc.Dim >= primitive.D2 {
		ySeeds := deriveSeeds(c.key, c.iv, 1)
		y = ySeeds[0]
	}
	if c.desc.Dim >= primitive.D3 {
		zSeeds := deriveSeeds(c.key, c.iv, 2)
		z = zSeeds[0]
	}
	c.runScalarTail(buf, 0, x, y, z)
	return nil
}

// window is the fixed 64-byte (maxLanes 32-bit lanes) step every tier
// processes identically, regardless of its own SIMD width. Tying the loop
// stride to the tier's own lane count (as a first pass at this cipher did)
// makes byte offset 32 fall on a different lane/step pair under W256 than
// under W512, so the keystream diverges between tiers past the narrowest
// tier's own stride — exactly the cross-tier bit-level symmetry §1 and the
// wire format in §6 require. Fixing the window at maxLanes lanes and having
// narrower tiers take multiple sub-passes over lane subsets within it keeps
// every one of the 16 lanes advancing by exactly one step per window on
// every tier, so the only thing that varies across tiers is how many Wide
// calls it takes to cover the window, never the result.
const window = maxLanes * 4

// runWide advances pos (via the out parameter) past the largest
// window-aligned prefix of buf and returns the final evolved lane-0 state
// of each dimension in use, which seeds the scalar tail. All lane state
// lives in fixed-size arrays so Process allocates nothing on the heap.
func (c *Cipher) runWide(buf []byte, lanes int, pos *int) (lastX, lastY, lastZ uint32) {
	xArr := deriveSeeds(c.key, c.iv, 0)
	x := xArr[:]
	var yArr, zArr [maxLanes]uint32
	var y, z []uint32
	if c.desc.Dim >= primitive.D2 {
		yArr = deriveSeeds(c.key, c.iv, 1)
		y = yArr[:]
	}
	if c.desc.Dim >= primitive.D3 {
		zArr = deriveSeeds(c.key, c.iv, 2)
		z = zArr[:]
	}

	var ksArr [maxLanes]uint32
	ks := ksArr[:]
	var tmp [4]byte

	cur := 0
	n := len(buf)
	for cur+window <= n {
		// One window = one step for every one of the 16 lanes. A tier
		// narrower than maxLanes covers the window in multiple sub-passes
		// rather than a single call over all 16 lanes at once, but since
		// Wide applies the same per-lane step independently of every other
		// lane (see primitive.wide1 and the Int2D/Int3D Wide methods), the
		// chunking has no effect on the result.
		for chunk := 0; chunk < maxLanes; chunk += lanes {
			xs := x[chunk : chunk+lanes]
			var ys, zs []uint32
			if y != nil {
				ys = y[chunk : chunk+lanes]
			}
			if z != nil {
				zs = z[chunk : chunk+lanes]
			}
			kschunk := ks[chunk : chunk+lanes]
			c.step(xs, ys, zs, kschunk)
			mix.AvalancheTier(kschunk)
		}

		for lane := 0; lane < maxLanes; lane++ {
			binary.LittleEndian.PutUint32(tmp[:], ks[lane])
			off := cur + lane*4
			buf[off+0] ^= tmp[0]
			buf[off+1] ^= tmp[1]
			buf[off+2] ^= tmp[2]
			buf[off+3] ^= tmp[3]
		}
		cur += window
	}

	*pos = cur
	lastX = x[0]
	if c.desc.Dim >= primitive.D2 {
		lastY = y[0]
	}
	if c.desc.Dim >= primitive.D3 {
		lastZ = z[0]
	}
	return
}

// step advances one dimension-wide vector step and combines the per-
// dimension state into the keystream vector ks via XOR, per §4.4.2: x for a
// 1D primitive, x^y for 2D, x^y^z for 3D.
func (c *Cipher) step(x, y, z, ks []uint32) {
	switch c.desc.Dim {
	case primitive.D1:
		c.desc.Int1.Wide(x)
		copy(ks, x)
	case primitive.D2:
		c.desc.Int2.Wide(x, y)
		for i := range ks {
			ks[i] = x[i] ^ y[i]
		}
	case primitive.D3:
		c.desc.Int3.Wide(x, y, z)
		for i := range ks {
			ks[i] = x[i] ^ y[i] ^ z[i]
		}
	}
}

// runScalarTail processes buf[from:] four bytes at a time (or fewer, for
// the final partial word), continuing from the evolved lane-0 state handed
// down by runWide rather than restarting from the original derived seeds —
// the fix for the latent tail-continuity defect called out in the design
// notes (§9).
func (c *Cipher) runScalarTail(buf []byte, from int, x, y, z uint32) {
	var tmp [4]byte
	cur := from
	for cur < len(buf) {
		var ks uint32
		switch c.desc.Dim {
		case primitive.D1:
			x = c.desc.Int1.Scalar(x)
			ks = x
		case primitive.D2:
			s := c.desc.Int2.Scalar(primitive.Pair[uint32]{X: x, Y: y})
			x, y = s.X, s.Y
			ks = x ^ y
		case primitive.D3:
			s := c.desc.Int3.Scalar(primitive.Triple[uint32]{X: x, Y: y, Z: z})
			x, y, z = s.X, s.Y, s.Z
			ks = x ^ y ^ z
		}
		ks = mix.Avalanche(ks)
		binary.LittleEndian.PutUint32(tmp[:], ks)

		n := len(buf) - cur
		if n > 4 {
			n = 4
		}
		for i := 0; i < n; i++ {
			buf[cur+i] ^= tmp[i]
		}
		cur += n
	}
}
