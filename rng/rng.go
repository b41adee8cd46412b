// Package rng adapts the cipher core into a seeded pseudo-random number
// source: it treats Process as a keystream generator over a zero buffer and
// exposes uniform integer, double, and byte-fill operations backed by a
// refillable buffer. The buffer's IV is advanced as a little-endian counter
// on every refill, so the source never repeats keystream for the lifetime of
// a (key, initial IV) pair short of a 2^64-block period.
package rng

import (
	"encoding/binary"
	"log"

	"github.com/umitkrkmz/chaoticengine/chaoserr"
	"github.com/umitkrkmz/chaoticengine/cipher"
	"github.com/umitkrkmz/chaoticengine/internal/diag"
	"github.com/umitkrkmz/chaoticengine/ints"
	"github.com/umitkrkmz/chaoticengine/primitive"
)

// DefaultBufferSize is the internal keystream buffer size used when a
// constructor doesn't specify one.
const DefaultBufferSize = 4096

// RNG is a keystream-backed pseudo-random number source. It is not safe for
// concurrent use from multiple goroutines, matching the single-threaded
// contract the rest of this module's core operations share.
type RNG struct {
	id  primitive.ID
	key []byte
	iv  []byte // at least 16 bytes; first 8 are the little-endian block counter

	buf    []byte
	cursor int

	instanceID string
}

// New constructs an RNG seeded from operating-system randomness, using
// DefaultBufferSize. Every process obtaining a fresh RNG this way draws an
// independent, unpredictable sequence.
func New(id primitive.ID) (*RNG, error) {
	return NewWithBufferSize(id, DefaultBufferSize)
}

// NewWithBufferSize is New with an explicit internal keystream buffer size,
// for an operator config (internal/config's Config.RNGBufferSize) that pins
// a different value than the package default.
func NewWithBufferSize(id primitive.ID, bufferSize int) (*RNG, error) {
	key := make([]byte, 32)
	iv := make([]byte, 16)
	if err := ints.RandomFillSlice(key); err != nil {
		return nil, err
	}
	if err := ints.RandomFillSlice(iv); err != nil {
		return nil, err
	}
	return NewSeededWithBufferSize(id, key, iv, bufferSize)
}

// NewSeeded constructs an RNG from caller-supplied key and IV bytes, using
// DefaultBufferSize. Two RNGs built from the same (id, key, iv) emit
// identical output.
func NewSeeded(id primitive.ID, key, iv []byte) (*RNG, error) {
	return NewSeededWithBufferSize(id, key, iv, DefaultBufferSize)
}

// NewSeededWithBufferSize is NewSeeded with an explicit internal keystream
// buffer size.
func NewSeededWithBufferSize(id primitive.ID, key, iv []byte, bufferSize int) (*RNG, error) {
	if len(key) < 4 {
		return nil, chaoserr.ErrInvalidKey
	}
	if bufferSize <= 0 {
		return nil, chaoserr.ErrInvalidArgument
	}
	r := &RNG{
		id:         id,
		key:        append([]byte(nil), key...),
		iv:         append([]byte(nil), iv...),
		buf:        make([]byte, bufferSize),
		cursor:     bufferSize, // forces a refill before the first read
		instanceID: diag.NewInstanceID(),
	}
	if len(r.iv) < 16 {
		padded := make([]byte, 16)
		copy(padded, r.iv)
		r.iv = padded
	}
	log.Printf("rng[%s]: seeded primitive=%s key=%016x bufferSize=%d", r.instanceID, id, diag.KeyFingerprint(key), bufferSize)
	return r, nil
}

// InstanceID returns the identifier this RNG's log lines are tagged with.
func (r *RNG) InstanceID() string { return r.instanceID }

// refill advances the IV's leading 8 bytes as a little-endian counter,
// clears the buffer, and runs Process over it to produce the next block of
// keystream.
func (r *RNG) refill() error {
	counter := binary.LittleEndian.Uint64(r.iv[:8])
	counter++
	binary.LittleEndian.PutUint64(r.iv[:8], counter)

	for i := range r.buf {
		r.buf[i] = 0
	}
	c, err := cipher.New(r.id, r.key, r.iv)
	if err != nil {
		return err
	}
	if err := c.Process(r.buf); err != nil {
		return err
	}
	r.cursor = 0
	return nil
}

func (r *RNG) ensure(n int) error {
	if r.cursor+n > len(r.buf) {
		return r.refill()
	}
	return nil
}

// NextU32 returns the next 4 bytes of keystream as a little-endian uint32.
func (r *RNG) NextU32() (uint32, error) {
	if err := r.ensure(4); err != nil {
		return 0, err
	}
	v := binary.LittleEndian.Uint32(r.buf[r.cursor:])
	r.cursor += 4
	return v, nil
}

// NextU64 returns the next 8 bytes of keystream as a little-endian uint64.
func (r *RNG) NextU64() (uint64, error) {
	if err := r.ensure(8); err != nil {
		return 0, err
	}
	v := binary.LittleEndian.Uint64(r.buf[r.cursor:])
	r.cursor += 8
	return v, nil
}

// NextDouble returns a uniform float64 in [0,1) with 53 bits of precision,
// built from the top 53 bits of NextU64.
func (r *RNG) NextDouble() (float64, error) {
	v, err := r.NextU64()
	if err != nil {
		return 0, err
	}
	return float64(v>>11) * (1.0 / (1 << 53)), nil
}

// NextInRange returns a uniform-ish value in [lo, hi] via modulo reduction
// of NextU32. Per §4.7 this is deliberately simple: callers needing
// unbiased sampling must layer rejection sampling themselves.
func (r *RNG) NextInRange(lo, hi uint32) (uint32, error) {
	if hi < lo {
		return 0, chaoserr.ErrInvalidRange
	}
	span := uint64(hi) - uint64(lo) + 1
	v, err := r.NextU32()
	if err != nil {
		return 0, err
	}
	return lo + uint32(uint64(v)%span), nil
}

// Fill copies keystream bytes into buf, refilling as many times as needed.
func (r *RNG) Fill(buf []byte) error {
	for len(buf) > 0 {
		if err := r.ensure(1); err != nil {
			return err
		}
		n := copy(buf, r.buf[r.cursor:])
		r.cursor += n
		buf = buf[n:]
	}
	return nil
}
