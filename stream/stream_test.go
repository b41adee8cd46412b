package stream_test

import (
	"bytes"
	"io"
	"testing"

	"github.com/umitkrkmz/chaoticengine/primitive"
	"github.com/umitkrkmz/chaoticengine/stream"
)

// memStream adapts a growable in-memory buffer into an io.ReadWriteSeeker
// for exercising Stream without touching the filesystem.
type memStream struct {
	buf []byte
	pos int64
}

func (m *memStream) Read(p []byte) (int, error) {
	if m.pos >= int64(len(m.buf)) {
		return 0, io.EOF
	}
	n := copy(p, m.buf[m.pos:])
	m.pos += int64(n)
	return n, nil
}

func (m *memStream) Write(p []byte) (int, error) {
	end := m.pos + int64(len(p))
	if end > int64(len(m.buf)) {
		grown := make([]byte, end)
		copy(grown, m.buf)
		m.buf = grown
	}
	n := copy(m.buf[m.pos:end], p)
	m.pos += int64(n)
	return n, nil
}

func (m *memStream) Seek(offset int64, whence int) (int64, error) {
	var newPos int64
	switch whence {
	case io.SeekStart:
		newPos = offset
	case io.SeekCurrent:
		newPos = m.pos + offset
	case io.SeekEnd:
		newPos = int64(len(m.buf)) + offset
	}
	m.pos = newPos
	return newPos, nil
}

// §8 scenario 2: seekable stream random access, Lorenz primitive. Writing
// 10000 bytes to stream A, then seeking to 5000 and reading 1000 bytes from
// an independently constructed stream B with the same key/iv, must recover
// bytes [5000:6000) of A's output.
func TestPositionIndependentRandomAccess(t *testing.T) {
	key := bytes.Repeat([]byte{0x11}, 32)
	iv := bytes.Repeat([]byte{0x22}, 16)

	backingA := &memStream{}
	a, err := stream.New(backingA, primitive.IDIntegerLorenz, key, iv)
	if err != nil {
		t.Fatal(err)
	}
	plainA := make([]byte, 10000)
	if _, err := a.Write(plainA); err != nil {
		t.Fatalf("write A: %v", err)
	}

	backingB := &memStream{buf: append([]byte(nil), backingA.buf...)}
	b, err := stream.New(backingB, primitive.IDIntegerLorenz, key, iv)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := b.Seek(5000, io.SeekStart); err != nil {
		t.Fatal(err)
	}
	got := make([]byte, 1000)
	if _, err := io.ReadFull(b, got); err != nil {
		t.Fatalf("read B: %v", err)
	}

	// Decrypting via B must recover the original (zero) plaintext at
	// [5000:6000), i.e. it must match the plaintext A started from.
	want := plainA[5000:6000]
	if !bytes.Equal(got, want) {
		t.Fatalf("random-access read mismatch at offset 5000")
	}
}

// Block boundary crossing: a write spanning two blocks must equal two
// separate writes at the split point.
func TestBlockBoundarySplitWritesMatch(t *testing.T) {
	key := bytes.Repeat([]byte{0x33}, 32)
	iv := bytes.Repeat([]byte{0x44}, 16)

	payload := make([]byte, stream.BlockSize+500)
	for i := range payload {
		payload[i] = byte(i)
	}
	split := stream.BlockSize - 200 // crosses the boundary

	backing1 := &memStream{}
	s1, err := stream.New(backing1, primitive.IDIntegerChen, key, iv)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := s1.Write(payload); err != nil {
		t.Fatal(err)
	}

	backing2 := &memStream{}
	s2, err := stream.New(backing2, primitive.IDIntegerChen, key, iv)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := s2.Write(payload[:split]); err != nil {
		t.Fatal(err)
	}
	if _, err := s2.Write(payload[split:]); err != nil {
		t.Fatal(err)
	}

	if !bytes.Equal(backing1.buf, backing2.buf) {
		t.Fatal("split write across block boundary produced different ciphertext")
	}
}

// Counter-mode additivity: two contiguous writes of lengths L1, L2 must
// equal one write of L1+L2 at the same starting position — a more general
// form of the block-boundary test above.
func TestCounterModeAdditivity(t *testing.T) {
	key := bytes.Repeat([]byte{0x55}, 32)
	iv := bytes.Repeat([]byte{0x66}, 16)
	payload := make([]byte, 3000)
	for i := range payload {
		payload[i] = byte(i * 3)
	}

	backingOne := &memStream{}
	sOne, err := stream.New(backingOne, primitive.IDIntegerTent, key, iv)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := sOne.Write(payload); err != nil {
		t.Fatal(err)
	}

	backingTwo := &memStream{}
	sTwo, err := stream.New(backingTwo, primitive.IDIntegerTent, key, iv)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := sTwo.Write(payload[:1200]); err != nil {
		t.Fatal(err)
	}
	if _, err := sTwo.Write(payload[1200:]); err != nil {
		t.Fatal(err)
	}

	if !bytes.Equal(backingOne.buf, backingTwo.buf) {
		t.Fatal("additivity violated: split write differs from combined write")
	}
}

func TestStreamRejectsShortKey(t *testing.T) {
	backing := &memStream{}
	_, err := stream.New(backing, primitive.IDIntegerTent, []byte{1, 2}, nil)
	if err == nil {
		t.Fatal("expected error for short key")
	}
}

func TestNewWithBlockSizeRejectsNonPositive(t *testing.T) {
	backing := &memStream{}
	key := make([]byte, 32)
	if _, err := stream.NewWithBlockSize(backing, primitive.IDIntegerTent, key, nil, 0); err == nil {
		t.Fatal("expected error for a zero block size")
	}
}

func TestNewWithBlockSizeMatchesDefaultAtPackageBlockSize(t *testing.T) {
	key := make([]byte, 32)
	iv := make([]byte, 16)
	payload := []byte("cross-block-size plaintext, longer than one 64-byte cipher window")

	backingA := &memStream{buf: make([]byte, len(payload))}
	copy(backingA.buf, payload)
	a, err := stream.New(backingA, primitive.IDIntegerHenon, key, iv)
	if err != nil {
		t.Fatal(err)
	}
	outA := make([]byte, len(payload))
	if _, err := a.Read(outA); err != nil {
		t.Fatal(err)
	}

	backingB := &memStream{buf: make([]byte, len(payload))}
	copy(backingB.buf, payload)
	b, err := stream.NewWithBlockSize(backingB, primitive.IDIntegerHenon, key, iv, stream.BlockSize)
	if err != nil {
		t.Fatal(err)
	}
	outB := make([]byte, len(payload))
	if _, err := b.Read(outB); err != nil {
		t.Fatal(err)
	}

	if !bytes.Equal(outA, outB) {
		t.Fatal("NewWithBlockSize at stream.BlockSize diverged from New")
	}
}
