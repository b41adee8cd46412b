// Command chaoscli applies the stream cipher to files from the command
// line: encryption and decryption are the same operation, so there are no
// separate encrypt/decrypt modes; every run applies the keystream.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/umitkrkmz/chaoticengine/internal/config"
	"github.com/umitkrkmz/chaoticengine/keyderiv"
	"github.com/umitkrkmz/chaoticengine/primitive"
	"github.com/umitkrkmz/chaoticengine/stream"
)

func main() {
	var (
		primName   = flag.String("primitive", "integer-lorenz", "keystream primitive (integer-tent, integer-logistic, integer-sine, integer-henon, integer-lorenz, integer-chen)")
		passphrase = flag.String("passphrase", "", "passphrase to derive key and IV from (required)")
		salt       = flag.String("salt", "chaoscli", "salt mixed into passphrase derivation")
		confPath   = flag.String("config", "", "optional YAML config overriding the dispatch tier")
		in         = flag.String("in", "-", "input path, or - for stdin")
		out        = flag.String("out", "-", "output path, or - for stdout")
	)
	flag.Parse()

	if err := run(*primName, *passphrase, *salt, *confPath, *in, *out); err != nil {
		fmt.Fprintln(os.Stderr, "chaoscli:", err)
		os.Exit(1)
	}
}

func run(primName, passphrase, salt, confPath, inPath, outPath string) error {
	if passphrase == "" {
		return fmt.Errorf("-passphrase is required")
	}
	id, err := lookupPrimitive(primName)
	if err != nil {
		return err
	}
	blockSize := stream.BlockSize
	if confPath != "" {
		cfg, err := config.Load(confPath)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		cfg.ApplyTierOverride()
		if cfg.StreamBlockSize > 0 {
			blockSize = cfg.StreamBlockSize
		}
	}

	key, iv := keyderiv.FromPassphrase(passphrase, []byte(salt))

	data, err := readInput(inPath)
	if err != nil {
		return err
	}

	buf := newMemBuffer(data)
	s, err := stream.NewWithBlockSize(buf, id, key[:], iv[:], blockSize)
	if err != nil {
		return fmt.Errorf("opening stream: %w", err)
	}
	applied := make([]byte, len(data))
	if _, err := io.ReadFull(s, applied); err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return fmt.Errorf("applying keystream: %w", err)
	}

	return writeOutput(outPath, applied)
}

func lookupPrimitive(name string) (primitive.ID, error) {
	byName := map[string]primitive.ID{
		"integer-tent":     primitive.IDIntegerTent,
		"integer-logistic": primitive.IDIntegerLogistic,
		"integer-sine":     primitive.IDIntegerSine,
		"integer-henon":    primitive.IDIntegerHenon,
		"integer-lorenz":   primitive.IDIntegerLorenz,
		"integer-chen":     primitive.IDIntegerChen,
	}
	id, ok := byName[name]
	if !ok {
		return 0, fmt.Errorf("unknown primitive %q", name)
	}
	return id, nil
}

func readInput(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

func writeOutput(path string, data []byte) error {
	if path == "-" {
		_, err := os.Stdout.Write(data)
		return err
	}
	return os.WriteFile(path, data, 0o600)
}

// memBuffer adapts a fixed-size in-memory slice into an io.ReadWriteSeeker,
// letting the one-shot CLI reuse the seekable Stream type over a buffer
// that's already fully resident rather than a real file handle.
type memBuffer struct {
	data []byte
	pos  int64
}

func newMemBuffer(data []byte) *memBuffer {
	return &memBuffer{data: data}
}

func (m *memBuffer) Read(p []byte) (int, error) {
	if m.pos >= int64(len(m.data)) {
		return 0, io.EOF
	}
	n := copy(p, m.data[m.pos:])
	m.pos += int64(n)
	return n, nil
}

func (m *memBuffer) Write(p []byte) (int, error) {
	n := copy(m.data[m.pos:], p)
	m.pos += int64(n)
	if n < len(p) {
		return n, io.ErrShortWrite
	}
	return n, nil
}

func (m *memBuffer) Seek(offset int64, whence int) (int64, error) {
	var newPos int64
	switch whence {
	case io.SeekStart:
		newPos = offset
	case io.SeekCurrent:
		newPos = m.pos + offset
	case io.SeekEnd:
		newPos = int64(len(m.data)) + offset
	default:
		return 0, fmt.Errorf("invalid whence %d", whence)
	}
	if newPos < 0 {
		return 0, fmt.Errorf("negative position")
	}
	m.pos = newPos
	return newPos, nil
}
