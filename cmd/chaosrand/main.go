// Command chaosrand writes a stream of pseudo-random bytes to stdout (or a
// file) drawn from one of this module's chaotic primitives: a debugging and
// benchmarking counterpart to chaoscli that exercises the rng package
// instead of stream.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"

	"github.com/umitkrkmz/chaoticengine/internal/config"
	"github.com/umitkrkmz/chaoticengine/keyderiv"
	"github.com/umitkrkmz/chaoticengine/primitive"
	"github.com/umitkrkmz/chaoticengine/rng"
)

func main() {
	var (
		primName   = flag.String("primitive", "integer-lorenz", "keystream primitive (integer-tent, integer-logistic, integer-sine, integer-henon, integer-lorenz, integer-chen)")
		passphrase = flag.String("passphrase", "", "passphrase to derive a reproducible seed from (omit for OS entropy)")
		salt       = flag.String("salt", "chaosrand", "salt mixed into passphrase derivation")
		confPath   = flag.String("config", "", "optional YAML config overriding the dispatch tier and RNG buffer size")
		count      = flag.Int64("count", 1<<20, "number of random bytes to write")
		out        = flag.String("out", "-", "output path, or - for stdout")
	)
	flag.Parse()

	if err := run(*primName, *passphrase, *salt, *confPath, *count, *out); err != nil {
		fmt.Fprintln(os.Stderr, "chaosrand:", err)
		os.Exit(1)
	}
}

func run(primName, passphrase, salt, confPath string, count int64, outPath string) error {
	if count < 0 {
		return fmt.Errorf("-count must be >= 0")
	}
	id, err := lookupPrimitive(primName)
	if err != nil {
		return err
	}

	bufferSize := rng.DefaultBufferSize
	if confPath != "" {
		cfg, err := config.Load(confPath)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		cfg.ApplyTierOverride()
		if cfg.RNGBufferSize > 0 {
			bufferSize = cfg.RNGBufferSize
		}
	}

	r, err := newGenerator(id, passphrase, salt, bufferSize)
	if err != nil {
		return fmt.Errorf("opening rng: %w", err)
	}

	w, closeFn, err := openOutput(outPath)
	if err != nil {
		return err
	}
	defer closeFn()

	bw := bufio.NewWriter(w)
	chunk := make([]byte, 32*1024)
	for count > 0 {
		n := int64(len(chunk))
		if count < n {
			n = count
		}
		if err := r.Fill(chunk[:n]); err != nil {
			return fmt.Errorf("filling buffer: %w", err)
		}
		if _, err := bw.Write(chunk[:n]); err != nil {
			return fmt.Errorf("writing output: %w", err)
		}
		count -= n
	}
	return bw.Flush()
}

// newGenerator opens a seeded RNG when a passphrase is given, for
// reproducible output, or an OS-entropy-seeded one otherwise.
func newGenerator(id primitive.ID, passphrase, salt string, bufferSize int) (*rng.RNG, error) {
	if passphrase == "" {
		return rng.NewWithBufferSize(id, bufferSize)
	}
	key, iv := keyderiv.FromPassphrase(passphrase, []byte(salt))
	return rng.NewSeededWithBufferSize(id, key[:], iv[:], bufferSize)
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

func openOutput(path string) (*os.File, func(), error) {
	if path == "-" {
		return os.Stdout, func() {}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, err
	}
	return f, func() { f.Close() }, nil
}
