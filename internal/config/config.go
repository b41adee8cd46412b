// Package config loads the small set of process-wide knobs this module
// exposes as YAML, the format the teacher codebase's own config surfaces
// use (sigs.k8s.io/yaml, which round-trips through encoding/json so struct
// tags stay familiar).
package config

import (
	"os"

	"sigs.k8s.io/yaml"

	"github.com/umitkrkmz/chaoticengine/internal/dispatch"
)

// Config holds the runtime knobs an operator may want to pin rather than
// leave to auto-detection: the SIMD tier (mainly for reproducing a wire
// format produced on different hardware, or for benchmarking a specific
// width) and buffer sizes a caller may pass to the stream and rng
// constructors in place of those packages' own defaults. Neither package
// reads a Config itself.
type Config struct {
	// Tier pins dispatch.Detect to "scalar", "w256", or "w512". Empty
	// string leaves auto-detection in place.
	Tier string `json:"tier,omitempty"`

	// StreamBlockSize, if nonzero, is the counter-mode block size a caller
	// should pass to stream.NewWithBlockSize instead of stream.BlockSize.
	StreamBlockSize int `json:"streamBlockSize,omitempty"`

	// RNGBufferSize, if nonzero, is the internal keystream buffer size a
	// caller should pass to rng.NewWithBufferSize/NewSeededWithBufferSize
	// instead of rng.DefaultBufferSize.
	RNGBufferSize int `json:"rngBufferSize,omitempty"`
}

// Load reads and parses a YAML config file at path.
func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

// ApplyTierOverride pins dispatch.Detect to the tier named by c.Tier, if
// any. An unrecognized tier name leaves auto-detection in place.
func (c *Config) ApplyTierOverride() {
	switch c.Tier {
	case "scalar":
		dispatch.SetOverride(dispatch.Scalar)
	case "w256":
		dispatch.SetOverride(dispatch.W256)
	case "w512":
		dispatch.SetOverride(dispatch.W512)
	}
}
