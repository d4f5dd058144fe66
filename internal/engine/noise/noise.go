// Package noise provides seeded, deterministic 2D noise generators used by
// the height modifiers.
package noise

import (
	"errors"
	"fmt"

	"github.com/aquilax/go-perlin"
	"github.com/chewxy/math32"
	"github.com/ojrac/opensimplex-go"
)

// Algorithm selects the underlying noise function.
type Algorithm string

// Supported algorithms.
const (
	Perlin  Algorithm = "perlin"
	Simplex Algorithm = "simplex"
)

// Mode decides how a sample combines with the incoming height.
type Mode string

// Combination modes.
const (
	Add Mode = "add"
	Set Mode = "set"
)

// Defaults applied to zero-valued fields.
const (
	DefaultOctaves     = 1
	DefaultPersistence = 0.5
	DefaultLacunarity  = 2.0
)

// Config describes one noise layer.
type Config struct {
	Algorithm   Algorithm  `json:"algorithm,omitempty" yaml:"algorithm,omitempty"`
	Seed        int64      `json:"seed" yaml:"seed"`
	Frequency   float32    `json:"frequency" yaml:"frequency"`
	Amplitude   float32    `json:"amplitude" yaml:"amplitude"`
	Octaves     int        `json:"octaves,omitempty" yaml:"octaves,omitempty"`
	Persistence float32    `json:"persistence,omitempty" yaml:"persistence,omitempty"` // amplitude falloff per octave
	Lacunarity  float32    `json:"lacunarity,omitempty" yaml:"lacunarity,omitempty"`   // frequency gain per octave
	Offset      [2]float32 `json:"offset,omitempty" yaml:"offset,omitempty"`           // added in noise space
	Mode        Mode       `json:"mode,omitempty" yaml:"mode,omitempty"`
}

// Validate checks the configuration.
func (c Config) Validate() error {
	var errs []error
	switch c.Algorithm {
	case "", Perlin, Simplex:
	default:
		errs = append(errs, fmt.Errorf("unknown algorithm %q", c.Algorithm))
	}
	switch c.Mode {
	case "", Add, Set:
	default:
		errs = append(errs, fmt.Errorf("unknown mode %q", c.Mode))
	}
	if !(c.Frequency > 0) || math32.IsInf(c.Frequency, 0) {
		errs = append(errs, fmt.Errorf("frequency must be positive, got %v", c.Frequency))
	}
	if c.Octaves < 0 {
		errs = append(errs, fmt.Errorf("octaves must not be negative, got %d", c.Octaves))
	}
	if c.Persistence < 0 {
		errs = append(errs, fmt.Errorf("persistence must not be negative, got %v", c.Persistence))
	}
	if c.Lacunarity < 0 {
		errs = append(errs, fmt.Errorf("lacunarity must not be negative, got %v", c.Lacunarity))
	}
	return errors.Join(errs...)
}

func (c Config) withDefaults() Config {
	if c.Algorithm == "" {
		c.Algorithm = Perlin
	}
	if c.Mode == "" {
		c.Mode = Add
	}
	if c.Octaves == 0 {
		c.Octaves = DefaultOctaves
	}
	if c.Persistence == 0 {
		c.Persistence = DefaultPersistence
	}
	if c.Lacunarity == 0 {
		c.Lacunarity = DefaultLacunarity
	}
	return c
}

// source is a raw 2D noise function returning values roughly in [-1, 1].
type source interface {
	sample(x, y float64) float64
}

type perlinSource struct {
	p *perlin.Perlin
}

func (s perlinSource) sample(x, y float64) float64 {
	return s.p.Noise2D(x, y)
}

// simplexSource sums octaves itself; opensimplex only provides a single layer.
type simplexSource struct {
	n           opensimplex.Noise
	octaves     int
	persistence float64
	lacunarity  float64
}

func (s simplexSource) sample(x, y float64) float64 {
	var sum float64
	amp, freq := 1.0, 1.0
	for i := 0; i < s.octaves; i++ {
		sum += amp * s.n.Eval2(x*freq, y*freq)
		amp *= s.persistence
		freq *= s.lacunarity
	}
	return sum
}

// Generator samples a configured noise layer. It holds only read-only
// tables after construction, so one Generator can be shared by goroutines.
type Generator struct {
	cfg Config
	src source
}

// New creates a Generator. cfg should have passed Validate.
func New(cfg Config) *Generator {
	cfg = cfg.withDefaults()

	var src source
	switch cfg.Algorithm {
	case Simplex:
		src = simplexSource{
			n:           opensimplex.New(cfg.Seed),
			octaves:     cfg.Octaves,
			persistence: float64(cfg.Persistence),
			lacunarity:  float64(cfg.Lacunarity),
		}
	default:
		// go-perlin divides each octave by alpha, so alpha is the inverse
		// of persistence.
		alpha := 1 / float64(cfg.Persistence)
		src = perlinSource{p: perlin.NewPerlin(alpha, float64(cfg.Lacunarity), cfg.Octaves, cfg.Seed)}
	}

	return &Generator{cfg: cfg, src: src}
}

// Config returns the configuration with defaults filled in.
func (g *Generator) Config() Config {
	return g.cfg
}

// Sample returns the amplitude-scaled noise at (x, z).
func (g *Generator) Sample(x, z float32) float32 {
	nx := float64(x)*float64(g.cfg.Frequency) + float64(g.cfg.Offset[0])
	nz := float64(z)*float64(g.cfg.Frequency) + float64(g.cfg.Offset[1])
	return float32(g.src.sample(nx, nz)) * g.cfg.Amplitude
}

// Apply combines the sample at (x, z) with height according to the mode.
func (g *Generator) Apply(height, x, z float32) float32 {
	s := g.Sample(x, z)
	if g.cfg.Mode == Set {
		return s
	}
	return height + s
}
