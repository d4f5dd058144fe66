package noise

import (
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"minimal", Config{Frequency: 0.1}, false},
		{"simplex", Config{Algorithm: Simplex, Frequency: 0.1, Octaves: 4, Mode: Set}, false},
		{"zero frequency", Config{}, true},
		{"unknown algorithm", Config{Algorithm: "worley", Frequency: 1}, true},
		{"unknown mode", Config{Mode: "multiply", Frequency: 1}, true},
		{"negative octaves", Config{Frequency: 1, Octaves: -1}, true},
		{"negative persistence", Config{Frequency: 1, Persistence: -0.5}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestDefaults(t *testing.T) {
	g := New(Config{Frequency: 0.5})
	cfg := g.Config()
	if cfg.Algorithm != Perlin {
		t.Errorf("expected perlin default, got %s", cfg.Algorithm)
	}
	if cfg.Mode != Add {
		t.Errorf("expected add default, got %s", cfg.Mode)
	}
	if cfg.Octaves != DefaultOctaves || cfg.Persistence != DefaultPersistence || cfg.Lacunarity != DefaultLacunarity {
		t.Errorf("unexpected octave defaults: %+v", cfg)
	}
}

func TestDeterministic(t *testing.T) {
	for _, alg := range []Algorithm{Perlin, Simplex} {
		t.Run(string(alg), func(t *testing.T) {
			cfg := Config{Algorithm: alg, Seed: 42, Frequency: 0.13, Amplitude: 3, Octaves: 3}
			a, b := New(cfg), New(cfg)
			for i := 0; i < 64; i++ {
				x, z := float32(i)*0.7-10, float32(i)*1.3-5
				if a.Sample(x, z) != b.Sample(x, z) {
					t.Fatalf("samples differ at (%v, %v)", x, z)
				}
			}
		})
	}
}

func TestSeedChangesOutput(t *testing.T) {
	for _, alg := range []Algorithm{Perlin, Simplex} {
		t.Run(string(alg), func(t *testing.T) {
			a := New(Config{Algorithm: alg, Seed: 1, Frequency: 0.37, Amplitude: 1})
			b := New(Config{Algorithm: alg, Seed: 2, Frequency: 0.37, Amplitude: 1})
			differs := false
			for i := 0; i < 64 && !differs; i++ {
				x, z := float32(i)*0.9+0.3, float32(i)*0.4+0.1
				differs = a.Sample(x, z) != b.Sample(x, z)
			}
			if !differs {
				t.Error("different seeds produced identical samples")
			}
		})
	}
}

func TestOctavesChangeOutput(t *testing.T) {
	for _, alg := range []Algorithm{Perlin, Simplex} {
		t.Run(string(alg), func(t *testing.T) {
			one := New(Config{Algorithm: alg, Seed: 11, Frequency: 0.31, Amplitude: 1, Octaves: 1})
			four := New(Config{Algorithm: alg, Seed: 11, Frequency: 0.31, Amplitude: 1, Octaves: 4})
			differs := false
			for i := 0; i < 64 && !differs; i++ {
				x, z := float32(i)*0.83+0.17, float32(i)*0.61+0.29
				differs = one.Sample(x, z) != four.Sample(x, z)
			}
			if !differs {
				t.Error("octave count had no effect on samples")
			}
		})
	}
}

func TestApplyModes(t *testing.T) {
	add := New(Config{Algorithm: Simplex, Seed: 7, Frequency: 0.21, Amplitude: 2})
	set := New(Config{Algorithm: Simplex, Seed: 7, Frequency: 0.21, Amplitude: 2, Mode: Set})

	x, z := float32(1.5), float32(-2.25)
	s := add.Sample(x, z)
	if got := add.Apply(10, x, z); got != 10+s {
		t.Errorf("add Apply() = %v, want %v", got, 10+s)
	}
	if got := set.Apply(10, x, z); got != s {
		t.Errorf("set Apply() = %v, want %v", got, s)
	}
}

func TestZeroAmplitude(t *testing.T) {
	g := New(Config{Seed: 3, Frequency: 0.5})
	if got := g.Apply(4, 1.3, 2.7); got != 4 {
		t.Errorf("zero amplitude should leave height unchanged, got %v", got)
	}
}
