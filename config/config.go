package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/cosmodist/cosmology"
	"github.com/katalvlaran/cosmodist/table"
)

// EnvConfig names the variable LoadFromEnv reads the config path from.
const EnvConfig = "COSMODIST_CONFIG"

// Environment overrides for the cosmology lists.
const (
	EnvHubble0  = "COSMODIST_HUBBLE0"
	EnvOmegaM0  = "COSMODIST_OMEGA_M0"
	EnvOmegaDE0 = "COSMODIST_OMEGA_DE0"
)

// Default redshift limits of the reference CMASS North sample.
const (
	DefaultZMin = 0.43
	DefaultZMax = 0.7
)

// Config holds one pipeline run's cosmology sweep and limits.
type Config struct {
	Cosmology CosmologyConfig `toml:"cosmology" yaml:"cosmology"`
	Limit     LimitConfig     `toml:"limit" yaml:"limit"`
}

// CosmologyConfig holds index-aligned parameter lists: model i uses
// (Hubble0[i], OmegaM0[i], OmegaDE0[i]).
type CosmologyConfig struct {
	Hubble0  FloatList `toml:"hubble0" yaml:"hubble0"`
	OmegaM0  FloatList `toml:"omega_m0" yaml:"omega_m0"`
	OmegaDE0 FloatList `toml:"omega_de0" yaml:"omega_de0"`
}

// LimitConfig bounds the redshift slab and the largest separation of interest.
type LimitConfig struct {
	ZMin float64 `toml:"z_min" yaml:"z_min"`
	ZMax float64 `toml:"z_max" yaml:"z_max"`
	SMax float64 `toml:"s_max" yaml:"s_max"`
}

// Default returns a fresh Config with the Planck-like single cosmology and
// the reference redshift slab.
func Default() Config {
	return Config{
		Cosmology: CosmologyConfig{
			Hubble0:  FloatList{cosmology.DefaultHubble0},
			OmegaM0:  FloatList{cosmology.DefaultOmegaM0},
			OmegaDE0: FloatList{cosmology.DefaultOmegaDE0},
		},
		Limit: LimitConfig{ZMin: DefaultZMin, ZMax: DefaultZMax},
	}
}

// Load reads a TOML or YAML file over Default, applies environment
// overrides and validates the result.
func Load(path string) (Config, error) {
	path = os.ExpandEnv(path)

	cfg := Default()
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
		}
	case ".yaml", ".yml":
		raw, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
		}
	default:
		return Config{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// LoadFromEnv loads the file named by COSMODIST_CONFIG, or the first of the
// default locations that exists.
//
// Errors:
//   - ErrNotFound when neither is available.
func LoadFromEnv() (Config, error) {
	path := os.Getenv(EnvConfig)
	if path == "" {
		for _, p := range DefaultPaths() {
			if _, err := os.Stat(p); err == nil {
				path = p
				break
			}
		}
	}
	if path == "" {
		return Config{}, fmt.Errorf("%w: set %s or create cosmodist.toml", ErrNotFound, EnvConfig)
	}
	cfg, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("%w: %s", ErrNotFound, path)
	}

	return cfg, err
}

// DefaultPaths lists the locations LoadFromEnv probes, in order.
func DefaultPaths() []string {
	paths := []string{"./cosmodist.toml", "./configs/cosmodist.toml"}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "cosmodist", "config.toml"))
	}

	return paths
}

func (c *Config) applyEnv() error {
	for _, o := range []struct {
		key string
		dst *FloatList
	}{
		{EnvHubble0, &c.Cosmology.Hubble0},
		{EnvOmegaM0, &c.Cosmology.OmegaM0},
		{EnvOmegaDE0, &c.Cosmology.OmegaDE0},
	} {
		v, ok := os.LookupEnv(o.key)
		if !ok {
			continue
		}
		list, err := ParseFloatList(v)
		if err != nil {
			return fmt.Errorf("%s: %w", o.key, err)
		}
		*o.dst = list
	}

	return nil
}

// Validate checks list alignment and the redshift slab.
func (c Config) Validate() error {
	n := len(c.Cosmology.Hubble0)
	if n == 0 || len(c.Cosmology.OmegaM0) != n || len(c.Cosmology.OmegaDE0) != n {
		return fmt.Errorf("%w: %d/%d/%d", ErrLengthMismatch,
			n, len(c.Cosmology.OmegaM0), len(c.Cosmology.OmegaDE0))
	}
	l := c.Limit
	if l.ZMin < table.ZMin || l.ZMax > table.ZMax || l.ZMin >= l.ZMax {
		return fmt.Errorf("%w: need %g <= z_min < z_max <= %g, got [%g, %g]",
			ErrInvalidLimit, table.ZMin, table.ZMax, l.ZMin, l.ZMax)
	}
	if l.SMax < 0 {
		return fmt.Errorf("%w: s_max must be >= 0, got %g", ErrInvalidLimit, l.SMax)
	}

	return nil
}

// NCosmos returns the number of models in the sweep.
func (c Config) NCosmos() int { return len(c.Cosmology.Hubble0) }

// Cosmologies returns the sweep as parameter triples, in file order.
func (c Config) Cosmologies() ([]cosmology.Params, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	out := make([]cosmology.Params, c.NCosmos())
	for i := range out {
		out[i] = cosmology.Params{
			Hubble0:  c.Cosmology.Hubble0[i],
			OmegaM0:  c.Cosmology.OmegaM0[i],
			OmegaDE0: c.Cosmology.OmegaDE0[i],
		}
	}

	return out, nil
}
