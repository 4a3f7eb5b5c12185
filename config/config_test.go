package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/cosmodist/config"
	"github.com/katalvlaran/cosmodist/cosmology"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestDefault(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 1, cfg.NCosmos())

	ps, err := cfg.Cosmologies()
	require.NoError(t, err)
	assert.Equal(t, []cosmology.Params{cosmology.DefaultParams()}, ps)
	assert.Equal(t, 0.43, cfg.Limit.ZMin)
	assert.Equal(t, 0.7, cfg.Limit.ZMax)
}

func TestLoad_TOML(t *testing.T) {
	path := writeFile(t, "run.toml", `
[cosmology]
hubble0   = [100, 100, 100]
omega_m0  = "0.27, 0.31 ,0.35"
omega_de0 = [0.73, 0.69, 0.65]

[limit]
z_min = 0.2
z_max = 0.5
s_max = 150
`)
	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.NCosmos())
	ps, err := cfg.Cosmologies()
	require.NoError(t, err)
	assert.Equal(t, cosmology.Params{Hubble0: 100, OmegaM0: 0.31, OmegaDE0: 0.69}, ps[1])
	assert.Equal(t, config.LimitConfig{ZMin: 0.2, ZMax: 0.5, SMax: 150}, cfg.Limit)
}

func TestLoad_TOMLScalarsAndDefaults(t *testing.T) {
	path := writeFile(t, "run.toml", `
[cosmology]
omega_m0  = 0.25
omega_de0 = 0.75
`)
	cfg, err := config.Load(path)
	require.NoError(t, err)

	ps, err := cfg.Cosmologies()
	require.NoError(t, err)
	assert.Equal(t, []cosmology.Params{{Hubble0: 100, OmegaM0: 0.25, OmegaDE0: 0.75}}, ps)
	assert.Equal(t, config.DefaultZMin, cfg.Limit.ZMin, "missing section keeps defaults")
}

func TestLoad_YAML(t *testing.T) {
	path := writeFile(t, "run.yaml", `
cosmology:
  hubble0: [70, 100]
  omega_m0: "0.3, 0.3"
  omega_de0: 0.7, 0.6
limit:
  z_min: 0.1
  z_max: 1.0
`)
	cfg, err := config.Load(path)
	require.NoError(t, err)

	ps, err := cfg.Cosmologies()
	require.NoError(t, err)
	require.Len(t, ps, 2)
	assert.Equal(t, cosmology.Params{Hubble0: 70, OmegaM0: 0.3, OmegaDE0: 0.7}, ps[0])
	assert.Equal(t, cosmology.Params{Hubble0: 100, OmegaM0: 0.3, OmegaDE0: 0.6}, ps[1])
	assert.Equal(t, 1.0, cfg.Limit.ZMax)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv(config.EnvOmegaM0, "0.2")
	t.Setenv(config.EnvOmegaDE0, "0.8")
	path := writeFile(t, "run.toml", "[cosmology]\nomega_m0 = 0.4\nomega_de0 = 0.6\n")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, config.FloatList{0.2}, cfg.Cosmology.OmegaM0)
	assert.Equal(t, config.FloatList{0.8}, cfg.Cosmology.OmegaDE0)

	t.Setenv(config.EnvHubble0, "fast")
	_, err = config.Load(path)
	assert.ErrorIs(t, err, config.ErrBadList)
}

func TestLoad_Errors(t *testing.T) {
	cases := []struct {
		name, file, body string
		want             error
	}{
		{"length mismatch", "a.toml", "[cosmology]\nhubble0 = [100, 100]\n", config.ErrLengthMismatch},
		{"bad list", "b.yaml", "cosmology:\n  omega_m0: 0.3, abc\n", config.ErrBadList},
		{"bad sequence", "c.yaml", "cosmology:\n  omega_m0: [0.3, abc]\n", config.ErrBadList},
		{"bad mapping", "c2.yaml", "cosmology:\n  omega_m0: {a: 1}\n", config.ErrBadList},
		{"inverted slab", "d.yaml", "limit:\n  z_min: 0.7\n  z_max: 0.4\n", config.ErrInvalidLimit},
		{"slab beyond table", "e.yml", "limit:\n  z_max: 3.5\n", config.ErrInvalidLimit},
		{"negative s_max", "f.toml", "[limit]\ns_max = -1\n", config.ErrInvalidLimit},
		{"format", "g.ini", "[COSMOLOGY]\n", config.ErrUnsupportedFormat},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := config.Load(writeFile(t, tc.file, tc.body))
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

// TestLoad_TOMLBadList: BurntSushi/toml reports Unmarshaler failures as a
// toml.ParseError carrying the message, without an error chain.
func TestLoad_TOMLBadList(t *testing.T) {
	for _, body := range []string{
		"[cosmology]\nomega_m0 = \"0.3, abc\"\n",
		"[cosmology]\nomega_m0 = [true]\n",
	} {
		_, err := config.Load(writeFile(t, "bad.toml", body))
		assert.ErrorContains(t, err, config.ErrBadList.Error())
	}
}

func TestLoadFromEnv(t *testing.T) {
	path := writeFile(t, "env.toml", "[limit]\nz_max = 0.9\n")
	t.Setenv(config.EnvConfig, path)

	cfg, err := config.LoadFromEnv()
	require.NoError(t, err)
	assert.Equal(t, 0.9, cfg.Limit.ZMax)

	t.Setenv(config.EnvConfig, filepath.Join(t.TempDir(), "missing.toml"))
	_, err = config.LoadFromEnv()
	assert.ErrorIs(t, err, config.ErrNotFound)
}

func TestParseFloatList(t *testing.T) {
	l, err := config.ParseFloatList(" 1, 2.5,3e-1 ")
	require.NoError(t, err)
	assert.Equal(t, config.FloatList{1, 2.5, 0.3}, l)

	_, err = config.ParseFloatList("")
	assert.ErrorIs(t, err, config.ErrBadList)
}
