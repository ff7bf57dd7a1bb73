package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := Load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, Config{
		BaseURL:    DefaultBaseURL,
		Timeout:    DefaultTimeout,
		Platform:   "native",
		SecretsDir: filepath.Join(home, ".coach", "secrets"),
		WebPath:    filepath.Join(home, ".coach", "local_storage.toml"),
		LogLevel:   "warn",
		LogFormat:  "console",
	}, cfg)
}

func TestLoadReadsConfigFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	require.NoError(t, os.MkdirAll(filepath.Join(home, ".coach"), 0o755))

	contents := `platform = "web"

[api]
base_url = "https://coaching.example.com/api"
timeout = "5s"

[storage]
web_path = "~/state/local.toml"

[log]
level = "debug"
format = "json"
`
	require.NoError(t, os.WriteFile(filepath.Join(home, ".coach", "config.toml"), []byte(contents), 0o644))

	cfg, err := Load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "https://coaching.example.com/api", cfg.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
	assert.Equal(t, "web", cfg.Platform)
	assert.Equal(t, filepath.Join(home, "state", "local.toml"), cfg.WebPath)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	require.NoError(t, os.MkdirAll(filepath.Join(home, ".coach"), 0o755))
	require.NoError(t, os.WriteFile(
		filepath.Join(home, ".coach", "config.toml"),
		[]byte("[api]\nbase_url = \"https://file.example.com/api\"\n"),
		0o644,
	))
	t.Setenv("COACH_API_BASE_URL", "http://127.0.0.1:9999/api")
	t.Setenv("COACH_PLATFORM", "web")

	cfg, err := Load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "http://127.0.0.1:9999/api", cfg.BaseURL)
	assert.Equal(t, "web", cfg.Platform)
}

func TestLoadRejectsMalformedFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	require.NoError(t, os.MkdirAll(filepath.Join(home, ".coach"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(home, ".coach", "config.toml"), []byte("api = [\n"), 0o644))

	_, err := Load(viper.New())
	require.Error(t, err)
	assert.ErrorContains(t, err, "read config file")
}

func TestLoadRejectsNonPositiveTimeout(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("COACH_API_TIMEOUT", "0s")

	_, err := Load(viper.New())
	require.Error(t, err)
	assert.ErrorContains(t, err, "api timeout must be positive")
}
