package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	configDir  = ".coach"
	configName = "config"
	configType = "toml"
	envPrefix  = "COACH"

	KeyBaseURL    = "api.base_url"
	KeyTimeout    = "api.timeout"
	KeyPlatform   = "platform"
	KeySecretsDir = "storage.secrets_dir"
	KeyWebPath    = "storage.web_path"
	KeyLogLevel   = "log.level"
	KeyLogFormat  = "log.format"

	DefaultBaseURL = "http://127.0.0.1:8001/api"
	DefaultTimeout = 30 * time.Second
)

type Config struct {
	BaseURL    string
	Timeout    time.Duration
	Platform   string
	SecretsDir string
	WebPath    string
	LogLevel   string
	LogFormat  string
}

// Load reads ~/.coach/config.toml when present and applies COACH_* environment overrides,
// e.g. COACH_API_BASE_URL for api.base_url.
func Load(cfg *viper.Viper) (Config, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return Config{}, fmt.Errorf("resolve home directory: %w", err)
	}

	cfg.SetConfigName(configName)
	cfg.SetConfigType(configType)
	cfg.AddConfigPath(filepath.Join(homeDir, configDir))
	cfg.SetEnvPrefix(envPrefix)
	cfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	cfg.AutomaticEnv()

	cfg.SetDefault(KeyBaseURL, DefaultBaseURL)
	cfg.SetDefault(KeyTimeout, DefaultTimeout)
	cfg.SetDefault(KeyPlatform, "native")
	cfg.SetDefault(KeySecretsDir, filepath.Join(homeDir, configDir, "secrets"))
	cfg.SetDefault(KeyWebPath, filepath.Join(homeDir, configDir, "local_storage.toml"))
	cfg.SetDefault(KeyLogLevel, "warn")
	cfg.SetDefault(KeyLogFormat, "console")

	if err := cfg.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	loaded := Config{
		BaseURL:    strings.TrimSpace(cfg.GetString(KeyBaseURL)),
		Timeout:    cfg.GetDuration(KeyTimeout),
		Platform:   strings.TrimSpace(cfg.GetString(KeyPlatform)),
		SecretsDir: expandHome(cfg.GetString(KeySecretsDir), homeDir),
		WebPath:    expandHome(cfg.GetString(KeyWebPath), homeDir),
		LogLevel:   cfg.GetString(KeyLogLevel),
		LogFormat:  cfg.GetString(KeyLogFormat),
	}

	if loaded.BaseURL == "" {
		return Config{}, errors.New("api base url is empty")
	}
	if loaded.Timeout <= 0 {
		return Config{}, fmt.Errorf("api timeout must be positive, got %s", loaded.Timeout)
	}

	return loaded, nil
}

func expandHome(path, homeDir string) string {
	path = strings.TrimSpace(path)
	if path == "~" {
		return homeDir
	}
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(homeDir, path[2:])
	}
	return filepath.Clean(path)
}
