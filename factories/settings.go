package factories

import (
	"dailyco/core"
	"dailyco/daily"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

// LogSettings selects the logger built for the CLI.
type LogSettings struct {
	Level  string `json:"level,omitempty" toml:"level" env:"DAILY_LOG_LEVEL"`
	Format string `json:"format,omitempty" toml:"format" env:"DAILY_LOG_FORMAT"`
}

// Settings is the top-level configuration of dailyctl. Values are layered:
// defaults, then the TOML file, then .env, then the process environment.
type Settings struct {
	// API configures the REST client.
	API daily.Config `json:"api" toml:"api"`
	// DomainID is required for self-signed tokens only.
	DomainID string      `json:"domain_id,omitempty" toml:"domain_id" env:"DAILY_DOMAIN_ID"`
	Log      LogSettings `json:"log" toml:"log"`
}

// DefaultSettings returns Settings pre-filled with client defaults.
func DefaultSettings() Settings {
	return Settings{
		API: *daily.DefaultConfig(),
		Log: LogSettings{Level: "warn", Format: "console"},
	}
}

// DefaultSettingsPath returns $XDG_CONFIG_HOME/dailyctl/config.toml, falling
// back to ~/.config. It returns "" when no home directory is known.
func DefaultSettingsPath() string {
	var dir string
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		dir = filepath.Join(xdg, "dailyctl")
	} else if home, err := os.UserHomeDir(); err == nil {
		dir = filepath.Join(home, ".config", "dailyctl")
	} else {
		return ""
	}
	return filepath.Join(dir, "config.toml")
}

// SettingsFromTOML overlays a TOML document on the defaults.
func SettingsFromTOML(data []byte) (Settings, error) {
	s := DefaultSettings()
	if _, err := toml.Decode(string(data), &s); err != nil {
		return DefaultSettings(), fmt.Errorf("settings: %w", err)
	}
	return s, nil
}

// LoadSettings reads settings from path, or from DefaultSettingsPath when
// path is empty. An explicit path must exist; the default one is optional.
// A .env file in the working directory is loaded when present.
func LoadSettings(path string) (Settings, error) {
	return loadSettings(path, ".env")
}

func loadSettings(path, dotenvPath string) (Settings, error) {
	s := DefaultSettings()

	explicit := path != ""
	if !explicit {
		path = DefaultSettingsPath()
	}
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if s, err = SettingsFromTOML(data); err != nil {
				return s, fmt.Errorf("settings: %q: %w", path, errors.Unwrap(err))
			}
		case explicit || !errors.Is(err, os.ErrNotExist):
			return s, fmt.Errorf("settings: read %q: %w", path, err)
		}
	}

	// godotenv never overrides variables already set in the environment.
	if dotenvPath != "" {
		if err := godotenv.Load(dotenvPath); err != nil && !errors.Is(err, os.ErrNotExist) {
			return s, fmt.Errorf("settings: load %q: %w", dotenvPath, err)
		}
	}

	if err := env.Parse(&s); err != nil {
		return s, fmt.Errorf("settings: environment: %w", err)
	}
	return s, nil
}

// BuildLogger creates the logger described by s.Log.
func BuildLogger(s Settings) (*core.Logger, error) {
	logger, err := core.NewLogger(s.Log.Level, s.Log.Format)
	if err != nil {
		return nil, fmt.Errorf("settings: %w", err)
	}
	return logger, nil
}

// BuildClient creates a Daily client from s.API.
func BuildClient(s Settings, logger *core.Logger) (*daily.Client, error) {
	if s.API.APIKey == "" {
		return nil, errors.New("settings: no API key; set DAILY_API_KEY or api.api_key")
	}
	cfg := s.API
	return daily.New(&cfg, logger)
}
