package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"golang.org/x/text/language"
)

// EnvPrefix is prepended to every key when reading the environment,
// so DB is read from SHIFTLOG_DB.
const EnvPrefix = "SHIFTLOG"

type Config struct {
	DBPath        string `mapstructure:"DB"`
	FallbackDir   string `mapstructure:"FALLBACK_DIR"`
	ForceFallback bool   `mapstructure:"FORCE_FALLBACK"`
	LogLevel      string `mapstructure:"LOG_LEVEL"`
	LogUseCases   bool   `mapstructure:"LOG_USECASES"`
	Locale        string `mapstructure:"LOCALE"`
}

// Load reads configuration from environment variables, then from an
// optional config.yaml in the data directory, then defaults.
func Load() (Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return Config{}, fmt.Errorf("resolving home directory: %w", err)
	}
	return LoadFrom(filepath.Join(home, ".shiftlog"))
}

// LoadFrom is Load with an explicit data directory.
func LoadFrom(dataDir string) (cfg Config, err error) {
	v := viper.New()
	v.SetDefault("DB", filepath.Join(dataDir, "shiftlog.db"))
	v.SetDefault("FALLBACK_DIR", filepath.Join(dataDir, "kv"))
	v.SetDefault("FORCE_FALLBACK", false)
	v.SetDefault("LOG_LEVEL", "warn")
	v.SetDefault("LOG_USECASES", false)
	v.SetDefault("LOCALE", "es")

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(dataDir)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("reading config file: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.DBPath) == "" && !c.ForceFallback {
		return errors.New("config: DB path is empty")
	}
	if strings.TrimSpace(c.FallbackDir) == "" {
		return errors.New("config: FALLBACK_DIR is empty")
	}
	if _, err := c.SlogLevel(); err != nil {
		return err
	}
	if _, err := c.Language(); err != nil {
		return err
	}
	return nil
}

// SlogLevel parses LogLevel (debug, info, warn, error).
func (c Config) SlogLevel() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("config: LOG_LEVEL %q: %w", c.LogLevel, err)
	}
	return lvl, nil
}

// Language maps Locale onto the two supported display languages.
func (c Config) Language() (language.Tag, error) {
	tag, err := language.Parse(c.Locale)
	if err != nil {
		return language.Und, fmt.Errorf("config: LOCALE %q: %w", c.Locale, err)
	}
	base, _ := tag.Base()
	switch base.String() {
	case "es":
		return language.Spanish, nil
	case "en":
		return language.English, nil
	}
	return language.Und, fmt.Errorf("config: LOCALE %q: want es or en", c.Locale)
}
