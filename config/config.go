// Package config loads mole-strike settings from defaults, a YAML file and
// MOLE_* environment variables, in that order.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/mole-strike/constants"
)

// EnvPrefix is prepended to every environment override.
const EnvPrefix = "MOLE_"

// Storage backends.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

// Config contains all mole-strike settings.
type Config struct {
	Game    GameConfig    `yaml:"game"`
	Storage StorageConfig `yaml:"storage"`
	Audio   AudioConfig   `yaml:"audio"`
	Logging LoggingConfig `yaml:"logging"`
}

// GameConfig controls the board and timing policy.
type GameConfig struct {
	// HoldMS is how long a mole stays up, adjustable in play with +/-.
	HoldMS int `yaml:"hold_ms" env:"HOLD_MS"`

	Rows int `yaml:"rows" env:"ROWS"`
	Cols int `yaml:"cols" env:"COLS"`

	// RepeatRetries is the number of resamples spent avoiding the previous cell.
	RepeatRetries int `yaml:"repeat_retries" env:"REPEAT_RETRIES"`

	// RecordStopped lets a manually stopped session set a new best.
	RecordStopped bool `yaml:"record_stopped" env:"RECORD_STOPPED"`
}

// StorageConfig selects where the best score lives.
type StorageConfig struct {
	// Backend is "file" (one file per slot) or "sqlite".
	Backend string `yaml:"backend" env:"STORE"`
	DataDir string `yaml:"data_dir" env:"DATA_DIR"`
}

// AudioConfig toggles sound effects.
type AudioConfig struct {
	Enabled bool `yaml:"enabled" env:"SOUND"`
}

// LoggingConfig toggles the debug log file.
type LoggingConfig struct {
	Debug bool `yaml:"debug" env:"DEBUG"`
}

// Default returns a Config with the standard game settings.
func Default() *Config {
	return &Config{
		Game: GameConfig{
			HoldMS:        int(constants.DefaultHold / time.Millisecond),
			Rows:          constants.DefaultRows,
			Cols:          constants.DefaultCols,
			RepeatRetries: constants.DefaultRepeatRetries,
		},
		Storage: StorageConfig{
			Backend: BackendFile,
			DataDir: DefaultDataDir(),
		},
		Audio: AudioConfig{
			Enabled: true,
		},
	}
}

// DefaultDataDir returns ~/.mole-strike, or .mole-strike when the home directory is unknown.
func DefaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".mole-strike"
	}
	return filepath.Join(home, ".mole-strike")
}

// DefaultPath returns the config file consulted when no path is given.
func DefaultPath() string {
	return filepath.Join(DefaultDataDir(), "config.yaml")
}

// Load loads configuration: defaults -> YAML file -> environment, then validates.
// An empty path means DefaultPath, which may be absent; an explicit path must exist.
func Load(path string) (*Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}

	fileCfg, err := LoadFromFile(path)
	switch {
	case err == nil:
		cfg = fileCfg
	case !explicit && errors.Is(err, fs.ErrNotExist):
	default:
		return nil, fmt.Errorf("loading config file: %w", err)
	}

	if err := ApplyEnv(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFromFile loads configuration from a specific YAML file over the defaults.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}
	return cfg, nil
}

// ApplyEnv overrides cfg fields from MOLE_* environment variables.
func ApplyEnv(cfg *Config) error {
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	hold := c.Hold()
	if hold < constants.MinHold || hold > constants.MaxHold {
		return fmt.Errorf("hold_ms must be between %d and %d, got %d",
			constants.MinHold/time.Millisecond, constants.MaxHold/time.Millisecond, c.Game.HoldMS)
	}
	if c.Game.Rows <= 0 || c.Game.Cols <= 0 {
		return fmt.Errorf("rows and cols must be positive, got %dx%d", c.Game.Rows, c.Game.Cols)
	}
	if c.Game.Rows*c.Game.Cols > constants.MaxGridCells {
		return fmt.Errorf("grid %dx%d exceeds %d cells", c.Game.Rows, c.Game.Cols, constants.MaxGridCells)
	}
	if c.Game.RepeatRetries < 0 {
		return fmt.Errorf("repeat_retries must be non-negative, got %d", c.Game.RepeatRetries)
	}
	switch c.Storage.Backend {
	case BackendFile, BackendSQLite:
	default:
		return fmt.Errorf("invalid storage backend: %s (valid: %s, %s)", c.Storage.Backend, BackendFile, BackendSQLite)
	}
	if c.Storage.DataDir == "" {
		return fmt.Errorf("data_dir is required")
	}
	return nil
}

// Hold returns the configured hold duration.
func (c *Config) Hold() time.Duration {
	return time.Duration(c.Game.HoldMS) * time.Millisecond
}

// YAML renders the configuration as a YAML document.
func (c *Config) YAML() (string, error) {
	out, err := yaml.Marshal(c)
	if err != nil {
		return "", fmt.Errorf("encoding config: %w", err)
	}
	return string(out), nil
}
