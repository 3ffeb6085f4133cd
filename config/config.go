// Package config loads game tuning from a TOML file with environment overrides
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/grid-snake/engine"
	"github.com/lixenwraith/grid-snake/parameter"
)

// ErrInvalid marks a configuration value outside its accepted range
var ErrInvalid = errors.New("config: invalid value")

// EnvPrefix prefixes every environment override
const EnvPrefix = "GRID_SNAKE_"

// Config is the full file layout
type Config struct {
	Game    GameConfig    `toml:"game"`
	Audio   AudioConfig   `toml:"audio"`
	Log     LogConfig     `toml:"log"`
	Metrics MetricsConfig `toml:"metrics"`
	Storage StorageConfig `toml:"storage"`
	Input   InputConfig   `toml:"input"`
}

// GameConfig tunes the simulation
type GameConfig struct {
	GridSize         int           `toml:"grid_size"`
	LevelDuration    time.Duration `toml:"level_duration"`
	BaseInterval     time.Duration `toml:"base_interval"`
	LevelStep        time.Duration `toml:"level_step"`
	FoodDecrement    time.Duration `toml:"food_decrement"`
	MinInterval      time.Duration `toml:"min_interval"`
	FoodPerLevel     int           `toml:"food_per_level"`
	BoostInterval    time.Duration `toml:"boost_interval"`
	BoostDuration    time.Duration `toml:"boost_duration"`
	GhostDuration    time.Duration `toml:"invulnerability_duration"`
	BonusPoints      int           `toml:"bonus_points"`
	PowerUpChance    float64       `toml:"powerup_chance"`
	SecondaryChance  float64       `toml:"secondary_chance"`
	SpawnRetryBudget int           `toml:"spawn_retry_budget"`
}

// AudioConfig controls the audio collaborator
type AudioConfig struct {
	Enabled bool    `toml:"enabled"`
	Volume  float64 `toml:"volume"` // 0.0-1.0
	Muted   bool    `toml:"muted"`
}

// LogConfig controls the log file
type LogConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
	File   string `toml:"file"` // Relative paths resolve against the data dir
}

// MetricsConfig enables the /metrics endpoint when Addr is set
type MetricsConfig struct {
	Addr string `toml:"addr"`
}

// StorageConfig locates persisted state
type StorageConfig struct {
	DataDir string `toml:"data_dir"`
}

// InputConfig points to an optional keymap override file
type InputConfig struct {
	Keymap string `toml:"keymap"`
}

// Default returns the canonical configuration
func Default() Config {
	return Config{
		Game: GameConfig{
			GridSize:         parameter.GridSize,
			LevelDuration:    parameter.LevelDuration,
			BaseInterval:     parameter.BaseTickInterval,
			LevelStep:        parameter.LevelIntervalStep,
			FoodDecrement:    parameter.FoodIntervalDecrement,
			MinInterval:      parameter.MinTickInterval,
			FoodPerLevel:     parameter.FoodPerLevel,
			BoostInterval:    parameter.BoostTickInterval,
			BoostDuration:    parameter.SpeedBoostDuration,
			GhostDuration:    parameter.InvulnerabilityDuration,
			BonusPoints:      parameter.PowerUpBonusPoints,
			PowerUpChance:    parameter.PowerUpSpawnChance,
			SecondaryChance:  parameter.FoodSecondaryChance,
			SpawnRetryBudget: parameter.SpawnRetryBudget,
		},
		Audio: AudioConfig{
			Enabled: true,
			Volume:  parameter.AudioMasterVolume,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
			File:   "grid-snake.log",
		},
		Storage: StorageConfig{
			DataDir: DefaultDataDir(),
		},
	}
}

// DefaultDataDir is the per-user config directory, or a dot directory when unavailable
func DefaultDataDir() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "grid-snake")
	}
	return ".grid-snake"
}

// Load decodes path over the defaults; a missing file yields the defaults
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Default(), fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Decode parses TOML data over the defaults
func Decode(data string) (Config, error) {
	cfg := Default()
	if _, err := toml.Decode(data, &cfg); err != nil {
		return Default(), fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

// ApplyEnv overrides fields from GRID_SNAKE_* environment variables
func (c *Config) ApplyEnv() error {
	return c.applyEnv(os.LookupEnv)
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	var errs []error
	get := func(name string) (string, bool) {
		v, ok := lookup(EnvPrefix + name)
		return strings.TrimSpace(v), ok && strings.TrimSpace(v) != ""
	}

	if v, ok := get("GRID_SIZE"); ok {
		if n, err := strconv.Atoi(v); err == nil {
			c.Game.GridSize = n
		} else {
			errs = append(errs, fmt.Errorf("%sGRID_SIZE: %w", EnvPrefix, err))
		}
	}
	if v, ok := get("AUDIO_ENABLED"); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Audio.Enabled = b
		} else {
			errs = append(errs, fmt.Errorf("%sAUDIO_ENABLED: %w", EnvPrefix, err))
		}
	}
	// Volume is given as 0-100
	if v, ok := get("MASTER_VOLUME"); ok {
		if n, err := strconv.Atoi(v); err == nil {
			c.Audio.Volume = min(max(float64(n)/100.0, 0), 1)
		} else {
			errs = append(errs, fmt.Errorf("%sMASTER_VOLUME: %w", EnvPrefix, err))
		}
	}
	if v, ok := get("LOG_LEVEL"); ok {
		c.Log.Level = v
	}
	if v, ok := get("LOG_FORMAT"); ok {
		c.Log.Format = v
	}
	if v, ok := get("METRICS_ADDR"); ok {
		c.Metrics.Addr = v
	}
	if v, ok := get("DATA_DIR"); ok {
		c.Storage.DataDir = v
	}
	if v, ok := get("KEYMAP"); ok {
		c.Input.Keymap = v
	}

	return errors.Join(errs...)
}

// Validate rejects nonsensical values
func (c *Config) Validate() error {
	g := c.Game
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
		}
	}

	check(g.GridSize >= parameter.MinGridSize, "grid_size %d below %d", g.GridSize, parameter.MinGridSize)
	check(g.MinInterval >= time.Millisecond, "min_interval %v below 1ms", g.MinInterval)
	check(g.BaseInterval >= g.MinInterval, "base_interval %v below min_interval %v", g.BaseInterval, g.MinInterval)
	check(g.BoostInterval >= time.Millisecond, "boost_interval %v below 1ms", g.BoostInterval)
	check(g.LevelDuration > 0, "level_duration must be positive")
	check(g.LevelStep >= 0, "level_step must not be negative")
	check(g.FoodDecrement >= 0, "food_decrement must not be negative")
	check(g.FoodPerLevel >= 1, "food_per_level %d below 1", g.FoodPerLevel)
	check(g.BoostDuration >= 0 && g.GhostDuration >= 0, "effect durations must not be negative")
	check(g.BonusPoints >= 0, "bonus_points must not be negative")
	check(g.PowerUpChance >= 0 && g.PowerUpChance <= 1, "powerup_chance %v outside [0,1]", g.PowerUpChance)
	check(g.SecondaryChance >= 0 && g.SecondaryChance <= 1, "secondary_chance %v outside [0,1]", g.SecondaryChance)
	check(g.SpawnRetryBudget >= 1, "spawn_retry_budget %d below 1", g.SpawnRetryBudget)
	check(c.Audio.Volume >= 0 && c.Audio.Volume <= 1, "volume %v outside [0,1]", c.Audio.Volume)

	return errors.Join(errs...)
}

// Options maps the game section onto engine tuning
func (c *Config) Options() engine.Options {
	opts := engine.DefaultOptions()
	g := c.Game

	opts.GridSize = g.GridSize
	opts.Level.Duration = g.LevelDuration
	opts.Level.BaseInterval = g.BaseInterval
	opts.Level.LevelStep = g.LevelStep
	opts.Level.FoodDecrement = g.FoodDecrement
	opts.Level.MinInterval = g.MinInterval
	opts.Level.FoodPerLevel = g.FoodPerLevel
	opts.BoostInterval = g.BoostInterval
	opts.Effects.SpeedBoost = g.BoostDuration
	opts.Effects.Invulnerability = g.GhostDuration
	opts.Effects.BonusPoints = g.BonusPoints
	opts.PowerUpChance = g.PowerUpChance
	opts.SecondaryChance = g.SecondaryChance
	opts.SpawnRetryBudget = g.SpawnRetryBudget
	return opts
}

// LogPath resolves the log file against the data dir
func (c *Config) LogPath() string {
	if c.Log.File == "" || filepath.IsAbs(c.Log.File) {
		return c.Log.File
	}
	return filepath.Join(c.Storage.DataDir, c.Log.File)
}
