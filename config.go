package daylog

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned for configuration values the logger cannot use.
var ErrInvalidConfig = errors.New("invalid logger configuration")

// Config defines the logger configuration parameters.
// All fields can be loaded from JSON, TOML or YAML configuration files.
type Config struct {
	Directory    string `json:"directory" toml:"directory" yaml:"directory"`             // Directory holding the daily log files, created if missing
	Level        Level  `json:"level" toml:"level" yaml:"level"`                         // Minimum level written: trace, debug, info, warn, error
	StackCapture string `json:"stack_capture" toml:"stack_capture" yaml:"stack_capture"` // frames, text or none
	SyncWrites   bool   `json:"sync_writes" toml:"sync_writes" yaml:"sync_writes"`       // fsync after every entry in addition to flushing
}

// DefaultConfig returns the configuration used by EnsureInitialized and for unset fields.
func DefaultConfig() *Config {
	return &Config{
		Directory:    "./logs",
		Level:        LevelInfo,
		StackCapture: StackFrames,
		SyncWrites:   false,
	}
}

// Validate reports the first unusable value in cfg.
func (c *Config) Validate() error {
	if c.Directory == "" {
		return fmt.Errorf("%w: empty directory", ErrInvalidConfig)
	}
	if !c.Level.valid() {
		return fmt.Errorf("%w: level %d out of range", ErrInvalidConfig, int64(c.Level))
	}
	switch c.StackCapture {
	case StackFrames, StackText, StackNone:
	default:
		return fmt.Errorf("%w: unknown stack_capture %q", ErrInvalidConfig, c.StackCapture)
	}
	return nil
}

// mergeConfig fills the zero-valued fields of cfg from DefaultConfig.
func mergeConfig(cfg *Config) *Config {
	defaultConfig := DefaultConfig()
	if cfg == nil {
		return defaultConfig
	}
	return &Config{
		Directory:    getConfigValue(defaultConfig.Directory, cfg.Directory),
		Level:        getConfigValue(defaultConfig.Level, cfg.Level),
		StackCapture: getConfigValue(defaultConfig.StackCapture, strings.ToLower(cfg.StackCapture)),
		SyncWrites:   cfg.SyncWrites,
	}
}

// getConfigValue returns defaultVal if cfgVal equals the zero value for type T,
// otherwise returns cfgVal.
func getConfigValue[T comparable](defaultVal, cfgVal T) T {
	var zero T
	if cfgVal == zero {
		return defaultVal
	}
	return cfgVal
}

// LoadConfig reads a configuration file. The format is chosen by extension:
// .toml, or .yaml/.yml. Unknown keys are rejected.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	cfg := &Config{}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(cfg); err != nil {
			return nil, fmt.Errorf("failed to parse TOML config %s: %w", path, err)
		}
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("failed to parse YAML config %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("%w: unsupported config file extension %q", ErrInvalidConfig, ext)
	}
	return cfg, nil
}
