package liquid

import (
	"os"
	"strconv"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// Config field names, matching the yaml and koanf keys
const (
	ConfigFieldErrorMode = "error_mode"
	ConfigFieldMaxDepth  = "max_depth"
	ConfigFieldLogLevel  = "log_level"
)

// Config holds file- or environment-provided settings.
//
// Example YAML:
//
//	error_mode: strict
//	max_depth: 50
//	log_level: debug
type Config struct {
	ErrorMode string `yaml:"error_mode" koanf:"error_mode"`
	MaxDepth  int    `yaml:"max_depth" koanf:"max_depth"`
	LogLevel  string `yaml:"log_level" koanf:"log_level"`
}

// DefaultConfig returns the default settings
func DefaultConfig() *Config {
	return &Config{
		ErrorMode: DefaultErrorMode.String(),
		MaxDepth:  DefaultMaxDepth,
		LogLevel:  DefaultLogLevel,
	}
}

// ParseConfig decodes YAML over the defaults and validates the result.
// Keys absent from data keep their default values.
func ParseConfig(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, NewConfigError(ErrMsgConfigParse, "", "", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadConfig reads and parses a YAML config file
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, NewConfigError(ErrMsgConfigRead, "", path, err)
	}
	return ParseConfig(data)
}

// Validate checks every field
func (c *Config) Validate() error {
	if _, err := ParseErrorMode(c.ErrorMode); err != nil {
		return err
	}
	if c.MaxDepth <= 0 {
		return NewConfigError(ErrMsgInvalidMaxDepth, ConfigFieldMaxDepth, strconv.Itoa(c.MaxDepth), nil)
	}
	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		return NewConfigError(ErrMsgInvalidLogLevel, ConfigFieldLogLevel, c.LogLevel, err)
	}
	return nil
}

// Level returns the parsed log level, or info when LogLevel is invalid
func (c *Config) Level() zapcore.Level {
	level, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return zapcore.InfoLevel
	}
	return level
}
