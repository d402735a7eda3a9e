// Package logging builds the zap logger used by the CLI and calculation engine.
package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rpgo/tco-parity/internal/calculation"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

var _ calculation.Logger = (*zap.SugaredLogger)(nil)

// Config contains logging configuration
type Config struct {
	// Level is the minimum log level (debug, info, warn, error)
	Level string `koanf:"level" json:"level"`

	// Format is the encoding, console or json
	Format string `koanf:"format" json:"format"`

	// Output is stdout, stderr or a file path
	Output string `koanf:"output" json:"output"`

	// Rotation of file output, in megabytes and days. Zero keeps lumberjack's defaults.
	MaxSizeMB  int `koanf:"max_size_mb" json:"max_size_mb"`
	MaxBackups int `koanf:"max_backups" json:"max_backups"`
	MaxAgeDays int `koanf:"max_age_days" json:"max_age_days"`
}

// DefaultConfig logs warnings and above to stderr in console format
func DefaultConfig() Config {
	return Config{Level: "warn", Format: "console", Output: "stderr"}
}

// SetDefaults fills empty fields from DefaultConfig
func (c *Config) SetDefaults() {
	d := DefaultConfig()
	if c.Level == "" {
		c.Level = d.Level
	}
	if c.Format == "" {
		c.Format = d.Format
	}
	if c.Output == "" {
		c.Output = d.Output
	}
}

// Validate checks the level and format
func (c Config) Validate() error {
	if _, err := zapcore.ParseLevel(c.Level); err != nil {
		return fmt.Errorf("invalid log level %q: %w", c.Level, err)
	}
	switch strings.ToLower(c.Format) {
	case "console", "json":
	default:
		return fmt.Errorf("unknown log format %q", c.Format)
	}
	if c.MaxSizeMB < 0 || c.MaxBackups < 0 || c.MaxAgeDays < 0 {
		return fmt.Errorf("log rotation limits must not be negative")
	}
	return nil
}

// New builds a logger from the configuration
func New(cfg Config) (*zap.Logger, error) {
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	level, _ := zapcore.ParseLevel(cfg.Level)

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	var encoder zapcore.Encoder
	if strings.EqualFold(cfg.Format, "json") {
		encoder = zapcore.NewJSONEncoder(encoderConfig)
	} else {
		encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
		encoder = zapcore.NewConsoleEncoder(encoderConfig)
	}

	var ws zapcore.WriteSyncer
	switch cfg.Output {
	case "stdout":
		ws = zapcore.Lock(os.Stdout)
	case "stderr":
		ws = zapcore.Lock(os.Stderr)
	default:
		if dir := filepath.Dir(cfg.Output); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("create log directory: %w", err)
			}
		}
		ws = zapcore.AddSync(&lumberjack.Logger{
			Filename:   cfg.Output,
			MaxSize:    cfg.MaxSizeMB,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAgeDays,
		})
	}

	return zap.New(zapcore.NewCore(encoder, ws, level)), nil
}

// Sugared builds a logger and returns its sugared form, which satisfies calculation.Logger
func Sugared(cfg Config) (*zap.SugaredLogger, error) {
	l, err := New(cfg)
	if err != nil {
		return nil, err
	}
	return l.Sugar(), nil
}
