package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/redpen/redpen/internal/diff"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
)

// DefaultConfigFileName is the config file name (without extension) searched for in $HOME/.redpen and the working directory.
const DefaultConfigFileName = "redpen"

// EnvPrefix prefixes environment overrides; diff.window is read from REDPEN_DIFF_WINDOW.
const EnvPrefix = "REDPEN"

// Config is redpen's effective configuration: defaults, then the config file, then REDPEN_* environment variables, then flags.
type Config struct {
	Diff   DiffConfig   `mapstructure:"diff" json:"diff"`
	Render RenderConfig `mapstructure:"render" json:"render"`
	Limits LimitsConfig `mapstructure:"limits" json:"limits"`
	Log    LogConfig    `mapstructure:"log" json:"log"`
}

type DiffConfig struct {
	Algorithm string `mapstructure:"algorithm" json:"algorithm"` // "window" or "myers".
	Window    int    `mapstructure:"window" json:"window"`
}

type RenderConfig struct {
	// Width wraps text output at this many columns. 0 disables wrapping.
	Width int `mapstructure:"width" json:"width"`

	// Color is "auto" (color when stdout is a terminal), "always", or "never".
	Color string `mapstructure:"color" json:"color"`
}

type LimitsConfig struct {
	// MaxInputBytes caps the size of each text input. 0 disables the cap.
	MaxInputBytes int64 `mapstructure:"max_input_bytes" json:"max_input_bytes"`
}

type LogConfig struct {
	File  string `mapstructure:"file" json:"file"`
	Level string `mapstructure:"level" json:"level"`
}

const (
	colorAuto   = "auto"
	colorAlways = "always"
	colorNever  = "never"
)

func newViper() *viper.Viper {
	v := viper.New()
	v.SetDefault("diff.algorithm", string(diff.AlgorithmWindow))
	v.SetDefault("diff.window", diff.DefaultWindow)
	v.SetDefault("render.width", 80)
	v.SetDefault("render.color", colorAuto)
	v.SetDefault("limits.max_input_bytes", 4<<20)
	v.SetDefault("log.file", "")
	v.SetDefault("log.level", "info")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// loadConfig reads cfgFile (or searches the default locations when it is empty) into v and returns the validated result.
//
// A missing config file in the default locations is not an error; a missing explicit cfgFile is.
func loadConfig(v *viper.Viper, cfgFile string) (Config, error) {
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".redpen"))
		}
		v.AddConfigPath(".")
		v.SetConfigName(DefaultConfigFileName)
		v.SetConfigType("yaml")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode configuration: %w", err)
	}
	if err := validateConfig(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func validateConfig(cfg Config) error {
	var errs []error
	if _, err := diff.ParseAlgorithm(cfg.Diff.Algorithm); err != nil {
		errs = append(errs, fmt.Errorf("diff.algorithm: %w", err))
	}
	if cfg.Diff.Window < 1 {
		errs = append(errs, fmt.Errorf("diff.window must be >= 1 (got %d)", cfg.Diff.Window))
	}
	if cfg.Render.Width < 0 {
		errs = append(errs, fmt.Errorf("render.width must be >= 0 (got %d)", cfg.Render.Width))
	}
	switch cfg.Render.Color {
	case colorAuto, colorAlways, colorNever:
	default:
		errs = append(errs, fmt.Errorf("render.color must be one of auto, always, never (got %q)", cfg.Render.Color))
	}
	if cfg.Limits.MaxInputBytes < 0 {
		errs = append(errs, fmt.Errorf("limits.max_input_bytes must be >= 0 (got %d)", cfg.Limits.MaxInputBytes))
	}
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(strings.ToLower(cfg.Log.Level))); err != nil {
		errs = append(errs, fmt.Errorf("log.level: %w", err))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// diffOptions assumes c has been validated.
func (c Config) diffOptions() diff.Options {
	alg, _ := diff.ParseAlgorithm(c.Diff.Algorithm)
	return diff.Options{Algorithm: alg, Window: c.Diff.Window}
}

func writeConfigJSON(w io.Writer, cfg Config) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(cfg)
}
