package config

import (
	"fmt"
	"strings"

	"github.com/goware/logger"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type Config struct {
	Directory string `mapstructure:"directory"`
	Tool      string `mapstructure:"tool"`
	LogLevel  string `mapstructure:"log_level"`
}

const (
	DirectoryField = "directory"
	ToolField      = "tool"
	LogLevelField  = "log_level"

	EnvPrefix = "MULTICALLER"

	DefaultDirectory = "target/ink"
	DefaultTool      = "cargo"
	DefaultLogLevel  = "warn"
)

// New returns a viper instance holding the defaults, reading
// MULTICALLER_* variables from the environment.
func New() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault(DirectoryField, DefaultDirectory)
	v.SetDefault(ToolField, DefaultTool)
	v.SetDefault(LogLevelField, DefaultLogLevel)
	return v
}

// BindFlags lets the --directory flag take precedence over the environment,
// when it was set on the command line.
func BindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	if f := flags.Lookup(DirectoryField); f != nil {
		if err := v.BindPFlag(DirectoryField, f); err != nil {
			return fmt.Errorf("unable to bind flag %q: %w", DirectoryField, err)
		}
	}
	return nil
}

func Load(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unable to decode config: %w", err)
	}
	// An empty directory is kept as given: artifacts are read from the working directory.
	if cfg.Tool == "" {
		cfg.Tool = DefaultTool
	}
	return cfg, nil
}

func (c Config) Level() (logger.Level, error) {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return logger.LogLevel_DEBUG, nil
	case "info":
		return logger.LogLevel_INFO, nil
	case "", "warn", "warning":
		return logger.LogLevel_WARN, nil
	case "error":
		return logger.LogLevel_ERROR, nil
	default:
		return logger.LogLevel_WARN, fmt.Errorf("unknown log level %q", c.LogLevel)
	}
}

func (c Config) Logger() logger.Logger {
	level, _ := c.Level()
	return logger.NewLogger(level)
}
