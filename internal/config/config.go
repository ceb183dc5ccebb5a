// Package config loads happymeter settings from flags, environment,
// an optional .env file and an optional config.yaml.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	EnvLocal      = "local"
	EnvProduction = "production"

	envPrefix = "HAPPYMETER"
)

var ErrUnknownEnv = errors.New("unknown environment")

// Config holds the runtime settings.
type Config struct {
	Env           string `mapstructure:"env"`       // local or production; selects the logger flavor
	QuestionsFile string `mapstructure:"questions"` // JSON or YAML corpus; empty uses the built-in questions
	LogFile       string `mapstructure:"log_file"`  // empty uses the default state path
	NoChime       bool   `mapstructure:"no_chime"`
	Seed          uint64 `mapstructure:"seed"` // 0 picks a random seed
}

// Production reports whether the production logger should be used.
func (c *Config) Production() bool {
	return c.Env == EnvProduction
}

// Option configures Load.
type Option func(*loader)

type loader struct {
	dotenv     []string
	configDirs []string
}

// WithDotenv sets the .env files read before the environment is consulted.
// Missing files are ignored.
func WithDotenv(files ...string) Option {
	return func(l *loader) { l.dotenv = files }
}

// WithConfigDirs sets the directories searched for config.yaml.
func WithConfigDirs(dirs ...string) Option {
	return func(l *loader) { l.configDirs = dirs }
}

// Load reads configuration. Precedence, highest first: flags that were set,
// HAPPYMETER_* environment variables (including .env), config.yaml, defaults.
// flags may be nil.
func Load(flags *pflag.FlagSet, opts ...Option) (*Config, error) {
	l := &loader{
		dotenv:     []string{".env"},
		configDirs: defaultConfigDirs(),
	}
	for _, opt := range opts {
		opt(l)
	}

	for _, f := range l.dotenv {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", f, err)
		}
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	for _, dir := range l.configDirs {
		v.AddConfigPath(dir)
	}

	v.SetDefault("env", EnvLocal)
	v.SetDefault("questions", "")
	v.SetDefault("log_file", "")
	v.SetDefault("no_chime", false)
	v.SetDefault("seed", 0)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for _, name := range []string{"env", "questions", "log-file", "no-chime", "seed"} {
			f := flags.Lookup(name)
			if f == nil {
				continue
			}
			if err := v.BindPFlag(strings.ReplaceAll(name, "-", "_"), f); err != nil {
				return nil, fmt.Errorf("bind flag %s: %w", name, err)
			}
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error loading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	switch cfg.Env {
	case EnvLocal, EnvProduction:
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownEnv, cfg.Env)
	}

	return &cfg, nil
}

func defaultConfigDirs() []string {
	dirs := []string{"./config"}

	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return dirs
		}
		configHome = filepath.Join(home, ".config")
	}
	return append(dirs, filepath.Join(configHome, "happymeter"))
}
