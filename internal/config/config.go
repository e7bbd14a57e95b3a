// Package config loads the CLI configuration from flags, an optional
// config file and environment variables, in that order of precedence.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type Config struct {
	LogLevel string      `mapstructure:"log_level"`
	Seed     int64       `mapstructure:"seed"`
	Bench    BenchConfig `mapstructure:"bench"`
}

type BenchConfig struct {
	Size  int `mapstructure:"size"`
	Iters int `mapstructure:"iters"`
}

type LoadOptions struct {
	Cmd        flagBinder
	ConfigFile string
	Defaults   Config
}

type flagBinder interface {
	Flags() *pflag.FlagSet
}

func DefaultConfig() Config {
	return Config{
		LogLevel: "info",
		Seed:     1,
		Bench: BenchConfig{
			Size:  64,
			Iters: 10,
		},
	}
}

func RegisterFlags(fs *pflag.FlagSet, defaults Config) {
	fs.String("log-level", defaults.LogLevel, "Log level (debug|info|warn|error)")
	fs.Int64("seed", defaults.Seed, "Random seed for sampled arrays")
	fs.Int("bench-size", defaults.Bench.Size, "Square matrix size used by bench")
	fs.Int("bench-iters", defaults.Bench.Iters, "Iterations per bench run")
}

func Load(opts LoadOptions) (Config, error) {
	v := viper.New()

	setDefaults(v, opts.Defaults)
	if opts.Cmd != nil {
		if err := v.BindPFlags(opts.Cmd.Flags()); err != nil {
			return Config{}, fmt.Errorf("bind flags: %w", err)
		}
	}
	registerAliases(v)

	v.SetEnvPrefix("NDVEC")
	replacer := strings.NewReplacer("-", "_", ".", "_")
	v.SetEnvKeyReplacer(replacer)
	v.AutomaticEnv()

	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	} else {
		v.SetConfigName("ndvec")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return Config{}, fmt.Errorf("read config file: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper, c Config) {
	v.SetDefault("log_level", c.LogLevel)
	v.SetDefault("seed", c.Seed)
	v.SetDefault("bench.size", c.Bench.Size)
	v.SetDefault("bench.iters", c.Bench.Iters)
}

func registerAliases(v *viper.Viper) {
	v.RegisterAlias("log_level", "log-level")
	v.RegisterAlias("bench.size", "bench-size")
	v.RegisterAlias("bench.iters", "bench-iters")
}
