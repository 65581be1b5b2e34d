package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// DemoConfig contains all configuration for the demo runner.
type DemoConfig struct {
	Pool    PoolConfig    `mapstructure:"pool"`
	Demo    RunConfig     `mapstructure:"demo"`
	Logging LoggingConfig `mapstructure:"logging"`
	Metrics MetricsConfig `mapstructure:"metrics"`
}

// PoolConfig contains worker pool configuration.
type PoolConfig struct {
	Workers int `mapstructure:"workers"`
}

// RunConfig contains the demo workload configuration.
type RunConfig struct {
	Tasks int `mapstructure:"tasks"`
}

// LoggingConfig contains logging-related configuration.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// MetricsConfig contains the metrics endpoint configuration. An empty addr
// disables the endpoint.
type MetricsConfig struct {
	Addr string `mapstructure:"addr"`
}

// LoadDemo loads the demo configuration from the given path. If configPath is
// empty, it looks for demo.yaml in the config/ directory. Environment
// variables with THREADPOOL_ prefix override config file values.
func LoadDemo(configPath string) (*DemoConfig, error) {
	v := viper.New()

	v.SetDefault("pool.workers", 4)
	v.SetDefault("demo.tasks", 100)
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "text")
	v.SetDefault("metrics.addr", "")

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("demo")
		v.SetConfigType("yaml")
		v.AddConfigPath("./config")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	v.SetEnvPrefix("THREADPOOL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg DemoConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if cfg.Pool.Workers < 1 {
		return nil, fmt.Errorf("pool.workers must be at least 1, got %d", cfg.Pool.Workers)
	}
	if cfg.Demo.Tasks < 0 {
		return nil, fmt.Errorf("demo.tasks must not be negative, got %d", cfg.Demo.Tasks)
	}

	return &cfg, nil
}
