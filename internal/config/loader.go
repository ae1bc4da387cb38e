package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// envPrefix scopes every environment override the engine recognises.
const envPrefix = "SENTINEL"

// newViper returns a Viper instance wired for the engine: YAML files, the
// SENTINEL_ prefix, and a "." → "_" replacer so "database.host" answers to
// SENTINEL_DATABASE_HOST.
func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	return v
}

// Load reads the YAML file at configPath, layers SENTINEL_* environment
// overrides on top, fills defaults and validates.
func Load(configPath string) (*Config, error) {
	v := newViper()
	v.SetConfigFile(configPath)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("config: read %q: %w", configPath, err)
	}
	return finalize(v)
}

// LoadFromEnv assembles a Config from SENTINEL_* environment variables alone.
// Container deployments that trigger the engine from an external scheduler
// usually skip the file entirely and use this path.
func LoadFromEnv() (*Config, error) {
	return finalize(newViper())
}

func finalize(v *viper.Viper) (*Config, error) {
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	ApplyDefaults(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}
	return cfg, nil
}

// MustLoad panics when Load fails.  For main(), where a broken config is
// always fatal anyway.
func MustLoad(configPath string) *Config {
	cfg, err := Load(configPath)
	if err != nil {
		panic(fmt.Sprintf("config: %v", err))
	}
	return cfg
}

//Personal.AI order the ending
