// Package config loads gitpath settings from a YAML file, GITPATH_*
// environment variables and command-line flags, in increasing order of
// precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/dendrascience/gitpath/objstore"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	AppName   = "gitpath"
	EnvPrefix = "GITPATH"
)

// DefaultConfigPath is searched after the working directory.
var DefaultConfigPath = filepath.Join(homeDir(), ".config", AppName)

// Config stores all configuration of the application.
type Config struct {
	Hash    HashConfig    `mapstructure:"hash"`
	Objects ObjectsConfig `mapstructure:"objects"`
	Verify  VerifyConfig  `mapstructure:"verify"`
	Log     LogConfig     `mapstructure:"log"`
}

type HashConfig struct {
	Seed uint32 `mapstructure:"seed"`
}

type ObjectsConfig struct {
	Dir    string `mapstructure:"dir"`
	Layout string `mapstructure:"layout"`
}

type VerifyConfig struct {
	Workers int `mapstructure:"workers"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

// FlagKeys maps configuration keys to the flag names that override them.
var FlagKeys = map[string]string{
	"hash.seed":      "seed",
	"objects.dir":    "objects",
	"objects.layout": "layout",
	"verify.workers": "workers",
	"log.level":      "log-level",
}

// Load reads configuration from configPath, or from gitpath.yaml in the
// working directory or DefaultConfigPath when configPath is empty. A missing
// file in the search path is not an error; a missing explicit file is. Flags
// in flags named by FlagKeys override the file and environment when set.
func Load(configPath string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.AddConfigPath(".")
		v.AddConfigPath(DefaultConfigPath)
		v.SetConfigName(AppName)
		v.SetConfigType("yaml")
	}

	v.SetDefault("hash.seed", 0)
	v.SetDefault("objects.dir", filepath.Join(".git", "objects"))
	v.SetDefault("objects.layout", objstore.LayoutFanout.String())
	v.SetDefault("verify.workers", runtime.NumCPU())
	v.SetDefault("log.level", zerolog.InfoLevel.String())

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_")) // objects.layout becomes GITPATH_OBJECTS_LAYOUT

	if flags != nil {
		for key, name := range FlagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("failed to bind flag %s: %w", name, err)
				}
			}
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks values that have a fixed set of choices.
func (c *Config) Validate() error {
	if _, err := objstore.ParseLayout(c.Objects.Layout); err != nil {
		return fmt.Errorf("objects.layout: %w", err)
	}
	if _, err := zerolog.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	return nil
}

// Layout returns the parsed objects.layout.
func (c *Config) Layout() objstore.Layout {
	l, _ := objstore.ParseLayout(c.Objects.Layout)
	return l
}

func homeDir() string {
	if home, err := os.UserHomeDir(); err == nil {
		return home
	}
	if cwd, err := os.Getwd(); err == nil {
		return cwd
	}
	return os.TempDir()
}
