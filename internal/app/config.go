package app

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Config holds runtime options for building the app.
type Config struct {
	// Dir is the storage root, e.g. $HOME/.plinth.
	Dir string `mapstructure:"dir" yaml:"dir"`
	// LogLevel is the CLI log verbosity (debug, info, warn, error).
	LogLevel string `mapstructure:"log-level" yaml:"log-level"`
	// Resources seed the default-settings table, one X-resource style
	// string per entry, e.g. "plinth.Hostname: example.org".
	Resources []string `mapstructure:"resources" yaml:"resources"`
}

// DefaultDir returns the storage root used when none is configured.
func DefaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not get user home directory: %w", err)
	}
	return filepath.Join(home, ".plinth"), nil
}

// ConfigPath returns the full path of the user configuration file.
func ConfigPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("could not get user config directory: %w", err)
	}
	return filepath.Join(dir, "plinth", "plinth.yaml"), nil
}

// LoadConfig resolves the configuration from, in rising precedence, the
// plinth.yaml config file, PLINTH_* environment variables and command flags.
func LoadConfig(cmd *cobra.Command) (Config, error) {
	var c Config
	v := viper.New()

	v.SetConfigName("plinth")
	v.SetConfigType("yaml")
	if userConfigPath, err := ConfigPath(); err == nil {
		v.AddConfigPath(filepath.Dir(userConfigPath))
	}
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		// A missing file is fine; anything else is a real problem.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return c, err
		}
	}

	v.AutomaticEnv()
	v.AllowEmptyEnv(true)
	v.SetEnvPrefix("plinth")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return c, err
	}

	if err := v.Unmarshal(&c); err != nil {
		return c, err
	}

	if c.Dir == "" {
		dir, err := DefaultDir()
		if err != nil {
			return c, err
		}
		c.Dir = dir
	}
	return c, nil
}

// WriteConfigFile writes c to the user configuration path, creating the
// directory if needed, and returns the path written.
func WriteConfigFile(c Config) (string, error) {
	path, err := ConfigPath()
	if err != nil {
		return "", err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("could not create config directory %s: %w", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return "", err
	}
	return path, nil
}
