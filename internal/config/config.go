// Package config handles keyup's optional global configuration file.
//
// A config file is never required: every setting has a default matching the
// behavior of a bare `keyup provision` run. When present, the file lives at
// ~/.config/keyup/config.yaml and can be overridden with the --config flag.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/keyup-sh/keyup/internal/errors"
	"github.com/spf13/viper"
)

const (
	// GlobalConfigDir is the directory for the global config, under $HOME.
	GlobalConfigDir = ".config/keyup"
	// GlobalConfigFile is the global config file name.
	GlobalConfigFile = "config.yaml"

	// DefaultKeyName is used when the user provides no key name.
	DefaultKeyName = "github-actions"
	// DefaultKeyType is the generated key algorithm.
	DefaultKeyType = "rsa"
	// DefaultBits is the RSA modulus length.
	DefaultBits = 4096
)

// Config holds keyup's settings.
type Config struct {
	// SSHDir is where key pairs and authorized_keys live. Supports ~ expansion.
	SSHDir string `mapstructure:"ssh_dir" yaml:"ssh_dir"`

	// DefaultName is the key name used when the prompt is left empty.
	DefaultName string `mapstructure:"default_name" yaml:"default_name"`

	// KeyType is the algorithm passed to ssh-keygen (rsa, ed25519, ecdsa).
	KeyType string `mapstructure:"key_type" yaml:"key_type"`

	// Bits is the key length for RSA keys.
	Bits int `mapstructure:"bits" yaml:"bits"`

	// Authorize controls whether the public key is appended to authorized_keys.
	Authorize bool `mapstructure:"authorize" yaml:"authorize"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		SSHDir:      "~/.ssh",
		DefaultName: DefaultKeyName,
		KeyType:     DefaultKeyType,
		Bits:        DefaultBits,
		Authorize:   true,
	}
}

// Load reads config from the specified path.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		if os.IsNotExist(err) {
			return nil, errors.WrapWithCode(err, errors.ErrConfig,
				"Config file not found",
				"Run 'keyup config init' to create one, or specify one with --config")
		}
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to read config file",
			"Check the file exists and is valid YAML")
	}

	return parseConfig(v, path)
}

// Find locates the config file using the search order:
// 1. Explicit path (from --config flag)
// 2. ~/.config/keyup/config.yaml
//
// Returns the path to the config file, or empty string if not found.
func Find(explicit string) (string, error) {
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			if os.IsNotExist(err) {
				return "", errors.WrapWithCode(err, errors.ErrConfig,
					"Specified config file not found: "+explicit,
					"Check the path is correct")
			}
			return "", errors.WrapWithCode(err, errors.ErrConfig,
				"Cannot access config file: "+explicit,
				"Check file permissions")
		}
		return explicit, nil
	}

	home, _ := os.UserHomeDir()
	if home != "" {
		globalConfig := filepath.Join(home, GlobalConfigDir, GlobalConfigFile)
		if _, err := os.Stat(globalConfig); err == nil {
			return globalConfig, nil
		}
	}

	return "", nil
}

// LoadOrDefault loads config from the found path, or returns defaults if not found.
func LoadOrDefault(explicit string) (*Config, error) {
	path, err := Find(explicit)
	if err != nil {
		return nil, err
	}

	if path == "" {
		return DefaultConfig(), nil
	}

	return Load(path)
}

// parseConfig converts viper config to our Config struct with defaults merged in.
func parseConfig(v *viper.Viper, path string) (*Config, error) {
	cfg := DefaultConfig()

	setDefaults(v)

	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Invalid config format",
			"Check the YAML syntax in "+path)
	}

	if cfg.SSHDir == "" {
		cfg.SSHDir = "~/.ssh"
	}

	return cfg, nil
}

// setDefaults registers defaults so a partial config file merges cleanly.
func setDefaults(v *viper.Viper) {
	v.SetDefault("ssh_dir", "~/.ssh")
	v.SetDefault("default_name", DefaultKeyName)
	v.SetDefault("key_type", DefaultKeyType)
	v.SetDefault("bits", DefaultBits)
	v.SetDefault("authorize", true)
}

// ExpandTilde expands a leading ~ or ~/ to the user's home directory.
// Paths without a tilde are returned unchanged.
func ExpandTilde(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to determine home directory",
			"Set the HOME environment variable")
	}

	if path == "~" {
		return home, nil
	}
	return filepath.Join(home, path[2:]), nil
}
