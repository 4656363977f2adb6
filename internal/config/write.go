package config

import (
	"os"
	"path/filepath"

	"github.com/keyup-sh/keyup/internal/errors"
	"gopkg.in/yaml.v3"
)

// GlobalPath returns the path of the global config file, whether or not it exists.
func GlobalPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to determine home directory",
			"Set the HOME environment variable")
	}
	return filepath.Join(home, GlobalConfigDir, GlobalConfigFile), nil
}

// Write marshals cfg to YAML and writes it to path, creating parent directories.
func Write(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to serialize config",
			"")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.WrapWithCode(err, errors.ErrFS,
			"Failed to create config directory: "+filepath.Dir(path),
			"Check permissions on "+filepath.Dir(filepath.Dir(path)))
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.WrapWithCode(err, errors.ErrFS,
			"Failed to write config file: "+path,
			"Check directory permissions")
	}

	return nil
}
