// Package config manages the ducktyper configuration file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"gopkg.in/yaml.v3"

	"ducktyper/internal/errors"
	"ducktyper/internal/logging"
)

const (
	dirPermissions  = 0o755
	filePermissions = 0o644
	configVersion   = "1.0"
)

// Config represents the main configuration structure.
type Config struct {
	Version            string           `yaml:"version"`
	BaseDir            string           `yaml:"baseDir"`
	LogLevel           logging.LogLevel `yaml:"logLevel"`
	LogFormat          string           `yaml:"logFormat"`
	ChecksumAlgorithm  string           `yaml:"checksumAlgorithm"`
	ScanFilesPerSecond float64          `yaml:"scanFilesPerSecond"`
}

// validChecksumAlgorithms contains the digest names the operation layer
// accepts.
var validChecksumAlgorithms = []string{"sha256", "sha512", "sha1", "md5"}

// IsValidChecksumAlgorithm checks if the provided algorithm is supported.
func IsValidChecksumAlgorithm(algorithm string) bool {
	return slices.Contains(validChecksumAlgorithms, algorithm)
}

// Default returns the configuration used when no file exists: current
// working directory as base, info-level text logs, sha256 checksums.
func Default() *Config {
	wd, err := os.Getwd()
	if err != nil {
		wd = "."
	}
	return &Config{
		Version:           configVersion,
		BaseDir:           wd,
		LogLevel:          logging.LevelInfo,
		LogFormat:         "text",
		ChecksumAlgorithm: "sha256",
	}
}

// Manager handles configuration file operations.
type Manager struct {
	configPath string
}

// NewManager creates a new configuration manager.
func NewManager(configPath string) *Manager {
	return &Manager{configPath: configPath}
}

// Load loads the configuration from the file system. A missing or empty
// file yields the defaults.
func (m *Manager) Load() (*Config, error) {
	if _, err := os.Stat(m.configPath); os.IsNotExist(err) {
		return Default(), nil
	}

	data, err := os.ReadFile(m.configPath)
	if err != nil {
		return nil, errors.FromOS("read_config", m.configPath, err)
	}
	if len(data) == 0 {
		return Default(), nil
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.NewFormatError(m.configPath, "yaml", "cannot parse configuration", err)
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the configuration to the file system, creating the parent
// directory when missing.
func (m *Manager) Save(cfg *Config) error {
	if err := validate(cfg); err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(m.configPath), dirPermissions); err != nil {
		return errors.FromOS("write_config", m.configPath, err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return errors.NewFormatError(m.configPath, "yaml", "cannot serialize configuration", err)
	}

	if err := os.WriteFile(m.configPath, data, filePermissions); err != nil {
		return errors.FromOS("write_config", m.configPath, err)
	}
	return nil
}

func validate(cfg *Config) error {
	if cfg.ChecksumAlgorithm != "" && !IsValidChecksumAlgorithm(cfg.ChecksumAlgorithm) {
		return errors.NewValidationError(cfg.ChecksumAlgorithm, "checksum_algorithm",
			fmt.Sprintf("checksum algorithm must be one of: %v", validChecksumAlgorithms))
	}
	switch cfg.LogFormat {
	case "", "text", "json":
	default:
		return errors.NewValidationError(cfg.LogFormat, "log_format",
			"log format must be text or json")
	}
	if cfg.ScanFilesPerSecond < 0 {
		return errors.NewValidationError("", "scan_files_per_second",
			"scan rate must not be negative")
	}
	return nil
}
