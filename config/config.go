// Package config loads the settings of the experiment runner.
package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

// Environment variables read by FromEnv.
const (
	EnvConfigPath = "QMI_CONFIG"
	EnvQVMURL     = "QMI_QVM_URL"
	EnvLogLevel   = "QMI_LOG_LEVEL"
)

// DefaultFileName is looked up in the home directory when QMI_CONFIG is not
// set.
const DefaultFileName = ".qmi.toml"

// Config holds the runner settings.
type Config struct {
	QVMURL         string `toml:"qvm_url"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
	LogLevel       string `toml:"log_level"`
	RandomSeed     int64  `toml:"random_seed"`
	DevicesFile    string `toml:"devices_file"`
	Summary        bool   `toml:"summary"`
}

// Default returns the settings used when nothing is configured.
func Default() Config {
	return Config{
		QVMURL:   "http://127.0.0.1:5000",
		LogLevel: "warn",
	}
}

// Timeout returns the per-request timeout, zero meaning none.
func (c Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// Validate checks the settings.
func (c Config) Validate() error {
	if c.QVMURL == "" {
		return errors.New("qvm_url must be set")
	}

	if c.TimeoutSeconds < 0 {
		return errors.Errorf("timeout_seconds must not be negative, got %d", c.TimeoutSeconds)
	}

	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}

	return nil
}

// Load reads a TOML file on top of the defaults. Unknown keys are an error.
func Load(path string) (Config, error) {
	cfg := Default()

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, errors.Wrapf(err, "read config %s", path)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}

		return Config{}, errors.Errorf("config %s: unknown keys %s",
			path, strings.Join(keys, ", "))
	}

	return cfg, nil
}

// FromEnv resolves the settings from the environment. The file named by
// QMI_CONFIG must exist; the default file in the home directory is optional.
// QMI_QVM_URL and QMI_LOG_LEVEL override the file.
func FromEnv(getenv func(string) string) (Config, error) {
	cfg := Default()

	path, required := getenv(EnvConfigPath), true
	if path == "" {
		required = false

		if home := getenv("HOME"); home != "" {
			path = filepath.Join(home, DefaultFileName)
		}
	}

	if path != "" {
		loaded, err := Load(path)

		switch {
		case err == nil:
			cfg = loaded
		case required || !errors.Is(err, os.ErrNotExist):
			return Config{}, err
		}
	}

	if url := getenv(EnvQVMURL); url != "" {
		cfg.QVMURL = url
	}

	if level := getenv(EnvLogLevel); level != "" {
		cfg.LogLevel = level
	}

	return cfg, cfg.Validate()
}
