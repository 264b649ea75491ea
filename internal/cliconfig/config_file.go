package cliconfig

import (
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

// FileConfig mirrors Config but uses strings for durations to make
// TOML friendly.
type FileConfig struct {
	SocketPath       string `toml:"socket_path"`
	InstancePath     string `toml:"instance_path"`
	HandshakeTimeout string `toml:"handshake_timeout"`
	WaitReady        *bool  `toml:"wait_ready"`
	WaitReadyTimeout string `toml:"wait_ready_timeout"`
	Debug            *bool  `toml:"debug"`
}

// LoadFileConfig reads and parses a TOML config file from the given path.
func LoadFileConfig(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	if err := toml.Unmarshal(b, &fc); err != nil {
		return fc, err
	}
	return fc, nil
}

// DefaultConfigPath returns the default configuration file path,
// <user config dir>/inkwell/launch.toml, or "" if the config dir is
// not resolvable.
func DefaultConfigPath() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "inkwell", "launch.toml")
	}
	return ""
}

// ApplyFileConfig applies configuration from a file to the Config
// struct. Runs before ApplyEnvConfig so the environment wins.
func ApplyFileConfig(cfg *Config, fc FileConfig) error {
	var s configSetter

	s.setString(fc.SocketPath, &cfg.SocketPath)
	s.setString(fc.InstancePath, &cfg.InstancePath)

	if err := s.setDuration("handshake_timeout", fc.HandshakeTimeout, &cfg.HandshakeTimeout); err != nil {
		return err
	}
	if err := s.setDuration("wait_ready_timeout", fc.WaitReadyTimeout, &cfg.WaitReadyTimeout); err != nil {
		return err
	}

	s.setBool(fc.WaitReady, &cfg.WaitReady)
	s.setBool(fc.Debug, &cfg.Debug)

	return nil
}

// FileExists checks if a file exists at the given path.
func FileExists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}
