// Package cliconfig holds the launcher's operator-facing knobs. The
// CLI itself takes no flags (every argv token is opaque pass-through
// for the instance), so configuration comes from an optional TOML file
// overridden by INKWELL_LAUNCH_* environment variables.
package cliconfig

import (
	"fmt"
	"strconv"
	"time"
)

// Config holds the launcher configuration. Zero values mean "use what
// the environment resolver computed".
type Config struct {
	// SocketPath overrides the resolved channel address.
	SocketPath string

	// InstancePath overrides the resolved instance executable.
	InstancePath string

	// HandshakeTimeout bounds the connect attempt and each blocking
	// handshake read. Zero disables the bound entirely.
	HandshakeTimeout time.Duration

	// WaitReady makes the launcher watch for the instance socket to
	// appear after a spawn. Diagnostic aid; does not change the exit
	// code.
	WaitReady bool

	// WaitReadyTimeout bounds the readiness watch.
	WaitReadyTimeout time.Duration

	// Debug enables debug-level diagnostics on stderr.
	Debug bool
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		HandshakeTimeout: 10 * time.Second,
		WaitReadyTimeout: 10 * time.Second,
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.HandshakeTimeout < 0 {
		return fmt.Errorf("handshake timeout must not be negative")
	}
	if c.WaitReadyTimeout < 0 {
		return fmt.Errorf("wait-ready timeout must not be negative")
	}
	if c.WaitReady && c.WaitReadyTimeout == 0 {
		return fmt.Errorf("wait-ready requires a positive wait-ready timeout")
	}
	return nil
}

// configSetter applies values in precedence order: environment beats
// file beats defaults. Empty or nil source values are skipped so lower
// layers show through.
type configSetter struct{}

func (configSetter) setString(value string, dst *string) {
	if value == "" {
		return
	}
	*dst = value
}

func (configSetter) setDuration(name, value string, dst *time.Duration) error {
	if value == "" {
		return nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", name, err)
	}
	*dst = d
	return nil
}

func (configSetter) setBool(value *bool, dst *bool) {
	if value == nil {
		return
	}
	*dst = *value
}

// setBoolFromString accepts the usual spellings ("true", "1", "false",
// "0"); anything else counts as false.
func (configSetter) setBoolFromString(value string, dst *bool) {
	if value == "" {
		return
	}
	b, err := strconv.ParseBool(value)
	*dst = err == nil && b
}
