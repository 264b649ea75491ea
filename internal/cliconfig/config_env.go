package cliconfig

import "os"

// ApplyEnvConfig applies configuration from environment variables
// (INKWELL_LAUNCH_*). Environment values override file values, so this
// runs after ApplyFileConfig. Returns an error if a variable has an
// invalid format.
func ApplyEnvConfig(cfg *Config) error {
	var s configSetter

	s.setString(os.Getenv("INKWELL_LAUNCH_SOCKET"), &cfg.SocketPath)
	s.setString(os.Getenv("INKWELL_LAUNCH_INSTANCE"), &cfg.InstancePath)

	if err := s.setDuration("INKWELL_LAUNCH_HANDSHAKE_TIMEOUT",
		os.Getenv("INKWELL_LAUNCH_HANDSHAKE_TIMEOUT"), &cfg.HandshakeTimeout); err != nil {
		return err
	}
	if err := s.setDuration("INKWELL_LAUNCH_WAIT_READY_TIMEOUT",
		os.Getenv("INKWELL_LAUNCH_WAIT_READY_TIMEOUT"), &cfg.WaitReadyTimeout); err != nil {
		return err
	}

	s.setBoolFromString(os.Getenv("INKWELL_LAUNCH_WAIT_READY"), &cfg.WaitReady)
	s.setBoolFromString(os.Getenv("INKWELL_LAUNCH_DEBUG"), &cfg.Debug)

	return nil
}
