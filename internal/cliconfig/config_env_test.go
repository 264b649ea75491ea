package cliconfig

import (
	"testing"
	"time"
)

func TestApplyEnvConfig(t *testing.T) {
	tests := []struct {
		name     string
		envVars  map[string]string
		initial  Config
		expected Config
		wantErr  bool
	}{
		{
			name: "applies all valid env vars",
			envVars: map[string]string{
				"INKWELL_LAUNCH_SOCKET":             "/run/inkwell/env.sock",
				"INKWELL_LAUNCH_INSTANCE":           "/opt/inkwell/inkwell",
				"INKWELL_LAUNCH_HANDSHAKE_TIMEOUT":  "3s",
				"INKWELL_LAUNCH_WAIT_READY":         "true",
				"INKWELL_LAUNCH_WAIT_READY_TIMEOUT": "30s",
				"INKWELL_LAUNCH_DEBUG":              "1",
			},
			initial: DefaultConfig(),
			expected: Config{
				SocketPath:       "/run/inkwell/env.sock",
				InstancePath:     "/opt/inkwell/inkwell",
				HandshakeTimeout: 3 * time.Second,
				WaitReady:        true,
				WaitReadyTimeout: 30 * time.Second,
				Debug:            true,
			},
			wantErr: false,
		},
		{
			name:     "empty environment leaves config untouched",
			envVars:  map[string]string{},
			initial:  DefaultConfig(),
			expected: DefaultConfig(),
			wantErr:  false,
		},
		{
			name: "zero disables handshake timeout",
			envVars: map[string]string{
				"INKWELL_LAUNCH_HANDSHAKE_TIMEOUT": "0s",
			},
			initial: DefaultConfig(),
			expected: Config{
				HandshakeTimeout: 0,
				WaitReadyTimeout: 10 * time.Second,
			},
			wantErr: false,
		},
		{
			name: "returns error for invalid duration",
			envVars: map[string]string{
				"INKWELL_LAUNCH_HANDSHAKE_TIMEOUT": "not-a-duration",
			},
			initial: DefaultConfig(),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.envVars {
				t.Setenv(k, v)
			}

			cfg := tt.initial
			err := ApplyEnvConfig(&cfg)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ApplyEnvConfig error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if cfg != tt.expected {
				t.Fatalf("config = %+v, want %+v", cfg, tt.expected)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}

	cfg = DefaultConfig()
	cfg.HandshakeTimeout = -time.Second
	if err := cfg.Validate(); err == nil {
		t.Fatalf("negative handshake timeout validated")
	}

	cfg = DefaultConfig()
	cfg.WaitReady = true
	cfg.WaitReadyTimeout = 0
	if err := cfg.Validate(); err == nil {
		t.Fatalf("wait-ready without timeout validated")
	}
}
