package supervisor

import (
	"io"
	"log/slog"
	"testing"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestConfig_ApplyDefaults(t *testing.T) {
	var cfg Config
	cfg.ApplyDefaults()
	if cfg.Backend != BackendSystemctl {
		t.Errorf("Backend = %q, want %q", cfg.Backend, BackendSystemctl)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		backend string
		wantErr bool
	}{
		{name: "systemctl", backend: BackendSystemctl, wantErr: false},
		{name: "dbus", backend: BackendDBus, wantErr: false},
		{name: "unknown", backend: "initctl", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Config{Backend: tt.backend}
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestNew_SystemctlBackend(t *testing.T) {
	ctrl, err := New(Config{}, discardLogger())
	if err != nil {
		t.Fatalf("New() = %v", err)
	}
	if _, ok := ctrl.(*SystemctlController); !ok {
		t.Errorf("New() = %T, want *SystemctlController", ctrl)
	}
}

func TestNew_UnknownBackend(t *testing.T) {
	if _, err := New(Config{Backend: "initctl"}, discardLogger()); err == nil {
		t.Error("New(initctl) = nil error, want validation failure")
	}
}

func TestNewSystemctlController_ImplementsInterface(t *testing.T) {
	var _ ServiceController = NewSystemctlController(discardLogger())
}
