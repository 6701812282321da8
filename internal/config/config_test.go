package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	dwerrors "github.com/dashwire-dev/dashwire/internal/errors"
)

func TestLoadDefaults(t *testing.T) {
	// Empty directory: no config file, defaults apply.
	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	def := Default()
	if cfg != def {
		t.Errorf("cfg = %+v, want defaults %+v", cfg, def)
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	data := []byte("listen: localhost:8080\ntitle: ops dashboard\npretty: true\nmax_sessions: 16\nlog_level: debug\n")
	if err := os.WriteFile(filepath.Join(dir, "dashwire.yaml"), data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Listen != "localhost:8080" {
		t.Errorf("Listen = %q", cfg.Listen)
	}
	if cfg.Title != "ops dashboard" {
		t.Errorf("Title = %q", cfg.Title)
	}
	if !cfg.Pretty || cfg.MaxSessions != 16 || cfg.LogLevel != "debug" {
		t.Errorf("cfg = %+v", cfg)
	}
	// Unset fields keep their defaults.
	if !cfg.Metrics {
		t.Errorf("Metrics default not applied")
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("DASHWIRE_LISTEN", "0.0.0.0:9000")
	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Listen != "0.0.0.0:9000" {
		t.Errorf("Listen = %q, want env override", cfg.Listen)
	}
}

func TestLoadValidation(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"bad listen address", "listen: not-an-address\n"},
		{"negative max_sessions", "max_sessions: -1\n"},
		{"unknown log level", "log_level: shout\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			if err := os.WriteFile(filepath.Join(dir, "dashwire.yaml"), []byte(tt.yaml), 0o644); err != nil {
				t.Fatal(err)
			}
			_, err := Load(dir)
			var dwerr *dwerrors.Error
			if !errors.As(err, &dwerr) || dwerr.Code != "E202" {
				t.Errorf("expected E202, got %v", err)
			}
		})
	}
}

func TestLoadUnparseableFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "dashwire.yaml"), []byte("listen: [unclosed\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := Load(dir)
	var dwerr *dwerrors.Error
	if !errors.As(err, &dwerr) || dwerr.Code != "E201" {
		t.Errorf("expected E201, got %v", err)
	}
}
