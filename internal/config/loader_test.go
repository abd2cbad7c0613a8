package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadWritesAndReadsDefaultConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	cfg, resolved, err := Load(nil, path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if resolved != path {
		t.Fatalf("expected resolved path %q, got %q", path, resolved)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("default config not written: %v", err)
	}

	if cfg.Addr != ":8080" || cfg.LogLevel != "info" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if len(cfg.Channels) != 3 || len(cfg.Channels[0].Rooms) != 5 {
		t.Fatalf("expected 3x5 default topology, got %+v", cfg.Channels)
	}

	// Loading again reads the file that was just written.
	again, _, err := Load(nil, path)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if len(again.Channels) != 3 {
		t.Fatalf("reload lost topology: %+v", again.Channels)
	}
}

func TestLoadRejectsBrokenTopology(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	broken := `
addr: ":8080"
channels:
  - name: General
    rooms: [Room1, Room1]
`
	if err := os.WriteFile(path, []byte(broken), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	if _, _, err := Load(nil, path); err == nil {
		t.Fatal("expected duplicate-room error")
	}
}

func TestUpdateFromOverridesOnlySetFields(t *testing.T) {
	cfg := Default()
	cfg.UpdateFrom(Config{Addr: ":9090", LogLevel: "debug"})

	if cfg.Addr != ":9090" || cfg.LogLevel != "debug" {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
	if cfg.LogFormat != "console" || len(cfg.Channels) != 3 {
		t.Fatalf("unset fields must keep defaults: %+v", cfg)
	}
}
