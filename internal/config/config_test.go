package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/osint-atlas/atlas/internal/config"
)

func TestLoad_CreatesFileWithDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.BackendURL != "" || cfg.BackendKey != "" {
		t.Errorf("expected empty defaults, got %+v", cfg)
	}
	if cfg.DataDir == "" {
		t.Error("expected DataDir defaulted")
	}

	if _, err := os.Stat(path); err != nil {
		t.Errorf("config file was not created: %v", err)
	}
}

func TestLoad_ReadsExistingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")

	saved := config.Config{
		BackendURL: "https://atlas.example.com",
		BackendKey: "abc123",
		DataDir:    dir,
	}
	if err := config.Save(path, &saved); err != nil {
		t.Fatalf("save: %v", err)
	}

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.BackendURL != saved.BackendURL || cfg.BackendKey != saved.BackendKey || cfg.DataDir != dir {
		t.Errorf("expected %+v, got %+v", saved, *cfg)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := config.Save(path, &config.Config{BackendURL: "https://file.example.com", BackendKey: "file-key"}); err != nil {
		t.Fatalf("save: %v", err)
	}

	t.Setenv("ATLAS_BACKEND_URL", "https://env.example.com")
	t.Setenv("ATLAS_BACKEND_KEY", "env-key")

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.BackendURL != "https://env.example.com" || cfg.BackendKey != "env-key" {
		t.Errorf("environment should override file values, got %+v", *cfg)
	}
}

func TestLoad_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	if _, err := config.Load(path); err == nil {
		t.Error("expected error for malformed config")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     config.Config
		wantErr bool
	}{
		{"empty config is valid", config.Config{}, false},
		{"complete backend config", config.Config{BackendURL: "https://atlas.example.com", BackendKey: "k"}, false},
		{"relative url", config.Config{BackendURL: "atlas.example.com", BackendKey: "k"}, true},
		{"placeholder url", config.Config{BackendURL: "https://your-project.supabase.co", BackendKey: "k"}, true},
		{"url without key", config.Config{BackendURL: "https://atlas.example.com"}, true},
		{"blank key", config.Config{BackendURL: "https://atlas.example.com", BackendKey: "   "}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
