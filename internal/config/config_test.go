package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadConfig_CreatesDefault(t *testing.T) {
	home := t.TempDir()
	t.Setenv("CHAIRFINDER_HOME", home)

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.ActiveProfile != "default" {
		t.Errorf("ActiveProfile = %q, want default", cfg.ActiveProfile)
	}
	if cfg.GetBaseURL() != DefaultBaseURL {
		t.Errorf("GetBaseURL() = %q, want %q", cfg.GetBaseURL(), DefaultBaseURL)
	}
	if cfg.GetTimeout() != 30*time.Second {
		t.Errorf("GetTimeout() = %v, want 30s", cfg.GetTimeout())
	}
	if !cfg.IsValid() {
		t.Error("default config should be valid")
	}

	if _, err := os.Stat(filepath.Join(home, ".chairfinder", "config.json")); err != nil {
		t.Errorf("config file not written: %v", err)
	}
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("CHAIRFINDER_HOME", t.TempDir())
	t.Setenv("CHAIRFINDER_BASE_URL", "https://chairs.example.com")
	t.Setenv("CHAIRFINDER_TIMEOUT", "5")
	t.Setenv("CHAIRFINDER_LOG_LEVEL", "debug")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if got := cfg.GetBaseURL(); got != "https://chairs.example.com" {
		t.Errorf("GetBaseURL() = %q", got)
	}
	if got := cfg.GetTimeout(); got != 5*time.Second {
		t.Errorf("GetTimeout() = %v, want 5s", got)
	}
	if got := cfg.GetLogLevel(); got != "debug" {
		t.Errorf("GetLogLevel() = %q, want debug", got)
	}
}

func TestLoadConfig_EnvOverridesNotSaved(t *testing.T) {
	t.Setenv("CHAIRFINDER_HOME", t.TempDir())
	t.Setenv("CHAIRFINDER_BASE_URL", "https://chairs.example.com")
	t.Setenv("CHAIRFINDER_TIMEOUT", "5")
	t.Setenv("CHAIRFINDER_LOG_LEVEL", "debug")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if err := cfg.Save(); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	t.Setenv("CHAIRFINDER_BASE_URL", "")
	t.Setenv("CHAIRFINDER_TIMEOUT", "")
	t.Setenv("CHAIRFINDER_LOG_LEVEL", "")

	reloaded, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() after save error = %v", err)
	}
	if got := reloaded.GetLogLevel(); got != DefaultLogLevel {
		t.Errorf("log level override persisted: got %q after env removed", got)
	}
	if got := reloaded.GetBaseURL(); got != DefaultBaseURL {
		t.Errorf("base url override persisted: got %q after env removed", got)
	}
	if got := reloaded.GetTimeout(); got != 30*time.Second {
		t.Errorf("timeout override persisted: got %v after env removed", got)
	}
}

func TestLoadConfig_MissingActiveProfileFallsBack(t *testing.T) {
	home := t.TempDir()
	t.Setenv("CHAIRFINDER_HOME", home)

	dir := filepath.Join(home, ".chairfinder")
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	data := `{"profiles":{"b":{"base_url":"http://b:5000"},"a":{"base_url":"http://a:5000"}},"active_profile":"gone"}`
	if err := os.WriteFile(filepath.Join(dir, "config.json"), []byte(data), 0600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.ActiveProfile != "a" {
		t.Errorf("ActiveProfile = %q, want a", cfg.ActiveProfile)
	}
	if cfg.GetBaseURL() != "http://a:5000" {
		t.Errorf("GetBaseURL() = %q", cfg.GetBaseURL())
	}
}

func TestValidateProfile(t *testing.T) {
	tests := []struct {
		name    string
		profile Profile
		wantErr bool
	}{
		{"default", DefaultProfile(), false},
		{"no timeout", Profile{BaseURL: "https://x.example"}, false},
		{"empty url", Profile{}, true},
		{"not a url", Profile{BaseURL: "chairs"}, true},
		{"timeout too large", Profile{BaseURL: "http://x", TimeoutSeconds: 301}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateProfile(tt.profile)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateProfile() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
