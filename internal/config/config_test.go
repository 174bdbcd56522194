package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// isolateEnv points every config lookup at a fresh temp dir
func isolateEnv(t *testing.T) string {
	t.Helper()
	tempDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tempDir)
	t.Setenv("LBL_CONFIG", "")
	t.Setenv("LBL_THEME_FILE", "")
	t.Setenv("LBL_BACKEND", "")
	t.Setenv("LBL_API_URL", "")
	t.Setenv("LBL_API_TOKEN", "")
	return tempDir
}

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	configDir := filepath.Join(dir, "lbl")
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		t.Fatalf("Failed to create config dir: %v", err)
	}
	configPath := filepath.Join(configDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	return configPath
}

func TestDefaultKeyMappings(t *testing.T) {
	defaults := DefaultKeyMappings()

	if defaults.Quit != "q" {
		t.Errorf("Default Quit key = %s, want q", defaults.Quit)
	}
	if defaults.NewLabel != "n" {
		t.Errorf("Default NewLabel key = %s, want n", defaults.NewLabel)
	}
	if defaults.SaveForm != "ctrl+s" {
		t.Errorf("Default SaveForm key = %s, want ctrl+s", defaults.SaveForm)
	}
}

func TestLoadConfigWithoutFile(t *testing.T) {
	isolateEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() without config file failed: %v", err)
	}

	if cfg.Backend != BackendLocal {
		t.Errorf("Default backend = %s, want %s", cfg.Backend, BackendLocal)
	}
	if cfg.KeyMappings.Quit != "q" {
		t.Errorf("Loaded config Quit key = %s, want q (default)", cfg.KeyMappings.Quit)
	}
	if cfg.API.Timeout != 15*time.Second {
		t.Errorf("Default timeout = %v, want 15s", cfg.API.Timeout)
	}
}

func TestLoadConfigWithFile(t *testing.T) {
	tempDir := isolateEnv(t)
	writeConfig(t, tempDir, `backend: http
api:
  base_url: "http://localhost:3000"
  timeout: 3s
key_mappings:
  quit: "x"
  new_label: "a"
`)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() with config file failed: %v", err)
	}

	if cfg.Backend != BackendHTTP {
		t.Errorf("Backend = %s, want http", cfg.Backend)
	}
	if cfg.API.BaseURL != "http://localhost:3000" {
		t.Errorf("BaseURL = %s", cfg.API.BaseURL)
	}
	if cfg.API.Timeout != 3*time.Second {
		t.Errorf("Timeout = %v, want 3s", cfg.API.Timeout)
	}
	if cfg.KeyMappings.Quit != "x" {
		t.Errorf("Loaded Quit key = %s, want x", cfg.KeyMappings.Quit)
	}
	if cfg.KeyMappings.NewLabel != "a" {
		t.Errorf("Loaded NewLabel key = %s, want a", cfg.KeyMappings.NewLabel)
	}

	// Unspecified values should use defaults
	if cfg.KeyMappings.EditLabel != "e" {
		t.Errorf("Loaded EditLabel key = %s, want e (default)", cfg.KeyMappings.EditLabel)
	}
	if cfg.API.TokenHeader != "X-Session-Token" {
		t.Errorf("TokenHeader = %s, want default", cfg.API.TokenHeader)
	}
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	isolateEnv(t)
	t.Setenv("LBL_BACKEND", "http")
	t.Setenv("LBL_API_URL", "https://labels.example.com")
	t.Setenv("LBL_API_TOKEN", "tok")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Backend != BackendHTTP || cfg.API.BaseURL != "https://labels.example.com" || cfg.API.Token != "tok" {
		t.Errorf("Environment not applied: %+v", cfg.API)
	}
}

func TestLoadConfigInvalid(t *testing.T) {
	tempDir := isolateEnv(t)

	testCases := map[string]string{
		"http without url": "backend: http\n",
		"unknown backend":  "backend: carrier-pigeon\n",
		"malformed yaml":   "backend: [\n",
	}
	for name, content := range testCases {
		t.Run(name, func(t *testing.T) {
			writeConfig(t, tempDir, content)
			if _, err := Load(); err == nil {
				t.Errorf("Expected error for %s", name)
			}
		})
	}
}

func TestLoadConfigExplicitPath(t *testing.T) {
	isolateEnv(t)
	path := filepath.Join(t.TempDir(), "custom.yaml")
	if err := os.WriteFile(path, []byte("log:\n  level: debug\n"), 0o644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	t.Setenv("LBL_CONFIG", path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log level = %s, want debug", cfg.Log.Level)
	}
}

func TestSaveConfig(t *testing.T) {
	tempDir := isolateEnv(t)

	cfg := &Config{
		Backend: BackendHTTP,
		API:     APIConfig{BaseURL: "http://localhost:3000", Token: "secret"},
		KeyMappings: KeyMappings{
			Quit:     "x",
			NewLabel: "a",
		},
	}
	cfg.applyDefaults()

	if err := cfg.Save(); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	configPath := filepath.Join(tempDir, "lbl", "config.yaml")
	info, err := os.Stat(configPath)
	if err != nil {
		t.Fatalf("Config file not created at %s: %v", configPath, err)
	}
	if info.Mode().Perm() != 0o600 {
		t.Errorf("Config file mode = %v, want 0600", info.Mode().Perm())
	}

	cfg2, err := Load()
	if err != nil {
		t.Fatalf("Load() after Save() failed: %v", err)
	}

	if cfg2.KeyMappings.Quit != "x" {
		t.Errorf("Reloaded Quit key = %s, want x", cfg2.KeyMappings.Quit)
	}
	if cfg2.API.Token != "secret" {
		t.Errorf("Reloaded token = %s, want secret", cfg2.API.Token)
	}
	if cfg2.API.Timeout != cfg.API.Timeout {
		t.Errorf("Reloaded timeout = %v, want %v", cfg2.API.Timeout, cfg.API.Timeout)
	}
}
