package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestGetters(t *testing.T) {
	cfg := map[string]string{
		"PORT":     "9090",
		"BAD_INT":  "nope",
		"FLAG":     "true",
		"BAD_FLAG": "maybe",
		"ORIGINS":  " https://a.example, ,https://b.example ",
		"TIMEOUT":  "5",
	}

	if got := GetString(cfg, "PORT", "8080"); got != "9090" {
		t.Errorf("GetString = %q, want 9090", got)
	}
	if got := GetString(nil, "PORT", "8080"); got != "8080" {
		t.Errorf("GetString(nil) = %q, want 8080", got)
	}
	if got := GetInt(cfg, "BAD_INT", 7); got != 7 {
		t.Errorf("GetInt fallback = %d, want 7", got)
	}
	if got := GetInt(cfg, "PORT", 0); got != 9090 {
		t.Errorf("GetInt = %d, want 9090", got)
	}
	if !GetBool(cfg, "FLAG", false) {
		t.Error("GetBool(FLAG) = false, want true")
	}
	if !GetBool(cfg, "BAD_FLAG", true) {
		t.Error("GetBool(BAD_FLAG) should fall back to default")
	}
	if got := GetSeconds(cfg, "TIMEOUT", 1); got != 5*time.Second {
		t.Errorf("GetSeconds = %v, want 5s", got)
	}

	origins := GetList(cfg, "ORIGINS")
	if len(origins) != 2 || origins[0] != "https://a.example" || origins[1] != "https://b.example" {
		t.Errorf("GetList = %v", origins)
	}
	if got := GetList(cfg, "MISSING"); got != nil {
		t.Errorf("GetList(MISSING) = %v, want nil", got)
	}
}

func TestLoadPrefersFirstExistingFile(t *testing.T) {
	dir := t.TempDir()
	envPath := filepath.Join(dir, "test.env")
	if err := os.WriteFile(envPath, []byte("PORTFOLIO_TEST_KEY=from-file\n"), 0o600); err != nil {
		t.Fatalf("write env file: %v", err)
	}
	t.Cleanup(func() { os.Unsetenv("PORTFOLIO_TEST_KEY") })

	if !Load(filepath.Join(dir, "missing.env"), envPath) {
		t.Fatal("Load() = false, want true")
	}
	if got := GetString(New(), "PORTFOLIO_TEST_KEY", ""); got != "from-file" {
		t.Errorf("PORTFOLIO_TEST_KEY = %q, want from-file", got)
	}
}

func TestLoadMissingFiles(t *testing.T) {
	if Load(filepath.Join(t.TempDir(), "nothing.env")) {
		t.Fatal("Load() = true for missing file")
	}
}
