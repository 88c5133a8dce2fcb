package config

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestLoadCustomPath(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "custom.yaml")

	yaml := `landmarks: fixed
max_ticks: 42
step_delay_ms: 100
db_path: /tmp/leaky-test.db
`
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Landmarks != LandmarksFixed {
		t.Errorf("Landmarks = %q, want %q", cfg.Landmarks, LandmarksFixed)
	}
	if cfg.MaxTicks != 42 {
		t.Errorf("MaxTicks = %d, want 42", cfg.MaxTicks)
	}
	if cfg.StepDelayMS != 100 {
		t.Errorf("StepDelayMS = %d, want 100", cfg.StepDelayMS)
	}
	if cfg.DBPath != "/tmp/leaky-test.db" {
		t.Errorf("DBPath = %q, want /tmp/leaky-test.db", cfg.DBPath)
	}
}

func TestLoadMissingCustomPathFails(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("Load() with missing custom path should fail")
	}
}

func TestLoadRejectsBadLandmarksMode(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "bad.yaml")

	yaml := `landmarks: sideways
max_ticks: 10
`
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Fatal("Load() should reject unknown landmarks mode")
	}
}

func TestDefaultMatchesEmbedded(t *testing.T) {
	// The embedded YAML and the hardcoded fallback must agree so
	// behavior does not depend on which one wins.
	def := Default()

	var embedded Config
	if err := yaml.Unmarshal(defaultConfigYAML, &embedded); err != nil {
		t.Fatalf("embedded default failed to parse: %v", err)
	}

	if embedded != def {
		t.Errorf("embedded default %+v differs from Default() %+v", embedded, def)
	}
}
