package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := Default()

	if cfg.Model.Smoothing != 1.0 {
		t.Fatalf("unexpected default smoothing: got %f, want 1.0", cfg.Model.Smoothing)
	}
	if cfg.Tokenizer.Stemming {
		t.Fatal("stemming must default to off")
	}
	if cfg.Data.LabelNames["0"] != "hillary" || cfg.Data.LabelNames["1"] != "trump" {
		t.Fatalf("unexpected default label names: %v", cfg.Data.LabelNames)
	}
	if cfg.Store.Path == "" {
		t.Fatal("expected a default store path")
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "classifier.yaml")
	content := `
model:
  smoothing: 0.5
  classes: [hillary, trump]
tokenizer:
  stemming: true
data:
  tweets: corpus/texts.txt
  labels: corpus/labels.txt
store:
  path: cache/model.db
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write config failed: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if cfg.Model.Smoothing != 0.5 {
		t.Fatalf("unexpected smoothing: got %f, want 0.5", cfg.Model.Smoothing)
	}
	if len(cfg.Model.Classes) != 2 || cfg.Model.Classes[0] != "hillary" {
		t.Fatalf("unexpected classes: %v", cfg.Model.Classes)
	}
	if !cfg.Tokenizer.Stemming {
		t.Fatal("expected stemming to be enabled")
	}
	if cfg.Data.Tweets != "corpus/texts.txt" {
		t.Fatalf("unexpected tweets path: %q", cfg.Data.Tweets)
	}
	if cfg.Store.Path != "cache/model.db" {
		t.Fatalf("unexpected store path: %q", cfg.Store.Path)
	}
}

func TestLoadRejectsNegativeSmoothing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "classifier.yaml")
	if err := os.WriteFile(path, []byte("model:\n  smoothing: -1\n"), 0644); err != nil {
		t.Fatalf("write config failed: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Fatal("expected negative smoothing to be rejected")
	}
}

func TestLoadOrDefaultMissingFile(t *testing.T) {
	cfg, err := LoadOrDefault(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("load or default failed: %v", err)
	}
	if cfg.Model.Smoothing != Default().Model.Smoothing {
		t.Fatal("expected default config for a missing file")
	}
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "classifier.yaml")
	if err := os.WriteFile(path, []byte("model: [not: a map"), 0644); err != nil {
		t.Fatalf("write config failed: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Fatal("expected malformed yaml to be rejected")
	}
}
