// Package config loads tool configuration from a YAML file.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/shrawansher/Hillary-or-Trump/bayes"
)

// DefaultPath is the config file looked up when none is given.
const DefaultPath = "classifier.yaml"

// Config holds all configuration for the authorship classifier tool.
type Config struct {
	Model     ModelConfig     `yaml:"model"`
	Tokenizer TokenizerConfig `yaml:"tokenizer"`
	Data      DataConfig      `yaml:"data"`
	Store     StoreConfig     `yaml:"store"`
}

// ModelConfig holds classifier parameters.
type ModelConfig struct {
	Smoothing float64  `yaml:"smoothing"`
	Classes   []string `yaml:"classes"` // optional; pins class order
}

// TokenizerConfig holds tokenization parameters.
type TokenizerConfig struct {
	Stemming bool `yaml:"stemming"`
}

// DataConfig names the paired line-oriented training files and maps raw
// label symbols to class names.
type DataConfig struct {
	Tweets     string            `yaml:"tweets"`
	Labels     string            `yaml:"labels"`
	LabelNames map[string]string `yaml:"label_names"`
}

// StoreConfig holds the trained-model store location.
type StoreConfig struct {
	Path string `yaml:"path"`
}

// Default returns the configuration used when no file is present: the
// two-author tweet dataset layout.
func Default() *Config {
	return &Config{
		Model: ModelConfig{
			Smoothing: bayes.DefaultSmoothing,
		},
		Data: DataConfig{
			Tweets: "data/tweets.txt",
			Labels: "data/labels.txt",
			LabelNames: map[string]string{
				"0": "hillary",
				"1": "trump",
			},
		},
		Store: StoreConfig{
			Path: "model.db",
		},
	}
}

// Load reads configuration from path, filling unset fields with
// defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if cfg.Model.Smoothing < 0 {
		return nil, fmt.Errorf("config: smoothing must not be negative, got %f", cfg.Model.Smoothing)
	}
	return cfg, nil
}

// LoadOrDefault loads path if it exists and falls back to defaults when
// it does not.
func LoadOrDefault(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Default(), nil
	}
	return Load(path)
}
