package bayes

import (
	"encoding/gob"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

const persistedModelVersion = 1

var (
	errNilWriter          = errors.New("bayes: writer is nil")
	errNilReader          = errors.New("bayes: reader is nil")
	errEmptyPath          = errors.New("bayes: model path is empty")
	errUnsupportedVersion = errors.New("bayes: unsupported model version")
	errInvalidModelState  = errors.New("bayes: invalid persisted model")
)

// modelState is the persisted form of a trained classifier. Only the
// frozen count tables are stored; probabilities and log-priors are
// derived tables and are recomputed on load.
type modelState struct {
	Version    int
	Smoothing  float64
	Classes    []string
	Vocabulary map[string]int
	VocabTally []float64
	Counts     [][]float64
	DocCounts  []int
}

// Save writes the trained model to a writer using gob encoding. Saving
// an untrained classifier returns ErrNotTrained.
func (c *Classifier) Save(w io.Writer) error {
	if w == nil {
		return errNilWriter
	}
	if !c.trained {
		return ErrNotTrained
	}

	state := modelState{
		Version:    persistedModelVersion,
		Smoothing:  c.smoothing,
		Classes:    c.classes,
		Vocabulary: c.vocab,
		VocabTally: c.vocabTally,
		Counts:     c.counts,
		DocCounts:  c.docCount,
	}

	if err := gob.NewEncoder(w).Encode(state); err != nil {
		return fmt.Errorf("encode model: %w", err)
	}
	return nil
}

// Load reads a gob-encoded model from a reader, validates it, and
// replaces the classifier's state wholesale. A loaded classifier is
// trained and frozen like one produced by Fit.
func (c *Classifier) Load(r io.Reader) error {
	if r == nil {
		return errNilReader
	}

	var state modelState
	if err := gob.NewDecoder(r).Decode(&state); err != nil {
		return fmt.Errorf("decode model: %w", err)
	}
	if err := validateModelState(state); err != nil {
		return err
	}

	c.smoothing = state.Smoothing
	c.classes = state.Classes
	c.classIndex = make(map[string]int, len(state.Classes))
	for i, name := range state.Classes {
		c.classIndex[name] = i
	}
	c.vocab = state.Vocabulary
	c.vocabTally = state.VocabTally
	c.counts = state.Counts
	c.docCount = state.DocCounts
	c.totalDocs = 0
	for _, n := range state.DocCounts {
		c.totalDocs += n
	}
	c.deriveTables()
	c.trained = true
	return nil
}

// SaveToFile writes the trained model to a file atomically via a temp
// file and rename, so a crash mid-write never leaves a torn model.
func (c *Classifier) SaveToFile(path string) error {
	if path == "" {
		return errEmptyPath
	}

	dir := filepath.Dir(path)
	tempFile, err := os.CreateTemp(dir, ".bayes-model-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tempPath := tempFile.Name()
	defer os.Remove(tempPath)

	if err := c.Save(tempFile); err != nil {
		tempFile.Close()
		return err
	}
	if err := tempFile.Sync(); err != nil {
		tempFile.Close()
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}

	if err := os.Rename(tempPath, path); err != nil {
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}

// LoadFromFile reads a gob-encoded model from a file.
func (c *Classifier) LoadFromFile(path string) error {
	if path == "" {
		return errEmptyPath
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open model file: %w", err)
	}
	defer f.Close()

	return c.Load(f)
}

func validateModelState(state modelState) error {
	if state.Version != persistedModelVersion {
		return fmt.Errorf("%w: %d", errUnsupportedVersion, state.Version)
	}
	if state.Smoothing < 0 {
		return fmt.Errorf("%w: negative smoothing %f", errInvalidModelState, state.Smoothing)
	}
	if len(state.Classes) == 0 {
		return fmt.Errorf("%w: no classes", errInvalidModelState)
	}
	if len(state.DocCounts) != len(state.Classes) || len(state.Counts) != len(state.Classes) {
		return fmt.Errorf("%w: table sizes disagree with class count", errInvalidModelState)
	}

	seen := make(map[string]bool, len(state.Classes))
	for i, name := range state.Classes {
		if name == "" || seen[name] {
			return fmt.Errorf("%w: bad class name %q", errInvalidModelState, name)
		}
		seen[name] = true
		if state.DocCounts[i] <= 0 {
			return fmt.Errorf("%w: class %q has document count %d", errInvalidModelState, name, state.DocCounts[i])
		}
	}

	vocabSize := len(state.Vocabulary)
	if len(state.VocabTally) != vocabSize {
		return fmt.Errorf("%w: vocabulary tally size mismatch", errInvalidModelState)
	}
	used := make([]bool, vocabSize)
	for token, index := range state.Vocabulary {
		if token == "" || index < 0 || index >= vocabSize || used[index] {
			return fmt.Errorf("%w: bad vocabulary entry %q -> %d", errInvalidModelState, token, index)
		}
		used[index] = true
	}

	for i, row := range state.Counts {
		if len(row) != vocabSize {
			return fmt.Errorf("%w: count row for %q has %d entries, want %d", errInvalidModelState, state.Classes[i], len(row), vocabSize)
		}
		for _, count := range row {
			if count < state.Smoothing {
				return fmt.Errorf("%w: count %f below smoothing %f", errInvalidModelState, count, state.Smoothing)
			}
		}
	}

	return nil
}
