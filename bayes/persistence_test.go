package bayes

import (
	"bytes"
	"encoding/gob"
	"errors"
	"path/filepath"
	"testing"
)

func TestPersistenceRoundTrip(t *testing.T) {
	original := fittedScenario(t)

	query := "I love cats"
	wantClass, wantScores, err := original.PredictScores(query)
	if err != nil {
		t.Fatalf("predict failed: %v", err)
	}

	var buf bytes.Buffer
	if err := original.Save(&buf); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded := NewClassifier()
	if err := loaded.Load(&buf); err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if !loaded.Trained() {
		t.Fatal("expected loaded classifier to be trained")
	}

	gotClass, gotScores, err := loaded.PredictScores(query)
	if err != nil {
		t.Fatalf("predict after load failed: %v", err)
	}
	if gotClass != wantClass {
		t.Fatalf("classification mismatch after round-trip: got %q, want %q", gotClass, wantClass)
	}
	for class, want := range wantScores {
		if got := gotScores[class]; got != want {
			t.Fatalf("score mismatch for %q after round-trip: got %f, want %f", class, got, want)
		}
	}
}

func TestSaveRequiresTrainedClassifier(t *testing.T) {
	var buf bytes.Buffer
	if err := NewClassifier().Save(&buf); !errors.Is(err, ErrNotTrained) {
		t.Fatalf("save of untrained classifier: got %v, want ErrNotTrained", err)
	}
}

func TestLoadRejectsUnsupportedVersion(t *testing.T) {
	var buf bytes.Buffer
	state := modelState{Version: persistedModelVersion + 1}
	if err := gob.NewEncoder(&buf).Encode(state); err != nil {
		t.Fatalf("encode failed: %v", err)
	}

	if err := NewClassifier().Load(&buf); !errors.Is(err, errUnsupportedVersion) {
		t.Fatalf("load of future version: got %v, want errUnsupportedVersion", err)
	}
}

func TestLoadRejectsCorruptState(t *testing.T) {
	cases := []struct {
		name  string
		state modelState
	}{
		{"no classes", modelState{Version: persistedModelVersion}},
		{"duplicate class", modelState{
			Version:   persistedModelVersion,
			Classes:   []string{"a", "a"},
			DocCounts: []int{1, 1},
			Counts:    [][]float64{nil, nil},
		}},
		{"zero document count", modelState{
			Version:   persistedModelVersion,
			Classes:   []string{"a", "b"},
			DocCounts: []int{1, 0},
			Counts:    [][]float64{nil, nil},
		}},
		{"count below smoothing", modelState{
			Version:    persistedModelVersion,
			Smoothing:  1.0,
			Classes:    []string{"a"},
			DocCounts:  []int{1},
			Vocabulary: map[string]int{"word": 0},
			VocabTally: []float64{2},
			Counts:     [][]float64{{0.5}},
		}},
		{"vocabulary index out of range", modelState{
			Version:    persistedModelVersion,
			Classes:    []string{"a"},
			DocCounts:  []int{1},
			Vocabulary: map[string]int{"word": 7},
			VocabTally: []float64{2},
			Counts:     [][]float64{{1}},
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := gob.NewEncoder(&buf).Encode(tc.state); err != nil {
				t.Fatalf("encode failed: %v", err)
			}

			classifier := NewClassifier()
			if err := classifier.Load(&buf); err == nil {
				t.Fatal("expected load to reject corrupt state")
			}
			if classifier.Trained() {
				t.Fatal("failed load must leave the classifier untrained")
			}
		})
	}
}

func TestLoadRejectsGarbage(t *testing.T) {
	if err := NewClassifier().Load(bytes.NewReader([]byte("not a gob stream"))); err == nil {
		t.Fatal("expected load of garbage bytes to fail")
	}
}

func TestSaveToFileAndLoadFromFile(t *testing.T) {
	original := fittedScenario(t)
	path := filepath.Join(t.TempDir(), "model.gob")

	if err := original.SaveToFile(path); err != nil {
		t.Fatalf("save to file failed: %v", err)
	}

	loaded := NewClassifier()
	if err := loaded.LoadFromFile(path); err != nil {
		t.Fatalf("load from file failed: %v", err)
	}

	want, err := original.Predict("cats are great")
	if err != nil {
		t.Fatalf("predict failed: %v", err)
	}
	got, err := loaded.Predict("cats are great")
	if err != nil {
		t.Fatalf("predict after load failed: %v", err)
	}
	if got != want {
		t.Fatalf("prediction mismatch after file round-trip: got %q, want %q", got, want)
	}
}

func TestFilePersistenceRejectsEmptyPath(t *testing.T) {
	classifier := fittedScenario(t)

	if err := classifier.SaveToFile(""); !errors.Is(err, errEmptyPath) {
		t.Fatalf("save to empty path: got %v, want errEmptyPath", err)
	}
	if err := classifier.LoadFromFile(""); !errors.Is(err, errEmptyPath) {
		t.Fatalf("load from empty path: got %v, want errEmptyPath", err)
	}
}
