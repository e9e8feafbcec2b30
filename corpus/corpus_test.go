package corpus

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/shrawansher/Hillary-or-Trump/bayes"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write %s failed: %v", name, err)
	}
	return path
}

func TestReadLinesKeepsEmptyLines(t *testing.T) {
	lines, err := ReadLines(strings.NewReader("first\n\nthird\n"))
	if err != nil {
		t.Fatalf("read lines failed: %v", err)
	}

	want := []string{"first", "", "third"}
	if !reflect.DeepEqual(lines, want) {
		t.Fatalf("unexpected lines: got %v, want %v", lines, want)
	}
}

func TestMapLabels(t *testing.T) {
	names := map[string]string{"0": "hillary", "1": "trump"}

	got := MapLabels([]string{"0", "1", "other"}, names)
	want := []string{"hillary", "trump", "other"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected mapped labels: got %v, want %v", got, want)
	}

	passthrough := []string{"hillary", "trump"}
	if got := MapLabels(passthrough, nil); !reflect.DeepEqual(got, passthrough) {
		t.Fatalf("expected passthrough without a map, got %v", got)
	}
}

func TestLoadPairsFiles(t *testing.T) {
	dir := t.TempDir()
	tweets := writeFile(t, dir, "tweets.txt", "stronger together\nbuild the wall\n")
	labels := writeFile(t, dir, "labels.txt", "0\n1\n")

	docs, err := Load(tweets, labels, map[string]string{"0": "hillary", "1": "trump"})
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	want := []bayes.Document{
		{Text: "stronger together", Class: "hillary"},
		{Text: "build the wall", Class: "trump"},
	}
	if !reflect.DeepEqual(docs, want) {
		t.Fatalf("unexpected documents: got %v, want %v", docs, want)
	}
}

func TestLoadRejectsMismatchedLineCounts(t *testing.T) {
	dir := t.TempDir()
	tweets := writeFile(t, dir, "tweets.txt", "one\ntwo\nthree\n")
	labels := writeFile(t, dir, "labels.txt", "0\n1\n")

	if _, err := Load(tweets, labels, nil); !errors.Is(err, bayes.ErrLabelMismatch) {
		t.Fatalf("mismatched files: got %v, want bayes.ErrLabelMismatch", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	dir := t.TempDir()
	tweets := writeFile(t, dir, "tweets.txt", "one\n")

	if _, err := Load(tweets, filepath.Join(dir, "absent.txt"), nil); err == nil {
		t.Fatal("expected load of a missing label file to fail")
	}
}
