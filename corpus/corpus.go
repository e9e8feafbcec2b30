// Package corpus reads labeled training and test data from the paired
// line-oriented files the classifier consumes: one file with a raw text
// per line and one file with a label symbol per line.
package corpus

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/shrawansher/Hillary-or-Trump/bayes"
)

// ReadLines reads every line from r, keeping empty lines so line numbers
// stay aligned between the text and label files.
func ReadLines(r io.Reader) ([]string, error) {
	var lines []string

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read lines: %w", err)
	}
	return lines, nil
}

func readLinesFromFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	return ReadLines(f)
}

// MapLabels translates raw label symbols (for example "0"/"1") into
// class names using the supplied mapping. Symbols without a mapping are
// passed through unchanged, so already-named labels need no map at all.
func MapLabels(labels []string, names map[string]string) []string {
	if len(names) == 0 {
		return labels
	}

	mapped := make([]string, len(labels))
	for i, label := range labels {
		if name, ok := names[label]; ok {
			mapped[i] = name
		} else {
			mapped[i] = label
		}
	}
	return mapped
}

// Load reads the paired text and label files, applies the label name
// mapping, and returns one document per line. A line-count mismatch
// between the two files surfaces bayes.ErrLabelMismatch.
func Load(textsPath, labelsPath string, labelNames map[string]string) ([]bayes.Document, error) {
	texts, err := readLinesFromFile(textsPath)
	if err != nil {
		return nil, err
	}
	labels, err := readLinesFromFile(labelsPath)
	if err != nil {
		return nil, err
	}

	return bayes.Pair(texts, MapLabels(labels, labelNames))
}
