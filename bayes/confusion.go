package bayes

import "sort"

// ConfusionMatrix tallies (predicted, actual) class pairs from an
// evaluation run.
type ConfusionMatrix struct {
	counts map[string]map[string]int // predicted -> actual -> count
	total  int
}

// NewConfusionMatrix returns a pointer to an empty instance of type
// ConfusionMatrix.
func NewConfusionMatrix() *ConfusionMatrix {
	return &ConfusionMatrix{
		counts: make(map[string]map[string]int),
	}
}

// Add records one prediction outcome.
func (m *ConfusionMatrix) Add(predicted, actual string) {
	row, ok := m.counts[predicted]
	if !ok {
		row = make(map[string]int)
		m.counts[predicted] = row
	}
	row[actual]++
	m.total++
}

// Count returns how often a class was predicted for documents actually
// labeled with another.
func (m *ConfusionMatrix) Count(predicted, actual string) int {
	return m.counts[predicted][actual]
}

// Total returns the number of recorded outcomes.
func (m *ConfusionMatrix) Total() int {
	return m.total
}

// Accuracy returns the fraction of outcomes where the prediction matched
// the true label. An empty matrix has accuracy zero.
func (m *ConfusionMatrix) Accuracy() float64 {
	if m.total == 0 {
		return 0
	}

	correct := 0
	for predicted, row := range m.counts {
		correct += row[predicted]
	}
	return float64(correct) / float64(m.total)
}

// Labels returns every class that appears as a prediction or a true
// label, sorted for stable display.
func (m *ConfusionMatrix) Labels() []string {
	seen := make(map[string]bool)
	for predicted, row := range m.counts {
		seen[predicted] = true
		for actual := range row {
			seen[actual] = true
		}
	}

	labels := make([]string, 0, len(seen))
	for label := range seen {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	return labels
}
