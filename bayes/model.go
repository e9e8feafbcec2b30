// Package bayes implements a multinomial Naive Bayes classifier that
// assigns authorship of short texts to one of a fixed set of authors.
package bayes

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/shrawansher/Hillary-or-Trump/tokenizer"
)

// DefaultSmoothing is the additive count every class is credited with for
// every vocabulary token, so no token ever has zero probability.
const DefaultSmoothing = 1.0

var (
	// ErrEmptyTrainingSet is returned by Fit when there are no training
	// documents, or when a declared class has no documents at all.
	ErrEmptyTrainingSet = errors.New("bayes: empty training set")
	// ErrLabelMismatch is returned when texts and labels cannot be paired.
	ErrLabelMismatch = errors.New("bayes: texts and labels do not match")
	// ErrAlreadyTrained is returned by Fit on a trained classifier.
	ErrAlreadyTrained = errors.New("bayes: classifier is already trained")
	// ErrNotTrained is returned when prediction is attempted before Fit.
	ErrNotTrained = errors.New("bayes: classifier is not trained")
)

// Document pairs one raw text with its class label.
type Document struct {
	Text  string
	Class string
}

// Pair zips parallel text and label slices into documents.
func Pair(texts, labels []string) ([]Document, error) {
	if len(texts) != len(labels) {
		return nil, fmt.Errorf("%w: %d texts, %d labels", ErrLabelMismatch, len(texts), len(labels))
	}

	docs := make([]Document, len(texts))
	for i, text := range texts {
		docs[i] = Document{Text: text, Class: labels[i]}
	}
	return docs, nil
}

// Classifier is responsible for assigning texts to classes. It is built
// untrained, trained exactly once with Fit, and frozen afterward: every
// table Predict reads is write-once, so a trained classifier may serve
// any number of concurrent readers.
type Classifier struct {
	tokenize  func(string) []string
	smoothing float64
	declared  []string

	trained    bool
	classes    []string
	classIndex map[string]int
	vocab      map[string]int // token -> dense index
	vocabTally []float64      // global occurrence tally per token, kept for inspection
	counts     [][]float64    // [class][token] smoothed occurrence counts
	probs      [][]float64    // [class][token] derived word probabilities
	docCount   []int
	totalDocs  int
	logPrior   []float64
}

// Option configures a Classifier before training.
type Option func(*Classifier)

// WithSmoothing overrides the additive smoothing constant.
func WithSmoothing(s float64) Option {
	return func(c *Classifier) { c.smoothing = s }
}

// WithTokenizer overrides how raw text is split into tokens. The same
// tokenizer must be used for training and prediction.
func WithTokenizer(fn func(string) []string) Option {
	return func(c *Classifier) { c.tokenize = fn }
}

// WithClasses pins the class set and its ordering up front. Fit rejects
// labels outside the pinned set and fails if any pinned class has no
// training documents.
func WithClasses(names ...string) Option {
	return func(c *Classifier) { c.declared = append([]string(nil), names...) }
}

// NewClassifier returns a pointer to an untrained instance of type Classifier.
func NewClassifier(opts ...Option) *Classifier {
	c := &Classifier{
		tokenize:  tokenizer.Tokenize,
		smoothing: DefaultSmoothing,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Fit trains the classifier on the given documents and freezes it. It
// either fully succeeds or leaves the classifier untrained with no
// partial state. A second Fit returns ErrAlreadyTrained.
func (c *Classifier) Fit(docs []Document) error {
	if c.trained {
		return ErrAlreadyTrained
	}
	if len(docs) == 0 {
		return ErrEmptyTrainingSet
	}

	// The class ordering fixed here is also the tie-break ordering for
	// prediction: declared order if pinned, first-seen order otherwise.
	classes := append([]string(nil), c.declared...)
	classIndex := make(map[string]int, len(classes))
	for i, name := range classes {
		classIndex[name] = i
	}
	pinned := len(classes) > 0
	for _, doc := range docs {
		if _, ok := classIndex[doc.Class]; ok {
			continue
		}
		if pinned {
			return fmt.Errorf("%w: label %q is not a declared class", ErrLabelMismatch, doc.Class)
		}
		classIndex[doc.Class] = len(classes)
		classes = append(classes, doc.Class)
	}

	numClasses := len(classes)
	vocab := make(map[string]int)
	var vocabTally []float64
	counts := make([][]float64, numClasses)
	docCount := make([]int, numClasses)

	for _, doc := range docs {
		ci := classIndex[doc.Class]
		docCount[ci]++
		for _, token := range c.tokenize(doc.Text) {
			ti, known := vocab[token]
			if !known {
				// First sight of a token: every class, not just the one
				// that introduced it, is credited with `smoothing`
				// occurrences. This is what keeps log(probability)
				// finite for every (class, token) pair.
				ti = len(vocabTally)
				vocab[token] = ti
				vocabTally = append(vocabTally, float64(numClasses)*c.smoothing)
				for i := range counts {
					counts[i] = append(counts[i], c.smoothing)
				}
			}
			vocabTally[ti]++
			counts[ci][ti]++
		}
	}

	for i, n := range docCount {
		if n == 0 {
			return fmt.Errorf("%w: class %q has no documents", ErrEmptyTrainingSet, classes[i])
		}
	}

	c.classes = classes
	c.classIndex = classIndex
	c.vocab = vocab
	c.vocabTally = vocabTally
	c.counts = counts
	c.docCount = docCount
	c.totalDocs = len(docs)
	c.deriveTables()
	c.trained = true
	return nil
}

// deriveTables recomputes the word probability and log-prior tables from
// the count tables. Counts are never read again during prediction.
func (c *Classifier) deriveTables() {
	numClasses := len(c.classes)
	c.probs = make([][]float64, numClasses)
	c.logPrior = make([]float64, numClasses)

	for i := range c.classes {
		denom := float64(c.docCount[i]) + float64(numClasses)*c.smoothing
		row := make([]float64, len(c.vocabTally))
		for t, count := range c.counts[i] {
			row[t] = count / denom
		}
		c.probs[i] = row
		c.logPrior[i] = math.Log(float64(c.docCount[i]) / float64(c.totalDocs))
	}
}

// logScores computes the unnormalized log-posterior for every class in
// training order.
func (c *Classifier) logScores(text string) ([]float64, error) {
	if !c.trained {
		return nil, ErrNotTrained
	}

	scores := append([]float64(nil), c.logPrior...)
	for _, token := range c.tokenize(text) {
		ti, known := c.vocab[token]
		if !known {
			// Out-of-vocabulary policy: a token never seen in training
			// says nothing about any author, so it contributes to no
			// class's score.
			continue
		}
		for i := range scores {
			scores[i] += math.Log(c.probs[i][ti])
		}
	}
	return scores, nil
}

// Predict returns the most likely class for text. Text with no known
// tokens is decided purely by the class priors.
func (c *Classifier) Predict(text string) (string, error) {
	class, _, err := c.PredictScores(text)
	return class, err
}

// PredictScores returns the most likely class together with every class's
// unnormalized log-posterior. Exact ties go to the class that comes first
// in training order, never to map iteration order.
func (c *Classifier) PredictScores(text string) (string, map[string]float64, error) {
	scores, err := c.logScores(text)
	if err != nil {
		return "", nil, err
	}

	best := 0
	for i := 1; i < len(scores); i++ {
		if scores[i] > scores[best] {
			best = i
		}
	}

	byClass := make(map[string]float64, len(scores))
	for i, name := range c.classes {
		byClass[name] = scores[i]
	}
	return c.classes[best], byClass, nil
}

// Posterior returns the normalized log-posterior per class, computed with
// a max-shifted log-sum-exp so long documents with very negative scores
// cannot overflow.
func (c *Classifier) Posterior(text string) (map[string]float64, error) {
	scores, err := c.logScores(text)
	if err != nil {
		return nil, err
	}

	logTotal := floats.LogSumExp(scores)
	posterior := make(map[string]float64, len(scores))
	for i, name := range c.classes {
		posterior[name] = scores[i] - logTotal
	}
	return posterior, nil
}

// Evaluate predicts every document and tallies the outcomes against the
// true labels. The classifier is not mutated.
func (c *Classifier) Evaluate(docs []Document) (*ConfusionMatrix, error) {
	if !c.trained {
		return nil, ErrNotTrained
	}

	matrix := NewConfusionMatrix()
	for _, doc := range docs {
		predicted, err := c.Predict(doc.Text)
		if err != nil {
			return nil, err
		}
		matrix.Add(predicted, doc.Class)
	}
	return matrix, nil
}

// Trained reports whether Fit has completed.
func (c *Classifier) Trained() bool {
	return c.trained
}

// Classes returns the class set in training order.
func (c *Classifier) Classes() []string {
	return append([]string(nil), c.classes...)
}

// VocabularySize returns the number of distinct tokens seen in training.
func (c *Classifier) VocabularySize() int {
	return len(c.vocab)
}

// TokenTally returns the global occurrence tally for a token, including
// its smoothing seed, or zero for an unknown token.
func (c *Classifier) TokenTally(token string) float64 {
	if ti, ok := c.vocab[token]; ok {
		return c.vocabTally[ti]
	}
	return 0
}

// TokenCount returns the smoothed occurrence count of a token in a class,
// or zero if either is unknown.
func (c *Classifier) TokenCount(class, token string) float64 {
	ci, ok := c.classIndex[class]
	if !ok {
		return 0
	}
	ti, ok := c.vocab[token]
	if !ok {
		return 0
	}
	return c.counts[ci][ti]
}

// TokenProbability returns the smoothed conditional probability of a
// token given a class, or zero if either is unknown.
func (c *Classifier) TokenProbability(class, token string) float64 {
	ci, ok := c.classIndex[class]
	if !ok {
		return 0
	}
	ti, ok := c.vocab[token]
	if !ok {
		return 0
	}
	return c.probs[ci][ti]
}

// DocumentCount returns how many training documents carried the class.
func (c *Classifier) DocumentCount(class string) int {
	if ci, ok := c.classIndex[class]; ok {
		return c.docCount[ci]
	}
	return 0
}

// TotalDocuments returns the size of the training set.
func (c *Classifier) TotalDocuments() int {
	return c.totalDocs
}

// LogPrior returns the log of a class's training-set frequency.
func (c *Classifier) LogPrior(class string) float64 {
	if ci, ok := c.classIndex[class]; ok {
		return c.logPrior[ci]
	}
	return math.Inf(-1)
}

// Smoothing returns the additive smoothing constant in effect.
func (c *Classifier) Smoothing() float64 {
	return c.smoothing
}
