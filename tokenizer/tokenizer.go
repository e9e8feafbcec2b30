// Package tokenizer turns raw text into normalized word tokens.
package tokenizer

import (
	"unicode"

	"github.com/kljensen/snowball"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Tokenizer splits text into lowercase word tokens, optionally stemming them.
type Tokenizer struct {
	stemming bool
	stemLang string
}

// New returns a pointer to an instance of type Tokenizer. Stemming is
// optional and changes token identity, so it must be consistent between
// training and prediction.
func New(stemming bool) *Tokenizer {
	return &Tokenizer{
		stemming: stemming,
		stemLang: "english",
	}
}

// Tokenize splits text into normalized tokens. Any rune that is not a
// letter, digit, or underscore acts as a separator, so punctuation never
// survives into a token and empty tokens are never produced. Any input is
// accepted; pure punctuation or whitespace yields an empty slice.
func (t *Tokenizer) Tokenize(text string) []string {
	// Lowercasing happens before splitting: full case mapping can emit
	// combining marks, and those must act as separators too or
	// re-tokenizing our own output would split tokens differently.
	words := splitWords(cases.Lower(language.Und).String(text))
	if len(words) == 0 {
		return nil
	}

	if !t.stemming {
		return words
	}

	tokens := make([]string, 0, len(words))
	for _, word := range words {
		if stemmed, err := snowball.Stem(word, t.stemLang, true); err == nil {
			word = stemmed
		}
		tokens = append(tokens, word)
	}
	return tokens
}

// Tokenize normalizes text using the default (non-stemming) tokenizer.
func Tokenize(text string) []string {
	return New(false).Tokenize(text)
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}

func splitWords(text string) []string {
	var words []string
	start := -1

	for i, r := range text {
		if isWordRune(r) {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			words = append(words, text[start:i])
			start = -1
		}
	}
	if start >= 0 {
		words = append(words, text[start:])
	}

	return words
}
