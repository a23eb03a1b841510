// Package suggest finds the closest known slug to a misspelled one.
//
// Candidates are ranked by Jaro-Winkler similarity. Candidates whose Double
// Metaphone codes overlap the input's are accepted at a lower threshold
// than plain string matches, so "pikachoo" finds "pikachu" while unrelated
// slugs of similar length do not match.
package suggest

import (
	"strings"

	"github.com/antzucaro/matchr"
)

const (
	defaultPhoneticThreshold = 0.75
	defaultFuzzyThreshold    = 0.88
)

// Option configures a Matcher
type Option func(*Matcher)

// WithPhoneticThreshold sets the minimum similarity for phonetic candidates
func WithPhoneticThreshold(threshold float64) Option {
	return func(m *Matcher) {
		m.phoneticThreshold = threshold
	}
}

// WithFuzzyThreshold sets the minimum similarity for every other candidate
func WithFuzzyThreshold(threshold float64) Option {
	return func(m *Matcher) {
		m.fuzzyThreshold = threshold
	}
}

// Matcher ranks candidate slugs. It is read-only after construction and
// safe for concurrent use.
type Matcher struct {
	phoneticThreshold float64
	fuzzyThreshold    float64
}

// New creates a Matcher
func New(opts ...Option) *Matcher {
	m := &Matcher{
		phoneticThreshold: defaultPhoneticThreshold,
		fuzzyThreshold:    defaultFuzzyThreshold,
	}
	for _, o := range opts {
		o(m)
	}
	return m
}

// Closest returns the best candidate for input. ok is false when no
// candidate clears its threshold or input is itself a candidate.
func (m *Matcher) Closest(input string, candidates []string) (best string, ok bool) {
	input = normalize(input)
	if input == "" {
		return "", false
	}

	inputCodes := codes(input)
	bestScore := 0.0
	for _, c := range candidates {
		if c == input {
			return "", false
		}

		score := matchr.JaroWinkler(input, c, false)
		threshold := m.fuzzyThreshold
		if overlaps(inputCodes, codes(c)) {
			threshold = m.phoneticThreshold
		}
		if score < threshold || score <= bestScore {
			continue
		}
		best, bestScore = c, score
	}
	return best, best != ""
}

func normalize(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), " ", "-")
}

// codes returns the Double Metaphone codes of every hyphen-separated word
func codes(slug string) []string {
	var out []string
	for _, word := range strings.Split(slug, "-") {
		if word == "" {
			continue
		}
		p, s := matchr.DoubleMetaphone(word)
		if p != "" {
			out = append(out, p)
		}
		if s != "" && s != p {
			out = append(out, s)
		}
	}
	return out
}

func overlaps(a, b []string) bool {
	for _, x := range a {
		for _, y := range b {
			if x == y {
				return true
			}
		}
	}
	return false
}
