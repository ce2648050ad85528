package syllable

import "strings"

// Estimator counts syllables with a fixed rule table.
type Estimator struct {
	rules Rules
}

// New creates an Estimator over the given rules.
func New(rules Rules) *Estimator {
	return &Estimator{rules: rules}
}

var defaultEstimator = New(DefaultRules)

// Estimate guesses the syllable count of word with DefaultRules.
func Estimate(word string) int {
	return defaultEstimator.Estimate(word)
}

// Rules returns the table the estimator applies.
func (e *Estimator) Rules() Rules {
	return e.rules
}

// Estimate returns a syllable count of at least 1. The word should already
// be stripped of punctuation; case does not matter.
func (e *Estimator) Estimate(word string) int {
	w := strings.ToLower(word)

	count := len(e.rules.VowelRuns.FindAllStringIndex(w, -1))

	if e.rules.FinalE.MatchString(w) && !e.rules.AudibleFinalE.MatchString(w) {
		count--
	}
	if e.rules.SilentSuffix.MatchString(w) || e.rules.LonelyEly.MatchString(w) {
		count--
	}
	count += len(e.rules.Hiatus.FindAllStringIndex(w, -1))

	return max(count, 1)
}
