// Package syllable guesses how many syllables an English word has when the
// corpus has never seen it. The guess only sizes a run of unknown scores, so
// it favors simple, inspectable rule tables over accuracy.
package syllable

import "regexp"

// Rules is a versioned table of the patterns the estimator applies.
// Each field is matched against the lowercased word.
type Rules struct {
	// Version names the rule revision, for logs and tests.
	Version string
	// VowelRuns matches one candidate syllable nucleus per maximal vowel run.
	VowelRuns *regexp.Regexp
	// FinalE marks a word-final "e" that is normally silent...
	FinalE *regexp.Regexp
	// ...unless AudibleFinalE also matches.
	AudibleFinalE *regexp.Regexp
	// SilentSuffix matches "-ed"/"-es" endings that add no syllable.
	SilentSuffix *regexp.Regexp
	// LonelyEly matches the "-ely" adverb ending after a consonant.
	LonelyEly *regexp.Regexp
	// Hiatus matches vowel sequences that read as one run but split in two.
	// Every non-overlapping match adds a syllable.
	Hiatus *regexp.Regexp
}

// DefaultRules is the diacritic-aware revision: "é" counts as a vowel and
// as the second half of a hiatus.
var DefaultRules = Rules{
	Version:       "diacritic-aware",
	VowelRuns:     regexp.MustCompile(`[AEÉIOUaeéiouy]+`),
	FinalE:        regexp.MustCompile(`e$`),
	AudibleFinalE: regexp.MustCompile(`[^aeiouylrw]le$|[^aeiouywr]re$|[aeioy]e|[^g]ue`),
	SilentSuffix: regexp.MustCompile(
		`[^aeiouydlrt]ed$|[^aeiouycghjlrsxz]es$|thes$|[aeiouylrw]led$|[aeiouylrw]les$|[aeiouyrw]res$|[aeiouyrw]red$`,
	),
	LonelyEly: regexp.MustCompile(`[^aeiouy]ely$`),
	// Known misses: Preus, Aida, poet, luau.
	Hiatus: regexp.MustCompile(
		`[aiouy]é|ao|eo[^u]|ia[^n]|[^ct]ian|iet|io[^nu]|[^c]iu|[^gq]ua|[^gq]ue[lt]|[^q]uo|[aeiouy]ing|[aeiou]y[aiou]`,
	),
}
