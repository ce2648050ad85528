package scansion

import (
	"fmt"

	"github.com/hathaway2010/poetry-scansion/internal/domain"
)

// Algorithm names a line-level scansion strategy.
type Algorithm string

const (
	AlgorithmCompare   Algorithm = "compare-adjacent"
	AlgorithmMaxWeight Algorithm = "house-robber"
	AlgorithmThreshold Algorithm = "threshold"
)

// DefaultAlgorithm is used when a caller does not choose one.
const DefaultAlgorithm = AlgorithmMaxWeight

// Descriptor documents an algorithm for listings.
type Descriptor struct {
	Algorithm Algorithm
	Name      string
	About     string
	Preferred bool
}

var catalogue = []Descriptor{
	{
		Algorithm: AlgorithmCompare,
		Name:      "Comparative",
		About: "Compares each syllable's stress ratio with the next syllable's " +
			"(the previous one at the end of a line). Marks a syllable '?' when " +
			"the two are equal or when it cannot be judged on its own.",
	},
	{
		Algorithm: AlgorithmMaxWeight,
		Name:      "House robber",
		About: "Stresses the set of syllables with the highest total stress ratio " +
			"such that no two stressed syllables are adjacent. Unknown syllables " +
			"weigh 0.3. Never leaves a syllable undecided.",
	},
	{
		Algorithm: AlgorithmThreshold,
		Name:      "Prose",
		About: "Marks a syllable stressed when more contributors heard it stressed " +
			"than unstressed, without looking at its neighbors.",
	},
}

// ParseAlgorithm validates an algorithm name. The empty string selects
// DefaultAlgorithm.
func ParseAlgorithm(name string) (Algorithm, error) {
	if name == "" {
		return DefaultAlgorithm, nil
	}
	for _, d := range catalogue {
		if string(d.Algorithm) == name {
			return d.Algorithm, nil
		}
	}
	return "", fmt.Errorf("%w: %q", domain.ErrUnknownAlgorithm, name)
}

// Algorithms lists every algorithm, marking preferred as the preferred one.
func Algorithms(preferred Algorithm) []Descriptor {
	out := make([]Descriptor, len(catalogue))
	for i, d := range catalogue {
		d.Preferred = d.Algorithm == preferred
		out[i] = d
	}
	return out
}

// Scan renders a poem's line score sequences with the chosen algorithm.
func Scan(alg Algorithm, lines [][]domain.Score) (string, error) {
	switch alg {
	case AlgorithmCompare:
		return Comparative(lines), nil
	case AlgorithmMaxWeight:
		return MaxWeight(lines), nil
	case AlgorithmThreshold:
		return Threshold(lines), nil
	default:
		return "", fmt.Errorf("%w: %q", domain.ErrUnknownAlgorithm, alg)
	}
}
