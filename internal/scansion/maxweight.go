package scansion

import (
	"strings"

	"github.com/hathaway2010/poetry-scansion/internal/domain"
)

// UnknownWeight stands in for a syllable with no corpus evidence: weakly
// likely to carry stress.
const UnknownWeight = 0.3

// MaxWeight scans each line by stressing the set of syllables with the
// largest total score such that no two stressed syllables are adjacent
// (word boundaries do not separate syllables).
func MaxWeight(lines [][]domain.Score) string {
	return joinLines(lines, MaxWeightLine)
}

// selection is a candidate set of stressed positions and its total weight.
type selection struct {
	weight    float64
	positions []int
}

func (s selection) with(pos int, weight float64) selection {
	positions := make([]int, len(s.positions), len(s.positions)+1)
	copy(positions, s.positions)
	return selection{
		weight:    s.weight + weight,
		positions: append(positions, pos),
	}
}

// MaxWeightLine is MaxWeight for a single line score sequence.
func MaxWeightLine(line []domain.Score) string {
	// best: best selection over the syllables seen so far.
	// skip: best selection that leaves the previous syllable free.
	var best, skip selection
	for i, s := range line {
		if s.IsSpace() {
			continue
		}
		w := UnknownWeight
		if s.IsKnown() {
			w = s.Value
		}

		prevBest := best
		// Ties take the current syllable.
		if best.weight <= skip.weight+w {
			best = skip.with(i, w)
		}
		skip = prevBest
	}

	stressed := make(map[int]bool, len(best.positions))
	for _, pos := range best.positions {
		stressed[pos] = true
	}

	var b strings.Builder
	b.Grow(len(line))
	for i, s := range line {
		switch {
		case s.IsSpace():
			b.WriteByte(domain.WordBreak)
		case stressed[i]:
			b.WriteByte(domain.Stressed)
		default:
			b.WriteByte(domain.Unstressed)
		}
	}
	return b.String()
}
