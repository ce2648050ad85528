package scansion

import (
	"strings"

	"github.com/hathaway2010/poetry-scansion/internal/domain"
)

// Thresholds used when a syllable has no comparable neighbor.
const (
	aloneUnstressedBelow = 0.2
	aloneStressedFrom    = 1.0
)

// Comparative scans each line by comparing every syllable with one
// neighbor: the next syllable, or the previous one near the line end.
func Comparative(lines [][]domain.Score) string {
	return joinLines(lines, CompareLine)
}

// CompareLine is Comparative for a single line score sequence.
func CompareLine(line []domain.Score) string {
	var b strings.Builder
	b.Grow(len(line))

	n := len(line)
	for i, s := range line {
		switch {
		case s.IsSpace():
			b.WriteByte(domain.WordBreak)
		case s.IsUnknown():
			b.WriteByte(domain.Uncertain)
		case i < n-2:
			next := line[i+1]
			if next.IsSpace() {
				next = line[i+2]
			}
			b.WriteByte(Compare(s, next))
		default:
			prev := at(line, i-1)
			if prev.IsSpace() {
				prev = at(line, i-2)
			}
			b.WriteByte(Compare(s, prev))
		}
	}
	return b.String()
}

// at indexes from the end for negative i. A line of one syllable
// (value, Space) therefore looks back past its trailing Space to itself.
func at(line []domain.Score, i int) domain.Score {
	if i < 0 {
		i += len(line)
	}
	return line[i]
}

// Compare classifies a against its neighbor b. When b is unknown, a is
// judged on its own: clearly low is unstressed, clearly high stressed,
// anything between undecided.
func Compare(a, b domain.Score) byte {
	if !b.IsKnown() {
		switch {
		case a.Value < aloneUnstressedBelow:
			return domain.Unstressed
		case a.Value >= aloneStressedFrom:
			return domain.Stressed
		default:
			return domain.Uncertain
		}
	}
	switch {
	case a.Value < b.Value:
		return domain.Unstressed
	case a.Value > b.Value:
		return domain.Stressed
	default:
		return domain.Uncertain
	}
}
