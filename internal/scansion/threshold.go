package scansion

import (
	"strings"

	"github.com/hathaway2010/poetry-scansion/internal/domain"
)

// proseStressAbove is the ratio above which a syllable counts as stressed:
// more observers heard it stressed than unstressed.
const proseStressAbove = 1.0

// Threshold scans each syllable on its own score, ignoring neighbors.
func Threshold(lines [][]domain.Score) string {
	return joinLines(lines, ThresholdLine)
}

// ThresholdLine is Threshold for a single line score sequence.
func ThresholdLine(line []domain.Score) string {
	var b strings.Builder
	b.Grow(len(line))
	for _, s := range line {
		switch {
		case s.IsSpace():
			b.WriteByte(domain.WordBreak)
		case s.IsUnknown():
			b.WriteByte(domain.Uncertain)
		case s.Value > proseStressAbove:
			b.WriteByte(domain.Stressed)
		default:
			b.WriteByte(domain.Unstressed)
		}
	}
	return b.String()
}
