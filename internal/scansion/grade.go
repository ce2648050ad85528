package scansion

import (
	"fmt"

	"github.com/hathaway2010/poetry-scansion/internal/domain"
)

// Grading bands for the share of words a submission gets wrong.
const (
	gradeRewardBelow  = 0.1
	gradeNeutralBelow = 0.3
)

// Agreement summarizes how a submitted scansion compares with a reference.
type Agreement struct {
	Words         int
	Disagreements int
	// Ratio is Disagreements / Words, zero for an empty reference.
	Ratio float64
	// Points is +1 below a tenth wrong, 0 below three tenths, -1 otherwise.
	Points int
	// Mismatches lists word indexes whose patterns differ.
	Mismatches []int
}

// Grade compares two scansions word by word. Both must have the same
// number of words.
func Grade(reference, submitted string) (Agreement, error) {
	ref := domain.SplitWords(reference)
	sub := domain.SplitWords(submitted)
	if len(ref) != len(sub) {
		return Agreement{}, fmt.Errorf("%w: reference has %d words, submission has %d",
			domain.ErrMisalignedScansion, len(ref), len(sub))
	}

	a := Agreement{Words: len(ref)}
	for i := range ref {
		if ref[i] != sub[i] {
			a.Disagreements++
			a.Mismatches = append(a.Mismatches, i)
		}
	}
	if a.Words > 0 {
		a.Ratio = float64(a.Disagreements) / float64(a.Words)
	}

	switch {
	case a.Ratio < gradeRewardBelow:
		a.Points = 1
	case a.Ratio < gradeNeutralBelow:
		a.Points = 0
	default:
		a.Points = -1
	}
	return a, nil
}
