package domain

import (
	"time"

	"github.com/google/uuid"
)

// Stress symbols used in corpus patterns and scansion strings.
const (
	Stressed   = '/'
	Unstressed = 'u'
	Uncertain  = '?'
	WordBreak  = ' '
)

// Pronunciation is one observed stress pattern for a normalized word.
// Competing observations of the same word are separate records; each
// (Word, Stresses) pair exists at most once.
type Pronunciation struct {
	ID         uuid.UUID
	Word       string
	Stresses   string
	Popularity int
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// SyllableCount returns the number of syllables the pattern assigns to the word.
func (p Pronunciation) SyllableCount() int {
	return len(p.Stresses)
}

// ValidateStresses checks that a pattern is a non-empty run of stress symbols.
func ValidateStresses(field, stresses string) error {
	if stresses == "" {
		return NewValidationError(field, "stress pattern is empty")
	}
	for i := 0; i < len(stresses); i++ {
		if stresses[i] != Stressed && stresses[i] != Unstressed {
			return NewValidationError(field, "stress pattern may only contain '/' and 'u': "+stresses)
		}
	}
	return nil
}
