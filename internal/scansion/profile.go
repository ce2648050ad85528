// Package scansion turns corpus evidence into stress scores and stress
// scores into scansion strings. Everything here is pure: callers fetch the
// corpus records and hand them in.
package scansion

import (
	"strconv"

	"github.com/hathaway2010/poetry-scansion/internal/domain"
	"github.com/hathaway2010/poetry-scansion/internal/syllable"
)

const (
	// RatioPrecision is the number of decimals every ratio is rounded to.
	RatioPrecision = 4
	// UnstressedBias seeds the unstressed tally of each syllable so that a
	// syllable nobody marked unstressed still has a finite ratio.
	UnstressedBias = 0.01

	singleUnstressed = 0.1
	singleStressed   = 2.0
)

// Profile returns the per-syllable stress scores for a normalized word
// given every corpus record for it, in store order.
func Profile(word string, records []domain.Pronunciation) []domain.Score {
	scores, _ := ProfileWithConfidence(word, records)
	return scores
}

// ProfileWithConfidence is Profile plus the popularity backing the result:
// zero for an unseen word, the record's popularity for a single record, and
// the summed popularity of the winning syllable count otherwise.
func ProfileWithConfidence(word string, records []domain.Pronunciation) ([]domain.Score, int) {
	switch len(records) {
	case 0:
		return unknownRun(syllable.Estimate(word)), 0
	case 1:
		return singleRecord(records[0])
	default:
		return aggregate(records)
	}
}

func unknownRun(n int) []domain.Score {
	scores := make([]domain.Score, n)
	for i := range scores {
		scores[i] = domain.Unknown
	}
	return scores
}

func singleRecord(rec domain.Pronunciation) ([]domain.Score, int) {
	// Popularity is at least 1 for any stored record; clamp so a bad row
	// cannot produce an infinite ratio.
	pop := max(rec.Popularity, 1)

	scores := make([]domain.Score, 0, len(rec.Stresses))
	for i := 0; i < len(rec.Stresses); i++ {
		if rec.Stresses[i] == domain.Unstressed {
			scores = append(scores, domain.Known(round(singleUnstressed/float64(pop))))
		} else {
			scores = append(scores, domain.Known(singleStressed*float64(pop)))
		}
	}
	return scores, rec.Popularity
}

type lengthGroup struct {
	length     int
	popularity int
	records    []domain.Pronunciation
}

func aggregate(records []domain.Pronunciation) ([]domain.Score, int) {
	// Groups keep the order in which each syllable count first appears.
	var groups []*lengthGroup
	byLength := make(map[int]*lengthGroup)
	for _, rec := range records {
		n := rec.SyllableCount()
		g, ok := byLength[n]
		if !ok {
			g = &lengthGroup{length: n}
			byLength[n] = g
			groups = append(groups, g)
		}
		g.popularity += rec.Popularity
		g.records = append(g.records, rec)
	}

	// A later group wins a tie.
	best := groups[0]
	maxPop := 0
	for _, g := range groups {
		if g.popularity >= maxPop {
			maxPop = g.popularity
			best = g
		}
	}

	scores := make([]domain.Score, best.length)
	for i := range scores {
		stressed := 0.0
		unstressed := UnstressedBias
		for _, rec := range best.records {
			if rec.Stresses[i] == domain.Stressed {
				stressed += float64(rec.Popularity)
			} else {
				unstressed += float64(rec.Popularity)
			}
		}
		scores[i] = domain.Known(round(stressed / unstressed))
	}
	return scores, maxPop
}

// round rounds half-to-even on the exact binary value, to RatioPrecision decimals.
func round(v float64) float64 {
	r, err := strconv.ParseFloat(strconv.FormatFloat(v, 'f', RatioPrecision, 64), 64)
	if err != nil {
		return v
	}
	return r
}
