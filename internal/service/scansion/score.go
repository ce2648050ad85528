package scansion

import (
	"context"
	"fmt"

	"github.com/hathaway2010/poetry-scansion/internal/domain"
	"github.com/hathaway2010/poetry-scansion/internal/scansion"
)

// EstimateSyllables returns the heuristic syllable count of a raw word.
func (s *Service) EstimateSyllables(word string) int {
	return s.syllables.Estimate(word)
}

// SyllableRules names the rule revision behind EstimateSyllables.
func (s *Service) SyllableRules() string {
	return s.syllables.Rules().Version
}

// ScoreWord returns the per-syllable stress scores of a raw poem word.
func (s *Service) ScoreWord(ctx context.Context, word string) ([]domain.Score, error) {
	scores, _, err := s.ScoreWordWithConfidence(ctx, word)
	return scores, err
}

// ScoreWordWithConfidence is ScoreWord plus the popularity behind the
// scores (zero when nothing in the corpus supports them).
func (s *Service) ScoreWordWithConfidence(ctx context.Context, word string) ([]domain.Score, int, error) {
	normalized := domain.NormalizeWord(word)
	if normalized == "" {
		return []domain.Score{domain.Unknown}, 0, nil
	}

	records, err := s.pronunciations.FindByWord(ctx, normalized)
	if err != nil {
		return nil, 0, fmt.Errorf("find pronunciations of %q: %w", normalized, err)
	}

	scores, confidence := scansion.ProfileWithConfidence(normalized, records)
	return scores, confidence, nil
}

// ScorePoem builds the line score sequences of a poem. Corpus records for
// all of its distinct words are fetched in batches before scoring.
func (s *Service) ScorePoem(ctx context.Context, poem string) ([][]domain.Score, error) {
	words := distinctWords(poem)

	records, err := loadRecords(ctx, s.newRecordLoader(), words)
	if err != nil {
		return nil, err
	}

	s.log.DebugContext(ctx, "poem corpus loaded",
		"words", len(words),
		"known", countKnown(records),
	)

	return scansion.ScorePoem(poem, func(raw string) ([]domain.Score, error) {
		w := domain.NormalizeWord(raw)
		if w == "" {
			return []domain.Score{domain.Unknown}, nil
		}
		return scansion.Profile(w, records[w]), nil
	})
}

// distinctWords lists the normalized words of a poem once each, in order of
// first appearance, skipping tokens that normalize to nothing.
func distinctWords(poem string) []string {
	seen := make(map[string]struct{})
	var words []string
	for _, token := range domain.SplitWords(poem) {
		w := domain.NormalizeWord(token)
		if w == "" {
			continue
		}
		if _, ok := seen[w]; ok {
			continue
		}
		seen[w] = struct{}{}
		words = append(words, w)
	}
	return words
}

func countKnown(records map[string][]domain.Pronunciation) int {
	n := 0
	for _, recs := range records {
		if len(recs) > 0 {
			n++
		}
	}
	return n
}
