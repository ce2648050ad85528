package scansion

import (
	"context"
	"errors"
	"fmt"

	"github.com/hathaway2010/poetry-scansion/internal/domain"
	"github.com/hathaway2010/poetry-scansion/internal/scansion"
	"github.com/hathaway2010/poetry-scansion/pkg/ctxutil"
)

type observation struct {
	word     string
	stresses string
}

// RecordScansion feeds a confirmed scansion of a poem back into the corpus:
// each word's pattern gains one observation. The poem and scansion must have
// the same number of whitespace-separated tokens, and every pattern must be
// made of '/' and 'u'; otherwise nothing is written. Words that normalize to
// nothing are skipped. All increments commit together.
func (s *Service) RecordScansion(ctx context.Context, poem, scan string) error {
	words := domain.SplitWords(poem)
	patterns := domain.SplitWords(scan)
	if len(words) != len(patterns) {
		return fmt.Errorf("%w: poem has %d words, scansion has %d",
			domain.ErrMisalignedScansion, len(words), len(patterns))
	}

	var fieldErrs []domain.FieldError
	for i, p := range patterns {
		err := domain.ValidateStresses(fmt.Sprintf("scansion[%d]", i), p)
		var ve *domain.ValidationError
		if errors.As(err, &ve) {
			fieldErrs = append(fieldErrs, ve.Errors...)
		}
	}
	if len(fieldErrs) > 0 {
		return domain.NewValidationErrors(fieldErrs)
	}

	obs := make([]observation, 0, len(words))
	for i, raw := range words {
		w := domain.NormalizeWord(raw)
		if w == "" {
			continue
		}
		obs = append(obs, observation{word: w, stresses: patterns[i]})
	}

	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		for _, o := range obs {
			if _, err := s.pronunciations.Increment(ctx, o.word, o.stresses); err != nil {
				return fmt.Errorf("record %s %s: %w", o.word, o.stresses, err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "scansion recorded",
		"run_id", ctxutil.RunIDFromCtx(ctx),
		"words", len(words),
		"observations", len(obs),
	)
	return nil
}

// GradeScansion compares a submitted scansion with a reference one.
func (s *Service) GradeScansion(ctx context.Context, reference, submitted string) (scansion.Agreement, error) {
	a, err := scansion.Grade(reference, submitted)
	if err != nil {
		return scansion.Agreement{}, err
	}

	s.log.DebugContext(ctx, "scansion graded",
		"words", a.Words,
		"disagreements", a.Disagreements,
		"points", a.Points,
	)
	return a, nil
}
