// Package seeder loads dictionary stress patterns into the pronunciation corpus.
package seeder

import (
	"context"

	"github.com/hathaway2010/poetry-scansion/internal/domain"
)

// PronunciationBulkRepo is the batch repository contract consumed by the pipeline.
// Implemented by both postgres and sqlite pronunciation.Repo.
type PronunciationBulkRepo interface {
	// BulkInsert skips (word, stresses) pairs already present and returns
	// the number of new rows.
	BulkInsert(ctx context.Context, records []domain.Pronunciation) (int, error)
	Count(ctx context.Context) (int, error)
}
