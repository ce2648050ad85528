// Package scansion is the scansion engine's service layer: it fetches corpus
// evidence for poems, runs the scansion algorithms over it, and records
// confirmed scansions back into the corpus.
package scansion

import (
	"context"
	"log/slog"
	"time"

	"github.com/hathaway2010/poetry-scansion/internal/domain"
	"github.com/hathaway2010/poetry-scansion/internal/scansion"
	"github.com/hathaway2010/poetry-scansion/internal/syllable"
)

const (
	DefaultLookupBatchSize = 200
	DefaultLookupWait      = 2 * time.Millisecond
)

type pronunciationRepo interface {
	FindByWord(ctx context.Context, word string) ([]domain.Pronunciation, error)
	FindByWords(ctx context.Context, words []string) (map[string][]domain.Pronunciation, error)
	Increment(ctx context.Context, word, stresses string) (domain.Pronunciation, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Options tunes the service. Zero values select the defaults.
type Options struct {
	DefaultAlgorithm scansion.Algorithm
	LookupBatchSize  int
	LookupWait       time.Duration
}

// Service scans poems against the pronunciation corpus.
type Service struct {
	pronunciations pronunciationRepo
	tx             txManager
	log            *slog.Logger
	syllables      *syllable.Estimator

	algorithm  scansion.Algorithm
	batchSize  int
	lookupWait time.Duration
}

// NewService creates a new scansion service.
func NewService(
	log *slog.Logger,
	pronunciations pronunciationRepo,
	tx txManager,
	opts Options,
) *Service {
	if opts.DefaultAlgorithm == "" {
		opts.DefaultAlgorithm = scansion.DefaultAlgorithm
	}
	if opts.LookupBatchSize <= 0 {
		opts.LookupBatchSize = DefaultLookupBatchSize
	}
	if opts.LookupWait <= 0 {
		opts.LookupWait = DefaultLookupWait
	}

	return &Service{
		pronunciations: pronunciations,
		tx:             tx,
		log:            log.With("service", "scansion"),
		syllables:      syllable.New(syllable.DefaultRules),
		algorithm:      opts.DefaultAlgorithm,
		batchSize:      opts.LookupBatchSize,
		lookupWait:     opts.LookupWait,
	}
}
