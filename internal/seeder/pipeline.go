package seeder

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/orsinium-labs/stopwords"

	"github.com/hathaway2010/poetry-scansion/internal/domain"
	"github.com/hathaway2010/poetry-scansion/internal/seeder/cmu"
	"github.com/hathaway2010/poetry-scansion/pkg/ctxutil"
)

// Result holds the outcome of a pipeline run.
type Result struct {
	Words      int // distinct words parsed
	Patterns   int // records offered to the store
	Demoted    int // stopword patterns rewritten from "/" to "u"
	Inserted   int
	Skipped    int // already in the corpus, or not written in dry-run mode
	CorpusSize int // records in the store after the run, 0 in dry-run mode
	Duration   time.Duration
}

// Pipeline seeds the corpus from a CMU dictionary file.
type Pipeline struct {
	log       *slog.Logger
	repo      PronunciationBulkRepo
	cfg       Config
	stopwords *stopwords.Stopwords
}

// NewPipeline creates a new Pipeline.
func NewPipeline(log *slog.Logger, repo PronunciationBulkRepo, cfg Config) *Pipeline {
	p := &Pipeline{
		log:  log.With("component", "seeder"),
		repo: repo,
		cfg:  cfg,
	}
	if cfg.DemoteStopwords {
		p.stopwords = stopwords.MustGet("en")
	}
	return p
}

// Run parses the dictionary and inserts its patterns. Pairs already in the
// corpus keep their popularity.
func (p *Pipeline) Run(ctx context.Context) (Result, error) {
	start := time.Now()

	parsed, err := cmu.Parse(p.cfg.CMUPath)
	if err != nil {
		return Result{}, fmt.Errorf("parse cmu: %w", err)
	}
	p.log.Info("cmu parsed",
		slog.Int("total_lines", parsed.Stats.TotalLines),
		slog.Int("unique_words", parsed.Stats.UniqueWords),
		slog.Int("skipped_lines", parsed.Stats.SkippedLines),
		slog.Int("duplicate_patterns", parsed.Stats.DuplicatePatterns),
	)

	records := parsed.ToPronunciations(p.cfg.Popularity)
	records, demoted := p.demote(records)

	result := Result{
		Words:    parsed.Stats.UniqueWords,
		Patterns: len(records),
		Demoted:  demoted,
	}

	if p.cfg.DryRun {
		result.Skipped = len(records)
		result.Duration = time.Since(start)
		p.log.Info("dry run, nothing written", slog.Int("patterns", len(records)))
		return result, nil
	}

	inserted, err := batchProcess(records, p.cfg.BatchSize, func(batch []domain.Pronunciation) (int, error) {
		return p.repo.BulkInsert(ctx, batch)
	})
	if err != nil {
		return Result{}, fmt.Errorf("insert pronunciations: %w", err)
	}
	result.Inserted = inserted
	result.Skipped = len(records) - inserted

	size, err := p.repo.Count(ctx)
	if err != nil {
		return Result{}, fmt.Errorf("count pronunciations: %w", err)
	}
	result.CorpusSize = size
	result.Duration = time.Since(start)

	p.log.InfoContext(ctx, "pipeline completed",
		slog.String("run_id", ctxutil.RunIDFromCtx(ctx)),
		slog.Int("inserted", result.Inserted),
		slog.Int("skipped", result.Skipped),
		slog.Int("demoted", result.Demoted),
		slog.Int("corpus_size", result.CorpusSize),
		slog.Duration("duration", result.Duration),
	)
	return result, nil
}

// demote rewrites stressed monosyllabic stopwords as unstressed. A word
// that already had both readings keeps only one.
func (p *Pipeline) demote(records []domain.Pronunciation) ([]domain.Pronunciation, int) {
	if p.stopwords == nil {
		return records, 0
	}

	type key struct{ word, stresses string }
	seen := make(map[key]bool, len(records))
	out := records[:0]
	demoted := 0
	for _, r := range records {
		if r.Stresses == string(domain.Stressed) && p.stopwords.Contains(r.Word) {
			r.Stresses = string(domain.Unstressed)
			demoted++
		}
		k := key{r.Word, r.Stresses}
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, r)
	}
	return out, demoted
}

// batchProcess splits items into batches and processes each via fn.
func batchProcess[T any](items []T, batchSize int, fn func([]T) (int, error)) (int, error) {
	if len(items) == 0 {
		return 0, nil
	}
	if batchSize <= 0 {
		batchSize = 500
	}

	total := 0
	for i := 0; i < len(items); i += batchSize {
		end := min(i+batchSize, len(items))
		n, err := fn(items[i:end])
		if err != nil {
			return total, err
		}
		total += n
	}
	return total, nil
}
