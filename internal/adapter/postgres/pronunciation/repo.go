// Package pronunciation stores per-word stress observations in PostgreSQL.
package pronunciation

import (
	"context"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/hathaway2010/poetry-scansion/internal/adapter/postgres"
	"github.com/hathaway2010/poetry-scansion/internal/domain"
)

const (
	table  = "pronunciations"
	entity = "pronunciation"
)

var (
	psql    = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	columns = []string{"id", "word", "stresses", "popularity", "created_at", "updated_at"}
)

// Repo provides pronunciation persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new pronunciation repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// FindByWord returns every record for a normalized word in insertion order.
// Returns an empty slice (not nil) for an unseen word.
func (r *Repo) FindByWord(ctx context.Context, word string) ([]domain.Pronunciation, error) {
	query, args, err := psql.Select(columns...).
		From(table).
		Where(squirrel.Eq{"word": word}).
		OrderBy("created_at", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build find by word: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, entity, word)
	}
	defer rows.Close()

	result, err := scanPronunciations(rows)
	if err != nil {
		return nil, postgres.MapError(err, entity, word)
	}

	return result, nil
}

// FindByWords returns the records of many words in one query, grouped by
// word. Each group keeps insertion order; unseen words are absent.
func (r *Repo) FindByWords(ctx context.Context, words []string) (map[string][]domain.Pronunciation, error) {
	result := make(map[string][]domain.Pronunciation, len(words))
	if len(words) == 0 {
		return result, nil
	}

	query, args, err := psql.Select(columns...).
		From(table).
		Where(squirrel.Eq{"word": words}).
		OrderBy("word", "created_at", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build find by words: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, entity, fmt.Sprintf("batch(%d)", len(words)))
	}
	defer rows.Close()

	records, err := scanPronunciations(rows)
	if err != nil {
		return nil, postgres.MapError(err, entity, fmt.Sprintf("batch(%d)", len(words)))
	}

	for _, p := range records {
		result[p.Word] = append(result[p.Word], p)
	}

	return result, nil
}

// Count returns the number of stored records.
func (r *Repo) Count(ctx context.Context) (int, error) {
	query, args, err := psql.Select("count(*)").From(table).ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count: %w", err)
	}

	var n int
	if err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, postgres.MapError(err, entity, "count")
	}
	return n, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Increment records one observation of stresses for word: the record's
// popularity goes up by one, or a record with popularity 1 is created.
// The upsert is a single statement, so concurrent increments are never lost.
func (r *Repo) Increment(ctx context.Context, word, stresses string) (domain.Pronunciation, error) {
	query, args, err := psql.Insert(table).
		Columns("word", "stresses", "popularity").
		Values(word, stresses, 1).
		Suffix(`ON CONFLICT (word, stresses) DO UPDATE
			SET popularity = ` + table + `.popularity + 1, updated_at = clock_timestamp()
			RETURNING ` + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return domain.Pronunciation{}, fmt.Errorf("build increment: %w", err)
	}

	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...)
	p, err := scanPronunciation(row)
	if err != nil {
		return domain.Pronunciation{}, postgres.MapError(err, entity, word+" "+stresses)
	}

	return p, nil
}

// BulkInsert inserts records using pgx.Batch. Existing (word, stresses)
// pairs are left untouched via ON CONFLICT DO NOTHING.
// Returns the number of actually inserted rows.
func (r *Repo) BulkInsert(ctx context.Context, records []domain.Pronunciation) (int, error) {
	if len(records) == 0 {
		return 0, nil
	}

	batch := &pgx.Batch{}
	for _, p := range records {
		query, args, err := psql.Insert(table).
			Columns("word", "stresses", "popularity").
			Values(p.Word, p.Stresses, p.Popularity).
			Suffix("ON CONFLICT (word, stresses) DO NOTHING").
			ToSql()
		if err != nil {
			return 0, fmt.Errorf("build bulk insert: %w", err)
		}
		batch.Queue(query, args...)
	}

	return r.sendBatchExec(ctx, batch)
}

// sendBatchExec sends a pgx.Batch and counts affected rows from Exec results.
func (r *Repo) sendBatchExec(ctx context.Context, batch *pgx.Batch) (int, error) {
	results := postgres.QuerierFromCtx(ctx, r.pool).SendBatch(ctx, batch)
	defer results.Close()

	var inserted int
	for range batch.Len() {
		tag, err := results.Exec()
		if err != nil {
			return inserted, postgres.MapError(err, entity, "batch")
		}
		inserted += int(tag.RowsAffected())
	}

	return inserted, nil
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

func scanPronunciation(row pgx.Row) (domain.Pronunciation, error) {
	var p domain.Pronunciation
	err := row.Scan(&p.ID, &p.Word, &p.Stresses, &p.Popularity, &p.CreatedAt, &p.UpdatedAt)
	return p, err
}

func scanPronunciations(rows pgx.Rows) ([]domain.Pronunciation, error) {
	result := []domain.Pronunciation{}
	for rows.Next() {
		p, err := scanPronunciation(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
