// Package pronunciation stores per-word stress observations in SQLite.
package pronunciation

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/hathaway2010/poetry-scansion/internal/adapter/sqlite"
	"github.com/hathaway2010/poetry-scansion/internal/domain"
)

const (
	table  = "pronunciations"
	entity = "pronunciation"
)

var (
	builder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)
	columns = []string{"id", "word", "stresses", "popularity", "created_at", "updated_at"}
)

// Repo provides pronunciation persistence backed by SQLite. Insertion order
// is rowid order.
type Repo struct {
	db  *sql.DB
	now func() time.Time
}

// New creates a new pronunciation repository.
func New(db *sql.DB) *Repo {
	return &Repo{db: db, now: time.Now}
}

// FindByWord returns every record for a normalized word in insertion order.
// Returns an empty slice (not nil) for an unseen word.
func (r *Repo) FindByWord(ctx context.Context, word string) ([]domain.Pronunciation, error) {
	query, args, err := builder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"word": word}).
		OrderBy("rowid").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build find by word: %w", err)
	}

	rows, err := sqlite.QuerierFromCtx(ctx, r.db).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, sqlite.MapError(err, entity, word)
	}
	defer rows.Close()

	result, err := scanPronunciations(rows)
	if err != nil {
		return nil, sqlite.MapError(err, entity, word)
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

	query, args, err := builder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"word": words}).
		OrderBy("rowid").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build find by words: %w", err)
	}

	key := fmt.Sprintf("batch(%d)", len(words))
	rows, err := sqlite.QuerierFromCtx(ctx, r.db).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, sqlite.MapError(err, entity, key)
	}
	defer rows.Close()

	records, err := scanPronunciations(rows)
	if err != nil {
		return nil, sqlite.MapError(err, entity, key)
	}

	for _, p := range records {
		result[p.Word] = append(result[p.Word], p)
	}
	return result, nil
}

// Count returns the number of stored records.
func (r *Repo) Count(ctx context.Context) (int, error) {
	query, args, err := builder.Select("count(*)").From(table).ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count: %w", err)
	}

	var n int
	if err := sqlite.QuerierFromCtx(ctx, r.db).QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		return 0, sqlite.MapError(err, entity, "count")
	}
	return n, nil
}

// Increment records one observation of stresses for word: the record's
// popularity goes up by one, or a record with popularity 1 is created.
func (r *Repo) Increment(ctx context.Context, word, stresses string) (domain.Pronunciation, error) {
	now := r.now().UnixNano()
	query, args, err := builder.Insert(table).
		Columns(columns...).
		Values(uuid.NewString(), word, stresses, 1, now, now).
		Suffix(`ON CONFLICT (word, stresses) DO UPDATE
			SET popularity = popularity + 1, updated_at = excluded.updated_at
			RETURNING ` + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return domain.Pronunciation{}, fmt.Errorf("build increment: %w", err)
	}

	row := sqlite.QuerierFromCtx(ctx, r.db).QueryRowContext(ctx, query, args...)
	p, err := scanPronunciation(row)
	if err != nil {
		return domain.Pronunciation{}, sqlite.MapError(err, entity, word+" "+stresses)
	}
	return p, nil
}

// BulkInsert inserts records in one transaction, leaving existing
// (word, stresses) pairs untouched. Returns the number of inserted rows.
func (r *Repo) BulkInsert(ctx context.Context, records []domain.Pronunciation) (int, error) {
	if len(records) == 0 {
		return 0, nil
	}

	var inserted int
	err := sqlite.NewTxManager(r.db).RunInTx(ctx, func(ctx context.Context) error {
		q := sqlite.QuerierFromCtx(ctx, r.db)
		now := r.now().UnixNano()
		for _, p := range records {
			query, args, err := builder.Insert(table).
				Columns(columns...).
				Values(uuid.NewString(), p.Word, p.Stresses, p.Popularity, now, now).
				Suffix("ON CONFLICT (word, stresses) DO NOTHING").
				ToSql()
			if err != nil {
				return fmt.Errorf("build bulk insert: %w", err)
			}

			res, err := q.ExecContext(ctx, query, args...)
			if err != nil {
				return sqlite.MapError(err, entity, p.Word+" "+p.Stresses)
			}
			n, err := res.RowsAffected()
			if err != nil {
				return fmt.Errorf("rows affected: %w", err)
			}
			inserted += int(n)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return inserted, nil
}

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanPronunciation(row scanner) (domain.Pronunciation, error) {
	var (
		p                    domain.Pronunciation
		id                   string
		createdAt, updatedAt int64
	)
	if err := row.Scan(&id, &p.Word, &p.Stresses, &p.Popularity, &createdAt, &updatedAt); err != nil {
		return domain.Pronunciation{}, err
	}

	parsed, err := uuid.Parse(id)
	if err != nil {
		return domain.Pronunciation{}, fmt.Errorf("parse id %q: %w", id, err)
	}
	p.ID = parsed
	p.CreatedAt = time.Unix(0, createdAt).UTC()
	p.UpdatedAt = time.Unix(0, updatedAt).UTC()
	return p, nil
}

func scanPronunciations(rows *sql.Rows) ([]domain.Pronunciation, error) {
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
