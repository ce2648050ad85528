package testhelper

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hathaway2010/poetry-scansion/internal/domain"
)

// UniqueWord returns prefix plus a short random suffix of letters, so words
// from parallel tests never collide and survive normalization.
func UniqueWord(prefix string) string {
	const letters = "abcdefghijklmnopqrstuvwxyz"
	id := uuid.New()
	suffix := make([]byte, 8)
	for i := range suffix {
		suffix[i] = letters[int(id[i])%len(letters)]
	}
	return prefix + string(suffix)
}

// SeedPronunciation inserts one record and returns it as stored.
func SeedPronunciation(t *testing.T, pool *pgxpool.Pool, word, stresses string, popularity int) domain.Pronunciation {
	t.Helper()

	p := domain.Pronunciation{Word: word, Stresses: stresses, Popularity: popularity}
	err := pool.QueryRow(context.Background(),
		`INSERT INTO pronunciations (word, stresses, popularity)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at, updated_at`,
		word, stresses, popularity,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedPronunciation %s %s: %v", word, stresses, err)
	}

	return p
}
