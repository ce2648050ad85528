package testhelper

import (
	"context"
	"testing"
)

func TestSetupTestDB_Smoke(t *testing.T) {
	pool := SetupTestDB(t)

	word := UniqueWord("smoke")
	seeded := SeedPronunciation(t, pool, word, "/u", 3)

	var popularity int
	err := pool.QueryRow(
		context.Background(),
		`SELECT popularity FROM pronunciations WHERE id = $1`,
		seeded.ID,
	).Scan(&popularity)
	if err != nil {
		t.Fatalf("expected pronunciation in DB, got error: %v", err)
	}

	if popularity != 3 {
		t.Fatalf("expected popularity 3, got %d", popularity)
	}
}
