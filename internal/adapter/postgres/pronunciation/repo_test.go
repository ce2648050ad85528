package pronunciation_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hathaway2010/poetry-scansion/internal/adapter/postgres"
	"github.com/hathaway2010/poetry-scansion/internal/adapter/postgres/pronunciation"
	"github.com/hathaway2010/poetry-scansion/internal/adapter/postgres/testhelper"
	"github.com/hathaway2010/poetry-scansion/internal/domain"
)

func TestRepo_FindByWord_InsertionOrder(t *testing.T) {
	t.Parallel()
	pool := testhelper.SetupTestDB(t)
	repo := pronunciation.New(pool)
	ctx := context.Background()

	word := testhelper.UniqueWord("beloved")
	first := testhelper.SeedPronunciation(t, pool, word, "u/", 1)
	second := testhelper.SeedPronunciation(t, pool, word, "u/u", 1)

	got, err := repo.FindByWord(ctx, word)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, first.ID, got[0].ID)
	assert.Equal(t, second.ID, got[1].ID)
	assert.Equal(t, "u/u", got[1].Stresses)
}

func TestRepo_FindByWord_Unseen(t *testing.T) {
	t.Parallel()
	pool := testhelper.SetupTestDB(t)
	repo := pronunciation.New(pool)

	got, err := repo.FindByWord(context.Background(), testhelper.UniqueWord("unseen"))
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestRepo_FindByWords(t *testing.T) {
	t.Parallel()
	pool := testhelper.SetupTestDB(t)
	repo := pronunciation.New(pool)
	ctx := context.Background()

	moon := testhelper.UniqueWord("moon")
	water := testhelper.UniqueWord("water")
	missing := testhelper.UniqueWord("missing")
	testhelper.SeedPronunciation(t, pool, moon, "u", 1)
	testhelper.SeedPronunciation(t, pool, moon, "/", 15)
	testhelper.SeedPronunciation(t, pool, water, "/u", 3)

	got, err := repo.FindByWords(ctx, []string{moon, water, missing})
	require.NoError(t, err)

	require.Len(t, got[moon], 2)
	assert.Equal(t, "u", got[moon][0].Stresses)
	assert.Equal(t, "/", got[moon][1].Stresses)
	require.Len(t, got[water], 1)
	assert.Equal(t, 3, got[water][0].Popularity)
	_, ok := got[missing]
	assert.False(t, ok)
}

func TestRepo_FindByWords_Empty(t *testing.T) {
	t.Parallel()
	pool := testhelper.SetupTestDB(t)
	repo := pronunciation.New(pool)

	got, err := repo.FindByWords(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestRepo_Increment_CreatesThenIncrements(t *testing.T) {
	t.Parallel()
	pool := testhelper.SetupTestDB(t)
	repo := pronunciation.New(pool)
	ctx := context.Background()

	word := testhelper.UniqueWord("cat")

	created, err := repo.Increment(ctx, word, "/")
	require.NoError(t, err)
	assert.Equal(t, 1, created.Popularity)
	assert.Equal(t, word, created.Word)

	updated, err := repo.Increment(ctx, word, "/")
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, 2, updated.Popularity)
	assert.False(t, updated.UpdatedAt.Before(created.UpdatedAt))

	other, err := repo.Increment(ctx, word, "u")
	require.NoError(t, err)
	assert.NotEqual(t, created.ID, other.ID)
	assert.Equal(t, 1, other.Popularity)
}

func TestRepo_Increment_Concurrent(t *testing.T) {
	t.Parallel()
	pool := testhelper.SetupTestDB(t)
	repo := pronunciation.New(pool)
	ctx := context.Background()

	word := testhelper.UniqueWord("race")
	const workers = 8

	var wg sync.WaitGroup
	errs := make(chan error, workers)
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := repo.Increment(ctx, word, "/u")
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	got, err := repo.FindByWord(ctx, word)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, workers, got[0].Popularity)
}

func TestRepo_Increment_InvalidStresses(t *testing.T) {
	t.Parallel()
	pool := testhelper.SetupTestDB(t)
	repo := pronunciation.New(pool)

	_, err := repo.Increment(context.Background(), testhelper.UniqueWord("bad"), "x/")
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestRepo_Increment_InTxRollsBack(t *testing.T) {
	t.Parallel()
	pool := testhelper.SetupTestDB(t)
	repo := pronunciation.New(pool)
	tm := postgres.NewTxManager(pool)
	ctx := context.Background()

	word := testhelper.UniqueWord("tx")
	err := tm.RunInTx(ctx, func(ctx context.Context) error {
		if _, err := repo.Increment(ctx, word, "/"); err != nil {
			return err
		}
		_, err := repo.Increment(ctx, word, "bad")
		return err
	})
	require.Error(t, err)

	got, err := repo.FindByWord(ctx, word)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestRepo_BulkInsert_SkipsExisting(t *testing.T) {
	t.Parallel()
	pool := testhelper.SetupTestDB(t)
	repo := pronunciation.New(pool)
	ctx := context.Background()

	word := testhelper.UniqueWord("harbor")
	testhelper.SeedPronunciation(t, pool, word, "/u", 7)

	inserted, err := repo.BulkInsert(ctx, []domain.Pronunciation{
		{Word: word, Stresses: "/u", Popularity: 1},
		{Word: word, Stresses: "u/", Popularity: 1},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, inserted)

	got, err := repo.FindByWord(ctx, word)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, 7, got[0].Popularity)
	assert.Equal(t, "u/", got[1].Stresses)
}

func TestRepo_Count(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	repo := pronunciation.New(pool)
	ctx := context.Background()

	before, err := repo.Count(ctx)
	require.NoError(t, err)

	testhelper.SeedPronunciation(t, pool, testhelper.UniqueWord("count"), "/", 1)

	after, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, after, before+1)
}
