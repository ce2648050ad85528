package scansion

import (
	"context"
	"fmt"

	"github.com/graph-gophers/dataloader/v7"

	"github.com/hathaway2010/poetry-scansion/internal/domain"
)

// newRecordLoader batches corpus reads for one poem. Caching is off: the
// caller deduplicates words, and a loader never outlives its call.
func (s *Service) newRecordLoader() *dataloader.Loader[string, []domain.Pronunciation] {
	return dataloader.NewBatchedLoader(
		newRecordsBatchFn(s.pronunciations),
		dataloader.WithWait[string, []domain.Pronunciation](s.lookupWait),
		dataloader.WithBatchCapacity[string, []domain.Pronunciation](s.batchSize),
		dataloader.WithCache[string, []domain.Pronunciation](&dataloader.NoCache[string, []domain.Pronunciation]{}),
	)
}

func newRecordsBatchFn(repo pronunciationRepo) dataloader.BatchFunc[string, []domain.Pronunciation] {
	return func(ctx context.Context, words []string) []*dataloader.Result[[]domain.Pronunciation] {
		grouped, err := repo.FindByWords(ctx, words)
		if err != nil {
			return errorResults[[]domain.Pronunciation](len(words), err)
		}
		return mapResults(words, grouped, emptySlice[domain.Pronunciation])
	}
}

// loadRecords fetches the records of every distinct word through loader.
func loadRecords(
	ctx context.Context,
	loader *dataloader.Loader[string, []domain.Pronunciation],
	words []string,
) (map[string][]domain.Pronunciation, error) {
	out := make(map[string][]domain.Pronunciation, len(words))
	if len(words) == 0 {
		return out, nil
	}

	records, errs := loader.LoadMany(ctx, words)()
	// Every key of a failed batch carries the same error.
	for _, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("load pronunciations: %w", err)
		}
	}
	for i, w := range words {
		out[w] = records[i]
	}
	return out, nil
}

// errorResults returns n results that all carry err.
func errorResults[V any](n int, err error) []*dataloader.Result[V] {
	results := make([]*dataloader.Result[V], n)
	for i := range results {
		results[i] = &dataloader.Result[V]{Error: err}
	}
	return results
}

// mapResults maps grouped results back to key order, using defaultFn for missing keys.
func mapResults[V any](keys []string, grouped map[string]V, defaultFn func() V) []*dataloader.Result[V] {
	results := make([]*dataloader.Result[V], len(keys))
	for i, key := range keys {
		if v, ok := grouped[key]; ok {
			results[i] = &dataloader.Result[V]{Data: v}
		} else {
			results[i] = &dataloader.Result[V]{Data: defaultFn()}
		}
	}
	return results
}

// emptySlice returns a non-nil empty slice.
func emptySlice[T any]() []T {
	return []T{}
}
