package scansion

import (
	"context"
	"sync"

	"github.com/hathaway2010/poetry-scansion/internal/domain"
)

var (
	_ pronunciationRepo = &pronunciationRepoMock{}
	_ txManager         = &txManagerMock{}
)

type pronunciationRepoMock struct {
	FindByWordFunc  func(ctx context.Context, word string) ([]domain.Pronunciation, error)
	FindByWordsFunc func(ctx context.Context, words []string) (map[string][]domain.Pronunciation, error)
	IncrementFunc   func(ctx context.Context, word, stresses string) (domain.Pronunciation, error)

	calls struct {
		FindByWord []struct {
			Word string
		}
		FindByWords []struct {
			Words []string
		}
		Increment []struct {
			Word     string
			Stresses string
		}
	}
	lockFindByWord  sync.RWMutex
	lockFindByWords sync.RWMutex
	lockIncrement   sync.RWMutex
}

func (mock *pronunciationRepoMock) FindByWord(ctx context.Context, word string) ([]domain.Pronunciation, error) {
	if mock.FindByWordFunc == nil {
		panic("pronunciationRepoMock.FindByWordFunc: method is nil but pronunciationRepo.FindByWord was just called")
	}
	mock.lockFindByWord.Lock()
	mock.calls.FindByWord = append(mock.calls.FindByWord, struct{ Word string }{Word: word})
	mock.lockFindByWord.Unlock()
	return mock.FindByWordFunc(ctx, word)
}

func (mock *pronunciationRepoMock) FindByWordCalls() []struct{ Word string } {
	mock.lockFindByWord.RLock()
	defer mock.lockFindByWord.RUnlock()
	return mock.calls.FindByWord
}

func (mock *pronunciationRepoMock) FindByWords(ctx context.Context, words []string) (map[string][]domain.Pronunciation, error) {
	if mock.FindByWordsFunc == nil {
		panic("pronunciationRepoMock.FindByWordsFunc: method is nil but pronunciationRepo.FindByWords was just called")
	}
	mock.lockFindByWords.Lock()
	mock.calls.FindByWords = append(mock.calls.FindByWords, struct{ Words []string }{Words: words})
	mock.lockFindByWords.Unlock()
	return mock.FindByWordsFunc(ctx, words)
}

func (mock *pronunciationRepoMock) FindByWordsCalls() []struct{ Words []string } {
	mock.lockFindByWords.RLock()
	defer mock.lockFindByWords.RUnlock()
	return mock.calls.FindByWords
}

func (mock *pronunciationRepoMock) Increment(ctx context.Context, word, stresses string) (domain.Pronunciation, error) {
	if mock.IncrementFunc == nil {
		panic("pronunciationRepoMock.IncrementFunc: method is nil but pronunciationRepo.Increment was just called")
	}
	callInfo := struct {
		Word     string
		Stresses string
	}{Word: word, Stresses: stresses}
	mock.lockIncrement.Lock()
	mock.calls.Increment = append(mock.calls.Increment, callInfo)
	mock.lockIncrement.Unlock()
	return mock.IncrementFunc(ctx, word, stresses)
}

func (mock *pronunciationRepoMock) IncrementCalls() []struct {
	Word     string
	Stresses string
} {
	mock.lockIncrement.RLock()
	defer mock.lockIncrement.RUnlock()
	return mock.calls.Increment
}

type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error

	calls struct {
		RunInTx []struct{}
	}
	lockRunInTx sync.RWMutex
}

func (mock *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if mock.RunInTxFunc == nil {
		panic("txManagerMock.RunInTxFunc: method is nil but txManager.RunInTx was just called")
	}
	mock.lockRunInTx.Lock()
	mock.calls.RunInTx = append(mock.calls.RunInTx, struct{}{})
	mock.lockRunInTx.Unlock()
	return mock.RunInTxFunc(ctx, fn)
}

func (mock *txManagerMock) RunInTxCalls() []struct{} {
	mock.lockRunInTx.RLock()
	defer mock.lockRunInTx.RUnlock()
	return mock.calls.RunInTx
}
