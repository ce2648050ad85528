package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hathaway2010/poetry-scansion/internal/adapter/postgres"
	pgpronunciation "github.com/hathaway2010/poetry-scansion/internal/adapter/postgres/pronunciation"
	"github.com/hathaway2010/poetry-scansion/internal/adapter/sqlite"
	sqlitepronunciation "github.com/hathaway2010/poetry-scansion/internal/adapter/sqlite/pronunciation"
	"github.com/hathaway2010/poetry-scansion/internal/config"
	"github.com/hathaway2010/poetry-scansion/internal/domain"
	"github.com/hathaway2010/poetry-scansion/internal/scansion"
	scansionsvc "github.com/hathaway2010/poetry-scansion/internal/service/scansion"
)

// PronunciationStore is what both corpus drivers provide.
type PronunciationStore interface {
	FindByWord(ctx context.Context, word string) ([]domain.Pronunciation, error)
	FindByWords(ctx context.Context, words []string) (map[string][]domain.Pronunciation, error)
	Increment(ctx context.Context, word, stresses string) (domain.Pronunciation, error)
	BulkInsert(ctx context.Context, records []domain.Pronunciation) (int, error)
	Count(ctx context.Context) (int, error)
}

// TxRunner runs fn in one transaction of the corpus store.
type TxRunner interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

var (
	_ PronunciationStore = (*pgpronunciation.Repo)(nil)
	_ PronunciationStore = (*sqlitepronunciation.Repo)(nil)
	_ TxRunner           = (*postgres.TxManager)(nil)
	_ TxRunner           = (*sqlite.TxManager)(nil)
)

// Corpus is an open pronunciation store.
type Corpus struct {
	Driver         string
	Pronunciations PronunciationStore
	Tx             TxRunner
	close          func()
}

// Close releases the underlying connections. Later calls do nothing.
func (c *Corpus) Close() {
	if c.close != nil {
		c.close()
		c.close = nil
	}
}

// OpenCorpus connects to the store selected by cfg.Corpus.Driver. Postgres
// migrations run only when corpus.auto_migrate is set; sqlite always migrates.
func OpenCorpus(ctx context.Context, cfg *config.Config, log *slog.Logger) (*Corpus, error) {
	switch cfg.Corpus.Driver {
	case config.DriverPostgres:
		pool, err := postgres.NewPool(ctx, cfg.Database)
		if err != nil {
			return nil, fmt.Errorf("connect to database: %w", err)
		}
		if cfg.Corpus.AutoMigrate {
			if _, err := postgres.Migrate(ctx, pool, log); err != nil {
				pool.Close()
				return nil, fmt.Errorf("migrate: %w", err)
			}
		}
		return &Corpus{
			Driver:         config.DriverPostgres,
			Pronunciations: pgpronunciation.New(pool),
			Tx:             postgres.NewTxManager(pool),
			close:          pool.Close,
		}, nil

	case config.DriverSQLite:
		db, err := sqlite.Open(ctx, cfg.Corpus.SQLitePath, log)
		if err != nil {
			return nil, fmt.Errorf("open corpus %s: %w", cfg.Corpus.SQLitePath, err)
		}
		return &Corpus{
			Driver:         config.DriverSQLite,
			Pronunciations: sqlitepronunciation.New(db),
			Tx:             sqlite.NewTxManager(db),
			close:          func() { _ = db.Close() },
		}, nil

	default:
		return nil, fmt.Errorf("unknown corpus driver %q", cfg.Corpus.Driver)
	}
}

// Migrate applies pending migrations to the configured store regardless of
// corpus.auto_migrate and returns how many ran.
func Migrate(ctx context.Context, cfg *config.Config, log *slog.Logger) (int, error) {
	switch cfg.Corpus.Driver {
	case config.DriverPostgres:
		pool, err := postgres.NewPool(ctx, cfg.Database)
		if err != nil {
			return 0, fmt.Errorf("connect to database: %w", err)
		}
		defer pool.Close()
		return postgres.Migrate(ctx, pool, log)

	case config.DriverSQLite:
		// Open migrates; report what a second pass finds.
		db, err := sqlite.Open(ctx, cfg.Corpus.SQLitePath, log)
		if err != nil {
			return 0, fmt.Errorf("open corpus %s: %w", cfg.Corpus.SQLitePath, err)
		}
		defer db.Close()
		return sqlite.Migrate(ctx, db, log)

	default:
		return 0, fmt.Errorf("unknown corpus driver %q", cfg.Corpus.Driver)
	}
}

// NewScansionService wires the scansion service to an open corpus.
func NewScansionService(cfg config.ScansionConfig, corpus *Corpus, log *slog.Logger) (*scansionsvc.Service, error) {
	alg, err := scansion.ParseAlgorithm(cfg.DefaultAlgorithm)
	if err != nil {
		return nil, err
	}
	return scansionsvc.NewService(log, corpus.Pronunciations, corpus.Tx, scansionsvc.Options{
		DefaultAlgorithm: alg,
		LookupBatchSize:  cfg.LookupBatchSize,
		LookupWait:       cfg.LookupWait,
	}), nil
}

// App is a loaded configuration with its logger, corpus and service.
type App struct {
	Config   *config.Config
	Log      *slog.Logger
	Corpus   *Corpus
	Scansion *scansionsvc.Service
}

// New loads configuration from configPath (see config.Load), initializes the
// logger, opens the corpus and builds the scansion service.
func New(ctx context.Context, configPath string) (*App, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	logger := NewLogger(cfg.Log)
	logger.Debug("starting application",
		slog.String("version", BuildVersion()),
		slog.String("corpus_driver", cfg.Corpus.Driver),
		slog.String("default_algorithm", cfg.Scansion.DefaultAlgorithm),
	)

	corpus, err := OpenCorpus(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	svc, err := NewScansionService(cfg.Scansion, corpus, logger)
	if err != nil {
		corpus.Close()
		return nil, err
	}

	return &App{
		Config:   cfg,
		Log:      logger,
		Corpus:   corpus,
		Scansion: svc,
	}, nil
}

// Close releases the corpus.
func (a *App) Close() {
	a.Corpus.Close()
}
