package config

import (
	"fmt"

	"github.com/hathaway2010/poetry-scansion/internal/scansion"
)

const maxLookupBatchSize = 10000

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if err := c.Corpus.validate(); err != nil {
		return fmt.Errorf("corpus: %w", err)
	}

	if c.Corpus.Driver == DriverPostgres && c.Database.DSN == "" {
		return fmt.Errorf("database.dsn is required when corpus.driver is %q", DriverPostgres)
	}

	if err := c.Scansion.validate(); err != nil {
		return fmt.Errorf("scansion: %w", err)
	}

	return nil
}

func (c *CorpusConfig) validate() error {
	switch c.Driver {
	case DriverPostgres:
	case DriverSQLite:
		if c.SQLitePath == "" {
			return fmt.Errorf("sqlite_path is required when driver is %q", DriverSQLite)
		}
	default:
		return fmt.Errorf("driver must be %q or %q (got %q)", DriverPostgres, DriverSQLite, c.Driver)
	}
	return nil
}

func (s *ScansionConfig) validate() error {
	if _, err := scansion.ParseAlgorithm(s.DefaultAlgorithm); err != nil {
		return fmt.Errorf("default_algorithm: %w", err)
	}
	if s.LookupBatchSize <= 0 || s.LookupBatchSize > maxLookupBatchSize {
		return fmt.Errorf("lookup_batch_size must be in 1..%d (got %d)", maxLookupBatchSize, s.LookupBatchSize)
	}
	if s.LookupWait < 0 {
		return fmt.Errorf("lookup_wait must be >= 0 (got %v)", s.LookupWait)
	}
	return nil
}
