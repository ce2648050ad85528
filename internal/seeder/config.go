package seeder

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds seeder pipeline settings.
type Config struct {
	CMUPath         string `yaml:"cmu_path"         env:"SEEDER_CMU_PATH"`
	BatchSize       int    `yaml:"batch_size"       env:"SEEDER_BATCH_SIZE"       env-default:"500"`
	Popularity      int    `yaml:"popularity"       env:"SEEDER_POPULARITY"       env-default:"1"`
	DemoteStopwords bool   `yaml:"demote_stopwords" env:"SEEDER_DEMOTE_STOPWORDS"`
	DryRun          bool   `yaml:"dry_run"          env:"SEEDER_DRY_RUN"`
}

// LoadConfig reads seeder configuration from a YAML file and environment variables.
// Priority: ENV > YAML > defaults (via env-default tags).
func LoadConfig(path string) (*Config, error) {
	var cfg Config

	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("seeder config: file %s not found", path)
		}
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("seeder config: read %s: %w", path, err)
		}
		return &cfg, nil
	}

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("seeder config: read env: %w", err)
	}

	return &cfg, nil
}

// Validate checks the settings a run depends on.
func (c *Config) Validate() error {
	if c.CMUPath == "" {
		return fmt.Errorf("seeder config: cmu_path is required")
	}
	if c.BatchSize <= 0 {
		return fmt.Errorf("seeder config: batch_size must be positive (got %d)", c.BatchSize)
	}
	if c.Popularity < 1 {
		return fmt.Errorf("seeder config: popularity must be >= 1 (got %d)", c.Popularity)
	}
	return nil
}
