package config

import "time"

// Corpus store drivers.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Config is the root application configuration.
type Config struct {
	Corpus   CorpusConfig   `yaml:"corpus"`
	Database DatabaseConfig `yaml:"database"`
	Scansion ScansionConfig `yaml:"scansion"`
	Log      LogConfig      `yaml:"log"`
}

// CorpusConfig selects where pronunciation records live.
type CorpusConfig struct {
	Driver     string `yaml:"driver"      env:"CORPUS_DRIVER"      env-default:"sqlite"`
	SQLitePath string `yaml:"sqlite_path" env:"CORPUS_SQLITE_PATH" env-default:"./scansion.db"`
	// AutoMigrate applies pending postgres migrations on startup. The sqlite
	// corpus always migrates itself when opened.
	AutoMigrate bool `yaml:"auto_migrate" env:"CORPUS_AUTO_MIGRATE"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"10"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"1"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// ScansionConfig holds scansion engine settings.
type ScansionConfig struct {
	DefaultAlgorithm string        `yaml:"default_algorithm" env:"SCANSION_DEFAULT_ALGORITHM" env-default:"house-robber"`
	LookupBatchSize  int           `yaml:"lookup_batch_size" env:"SCANSION_LOOKUP_BATCH_SIZE" env-default:"200"`
	LookupWait       time.Duration `yaml:"lookup_wait"       env:"SCANSION_LOOKUP_WAIT"       env-default:"2ms"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}
