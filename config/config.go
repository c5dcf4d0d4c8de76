package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Storage    StorageConfig    `mapstructure:"storage"`
	Corpus     CorpusConfig     `mapstructure:"corpus"`
	Database   DatabaseConfig   `mapstructure:"database"`
	Redis      RedisConfig      `mapstructure:"redis"`
	JWT        JWTConfig        `mapstructure:"jwt"`
	Auth       AuthConfig       `mapstructure:"auth"`
	Anonymizer AnonymizerConfig `mapstructure:"anonymizer"`
	API        APIConfig        `mapstructure:"api"`
	Log        LogConfig        `mapstructure:"log"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"` // debug, release, test
}

// StorageConfig selects the corpus backend the API serves from.
type StorageConfig struct {
	Backend string `mapstructure:"backend"` // memory, postgres
}

// CorpusConfig names the filesystem artifacts of an anonymization run.
type CorpusConfig struct {
	RawDir       string `mapstructure:"raw_dir"`       // partitioned capture tree to walk
	DataFile     string `mapstructure:"data_file"`     // anonymized corpus (flat JSON array)
	ReportFile   string `mapstructure:"report_file"`   // relationship report
	MappingsFile string `mapstructure:"mappings_file"` // pseudonym mappings (sensitive)
	SampleFile   string `mapstructure:"sample_file"`   // human-review sample
	SampleSize   int    `mapstructure:"sample_size"`
}

type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxConns        int32         `mapstructure:"max_conns"`
	MinConns        int32         `mapstructure:"min_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// Addr returns the Redis address string.
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

type JWTConfig struct {
	Secret string        `mapstructure:"secret"`
	Expiry time.Duration `mapstructure:"expiry"`
	Issuer string        `mapstructure:"issuer"`
}

// AuthConfig holds the single operator account allowed to read the sensitive
// endpoints. Both fields empty disables login entirely.
type AuthConfig struct {
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
}

// AnonymizerConfig controls the deterministic engine. Changing the seed
// produces a completely different but equally consistent pseudonym universe.
type AnonymizerConfig struct {
	Seed     uint64  `mapstructure:"seed"`
	Variance float64 `mapstructure:"variance"`
}

// APIConfig tunes the serving surface: pagination bounds and the simulated
// upstream latency band.
type APIConfig struct {
	DefaultPageSize int           `mapstructure:"default_page_size"`
	MaxPageSize     int           `mapstructure:"max_page_size"`
	MinDelay        time.Duration `mapstructure:"min_delay"`
	MaxDelay        time.Duration `mapstructure:"max_delay"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output (dev only)
}

// Load reads configuration from file and environment variables.
// Environment variables override file values. Prefix: TXA_ (Transaction Anonymizer).
// Nested keys use underscore: TXA_DATABASE_HOST, TXA_ANONYMIZER_SEED, etc.
func Load(path string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("storage.backend", "memory")
	v.SetDefault("corpus.raw_dir", "data/raw")
	v.SetDefault("corpus.data_file", "data/anonymized/transactions.json")
	v.SetDefault("corpus.report_file", "data/anonymized/relationship_report.json")
	v.SetDefault("corpus.mappings_file", "data/anonymized/mappings.json")
	v.SetDefault("corpus.sample_file", "data/anonymized/sample.json")
	v.SetDefault("corpus.sample_size", 5)
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.dbname", "transaction_corpus")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_conns", 20)
	v.SetDefault("database.min_conns", 5)
	v.SetDefault("database.conn_max_lifetime", "30m")
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("jwt.secret", "")
	v.SetDefault("jwt.expiry", "24h")
	v.SetDefault("jwt.issuer", "transaction-anonymizer")
	v.SetDefault("auth.username", "")
	v.SetDefault("auth.password", "")
	v.SetDefault("anonymizer.seed", 42)
	v.SetDefault("anonymizer.variance", 0.1)
	v.SetDefault("api.default_page_size", 10)
	v.SetDefault("api.max_page_size", 100)
	v.SetDefault("api.min_delay", "100ms")
	v.SetDefault("api.max_delay", "500ms")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)

	// File config
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// Environment variables: TXA_DATABASE_HOST -> database.host
	v.SetEnvPrefix("TXA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file (not required, env vars can suffice)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}
