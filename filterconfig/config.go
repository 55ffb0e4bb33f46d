// Package filterconfig holds the runtime-tunable thresholds the
// BigintValuesUsingBitmask/HashTable factory decision (spec §4.3)
// uses to pick between a dense bitmask and a sparse hash table. The
// defaults reproduce the spec exactly; a deployment with unusual
// integer domains (very wide sparse IDs, or very narrow dense enums)
// can override them via environment variables.
package filterconfig

import (
	"sync"
	"sync/atomic"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/milvus-io/milvus-filter/go/common/log"
)

// Config holds the factory's density thresholds, both measured in
// 64-bit machine words.
type Config struct {
	// BitmaskAbsoluteWordCeiling: a bitmask under this many words is
	// always preferred over a hash table, regardless of density.
	BitmaskAbsoluteWordCeiling int64 `envconfig:"BITMASK_ABSOLUTE_WORD_CEILING" default:"32"`
	// BitmaskWordsPerSetBit: a bitmask is preferred as long as it
	// costs no more than this many words per set bit.
	BitmaskWordsPerSetBit int64 `envconfig:"BITMASK_WORDS_PER_SET_BIT" default:"4"`
}

func defaultConfig() Config {
	return Config{BitmaskAbsoluteWordCeiling: 32, BitmaskWordsPerSetBit: 4}
}

var (
	current atomic.Value
	once    sync.Once
)

func init() {
	current.Store(defaultConfig())
}

// Load reads FILTER_* environment variables (optionally from a
// .env file in the working directory, if present) into a fresh
// Config and installs it as the process-wide default. Get calls Load
// once on first use, so the environment is read even by callers that
// never call Load; with no FILTER_* variables set, the result is the
// spec-exact defaults.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Debug("filterconfig: no .env file loaded, using process environment only")
	}

	cfg := defaultConfig()
	if err := envconfig.Process("FILTER", &cfg); err != nil {
		log.Warn("filterconfig: failed to process environment, using defaults")
		cfg = defaultConfig()
	}
	current.Store(cfg)
	return cfg
}

// Get returns the process-wide Config, loading it from the
// environment on first use.
func Get() Config {
	once.Do(func() {
		Load()
	})
	return current.Load().(Config)
}

// Set installs cfg as the process-wide Config directly, bypassing the
// environment. Intended for tests that need to exercise a specific
// density threshold without mutating the process environment.
func Set(cfg Config) {
	current.Store(cfg)
}
